package response

import (
	"errors"
	"net/http"

	"github.com/caresync/staffing-backend-go/internal/domain/auth"
	"github.com/caresync/staffing-backend-go/internal/domain/company"
	"github.com/caresync/staffing-backend-go/internal/domain/compliance"
	"github.com/caresync/staffing-backend-go/internal/domain/country"
	"github.com/caresync/staffing-backend-go/internal/domain/docs"
	"github.com/caresync/staffing-backend-go/internal/domain/invoice"
	"github.com/caresync/staffing-backend-go/internal/domain/patient"
	"github.com/caresync/staffing-backend-go/internal/domain/payroll"
	"github.com/caresync/staffing-backend-go/internal/domain/request"
	"github.com/caresync/staffing-backend-go/internal/domain/shift"
	"github.com/caresync/staffing-backend-go/internal/domain/staff"
	"github.com/caresync/staffing-backend-go/internal/domain/timesheet"
	"github.com/caresync/staffing-backend-go/internal/domain/user"
	"github.com/caresync/staffing-backend-go/internal/domain/visit"
	"github.com/caresync/staffing-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, "Invalid or expired refresh token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidVerifyToken):
		BadRequest(w, "Invalid or expired verification token", nil)
	case errors.Is(err, auth.ErrAlreadyVerified):
		Conflict(w, "Account is already verified")
	case errors.Is(err, auth.ErrGoogleEmailNotVerified):
		Forbidden(w, "Google account email is not verified")
	case errors.Is(err, auth.ErrPasswordLoginDisabled):
		BadRequest(w, "This account uses Google sign-in", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserDeactivated):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, user.ErrUserNotVerified):
		Forbidden(w, "Email not verified")
	case errors.Is(err, user.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, user.ErrRoleNameExists):
		Conflict(w, "Role name already exists")
	case errors.Is(err, user.ErrSystemRoleReadOnly):
		Forbidden(w, "System roles cannot be modified")
	case errors.Is(err, user.ErrPrivilegeNotFound):
		NotFound(w, "Privilege not found")

	// Country / company errors
	case errors.Is(err, country.ErrCountryNotFound):
		NotFound(w, "Country not found")
	case errors.Is(err, country.ErrCountryCodeExists):
		Conflict(w, "Country code already exists")
	case errors.Is(err, country.ErrCountryDeactivated):
		BadRequest(w, "Country is deactivated", nil)
	case errors.Is(err, country.ErrCountryHasCompanies):
		Conflict(w, "Country has registered companies")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyDeactivated):
		BadRequest(w, "Company is deactivated", nil)
	case errors.Is(err, company.ErrCompanyNameExists):
		Conflict(w, "Company name already exists in this country")

	// Staff / patient errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff not found")
	case errors.Is(err, staff.ErrStaffExistsForUser):
		Conflict(w, "Staff profile already exists for this user")
	case errors.Is(err, staff.ErrSalaryConfigNotFound):
		NotFound(w, "Salary configuration not found")
	case errors.Is(err, staff.ErrStaffUnavailable):
		Conflict(w, "Staff is not available")
	case errors.Is(err, patient.ErrPatientNotFound):
		NotFound(w, "Patient not found")
	case errors.Is(err, patient.ErrPatientExistsForUser):
		Conflict(w, "Patient profile already exists for this user")
	case errors.Is(err, patient.ErrPatientInactive):
		BadRequest(w, "Patient is inactive", nil)

	// Service request errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Service request not found")
	case errors.Is(err, request.ErrRequestNotOpen):
		Conflict(w, "Service request is not open for assignment")
	case errors.Is(err, request.ErrRequestNotAssigned):
		Conflict(w, "Service request has no active assignment")
	case errors.Is(err, request.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, request.ErrAlreadyAssigned):
		Conflict(w, "Service request is already assigned")
	case errors.Is(err, request.ErrNoLocationForPatient):
		BadRequest(w, "Patient has no location set for matching", nil)
	case errors.Is(err, request.ErrNoCandidates):
		NotFound(w, "No available staff match this request")
	case errors.Is(err, request.ErrInvalidTransition):
		Conflict(w, "Invalid status transition")

	// Shift / timesheet errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftOverlaps):
		Conflict(w, "Shift overlaps an existing shift")
	case errors.Is(err, shift.ErrShiftNotStarted),
		errors.Is(err, shift.ErrShiftAlreadyEnded),
		errors.Is(err, shift.ErrShiftNotEnded):
		Conflict(w, err.Error())
	case errors.Is(err, shift.ErrNotShiftOwner):
		Forbidden(w, "Shift belongs to another staff member")
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrTimesheetNotSubmitted),
		errors.Is(err, timesheet.ErrTimesheetNotVerified),
		errors.Is(err, timesheet.ErrTimesheetLocked):
		Conflict(w, err.Error())
	case errors.Is(err, timesheet.ErrNotTimesheetOwner):
		Forbidden(w, "Timesheet belongs to another staff member")

	// Payroll errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")
	case errors.Is(err, payroll.ErrStaffNotFound):
		NotFound(w, "Staff not found")
	case errors.Is(err, payroll.ErrUserNotFound):
		NotFound(w, "Staff user not found")
	case errors.Is(err, payroll.ErrMissingLinkage):
		BadRequest(w, "Staff user has no company or country linkage", nil)
	case errors.Is(err, payroll.ErrCountryNotFound):
		NotFound(w, "Country not found")
	case errors.Is(err, payroll.ErrSalaryConfigNotFound):
		BadRequest(w, "No active salary configuration for staff", nil)
	case errors.Is(err, payroll.ErrNotPending):
		Conflict(w, "Payroll is not pending")
	case errors.Is(err, payroll.ErrNotApproved):
		Conflict(w, "Payroll is not approved")

	// Compliance / visit / invoice errors
	case errors.Is(err, compliance.ErrDocumentNotFound):
		NotFound(w, "Compliance document not found")
	case errors.Is(err, compliance.ErrNoFileAttached):
		NotFound(w, "Compliance document has no file attached")
	case errors.Is(err, visit.ErrVisitNotFound):
		NotFound(w, "Visit not found")
	case errors.Is(err, visit.ErrFeedbackNotFound):
		NotFound(w, "Feedback not found")
	case errors.Is(err, visit.ErrFeedbackExists):
		Conflict(w, "Feedback already submitted for this visit")
	case errors.Is(err, visit.ErrNotVisitPatient):
		Forbidden(w, "Feedback can only be left by the visited patient")
	case errors.Is(err, visit.ErrRequestNotFinished):
		Conflict(w, "Service request is not completed")
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, invoice.ErrNotDraft),
		errors.Is(err, invoice.ErrNotIssued),
		errors.Is(err, invoice.ErrAlreadyPaid):
		Conflict(w, err.Error())

	// Docs errors
	case errors.Is(err, docs.ErrAPIKeyNotFound):
		Unauthorized(w, "Invalid API key")
	case errors.Is(err, docs.ErrAPIKeyRevoked):
		Unauthorized(w, "API key has been revoked")
	case errors.Is(err, docs.ErrPageNotFound):
		NotFound(w, "Documentation page not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
