package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caresync/staffing-backend-go/internal/domain/country"
	"github.com/caresync/staffing-backend-go/internal/domain/payroll"
	"github.com/caresync/staffing-backend-go/internal/domain/staff"
	"github.com/caresync/staffing-backend-go/internal/domain/timesheet"
	"github.com/caresync/staffing-backend-go/internal/domain/user"
)

type payrollServiceImpl struct {
	payrollRepo   payroll.Repository
	staffRepo     staff.Repository
	salaryRepo    staff.SalaryConfigRepository
	userRepo      user.Repository
	countryRepo   country.Repository
	timesheetRepo timesheet.Repository
}

// NewPayrollService creates a new payroll service instance
func NewPayrollService(
	payrollRepo payroll.Repository,
	staffRepo staff.Repository,
	salaryRepo staff.SalaryConfigRepository,
	userRepo user.Repository,
	countryRepo country.Repository,
	timesheetRepo timesheet.Repository,
) payroll.Service {
	return &payrollServiceImpl{
		payrollRepo:   payrollRepo,
		staffRepo:     staffRepo,
		salaryRepo:    salaryRepo,
		userRepo:      userRepo,
		countryRepo:   countryRepo,
		timesheetRepo: timesheetRepo,
	}
}

func (s *payrollServiceImpl) Process(ctx context.Context, req payroll.ProcessRequest) (*payroll.Payroll, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.process(ctx, req.StaffID, req.PeriodStart(), req.PeriodEnd(), req.HoursWorked, req.TimesheetID)
}

// process runs a single payroll computation and persists the result.
func (s *payrollServiceImpl) process(
	ctx context.Context,
	staffID int64,
	periodStart, periodEnd time.Time,
	hoursWorked *decimal.Decimal,
	timesheetID *int64,
) (*payroll.Payroll, error) {
	st, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("%w: id %d", payroll.ErrStaffNotFound, staffID)
	}

	u, err := s.userRepo.GetByID(ctx, st.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %d", payroll.ErrUserNotFound, st.UserID)
	}
	if u.CompanyID == nil || u.CountryID == nil {
		return nil, fmt.Errorf("%w: user %d", payroll.ErrMissingLinkage, u.ID)
	}

	cn, err := s.countryRepo.GetByID(ctx, *u.CountryID)
	if err != nil {
		return nil, fmt.Errorf("%w: id %d", payroll.ErrCountryNotFound, *u.CountryID)
	}

	cfg, err := s.salaryRepo.GetActiveByStaffID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("%w: staff %d", payroll.ErrSalaryConfigNotFound, staffID)
	}

	hours := s.resolveHours(ctx, hoursWorked, timesheetID)

	// Hours split and gross pay.
	regularHours := decimal.Min(hours, cfg.OvertimeThresholdHours)
	overtimeHours := decimal.Max(decimal.Zero, hours.Sub(cfg.OvertimeThresholdHours))
	regularPay := regularHours.Mul(cfg.HourlyRate)
	overtimePay := overtimeHours.Mul(cfg.HourlyRate).Mul(cfg.OvertimeRateMultiplier)
	gross := regularPay.Add(overtimePay)

	ytdGross, err := s.ytdGross(ctx, staffID, periodStart)
	if err != nil {
		return nil, fmt.Errorf("failed to compute ytd gross: %w", err)
	}

	jurisdiction := JurisdictionFromCode(cn.Code)

	// The processor never resolves a sub-jurisdiction, so state/provincial
	// tax always uses the per-country default rate.
	var subJurisdiction *string

	federal := FederalIncomeTax(gross, jurisdiction, taxYear)
	contribution := ContributionTax(gross, ytdGross, jurisdiction, taxYear)
	secondary := SecondaryContributionTax(gross, jurisdiction, taxYear)
	stateProvincial := StateProvincialTax(gross, jurisdiction, subJurisdiction)

	other := decimal.Zero
	if cfg.HasBenefits {
		other = cfg.BenefitsDeduction
	}

	// Each monetary figure is rounded to 2 decimals independently before
	// summation; totals are built from the rounded terms.
	grossR := gross.Round(2)
	federalR := federal.Round(2)
	stateR := stateProvincial.Round(2)
	contributionR := contribution.Round(2)
	secondaryR := secondary.Round(2)
	otherR := other.Round(2)

	totalDeductions := federalR.Add(stateR).Add(contributionR).Add(secondaryR).Add(otherR)
	netPay := grossR.Sub(totalDeductions)

	p := &payroll.Payroll{
		StaffID:            staffID,
		CompanyID:          *u.CompanyID,
		CountryID:          *u.CountryID,
		TimesheetID:        timesheetID,
		PayPeriodStart:     periodStart,
		PayPeriodEnd:       periodEnd,
		HoursWorked:        hours,
		HourlyRate:         cfg.HourlyRate,
		GrossPay:           grossR,
		FederalTax:         federalR,
		StateProvincialTax: stateR,
		SocialSecurityTax:  contributionR,
		MedicareTax:        secondaryR,
		OtherDeductions:    otherR,
		TotalDeductions:    totalDeductions,
		NetPay:             netPay,
		Breakdown: payroll.Breakdown{
			CountryCode:   cn.Code,
			StateProvince: subJurisdiction,
			RegularHours:  regularHours,
			OvertimeHours: overtimeHours,
			RegularPay:    regularPay.Round(2),
			OvertimePay:   overtimePay.Round(2),
			YTDGross:      ytdGross,
			TaxBreakdown: payroll.TaxBreakdown{
				FederalTax:         federalR,
				StateProvincialTax: stateR,
				SocialSecurityTax:  contributionR,
				MedicareTax:        secondaryR,
				BenefitsDeduction:  otherR,
				OtherDeductions:    otherR,
			},
		},
		Status: payroll.StatusPending,
	}

	if err := s.payrollRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create payroll: %w", err)
	}

	slog.Info("payroll processed",
		"staff_id", staffID,
		"period_start", periodStart.Format("2006-01-02"),
		"gross_pay", grossR.String(),
		"net_pay", netPay.String(),
	)
	return p, nil
}

// resolveHours prefers explicit hours, then the referenced timesheet,
// then zero. A failed timesheet lookup also falls back to zero.
func (s *payrollServiceImpl) resolveHours(ctx context.Context, hoursWorked *decimal.Decimal, timesheetID *int64) decimal.Decimal {
	if hoursWorked != nil {
		return *hoursWorked
	}
	if timesheetID != nil {
		ts, err := s.timesheetRepo.GetByID(ctx, *timesheetID)
		if err != nil {
			slog.Warn("timesheet lookup failed, defaulting hours to zero", "timesheet_id", *timesheetID, "error", err)
			return decimal.Zero
		}
		return ts.HoursWorked
	}
	return decimal.Zero
}

func (s *payrollServiceImpl) ytdGross(ctx context.Context, staffID int64, periodStart time.Time) (decimal.Decimal, error) {
	sum, err := s.payrollRepo.SumGrossPayForYear(ctx, staffID, periodStart)
	if err != nil {
		return decimal.Zero, err
	}
	ytd, err := decimal.NewFromString(sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid ytd sum %q: %w", sum, err)
	}
	return ytd, nil
}

func (s *payrollServiceImpl) BulkProcess(ctx context.Context, req payroll.BulkProcessRequest) (*payroll.BulkProcessResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	staffList, err := s.staffRepo.ListByCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	periodStart := req.PeriodStart()
	periodEnd := req.PeriodEnd()

	result := &payroll.BulkProcessResponse{
		Payrolls: make([]payroll.Payroll, 0, len(staffList)),
		Failures: make([]payroll.BulkFailure, 0),
	}

	for _, st := range staffList {
		var timesheetID *int64
		if ts, err := s.timesheetRepo.FindVerifiedInPeriod(ctx, st.ID, periodStart, periodEnd); err == nil && ts != nil {
			timesheetID = &ts.ID
		}

		p, err := s.process(ctx, st.ID, periodStart, periodEnd, nil, timesheetID)
		if err != nil {
			slog.Warn("bulk payroll run failed for staff",
				"staff_id", st.ID,
				"company_id", req.CompanyID,
				"error", err,
			)
			result.Failures = append(result.Failures, payroll.BulkFailure{StaffID: st.ID, Reason: err.Error()})
			continue
		}
		result.Payrolls = append(result.Payrolls, *p)
	}

	slog.Info("bulk payroll run completed",
		"company_id", req.CompanyID,
		"processed", len(result.Payrolls),
		"failed", len(result.Failures),
	)
	return result, nil
}

func (s *payrollServiceImpl) GetByID(ctx context.Context, id int64) (*payroll.Payroll, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, payroll.ErrPayrollNotFound
	}
	return p, nil
}

func (s *payrollServiceImpl) List(ctx context.Context, filter payroll.ListFilter) ([]payroll.Payroll, error) {
	return s.payrollRepo.List(ctx, filter)
}

func (s *payrollServiceImpl) Approve(ctx context.Context, id int64) (*payroll.Payroll, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, payroll.ErrPayrollNotFound
	}
	if p.Status != payroll.StatusPending {
		return nil, payroll.ErrNotPending
	}

	now := time.Now()
	if err := s.payrollRepo.UpdateStatus(ctx, id, payroll.StatusApproved, now); err != nil {
		return nil, fmt.Errorf("failed to approve payroll: %w", err)
	}
	p.Status = payroll.StatusApproved
	p.ApprovedAt = &now
	return p, nil
}

func (s *payrollServiceImpl) MarkPaid(ctx context.Context, id int64) (*payroll.Payroll, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, payroll.ErrPayrollNotFound
	}
	if p.Status != payroll.StatusApproved {
		return nil, payroll.ErrNotApproved
	}

	now := time.Now()
	if err := s.payrollRepo.UpdateStatus(ctx, id, payroll.StatusPaid, now); err != nil {
		return nil, fmt.Errorf("failed to mark payroll paid: %w", err)
	}
	p.Status = payroll.StatusPaid
	p.PaidAt = &now
	return p, nil
}
