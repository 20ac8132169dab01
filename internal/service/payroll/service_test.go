package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresync/staffing-backend-go/internal/domain/country"
	"github.com/caresync/staffing-backend-go/internal/domain/payroll"
	"github.com/caresync/staffing-backend-go/internal/domain/staff"
	"github.com/caresync/staffing-backend-go/internal/domain/timesheet"
	"github.com/caresync/staffing-backend-go/internal/domain/user"
	"github.com/caresync/staffing-backend-go/internal/pkg/validator"
)

var errNotFound = errors.New("not found")

type fakePayrollRepo struct {
	createFn        func(ctx context.Context, p *payroll.Payroll) error
	getByIDFn       func(ctx context.Context, id int64) (*payroll.Payroll, error)
	listFn          func(ctx context.Context, filter payroll.ListFilter) ([]payroll.Payroll, error)
	updateStatusFn  func(ctx context.Context, id int64, status string, at time.Time) error
	sumGrossYearFn  func(ctx context.Context, staffID int64, before time.Time) (string, error)
}

func (f *fakePayrollRepo) Create(ctx context.Context, p *payroll.Payroll) error {
	return f.createFn(ctx, p)
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id int64) (*payroll.Payroll, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakePayrollRepo) List(ctx context.Context, filter payroll.ListFilter) ([]payroll.Payroll, error) {
	return f.listFn(ctx, filter)
}

func (f *fakePayrollRepo) UpdateStatus(ctx context.Context, id int64, status string, at time.Time) error {
	return f.updateStatusFn(ctx, id, status, at)
}

func (f *fakePayrollRepo) SumGrossPayForYear(ctx context.Context, staffID int64, before time.Time) (string, error) {
	return f.sumGrossYearFn(ctx, staffID, before)
}

type fakeStaffRepo struct {
	getByIDFn       func(ctx context.Context, id int64) (*staff.Staff, error)
	listByCompanyFn func(ctx context.Context, companyID int64) ([]staff.Staff, error)
}

func (f *fakeStaffRepo) Create(ctx context.Context, s *staff.Staff) error { return nil }
func (f *fakeStaffRepo) GetByID(ctx context.Context, id int64) (*staff.Staff, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeStaffRepo) GetByUserID(ctx context.Context, userID int64) (*staff.Staff, error) {
	return nil, errNotFound
}
func (f *fakeStaffRepo) ListByCompany(ctx context.Context, companyID int64) ([]staff.Staff, error) {
	return f.listByCompanyFn(ctx, companyID)
}
func (f *fakeStaffRepo) ListAvailable(ctx context.Context, companyID int64, specialization string) ([]staff.Staff, error) {
	return nil, nil
}
func (f *fakeStaffRepo) Update(ctx context.Context, s *staff.Staff) error { return nil }

type fakeSalaryRepo struct {
	getActiveFn func(ctx context.Context, staffID int64) (*staff.SalaryConfig, error)
}

func (f *fakeSalaryRepo) Create(ctx context.Context, cfg *staff.SalaryConfig) error { return nil }
func (f *fakeSalaryRepo) GetActiveByStaffID(ctx context.Context, staffID int64) (*staff.SalaryConfig, error) {
	return f.getActiveFn(ctx, staffID)
}
func (f *fakeSalaryRepo) ListByStaffID(ctx context.Context, staffID int64) ([]staff.SalaryConfig, error) {
	return nil, nil
}

type fakeUserRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*user.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, errNotFound
}
func (f *fakeUserRepo) GetByGoogleID(ctx context.Context, googleID string) (*user.User, error) {
	return nil, errNotFound
}
func (f *fakeUserRepo) ListByCompany(ctx context.Context, companyID int64) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error   { return nil }
func (f *fakeUserRepo) MarkVerified(ctx context.Context, id int64) error { return nil }

type fakeCountryRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*country.Country, error)
}

func (f *fakeCountryRepo) Create(ctx context.Context, c *country.Country) error { return nil }
func (f *fakeCountryRepo) GetByID(ctx context.Context, id int64) (*country.Country, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeCountryRepo) GetByCode(ctx context.Context, code string) (*country.Country, error) {
	return nil, errNotFound
}
func (f *fakeCountryRepo) List(ctx context.Context, activeOnly bool) ([]country.Country, error) {
	return nil, nil
}
func (f *fakeCountryRepo) Update(ctx context.Context, c *country.Country) error { return nil }
func (f *fakeCountryRepo) CountCompanies(ctx context.Context, countryID int64) (int64, error) {
	return 0, nil
}

type fakeTimesheetRepo struct {
	getByIDFn              func(ctx context.Context, id int64) (*timesheet.Timesheet, error)
	findVerifiedInPeriodFn func(ctx context.Context, staffID int64, periodStart, periodEnd time.Time) (*timesheet.Timesheet, error)
}

func (f *fakeTimesheetRepo) Create(ctx context.Context, t *timesheet.Timesheet) error { return nil }
func (f *fakeTimesheetRepo) GetByID(ctx context.Context, id int64) (*timesheet.Timesheet, error) {
	if f.getByIDFn == nil {
		return nil, errNotFound
	}
	return f.getByIDFn(ctx, id)
}
func (f *fakeTimesheetRepo) ListByStaff(ctx context.Context, staffID int64) ([]timesheet.Timesheet, error) {
	return nil, nil
}
func (f *fakeTimesheetRepo) FindVerifiedInPeriod(ctx context.Context, staffID int64, periodStart, periodEnd time.Time) (*timesheet.Timesheet, error) {
	if f.findVerifiedInPeriodFn == nil {
		return nil, errNotFound
	}
	return f.findVerifiedInPeriodFn(ctx, staffID, periodStart, periodEnd)
}
func (f *fakeTimesheetRepo) Update(ctx context.Context, t *timesheet.Timesheet) error { return nil }

// fixture wires a single US staff member paying 20/hour with a 40-hour
// overtime threshold at 1.5x, no benefits and no prior YTD payrolls.
type fixture struct {
	payrollRepo *fakePayrollRepo
	staffRepo   *fakeStaffRepo
	salaryRepo  *fakeSalaryRepo
	userRepo    *fakeUserRepo
	countryRepo *fakeCountryRepo
	tsRepo      *fakeTimesheetRepo
	created     []*payroll.Payroll
}

func newFixture() *fixture {
	companyID := int64(10)
	countryID := int64(1)

	fx := &fixture{}
	fx.payrollRepo = &fakePayrollRepo{
		createFn: func(ctx context.Context, p *payroll.Payroll) error {
			p.ID = int64(len(fx.created) + 1)
			fx.created = append(fx.created, p)
			return nil
		},
		sumGrossYearFn: func(ctx context.Context, staffID int64, before time.Time) (string, error) {
			return "0", nil
		},
	}
	fx.staffRepo = &fakeStaffRepo{
		getByIDFn: func(ctx context.Context, id int64) (*staff.Staff, error) {
			return &staff.Staff{ID: id, UserID: 100 + id, CompanyID: companyID, CountryCode: "US"}, nil
		},
	}
	fx.salaryRepo = &fakeSalaryRepo{
		getActiveFn: func(ctx context.Context, staffID int64) (*staff.SalaryConfig, error) {
			return &staff.SalaryConfig{
				StaffID:                staffID,
				HourlyRate:             decimal.NewFromInt(20),
				OvertimeThresholdHours: decimal.NewFromInt(40),
				OvertimeRateMultiplier: decimal.NewFromFloat(1.5),
				HasBenefits:            false,
				BenefitsDeduction:      decimal.Zero,
				PayFrequency:           "biweekly",
				IsActive:               true,
			}, nil
		},
	}
	fx.userRepo = &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*user.User, error) {
			return &user.User{ID: id, CompanyID: &companyID, CountryID: &countryID, IsActive: true}, nil
		},
	}
	fx.countryRepo = &fakeCountryRepo{
		getByIDFn: func(ctx context.Context, id int64) (*country.Country, error) {
			return &country.Country{ID: id, Name: "United States", Code: "US", Currency: "USD", IsActive: true}, nil
		},
	}
	fx.tsRepo = &fakeTimesheetRepo{}
	return fx
}

func (fx *fixture) service() payroll.Service {
	return NewPayrollService(fx.payrollRepo, fx.staffRepo, fx.salaryRepo, fx.userRepo, fx.countryRepo, fx.tsRepo)
}

func hoursPtr(h string) *decimal.Decimal {
	v := decimal.RequireFromString(h)
	return &v
}

func processReq(staffID int64, hours *decimal.Decimal) payroll.ProcessRequest {
	return payroll.ProcessRequest{
		StaffID:        staffID,
		PayPeriodStart: "2025-06-02",
		PayPeriodEnd:   "2025-06-15",
		HoursWorked:    hours,
	}
}

func TestProcess_USRegularHours(t *testing.T) {
	fx := newFixture()
	svc := fx.service()

	p, err := svc.Process(context.Background(), processReq(1, hoursPtr("40")))
	require.NoError(t, err)

	assert.Equal(t, "800.00", p.GrossPay.StringFixed(2))
	assert.Equal(t, "90.00", p.FederalTax.StringFixed(2))
	assert.Equal(t, "49.60", p.SocialSecurityTax.StringFixed(2))
	assert.Equal(t, "11.60", p.MedicareTax.StringFixed(2))
	assert.Equal(t, "40.00", p.StateProvincialTax.StringFixed(2))
	assert.Equal(t, "0.00", p.OtherDeductions.StringFixed(2))
	assert.Equal(t, "191.20", p.TotalDeductions.StringFixed(2))
	assert.Equal(t, "608.80", p.NetPay.StringFixed(2))
	assert.Equal(t, payroll.StatusPending, p.Status)
	assert.Len(t, fx.created, 1)

	assert.Equal(t, "US", p.Breakdown.CountryCode)
	assert.Nil(t, p.Breakdown.StateProvince)
	assert.True(t, p.Breakdown.RegularHours.Equal(decimal.NewFromInt(40)))
	assert.True(t, p.Breakdown.OvertimeHours.IsZero())
}

func TestProcess_USOvertime(t *testing.T) {
	fx := newFixture()
	svc := fx.service()

	p, err := svc.Process(context.Background(), processReq(1, hoursPtr("50")))
	require.NoError(t, err)

	// 40 regular + 10 overtime at 1.5x: 800 + 300 = 1100
	assert.Equal(t, "1100.00", p.GrossPay.StringFixed(2))
	assert.Equal(t, "136.00", p.FederalTax.StringFixed(2))
	assert.True(t, p.Breakdown.RegularHours.Equal(decimal.NewFromInt(40)))
	assert.True(t, p.Breakdown.OvertimeHours.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "800.00", p.Breakdown.RegularPay.StringFixed(2))
	assert.Equal(t, "300.00", p.Breakdown.OvertimePay.StringFixed(2))
}

func TestProcess_CanadianFederalBrackets(t *testing.T) {
	fx := newFixture()
	fx.countryRepo.getByIDFn = func(ctx context.Context, id int64) (*country.Country, error) {
		return &country.Country{ID: id, Name: "Canada", Code: "CA", Currency: "CAD", IsActive: true}, nil
	}
	svc := fx.service()

	// 40 regular (800) + 30 overtime (900) = 1700 gross, inside the
	// 1600-3200 federal bracket.
	p, err := svc.Process(context.Background(), processReq(1, hoursPtr("70")))
	require.NoError(t, err)

	assert.Equal(t, "1700.00", p.GrossPay.StringFixed(2))
	assert.Equal(t, "379.00", p.FederalTax.StringFixed(2))
}

func TestProcess_YTDAtContributionCap(t *testing.T) {
	fx := newFixture()
	fx.payrollRepo.sumGrossYearFn = func(ctx context.Context, staffID int64, before time.Time) (string, error) {
		return "160200", nil
	}
	svc := fx.service()

	p, err := svc.Process(context.Background(), processReq(1, hoursPtr("40")))
	require.NoError(t, err)

	assert.Equal(t, "0.00", p.SocialSecurityTax.StringFixed(2))
	assert.Equal(t, "11.60", p.MedicareTax.StringFixed(2)) // medicare remains uncapped
	assert.Equal(t, "160200.00", p.Breakdown.YTDGross.StringFixed(2))
}

func TestProcess_ZeroHours(t *testing.T) {
	fx := newFixture()
	svc := fx.service()

	p, err := svc.Process(context.Background(), processReq(1, hoursPtr("0")))
	require.NoError(t, err)

	assert.Equal(t, "0.00", p.GrossPay.StringFixed(2))
	assert.Equal(t, "0.00", p.TotalDeductions.StringFixed(2))
	assert.Equal(t, "0.00", p.NetPay.StringFixed(2))
}

func TestProcess_HoursExactlyAtThreshold(t *testing.T) {
	fx := newFixture()
	svc := fx.service()

	p, err := svc.Process(context.Background(), processReq(1, hoursPtr("40")))
	require.NoError(t, err)

	assert.True(t, p.Breakdown.OvertimeHours.IsZero())
	assert.True(t, p.Breakdown.RegularHours.Add(p.Breakdown.OvertimeHours).Equal(p.HoursWorked))
}

func TestProcess_HoursFromTimesheet(t *testing.T) {
	fx := newFixture()
	fx.tsRepo.getByIDFn = func(ctx context.Context, id int64) (*timesheet.Timesheet, error) {
		return &timesheet.Timesheet{ID: id, StaffID: 1, HoursWorked: decimal.NewFromInt(32), Status: timesheet.StatusVerified}, nil
	}
	svc := fx.service()

	tsID := int64(7)
	req := processReq(1, nil)
	req.TimesheetID = &tsID

	p, err := svc.Process(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "640.00", p.GrossPay.StringFixed(2)) // 32 * 20
	require.NotNil(t, p.TimesheetID)
	assert.Equal(t, tsID, *p.TimesheetID)
}

func TestProcess_TimesheetLookupFailureDefaultsToZeroHours(t *testing.T) {
	fx := newFixture()
	fx.tsRepo.getByIDFn = func(ctx context.Context, id int64) (*timesheet.Timesheet, error) {
		return nil, errNotFound
	}
	svc := fx.service()

	tsID := int64(99)
	req := processReq(1, nil)
	req.TimesheetID = &tsID

	p, err := svc.Process(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "0.00", p.GrossPay.StringFixed(2))
}

func TestProcess_BenefitsDeduction(t *testing.T) {
	fx := newFixture()
	fx.salaryRepo.getActiveFn = func(ctx context.Context, staffID int64) (*staff.SalaryConfig, error) {
		return &staff.SalaryConfig{
			StaffID:                staffID,
			HourlyRate:             decimal.NewFromInt(20),
			OvertimeThresholdHours: decimal.NewFromInt(40),
			OvertimeRateMultiplier: decimal.NewFromFloat(1.5),
			HasBenefits:            true,
			BenefitsDeduction:      decimal.NewFromFloat(55.25),
			PayFrequency:           "biweekly",
			IsActive:               true,
		}, nil
	}
	svc := fx.service()

	p, err := svc.Process(context.Background(), processReq(1, hoursPtr("40")))
	require.NoError(t, err)

	assert.Equal(t, "55.25", p.OtherDeductions.StringFixed(2))
	assert.Equal(t, "246.45", p.TotalDeductions.StringFixed(2)) // 191.20 + 55.25
	assert.Equal(t, "553.55", p.NetPay.StringFixed(2))

	// The audit blob carries the benefits figure under both keys.
	assert.Equal(t, "55.25", p.Breakdown.TaxBreakdown.BenefitsDeduction.StringFixed(2))
	assert.True(t, p.Breakdown.TaxBreakdown.OtherDeductions.Equal(p.Breakdown.TaxBreakdown.BenefitsDeduction))
}

func TestProcess_BreakdownKeepsYTDGrossUnrounded(t *testing.T) {
	fx := newFixture()
	fx.payrollRepo.sumGrossYearFn = func(ctx context.Context, staffID int64, before time.Time) (string, error) {
		return "12345.678", nil
	}
	svc := fx.service()

	p, err := svc.Process(context.Background(), processReq(1, hoursPtr("40")))
	require.NoError(t, err)

	assert.Equal(t, "12345.678", p.Breakdown.YTDGross.String())
}

func TestProcess_NetPayReconstructsFromRoundedTerms(t *testing.T) {
	fx := newFixture()
	svc := fx.service()

	// 37.5 hours at 20/hour: gross 750, taxes produce cents.
	p, err := svc.Process(context.Background(), processReq(1, hoursPtr("37.5")))
	require.NoError(t, err)

	sum := p.FederalTax.Add(p.StateProvincialTax).Add(p.SocialSecurityTax).Add(p.MedicareTax).Add(p.OtherDeductions)
	assert.True(t, p.TotalDeductions.Equal(sum))
	assert.True(t, p.NetPay.Equal(p.GrossPay.Sub(p.TotalDeductions)))
}

func TestProcess_ValidationFailures(t *testing.T) {
	fx := newFixture()
	svc := fx.service()

	_, err := svc.Process(context.Background(), payroll.ProcessRequest{StaffID: 0, PayPeriodStart: "2025-06-02", PayPeriodEnd: "2025-06-15"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, fx.created, 0)
}

func TestProcess_InputErrors(t *testing.T) {
	t.Run("staff not found", func(t *testing.T) {
		fx := newFixture()
		fx.staffRepo.getByIDFn = func(ctx context.Context, id int64) (*staff.Staff, error) {
			return nil, errNotFound
		}
		_, err := fx.service().Process(context.Background(), processReq(1, hoursPtr("40")))
		assert.ErrorIs(t, err, payroll.ErrStaffNotFound)
	})

	t.Run("user missing linkage", func(t *testing.T) {
		fx := newFixture()
		fx.userRepo.getByIDFn = func(ctx context.Context, id int64) (*user.User, error) {
			return &user.User{ID: id, IsActive: true}, nil
		}
		_, err := fx.service().Process(context.Background(), processReq(1, hoursPtr("40")))
		assert.ErrorIs(t, err, payroll.ErrMissingLinkage)
	})

	t.Run("no active salary config", func(t *testing.T) {
		fx := newFixture()
		fx.salaryRepo.getActiveFn = func(ctx context.Context, staffID int64) (*staff.SalaryConfig, error) {
			return nil, errNotFound
		}
		_, err := fx.service().Process(context.Background(), processReq(1, hoursPtr("40")))
		assert.ErrorIs(t, err, payroll.ErrSalaryConfigNotFound)
	})
}

func TestBulkProcess_PartialFailure(t *testing.T) {
	fx := newFixture()
	fx.staffRepo.listByCompanyFn = func(ctx context.Context, companyID int64) ([]staff.Staff, error) {
		return []staff.Staff{
			{ID: 1, UserID: 101, CompanyID: companyID},
			{ID: 2, UserID: 102, CompanyID: companyID},
			{ID: 3, UserID: 103, CompanyID: companyID},
		}, nil
	}
	// staff 2 has no salary configuration
	fx.salaryRepo.getActiveFn = func(ctx context.Context, staffID int64) (*staff.SalaryConfig, error) {
		if staffID == 2 {
			return nil, errNotFound
		}
		return &staff.SalaryConfig{
			StaffID:                staffID,
			HourlyRate:             decimal.NewFromInt(20),
			OvertimeThresholdHours: decimal.NewFromInt(40),
			OvertimeRateMultiplier: decimal.NewFromFloat(1.5),
			PayFrequency:           "biweekly",
			IsActive:               true,
		}, nil
	}
	fx.tsRepo.findVerifiedInPeriodFn = func(ctx context.Context, staffID int64, periodStart, periodEnd time.Time) (*timesheet.Timesheet, error) {
		return &timesheet.Timesheet{ID: staffID * 10, StaffID: staffID, HoursWorked: decimal.NewFromInt(40), Status: timesheet.StatusVerified}, nil
	}
	fx.tsRepo.getByIDFn = func(ctx context.Context, id int64) (*timesheet.Timesheet, error) {
		return &timesheet.Timesheet{ID: id, HoursWorked: decimal.NewFromInt(40), Status: timesheet.StatusVerified}, nil
	}
	svc := fx.service()

	resp, err := svc.BulkProcess(context.Background(), payroll.BulkProcessRequest{
		CompanyID:      10,
		PayPeriodStart: "2025-06-02",
		PayPeriodEnd:   "2025-06-15",
	})
	require.NoError(t, err)

	assert.Len(t, resp.Payrolls, 2)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, int64(2), resp.Failures[0].StaffID)
	assert.Contains(t, resp.Failures[0].Reason, "salary configuration")
}

func TestBulkProcess_NoStaff(t *testing.T) {
	fx := newFixture()
	fx.staffRepo.listByCompanyFn = func(ctx context.Context, companyID int64) ([]staff.Staff, error) {
		return nil, nil
	}
	svc := fx.service()

	resp, err := svc.BulkProcess(context.Background(), payroll.BulkProcessRequest{
		CompanyID:      10,
		PayPeriodStart: "2025-06-02",
		PayPeriodEnd:   "2025-06-15",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Payrolls)
	assert.Empty(t, resp.Failures)
}

func TestBulkProcess_NoVerifiedTimesheetMeansZeroHours(t *testing.T) {
	fx := newFixture()
	fx.staffRepo.listByCompanyFn = func(ctx context.Context, companyID int64) ([]staff.Staff, error) {
		return []staff.Staff{{ID: 1, UserID: 101, CompanyID: companyID}}, nil
	}
	svc := fx.service()

	resp, err := svc.BulkProcess(context.Background(), payroll.BulkProcessRequest{
		CompanyID:      10,
		PayPeriodStart: "2025-06-02",
		PayPeriodEnd:   "2025-06-15",
	})
	require.NoError(t, err)
	require.Len(t, resp.Payrolls, 1)
	assert.Equal(t, "0.00", resp.Payrolls[0].GrossPay.StringFixed(2))
}

func TestApprove(t *testing.T) {
	fx := newFixture()
	stored := &payroll.Payroll{ID: 5, Status: payroll.StatusPending}
	fx.payrollRepo.getByIDFn = func(ctx context.Context, id int64) (*payroll.Payroll, error) {
		return stored, nil
	}
	fx.payrollRepo.updateStatusFn = func(ctx context.Context, id int64, status string, at time.Time) error {
		return nil
	}
	svc := fx.service()

	p, err := svc.Approve(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusApproved, p.Status)
	assert.NotNil(t, p.ApprovedAt)

	// approved payrolls cannot be approved again
	_, err = svc.Approve(context.Background(), 5)
	assert.ErrorIs(t, err, payroll.ErrNotPending)
}

func TestMarkPaid_RequiresApproval(t *testing.T) {
	fx := newFixture()
	stored := &payroll.Payroll{ID: 5, Status: payroll.StatusPending}
	fx.payrollRepo.getByIDFn = func(ctx context.Context, id int64) (*payroll.Payroll, error) {
		return stored, nil
	}
	svc := fx.service()

	_, err := svc.MarkPaid(context.Background(), 5)
	assert.ErrorIs(t, err, payroll.ErrNotApproved)
}
