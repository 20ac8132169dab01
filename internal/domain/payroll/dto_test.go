package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresync/staffing-backend-go/internal/pkg/validator"
)

func TestProcessRequestValidate(t *testing.T) {
	req := ProcessRequest{
		StaffID:        1,
		PayPeriodStart: "2025-06-02",
		PayPeriodEnd:   "2025-06-15",
	}
	assert.NoError(t, req.Validate())
	assert.Equal(t, 2025, req.PeriodStart().Year())

	bad := ProcessRequest{
		StaffID:        0,
		PayPeriodStart: "06/02/2025",
		PayPeriodEnd:   "2025-06-15",
	}
	err := bad.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "staff_id")
	assert.Contains(t, fields, "pay_period_start")
	assert.NotContains(t, fields, "pay_period_end")
}

func TestProcessRequestValidate_NegativeHours(t *testing.T) {
	hours := decimal.NewFromFloat(-1)
	req := ProcessRequest{
		StaffID:        1,
		PayPeriodStart: "2025-06-02",
		PayPeriodEnd:   "2025-06-15",
		HoursWorked:    &hours,
	}

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "hours_worked")
}

func TestBulkProcessRequestValidate(t *testing.T) {
	req := BulkProcessRequest{
		CompanyID:      10,
		PayPeriodStart: "2025-06-02",
		PayPeriodEnd:   "2025-06-15",
	}
	assert.NoError(t, req.Validate())

	bad := BulkProcessRequest{
		CompanyID:      10,
		PayPeriodStart: "2025-06-02",
		PayPeriodEnd:   "not-a-date",
	}
	var errs validator.ValidationErrors
	require.ErrorAs(t, bad.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "pay_period_end")
}
