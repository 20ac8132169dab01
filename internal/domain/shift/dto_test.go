package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresync/staffing-backend-go/internal/pkg/validator"
)

func TestCreateRequestValidate(t *testing.T) {
	req := CreateRequest{
		StaffID:        1,
		ScheduledStart: "2025-06-02T08:00:00Z",
		ScheduledEnd:   "2025-06-02T16:00:00Z",
	}
	assert.NoError(t, req.Validate())
}

func TestCreateRequestValidate_BadTimestamps(t *testing.T) {
	req := CreateRequest{
		StaffID:        1,
		ScheduledStart: "2025-06-02 08:00",
		ScheduledEnd:   "2025-06-02T16:00:00Z",
	}

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "scheduled_start")
	assert.NotContains(t, fields, "scheduled_end")
}

func TestCreateRequestValidate_EndNotAfterStart(t *testing.T) {
	req := CreateRequest{
		StaffID:        1,
		ScheduledStart: "2025-06-02T16:00:00Z",
		ScheduledEnd:   "2025-06-02T08:00:00Z",
	}

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "scheduled_end")
}
