package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"nurse@example.com",
		"first.last+tag@clinic.co",
		"admin_1@sub.domain.org",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestIsValidCountryCode(t *testing.T) {
	assert.True(t, IsValidCountryCode("US"))
	assert.True(t, IsValidCountryCode("CA"))
	assert.True(t, IsValidCountryCode("MEX"))

	assert.False(t, IsValidCountryCode("us"))
	assert.False(t, IsValidCountryCode("U"))
	assert.False(t, IsValidCountryCode("USAX"))
	assert.False(t, IsValidCountryCode("U1"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-06-15")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("15-06-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2025-06-15T08:30:00Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2025-06-15T08:30:00+07:00")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2025-06-15 08:30")
	assert.False(t, ok)
}

func TestIsNonNegative(t *testing.T) {
	assert.True(t, IsNonNegative(decimal.Zero))
	assert.True(t, IsNonNegative(decimal.NewFromFloat(12.5)))
	assert.False(t, IsNonNegative(decimal.NewFromFloat(-0.01)))
}

func TestIsValidPayFrequency(t *testing.T) {
	assert.True(t, IsValidPayFrequency("weekly"))
	assert.True(t, IsValidPayFrequency("biweekly"))
	assert.True(t, IsValidPayFrequency("monthly"))
	assert.False(t, IsValidPayFrequency("daily"))
	assert.False(t, IsValidPayFrequency(""))
}

func TestIsValidRating(t *testing.T) {
	for r := 1; r <= 5; r++ {
		assert.True(t, IsValidRating(r))
	}
	assert.False(t, IsValidRating(0))
	assert.False(t, IsValidRating(6))
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "rating", Message: "must be between 1 and 5"},
	}

	assert.Equal(t, "email: is required; rating: must be between 1 and 5", errs.Error())
	assert.Equal(t, map[string]string{
		"email":  "is required",
		"rating": "must be between 1 and 5",
	}, errs.ToMap())
}
