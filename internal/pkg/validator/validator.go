package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Country codes are ISO-style two or three letter uppercase codes (US, CA, MEX).
var countryCodeRegex = regexp.MustCompile(`^[A-Z]{2,3}$`)

func IsValidCountryCode(code string) bool {
	return countryCodeRegex.MatchString(code)
}

// IsValidDate checks a "YYYY-MM-DD" date string.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidDateTime checks if a string is a valid ISO8601 timestamp.
// Accepts formats like: "2024-01-15T10:30:00Z" or "2024-01-15T10:30:00+07:00"
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, dateTimeStr)
	if err == nil {
		return t, true
	}

	t, err = time.Parse(time.RFC3339Nano, dateTimeStr)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}

// IsNonNegative reports whether d is zero or positive.
func IsNonNegative(d decimal.Decimal) bool {
	return !d.IsNegative()
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Pay frequencies accepted on salary configurations.
var PayFrequencies = []string{"weekly", "biweekly", "monthly"}

func IsValidPayFrequency(freq string) bool {
	return IsInSlice(freq, PayFrequencies)
}

// IsValidRating checks a patient feedback rating (1-5 scale).
func IsValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// IsValidLatitude / IsValidLongitude bound geographic coordinates.
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}
