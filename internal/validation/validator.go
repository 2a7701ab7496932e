package validation

import (
	"regexp"
	"strings"
	"time"

	"weather-export/internal/domain"
	"weather-export/internal/errors"
)

// DateLayout is the operator input format, YYYY/MM/DD
const DateLayout = "2006/01/02"

// Validator parses operator-entered dates and checks range ordering
type Validator struct {
	dateRegex *regexp.Regexp
	location  *time.Location
}

// NewValidator creates a validator that interprets dates in local time
func NewValidator() *Validator {
	return NewValidatorInLocation(time.Local)
}

// NewValidatorInLocation creates a validator that interprets dates in loc
func NewValidatorInLocation(loc *time.Location) *Validator {
	if loc == nil {
		loc = time.Local
	}
	return &Validator{
		dateRegex: regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`),
		location:  loc,
	}
}

// IsValidDateFormat checks the shape only: four digit year, two digit month and day
func (v *Validator) IsValidDateFormat(s string) bool {
	return v.dateRegex.MatchString(s)
}

// ParseDate parses s strictly as YYYY/MM/DD. Surrounding whitespace is
// ignored; impossible calendar dates are rejected.
func (v *Validator) ParseDate(field string, s string) (time.Time, error) {
	s = v.TrimAndValidateString(s)
	if !v.IsValidDateFormat(s) {
		return time.Time{}, errors.NewFormatError(field, s)
	}

	t, err := time.ParseInLocation(DateLayout, s, v.location)
	if err != nil || t.Year() < 1 {
		return time.Time{}, errors.NewFormatError(field, s)
	}
	return t, nil
}

// ValidateDateRange parses both inputs and returns the inclusive range.
// Both dates are checked for format before ordering; equal dates are allowed.
func (v *Validator) ValidateDateRange(startInput, endInput string) (domain.DateRange, error) {
	start, err := v.ParseDate("start", startInput)
	if err != nil {
		return domain.DateRange{}, err
	}
	end, err := v.ParseDate("end", endInput)
	if err != nil {
		return domain.DateRange{}, err
	}

	if !v.IsValidDateRange(start, end) {
		return domain.DateRange{}, errors.NewRangeOrderError(startInput, endInput)
	}

	return domain.NewDateRange(start, end), nil
}

// IsValidDateRange checks if a date range is logical
func (v *Validator) IsValidDateRange(start, end time.Time) bool {
	return start.Before(end) || start.Equal(end)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
