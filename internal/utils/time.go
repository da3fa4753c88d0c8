package utils

import (
	"fmt"
	"time"

	"daytrack/internal/constants"
)

// GetTodayInTimezone returns today's date string (YYYY-MM-DD) in the specified timezone.
// This ensures that "today" is determined by the user's configured timezone, not the system timezone.
func GetTodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ValidateDateFormat checks that the string matches the standard date format.
func ValidateDateFormat(dateStr string) error {
	if _, err := ParseDate(dateStr); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD format", dateStr)
	}
	return nil
}

// DaysBetween returns the number of calendar days from b to a. Both times
// are truncated to their calendar date first, so time-of-day and DST shifts
// cannot skew the result.
func DaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ad.Sub(bd).Hours() / 24)
}

// IsNextDay reports whether the date string cur is exactly one calendar day
// after prev. Invalid dates are never consecutive.
func IsNextDay(prev, cur string) bool {
	p, err := ParseDate(prev)
	if err != nil {
		return false
	}
	c, err := ParseDate(cur)
	if err != nil {
		return false
	}
	return DaysBetween(c, p) == 1
}
