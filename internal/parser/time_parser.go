package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseTimestamp parses the timestamp formats accepted on time adjustment
// Supported formats:
// - dd/mm/yyyy hh:mm (e.g., "15/12/2024 08:30")
// - hh:mm (e.g., "08:30", taken on ref's calendar day)
func ParseTimestamp(input string, ref time.Time) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}

	input = strings.TrimSpace(input)

	// Try full date + time first
	if ts, err := parseDateTime(input); err == nil {
		return ts, nil
	}

	// Try bare clock time on ref's day
	if ts, err := parseClockTime(input, ref); err == nil {
		return ts, nil
	}

	return nil, fmt.Errorf("invalid time format. Use: dd/mm/yyyy hh:mm or hh:mm")
}

// parseDateTime parses dd/mm/yyyy hh:mm
func parseDateTime(input string) (*time.Time, error) {
	dateTimeRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})\s+(\d{1,2}):(\d{2})$`)
	matches := dateTimeRegex.FindStringSubmatch(input)

	if len(matches) != 6 {
		return nil, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])
	hour, _ := strconv.Atoi(matches[4])
	minute, _ := strconv.Atoi(matches[5])

	// Validate ranges
	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("year must be between 2000 and 2100")
	}
	if hour > 23 {
		return nil, fmt.Errorf("hour must be between 0 and 23")
	}
	if minute > 59 {
		return nil, fmt.Errorf("minute must be between 0 and 59")
	}

	ts := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)

	// Check if date is valid (handles leap years, etc.)
	if ts.Day() != day || ts.Month() != time.Month(month) || ts.Year() != year {
		return nil, fmt.Errorf("invalid date")
	}

	return &ts, nil
}

// parseClockTime parses hh:mm on the reference day
func parseClockTime(input string, ref time.Time) (*time.Time, error) {
	clockRegex := regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	matches := clockRegex.FindStringSubmatch(input)

	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid clock time format")
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])

	if hour > 23 {
		return nil, fmt.Errorf("hour must be between 0 and 23")
	}
	if minute > 59 {
		return nil, fmt.Errorf("minute must be between 0 and 59")
	}

	ts := time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location())
	return &ts, nil
}

// FormatTimestamp formats a timestamp for display in confirmations
func FormatTimestamp(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.Format("02/01/2006 15:04")
}
