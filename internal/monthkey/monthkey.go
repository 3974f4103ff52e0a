package monthkey

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format returns a month key like "2026-02".
func Format(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// FromDate returns the month key for a calendar day.
func FromDate(t time.Time) string {
	return Format(t.Year(), int(t.Month()))
}

// Parse parses "2026-02" into year and month.
func Parse(key string) (year, month int, err error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid month key format: %q", key)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in month key %q: %w", key, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month in month key %q: %w", key, err)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month out of range in month key %q", key)
	}

	return year, month, nil
}

// Valid reports whether key is a well-formed month key.
func Valid(key string) bool {
	_, _, err := Parse(key)
	return err == nil
}

// LastDay returns the number of days in the month.
// "2026-02" -> 28
func LastDay(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date returns the calendar day for a day-of-month inside the keyed month,
// clamping day to the month's last valid day.
func Date(key string, day int) (time.Time, error) {
	year, month, err := Parse(key)
	if err != nil {
		return time.Time{}, err
	}
	if day < 1 {
		day = 1
	}
	if last := LastDay(year, month); day > last {
		day = last
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// Prev returns the key of the preceding calendar month.
// "2026-01" -> "2025-12"
func Prev(key string) (string, error) {
	year, month, err := Parse(key)
	if err != nil {
		return "", err
	}
	month--
	if month == 0 {
		month = 12
		year--
	}
	return Format(year, month), nil
}

// Next returns the key of the following calendar month.
func Next(key string) (string, error) {
	year, month, err := Parse(key)
	if err != nil {
		return "", err
	}
	month++
	if month == 13 {
		month = 1
		year++
	}
	return Format(year, month), nil
}

// Contains reports whether a calendar day falls inside the keyed month.
func Contains(key string, t time.Time) bool {
	return FromDate(t) == key
}
