package model

import "time"

const dateLayout = "2006-01-02"

// Date is a calendar day in UTC, stored as "YYYY-MM-DD" text.
// Lexicographic comparison of Dates matches chronological order, both in
// Go and in SQLite date expressions.
type Date string

// Today returns the current UTC calendar day. All scheduling decisions
// run against this single day-granularity time source.
func Today() Date {
	return DateOf(time.Now())
}

// DateOf truncates t to its UTC calendar day.
func DateOf(t time.Time) Date {
	return Date(t.UTC().Format(dateLayout))
}

// AddDays returns the date n days after d. n may be negative.
func (d Date) AddDays(n int) Date {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return d
	}
	return Date(t.AddDate(0, 0, n).Format(dateLayout))
}

// Before reports whether d falls on an earlier day than other.
func (d Date) Before(other Date) bool { return d < other }

// After reports whether d falls on a later day than other.
func (d Date) After(other Date) bool { return d > other }

func (d Date) String() string { return string(d) }
