// Package period holds the pure date arithmetic behind period closings: day
// and month windows, the late-night grace cutoff, and the helpers the
// sequential-order check relies on. Keeping these free of I/O makes the
// off-by-one-prone boundary math independently testable.
package period

import "time"

// GraceHours extends a period past midnight so transactions entered for a
// business day that runs past 00:00 (late-night shifts) still fall inside it.
// A day closed for D therefore aggregates up to 06:00 on D+1.
const GraceHours = 6

// Normalize truncates t to midnight in its own location.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayPeriod returns the aggregation window for a standalone day closing of
// date: midnight of date up to 06:00 the following calendar day.
func DayPeriod(date time.Time) (start, end time.Time) {
	start = Normalize(date)
	end = start.AddDate(0, 0, 1).Add(GraceHours * time.Hour)
	return start, end
}

// MonthPeriod returns the aggregation window for a standalone month closing
// of date: first of the month at midnight up to 06:00 on the first day of the
// following month.
func MonthPeriod(date time.Time) (start, end time.Time) {
	start = MonthStart(date)
	end = NextMonthStart(date).Add(GraceHours * time.Hour)
	return start, end
}

// NextDay returns midnight of the calendar day after date.
func NextDay(date time.Time) time.Time {
	return Normalize(date).AddDate(0, 0, 1)
}

// PreviousDay returns midnight of the calendar day before date.
func PreviousDay(date time.Time) time.Time {
	return Normalize(date).AddDate(0, 0, -1)
}

// MonthStart returns midnight on the first day of date's month.
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// NextMonthStart returns midnight on the first day of the month after date.
// AddDate handles the December rollover.
func NextMonthStart(date time.Time) time.Time {
	return MonthStart(date).AddDate(0, 1, 0)
}

// IsPreviousCalendarMonth reports whether prev falls in the calendar month
// immediately before date's month.
func IsPreviousCalendarMonth(prev, date time.Time) bool {
	expected := MonthStart(date).AddDate(0, -1, 0)
	return prev.Year() == expected.Year() && prev.Month() == expected.Month()
}

// SameDay reports whether a and b are the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	return Normalize(a).Equal(Normalize(b))
}
