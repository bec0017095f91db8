package period_test

import (
	"testing"
	"time"

	"github.com/retailbooks/retail_accounting_app/internal/utils/period"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNormalize(t *testing.T) {
	in := time.Date(2024, time.March, 15, 17, 42, 9, 123, time.Local)
	assert.Equal(t, date(2024, time.March, 15), period.Normalize(in))
	// Already-normalized input is a no-op.
	assert.Equal(t, date(2024, time.March, 15), period.Normalize(date(2024, time.March, 15)))
}

func TestDayPeriod(t *testing.T) {
	start, end := period.DayPeriod(date(2024, time.March, 15))

	assert.Equal(t, date(2024, time.March, 15), start)
	assert.Equal(t, time.Date(2024, time.March, 16, 6, 0, 0, 0, time.Local), end)
}

func TestDayPeriod_LateNightSaleInsideWindow(t *testing.T) {
	_, end := period.DayPeriod(date(2024, time.March, 15))

	twoAM := time.Date(2024, time.March, 16, 2, 0, 0, 0, time.Local)
	sevenAM := time.Date(2024, time.March, 16, 7, 0, 0, 0, time.Local)

	assert.True(t, twoAM.Before(end), "02:00 next day belongs to the closing day")
	assert.False(t, sevenAM.Before(end), "07:00 next day belongs to the next period")
}

func TestDayPeriod_MonthEndRollover(t *testing.T) {
	_, end := period.DayPeriod(date(2024, time.January, 31))
	assert.Equal(t, time.Date(2024, time.February, 1, 6, 0, 0, 0, time.Local), end)

	// Leap day.
	_, end = period.DayPeriod(date(2024, time.February, 28))
	assert.Equal(t, time.Date(2024, time.February, 29, 6, 0, 0, 0, time.Local), end)
}

func TestMonthPeriod(t *testing.T) {
	start, end := period.MonthPeriod(date(2024, time.March, 31))

	assert.Equal(t, date(2024, time.March, 1), start)
	assert.Equal(t, time.Date(2024, time.April, 1, 6, 0, 0, 0, time.Local), end)
}

func TestMonthPeriod_YearEndRollover(t *testing.T) {
	start, end := period.MonthPeriod(date(2023, time.December, 31))

	assert.Equal(t, date(2023, time.December, 1), start)
	assert.Equal(t, time.Date(2024, time.January, 1, 6, 0, 0, 0, time.Local), end)
}

func TestNextDayAndPreviousDay(t *testing.T) {
	assert.Equal(t, date(2024, time.March, 1), period.NextDay(date(2024, time.February, 29)))
	assert.Equal(t, date(2024, time.February, 29), period.PreviousDay(date(2024, time.March, 1)))
	assert.Equal(t, date(2024, time.January, 1), period.NextDay(date(2023, time.December, 31)))
}

func TestNextMonthStart(t *testing.T) {
	assert.Equal(t, date(2024, time.April, 1), period.NextMonthStart(date(2024, time.March, 15)))
	assert.Equal(t, date(2025, time.January, 1), period.NextMonthStart(date(2024, time.December, 3)))
}

func TestIsPreviousCalendarMonth(t *testing.T) {
	assert.True(t, period.IsPreviousCalendarMonth(date(2024, time.February, 29), date(2024, time.March, 31)))
	assert.True(t, period.IsPreviousCalendarMonth(date(2023, time.December, 31), date(2024, time.January, 31)))
	assert.False(t, period.IsPreviousCalendarMonth(date(2024, time.January, 31), date(2024, time.March, 31)))
	// Same month is not the previous month.
	assert.False(t, period.IsPreviousCalendarMonth(date(2024, time.March, 1), date(2024, time.March, 31)))
}

func TestSameDay(t *testing.T) {
	assert.True(t, period.SameDay(
		time.Date(2024, time.March, 15, 23, 59, 0, 0, time.Local),
		time.Date(2024, time.March, 15, 0, 1, 0, 0, time.Local),
	))
	assert.False(t, period.SameDay(date(2024, time.March, 15), date(2024, time.March, 16)))
}
