// Package dateutil provides the calendar-day and weekday arithmetic shared by
// the attendance and schedule modules.
package dateutil

import "time"

// IsoWeekday maps t to ISO-like weekday numbering: Monday=1 .. Saturday=6,
// Sunday=7. This remapping of Go's Sunday=0 is relied on by schedule lookups
// and must not change.
func IsoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// DayStart floors t to local midnight.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayBounds returns the half-open window [local midnight, +24h) containing t.
func DayBounds(t time.Time) (start, end time.Time) {
	start = DayStart(t)
	return start, start.AddDate(0, 0, 1)
}

// MonthBounds parses month in "2006-01" form and returns the half-open window
// [first day, first day of next month).
func MonthBounds(month string, loc *time.Location) (start, end time.Time, err error) {
	start, err = time.ParseInLocation("2006-01", month, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, 0), nil
}
