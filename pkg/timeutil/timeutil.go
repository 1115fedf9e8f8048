package timeutil

import "time"

// DayBounds returns the inclusive start and end of the day containing t, in
// t's location. Used to count same-day matches when assigning match numbers.
func DayBounds(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
	return start, end
}

// MonthBounds returns the inclusive start and end of a month in the current
// year.
func MonthBounds(month int, loc *time.Location) (time.Time, time.Time) {
	year := time.Now().Year()
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
