package util

import "time"

// DateLayout is the calendar-day layout used by upstream providers and the chart.
const DateLayout = "2006-01-02"

// TrailingWindow returns [now - days, now].
func TrailingWindow(now time.Time, days int) (time.Time, time.Time) {
	return now.AddDate(0, 0, -days), now
}

// FormatDate renders t as YYYY-MM-DD in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
