package util

import "time"

var (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// FormatSQLDate renders a driver time value the way the dashboard expects:
// plain DATE columns as YYYY-MM-DD, anything with a time component as an
// ISO-8601 timestamp.
func FormatSQLDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(dateLayout)
	}
	return t.Format(dateTimeLayout)
}
