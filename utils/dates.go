// utils/dates.go
package utils

import "time"

// BeginningOfDay truncates t to midnight in its own location. Visit
// reminders use it to frame whole-day booking windows.
func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
