package services

import "time"

// previousMonthWindow returns the half-open interval [first day of last
// month, first day of the current month) in the reference time's location.
func previousMonthWindow(ref time.Time) (from, to time.Time) {
	firstOfCurrent := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return firstOfCurrent.AddDate(0, -1, 0), firstOfCurrent
}
