package engine

import "time"

// MonthsBetween returns the number of whole months from start to end,
// counting the partial final month whenever end's day of month is on or past
// start's. A contract from Jan 1 2024 to Dec 31 2025 is 24 months; Jan 1 2024
// to Jan 1 2026 is 25. Every facility and loan figure depends on this exact
// convention, so it stays as-is even though it over-counts same-day spans.
func MonthsBetween(start, end time.Time) int {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() >= start.Day() {
		months++
	}
	if months < 0 {
		return 0
	}
	return months
}
