package utils

import "time"

// AgeInYears returns fractional years between birth and now; infant
// categories need sub-year resolution.
func AgeInYears(birth, now time.Time) float64 {
	if birth.IsZero() || birth.After(now) {
		return 0
	}
	return now.Sub(birth).Hours() / (24 * 365.25)
}

// CalculateAge returns whole years for display.
func CalculateAge(birth time.Time) int {
	now := time.Now()
	years := now.Year() - birth.Year()
	if now.YearDay() < birth.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
