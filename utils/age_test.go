package utils

import (
	"math"
	"testing"
	"time"
)

func TestAgeInYears(t *testing.T) {
	now := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	birth := now.AddDate(-30, 0, 0)
	if edad := AgeInYears(birth, now); math.Abs(edad-30) > 0.05 {
		t.Errorf("edad = %.2f, esperado ~30", edad)
	}

	// Infants need fractional years.
	bebe := now.AddDate(0, -18, 0)
	if edad := AgeInYears(bebe, now); edad < 1.4 || edad > 1.6 {
		t.Errorf("edad = %.2f, esperado ~1.5", edad)
	}

	if AgeInYears(time.Time{}, now) != 0 {
		t.Error("fecha de nacimiento vacía debe dar 0")
	}
	if AgeInYears(now.AddDate(1, 0, 0), now) != 0 {
		t.Error("fecha futura debe dar 0")
	}
}

func TestCalculateAge(t *testing.T) {
	now := time.Now()
	if got := CalculateAge(now.AddDate(-40, 0, -1)); got != 40 {
		t.Errorf("edad = %d, esperado 40", got)
	}
	if got := CalculateAge(now.AddDate(-40, 0, 1)); got != 39 {
		t.Errorf("edad = %d, esperado 39 (cumpleaños pendiente)", got)
	}
}
