package anthro

import "testing"

func TestClasificarIMCAdulto(t *testing.T) {
	casos := []struct {
		imc      float64
		esperado string
	}{
		{17.0, "Bajo peso"},
		{18.5, "Normal"},
		{24.9, "Normal"},
		{25.0, "Sobrepeso"},
		{30.0, "Obesidad grado I"},
		{35.0, "Obesidad grado II"},
		{40.0, "Obesidad grado III"},
	}
	for _, c := range casos {
		if got := ClasificarIMCAdulto(c.imc); got != c.esperado {
			t.Errorf("ClasificarIMCAdulto(%.1f) = %q, esperado %q", c.imc, got, c.esperado)
		}
	}
}

func TestClasificarIMCGeriatrico(t *testing.T) {
	casos := []struct {
		imc      float64
		esperado string
	}{
		{22.9, "Bajo peso"},
		{23.0, "Normal"},
		{27.9, "Normal"},
		{28.0, "Sobrepeso"},
		{32.0, "Obesidad"},
	}
	for _, c := range casos {
		if got := ClasificarIMCGeriatrico(c.imc); got != c.esperado {
			t.Errorf("ClasificarIMCGeriatrico(%.1f) = %q, esperado %q", c.imc, got, c.esperado)
		}
	}

	// A 24.0 is underweight-adjacent for adults but normal for 65+.
	if ClasificarIMCAdulto(24.0) != "Normal" || ClasificarIMCGeriatrico(24.0) != "Normal" {
		t.Error("24.0 debe ser Normal en ambas tablas")
	}
	if ClasificarIMCAdulto(26.0) != "Sobrepeso" {
		t.Error("26.0 debe ser Sobrepeso en adulto")
	}
	if ClasificarIMCGeriatrico(26.0) != "Normal" {
		t.Error("26.0 debe ser Normal en adulto mayor")
	}
}

func TestClasificarAtalah(t *testing.T) {
	// Week 28 cutoffs are 24.5 / 29.5 / 34.0; thresholds are strict.
	casos := []struct {
		imc      float64
		esperado string
	}{
		{24.4, "Bajo peso"},
		{24.5, "Normal"},
		{29.4, "Normal"},
		{29.5, "Sobrepeso"},
		{33.9, "Sobrepeso"},
		{34.0, "Obesidad"},
	}
	for _, c := range casos {
		if got := ClasificarAtalah(c.imc, 28); got != c.esperado {
			t.Errorf("ClasificarAtalah(%.1f, 28) = %q, esperado %q", c.imc, got, c.esperado)
		}
	}
}

func TestAtalahMonotonia(t *testing.T) {
	// Cutoffs rise with gestational week, so a fixed IMC can only move
	// toward lighter categories as the pregnancy advances.
	orden := map[string]int{"Bajo peso": 0, "Normal": 1, "Sobrepeso": 2, "Obesidad": 3}
	for _, imc := range []float64{21.0, 25.5, 29.5, 33.0} {
		previo := orden[ClasificarAtalah(imc, 6)]
		for semana := 7; semana <= 42; semana++ {
			actual := orden[ClasificarAtalah(imc, semana)]
			if actual > previo {
				t.Fatalf("IMC %.1f empeora de categoría entre semanas %d y %d", imc, semana-1, semana)
			}
			previo = actual
		}
	}
}

func TestAtalahSemanaFueraDeTabla(t *testing.T) {
	if ClasificarAtalah(22.0, 3) != ClasificarAtalah(22.0, 6) {
		t.Error("semana < 6 debe usar la fila de la semana 6")
	}
	if ClasificarAtalah(22.0, 44) != ClasificarAtalah(22.0, 42) {
		t.Error("semana > 42 debe usar la fila de la semana 42")
	}
}

func TestClasificarSomatotipo(t *testing.T) {
	casos := []struct {
		endo, meso, ecto float64
		esperado         string
	}{
		{4.0, 4.5, 3.8, "Central"},
		{3.0, 3.2, 3.4, "Central"},
		{6.0, 3.0, 3.0, "Endomorfo balanceado"},
		{6.0, 4.0, 2.0, "Meso-endomorfo"},
		{6.0, 2.0, 4.0, "Ecto-endomorfo"},
		{2.0, 6.0, 2.2, "Mesomorfo balanceado"},
		{4.0, 6.0, 2.0, "Endo-mesomorfo"},
		{2.0, 6.0, 4.0, "Ecto-mesomorfo"},
		{1.5, 1.8, 5.0, "Ectomorfo balanceado"},
		{1.0, 3.0, 5.0, "Meso-ectomorfo"},
		{3.0, 1.0, 5.0, "Endo-ectomorfo"},
		{5.0, 5.2, 2.0, "Endomorfo-mesomorfo"},
		{1.5, 5.0, 5.2, "Mesomorfo-ectomorfo"},
		{5.0, 1.5, 5.2, "Endomorfo-ectomorfo"},
	}
	for _, c := range casos {
		if got := ClasificarSomatotipo(c.endo, c.meso, c.ecto); got != c.esperado {
			t.Errorf("ClasificarSomatotipo(%.1f, %.1f, %.1f) = %q, esperado %q",
				c.endo, c.meso, c.ecto, got, c.esperado)
		}
	}
}
