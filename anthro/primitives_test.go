package anthro

import (
	"math"
	"testing"
)

func medicionISAKCompleta() MeasurementSet {
	return MeasurementSet{
		Peso:  75,
		Talla: 175,
		Edad:  25,
		Sexo:  Masculino,
		Pliegues: Pliegues{
			Triceps:      10,
			Subescapular: 12,
			Biceps:       5,
			CrestaIliaca: 15,
			Supraespinal: 8,
			Abdominal:    18,
			Muslo:        10,
			Pantorrilla:  6,
		},
		Perimetros: Perimetros{
			BrazoRelajado:   30,
			BrazoFlexionado: 32,
			Cintura:         80,
			Cadera:          95,
			Muslo:           55,
			Pantorrilla:     38,
		},
		Diametros: Diametros{
			Humero: 7.0,
			Femur:  9.8,
		},
	}
}

func TestCalcularIMC(t *testing.T) {
	imc, warns, err := CalcularIMC(75, 175)
	if err != nil {
		t.Fatalf("CalcularIMC: %v", err)
	}
	if len(warns) != 0 {
		t.Errorf("sin advertencias esperadas, hubo %v", warns)
	}
	if math.Abs(imc-24.49) > 0.01 {
		t.Errorf("imc = %.2f, esperado 24.49", imc)
	}

	if _, _, err := CalcularIMC(0, 175); err == nil {
		t.Error("peso cero debe ser error")
	}
	if _, _, err := CalcularIMC(75, 0); err == nil {
		t.Error("talla cero debe ser error")
	}

	// Implausible but present input clamps with a warning, no error.
	_, warns, err = CalcularIMC(75, 300)
	if err != nil {
		t.Fatalf("talla implausible no debe ser error: %v", err)
	}
	if len(warns) == 0 {
		t.Error("talla implausible debe generar advertencia")
	}
}

func TestDensidadDurninBandas(t *testing.T) {
	// Age inside a tabulated band: no clamp warning.
	d, warns, err := DensidadDurnin(10, 6, 12, 14, 14, Masculino)
	if err != nil {
		t.Fatalf("DensidadDurnin: %v", err)
	}
	if len(warns) != 0 {
		t.Errorf("edad 14 está tabulada, advertencias inesperadas: %v", warns)
	}
	esperado := 1.1533 - 0.0643*math.Log10(42)
	if math.Abs(d-esperado) > 1e-9 {
		t.Errorf("densidad = %.4f, esperado %.4f", d, esperado)
	}

	// Ages outside the table clamp to the nearest band and warn.
	for _, edad := range []float64{5, 25} {
		_, warns, err := DensidadDurnin(10, 6, 12, 14, edad, Masculino)
		if err != nil {
			t.Fatalf("edad %.0f: %v", edad, err)
		}
		if len(warns) == 0 {
			t.Errorf("edad %.0f fuera de banda debe advertir el ajuste", edad)
		}
	}

	// Fractional ages between consecutive bands resolve to the lower
	// band without a warning.
	d125, warns, err := DensidadDurnin(10, 6, 12, 14, 12.5, Masculino)
	if err != nil {
		t.Fatalf("edad 12.5: %v", err)
	}
	if len(warns) != 0 {
		t.Errorf("edad 12.5 está dentro del rango tabulado, advertencias inesperadas: %v", warns)
	}
	d12, _, _ := DensidadDurnin(10, 6, 12, 14, 12, Masculino)
	if math.Abs(d125-d12) > 1e-9 {
		t.Errorf("edad 12.5 debe usar la banda 6-12: %.4f != %.4f", d125, d12)
	}
	d165, warns, err := DensidadDurnin(10, 6, 12, 14, 16.5, Masculino)
	if err != nil {
		t.Fatalf("edad 16.5: %v", err)
	}
	if len(warns) != 0 {
		t.Errorf("edad 16.5 está dentro del rango tabulado, advertencias inesperadas: %v", warns)
	}
	d16, _, _ := DensidadDurnin(10, 6, 12, 14, 16, Masculino)
	if math.Abs(d165-d16) > 1e-9 {
		t.Errorf("edad 16.5 debe usar la banda 13-16: %.4f != %.4f", d165, d16)
	}

	// Age 25 must clamp to the oldest band, age 5 to the youngest.
	d25, _, _ := DensidadDurnin(10, 6, 12, 14, 25, Masculino)
	d18, _, _ := DensidadDurnin(10, 6, 12, 14, 18, Masculino)
	if math.Abs(d25-d18) > 1e-9 {
		t.Errorf("edad 25 debe usar la banda 17-19: %.4f != %.4f", d25, d18)
	}
	d5, _, _ := DensidadDurnin(10, 6, 12, 14, 5, Masculino)
	d10, _, _ := DensidadDurnin(10, 6, 12, 14, 10, Masculino)
	if math.Abs(d5-d10) > 1e-9 {
		t.Errorf("edad 5 debe usar la banda 6-12: %.4f != %.4f", d5, d10)
	}
}

func TestGrasaSiri(t *testing.T) {
	g, warns, err := GrasaSiri(1.06)
	if err != nil {
		t.Fatalf("GrasaSiri: %v", err)
	}
	if len(warns) != 0 {
		t.Errorf("advertencias inesperadas: %v", warns)
	}
	esperado := 495.0/1.06 - 450.0
	if math.Abs(g-esperado) > 1e-9 {
		t.Errorf("grasa = %.2f, esperado %.2f", g, esperado)
	}

	// Degenerate density clamps to the physiological range and warns.
	g, warns, err = GrasaSiri(1.2)
	if err != nil {
		t.Fatalf("GrasaSiri densidad alta: %v", err)
	}
	if g != grasaMin {
		t.Errorf("grasa = %.2f, esperado piso %.0f", g, grasaMin)
	}
	if len(warns) == 0 {
		t.Error("clamp de grasa debe advertir")
	}
}

func TestGrasaSlaughterRamas(t *testing.T) {
	// Male quadratic branch, intercept keyed by maturation.
	gPre, _, err := GrasaSlaughter(8, 7, Masculino, PrePuber)
	if err != nil {
		t.Fatalf("Slaughter prepuber: %v", err)
	}
	gPost, _, err := GrasaSlaughter(8, 7, Masculino, PostPuber)
	if err != nil {
		t.Fatalf("Slaughter postpuber: %v", err)
	}
	if math.Abs((gPre-gPost)-(5.5-1.7)) > 1e-9 {
		t.Errorf("la diferencia entre etapas debe ser la de los interceptos: %.2f vs %.2f", gPre, gPost)
	}

	// Above 35 mm the male equation is linear and no longer depends on
	// maturation.
	gA, _, err := GrasaSlaughter(25, 15, Masculino, PrePuber)
	if err != nil {
		t.Fatalf("Slaughter lineal: %v", err)
	}
	gB, _, _ := GrasaSlaughter(25, 15, Masculino, PostPuber)
	if math.Abs(gA-gB) > 1e-9 {
		t.Errorf("por encima de 35 mm la etapa no debe influir: %.2f vs %.2f", gA, gB)
	}
	esperado := 0.783*40 + 1.6
	if math.Abs(gA-esperado) > 1e-9 {
		t.Errorf("rama lineal varón = %.2f, esperado %.2f", gA, esperado)
	}

	// Female equations ignore maturation entirely.
	gF, _, err := GrasaSlaughter(12, 10, Femenino, "")
	if err != nil {
		t.Fatalf("Slaughter femenino: %v", err)
	}
	esperadoF := 1.33*22 - 0.013*22*22 - 2.5
	if math.Abs(gF-esperadoF) > 1e-9 {
		t.Errorf("rama femenina = %.2f, esperado %.2f", gF, esperadoF)
	}

	if _, _, err := GrasaSlaughter(0, 0, Masculino, Puber); err == nil {
		t.Error("pliegues ausentes deben ser error")
	}
}

func TestFraccionamientoKerrSumaInvariante(t *testing.T) {
	m := medicionISAKCompleta()
	f, _, err := FraccionamientoKerr(&m, DefaultFallbacks())
	if err != nil {
		t.Fatalf("FraccionamientoKerr: %v", err)
	}
	if desvio := math.Abs(f.Suma() - m.Peso); desvio > ToleranciaSumaKerr {
		t.Errorf("las fracciones suman %.2f kg con peso %.2f kg, desvío %.2f > %.2f",
			f.Suma(), m.Peso, desvio, ToleranciaSumaKerr)
	}
	for nombre, masa := range map[string]float64{
		"piel":     f.MasaPiel,
		"adiposa":  f.MasaAdiposa,
		"muscular": f.MasaMuscular,
		"osea":     f.MasaOsea,
		"residual": f.MasaResidual,
	} {
		if masa <= 0 {
			t.Errorf("masa %s = %.2f, debe ser positiva", nombre, masa)
		}
	}
	if f.MasaMuscular <= f.MasaPiel {
		t.Errorf("masa muscular (%.2f) debería superar la masa de piel (%.2f)", f.MasaMuscular, f.MasaPiel)
	}
}

func TestFraccionamientoKerrCamposFaltantes(t *testing.T) {
	m := medicionISAKCompleta()
	m.Diametros.Femur = 0
	_, _, err := FraccionamientoKerr(&m, DefaultFallbacks())
	mfe, ok := err.(*MissingFieldsError)
	if !ok {
		t.Fatalf("esperado *MissingFieldsError, fue %T (%v)", err, err)
	}
	if len(mfe.Campos) != 1 || mfe.Campos[0] != "diametros.femur" {
		t.Errorf("campos faltantes = %v, esperado [diametros.femur]", mfe.Campos)
	}
}

func TestCalcularSomatotipo(t *testing.T) {
	m := medicionISAKCompleta()
	s, err := CalcularSomatotipo(&m)
	if err != nil {
		t.Fatalf("CalcularSomatotipo: %v", err)
	}
	if s.Endomorfia < 0.1 || s.Mesomorfia < 0.5 || s.Ectomorfia < 0.1 {
		t.Errorf("componentes por debajo de los pisos: %+v", s)
	}
	if s.Endomorfia > 10 || s.Mesomorfia > 10 || s.Ectomorfia > 10 {
		t.Errorf("componentes fuera de rango plausible: %+v", s)
	}
}

func TestIndiceCinturaTalla(t *testing.T) {
	casos := []struct {
		cintura, talla float64
		nivel          NivelRiesgo
	}{
		{80, 175, RiesgoBajo},
		{90, 175, RiesgoAlto},
		{110, 175, RiesgoMuyAlto},
	}
	for _, c := range casos {
		r, err := IndiceCinturaTalla(c.cintura, c.talla)
		if err != nil {
			t.Fatalf("IndiceCinturaTalla(%.0f, %.0f): %v", c.cintura, c.talla, err)
		}
		if r.Nivel != c.nivel {
			t.Errorf("cintura %.0f: nivel %s, esperado %s", c.cintura, r.Nivel, c.nivel)
		}
	}
}

func TestIndiceCinturaCaderaPorEdad(t *testing.T) {
	// The same ratio crosses thresholds differently across age bands.
	joven, err := IndiceCinturaCadera(91, 100, Masculino, 30)
	if err != nil {
		t.Fatalf("ICC joven: %v", err)
	}
	mayor, err := IndiceCinturaCadera(91, 100, Masculino, 65)
	if err != nil {
		t.Fatalf("ICC mayor: %v", err)
	}
	if joven.Nivel != RiesgoModerado {
		t.Errorf("0.91 a los 30 = %s, esperado moderado", joven.Nivel)
	}
	if mayor.Nivel != RiesgoBajo {
		t.Errorf("0.91 a los 65 = %s, esperado bajo", mayor.Nivel)
	}

	// Fractional ages near a band boundary stay in their own band
	// instead of sliding to the most lenient thresholds.
	casi40, err := IndiceCinturaCadera(91, 100, Masculino, 39.5)
	if err != nil {
		t.Fatalf("ICC 39.5 años: %v", err)
	}
	if casi40.Nivel != RiesgoModerado {
		t.Errorf("0.91 a los 39.5 = %s, esperado moderado", casi40.Nivel)
	}
	casi60, err := IndiceCinturaCadera(91, 100, Masculino, 59.5)
	if err != nil {
		t.Fatalf("ICC 59.5 años: %v", err)
	}
	if casi60.Nivel != RiesgoBajo {
		t.Errorf("0.91 a los 59.5 = %s, esperado bajo (banda 40-59, corte 0.92)", casi60.Nivel)
	}
}

func TestObesidadAbdominal(t *testing.T) {
	presente, _, err := ObesidadAbdominal(103, Masculino)
	if err != nil {
		t.Fatalf("ObesidadAbdominal: %v", err)
	}
	if !presente {
		t.Error("103 cm en varón debe marcar obesidad abdominal")
	}
	presente, _, err = ObesidadAbdominal(87, Femenino)
	if err != nil {
		t.Fatalf("ObesidadAbdominal: %v", err)
	}
	if presente {
		t.Error("87 cm en mujer no alcanza el corte de 88")
	}
}
