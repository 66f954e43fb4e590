package anthro

import (
	"fmt"
	"math"
)

// Formula primitives. Each implements one published equation as a pure
// function of numeric inputs, with no knowledge of patient records or
// population categories. Out-of-range numeric input clamps to the
// documented physiological bound and reports a warning; only a
// structurally absent input (zero where a denominator or mandatory
// measurement is needed) produces an error.

const (
	tallaPhantom = 170.18 // cm, Phantom stature (Ross & Kerr)

	grasaMin = 3.0 // % body fat physiological floor
	grasaMax = 50.0

	// ToleranciaSumaKerr is the self-consistency bound: the five
	// reported mass fractions must sum to total body mass within it.
	ToleranciaSumaKerr = 0.5 // kg

	// Raw (pre-adjustment) structured-sum deviations beyond this
	// suggest a measurement error and are surfaced as a warning.
	desvioInconsistenteKerr = 2.0 // kg
)

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ---------- IMC ----------

// CalcularIMC expects talla in centimeters and peso in kilograms.
// Implausible but present values are clamped and reported; absent
// values are an error.
func CalcularIMC(peso, tallaCm float64) (float64, []string, error) {
	if peso <= 0 {
		return 0, nil, &ErrInsumoInvalido{Campo: "peso", Motivo: "debe ser positivo"}
	}
	if tallaCm <= 0 {
		return 0, nil, &ErrInsumoInvalido{Campo: "talla", Motivo: "debe ser positiva"}
	}
	var warns []string
	if tallaCm < 40 || tallaCm > 250 {
		warns = append(warns, fmt.Sprintf("Talla %.1f cm fuera del rango plausible (40-250); se ajustó al límite.", tallaCm))
		tallaCm = clamp(tallaCm, 40, 250)
	}
	if peso < 2 || peso > 400 {
		warns = append(warns, fmt.Sprintf("Peso %.1f kg fuera del rango plausible (2-400); se ajustó al límite.", peso))
		peso = clamp(peso, 2, 400)
	}
	h := tallaCm / 100.0
	return peso / (h * h), warns, nil
}

// ---------- Durnin & Womersley ----------

// DensidadDurnin computes body density (g/cm3) from the four Durnin
// skinfolds via density = c - m*log10(suma). The (c, m) pair comes from
// the age-band x sex table; ages outside the tabulated bands clamp to
// the nearest band and report it.
func DensidadDurnin(triceps, biceps, subescapular, suprailiaco, edad float64, sexo Sexo) (float64, []string, error) {
	suma := triceps + biceps + subescapular + suprailiaco
	if suma <= 0 {
		return 0, nil, &ErrInsumoInvalido{Campo: "pliegues", Motivo: "la suma de pliegues debe ser positiva"}
	}
	banda, ajustada := resolverBandaDurnin(sexo, edad)
	var warns []string
	if ajustada {
		warns = append(warns, fmt.Sprintf(
			"Edad %.0f fuera de las bandas tabuladas de Durnin; se usaron los coeficientes de la banda %.0f-%.0f años.",
			edad, banda.EdadMin, banda.EdadMax))
	}
	return banda.C - banda.M*math.Log10(suma), warns, nil
}

// GrasaSiri converts body density to percent body fat
// (%grasa = 495/densidad - 450), clamped to [3, 50] to reject
// non-physiological outputs from bad inputs.
func GrasaSiri(densidad float64) (float64, []string, error) {
	if densidad <= 0 {
		return 0, nil, &ErrInsumoInvalido{Campo: "densidad", Motivo: "debe ser positiva"}
	}
	grasa := 495.0/densidad - 450.0
	if grasa < grasaMin || grasa > grasaMax {
		return clamp(grasa, grasaMin, grasaMax), []string{fmt.Sprintf(
			"%%grasa calculado %.1f fuera del rango fisiológico; se ajustó a [%.0f, %.0f]. Revise los pliegues.",
			grasa, grasaMin, grasaMax)}, nil
	}
	return grasa, nil, nil
}

// GrasaSlaughter computes pediatric percent body fat from the
// triceps+subescapular sum. Quadratic up to 35 mm with a sex- and
// maturation-keyed intercept for males, linear above 35 mm. Clamped to
// [3, 50].
func GrasaSlaughter(triceps, subescapular float64, sexo Sexo, etapa EtapaMaduracion) (float64, []string, error) {
	suma := triceps + subescapular
	if suma <= 0 {
		return 0, nil, &ErrInsumoInvalido{Campo: "pliegues", Motivo: "triceps y subescapular son requeridos"}
	}
	var grasa float64
	switch {
	case sexo == Masculino && suma <= 35:
		intercepto, ok := interceptoSlaughterVaron[etapa]
		if !ok {
			return 0, nil, &ErrInsumoInvalido{Campo: "tanner", Motivo: fmt.Sprintf("etapa de maduración desconocida %q", etapa)}
		}
		grasa = 1.21*suma - 0.008*suma*suma - intercepto
	case sexo == Masculino:
		grasa = 0.783*suma + 1.6
	case suma <= 35:
		grasa = 1.33*suma - 0.013*suma*suma - 2.5
	default:
		grasa = 0.546*suma + 9.7
	}
	if grasa < grasaMin || grasa > grasaMax {
		return clamp(grasa, grasaMin, grasaMax), []string{fmt.Sprintf(
			"%%grasa Slaughter %.1f fuera del rango fisiológico; se ajustó a [%.0f, %.0f].", grasa, grasaMin, grasaMax)}, nil
	}
	return grasa, nil, nil
}

// ---------- Ross-Kerr five-way fractionation ----------

// Fraccionamiento holds the five mass components in kilograms. The
// reported masses are adjusted so they sum to total body mass;
// SumaEstructurada keeps the raw pre-adjustment sum for the
// consistency check.
type Fraccionamiento struct {
	MasaPiel         float64 `json:"masa_piel"`
	MasaAdiposa      float64 `json:"masa_adiposa"`
	MasaMuscular     float64 `json:"masa_muscular"`
	MasaOsea         float64 `json:"masa_osea"`
	MasaResidual     float64 `json:"masa_residual"`
	SumaEstructurada float64 `json:"suma_estructurada"`
}

// Suma returns the total of the five adjusted fractions.
func (f Fraccionamiento) Suma() float64 {
	return f.MasaPiel + f.MasaAdiposa + f.MasaMuscular + f.MasaOsea + f.MasaResidual
}

// camposKerr lists what the fractionation needs from a MeasurementSet.
func camposKerr(m *MeasurementSet) []string {
	var faltan []string
	req := []struct {
		nombre string
		valor  float64
	}{
		{"peso", m.Peso},
		{"talla", m.Talla},
		{"pliegues.triceps", m.Pliegues.Triceps},
		{"pliegues.subescapular", m.Pliegues.Subescapular},
		{"pliegues.supraespinal", m.Pliegues.Supraespinal},
		{"pliegues.abdominal", m.Pliegues.Abdominal},
		{"pliegues.muslo", m.Pliegues.Muslo},
		{"pliegues.pantorrilla", m.Pliegues.Pantorrilla},
		{"perimetros.brazo_relajado", m.Perimetros.BrazoRelajado},
		{"perimetros.cintura", m.Perimetros.Cintura},
		{"perimetros.muslo", m.Perimetros.Muslo},
		{"perimetros.pantorrilla", m.Perimetros.Pantorrilla},
		{"diametros.humero", m.Diametros.Humero},
		{"diametros.femur", m.Diametros.Femur},
	}
	for _, r := range req {
		if r.valor <= 0 {
			faltan = append(faltan, r.nombre)
		}
	}
	return faltan
}

// FraccionamientoKerr computes the five-component fractionation (piel,
// adiposa, muscular, ósea, residual) via Phantom z-scores and adjusts
// the components proportionally to measured body mass, so the reported
// fractions always satisfy the +-0.5 kg sum invariant. A raw structured
// sum deviating from body mass by more than 2 kg is flagged as a
// probable measurement inconsistency, not an error.
func FraccionamientoKerr(m *MeasurementSet, fb FallbackConfig) (Fraccionamiento, []string, error) {
	if faltan := camposKerr(m); len(faltan) > 0 {
		return Fraccionamiento{}, nil, &MissingFieldsError{Campos: faltan}
	}

	var warns []string
	escala := tallaPhantom / m.Talla
	volumen := math.Pow(m.Talla/tallaPhantom, 3)

	// Piel: superficie corporal (Du Bois) por grosor de piel.
	superficie := 0.007184 * math.Pow(m.Peso, 0.425) * math.Pow(m.Talla, 0.725) // m2
	grosor := 2.07
	if m.Sexo == Femenino {
		grosor = 1.96
	}
	piel := superficie * grosor * 1.05

	// Adiposa: suma de seis pliegues corregida a la talla Phantom.
	suma6 := m.Pliegues.Triceps + m.Pliegues.Subescapular + m.Pliegues.Supraespinal +
		m.Pliegues.Abdominal + m.Pliegues.Muslo + m.Pliegues.Pantorrilla
	zAdiposa := (suma6*escala - 116.41) / 34.79
	adiposa := (zAdiposa*5.85 + 25.6) * volumen

	// Muscular: perímetros corregidos por el pliegue correspondiente.
	if !fb.AproximarPerimetrosKerr {
		return Fraccionamiento{}, nil, &ErrInsumoInvalido{
			Campo:  "perimetros",
			Motivo: "tórax y antebrazo no se miden y la aproximación está deshabilitada",
		}
	}
	torax := m.Perimetros.Cintura * 1.12
	antebrazo := m.Perimetros.BrazoRelajado * 0.85
	warns = append(warns,
		"Perímetro de tórax estimado como 1.12 × cintura (aproximación documentada).",
		"Perímetro de antebrazo estimado como 0.85 × brazo relajado (aproximación documentada).")

	brazoCorr := m.Perimetros.BrazoRelajado - math.Pi*m.Pliegues.Triceps/10
	musloCorr := m.Perimetros.Muslo - math.Pi*m.Pliegues.Muslo/10
	pantorrillaCorr := m.Perimetros.Pantorrilla - math.Pi*m.Pliegues.Pantorrilla/10
	toraxCorr := torax - math.Pi*m.Pliegues.Subescapular/10

	sumaPerimetros := brazoCorr + antebrazo + musloCorr + pantorrillaCorr + toraxCorr
	zMuscular := (sumaPerimetros*escala - 207.21) / 13.74
	muscular := (zMuscular*5.4 + 24.5) * volumen

	// Ósea: diámetros de húmero y fémur.
	zOsea := ((m.Diametros.Humero+m.Diametros.Femur)*escala - 16.00) / 0.83
	osea := (zOsea*1.57 + 10.49) * volumen

	// Residual: perímetro de cintura como proxy del tronco.
	zResidual := (m.Perimetros.Cintura*escala - 71.91) / 4.45
	residual := (zResidual*1.39 + 11.50) * volumen

	// Degenerate inputs can push a z-score far enough negative to
	// produce a non-physical mass; floor before adjusting.
	const pisoMasa = 0.1
	for _, p := range []*float64{&piel, &adiposa, &muscular, &osea, &residual} {
		if *p < pisoMasa {
			warns = append(warns, "Una fracción de masa resultó no fisiológica y se ajustó al piso de 0.1 kg; revise las mediciones.")
			*p = pisoMasa
		}
	}

	sumaBruta := piel + adiposa + muscular + osea + residual
	if desvio := math.Abs(sumaBruta - m.Peso); desvio > desvioInconsistenteKerr {
		warns = append(warns, fmt.Sprintf(
			"La suma estructurada (%.1f kg) difiere del peso corporal (%.1f kg) en %.1f kg; posible error de medición.",
			sumaBruta, m.Peso, desvio))
	}

	ajuste := m.Peso / sumaBruta
	return Fraccionamiento{
		MasaPiel:         round2(piel * ajuste),
		MasaAdiposa:      round2(adiposa * ajuste),
		MasaMuscular:     round2(muscular * ajuste),
		MasaOsea:         round2(osea * ajuste),
		MasaResidual:     round2(residual * ajuste),
		SumaEstructurada: round2(sumaBruta),
	}, warns, nil
}

// ---------- Heath-Carter somatotype ----------

// Somatotipo is the endomorphy/mesomorphy/ectomorphy triple.
type Somatotipo struct {
	Endomorfia float64 `json:"endomorfia"`
	Mesomorfia float64 `json:"mesomorfia"`
	Ectomorfia float64 `json:"ectomorfia"`
}

func camposSomatotipo(m *MeasurementSet) []string {
	var faltan []string
	req := []struct {
		nombre string
		valor  float64
	}{
		{"peso", m.Peso},
		{"talla", m.Talla},
		{"pliegues.triceps", m.Pliegues.Triceps},
		{"pliegues.subescapular", m.Pliegues.Subescapular},
		{"pliegues.supraespinal", m.Pliegues.Supraespinal},
		{"pliegues.pantorrilla", m.Pliegues.Pantorrilla},
		{"perimetros.brazo_flexionado", m.Perimetros.BrazoFlexionado},
		{"perimetros.pantorrilla", m.Perimetros.Pantorrilla},
		{"diametros.humero", m.Diametros.Humero},
		{"diametros.femur", m.Diametros.Femur},
	}
	for _, r := range req {
		if r.valor <= 0 {
			faltan = append(faltan, r.nombre)
		}
	}
	return faltan
}

// CalcularSomatotipo computes the Heath-Carter somatotype. Floors (0.1
// endo, 0.5 meso, 0.1 ecto) prevent degenerate non-positive components
// from reaching the classifier.
func CalcularSomatotipo(m *MeasurementSet) (Somatotipo, error) {
	if faltan := camposSomatotipo(m); len(faltan) > 0 {
		return Somatotipo{}, &MissingFieldsError{Campos: faltan}
	}

	// Endomorfia: suma de tres pliegues corregida por talla, polinomio cúbico.
	x := (m.Pliegues.Triceps + m.Pliegues.Subescapular + m.Pliegues.Supraespinal) * (tallaPhantom / m.Talla)
	endo := -0.7182 + 0.1451*x - 0.00068*x*x + 0.0000014*x*x*x
	if endo < 0.1 {
		endo = 0.1
	}

	// Mesomorfia: diámetros más perímetros corregidos, menos término de talla.
	brazoCorr := m.Perimetros.BrazoFlexionado - m.Pliegues.Triceps/10
	pantorrillaCorr := m.Perimetros.Pantorrilla - m.Pliegues.Pantorrilla/10
	meso := 0.858*m.Diametros.Humero + 0.601*m.Diametros.Femur +
		0.188*brazoCorr + 0.161*pantorrillaCorr - 0.131*m.Talla + 4.5
	if meso < 0.5 {
		meso = 0.5
	}

	// Ectomorfia: cociente talla/peso^(1/3), fórmula lineal por tramos.
	hwr := m.Talla / math.Cbrt(m.Peso)
	var ecto float64
	switch {
	case hwr >= 40.75:
		ecto = 0.732*hwr - 28.58
	case hwr > 38.25:
		ecto = 0.463*hwr - 17.63
	default:
		ecto = 0.1
	}
	if ecto < 0.1 {
		ecto = 0.1
	}

	return Somatotipo{
		Endomorfia: round2(endo),
		Mesomorfia: round2(meso),
		Ectomorfia: round2(ecto),
	}, nil
}

// ---------- Cardiometabolic ratios ----------

// RatioRiesgo pairs a computed ratio with its risk tier and a
// display-ready interpretation.
type RatioRiesgo struct {
	Valor          float64     `json:"valor"`
	Nivel          NivelRiesgo `json:"nivel"`
	Interpretacion string      `json:"interpretacion"`
}

// IndiceCinturaTalla computes waist-to-height; 0.5 and 0.6 are the
// accepted risk cutoffs for both sexes.
func IndiceCinturaTalla(cintura, talla float64) (RatioRiesgo, error) {
	if cintura <= 0 || talla <= 0 {
		return RatioRiesgo{}, &ErrInsumoInvalido{Campo: "cintura/talla", Motivo: "ambos deben ser positivos"}
	}
	r := cintura / talla
	out := RatioRiesgo{Valor: round2(r)}
	switch {
	case r < 0.5:
		out.Nivel = RiesgoBajo
		out.Interpretacion = "Índice cintura/talla dentro del rango saludable."
	case r < 0.6:
		out.Nivel = RiesgoAlto
		out.Interpretacion = "Índice cintura/talla elevado: riesgo cardiometabólico aumentado."
	default:
		out.Nivel = RiesgoMuyAlto
		out.Interpretacion = "Índice cintura/talla muy elevado: riesgo cardiometabólico alto."
	}
	return out, nil
}

// IndiceCinturaCadera computes waist-to-hip with thresholds banded by
// sex and age.
func IndiceCinturaCadera(cintura, cadera float64, sexo Sexo, edad float64) (RatioRiesgo, error) {
	if cintura <= 0 || cadera <= 0 {
		return RatioRiesgo{}, &ErrInsumoInvalido{Campo: "cintura/cadera", Motivo: "ambos deben ser positivos"}
	}
	r := cintura / cadera
	u := resolverUmbralICC(sexo, edad)
	out := RatioRiesgo{Valor: round2(r)}
	switch {
	case r <= u.Moderado:
		out.Nivel = RiesgoBajo
		out.Interpretacion = "Relación cintura/cadera dentro del rango esperado."
	case r <= u.Alto:
		out.Nivel = RiesgoModerado
		out.Interpretacion = "Relación cintura/cadera con riesgo moderado para edad y sexo."
	default:
		out.Nivel = RiesgoAlto
		out.Interpretacion = "Relación cintura/cadera con riesgo alto para edad y sexo."
	}
	return out, nil
}

// ObesidadAbdominal applies the sex-specific waist cutoff.
func ObesidadAbdominal(cintura float64, sexo Sexo) (bool, RatioRiesgo, error) {
	if cintura <= 0 {
		return false, RatioRiesgo{}, &ErrInsumoInvalido{Campo: "cintura", Motivo: "debe ser positiva"}
	}
	corte := cinturaObesidadAbdominal[sexo]
	presente := cintura >= corte
	out := RatioRiesgo{Valor: round2(cintura)}
	if presente {
		out.Nivel = RiesgoAlto
		out.Interpretacion = fmt.Sprintf("Perímetro de cintura %.1f cm ≥ %.0f cm: obesidad abdominal.", cintura, corte)
	} else {
		out.Nivel = RiesgoBajo
		out.Interpretacion = fmt.Sprintf("Perímetro de cintura %.1f cm por debajo del corte de %.0f cm.", cintura, corte)
	}
	return presente, out, nil
}
