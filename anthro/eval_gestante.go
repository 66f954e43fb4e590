package anthro

import "fmt"

// Gestational evaluator: Atalah classification of the current IMC plus,
// when the pre-pregnancy weight is known, IOM weight-gain adequacy. The
// IOM target is two-phase: a small first-trimester total reached by
// week 13, then a weekly rate for trimesters 2-3.

const semanaFinT1 = 13

func evaluarGestante(r *EvaluationResult, m *MeasurementSet, _ FallbackConfig) error {
	imc, warns, err := CalcularIMC(m.Peso, m.Talla)
	if err != nil {
		return err
	}
	r.warnAll(warns)

	semana := m.SemanaGestacional
	if semana < 6 || semana > 42 {
		r.warn(fmt.Sprintf("Semana gestacional %d fuera de la tabla de Atalah (6-42); se usó la semana más cercana.", semana))
	}
	r.Clasificacion = ClasificarAtalah(imc, semana)
	r.addValor("imc", imc, "kg/m2", r.Clasificacion)

	if m.PesoPregestacional > 0 {
		evaluarGananciaIOM(r, m)
	} else {
		r.warn("Peso pregestacional no registrado; no se evaluó la ganancia de peso según la guía IOM.")
	}
	return nil
}

func evaluarGananciaIOM(r *EvaluationResult, m *MeasurementSet) {
	imcPre, _, err := CalcularIMC(m.PesoPregestacional, m.Talla)
	if err != nil {
		return
	}
	catPre := ClasificarIMCAdulto(imcPre)
	catPre = categoriaIOM(catPre)
	r.addValor("imc_pregestacional", imcPre, "kg/m2", catPre)

	rango, ok := rangoIOMPara(catPre, m.EmbarazoGemelar, r)
	if !ok {
		return
	}

	ganancia := m.Peso - m.PesoPregestacional
	minEsperado, maxEsperado := gananciaEsperada(rango, m.SemanaGestacional)

	var adecuacion string
	switch {
	case ganancia < minEsperado:
		adecuacion = "Ganancia insuficiente"
	case ganancia > maxEsperado:
		adecuacion = "Ganancia excesiva"
	default:
		adecuacion = "Ganancia adecuada"
	}
	r.addValor("ganancia_peso", ganancia, "kg", adecuacion)
	r.warn(fmt.Sprintf(
		"Ganancia acumulada %.1f kg a la semana %d; rango esperado %.1f-%.1f kg (total al término: %.1f-%.1f kg).",
		ganancia, m.SemanaGestacional, minEsperado, maxEsperado, rango.TotalMin, rango.TotalMax))
	if adecuacion != "Ganancia adecuada" {
		r.warn(adecuacion + " de peso gestacional según la guía IOM; reforzar consejería nutricional.")
	}
}

// categoriaIOM collapses the OMS obesity grades into the single
// "Obesidad" row the IOM guideline publishes.
func categoriaIOM(clasificacion string) string {
	switch clasificacion {
	case "Obesidad grado I", "Obesidad grado II", "Obesidad grado III":
		return "Obesidad"
	default:
		return clasificacion
	}
}

func rangoIOMPara(categoria string, gemelar bool, r *EvaluationResult) (rangoIOM, bool) {
	if gemelar {
		if rango, ok := gananciaIOMGemelar[categoria]; ok {
			return rango, true
		}
		r.warn("La guía IOM no publica rango gemelar para bajo peso pregestacional; se usó el rango de embarazo único.")
	}
	rango, ok := gananciaIOMSimple[categoria]
	return rango, ok
}

// gananciaEsperada interpolates the cumulative expected gain: linear to
// the first-trimester total through week 13, then rate-based.
func gananciaEsperada(rango rangoIOM, semana int) (min, max float64) {
	if semana <= semanaFinT1 {
		frac := float64(semana) / float64(semanaFinT1)
		return rango.T1Min * frac, rango.T1Max * frac
	}
	extra := float64(semana - semanaFinT1)
	return rango.T1Min + rango.TasaMin*extra, rango.T1Max + rango.TasaMax*extra
}
