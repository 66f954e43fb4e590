package anthro

import "fmt"

// Evaluator for adults 65 and over: MINSA IMC ranges, stature
// estimation when standing measurement is impossible, and the
// sarcopenia/fall-risk screen built from grip strength, calf
// circumference and the Timed Up and Go.

func evaluarAdultoMayor(r *EvaluationResult, m *MeasurementSet, _ FallbackConfig) error {
	talla, warnTalla, ok := tallaDirectaOEstimada(m)
	if !ok {
		return &MissingFieldsError{
			Categoria: CategoriaAdultoMayor,
			Campos:    []string{CampoTalla, CampoAlturaRodilla, CampoLongitudTibia, CampoMediaEnvergadura, CampoLongitudCubito},
		}
	}
	if warnTalla != "" {
		r.warn(warnTalla)
		r.addValor("talla_estimada", talla, "cm", "")
	}

	imc, warns, err := CalcularIMC(m.Peso, talla)
	if err != nil {
		return err
	}
	r.warnAll(warns)
	r.Clasificacion = ClasificarIMCGeriatrico(imc)
	r.addValor("imc", imc, "kg/m2", r.Clasificacion)
	r.warn("Clasificación con rangos geriátricos MINSA: normalidad 23.0-27.9 kg/m2, no los rangos de adulto.")

	riesgoMuscular := evaluarTamizajeMuscular(r, m)
	riesgoCaida := evaluarRiesgoCaida(r, m)

	if riesgoMuscular && riesgoCaida {
		r.warn("ALERTA: compromiso muscular y riesgo de caídas simultáneos; priorizar valoración geriátrica integral.")
	}
	return nil
}

// evaluarTamizajeMuscular crosses low grip strength (EWGSOP2 cutoffs)
// with low calf circumference. Returns true when the finding warrants
// the combined geriatric alert.
func evaluarTamizajeMuscular(r *EvaluationResult, m *MeasurementSet) bool {
	prension := m.FuerzaPrension
	pantorrilla := m.Perimetros.Pantorrilla
	if prension <= 0 && pantorrilla <= 0 {
		return false
	}

	prensionBajaOK := prension > 0 && prension < prensionBaja[m.Sexo]
	pantorrillaBajaOK := pantorrilla > 0 && pantorrilla < pantorrillaBajaCm

	if prension > 0 {
		clasif := "Normal"
		if prensionBajaOK {
			clasif = "Baja"
		}
		r.addValor("fuerza_prension", prension, "kg", clasif)
	}
	if pantorrilla > 0 {
		clasif := "Normal"
		if pantorrillaBajaOK {
			clasif = "Baja"
		}
		r.addValor("perimetro_pantorrilla", pantorrilla, "cm", clasif)
	}

	switch {
	case prensionBajaOK && pantorrillaBajaOK:
		r.warn("SARCOPENIA SEVERA / DESNUTRICIÓN: fuerza de prensión y perímetro de pantorrilla por debajo de los cortes.")
		return true
	case prensionBajaOK:
		r.warn(fmt.Sprintf("Dinapenia: fuerza de prensión %.1f kg por debajo del corte de %.0f kg.", prension, prensionBaja[m.Sexo]))
		return true
	case pantorrillaBajaOK:
		r.warn(fmt.Sprintf("Riesgo de pre-sarcopenia: perímetro de pantorrilla %.1f cm por debajo de %.0f cm con fuerza conservada.", pantorrilla, pantorrillaBajaCm))
		return true
	default:
		return false
	}
}

func evaluarRiesgoCaida(r *EvaluationResult, m *MeasurementSet) bool {
	if m.TiempoMarcha <= 0 {
		return false
	}
	enRiesgo := m.TiempoMarcha > umbralTUGSegundos
	clasif := "Normal"
	if enRiesgo {
		clasif = "Riesgo de caída"
		r.warn(fmt.Sprintf("Timed Up and Go %.1f s mayor a %.0f s: riesgo de caídas.", m.TiempoMarcha, umbralTUGSegundos))
	}
	r.addValor("tiempo_marcha", m.TiempoMarcha, "s", clasif)
	return enRiesgo
}
