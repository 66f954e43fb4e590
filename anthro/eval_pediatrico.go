package anthro

import "fmt"

// Pediatric evaluators. Under 2 years only the IMC is computed and the
// headline defers to the OMS growth curves; between 2 and 17 the IMC is
// complemented by Slaughter body fat from age 8 on.

func evaluarLactante(r *EvaluationResult, m *MeasurementSet, _ FallbackConfig) error {
	imc, warns, err := CalcularIMC(m.Peso, m.Talla)
	if err != nil {
		return err
	}
	r.warnAll(warns)
	r.Clasificacion = "Requiere valoración con curvas OMS"
	r.addValor("imc", imc, "kg/m2", r.Clasificacion)
	r.warn("Menor de 2 años: el IMC aislado no clasifica el estado nutricional; contrastar peso/longitud con las curvas OMS.")
	return nil
}

func evaluarPediatrico(r *EvaluationResult, m *MeasurementSet, fb FallbackConfig) error {
	imc, warns, err := CalcularIMC(m.Peso, m.Talla)
	if err != nil {
		return err
	}
	r.warnAll(warns)
	r.Clasificacion = "Requiere valoración con curvas OMS"
	r.addValor("imc", imc, "kg/m2", r.Clasificacion)
	r.warn("Paciente pediátrico: clasificar el IMC según percentil/z-score OMS para edad y sexo, no con los rangos de adulto.")

	if m.Edad >= 8 && m.Pliegues.Triceps > 0 && m.Pliegues.Subescapular > 0 {
		etapa := m.Tanner
		if etapa == "" {
			etapa = fb.TannerPorDefecto
			r.warn(fmt.Sprintf("Etapa de Tanner no registrada; se asumió %s para la ecuación de Slaughter.", etapa))
		}
		grasa, warns, err := GrasaSlaughter(m.Pliegues.Triceps, m.Pliegues.Subescapular, m.Sexo, etapa)
		if err == nil {
			r.warnAll(warns)
			r.addValor("grasa_corporal", grasa, "%", "")
			masaGrasa := m.Peso * grasa / 100
			r.addValor("masa_grasa", masaGrasa, "kg", "")
			r.addValor("masa_libre_grasa", m.Peso-masaGrasa, "kg", "")
		}
	}
	return nil
}
