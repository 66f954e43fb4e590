package anthro

import "fmt"

// Evaluator for neurological patients (cerebral palsy and related
// motor impairment). At GMFCS IV-V standing stature is not measurable,
// so height comes from tibia length (Stevenson); at levels I-III direct
// stature is used with the tibia estimate as backup.

func evaluarNeuro(r *EvaluationResult, m *MeasurementSet, _ FallbackConfig) error {
	var talla float64
	if m.GMFCS >= 4 {
		t, err := TallaStevenson(m.LongitudTibia)
		if err != nil {
			return err
		}
		talla = t
		r.addValor("talla_estimada", talla, "cm", "")
		r.warn(fmt.Sprintf("GMFCS %d: talla estimada con longitud de tibia (Stevenson), %.1f cm.", m.GMFCS, talla))
	} else {
		var warnTalla string
		var ok bool
		talla, warnTalla, ok = tallaDirectaOEstimada(m)
		if !ok {
			return &MissingFieldsError{Categoria: CategoriaNeuro, Campos: []string{CampoTalla, CampoLongitudTibia}}
		}
		if warnTalla != "" {
			r.warn(warnTalla)
			r.addValor("talla_estimada", talla, "cm", "")
		}
	}

	imc, warns, err := CalcularIMC(m.Peso, talla)
	if err != nil {
		return err
	}
	r.warnAll(warns)
	if m.Edad >= 18 {
		r.Clasificacion = ClasificarIMCAdulto(imc)
	} else {
		r.Clasificacion = "Requiere valoración con curvas específicas"
		r.warn("Paciente neurológico pediátrico: contrastar con curvas de crecimiento específicas para parálisis cerebral.")
	}
	r.addValor("imc", imc, "kg/m2", r.Clasificacion)
	return nil
}
