package anthro

// Adult evaluator (18-64, no special condition). Runs everything the
// measurement set allows: IMC is mandatory, body composition and the
// cardiometabolic ratios are computed opportunistically from whatever
// was measured.

func evaluarAdulto(r *EvaluationResult, m *MeasurementSet, fb FallbackConfig) error {
	imc, warns, err := CalcularIMC(m.Peso, m.Talla)
	if err != nil {
		return err
	}
	r.warnAll(warns)
	r.Clasificacion = ClasificarIMCAdulto(imc)
	r.addValor("imc", imc, "kg/m2", r.Clasificacion)

	evaluarGrasaDurnin(r, m, fb)
	evaluarKerr(r, m, fb)
	evaluarSomatotipo(r, m)
	evaluarRatios(r, m)
	return nil
}

// evaluarGrasaDurnin runs Durnin & Womersley + Siri when at least the
// triceps and subescapular skinfolds were measured. Missing biceps and
// suprailiac folds are approximated per the fallback configuration,
// each substitution reported as a warning.
func evaluarGrasaDurnin(r *EvaluationResult, m *MeasurementSet, fb FallbackConfig) {
	if m.Pliegues.Triceps <= 0 || m.Pliegues.Subescapular <= 0 {
		return
	}

	biceps := m.Pliegues.Biceps
	if biceps <= 0 {
		if !fb.AproximarPliegues {
			return
		}
		biceps = m.Pliegues.Triceps * 0.6
		r.warn("Pliegue bicipital no medido; se aproximó como 0.6 × triceps.")
	}
	suprailiaco := m.Pliegues.CrestaIliaca
	if suprailiaco <= 0 {
		if !fb.AproximarPliegues {
			return
		}
		suprailiaco = m.Pliegues.Subescapular * 1.2
		r.warn("Pliegue suprailíaco no medido; se aproximó como 1.2 × subescapular.")
	}

	densidad, warns, err := DensidadDurnin(m.Pliegues.Triceps, biceps, m.Pliegues.Subescapular, suprailiaco, m.Edad, m.Sexo)
	if err != nil {
		return
	}
	r.warnAll(warns)

	grasa, warns, err := GrasaSiri(densidad)
	if err != nil {
		return
	}
	r.warnAll(warns)

	r.addValor("densidad_corporal", densidad, "g/cm3", "")
	r.addValor("grasa_corporal", grasa, "%", "")
	masaGrasa := m.Peso * grasa / 100
	r.addValor("masa_grasa", masaGrasa, "kg", "")
	r.addValor("masa_libre_grasa", m.Peso-masaGrasa, "kg", "")
}

func evaluarKerr(r *EvaluationResult, m *MeasurementSet, fb FallbackConfig) {
	if len(camposKerr(m)) > 0 {
		return
	}
	f, warns, err := FraccionamientoKerr(m, fb)
	if err != nil {
		return
	}
	r.warnAll(warns)
	r.addValor("masa_piel", f.MasaPiel, "kg", "")
	r.addValor("masa_adiposa", f.MasaAdiposa, "kg", "")
	r.addValor("masa_muscular", f.MasaMuscular, "kg", "")
	r.addValor("masa_osea", f.MasaOsea, "kg", "")
	r.addValor("masa_residual", f.MasaResidual, "kg", "")
	r.addValor("suma_estructurada", f.SumaEstructurada, "kg", "")
}

func evaluarSomatotipo(r *EvaluationResult, m *MeasurementSet) {
	if len(camposSomatotipo(m)) > 0 {
		return
	}
	s, err := CalcularSomatotipo(m)
	if err != nil {
		return
	}
	etiqueta := ClasificarSomatotipo(s.Endomorfia, s.Mesomorfia, s.Ectomorfia)
	r.addValor("endomorfia", s.Endomorfia, "", "")
	r.addValor("mesomorfia", s.Mesomorfia, "", "")
	r.addValor("ectomorfia", s.Ectomorfia, "", etiqueta)
}

func evaluarRatios(r *EvaluationResult, m *MeasurementSet) {
	cintura := m.Perimetros.Cintura
	if cintura <= 0 {
		return
	}
	if ict, err := IndiceCinturaTalla(cintura, m.Talla); err == nil {
		r.addValor("indice_cintura_talla", ict.Valor, "", string(ict.Nivel))
		if ict.Nivel != RiesgoBajo {
			r.warn(ict.Interpretacion)
		}
	}
	if m.Perimetros.Cadera > 0 {
		if icc, err := IndiceCinturaCadera(cintura, m.Perimetros.Cadera, m.Sexo, m.Edad); err == nil {
			r.addValor("indice_cintura_cadera", icc.Valor, "", string(icc.Nivel))
			if icc.Nivel != RiesgoBajo {
				r.warn(icc.Interpretacion)
			}
		}
	}
	if presente, oa, err := ObesidadAbdominal(cintura, m.Sexo); err == nil && presente {
		r.warn(oa.Interpretacion)
	}
}
