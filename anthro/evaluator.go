package anthro

// Evaluar is the single entry point of the engine: it resolves the
// population category from the clinical context, validates the
// measurement set against the category's required fields, and runs the
// matching evaluator. The input is never mutated and the result carries
// everything the caller needs; evaluating the same input twice yields
// the same result.

type evaluadorFn func(r *EvaluationResult, m *MeasurementSet, fb FallbackConfig) error

var evaluadores = map[CategoriaPoblacional]evaluadorFn{
	CategoriaAdulto:      evaluarAdulto,
	CategoriaGeneral:     evaluarAdulto,
	CategoriaLactante:    evaluarLactante,
	CategoriaPediatrico:  evaluarPediatrico,
	CategoriaGestante:    evaluarGestante,
	CategoriaAdultoMayor: evaluarAdultoMayor,
	CategoriaAmputado:    evaluarAmputado,
	CategoriaNeuro:       evaluarNeuro,
}

// Evaluar runs the engine with the default fallback configuration.
func Evaluar(ctx ClinicalContext, m MeasurementSet) (*EvaluationResult, error) {
	return EvaluarCon(ctx, m, DefaultFallbacks())
}

// EvaluarCon runs the engine with an explicit fallback configuration.
// Required-field validation happens before any formula runs, so a
// *MissingFieldsError always refers to the raw input, never to an
// intermediate value.
func EvaluarCon(ctx ClinicalContext, m MeasurementSet, fb FallbackConfig) (*EvaluationResult, error) {
	fusionarContexto(&ctx, &m)

	cat, esq := Resolver(ctx)
	if faltan := camposFaltantes(&m, esq.CamposRequeridos); len(faltan) > 0 {
		return nil, &MissingFieldsError{Categoria: cat, Campos: faltan}
	}

	r := &EvaluationResult{Categoria: cat}
	if err := evaluadores[cat](r, &m, fb); err != nil {
		return nil, err
	}
	return r, nil
}

// fusionarContexto copies context attributes into the measurement set
// where the set left them unspecified, so the evaluators read from one
// place only.
func fusionarContexto(ctx *ClinicalContext, m *MeasurementSet) {
	if m.Edad == 0 {
		m.Edad = ctx.Edad
	}
	if m.Sexo == "" {
		m.Sexo = ctx.Sexo
	}
	if m.SemanaGestacional == 0 {
		m.SemanaGestacional = ctx.SemanaGestacional
	}
	if ctx.EmbarazoGemelar {
		m.EmbarazoGemelar = true
	}
	if m.PesoPregestacional == 0 {
		m.PesoPregestacional = ctx.PesoPregestacional
	}
	if len(m.Amputaciones) == 0 {
		m.Amputaciones = ctx.Amputaciones
	}
	if m.GMFCS == 0 {
		m.GMFCS = ctx.GMFCS
	}
	// Keep the context coherent for schema resolution when only the
	// measurement side carried the data.
	if ctx.Edad == 0 {
		ctx.Edad = m.Edad
	}
	if ctx.GMFCS == 0 {
		ctx.GMFCS = m.GMFCS
	}
	if !ctx.TieneAmputaciones && len(m.Amputaciones) > 0 {
		ctx.TieneAmputaciones = true
	}
}

// campoPresente reports whether the named field carries a usable value.
func campoPresente(m *MeasurementSet, campo string) bool {
	switch campo {
	case CampoPeso:
		return m.Peso > 0
	case CampoTalla:
		return m.Talla > 0
	case CampoEdad:
		return m.Edad > 0
	case CampoSexo:
		return m.Sexo != ""
	case CampoSemanaGestacional:
		return m.SemanaGestacional > 0
	case CampoPesoPregestacional:
		return m.PesoPregestacional > 0
	case CampoAmputaciones:
		return len(m.Amputaciones) > 0
	case CampoGMFCS:
		return m.GMFCS > 0
	case CampoTanner:
		return m.Tanner != ""
	case CampoAlturaRodilla:
		return m.AlturaRodilla > 0
	case CampoLongitudTibia:
		return m.LongitudTibia > 0
	case CampoMediaEnvergadura:
		return m.MediaEnvergadura > 0
	case CampoLongitudCubito:
		return m.LongitudCubito > 0
	case CampoFuerzaPrension:
		return m.FuerzaPrension > 0
	case CampoTiempoMarcha:
		return m.TiempoMarcha > 0
	case CampoPliegueTriceps:
		return m.Pliegues.Triceps > 0
	case CampoPliegueSubescapular:
		return m.Pliegues.Subescapular > 0
	case CampoPliegueBiceps:
		return m.Pliegues.Biceps > 0
	case CampoPliegueCrestaIliaca:
		return m.Pliegues.CrestaIliaca > 0
	case CampoPliegueSupraespinal:
		return m.Pliegues.Supraespinal > 0
	case CampoPliegueAbdominal:
		return m.Pliegues.Abdominal > 0
	case CampoPliegueMuslo:
		return m.Pliegues.Muslo > 0
	case CampoPlieguePantorrilla:
		return m.Pliegues.Pantorrilla > 0
	case CampoPerimetroBrazoRelajado:
		return m.Perimetros.BrazoRelajado > 0
	case CampoPerimetroBrazoFlexionado:
		return m.Perimetros.BrazoFlexionado > 0
	case CampoPerimetroCintura:
		return m.Perimetros.Cintura > 0
	case CampoPerimetroCadera:
		return m.Perimetros.Cadera > 0
	case CampoPerimetroMuslo:
		return m.Perimetros.Muslo > 0
	case CampoPerimetroPantorrilla:
		return m.Perimetros.Pantorrilla > 0
	default:
		return false
	}
}

func camposFaltantes(m *MeasurementSet, requeridos []string) []string {
	var faltan []string
	for _, c := range requeridos {
		if !campoPresente(m, c) {
			faltan = append(faltan, c)
		}
	}
	return faltan
}

// tallaDirectaOEstimada resolves stature for categories where standing
// measurement may be impossible: direct measurement wins, otherwise the
// estimation cascade. The returned warning is empty for direct stature.
func tallaDirectaOEstimada(m *MeasurementSet) (float64, string, bool) {
	if m.Talla > 0 {
		return m.Talla, "", true
	}
	talla, _, warn, ok := EstimarTalla(m)
	if !ok {
		return 0, "", false
	}
	return talla, warn, true
}
