package anthro

// Context resolution: pure mapping from a patient's clinical flags and
// age to the active population category and the measurement-form schema
// the UI should render.

// Field identifiers shared with the form layer.
const (
	CampoPeso  = "peso"
	CampoTalla = "talla"
	CampoEdad  = "edad"
	CampoSexo  = "sexo"

	CampoPliegueTriceps      = "pliegues.triceps"
	CampoPliegueSubescapular = "pliegues.subescapular"
	CampoPliegueBiceps       = "pliegues.biceps"
	CampoPliegueCrestaIliaca = "pliegues.cresta_iliaca"
	CampoPliegueSupraespinal = "pliegues.supraespinal"
	CampoPliegueAbdominal    = "pliegues.abdominal"
	CampoPliegueMuslo        = "pliegues.muslo"
	CampoPlieguePantorrilla  = "pliegues.pantorrilla"

	CampoPerimetroBrazoRelajado   = "perimetros.brazo_relajado"
	CampoPerimetroBrazoFlexionado = "perimetros.brazo_flexionado"
	CampoPerimetroCintura         = "perimetros.cintura"
	CampoPerimetroCadera          = "perimetros.cadera"
	CampoPerimetroMuslo           = "perimetros.muslo"
	CampoPerimetroPantorrilla     = "perimetros.pantorrilla"

	CampoDiametroHumero        = "diametros.humero"
	CampoDiametroFemur         = "diametros.femur"
	CampoDiametroBiacromial    = "diametros.biacromial"
	CampoDiametroBiiliocristal = "diametros.biiliocristal"

	CampoSemanaGestacional  = "semana_gestacional"
	CampoPesoPregestacional = "peso_pregestacional"
	CampoEmbarazoGemelar    = "embarazo_gemelar"

	CampoAlturaRodilla    = "altura_rodilla"
	CampoLongitudTibia    = "longitud_tibia"
	CampoMediaEnvergadura = "media_envergadura"
	CampoLongitudCubito   = "longitud_cubito"

	CampoAmputaciones = "amputaciones"
	CampoGMFCS        = "gmfcs"
	CampoTanner       = "tanner"

	CampoFuerzaPrension = "fuerza_prension"
	CampoTiempoMarcha   = "tiempo_marcha"
)

var camposPliegues = []string{
	CampoPliegueTriceps, CampoPliegueSubescapular, CampoPliegueBiceps,
	CampoPliegueCrestaIliaca, CampoPliegueSupraespinal, CampoPliegueAbdominal,
	CampoPliegueMuslo, CampoPlieguePantorrilla,
}

var camposPerimetros = []string{
	CampoPerimetroBrazoRelajado, CampoPerimetroBrazoFlexionado,
	CampoPerimetroCintura, CampoPerimetroCadera,
	CampoPerimetroMuslo, CampoPerimetroPantorrilla,
}

var camposDiametros = []string{
	CampoDiametroHumero, CampoDiametroFemur,
	CampoDiametroBiacromial, CampoDiametroBiiliocristal,
}

var camposEstimadoresTalla = []string{
	CampoAlturaRodilla, CampoLongitudTibia,
	CampoMediaEnvergadura, CampoLongitudCubito,
}

// ResolverCategoria selects the active population category. First match
// wins; the order is deliberate clinical policy (a pregnant 66-year-old
// is evaluated as gestante, not adulto mayor) and must not change.
func ResolverCategoria(ctx ClinicalContext) CategoriaPoblacional {
	switch {
	case ctx.Gestante:
		return CategoriaGestante
	case ctx.TieneAmputaciones:
		return CategoriaAmputado
	case ctx.EsNeurologico || ctx.GMFCS > 0:
		return CategoriaNeuro
	case ctx.Edad < 2:
		return CategoriaLactante
	case ctx.Edad < 18:
		return CategoriaPediatrico
	case ctx.Edad >= 65:
		return CategoriaAdultoMayor
	default:
		return CategoriaAdulto
	}
}

// Resolver returns the active category together with the field schema
// the form layer should render. Pure; regenerated whenever a clinical
// flag changes.
func Resolver(ctx ClinicalContext) (CategoriaPoblacional, FieldRequirementSchema) {
	cat := ResolverCategoria(ctx)
	esq := FieldRequirementSchema{Categoria: cat}

	base := []string{CampoPeso, CampoTalla}

	switch cat {
	case CategoriaGestante:
		esq.CamposVisibles = append(base,
			CampoSemanaGestacional, CampoPesoPregestacional, CampoEmbarazoGemelar,
			CampoPerimetroCintura)
		esq.CamposRequeridos = []string{CampoPeso, CampoTalla, CampoSemanaGestacional}
		esq.CamposOcultos = concat(camposPliegues, camposDiametros, camposEstimadoresTalla,
			[]string{CampoAmputaciones, CampoGMFCS, CampoTanner, CampoFuerzaPrension, CampoTiempoMarcha})
		esq.SeccionesEspeciales = []SeccionCampos{{
			Titulo: "Datos gestacionales",
			Campos: []string{CampoSemanaGestacional, CampoPesoPregestacional, CampoEmbarazoGemelar},
		}}
		esq.Recomendaciones = []string{
			"Clasificar el IMC con la curva de Atalah según semana gestacional, no con los rangos de adulto.",
			"Registrar el peso pregestacional para evaluar la ganancia de peso según la guía IOM.",
		}

	case CategoriaAmputado:
		esq.CamposVisibles = append(base, CampoAmputaciones, CampoPerimetroCintura, CampoPerimetroCadera)
		esq.CamposVisibles = append(esq.CamposVisibles, camposEstimadoresTalla...)
		esq.CamposRequeridos = []string{CampoPeso, CampoAmputaciones}
		esq.CamposOcultos = concat(camposPliegues, camposDiametros,
			[]string{CampoSemanaGestacional, CampoPesoPregestacional, CampoEmbarazoGemelar,
				CampoGMFCS, CampoTanner, CampoFuerzaPrension, CampoTiempoMarcha})
		esq.SeccionesEspeciales = []SeccionCampos{{
			Titulo: "Segmentos amputados",
			Campos: []string{CampoAmputaciones},
		}}
		esq.Recomendaciones = []string{
			"El IMC se calcula con el peso corregido por los segmentos amputados.",
			"Si no es posible medir la talla de pie, registrar altura de rodilla o media envergadura.",
		}

	case CategoriaNeuro:
		esq.CamposVisibles = []string{CampoPeso, CampoGMFCS, CampoLongitudTibia, CampoAlturaRodilla}
		esq.CamposRequeridos = []string{CampoPeso, CampoGMFCS}
		if ctx.GMFCS >= 4 {
			// Direct stature is not measurable at GMFCS IV-V; the form
			// must not offer it.
			esq.CamposOcultos = []string{CampoTalla}
			esq.CamposRequeridos = append(esq.CamposRequeridos, CampoLongitudTibia)
			esq.Recomendaciones = []string{
				"GMFCS IV-V: estimar la talla con longitud de tibia (Stevenson); no registrar talla de pie.",
			}
		} else {
			esq.CamposVisibles = append([]string{CampoTalla}, esq.CamposVisibles...)
			esq.CamposRequeridos = append(esq.CamposRequeridos, CampoTalla)
			esq.Recomendaciones = []string{
				"GMFCS I-III: se permite talla directa; usar longitud de tibia solo como respaldo.",
			}
		}
		esq.CamposOcultos = concat(esq.CamposOcultos, camposPliegues, camposDiametros,
			[]string{CampoSemanaGestacional, CampoPesoPregestacional, CampoEmbarazoGemelar,
				CampoAmputaciones, CampoFuerzaPrension, CampoTiempoMarcha})

	case CategoriaLactante:
		esq.CamposVisibles = []string{CampoPeso, CampoTalla, CampoPerimetroPantorrilla}
		esq.CamposRequeridos = []string{CampoPeso, CampoTalla}
		esq.CamposOcultos = concat(camposPliegues, camposDiametros, camposEstimadoresTalla,
			[]string{CampoSemanaGestacional, CampoPesoPregestacional, CampoEmbarazoGemelar,
				CampoAmputaciones, CampoGMFCS, CampoTanner, CampoFuerzaPrension, CampoTiempoMarcha})
		esq.Recomendaciones = []string{
			"Menores de 2 años: registrar longitud en decúbito supino, no talla de pie.",
		}

	case CategoriaPediatrico:
		esq.CamposVisibles = append(base,
			CampoPliegueTriceps, CampoPliegueSubescapular, CampoPliegueBiceps,
			CampoPliegueCrestaIliaca, CampoTanner)
		esq.CamposRequeridos = []string{CampoPeso, CampoTalla}
		esq.CamposOcultos = concat(camposEstimadoresTalla,
			[]string{CampoSemanaGestacional, CampoPesoPregestacional, CampoEmbarazoGemelar,
				CampoAmputaciones, CampoGMFCS, CampoFuerzaPrension, CampoTiempoMarcha})
		esq.SeccionesEspeciales = []SeccionCampos{{
			Titulo: "Maduración",
			Campos: []string{CampoTanner},
		}}
		esq.Recomendaciones = []string{
			"Entre 8 y 18 años el %grasa se estima con Slaughter (triceps + subescapular).",
			"Si no se registra etapa de Tanner, se asume púber.",
		}

	case CategoriaAdultoMayor:
		esq.CamposVisibles = append(base,
			CampoPerimetroPantorrilla, CampoPerimetroCintura, CampoPerimetroCadera,
			CampoFuerzaPrension, CampoTiempoMarcha)
		esq.CamposVisibles = append(esq.CamposVisibles, camposEstimadoresTalla...)
		esq.CamposRequeridos = []string{CampoPeso}
		esq.CamposOcultos = []string{CampoSemanaGestacional, CampoPesoPregestacional,
			CampoEmbarazoGemelar, CampoAmputaciones, CampoGMFCS, CampoTanner}
		esq.SeccionesEspeciales = []SeccionCampos{
			{
				Titulo: "Estimación de talla",
				Campos: camposEstimadoresTalla,
			},
			{
				Titulo: "Tamizaje de fragilidad",
				Campos: []string{CampoFuerzaPrension, CampoPerimetroPantorrilla, CampoTiempoMarcha},
			},
		}
		esq.Recomendaciones = []string{
			"Usar el rango de IMC geriátrico 23.0-27.9 como normalidad (MINSA).",
			"Si no puede medirse talla de pie, usar altura de rodilla, tibia, media envergadura o cúbito, en ese orden.",
		}

	default: // adulto / general
		esq.CamposVisibles = append(base, camposPliegues...)
		esq.CamposVisibles = append(esq.CamposVisibles, camposPerimetros...)
		esq.CamposVisibles = append(esq.CamposVisibles, camposDiametros...)
		esq.CamposRequeridos = []string{CampoPeso, CampoTalla}
		esq.CamposOcultos = concat(camposEstimadoresTalla,
			[]string{CampoSemanaGestacional, CampoPesoPregestacional, CampoEmbarazoGemelar,
				CampoAmputaciones, CampoGMFCS, CampoTanner, CampoFuerzaPrension, CampoTiempoMarcha})
		esq.SeccionesEspeciales = []SeccionCampos{{
			Titulo: "Composición corporal (ISAK)",
			Campos: concat(camposPliegues, camposPerimetros, camposDiametros),
		}}
		esq.Recomendaciones = []string{
			"Con el set ISAK completo se calculan fraccionamiento de Kerr y somatotipo de Heath-Carter.",
		}
	}

	return cat, esq
}

func concat(listas ...[]string) []string {
	var out []string
	for _, l := range listas {
		out = append(out, l...)
	}
	return out
}
