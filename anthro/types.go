/*
Package anthro implements the clinical anthropometric and nutritional
calculation engine: published formula primitives (Durnin & Womersley,
Siri, Slaughter, Ross-Kerr five-way fractionation, Heath-Carter
somatotype, Chumlea/Stevenson height estimation), classification tables
(Atalah gestational IMC curve, MINSA geriatric IMC ranges, somatotype
categories, cardiometabolic risk thresholds) and the per-population
evaluators that orchestrate them.

Everything in this package is pure computation over in-memory values:
no I/O, no persistence, no shared mutable state. Results are recomputed
on every call from the raw MeasurementSet; they are never stored.
Classification labels and warnings are Spanish strings meant for direct
display.
*/
package anthro

// Sexo is the biological sex used by every sex-keyed coefficient table.
type Sexo string

const (
	Masculino Sexo = "masculino"
	Femenino  Sexo = "femenino"
)

// CategoriaPoblacional identifies which evaluator and which field
// schema apply to a patient. Exactly one category is active per
// evaluation; see ResolverCategoria for the priority order.
type CategoriaPoblacional string

const (
	CategoriaGeneral     CategoriaPoblacional = "general"
	CategoriaLactante    CategoriaPoblacional = "lactante"
	CategoriaPediatrico  CategoriaPoblacional = "pediatrico"
	CategoriaAdulto      CategoriaPoblacional = "adulto"
	CategoriaAdultoMayor CategoriaPoblacional = "adulto_mayor"
	CategoriaGestante    CategoriaPoblacional = "gestante"
	CategoriaAmputado    CategoriaPoblacional = "amputado"
	CategoriaNeuro       CategoriaPoblacional = "neuro"
)

// EtapaMaduracion is the pubertal maturation stage for the Slaughter
// equations (mapped from Tanner: 1 pre, 2-3 puber, 4-5 post).
type EtapaMaduracion string

const (
	PrePuber  EtapaMaduracion = "pre_puber"
	Puber     EtapaMaduracion = "puber"
	PostPuber EtapaMaduracion = "post_puber"
)

// NivelRiesgo is the tier attached to cardiometabolic ratios.
type NivelRiesgo string

const (
	RiesgoBajo     NivelRiesgo = "bajo"
	RiesgoModerado NivelRiesgo = "moderado"
	RiesgoAlto     NivelRiesgo = "alto"
	RiesgoMuyAlto  NivelRiesgo = "muy_alto"
)

// Pliegues are skinfolds in millimeters. Zero means not measured.
type Pliegues struct {
	Triceps      float64 `json:"triceps"`
	Subescapular float64 `json:"subescapular"`
	Biceps       float64 `json:"biceps"`
	CrestaIliaca float64 `json:"cresta_iliaca"`
	Supraespinal float64 `json:"supraespinal"`
	Abdominal    float64 `json:"abdominal"`
	Muslo        float64 `json:"muslo"`
	Pantorrilla  float64 `json:"pantorrilla"`
}

// Perimetros are girths in centimeters. Zero means not measured.
type Perimetros struct {
	BrazoRelajado   float64 `json:"brazo_relajado"`
	BrazoFlexionado float64 `json:"brazo_flexionado"`
	Cintura         float64 `json:"cintura"`
	Cadera          float64 `json:"cadera"`
	Muslo           float64 `json:"muslo"`
	Pantorrilla     float64 `json:"pantorrilla"`
}

// Diametros are bone breadths in centimeters. Zero means not measured.
type Diametros struct {
	Humero        float64 `json:"humero"`
	Femur         float64 `json:"femur"`
	Biacromial    float64 `json:"biacromial"`
	Biiliocristal float64 `json:"biiliocristal"`
}

// Segmento names an amputated body segment; see TablaSegmentos for the
// mass percentage each one represents.
type Segmento string

const (
	SegDedosMano      Segmento = "dedos_mano"
	SegMano           Segmento = "mano"
	SegAntebrazo      Segmento = "antebrazo"
	SegAntebrazoMano  Segmento = "antebrazo_con_mano"
	SegBrazo          Segmento = "brazo"
	SegBrazoCompleto  Segmento = "brazo_completo"
	SegDedosPie       Segmento = "dedos_pie"
	SegPie            Segmento = "pie"
	SegPierna         Segmento = "pierna"
	SegPiernaPie      Segmento = "pierna_con_pie"
	SegMuslo          Segmento = "muslo"
	SegPiernaCompleta Segmento = "pierna_completa"
)

// MeasurementSet is the raw anthropometric record for one visit.
// Units are fixed: kg, cm, mm, weeks, years. Optional fields use the
// zero value to mean "not measured"; evaluators decide per category
// whether an absent field is an error, a fallback trigger, or ignored.
type MeasurementSet struct {
	Peso  float64 `json:"peso"`  // kg
	Talla float64 `json:"talla"` // cm; for lactantes this is supine length
	Edad  float64 `json:"edad"`  // years, fractional allowed
	Sexo  Sexo    `json:"sexo"`

	Pliegues   Pliegues   `json:"pliegues"`
	Perimetros Perimetros `json:"perimetros"`
	Diametros  Diametros  `json:"diametros"`

	// Gestante
	SemanaGestacional  int     `json:"semana_gestacional"`
	PesoPregestacional float64 `json:"peso_pregestacional"` // kg
	EmbarazoGemelar    bool    `json:"embarazo_gemelar"`

	// Stature proxies for patients who cannot be measured standing
	AlturaRodilla    float64 `json:"altura_rodilla"`    // cm, Chumlea
	LongitudTibia    float64 `json:"longitud_tibia"`    // cm, Stevenson
	MediaEnvergadura float64 `json:"media_envergadura"` // cm
	LongitudCubito   float64 `json:"longitud_cubito"`   // cm, ulna

	// Amputado / neuro
	Amputaciones []Segmento `json:"amputaciones,omitempty"`
	GMFCS        int        `json:"gmfcs"` // 0 = not applicable, I..V otherwise

	// Adolescente
	Tanner EtapaMaduracion `json:"tanner,omitempty"` // empty = unspecified

	// Adulto mayor
	FuerzaPrension float64 `json:"fuerza_prension"` // kg, hand dynamometer
	TiempoMarcha   float64 `json:"tiempo_marcha"`   // s, Timed Up and Go
}

// Valor is one named numeric output with its classification.
type Valor struct {
	Nombre        string  `json:"nombre"`
	Valor         float64 `json:"valor"`
	Unidad        string  `json:"unidad,omitempty"`
	Clasificacion string  `json:"clasificacion,omitempty"`
}

// EvaluationResult is the immutable output of one evaluator call.
// It is produced fresh per computation and must never be persisted;
// only the raw MeasurementSet is durable.
type EvaluationResult struct {
	Categoria     CategoriaPoblacional `json:"categoria"`
	Valores       []Valor              `json:"valores"`
	Clasificacion string               `json:"clasificacion"` // headline label
	Advertencias  []string             `json:"advertencias"`  // ordered, display-ready Spanish
}

func (r *EvaluationResult) addValor(nombre string, valor float64, unidad, clasificacion string) {
	r.Valores = append(r.Valores, Valor{Nombre: nombre, Valor: round2(valor), Unidad: unidad, Clasificacion: clasificacion})
}

func (r *EvaluationResult) warn(msg string) {
	r.Advertencias = append(r.Advertencias, msg)
}

func (r *EvaluationResult) warnAll(msgs []string) {
	r.Advertencias = append(r.Advertencias, msgs...)
}

// Buscar returns the named value, if present.
func (r *EvaluationResult) Buscar(nombre string) (Valor, bool) {
	for _, v := range r.Valores {
		if v.Nombre == nombre {
			return v, true
		}
	}
	return Valor{}, false
}

// SeccionCampos is a named group of fields rendered together by the UI
// (for layout only; it carries no computation semantics).
type SeccionCampos struct {
	Titulo string   `json:"titulo"`
	Campos []string `json:"campos"`
}

// FieldRequirementSchema tells the form layer which measurement fields
// to show, require and hide for a resolved population category. It is
// derived, never stored, and regenerated whenever the patient's
// clinical flags change.
type FieldRequirementSchema struct {
	Categoria           CategoriaPoblacional `json:"categoria"`
	CamposVisibles      []string             `json:"campos_visibles"`
	CamposRequeridos    []string             `json:"campos_requeridos"`
	CamposOcultos       []string             `json:"campos_ocultos"`
	SeccionesEspeciales []SeccionCampos      `json:"secciones_especiales,omitempty"`
	Recomendaciones     []string             `json:"recomendaciones,omitempty"`
}

// ClinicalContext carries the patient attributes that drive category
// resolution. It is rebuilt from the patient's current profile on every
// call, never stored as its own entity.
type ClinicalContext struct {
	Edad float64
	Sexo Sexo

	Gestante           bool
	SemanaGestacional  int
	EmbarazoGemelar    bool
	PesoPregestacional float64 // kg

	TieneAmputaciones bool
	Amputaciones      []Segmento

	EsNeurologico   bool
	GMFCS           int
	PuedeEstarDePie bool
}

// FallbackConfig controls the documented approximations the evaluators
// may apply when an optional input is missing. All are enabled by
// default; a caller that wants strict behavior can disable them and the
// affected formula will be skipped instead of approximated.
type FallbackConfig struct {
	// TannerPorDefecto: Slaughter maturation stage when unspecified.
	TannerPorDefecto EtapaMaduracion
	// AproximarPliegues: biceps ~ 0.6*triceps, suprailiaco ~ 1.2*subescapular
	// when the Durnin set is incomplete.
	AproximarPliegues bool
	// AproximarPerimetrosKerr: torax ~ 1.12*cintura, antebrazo ~ 0.85*brazo
	// relajado for the Kerr muscle-mass input.
	AproximarPerimetrosKerr bool
}

// DefaultFallbacks mirrors the original application's behavior.
func DefaultFallbacks() FallbackConfig {
	return FallbackConfig{
		TannerPorDefecto:        Puber,
		AproximarPliegues:       true,
		AproximarPerimetrosKerr: true,
	}
}
