package anthro

// Static coefficient and threshold tables. All tables are package-level
// constants in effect: they are initialized once and never mutated at
// runtime. Band lookups go through explicit resolution helpers instead
// of stringly-typed keys.

// ---------- Durnin & Womersley density coefficients ----------

// bandaDurnin is a closed, non-overlapping age interval with the (c, m)
// pair of density = c - m*log10(suma de pliegues).
type bandaDurnin struct {
	EdadMin, EdadMax float64
	C, M             float64
}

// The documented bands are 6-12, 13-16 and 17-19 years. Fractional
// ages between consecutive bands resolve to the lower band. Ages
// outside the tabulated range clamp to the nearest band; only that
// clamping is reported as a warning, never as an error.
var bandasDurnin = map[Sexo][]bandaDurnin{
	Masculino: {
		{6, 12, 1.1690, 0.0788},
		{13, 16, 1.1533, 0.0643},
		{17, 19, 1.1620, 0.0630},
	},
	Femenino: {
		{6, 12, 1.2063, 0.0999},
		{13, 16, 1.1369, 0.0598},
		{17, 19, 1.1549, 0.0678},
	},
}

// resolverBandaDurnin returns the matching band and whether the age had
// to be clamped onto the tabulated range.
func resolverBandaDurnin(sexo Sexo, edad float64) (bandaDurnin, bool) {
	bandas := bandasDurnin[sexo]
	if edad < bandas[0].EdadMin {
		return bandas[0], true
	}
	if edad > bandas[len(bandas)-1].EdadMax {
		return bandas[len(bandas)-1], true
	}
	for i := 0; i < len(bandas)-1; i++ {
		if edad < bandas[i+1].EdadMin {
			return bandas[i], false
		}
	}
	return bandas[len(bandas)-1], false
}

// ---------- Slaughter coefficients ----------

// The Slaughter equations are quadratic in triceps+subescapular up to
// 35 mm and linear above. For males the quadratic intercept depends on
// the maturation stage; for females it is constant.
var interceptoSlaughterVaron = map[EtapaMaduracion]float64{
	PrePuber:  1.7,
	Puber:     3.4,
	PostPuber: 5.5,
}

// ---------- Atalah gestational IMC curve ----------

// filaAtalah stores the three strict ascending cutoffs for one
// gestational week: imc < BajoPeso -> "Bajo peso", < Normal ->
// "Normal", < Sobrepeso -> "Sobrepeso", else "Obesidad".
type filaAtalah struct {
	Semana    int
	BajoPeso  float64
	Normal    float64
	Sobrepeso float64
}

// Weeks 6 through 42. Lookups outside the range clamp to the nearest
// tabulated week.
var tablaAtalah = []filaAtalah{
	{6, 20.0, 25.0, 30.2},
	{7, 20.2, 25.2, 30.4},
	{8, 20.4, 25.4, 30.6},
	{9, 20.6, 25.6, 30.8},
	{10, 20.8, 25.8, 31.0},
	{11, 21.0, 26.0, 31.2},
	{12, 21.2, 26.2, 31.4},
	{13, 21.4, 26.4, 31.6},
	{14, 21.6, 26.6, 31.8},
	{15, 21.8, 26.8, 32.0},
	{16, 22.0, 27.0, 32.2},
	{17, 22.2, 27.2, 32.3},
	{18, 22.4, 27.4, 32.4},
	{19, 22.6, 27.6, 32.5},
	{20, 22.8, 27.8, 32.6},
	{21, 23.0, 28.0, 32.7},
	{22, 23.2, 28.2, 32.8},
	{23, 23.4, 28.4, 33.0},
	{24, 23.6, 28.6, 33.2},
	{25, 23.8, 28.8, 33.4},
	{26, 24.1, 29.1, 33.6},
	{27, 24.3, 29.3, 33.8},
	{28, 24.5, 29.5, 34.0},
	{29, 24.6, 29.6, 34.1},
	{30, 24.7, 29.7, 34.2},
	{31, 24.8, 29.8, 34.3},
	{32, 24.9, 29.9, 34.4},
	{33, 25.0, 30.0, 34.5},
	{34, 25.1, 30.1, 34.6},
	{35, 25.2, 30.2, 34.7},
	{36, 25.3, 30.3, 34.8},
	{37, 25.4, 30.4, 34.9},
	{38, 25.5, 30.5, 35.0},
	{39, 25.6, 30.6, 35.1},
	{40, 25.7, 30.7, 35.2},
	{41, 25.8, 30.8, 35.3},
	{42, 25.9, 30.9, 35.4},
}

// filaAtalahPorSemana clamps to [6,42] and returns the exact-week row.
func filaAtalahPorSemana(semana int) filaAtalah {
	first, last := tablaAtalah[0], tablaAtalah[len(tablaAtalah)-1]
	if semana <= first.Semana {
		return first
	}
	if semana >= last.Semana {
		return last
	}
	return tablaAtalah[semana-first.Semana]
}

// ---------- IMC classification bands ----------

type bandaIMC struct {
	Limite   float64 // strict upper bound
	Etiqueta string
}

// OMS adult ranges.
var bandasIMCAdulto = []bandaIMC{
	{18.5, "Bajo peso"},
	{25.0, "Normal"},
	{30.0, "Sobrepeso"},
	{35.0, "Obesidad grado I"},
	{40.0, "Obesidad grado II"},
}

const etiquetaIMCAdultoFinal = "Obesidad grado III"

// MINSA ranges for adults 65 and over; deliberately distinct from the
// adult table (<23 bajo peso, 23-28 normal, 28-32 sobrepeso, >=32
// obesidad).
var bandasIMCGeriatrico = []bandaIMC{
	{23.0, "Bajo peso"},
	{28.0, "Normal"},
	{32.0, "Sobrepeso"},
}

const etiquetaIMCGeriatricoFinal = "Obesidad"

func clasificarPorBandas(valor float64, bandas []bandaIMC, final string) string {
	for _, b := range bandas {
		if valor < b.Limite {
			return b.Etiqueta
		}
	}
	return final
}

// ---------- Cardiometabolic thresholds ----------

// Waist-to-hip ratio thresholds, banded by sex and age. Each row starts
// at EdadMin and runs up to (not including) the next row's EdadMin, so
// fractional ages always land in exactly one band. Values at or below
// Moderado are low risk; above Alto is high risk.
type umbralICC struct {
	EdadMin        float64
	Moderado, Alto float64
}

var umbralesICC = map[Sexo][]umbralICC{
	Masculino: {
		{0, 0.90, 0.95},
		{40, 0.92, 0.97},
		{60, 0.94, 0.99},
	},
	Femenino: {
		{0, 0.78, 0.84},
		{40, 0.80, 0.86},
		{60, 0.82, 0.88},
	},
}

func resolverUmbralICC(sexo Sexo, edad float64) umbralICC {
	filas := umbralesICC[sexo]
	for i := len(filas) - 1; i > 0; i-- {
		if edad >= filas[i].EdadMin {
			return filas[i]
		}
	}
	return filas[0]
}

// Sex-specific single cutoffs for abdominal obesity (waist, cm).
var cinturaObesidadAbdominal = map[Sexo]float64{
	Masculino: 102.0,
	Femenino:  88.0,
}

// EWGSOP2 low grip-strength cutoffs (kg) and the calf-circumference
// cutoff shared by both sexes.
var prensionBaja = map[Sexo]float64{
	Masculino: 27.0,
	Femenino:  16.0,
}

const pantorrillaBajaCm = 31.0

// Timed Up and Go above this many seconds flags fall risk.
const umbralTUGSegundos = 12.0

// ---------- Amputation segment table ----------

// Percentage of total body mass each segment represents (Osterkamp).
// TablaSegmentos is exported so the form layer can enumerate valid
// segments.
var TablaSegmentos = map[Segmento]float64{
	SegDedosMano:      0.2,
	SegMano:           0.7,
	SegAntebrazo:      1.6,
	SegAntebrazoMano:  2.3,
	SegBrazo:          2.7,
	SegBrazoCompleto:  5.0,
	SegDedosPie:       0.3,
	SegPie:            1.5,
	SegPierna:         4.4,
	SegPiernaPie:      5.9,
	SegMuslo:          10.1,
	SegPiernaCompleta: 16.0,
}

// ---------- IOM gestational weight-gain guideline ----------

// rangoIOM describes expected gain for one pre-pregnancy IMC category:
// a first-trimester total reached linearly by week 13, then a weekly
// rate for trimesters 2-3. The two phases are kept separate on purpose;
// flattening them into one line misstates early-pregnancy targets.
type rangoIOM struct {
	T1Min, T1Max       float64 // kg accumulated by week 13
	TasaMin, TasaMax   float64 // kg/week after week 13
	TotalMin, TotalMax float64
}

var gananciaIOMSimple = map[string]rangoIOM{
	"Bajo peso": {0.5, 2.0, 0.44, 0.58, 12.5, 18.0},
	"Normal":    {0.5, 2.0, 0.35, 0.50, 11.5, 16.0},
	"Sobrepeso": {0.5, 2.0, 0.23, 0.33, 7.0, 11.5},
	"Obesidad":  {0.5, 2.0, 0.17, 0.27, 5.0, 9.0},
}

// The guideline publishes no twin range for underweight women; that
// case falls back to the singleton row with a warning.
var gananciaIOMGemelar = map[string]rangoIOM{
	"Normal":    {0.5, 2.0, 0.60, 0.83, 16.8, 24.5},
	"Sobrepeso": {0.5, 2.0, 0.50, 0.77, 14.1, 22.7},
	"Obesidad":  {0.5, 2.0, 0.40, 0.63, 11.3, 19.1},
}

// ---------- Ulna-length stature estimation ----------

// Affine rows from the BAPEN/MUST chart, keyed by sex and whether the
// patient is 65 or older: talla = A + B*cubito.
type coefCubito struct {
	A, B float64
}

var coeficientesCubito = map[Sexo]map[bool]coefCubito{
	Masculino: {
		false: {79.2, 3.60}, // < 65
		true:  {86.3, 3.25}, // >= 65
	},
	Femenino: {
		false: {95.6, 2.77},
		true:  {80.4, 3.25},
	},
}
