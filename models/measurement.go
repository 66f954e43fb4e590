package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/idalopban/NutriKallpa-sub005/anthro"
)

// Measurement is the raw anthropometric record of one visit. Only raw
// values are stored; every derived result (IMC, fractionation,
// somatotype, classifications) is recomputed on demand and never
// persisted.
type Measurement struct {
	gorm.Model
	PatientID uint `gorm:"index"`
	VisitDate time.Time

	Peso  float64 // kg
	Talla float64 // cm; supine length for infants

	// Skinfolds, mm
	PliegueTriceps      float64
	PliegueSubescapular float64
	PliegueBiceps       float64
	PliegueCrestaIliaca float64
	PliegueSupraespinal float64
	PliegueAbdominal    float64
	PliegueMuslo        float64
	PlieguePantorrilla  float64

	// Girths, cm
	PerimetroBrazoRelajado   float64
	PerimetroBrazoFlexionado float64
	PerimetroCintura         float64
	PerimetroCadera          float64
	PerimetroMuslo           float64
	PerimetroPantorrilla     float64

	// Bone breadths, cm
	DiametroHumero        float64
	DiametroFemur         float64
	DiametroBiacromial    float64
	DiametroBiiliocristal float64

	// Stature proxies, cm
	AlturaRodilla    float64
	LongitudTibia    float64
	MediaEnvergadura float64
	LongitudCubito   float64

	// Tanner maturation stage, empty when unspecified
	Tanner string `gorm:"size:12"`

	// Geriatric screen
	FuerzaPrension float64 // kg
	TiempoMarcha   float64 // s, Timed Up and Go
}

// ToMeasurementSet maps the stored row onto the calculation engine's
// input. Age, sex and the clinical flags come from the patient, not the
// visit.
func (m *Measurement) ToMeasurementSet() anthro.MeasurementSet {
	return anthro.MeasurementSet{
		Peso:  m.Peso,
		Talla: m.Talla,
		Pliegues: anthro.Pliegues{
			Triceps:      m.PliegueTriceps,
			Subescapular: m.PliegueSubescapular,
			Biceps:       m.PliegueBiceps,
			CrestaIliaca: m.PliegueCrestaIliaca,
			Supraespinal: m.PliegueSupraespinal,
			Abdominal:    m.PliegueAbdominal,
			Muslo:        m.PliegueMuslo,
			Pantorrilla:  m.PlieguePantorrilla,
		},
		Perimetros: anthro.Perimetros{
			BrazoRelajado:   m.PerimetroBrazoRelajado,
			BrazoFlexionado: m.PerimetroBrazoFlexionado,
			Cintura:         m.PerimetroCintura,
			Cadera:          m.PerimetroCadera,
			Muslo:           m.PerimetroMuslo,
			Pantorrilla:     m.PerimetroPantorrilla,
		},
		Diametros: anthro.Diametros{
			Humero:        m.DiametroHumero,
			Femur:         m.DiametroFemur,
			Biacromial:    m.DiametroBiacromial,
			Biiliocristal: m.DiametroBiiliocristal,
		},
		AlturaRodilla:    m.AlturaRodilla,
		LongitudTibia:    m.LongitudTibia,
		MediaEnvergadura: m.MediaEnvergadura,
		LongitudCubito:   m.LongitudCubito,
		Tanner:           anthro.EtapaMaduracion(m.Tanner),
		FuerzaPrension:   m.FuerzaPrension,
		TiempoMarcha:     m.TiempoMarcha,
	}
}
