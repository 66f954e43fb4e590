package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/idalopban/NutriKallpa-sub005/anthro"
	"github.com/idalopban/NutriKallpa-sub005/config"
	"github.com/idalopban/NutriKallpa-sub005/models"
)

var ErrMeasurementNotFound = errors.New("measurement not found")

type MeasurementInput struct {
	VisitDate string  `json:"visit_date"` // YYYY-MM-DD, defaults to today
	Peso      float64 `json:"peso"`
	Talla     float64 `json:"talla"`

	Pliegues   anthro.Pliegues   `json:"pliegues"`
	Perimetros anthro.Perimetros `json:"perimetros"`
	Diametros  anthro.Diametros  `json:"diametros"`

	AlturaRodilla    float64 `json:"altura_rodilla"`
	LongitudTibia    float64 `json:"longitud_tibia"`
	MediaEnvergadura float64 `json:"media_envergadura"`
	LongitudCubito   float64 `json:"longitud_cubito"`

	Tanner         string  `json:"tanner"`
	FuerzaPrension float64 `json:"fuerza_prension"`
	TiempoMarcha   float64 `json:"tiempo_marcha"`
}

func (in *MeasurementInput) toMeasurementSet() anthro.MeasurementSet {
	return anthro.MeasurementSet{
		Peso:             in.Peso,
		Talla:            in.Talla,
		Pliegues:         in.Pliegues,
		Perimetros:       in.Perimetros,
		Diametros:        in.Diametros,
		AlturaRodilla:    in.AlturaRodilla,
		LongitudTibia:    in.LongitudTibia,
		MediaEnvergadura: in.MediaEnvergadura,
		LongitudCubito:   in.LongitudCubito,
		Tanner:           anthro.EtapaMaduracion(in.Tanner),
		FuerzaPrension:   in.FuerzaPrension,
		TiempoMarcha:     in.TiempoMarcha,
	}
}

// InlineMeasurementSet converts an API payload into the engine's input
// without persisting anything.
func InlineMeasurementSet(in *MeasurementInput) anthro.MeasurementSet {
	return in.toMeasurementSet()
}

// ValidateMeasurement checks the input against the schema resolved from
// the patient's clinical flags. Returns *anthro.MissingFieldsError when
// a required field is absent, so the API layer can answer 422 with the
// field list.
func ValidateMeasurement(ctx anthro.ClinicalContext, in *MeasurementInput) error {
	set := in.toMeasurementSet()
	// A dry evaluation run performs exactly the schema validation the
	// insert needs; its computed values are discarded.
	_, err := anthro.Evaluar(ctx, set)
	var mfe *anthro.MissingFieldsError
	if errors.As(err, &mfe) {
		return mfe
	}
	return nil
}

func CreateMeasurement(p *models.Patient, in *MeasurementInput) (*models.Measurement, error) {
	if err := ValidateMeasurement(BuildClinicalContext(p), in); err != nil {
		return nil, err
	}

	visit := time.Now()
	if in.VisitDate != "" {
		parsed, err := time.Parse("2006-01-02", in.VisitDate)
		if err != nil {
			return nil, fmt.Errorf("invalid visit_date: %v", err)
		}
		visit = parsed
	}

	m := models.Measurement{
		PatientID: p.ID,
		VisitDate: visit,
		Peso:      in.Peso,
		Talla:     in.Talla,

		PliegueTriceps:      in.Pliegues.Triceps,
		PliegueSubescapular: in.Pliegues.Subescapular,
		PliegueBiceps:       in.Pliegues.Biceps,
		PliegueCrestaIliaca: in.Pliegues.CrestaIliaca,
		PliegueSupraespinal: in.Pliegues.Supraespinal,
		PliegueAbdominal:    in.Pliegues.Abdominal,
		PliegueMuslo:        in.Pliegues.Muslo,
		PlieguePantorrilla:  in.Pliegues.Pantorrilla,

		PerimetroBrazoRelajado:   in.Perimetros.BrazoRelajado,
		PerimetroBrazoFlexionado: in.Perimetros.BrazoFlexionado,
		PerimetroCintura:         in.Perimetros.Cintura,
		PerimetroCadera:          in.Perimetros.Cadera,
		PerimetroMuslo:           in.Perimetros.Muslo,
		PerimetroPantorrilla:     in.Perimetros.Pantorrilla,

		DiametroHumero:        in.Diametros.Humero,
		DiametroFemur:         in.Diametros.Femur,
		DiametroBiacromial:    in.Diametros.Biacromial,
		DiametroBiiliocristal: in.Diametros.Biiliocristal,

		AlturaRodilla:    in.AlturaRodilla,
		LongitudTibia:    in.LongitudTibia,
		MediaEnvergadura: in.MediaEnvergadura,
		LongitudCubito:   in.LongitudCubito,

		Tanner:         in.Tanner,
		FuerzaPrension: in.FuerzaPrension,
		TiempoMarcha:   in.TiempoMarcha,
	}

	if err := config.DB.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func ListMeasurements(patientID uint) ([]models.Measurement, error) {
	var ms []models.Measurement
	err := config.DB.Where("patient_id = ?", patientID).Order("visit_date desc").Find(&ms).Error
	return ms, err
}

func GetMeasurement(patientID, measurementID uint) (*models.Measurement, error) {
	var m models.Measurement
	result := config.DB.Where("id = ? AND patient_id = ?", measurementID, patientID).First(&m)
	if result.Error != nil {
		return nil, ErrMeasurementNotFound
	}
	return &m, nil
}

func DeleteMeasurement(patientID, measurementID uint) error {
	m, err := GetMeasurement(patientID, measurementID)
	if err != nil {
		return err
	}
	return config.DB.Delete(m).Error
}
