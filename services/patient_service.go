package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/idalopban/NutriKallpa-sub005/anthro"
	"github.com/idalopban/NutriKallpa-sub005/config"
	"github.com/idalopban/NutriKallpa-sub005/models"
	"github.com/idalopban/NutriKallpa-sub005/utils"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientInput struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"` // YYYY-MM-DD
	Sex       string `json:"sex" binding:"required,oneof=masculino femenino"`
	Notes     string `json:"notes"`
	Photo     string `json:"photo"` // base64 data URL

	Pregnant             *bool    `json:"pregnant"`
	GestationalWeek      *int     `json:"gestational_week"`
	TwinPregnancy        *bool    `json:"twin_pregnancy"`
	PregestationalWeight *float64 `json:"pregestational_weight"`
	Amputations          *string  `json:"amputations"` // comma-separated segments
	Neurological         *bool    `json:"neurological"`
	GMFCS                *int     `json:"gmfcs"`
	CanStand             *bool    `json:"can_stand"`
}

func CreatePatient(userID uint, input PatientInput) (*models.Patient, error) {
	birth, err := time.Parse("2006-01-02", input.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid birth_date: %v", err)
	}

	p := models.Patient{
		PublicID:  uuid.NewString(),
		UserID:    userID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		BirthDate: birth,
		Sex:       input.Sex,
		Notes:     input.Notes,
		CanStand:  true,
	}
	applyClinicalFlags(&p, input)

	if input.Photo != "" {
		url, err := utils.UploadBase64ImageToS3(input.Photo, p.PublicID)
		if err != nil {
			return nil, fmt.Errorf("failed to upload photo: %v", err)
		}
		p.PhotoURL = url
	}

	if err := config.DB.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func ListPatients(userID uint) ([]models.Patient, error) {
	var patients []models.Patient
	err := config.DB.Where("user_id = ?", userID).Order("last_name, first_name").Find(&patients).Error
	return patients, err
}

func GetPatient(userID uint, publicID string) (*models.Patient, error) {
	var p models.Patient
	result := config.DB.Where("user_id = ? AND public_id = ?", userID, publicID).First(&p)
	if result.Error != nil {
		return nil, ErrPatientNotFound
	}
	return &p, nil
}

// UpdatePatient applies profile and clinical-flag changes. When a flag
// that feeds category resolution changes, the freshly resolved schema is
// pushed to the owning nutritionist so open measurement forms re-render.
func UpdatePatient(userID uint, publicID string, input PatientInput) (*models.Patient, error) {
	p, err := GetPatient(userID, publicID)
	if err != nil {
		return nil, err
	}

	antes := anthro.ResolverCategoria(BuildClinicalContext(p))

	if input.FirstName != "" {
		p.FirstName = input.FirstName
	}
	if input.LastName != "" {
		p.LastName = input.LastName
	}
	if input.BirthDate != "" {
		if birth, err := time.Parse("2006-01-02", input.BirthDate); err == nil {
			p.BirthDate = birth
		}
	}
	if input.Sex != "" {
		p.Sex = input.Sex
	}
	if input.Notes != "" {
		p.Notes = input.Notes
	}
	applyClinicalFlags(p, input)

	if input.Photo != "" {
		url, err := utils.UploadBase64ImageToS3(input.Photo, p.PublicID)
		if err != nil {
			return nil, fmt.Errorf("failed to upload photo: %v", err)
		}
		p.PhotoURL = url
	}

	if err := config.DB.Save(p).Error; err != nil {
		return nil, err
	}

	ctx := BuildClinicalContext(p)
	if despues := anthro.ResolverCategoria(ctx); despues != antes {
		log.Info().Str("patient", p.PublicID).
			Str("from", string(antes)).Str("to", string(despues)).
			Msg("population category changed")
		_, esquema := anthro.Resolver(ctx)
		BroadcastSchema(p.UserID, p.PublicID, esquema)
	}
	return p, nil
}

func DeletePatient(userID uint, publicID string) error {
	p, err := GetPatient(userID, publicID)
	if err != nil {
		return err
	}
	return config.DB.Delete(p).Error
}

func applyClinicalFlags(p *models.Patient, input PatientInput) {
	if input.Pregnant != nil {
		p.Pregnant = *input.Pregnant
	}
	if input.GestationalWeek != nil {
		p.GestationalWeek = *input.GestationalWeek
	}
	if input.TwinPregnancy != nil {
		p.TwinPregnancy = *input.TwinPregnancy
	}
	if input.PregestationalWeight != nil {
		p.PregestationalWeight = *input.PregestationalWeight
	}
	if input.Amputations != nil {
		p.Amputations = *input.Amputations
	}
	if input.Neurological != nil {
		p.Neurological = *input.Neurological
	}
	if input.GMFCS != nil {
		p.GMFCS = *input.GMFCS
	}
	if input.CanStand != nil {
		p.CanStand = *input.CanStand
	}
}

// BuildClinicalContext maps a patient's current profile onto the
// calculation engine's context. Pure; shared by the schema endpoint,
// measurement validation and the evaluation service.
func BuildClinicalContext(p *models.Patient) anthro.ClinicalContext {
	segs := p.AmputationList()
	return anthro.ClinicalContext{
		Edad:               utils.AgeInYears(p.BirthDate, time.Now()),
		Sexo:               anthro.Sexo(p.Sex),
		Gestante:           p.Pregnant,
		SemanaGestacional:  p.GestationalWeek,
		EmbarazoGemelar:    p.TwinPregnancy,
		PesoPregestacional: p.PregestationalWeight,
		TieneAmputaciones:  len(segs) > 0,
		Amputaciones:       segs,
		EsNeurologico:      p.Neurological,
		GMFCS:              p.GMFCS,
		PuedeEstarDePie:    p.CanStand,
	}
}

// ResolvePatientSchema returns the field-requirement schema for the
// patient's current clinical flags.
func ResolvePatientSchema(p *models.Patient) anthro.FieldRequirementSchema {
	_, esquema := anthro.Resolver(BuildClinicalContext(p))
	return esquema
}
