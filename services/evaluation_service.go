package services

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/idalopban/NutriKallpa-sub005/anthro"
	"github.com/idalopban/NutriKallpa-sub005/models"
)

// EvaluatePatient runs the calculation engine over a measurement set.
// Results are computed fresh on every call and never stored; the only
// durable records are the patient and the raw measurement.
//
// Critical findings (the all-caps warnings the engine reserves for
// red-tier states) are surfaced as persisted alerts on top of the
// returned result.
func EvaluatePatient(p *models.Patient, set anthro.MeasurementSet) (*anthro.EvaluationResult, error) {
	ctx := BuildClinicalContext(p)
	result, err := anthro.Evaluar(ctx, set)
	if err != nil {
		return nil, err
	}

	log.Info().Str("patient", p.PublicID).
		Str("category", string(result.Categoria)).
		Str("classification", result.Clasificacion).
		Int("warnings", len(result.Advertencias)).
		Msg("evaluation completed")

	for _, adv := range result.Advertencias {
		if esCritica(adv) {
			EmitAlert(p.UserID, p.ID, "critical",
				fmt.Sprintf("%s %s: %s", p.FirstName, p.LastName, adv))
		}
	}
	return result, nil
}

// EvaluateStoredMeasurement recomputes from a persisted visit record.
func EvaluateStoredMeasurement(p *models.Patient, m *models.Measurement) (*anthro.EvaluationResult, error) {
	return EvaluatePatient(p, m.ToMeasurementSet())
}

// The engine prefixes red-tier findings with an uppercase marker.
func esCritica(advertencia string) bool {
	return strings.HasPrefix(advertencia, "ALERTA") ||
		strings.HasPrefix(advertencia, "SARCOPENIA")
}
