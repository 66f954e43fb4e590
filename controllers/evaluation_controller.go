package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idalopban/NutriKallpa-sub005/anthro"
	"github.com/idalopban/NutriKallpa-sub005/services"
)

// EvaluationInput selects the measurement source: a stored visit by id,
// or an inline set for what-if recalculation without persisting.
type EvaluationInput struct {
	MeasurementID uint                       `json:"measurement_id"`
	Inline        *services.MeasurementInput `json:"measurement"`
}

// Evaluate recomputes the full evaluation for a patient. The response
// is produced fresh on every call and never cached or stored.
func Evaluate(c *gin.Context) {
	p, err := services.GetPatient(c.GetUint("userID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var input EvaluationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var result *anthro.EvaluationResult
	switch {
	case input.MeasurementID != 0:
		m, err := services.GetMeasurement(p.ID, input.MeasurementID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		result, err = services.EvaluateStoredMeasurement(p, m)
		if err != nil {
			respondEvaluationError(c, err)
			return
		}
	case input.Inline != nil:
		set := services.InlineMeasurementSet(input.Inline)
		result, err = services.EvaluatePatient(p, set)
		if err != nil {
			respondEvaluationError(c, err)
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "measurement_id or measurement is required"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Missing required fields map to 422 with the field list; everything
// else the engine reports lands as warnings inside a 200 result.
func respondEvaluationError(c *gin.Context, err error) {
	var mfe *anthro.MissingFieldsError
	if errors.As(err, &mfe) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "missing required fields",
			"category":       mfe.Categoria,
			"missing_fields": mfe.Campos,
		})
		return
	}
	var inv *anthro.ErrInsumoInvalido
	if errors.As(err, &inv) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": inv.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
