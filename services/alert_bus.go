package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/idalopban/NutriKallpa-sub005/anthro"
	"github.com/idalopban/NutriKallpa-sub005/models"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub) {
	_alert = alertDeps{db: db, rt: rt}
}

// EmitAlert persists a clinical alert for the nutritionist and pushes
// it over the websocket hub. Safe to call anywhere.
func EmitAlert(userID, patientID uint, typ, message string) {
	if _alert.db == nil {
		return // not initialized
	}
	a := &models.Alert{UserID: userID, PatientID: patientID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
}

// BroadcastSchema notifies the nutritionist's open sessions that a
// patient's measurement-form schema changed (clinical flag edits make
// the previously fetched schema stale).
func BroadcastSchema(userID uint, patientPublicID string, esquema anthro.FieldRequirementSchema) {
	if _alert.rt == nil {
		return
	}
	_alert.rt.BroadcastAlert(userID, map[string]any{
		"kind":    "schema.updated",
		"patient": patientPublicID,
		"schema":  esquema,
	})
}

func ListAlerts(userID uint) ([]models.Alert, error) {
	if _alert.db == nil {
		return nil, nil
	}
	var alerts []models.Alert
	err := _alert.db.Where("user_id = ?", userID).Order("created_at desc").Limit(100).Find(&alerts).Error
	return alerts, err
}
