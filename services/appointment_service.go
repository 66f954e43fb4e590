package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/idalopban/NutriKallpa-sub005/config"
	"github.com/idalopban/NutriKallpa-sub005/models"
	"github.com/idalopban/NutriKallpa-sub005/utils"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentInput struct {
	PatientID   string `json:"patient_id" binding:"required"` // patient public id
	ScheduledAt string `json:"scheduled_at" binding:"required"`
	Notes       string `json:"notes"`
}

func CreateAppointment(userID uint, input AppointmentInput) (*models.Appointment, error) {
	p, err := GetPatient(userID, input.PatientID)
	if err != nil {
		return nil, err
	}
	when, err := time.Parse(time.RFC3339, input.ScheduledAt)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduled_at: %v", err)
	}

	a := models.Appointment{
		UserID:      userID,
		PatientID:   p.ID,
		ScheduledAt: when,
		Status:      models.AppointmentScheduled,
		Notes:       input.Notes,
	}
	if err := config.DB.Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func ListAppointments(userID uint) ([]models.Appointment, error) {
	var as []models.Appointment
	err := config.DB.Where("user_id = ?", userID).Order("scheduled_at").Find(&as).Error
	return as, err
}

func UpdateAppointmentStatus(userID, appointmentID uint, status string) error {
	switch status {
	case models.AppointmentScheduled, models.AppointmentCompleted, models.AppointmentCancelled:
	default:
		return fmt.Errorf("invalid status %q", status)
	}
	var a models.Appointment
	if err := config.DB.Where("id = ? AND user_id = ?", appointmentID, userID).First(&a).Error; err != nil {
		return ErrAppointmentNotFound
	}
	a.Status = status
	return config.DB.Save(&a).Error
}

func DeleteAppointment(userID, appointmentID uint) error {
	var a models.Appointment
	if err := config.DB.Where("id = ? AND user_id = ?", appointmentID, userID).First(&a).Error; err != nil {
		return ErrAppointmentNotFound
	}
	return config.DB.Delete(&a).Error
}

// SendDueReminders emails the nutritionist for every scheduled
// appointment within the next 24 hours that has not been reminded yet.
// Intended to run on a ticker from main.
func SendDueReminders() {
	if config.DB == nil {
		return
	}
	var due []models.Appointment
	horizon := time.Now().Add(24 * time.Hour)
	err := config.DB.
		Where("status = ? AND reminder_sent = ? AND scheduled_at BETWEEN ? AND ?",
			models.AppointmentScheduled, false, time.Now(), horizon).
		Find(&due).Error
	if err != nil {
		log.Error().Err(err).Msg("reminder sweep query failed")
		return
	}

	for _, a := range due {
		var user models.User
		if err := config.DB.First(&user, a.UserID).Error; err != nil {
			continue
		}
		var patient models.Patient
		if err := config.DB.First(&patient, a.PatientID).Error; err != nil {
			continue
		}
		name := patient.FirstName + " " + patient.LastName
		if err := utils.SendAppointmentReminder(user.Email, name, a.ScheduledAt); err != nil {
			continue // retried on the next sweep
		}
		a.ReminderSent = true
		if err := config.DB.Save(&a).Error; err != nil {
			log.Error().Err(err).Uint("appointment", a.ID).Msg("failed to mark reminder sent")
		}
	}
}
