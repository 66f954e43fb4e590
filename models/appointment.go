package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	gorm.Model
	UserID    uint `gorm:"index"`
	PatientID uint `gorm:"index"`

	ScheduledAt  time.Time
	Status       string `gorm:"size:20;default:scheduled"`
	Notes        string `gorm:"type:text"`
	ReminderSent bool
}
