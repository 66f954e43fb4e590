package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a nutritionist account. Patients are records owned by a user,
// not accounts themselves.
type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	FirstName     string
	LastName      string
	LicenseNumber string `gorm:"size:30"` // colegiatura
	ClinicName    string

	ProfilePicture string
	Disabled       bool

	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
}
