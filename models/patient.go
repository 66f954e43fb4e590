package models

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/idalopban/NutriKallpa-sub005/anthro"
)

// Patient is one clinical record. The flags below drive the population
// category and the measurement-form schema; changing any of them makes
// the previously resolved schema stale.
type Patient struct {
	gorm.Model
	PublicID string `gorm:"uniqueIndex;size:36"` // uuid, exposed in the API
	UserID   uint   `gorm:"index"`               // owning nutritionist

	FirstName string
	LastName  string
	BirthDate time.Time
	Sex       string `gorm:"size:10"` // masculino | femenino
	PhotoURL  string
	Notes     string `gorm:"type:text"`

	// Clinical flags
	Pregnant             bool
	GestationalWeek      int
	TwinPregnancy        bool
	PregestationalWeight float64 // kg

	Amputations string `gorm:"type:text"` // comma-separated anthro segment names

	Neurological bool
	GMFCS        int // 0 = not applicable
	CanStand     bool
}

// AmputationList parses the stored comma-separated segment names.
func (p *Patient) AmputationList() []anthro.Segmento {
	if p.Amputations == "" {
		return nil
	}
	parts := strings.Split(p.Amputations, ",")
	segs := make([]anthro.Segmento, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			segs = append(segs, anthro.Segmento(s))
		}
	}
	return segs
}
