package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Station is a physical weather-sensing device registered under a Farm. Its
// credential is the 36-character UUID string a deployed device presents on
// every ingest call; it is unique system-wide and immutable once issued. The
// column keeps the name "uuid" used by the deployed fleet's schema.
type Station struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	FarmID     string    `gorm:"index:idx_stations_farm_status;type:varchar(36);not null" json:"fazenda_id"`
	Name       string    `gorm:"not null" json:"nome"`
	Credential string    `gorm:"column:uuid;uniqueIndex;type:varchar(36);not null" json:"uuid"`
	Geometry   string    `gorm:"type:text" json:"geometry,omitempty"`
	Status     Status    `gorm:"index:idx_stations_farm_status;type:varchar(16);not null" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Readings []RainReading `gorm:"foreignKey:StationID;constraint:OnDelete:CASCADE" json:"-"`
}

func (s *Station) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Status == "" {
		s.Status = StatusActive
	}
	return
}
