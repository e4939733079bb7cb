package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plot is a subdivision of a Farm with its own geometry.
type Plot struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	FarmID       string    `gorm:"index:idx_plots_farm_status;type:varchar(36);not null" json:"fazenda_id"`
	Name         string    `gorm:"not null" json:"nome"`
	AreaHectares *float64  `json:"area_hectares"`
	Geometry     string    `gorm:"type:text" json:"geometry,omitempty"`
	Status       Status    `gorm:"index:idx_plots_farm_status;type:varchar(16);not null" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *Plot) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	return
}
