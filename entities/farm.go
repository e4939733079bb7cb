package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Farm belongs to exactly one Producer for its whole lifetime. Geometry is an
// opaque reference (WKT/GeoJSON text) and is never interpreted here.
type Farm struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ProducerID   string    `gorm:"index:idx_farms_producer_status;type:varchar(36);not null" json:"produtor_id"`
	Name         string    `gorm:"not null" json:"nome"`
	AreaHectares *float64  `json:"area_hectares"`
	Municipality string    `json:"municipio"`
	RegionCode   string    `gorm:"type:varchar(2)" json:"uf"`
	Geometry     string    `gorm:"type:text" json:"geometry,omitempty"`
	Status       Status    `gorm:"index:idx_farms_producer_status;type:varchar(16);not null" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Plots    []Plot    `gorm:"foreignKey:FarmID;constraint:OnDelete:CASCADE" json:"-"`
	Stations []Station `gorm:"foreignKey:FarmID;constraint:OnDelete:CASCADE" json:"-"`
}

func (f *Farm) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	if f.Status == "" {
		f.Status = StatusActive
	}
	return
}
