package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reading sources as deployed stations and importers report them.
const (
	SourceOwnStation      = "estacao_propria"
	SourceExternalNetwork = "inmet"
	SourceSatellite       = "satelite"
)

// RainReading is one time-stamped observation reported by a Station. Readings
// are append-only and immutable; there is no update path and duplicate
// (station, timestamp) pairs are stored as distinct records. JSON and column
// names follow the wire format the deployed fleet already speaks.
type RainReading struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	StationID       string    `gorm:"column:estacao_id;index:idx_rain_station_ts,priority:1;index:idx_rain_station_ts_desc,priority:1;type:varchar(36);not null" json:"estacao_id"`
	Timestamp       time.Time `gorm:"column:data_hora;index:idx_rain_station_ts,priority:2;index:idx_rain_station_ts_desc,priority:2,sort:desc;index:idx_rain_ts;not null" json:"data_hora"`
	PrecipitationMM float64   `gorm:"column:precipitacao_mm;not null" json:"precipitacao_mm"`
	Temperature     *float64  `gorm:"column:temperatura" json:"temperatura,omitempty"`
	Humidity        *float64  `gorm:"column:umidade" json:"umidade,omitempty"`
	Pressure        *float64  `gorm:"column:pressao" json:"pressao,omitempty"`
	WindSpeed       *float64  `gorm:"column:velocidade_vento" json:"velocidade_vento,omitempty"`
	WindDirection   *float64  `gorm:"column:direcao_vento" json:"direcao_vento,omitempty"`
	Source          string    `gorm:"column:fonte;type:varchar(20);not null" json:"fonte"`
	CreatedAt       time.Time `json:"created_at"`
}

func (r *RainReading) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Source == "" {
		r.Source = SourceOwnStation
	}
	return
}
