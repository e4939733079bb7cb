package repositories

import (
	"time"

	"agroclima-server/db"
	"agroclima-server/entities"

	"gorm.io/gorm"
)

type rainReadingPgRepository struct {
	db db.Database
}

func NewRainReadingPgRepository(database db.Database) RainReadingRepository {
	return &rainReadingPgRepository{db: database}
}

func (r *rainReadingPgRepository) Append(reading *entities.RainReading) error {
	return r.db.GetDB().Create(reading).Error
}

func (r *rainReadingPgRepository) RangeByStation(stationID string, from, to *time.Time) ([]entities.RainReading, error) {
	var readings []entities.RainReading
	q := applyWindow(r.db.GetDB().Where("estacao_id = ?", stationID), from, to)
	err := q.Order("data_hora ASC").Find(&readings).Error
	return readings, err
}

func (r *rainReadingPgRepository) RangeByStations(stationIDs []string, from, to *time.Time) ([]entities.RainReading, error) {
	var readings []entities.RainReading
	q := applyWindow(r.db.GetDB().Where("estacao_id IN ?", stationIDs), from, to)
	err := q.Order("estacao_id ASC, data_hora ASC").Find(&readings).Error
	return readings, err
}

func (r *rainReadingPgRepository) LatestByStation(stationID string) (*entities.RainReading, error) {
	var reading entities.RainReading
	err := r.db.GetDB().
		Where("estacao_id = ?", stationID).
		Order("data_hora DESC").
		First(&reading).Error
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

// applyWindow adds the inclusive bounds of a [from, to] window; a nil bound
// leaves that side open.
func applyWindow(q *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where("data_hora >= ?", *from)
	}
	if to != nil {
		q = q.Where("data_hora <= ?", *to)
	}
	return q
}
