package repositories

import (
	"errors"

	"agroclima-server/db"
	"agroclima-server/entities"

	"gorm.io/gorm"
)

type stationPgRepository struct {
	db db.Database
}

func NewStationPgRepository(database db.Database) StationRepository {
	return &stationPgRepository{db: database}
}

func (r *stationPgRepository) Create(station *entities.Station) error {
	return r.db.GetDB().Create(station).Error
}

// GetOwned resolves ownership through the farm, so a station under another
// producer's farm looks exactly like a missing one.
func (r *stationPgRepository) GetOwned(id, producerID string) (*entities.Station, error) {
	var station entities.Station
	err := r.db.GetDB().
		Joins("JOIN farms ON farms.id = stations.farm_id").
		Where("stations.id = ? AND farms.producer_id = ?", id, producerID).
		First(&station).Error
	if err != nil {
		return nil, err
	}
	return &station, nil
}

func (r *stationPgRepository) GetByCredential(credential string) (*entities.Station, error) {
	var station entities.Station
	err := r.db.GetDB().Where("uuid = ?", credential).First(&station).Error
	if err != nil {
		return nil, err
	}
	return &station, nil
}

func (r *stationPgRepository) CredentialExists(credential string) (bool, error) {
	_, err := r.GetByCredential(credential)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func (r *stationPgRepository) ListByFarm(farmID string) ([]entities.Station, error) {
	var stations []entities.Station
	err := r.db.GetDB().
		Where("farm_id = ? AND status = ?", farmID, entities.StatusActive).
		Order("created_at DESC").
		Find(&stations).Error
	return stations, err
}

func (r *stationPgRepository) Update(station *entities.Station) error {
	return r.db.GetDB().Save(station).Error
}

func (r *stationPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Station{}).Error
}
