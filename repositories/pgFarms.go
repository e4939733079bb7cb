package repositories

import (
	"agroclima-server/db"
	"agroclima-server/entities"
)

type farmPgRepository struct {
	db db.Database
}

func NewFarmPgRepository(database db.Database) FarmRepository {
	return &farmPgRepository{db: database}
}

func (r *farmPgRepository) Create(farm *entities.Farm) error {
	return r.db.GetDB().Create(farm).Error
}

// GetOwned filters by producer so a farm owned by someone else is
// indistinguishable from one that does not exist.
func (r *farmPgRepository) GetOwned(id, producerID string) (*entities.Farm, error) {
	var farm entities.Farm
	err := r.db.GetDB().
		Where("id = ? AND producer_id = ?", id, producerID).
		First(&farm).Error
	if err != nil {
		return nil, err
	}
	return &farm, nil
}

func (r *farmPgRepository) ListByProducer(producerID string) ([]entities.Farm, error) {
	var farms []entities.Farm
	err := r.db.GetDB().
		Where("producer_id = ? AND status = ?", producerID, entities.StatusActive).
		Order("created_at DESC").
		Find(&farms).Error
	return farms, err
}

func (r *farmPgRepository) Update(farm *entities.Farm) error {
	return r.db.GetDB().Save(farm).Error
}

func (r *farmPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Farm{}).Error
}
