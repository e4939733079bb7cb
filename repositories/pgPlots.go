package repositories

import (
	"agroclima-server/db"
	"agroclima-server/entities"
)

type plotPgRepository struct {
	db db.Database
}

func NewPlotPgRepository(database db.Database) PlotRepository {
	return &plotPgRepository{db: database}
}

func (r *plotPgRepository) Create(plot *entities.Plot) error {
	return r.db.GetDB().Create(plot).Error
}

func (r *plotPgRepository) GetByID(id string) (*entities.Plot, error) {
	var plot entities.Plot
	err := r.db.GetDB().Where("id = ?", id).First(&plot).Error
	if err != nil {
		return nil, err
	}
	return &plot, nil
}

func (r *plotPgRepository) ListByFarm(farmID string) ([]entities.Plot, error) {
	var plots []entities.Plot
	err := r.db.GetDB().
		Where("farm_id = ? AND status = ?", farmID, entities.StatusActive).
		Order("created_at DESC").
		Find(&plots).Error
	return plots, err
}

func (r *plotPgRepository) Update(plot *entities.Plot) error {
	return r.db.GetDB().Save(plot).Error
}

func (r *plotPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Plot{}).Error
}
