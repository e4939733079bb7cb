package repositories

import (
	"agroclima-server/db"
	"agroclima-server/entities"
)

type producerPgRepository struct {
	db db.Database
}

func NewProducerPgRepository(database db.Database) ProducerRepository {
	return &producerPgRepository{db: database}
}

func (r *producerPgRepository) Create(producer *entities.Producer) error {
	return r.db.GetDB().Create(producer).Error
}

func (r *producerPgRepository) GetByID(id string) (*entities.Producer, error) {
	var producer entities.Producer
	err := r.db.GetDB().Where("id = ?", id).First(&producer).Error
	if err != nil {
		return nil, err
	}
	return &producer, nil
}

func (r *producerPgRepository) GetByEmail(email string) (*entities.Producer, error) {
	var producer entities.Producer
	err := r.db.GetDB().Where("email = ?", email).First(&producer).Error
	if err != nil {
		return nil, err
	}
	return &producer, nil
}

func (r *producerPgRepository) GetByCpfCnpj(cpfCnpj string) (*entities.Producer, error) {
	var producer entities.Producer
	err := r.db.GetDB().Where("cpf_cnpj = ?", cpfCnpj).First(&producer).Error
	if err != nil {
		return nil, err
	}
	return &producer, nil
}

func (r *producerPgRepository) Update(producer *entities.Producer) error {
	return r.db.GetDB().Save(producer).Error
}

func (r *producerPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Producer{}).Error
}
