package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Producer is the tenant at the root of the ownership tree. Email and
// cpf/cnpj are unique system-wide.
type Producer struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name         string    `gorm:"not null" json:"nome"`
	Phone        string    `gorm:"type:varchar(11)" json:"telefone"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	CpfCnpj      *string   `gorm:"uniqueIndex;type:varchar(14)" json:"cpf_cnpj"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Status       Status    `gorm:"type:varchar(16);not null" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Farms []Farm `gorm:"foreignKey:ProducerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Producer) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	return
}
