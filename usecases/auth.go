package usecases

import (
	"errors"
	"fmt"
	"time"

	"agroclima-server/entities"
	"agroclima-server/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims carried in a producer access token.
type Claims struct {
	ProducerID string `json:"producer_id"`
	jwt.RegisteredClaims
}

type RegisterInput struct {
	Name     string `json:"nome"`
	Phone    string `json:"telefone"`
	Email    string `json:"email"`
	CpfCnpj  string `json:"cpf_cnpj"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUseCase registers producers and issues their access tokens.
type AuthUseCase struct {
	ProducerRepo repositories.ProducerRepository
	Secret       []byte
	TokenTTL     time.Duration
}

func NewAuthUseCase(producerRepo repositories.ProducerRepository, secret string, tokenTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{
		ProducerRepo: producerRepo,
		Secret:       []byte(secret),
		TokenTTL:     tokenTTL,
	}
}

func (uc *AuthUseCase) Register(in *RegisterInput) (string, *entities.Producer, error) {
	v := entities.NewValidationError()
	if in.Name == "" {
		v.Add("nome", "is required")
	}
	if in.Email == "" {
		v.Add("email", "is required")
	}
	if in.Password == "" {
		v.Add("password", "is required")
	}
	if v.HasErrors() {
		return "", nil, v
	}

	if _, err := uc.ProducerRepo.GetByEmail(in.Email); err == nil {
		return "", nil, fmt.Errorf("%w: email already registered", entities.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, storageErr(err)
	}
	if in.CpfCnpj != "" {
		if _, err := uc.ProducerRepo.GetByCpfCnpj(in.CpfCnpj); err == nil {
			return "", nil, fmt.Errorf("%w: cpf/cnpj already registered", entities.ErrConflict)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, storageErr(err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, storageErr(err)
	}

	producer := &entities.Producer{
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if in.CpfCnpj != "" {
		producer.CpfCnpj = &in.CpfCnpj
	}
	if err := uc.ProducerRepo.Create(producer); err != nil {
		return "", nil, storageErr(err)
	}

	token, err := uc.issueToken(producer.ID)
	if err != nil {
		return "", nil, err
	}
	return token, producer, nil
}

func (uc *AuthUseCase) Login(in *LoginInput) (string, *entities.Producer, error) {
	producer, err := uc.ProducerRepo.GetByEmail(in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, entities.ErrUnauthorized
		}
		return "", nil, storageErr(err)
	}
	if !producer.Status.IsActive() {
		return "", nil, entities.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(producer.PasswordHash), []byte(in.Password)) != nil {
		return "", nil, entities.ErrUnauthorized
	}

	token, err := uc.issueToken(producer.ID)
	if err != nil {
		return "", nil, err
	}
	return token, producer, nil
}

func (uc *AuthUseCase) issueToken(producerID string) (string, error) {
	now := time.Now()
	claims := Claims{
		ProducerID: producerID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(uc.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
