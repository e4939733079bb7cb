package usecases

import (
	"errors"
	"fmt"

	"agroclima-server/entities"
	"agroclima-server/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CredentialManager issues and resolves the opaque token a physical station
// presents on ingest. Tokens are 36-character UUID strings, unique across all
// stations and never rotated.
type CredentialManager struct {
	StationRepo repositories.StationRepository
}

func NewCredentialManager(stationRepo repositories.StationRepository) *CredentialManager {
	return &CredentialManager{StationRepo: stationRepo}
}

// Issue generates a fresh credential. A collision in the 122-bit random space
// is close to impossible; if one happens anyway, regenerate once and then
// give up with a conflict.
func (m *CredentialManager) Issue() (string, error) {
	for attempt := 0; attempt < 2; attempt++ {
		credential := uuid.New().String()
		exists, err := m.StationRepo.CredentialExists(credential)
		if err != nil {
			return "", storageErr(err)
		}
		if !exists {
			return credential, nil
		}
	}
	return "", fmt.Errorf("%w: credential collision", entities.ErrConflict)
}

// Resolve authenticates a credential. An unknown credential and a valid
// credential on a deactivated station both come back unauthorized.
func (m *CredentialManager) Resolve(credential string) (*entities.Station, error) {
	station, err := m.StationRepo.GetByCredential(credential)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrUnauthorized
		}
		return nil, storageErr(err)
	}
	if !station.Status.IsActive() {
		return nil, entities.ErrUnauthorized
	}
	return station, nil
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", entities.ErrStorage, err)
}
