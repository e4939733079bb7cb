package usecases

import (
	"errors"
	"time"

	"agroclima-server/cache"
	"agroclima-server/entities"
	"agroclima-server/repositories"

	"gorm.io/gorm"
)

// QueryUseCase answers range queries over stored readings. Ownership resolves
// through the registry first, so a cross-tenant query fails as not found
// before the store is ever touched.
type QueryUseCase struct {
	Registry    *RegistryUseCase
	ReadingRepo repositories.RainReadingRepository
	Latest      *cache.LatestCache
}

func NewQueryUseCase(registry *RegistryUseCase, readingRepo repositories.RainReadingRepository, latest *cache.LatestCache) *QueryUseCase {
	return &QueryUseCase{
		Registry:    registry,
		ReadingRepo: readingRepo,
		Latest:      latest,
	}
}

// ReadingsForStation returns the station's readings inside the inclusive
// window, ascending by timestamp. Either bound may be nil.
func (uc *QueryUseCase) ReadingsForStation(stationID, producerID string, from, to *time.Time) ([]entities.RainReading, error) {
	if _, err := uc.Registry.GetStation(stationID, producerID); err != nil {
		return nil, err
	}
	readings, err := uc.ReadingRepo.RangeByStation(stationID, from, to)
	if err != nil {
		return nil, storageErr(err)
	}
	return readings, nil
}

// ReadingsForStations is all-or-nothing: every station must resolve under the
// requesting producer or the whole call fails as not found, never partial
// results.
func (uc *QueryUseCase) ReadingsForStations(stationIDs []string, producerID string, from, to *time.Time) ([]entities.RainReading, error) {
	if len(stationIDs) == 0 {
		v := entities.NewValidationError()
		v.Add("estacoes", "at least one station id is required")
		return nil, v
	}
	for _, id := range stationIDs {
		if _, err := uc.Registry.GetStation(id, producerID); err != nil {
			return nil, err
		}
	}
	readings, err := uc.ReadingRepo.RangeByStations(stationIDs, from, to)
	if err != nil {
		return nil, storageErr(err)
	}
	return readings, nil
}

// LatestForStation serves the hot polling path from the in-memory cache,
// falling back to the descending index when the cache is cold.
func (uc *QueryUseCase) LatestForStation(stationID, producerID string) (*entities.RainReading, error) {
	if _, err := uc.Registry.GetStation(stationID, producerID); err != nil {
		return nil, err
	}

	if reading, ok := uc.Latest.Get(stationID); ok {
		return &reading, nil
	}

	reading, err := uc.ReadingRepo.LatestByStation(stationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, storageErr(err)
	}
	uc.Latest.Put(*reading)
	return reading, nil
}
