package usecases

import (
	"errors"

	"agroclima-server/cache"
	"agroclima-server/entities"
	"agroclima-server/repositories"

	"gorm.io/gorm"
)

// RegistryUseCase owns the producer → farm → plot → station containment tree.
// Every lookup that crosses a producer boundary filters by the owning
// producer: an entity that exists under someone else is reported as not
// found, never as forbidden.
type RegistryUseCase struct {
	FarmRepo    repositories.FarmRepository
	PlotRepo    repositories.PlotRepository
	StationRepo repositories.StationRepository
	Credentials *CredentialManager
	Latest      *cache.LatestCache
}

func NewRegistryUseCase(
	farmRepo repositories.FarmRepository,
	plotRepo repositories.PlotRepository,
	stationRepo repositories.StationRepository,
	credentials *CredentialManager,
	latest *cache.LatestCache,
) *RegistryUseCase {
	return &RegistryUseCase{
		FarmRepo:    farmRepo,
		PlotRepo:    plotRepo,
		StationRepo: stationRepo,
		Credentials: credentials,
		Latest:      latest,
	}
}

// ============= Farms =============

func (uc *RegistryUseCase) CreateFarm(producerID string, farm *entities.Farm) error {
	v := entities.NewValidationError()
	if farm.Name == "" {
		v.Add("nome", "is required")
	}
	if v.HasErrors() {
		return v
	}
	farm.ProducerID = producerID
	if err := uc.FarmRepo.Create(farm); err != nil {
		return storageErr(err)
	}
	return nil
}

func (uc *RegistryUseCase) GetFarm(farmID, producerID string) (*entities.Farm, error) {
	farm, err := uc.FarmRepo.GetOwned(farmID, producerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return farm, nil
}

func (uc *RegistryUseCase) ListFarms(producerID string) ([]entities.Farm, error) {
	farms, err := uc.FarmRepo.ListByProducer(producerID)
	if err != nil {
		return nil, storageErr(err)
	}
	return farms, nil
}

func (uc *RegistryUseCase) UpdateFarm(farmID, producerID string, in *entities.Farm) (*entities.Farm, error) {
	existing, err := uc.GetFarm(farmID, producerID)
	if err != nil {
		return nil, err
	}

	// Update only provided fields
	if in.Name != "" {
		existing.Name = in.Name
	}
	if in.AreaHectares != nil {
		existing.AreaHectares = in.AreaHectares
	}
	if in.Municipality != "" {
		existing.Municipality = in.Municipality
	}
	if in.RegionCode != "" {
		existing.RegionCode = in.RegionCode
	}
	if in.Geometry != "" {
		existing.Geometry = in.Geometry
	}

	if err := uc.FarmRepo.Update(existing); err != nil {
		return nil, storageErr(err)
	}
	return existing, nil
}

func (uc *RegistryUseCase) DeleteFarm(farmID, producerID string) error {
	farm, err := uc.GetFarm(farmID, producerID)
	if err != nil {
		return err
	}

	stations, err := uc.StationRepo.ListByFarm(farm.ID)
	if err != nil {
		return storageErr(err)
	}
	for _, s := range stations {
		uc.Latest.Invalidate(s.ID)
	}

	if err := uc.FarmRepo.Delete(farm.ID); err != nil {
		return storageErr(err)
	}
	return nil
}

// ============= Plots =============

func (uc *RegistryUseCase) CreatePlot(farmID, producerID string, plot *entities.Plot) error {
	if _, err := uc.GetFarm(farmID, producerID); err != nil {
		return err
	}

	v := entities.NewValidationError()
	if plot.Name == "" {
		v.Add("nome", "is required")
	}
	if v.HasErrors() {
		return v
	}

	plot.FarmID = farmID
	if err := uc.PlotRepo.Create(plot); err != nil {
		return storageErr(err)
	}
	return nil
}

func (uc *RegistryUseCase) ListPlots(farmID, producerID string) ([]entities.Plot, error) {
	if _, err := uc.GetFarm(farmID, producerID); err != nil {
		return nil, err
	}
	plots, err := uc.PlotRepo.ListByFarm(farmID)
	if err != nil {
		return nil, storageErr(err)
	}
	return plots, nil
}

// ============= Stations =============

// CreateStation registers a station under one of the producer's farms and
// issues its credential. The credential is immutable from here on.
func (uc *RegistryUseCase) CreateStation(farmID, producerID string, station *entities.Station) error {
	if _, err := uc.GetFarm(farmID, producerID); err != nil {
		return err
	}

	v := entities.NewValidationError()
	if station.Name == "" {
		v.Add("nome", "is required")
	}
	if v.HasErrors() {
		return v
	}

	credential, err := uc.Credentials.Issue()
	if err != nil {
		return err
	}

	station.FarmID = farmID
	station.Credential = credential
	if err := uc.StationRepo.Create(station); err != nil {
		return storageErr(err)
	}
	return nil
}

func (uc *RegistryUseCase) GetStation(stationID, producerID string) (*entities.Station, error) {
	station, err := uc.StationRepo.GetOwned(stationID, producerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return station, nil
}

func (uc *RegistryUseCase) ListStations(farmID, producerID string) ([]entities.Station, error) {
	if _, err := uc.GetFarm(farmID, producerID); err != nil {
		return nil, err
	}
	stations, err := uc.StationRepo.ListByFarm(farmID)
	if err != nil {
		return nil, storageErr(err)
	}
	return stations, nil
}

// DeactivateStation flips the station to inactive. Its credential stops
// authenticating immediately; historical readings stay queryable.
func (uc *RegistryUseCase) DeactivateStation(stationID, producerID string) (*entities.Station, error) {
	station, err := uc.GetStation(stationID, producerID)
	if err != nil {
		return nil, err
	}

	station.Status = entities.StatusInactive
	if err := uc.StationRepo.Update(station); err != nil {
		return nil, storageErr(err)
	}
	return station, nil
}

func (uc *RegistryUseCase) DeleteStation(stationID, producerID string) error {
	station, err := uc.GetStation(stationID, producerID)
	if err != nil {
		return err
	}

	uc.Latest.Invalidate(station.ID)
	if err := uc.StationRepo.Delete(station.ID); err != nil {
		return storageErr(err)
	}
	return nil
}
