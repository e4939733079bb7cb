package usecases

import (
	"testing"
	"time"

	"agroclima-server/cache"
	"agroclima-server/db"
	"agroclima-server/entities"
	"agroclima-server/repositories"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixture wires the full use-case stack over an in-memory database.
type fixture struct {
	DB          db.Database
	Producers   repositories.ProducerRepository
	Farms       repositories.FarmRepository
	Plots       repositories.PlotRepository
	Stations    repositories.StationRepository
	Readings    repositories.RainReadingRepository
	Latest      *cache.LatestCache
	Credentials *CredentialManager
	Registry    *RegistryUseCase
	Ingestion   *IngestionUseCase
	Queries     *QueryUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// One connection, or the pool would see separate in-memory databases
	sqlDB, err := g.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Migrate(g); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database := &db.GormDatabase{DB: g}

	f := &fixture{
		DB:        database,
		Producers: repositories.NewProducerPgRepository(database),
		Farms:     repositories.NewFarmPgRepository(database),
		Plots:     repositories.NewPlotPgRepository(database),
		Stations:  repositories.NewStationPgRepository(database),
		Readings:  repositories.NewRainReadingPgRepository(database),
		Latest:    cache.NewLatestCache(),
	}
	f.Credentials = NewCredentialManager(f.Stations)
	f.Registry = NewRegistryUseCase(f.Farms, f.Plots, f.Stations, f.Credentials, f.Latest)
	f.Ingestion = NewIngestionUseCase(f.Credentials, f.Readings, f.Latest)
	f.Queries = NewQueryUseCase(f.Registry, f.Readings, f.Latest)
	return f
}

func (f *fixture) createProducer(t *testing.T, email string) *entities.Producer {
	t.Helper()
	producer := &entities.Producer{
		Name:         "Produtor " + email,
		Email:        email,
		PasswordHash: "x",
	}
	if err := f.Producers.Create(producer); err != nil {
		t.Fatalf("create producer: %v", err)
	}
	return producer
}

func (f *fixture) createFarm(t *testing.T, producerID, name string) *entities.Farm {
	t.Helper()
	farm := &entities.Farm{Name: name}
	if err := f.Registry.CreateFarm(producerID, farm); err != nil {
		t.Fatalf("create farm: %v", err)
	}
	return farm
}

func (f *fixture) createStation(t *testing.T, farmID, producerID, name string) *entities.Station {
	t.Helper()
	station := &entities.Station{Name: name}
	if err := f.Registry.CreateStation(farmID, producerID, station); err != nil {
		t.Fatalf("create station: %v", err)
	}
	return station
}

func parseTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return ts
}

func float(v float64) *float64 { return &v }
