package usecases

import (
	"errors"
	"testing"

	"agroclima-server/entities"
)

func TestGetFarmCrossTenantIsNotFound(t *testing.T) {
	f := newFixture(t)
	owner := f.createProducer(t, "owner@example.com")
	other := f.createProducer(t, "other@example.com")
	farm := f.createFarm(t, owner.ID, "Fazenda Boa Vista")

	if _, err := f.Registry.GetFarm(farm.ID, owner.ID); err != nil {
		t.Fatalf("owner lookup: %v", err)
	}

	// An existing farm under another producer must be indistinguishable from
	// a missing one
	_, err := f.Registry.GetFarm(farm.ID, other.ID)
	if !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("cross-tenant lookup: got %v, want ErrNotFound", err)
	}
	if errors.Is(err, entities.ErrUnauthorized) {
		t.Fatal("cross-tenant lookup must not reveal authorization state")
	}
}

func TestGetStationCrossTenantIsNotFound(t *testing.T) {
	f := newFixture(t)
	owner := f.createProducer(t, "owner@example.com")
	other := f.createProducer(t, "other@example.com")
	farm := f.createFarm(t, owner.ID, "Fazenda Boa Vista")
	station := f.createStation(t, farm.ID, owner.ID, "Estacao Norte")

	if _, err := f.Registry.GetStation(station.ID, owner.ID); err != nil {
		t.Fatalf("owner lookup: %v", err)
	}

	_, err := f.Registry.GetStation(station.ID, other.ID)
	if !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("cross-tenant lookup: got %v, want ErrNotFound", err)
	}
}

func TestCreateStationIssuesUniqueCredentials(t *testing.T) {
	f := newFixture(t)
	producer := f.createProducer(t, "p1@example.com")
	farm := f.createFarm(t, producer.ID, "Fazenda Boa Vista")

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		station := f.createStation(t, farm.ID, producer.ID, "Estacao")
		if len(station.Credential) != 36 {
			t.Fatalf("credential length %d, want 36", len(station.Credential))
		}
		if seen[station.Credential] {
			t.Fatalf("credential %q issued twice", station.Credential)
		}
		seen[station.Credential] = true
	}
}

func TestCreateStationOnForeignFarm(t *testing.T) {
	f := newFixture(t)
	owner := f.createProducer(t, "owner@example.com")
	other := f.createProducer(t, "other@example.com")
	farm := f.createFarm(t, owner.ID, "Fazenda Boa Vista")

	err := f.Registry.CreateStation(farm.ID, other.ID, &entities.Station{Name: "Intrusa"})
	if !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestDeactivatedStationExcludedFromListingButResolvable(t *testing.T) {
	f := newFixture(t)
	producer := f.createProducer(t, "p1@example.com")
	farm := f.createFarm(t, producer.ID, "Fazenda Boa Vista")
	station := f.createStation(t, farm.ID, producer.ID, "Estacao Norte")

	if _, err := f.Registry.DeactivateStation(station.ID, producer.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	stations, err := f.Registry.ListStations(farm.ID, producer.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stations) != 0 {
		t.Fatalf("deactivated station still listed: %d entries", len(stations))
	}

	// Still resolvable by id for historical reading queries
	got, err := f.Registry.GetStation(station.ID, producer.ID)
	if err != nil {
		t.Fatalf("get after deactivate: %v", err)
	}
	if got.Status != entities.StatusInactive {
		t.Fatalf("status %q, want %q", got.Status, entities.StatusInactive)
	}
}

func TestUpdateFarmPartialFields(t *testing.T) {
	f := newFixture(t)
	producer := f.createProducer(t, "p1@example.com")
	farm := f.createFarm(t, producer.ID, "Fazenda Boa Vista")

	updated, err := f.Registry.UpdateFarm(farm.ID, producer.ID, &entities.Farm{Municipality: "Uberaba"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Fazenda Boa Vista" {
		t.Fatalf("name overwritten: %q", updated.Name)
	}
	if updated.Municipality != "Uberaba" {
		t.Fatalf("municipality %q, want Uberaba", updated.Municipality)
	}
}

func TestCreatePlotRequiresOwnedFarm(t *testing.T) {
	f := newFixture(t)
	owner := f.createProducer(t, "owner@example.com")
	other := f.createProducer(t, "other@example.com")
	farm := f.createFarm(t, owner.ID, "Fazenda Boa Vista")

	if err := f.Registry.CreatePlot(farm.ID, owner.ID, &entities.Plot{Name: "Talhao 1"}); err != nil {
		t.Fatalf("owner create plot: %v", err)
	}

	err := f.Registry.CreatePlot(farm.ID, other.ID, &entities.Plot{Name: "Talhao 2"})
	if !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}

	plots, err := f.Registry.ListPlots(farm.ID, owner.ID)
	if err != nil {
		t.Fatalf("list plots: %v", err)
	}
	if len(plots) != 1 {
		t.Fatalf("got %d plots, want 1", len(plots))
	}
}
