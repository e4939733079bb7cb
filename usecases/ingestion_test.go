package usecases

import (
	"errors"
	"testing"

	"agroclima-server/entities"

	"github.com/google/uuid"
)

func ingestFixture(t *testing.T) (*fixture, *entities.Station) {
	t.Helper()
	f := newFixture(t)
	producer := f.createProducer(t, "p1@example.com")
	farm := f.createFarm(t, producer.ID, "Fazenda Boa Vista")
	station := f.createStation(t, farm.ID, producer.ID, "Estacao Norte")
	return f, station
}

func TestIngestSuccess(t *testing.T) {
	f, station := ingestFixture(t)

	reading, err := f.Ingestion.Ingest(station.Credential, &ReadingInput{
		Timestamp:       "2024-01-10T08:00:00",
		PrecipitationMM: float(12.5),
	})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if reading.StationID != station.ID {
		t.Fatalf("station id %q, want %q", reading.StationID, station.ID)
	}
	if reading.Source != entities.SourceOwnStation {
		t.Fatalf("source %q, want default %q", reading.Source, entities.SourceOwnStation)
	}

	stored, err := f.Readings.RangeByStation(station.ID, nil, nil)
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("stored %d readings, want 1", len(stored))
	}
	if stored[0].PrecipitationMM != 12.5 {
		t.Fatalf("stored precipitation %v, want 12.5", stored[0].PrecipitationMM)
	}

	if cached, ok := f.Latest.Get(station.ID); !ok || cached.ID != reading.ID {
		t.Fatal("latest cache not updated after commit")
	}
}

func TestIngestMissingCredential(t *testing.T) {
	f, _ := ingestFixture(t)

	_, err := f.Ingestion.Ingest("", &ReadingInput{
		Timestamp:       "2024-01-10T08:00:00",
		PrecipitationMM: float(1),
	})
	if !errors.Is(err, entities.ErrMissingCredential) {
		t.Fatalf("got %v, want ErrMissingCredential", err)
	}
}

func TestIngestUnknownCredential(t *testing.T) {
	f, _ := ingestFixture(t)

	_, err := f.Ingestion.Ingest(uuid.New().String(), &ReadingInput{
		Timestamp:       "2024-01-10T08:00:00",
		PrecipitationMM: float(1),
	})
	if !errors.Is(err, entities.ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestIngestValidation(t *testing.T) {
	f, station := ingestFixture(t)

	tests := []struct {
		name  string
		in    *ReadingInput
		field string
	}{
		{"missing precipitation", &ReadingInput{Timestamp: "2024-01-10T08:00:00"}, "precipitacao_mm"},
		{"missing timestamp", &ReadingInput{PrecipitationMM: float(1)}, "data_hora"},
		{"bad timestamp", &ReadingInput{Timestamp: "not-a-date", PrecipitationMM: float(1)}, "data_hora"},
		{"bad source", &ReadingInput{Timestamp: "2024-01-10T08:00:00", PrecipitationMM: float(1), Source: "radar"}, "fonte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Ingestion.Ingest(station.Credential, tt.in)
			var v *entities.ValidationError
			if !errors.As(err, &v) {
				t.Fatalf("got %v, want ValidationError", err)
			}
			if _, ok := v.Fields[tt.field]; !ok {
				t.Fatalf("fields %v missing %q", v.Fields, tt.field)
			}

			// Nothing may be persisted on a validation failure
			stored, err := f.Readings.RangeByStation(station.ID, nil, nil)
			if err != nil {
				t.Fatalf("range: %v", err)
			}
			if len(stored) != 0 {
				t.Fatalf("validation failure persisted %d readings", len(stored))
			}
		})
	}
}

func TestIngestNegativePrecipitationAccepted(t *testing.T) {
	f, station := ingestFixture(t)

	// Deployed stations report sensor deltas verbatim; range is not enforced
	if _, err := f.Ingestion.Ingest(station.Credential, &ReadingInput{
		Timestamp:       "2024-01-10T08:00:00",
		PrecipitationMM: float(-0.2),
	}); err != nil {
		t.Fatalf("ingest: %v", err)
	}
}

func TestIngestDuplicateTimestamps(t *testing.T) {
	f, station := ingestFixture(t)

	for _, mm := range []float64{12.5, 4.0} {
		if _, err := f.Ingestion.Ingest(station.Credential, &ReadingInput{
			Timestamp:       "2024-01-10T08:00:00",
			PrecipitationMM: float(mm),
		}); err != nil {
			t.Fatalf("ingest %v: %v", mm, err)
		}
	}

	stored, err := f.Readings.RangeByStation(station.ID, nil, nil)
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored %d readings, want 2 distinct records", len(stored))
	}
}

func TestIngestExplicitSource(t *testing.T) {
	f, station := ingestFixture(t)

	reading, err := f.Ingestion.Ingest(station.Credential, &ReadingInput{
		Timestamp:       "2024-01-10T08:00:00",
		PrecipitationMM: float(2),
		Source:          entities.SourceSatellite,
	})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if reading.Source != entities.SourceSatellite {
		t.Fatalf("source %q, want %q", reading.Source, entities.SourceSatellite)
	}
}
