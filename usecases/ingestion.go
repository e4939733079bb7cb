package usecases

import (
	"time"

	"agroclima-server/cache"
	"agroclima-server/entities"
	"agroclima-server/repositories"
)

// Timestamp layouts accepted from stations, tried in order. Deployed firmware
// sends bare ISO-8601 without an offset.
var readingTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ReadingInput is the decoded ingest payload before validation. Pointers keep
// "absent" distinguishable from zero.
type ReadingInput struct {
	Timestamp       string   `json:"data_hora"`
	PrecipitationMM *float64 `json:"precipitacao_mm"`
	Temperature     *float64 `json:"temperatura"`
	Humidity        *float64 `json:"umidade"`
	Pressure        *float64 `json:"pressao"`
	WindSpeed       *float64 `json:"velocidade_vento"`
	WindDirection   *float64 `json:"direcao_vento"`
	Source          string   `json:"fonte"`
}

// IngestionUseCase runs one inbound reading through authenticate → resolve →
// validate → normalize → commit. The append is the only externally visible
// mutation; any failure before it leaves no trace, and a failed append is not
// retried here — the station retries on its next transmission.
type IngestionUseCase struct {
	Credentials *CredentialManager
	ReadingRepo repositories.RainReadingRepository
	Latest      *cache.LatestCache
}

func NewIngestionUseCase(credentials *CredentialManager, readingRepo repositories.RainReadingRepository, latest *cache.LatestCache) *IngestionUseCase {
	return &IngestionUseCase{
		Credentials: credentials,
		ReadingRepo: readingRepo,
		Latest:      latest,
	}
}

func (uc *IngestionUseCase) Ingest(credential string, in *ReadingInput) (*entities.RainReading, error) {
	if credential == "" {
		return nil, entities.ErrMissingCredential
	}

	station, err := uc.Credentials.Resolve(credential)
	if err != nil {
		return nil, err
	}

	reading, err := buildReading(station.ID, in)
	if err != nil {
		return nil, err
	}

	if err := uc.ReadingRepo.Append(reading); err != nil {
		return nil, storageErr(err)
	}

	uc.Latest.Put(*reading)
	return reading, nil
}

// buildReading validates and normalizes the payload. Precipitation is not
// range-checked: deployed stations report sensor deltas verbatim.
func buildReading(stationID string, in *ReadingInput) (*entities.RainReading, error) {
	v := entities.NewValidationError()

	var ts time.Time
	if in.Timestamp == "" {
		v.Add("data_hora", "is required")
	} else {
		parsed, err := parseReadingTime(in.Timestamp)
		if err != nil {
			v.Add("data_hora", "must be a valid ISO-8601 date-time")
		} else {
			ts = parsed
		}
	}

	if in.PrecipitationMM == nil {
		v.Add("precipitacao_mm", "is required")
	}

	source := in.Source
	switch source {
	case "":
		source = entities.SourceOwnStation
	case entities.SourceOwnStation, entities.SourceExternalNetwork, entities.SourceSatellite:
	default:
		v.Add("fonte", "must be one of estacao_propria, inmet, satelite")
	}

	if v.HasErrors() {
		return nil, v
	}

	return &entities.RainReading{
		StationID:       stationID,
		Timestamp:       ts,
		PrecipitationMM: *in.PrecipitationMM,
		Temperature:     in.Temperature,
		Humidity:        in.Humidity,
		Pressure:        in.Pressure,
		WindSpeed:       in.WindSpeed,
		WindDirection:   in.WindDirection,
		Source:          source,
	}, nil
}

func parseReadingTime(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range readingTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
