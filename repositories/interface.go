package repositories

import (
	"time"

	"agroclima-server/entities"
)

type ProducerRepository interface {
	Create(producer *entities.Producer) error
	GetByID(id string) (*entities.Producer, error)
	GetByEmail(email string) (*entities.Producer, error)
	GetByCpfCnpj(cpfCnpj string) (*entities.Producer, error)
	Update(producer *entities.Producer) error
	Delete(id string) error
}

type FarmRepository interface {
	Create(farm *entities.Farm) error
	// GetOwned resolves a farm only when it belongs to the given producer.
	GetOwned(id, producerID string) (*entities.Farm, error)
	ListByProducer(producerID string) ([]entities.Farm, error)
	Update(farm *entities.Farm) error
	Delete(id string) error
}

type PlotRepository interface {
	Create(plot *entities.Plot) error
	GetByID(id string) (*entities.Plot, error)
	ListByFarm(farmID string) ([]entities.Plot, error)
	Update(plot *entities.Plot) error
	Delete(id string) error
}

type StationRepository interface {
	Create(station *entities.Station) error
	// GetOwned resolves a station only when its farm belongs to the producer.
	GetOwned(id, producerID string) (*entities.Station, error)
	GetByCredential(credential string) (*entities.Station, error)
	CredentialExists(credential string) (bool, error)
	ListByFarm(farmID string) ([]entities.Station, error)
	Update(station *entities.Station) error
	Delete(id string) error
}

type RainReadingRepository interface {
	// Append persists one reading; it is the only write path into the series.
	Append(reading *entities.RainReading) error
	// RangeByStation returns readings inside the inclusive [from, to] window,
	// ascending by timestamp. A nil bound leaves that side open.
	RangeByStation(stationID string, from, to *time.Time) ([]entities.RainReading, error)
	// RangeByStations orders by station id first, then ascending timestamp,
	// so callers can group per station without re-sorting.
	RangeByStations(stationIDs []string, from, to *time.Time) ([]entities.RainReading, error)
	LatestByStation(stationID string) (*entities.RainReading, error)
}
