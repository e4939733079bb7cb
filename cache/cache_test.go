package cache

import (
	"testing"
	"time"

	"agroclima-server/entities"
)

func reading(stationID string, ts time.Time, mm float64) entities.RainReading {
	return entities.RainReading{
		ID:              stationID + ts.String(),
		StationID:       stationID,
		Timestamp:       ts,
		PrecipitationMM: mm,
	}
}

func TestPutAndGet(t *testing.T) {
	c := NewLatestCache()
	ts := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

	if _, ok := c.Get("st-1"); ok {
		t.Fatal("empty cache returned a reading")
	}

	c.Put(reading("st-1", ts, 12.5))
	got, ok := c.Get("st-1")
	if !ok {
		t.Fatal("cached reading not found")
	}
	if got.PrecipitationMM != 12.5 {
		t.Fatalf("got precipitation %v, want 12.5", got.PrecipitationMM)
	}
}

func TestOlderReadingDoesNotRegress(t *testing.T) {
	c := NewLatestCache()
	newer := time.Date(2024, 1, 12, 8, 0, 0, 0, time.UTC)
	older := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

	c.Put(reading("st-1", newer, 3))
	c.Put(reading("st-1", older, 1))

	got, _ := c.Get("st-1")
	if !got.Timestamp.Equal(newer) {
		t.Fatalf("late arrival regressed the cache: got %v, want %v", got.Timestamp, newer)
	}
}

func TestInvalidate(t *testing.T) {
	c := NewLatestCache()
	ts := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

	c.Put(reading("st-1", ts, 1))
	c.Invalidate("st-1")

	if _, ok := c.Get("st-1"); ok {
		t.Fatal("invalidated station still cached")
	}
}
