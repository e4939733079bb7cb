package cache

import (
	"sync"

	"agroclima-server/entities"
)

// LatestCache keeps the most recent reading per station in memory so the
// "latest" endpoint does not hit the descending index on every poll. Entries
// are replaced only by readings with an equal or newer timestamp, so late
// arrivals never regress what the cache reports.
type LatestCache struct {
	mu     sync.RWMutex
	latest map[string]entities.RainReading // map[stationID]reading
}

func NewLatestCache() *LatestCache {
	return &LatestCache{
		latest: make(map[string]entities.RainReading),
	}
}

// Put records a reading as the station's latest if nothing newer is cached.
func (c *LatestCache) Put(reading entities.RainReading) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.latest[reading.StationID]
	if ok && reading.Timestamp.Before(current.Timestamp) {
		return
	}
	c.latest[reading.StationID] = reading
}

func (c *LatestCache) Get(stationID string) (entities.RainReading, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	reading, ok := c.latest[stationID]
	return reading, ok
}

// Invalidate drops a station's entry, used when the station is removed.
func (c *LatestCache) Invalidate(stationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.latest, stationID)
}

// Stats returns statistics about the current cache contents.
func (c *LatestCache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]interface{}{
		"stations_cached": len(c.latest),
	}
}
