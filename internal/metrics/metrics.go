// Package metrics tracks draw latency and throughput with atomics: no
// external metrics library, just atomic counters sampled into an
// immutable snapshot for a /metrics handler to serialize.
package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalDraws      atomic.Int64
	totalWinners    atomic.Int64
	totalDrawNanos  atomic.Int64
	lastDrawNanos   atomic.Int64
	lastWinnerCount atomic.Int64
	lastUpdatedUnix atomic.Int64
}

// RecordDraw should be called once per completed RunRaffle; failed
// draws should not be recorded since they contribute no meaningful
// latency sample.
func (c *Collector) RecordDraw(numWinners int, duration time.Duration) {
	if numWinners <= 0 {
		return
	}
	c.totalDraws.Add(1)
	c.totalWinners.Add(int64(numWinners))
	c.totalDrawNanos.Add(duration.Nanoseconds())
	c.lastDrawNanos.Store(duration.Nanoseconds())
	c.lastWinnerCount.Store(int64(numWinners))
	c.lastUpdatedUnix.Store(time.Now().Unix())
}

type Snapshot struct {
	TotalDraws       int64   `json:"total_draws"`
	TotalWinners     int64   `json:"total_winners"`
	AvgDrawMillis    float64 `json:"avg_draw_millis"`
	LastDrawMillis   float64 `json:"last_draw_millis"`
	LastWinnerCount  int64   `json:"last_winner_count"`
	LastUpdatedRFC33 string  `json:"last_updated"`
}

func (c *Collector) Snapshot() Snapshot {
	draws := c.totalDraws.Load()
	nanos := c.totalDrawNanos.Load()

	var avgMillis float64
	if draws > 0 {
		avgMillis = float64(nanos) / float64(draws) / 1e6
	}

	lastUpdated := time.Unix(c.lastUpdatedUnix.Load(), 0).UTC()
	if c.lastUpdatedUnix.Load() == 0 {
		lastUpdated = time.Time{}
	}

	return Snapshot{
		TotalDraws:       draws,
		TotalWinners:     c.totalWinners.Load(),
		AvgDrawMillis:    avgMillis,
		LastDrawMillis:   float64(c.lastDrawNanos.Load()) / 1e6,
		LastWinnerCount:  c.lastWinnerCount.Load(),
		LastUpdatedRFC33: lastUpdated.Format(time.RFC3339),
	}
}
