package jobs

import (
	"context"
	"log"
	"time"
)

// Sweeper is the subset of the widget registry the sweeper needs.
type Sweeper interface {
	Sweep(maxIdle time.Duration) int
}

// WidgetSweeper periodically evicts lookup widgets whose sessions went idle.
type WidgetSweeper struct {
	registry Sweeper
	interval time.Duration
	maxIdle  time.Duration
}

// NewWidgetSweeper creates a new widget sweeper.
func NewWidgetSweeper(registry Sweeper, interval, maxIdle time.Duration) *WidgetSweeper {
	return &WidgetSweeper{
		registry: registry,
		interval: interval,
		maxIdle:  maxIdle,
	}
}

// Start runs the sweep loop until ctx is cancelled.
func (s *WidgetSweeper) Start(ctx context.Context) {
	log.Printf("Widget sweeper started (interval: %v, maxIdle: %v)", s.interval, s.maxIdle)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Widget sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *WidgetSweeper) sweep() {
	if n := s.registry.Sweep(s.maxIdle); n > 0 {
		log.Printf("Widget sweeper: evicted %d idle widgets", n)
	}
}
