package locationfeed

import (
	"context"
	"sync"
	"time"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/ports"
)

var (
	_ ports.LocationProvider = (*MemoryFeed)(nil)
	_ ports.LocationSink     = (*MemoryFeed)(nil)
)

// MemoryFeed is the single-process feed used when no redis is configured.
type MemoryFeed struct {
	mu     sync.RWMutex
	fixes  map[kernel.UUID]ports.LocationFix
	maxAge time.Duration
	now    func() time.Time
}

func NewMemoryFeed(maxAge time.Duration) *MemoryFeed {
	return &MemoryFeed{
		fixes:  make(map[kernel.UUID]ports.LocationFix),
		maxAge: maxAge,
		now:    time.Now,
	}
}

func (f *MemoryFeed) ReportLocation(_ context.Context, workerID kernel.UUID, fix ports.LocationFix) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fixes[workerID] = fix
	return nil
}

func (f *MemoryFeed) CurrentLocation(_ context.Context, workerID kernel.UUID) (ports.LocationFix, error) {
	f.mu.RLock()
	fix, ok := f.fixes[workerID]
	f.mu.RUnlock()

	if !ok || isStale(fix, f.maxAge, f.now()) {
		return ports.LocationFix{}, ports.ErrLocationUnavailable
	}
	return fix, nil
}
