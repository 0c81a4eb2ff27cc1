package geofence

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"locgate/internal/domain/entity"
	"locgate/internal/domain/service"
	"locgate/internal/errors"
)

// Lookup outcomes reported to a LookupObserver.
const (
	LookupInZone    = "in_zone"
	LookupNotInZone = "not_in_zone"
	LookupError     = "error"
)

// LookupObserver records zone lookup outcomes and latency.
type LookupObserver interface {
	ObserveZoneLookup(outcome string, elapsed time.Duration)
}

// Registry is an in-process ZoneRegistry over a reloadable Index.
type Registry struct {
	source     Source
	cellSizeKm float64
	logger     *slog.Logger
	observer   LookupObserver

	index    atomic.Pointer[Index]
	reloadMu sync.Mutex
}

var _ service.ZoneRegistry = (*Registry)(nil)

// RegistryOption customises a Registry.
type RegistryOption func(*Registry)

// WithLookupObserver reports every Detect call to observer.
func WithLookupObserver(observer LookupObserver) RegistryOption {
	return func(r *Registry) {
		r.observer = observer
	}
}

// NewRegistry creates a registry; call Reload before the first Detect.
func NewRegistry(source Source, cellSizeKm float64, logger *slog.Logger, opts ...RegistryOption) *Registry {
	r := &Registry{
		source:     source,
		cellSizeKm: cellSizeKm,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Reload reads the source and swaps the index. On failure the previous index is kept.
func (r *Registry) Reload(ctx context.Context) (int, error) {
	r.reloadMu.Lock()
	defer r.reloadMu.Unlock()

	zones, err := r.source.Load(ctx)
	if err != nil {
		return 0, errors.Wrapf(err, "load zones from %s", r.source.Name())
	}

	index, rejected := NewIndex(zones, r.cellSizeKm)
	for _, rejectErr := range rejected {
		r.logger.Warn("Skipping invalid delivery zone", slog.Any("error", rejectErr))
	}

	r.index.Store(index)
	r.logger.Info("Delivery zones loaded",
		slog.String("source", r.source.Name()),
		slog.Int("zones", index.Len()),
		slog.Int("grid_cells", index.grid.Cells()),
	)

	return index.Len(), nil
}

// Detect returns the zone enclosing coords. Failures wrap service.ErrZoneLookup.
func (r *Registry) Detect(ctx context.Context, coords entity.Coordinates) (*entity.ZoneDetectionResult, error) {
	start := time.Now()

	result, err := r.detect(ctx, coords)
	if r.observer != nil {
		outcome := LookupNotInZone
		switch {
		case err != nil:
			outcome = LookupError
		case result.InZone:
			outcome = LookupInZone
		}
		r.observer.ObserveZoneLookup(outcome, time.Since(start))
	}

	return result, err
}

func (r *Registry) detect(ctx context.Context, coords entity.Coordinates) (*entity.ZoneDetectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(service.ErrZoneLookup, err)
	}
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	index := r.index.Load()
	if index == nil {
		return nil, errors.Wrap(service.ErrZoneLookup, "zones not loaded")
	}

	zone := index.Locate(coords)
	if zone == nil {
		return entity.NotInZone(), nil
	}

	return entity.InZoneResult(zone), nil
}

// Zones returns the active zones in lookup order.
func (r *Registry) Zones() []*entity.DeliveryZone {
	index := r.index.Load()
	if index == nil {
		return nil
	}

	return index.Zones()
}

// Snapshot returns the current index, or nil before the first Reload.
func (r *Registry) Snapshot() *Index {
	return r.index.Load()
}
