package repository

import (
	"context"

	"locgate/internal/domain/entity"
	"locgate/internal/errors"
)

// ErrZoneNotFound is returned when a zone is not found.
var ErrZoneNotFound = errors.New("zone not found")

// ZoneRepository reads delivery zones.
type ZoneRepository interface {
	// FindActiveZones retrieves all active zones ordered by name.
	FindActiveZones(ctx context.Context) ([]*entity.DeliveryZone, error)

	// UpsertZone creates or replaces a zone by ID.
	UpsertZone(ctx context.Context, zone *entity.DeliveryZone) error
}
