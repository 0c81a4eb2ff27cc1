package service

import (
	"context"

	"locgate/internal/domain/entity"
	"locgate/internal/errors"
)

// ErrZoneLookup marks a backend or network failure of a zone lookup.
// It is distinct from a successful "not in any zone" answer.
var ErrZoneLookup = errors.New("zone lookup failed")

// ZoneRegistry answers which delivery zone encloses a point.
type ZoneRegistry interface {
	Detect(ctx context.Context, coords entity.Coordinates) (*entity.ZoneDetectionResult, error)
}

// AvailabilityRequest asks to be notified when delivery reaches a location.
type AvailabilityRequest struct {
	Coordinates entity.Coordinates
	Identity    entity.Identity
	PushToken   string
	Contact     string
}

// AvailabilityNotifier records availability requests. It has no effect on gating.
type AvailabilityNotifier interface {
	RequestNotifyWhenAvailable(ctx context.Context, req *AvailabilityRequest) error
}
