// Package service declares the collaborators the gating flow talks to.
package service

import (
	"context"
	"time"

	"locgate/internal/domain/entity"
	"locgate/internal/errors"
)

// Failures a LocationProvider may return. Implementations wrap these so the engine
// can classify them with errors.Is.
var (
	ErrPermissionDenied        = errors.New("location permission denied")
	ErrPermissionDeniedForever = errors.New("location permission denied forever")
	ErrServiceDisabled         = errors.New("location service disabled")
	ErrFixTimeout              = errors.New("location fix timed out")
	ErrLowAccuracy             = errors.New("location fix accuracy too low")
	ErrLocationUnavailable     = errors.New("location unavailable")
)

// FixRequest parameterises a single fix.
type FixRequest struct {
	Timeout  time.Duration
	Accuracy entity.Accuracy
}

// LocationProvider wraps the platform GPS and permission APIs.
type LocationProvider interface {
	CheckPermission(ctx context.Context) (entity.PermissionState, error)
	RequestPermission(ctx context.Context) (entity.PermissionState, error)
	IsServiceEnabled(ctx context.Context) (bool, error)
	CurrentFix(ctx context.Context, req FixRequest) (*entity.LocationFix, error)
}

// SettingsOpener opens OS settings screens. Opening does not report the outcome;
// the caller observes the change by polling.
type SettingsOpener interface {
	OpenAppSettings(ctx context.Context) error
	OpenLocationSettings(ctx context.Context) error
}
