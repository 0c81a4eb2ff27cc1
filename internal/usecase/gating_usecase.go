package usecase

import (
	"context"

	"locgate/internal/domain/entity"
	"locgate/internal/errors"
)

// Errors returned by GatingEngine operations. Collaborator failures never surface
// here; they are reported through the state's Failure.
var (
	ErrEngineClosed      = errors.New("gating engine closed")
	ErrNotInitialized    = errors.New("gating session not initialized")
	ErrRetryNotAllowed   = errors.New("retry is only allowed from a failed state")
	ErrSessionTerminal   = errors.New("gating session already reached a terminal state")
	ErrInvalidTransition = errors.New("operation not allowed in the current state")
	ErrNoLocation        = errors.New("no location known for this session")
)

// NotifyInput carries optional contact channels for the availability waitlist.
type NotifyInput struct {
	PushToken string
	Contact   string
}

// GatingObserver receives transitions in the order they were applied.
type GatingObserver interface {
	OnTransition(event entity.TransitionEvent)
}

// GatingObserverFunc adapts a function to GatingObserver.
type GatingObserverFunc func(event entity.TransitionEvent)

// OnTransition calls f(event).
func (f GatingObserverFunc) OnTransition(event entity.TransitionEvent) {
	f(event)
}

// GatingEngine is the location gating state machine. Operations block until the
// chain they started reaches a resting state or ctx is done.
type GatingEngine interface {
	// Initialize starts a new session, discarding any previous one.
	Initialize(ctx context.Context) error

	// RequestPermission asks for location permission from NotStarted or GpsDisabled.
	RequestPermission(ctx context.Context) error

	// ValidateManualAddress checks a user-chosen location, bypassing permission and GPS.
	ValidateManualAddress(ctx context.Context, address *entity.SavedAddress, coords entity.Coordinates) error

	// Retry restarts a failed session.
	Retry(ctx context.Context) error

	// OpenAppSettings and OpenLocationSettings are side effects; they never transition.
	OpenAppSettings(ctx context.Context) error
	OpenLocationSettings(ctx context.Context) error

	// EnterViewingMode lets a user outside every zone browse without delivery.
	EnterViewingMode(ctx context.Context) error

	// AppResumed forces an immediate re-check of pending OS settings.
	AppResumed()

	// RequestNotifyWhenAvailable records a waitlist request in the background.
	RequestNotifyWhenAvailable(ctx context.Context, input NotifyInput) error

	// State returns a snapshot of the current session.
	State() entity.GatingState

	// Subscribe registers an observer and returns a function removing it.
	Subscribe(observer GatingObserver) (unsubscribe func())

	// Close cancels in-flight work. Late results are ignored.
	Close() error
}
