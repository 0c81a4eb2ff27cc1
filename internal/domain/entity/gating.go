package entity

import "time"

// GatingStatus is the active state of a location gating session.
type GatingStatus string

const (
	StatusNotStarted           GatingStatus = "not_started"
	StatusGpsDisabled          GatingStatus = "gps_disabled"
	StatusPermissionRequesting GatingStatus = "permission_requesting"
	StatusLocationDetecting    GatingStatus = "location_detecting"
	StatusZoneValidating       GatingStatus = "zone_validating"
	StatusCompleted            GatingStatus = "completed"
	StatusServiceNotAvailable  GatingStatus = "service_not_available"
	StatusFailed               GatingStatus = "failed"
	StatusViewingModeReady     GatingStatus = "viewing_mode_ready"
)

// String returns the string representation of the GatingStatus.
func (s GatingStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the engine leaves this status only through a new session.
func (s GatingStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusServiceNotAvailable, StatusViewingModeReady:
		return true
	default:
		return false
	}
}

// GatingTrigger names the call path that produced a transition.
type GatingTrigger string

const (
	TriggerInitialize GatingTrigger = "initialize"
	TriggerPermission GatingTrigger = "permission"
	TriggerGPS        GatingTrigger = "gps"
	TriggerManual     GatingTrigger = "manual"
	TriggerRetry      GatingTrigger = "retry"
	TriggerMonitor    GatingTrigger = "monitor"
	TriggerViewing    GatingTrigger = "viewing_mode"
)

// String returns the string representation of the GatingTrigger.
func (t GatingTrigger) String() string {
	return string(t)
}

// FailureKind classifies why a gating session failed.
type FailureKind string

const (
	FailurePermissionDenied            FailureKind = "permission_denied"
	FailurePermissionPermanentlyDenied FailureKind = "permission_permanently_denied"
	FailureServiceDisabled             FailureKind = "service_disabled"
	FailureLocationTimeout             FailureKind = "location_timeout"
	FailureLocationUnavailable         FailureKind = "location_unavailable"
	FailureLowAccuracy                 FailureKind = "low_accuracy"
	FailureZoneLookup                  FailureKind = "zone_lookup_error"
)

// String returns the string representation of the FailureKind.
func (k FailureKind) String() string {
	return string(k)
}

// Remedy is the single action the presentation layer should offer for a failure.
type Remedy string

const (
	RemedyRetry                Remedy = "retry"
	RemedyRetryOrManual        Remedy = "retry_or_manual"
	RemedyOpenAppSettings      Remedy = "open_app_settings"
	RemedyOpenLocationSettings Remedy = "open_location_settings"
)

// String returns the string representation of the Remedy.
func (r Remedy) String() string {
	return string(r)
}

// IsRetry reports whether the remedy is served by Retry.
func (r Remedy) IsRetry() bool {
	return r == RemedyRetry || r == RemedyRetryOrManual
}

// Failure is the user-facing description of a failed step.
type Failure struct {
	Kind    FailureKind
	Message string
	Remedy  Remedy
}

var failureCatalog = map[FailureKind]Failure{
	FailurePermissionDenied: {
		Message: "Location permission was denied. Allow access to find delivery options near you.",
		Remedy:  RemedyRetry,
	},
	FailurePermissionPermanentlyDenied: {
		Message: "Location access is blocked for this app. Enable it in the app settings to continue.",
		Remedy:  RemedyOpenAppSettings,
	},
	FailureServiceDisabled: {
		Message: "Location services are turned off. Turn them on in your device settings.",
		Remedy:  RemedyOpenLocationSettings,
	},
	FailureLocationTimeout: {
		Message: "Finding your location took too long. Try again or search for your address.",
		Remedy:  RemedyRetryOrManual,
	},
	FailureLocationUnavailable: {
		Message: "Your location could not be determined. Try again or search for your address.",
		Remedy:  RemedyRetryOrManual,
	},
	FailureLowAccuracy: {
		Message: "Your location is not precise enough. Move to an open area and try again, or search for your address.",
		Remedy:  RemedyRetryOrManual,
	},
	FailureZoneLookup: {
		Message: "We could not check delivery availability right now. Please try again.",
		Remedy:  RemedyRetry,
	},
}

// NewFailure returns the catalogued failure for kind.
func NewFailure(kind FailureKind) Failure {
	f, ok := failureCatalog[kind]
	if !ok {
		return Failure{Kind: kind, Message: "Location setup failed. Please try again.", Remedy: RemedyRetry}
	}
	f.Kind = kind

	return f
}

// GatingState is a read-only snapshot of a gating session.
type GatingState struct {
	Session               uint64
	Status                GatingStatus
	Failure               *Failure
	Fix                   *LocationFix
	Zone                  *DeliveryZone
	Address               *SavedAddress // set when completed through a manual address
	Trigger               GatingTrigger
	FirstTime             bool
	ShouldShowCelebration bool
	UpdatedAt             time.Time
}

// TransitionEvent is emitted once per applied transition, in order.
type TransitionEvent struct {
	Session uint64
	From    GatingStatus
	To      GatingStatus
	Trigger GatingTrigger
	State   GatingState
	At      time.Time
}

// TriggeredByManualSelection reports whether the manual address path produced the transition.
func (e TransitionEvent) TriggeredByManualSelection() bool {
	return e.Trigger == TriggerManual
}
