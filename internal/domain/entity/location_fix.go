package entity

import "time"

// FixSource tells where a location fix came from.
type FixSource string

const (
	FixSourceGPS          FixSource = "gps"
	FixSourceManualSearch FixSource = "manual_search"
	FixSourceSavedAddress FixSource = "saved_address"
)

// String returns the string representation of the FixSource.
func (s FixSource) String() string {
	return string(s)
}

// IsValid checks if the FixSource is a valid value.
func (s FixSource) IsValid() bool {
	switch s {
	case FixSourceGPS, FixSourceManualSearch, FixSourceSavedAddress:
		return true
	default:
		return false
	}
}

// LocationFix is a single location reading.
type LocationFix struct {
	Coordinates    Coordinates
	AccuracyMeters float64 // radius of the 68% confidence circle; 0 for manual sources
	Source         FixSource
	Timestamp      time.Time
}

// WithinAccuracy reports whether the fix is usable under the given threshold.
func (f LocationFix) WithinAccuracy(thresholdMeters float64) bool {
	return f.AccuracyMeters <= thresholdMeters
}

// Accuracy is the desired accuracy passed to a location provider.
type Accuracy string

const (
	AccuracyHigh     Accuracy = "high"
	AccuracyBalanced Accuracy = "balanced"
	AccuracyLow      Accuracy = "low"
)
