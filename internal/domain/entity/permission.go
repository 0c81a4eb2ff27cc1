package entity

// PermissionState is the platform location permission answer.
type PermissionState string

const (
	PermissionGranted       PermissionState = "granted"
	PermissionDenied        PermissionState = "denied"
	PermissionDeniedForever PermissionState = "denied_forever"
)

// String returns the string representation of the PermissionState.
func (p PermissionState) String() string {
	return string(p)
}

// IsValid checks if the PermissionState is a valid value.
func (p PermissionState) IsValid() bool {
	switch p {
	case PermissionGranted, PermissionDenied, PermissionDeniedForever:
		return true
	default:
		return false
	}
}
