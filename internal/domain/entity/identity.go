package entity

import "github.com/google/uuid"

// Identity is who the gating session runs for: a signed-in user or a guest device.
type Identity struct {
	UserID   *uuid.UUID
	DeviceID string
}

// IsGuest reports whether the identity has no user account.
func (i Identity) IsGuest() bool {
	return i.UserID == nil
}

// Key is the storage key: "user:<uuid>" or "device:<id>".
func (i Identity) Key() string {
	if i.UserID != nil {
		return "user:" + i.UserID.String()
	}

	return "device:" + i.DeviceID
}

// IsValid reports whether the identity can key persisted state.
func (i Identity) IsValid() bool {
	return i.UserID != nil || i.DeviceID != ""
}
