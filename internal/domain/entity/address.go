package entity

import (
	"time"

	"github.com/google/uuid"
)

// AddressLabel is a user-chosen tag for a saved address.
type AddressLabel string

const (
	AddressLabelHome  AddressLabel = "home"
	AddressLabelWork  AddressLabel = "work"
	AddressLabelOther AddressLabel = "other"
)

// String returns the string representation of the AddressLabel.
func (l AddressLabel) String() string {
	return string(l)
}

// IsValid checks if the AddressLabel is a valid value. Empty is allowed.
func (l AddressLabel) IsValid() bool {
	switch l {
	case "", AddressLabelHome, AddressLabelWork, AddressLabelOther:
		return true
	default:
		return false
	}
}

// SavedAddress is a delivery address saved by a user or guest device.
type SavedAddress struct {
	ID          uuid.UUID
	UserID      *uuid.UUID // nil for guests
	DeviceID    string     // set for guests
	Lines       []string   // free-text street lines
	City        string
	State       string
	PostalCode  string
	Country     string
	Coordinates *Coordinates
	Label       AddressLabel
	IsDefault   bool // at most one per owner
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerKey returns the identity key the address belongs to.
func (a *SavedAddress) OwnerKey() string {
	return Identity{UserID: a.UserID, DeviceID: a.DeviceID}.Key()
}
