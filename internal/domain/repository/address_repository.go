// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"locgate/internal/domain/entity"
	"locgate/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrDefaultAddressConflict is returned when a second default address would be stored for one owner.
	ErrDefaultAddressConflict = errors.New("owner already has a default address")
)

// AddressRepository defines the interface for saved address database operations.
// Addresses are keyed by the owning identity key (see entity.Identity.Key).
type AddressRepository interface {
	// CreateAddress persists a new saved address.
	CreateAddress(ctx context.Context, address *entity.SavedAddress) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.SavedAddress, error)

	// FindAddressesByOwner retrieves all addresses of an owner, default first.
	FindAddressesByOwner(ctx context.Context, ownerKey string) ([]*entity.SavedAddress, error)

	// ClearDefaultByOwner unsets the default flag on every address of an owner.
	ClearDefaultByOwner(ctx context.Context, ownerKey string) error
}
