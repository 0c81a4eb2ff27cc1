package usecase

import (
	"context"

	"locgate/internal/domain/entity"
)

// SaveAddressInput represents the input for saving an address
type SaveAddressInput struct {
	Lines       []string            `json:"lines" validate:"required,min=1,dive,required"`
	City        string              `json:"city"`
	State       string              `json:"state"`
	PostalCode  string              `json:"postal_code"`
	Country     string              `json:"country"`
	Coordinates *entity.Coordinates `json:"coordinates,omitempty"`
	Label       entity.AddressLabel `json:"label,omitempty"`
	IsDefault   bool                `json:"is_default"`
}

// AddressStore is the gating view of persisted addresses and the setup flag.
type AddressStore interface {
	GetAddresses(ctx context.Context, identity entity.Identity) ([]*entity.SavedAddress, error)
	IsSetupCompleted(ctx context.Context, identity entity.Identity) (bool, error)
	MarkSetupCompleted(ctx context.Context, identity entity.Identity) error
	SaveAddress(ctx context.Context, identity entity.Identity, input *SaveAddressInput) (*entity.SavedAddress, error)
}
