// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"locgate/internal/domain/entity"
	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/domain/repository"
	"locgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new saved address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.SavedAddress) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDefaultAddressConflict, "create address")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.SavedAddress, error) {
	var addressM model.SavedAddressModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByOwner retrieves all addresses of an owner, default first.
func (repo *addressRepository) FindAddressesByOwner(ctx context.Context, ownerKey string) ([]*entity.SavedAddress, error) {
	var addressModels []*model.SavedAddressModel

	err := repo.db.WithContext(ctx).
		Where("owner_key = ?", ownerKey).
		Order("is_default DESC").
		Order("created_at ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by owner")
	}

	addresses := make([]*entity.SavedAddress, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// ClearDefaultByOwner unsets the default flag on every address of an owner.
func (repo *addressRepository) ClearDefaultByOwner(ctx context.Context, ownerKey string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.SavedAddressModel{}).
		Where("owner_key = ? AND is_default", ownerKey).
		Update("is_default", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear default address")
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM SavedAddressModel to a domain SavedAddress entity.
func toAddressDomain(data *model.SavedAddressModel) *entity.SavedAddress {
	if data == nil {
		return nil
	}

	address := &entity.SavedAddress{
		ID:         data.ID,
		UserID:     data.UserID,
		DeviceID:   data.DeviceID,
		Lines:      data.Lines,
		City:       data.City,
		State:      data.State,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		Label:      entity.AddressLabel(data.Label),
		IsDefault:  data.IsDefault,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		address.Coordinates = &entity.Coordinates{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}

	return address
}

// fromAddressDomain converts a domain SavedAddress entity to a GORM SavedAddressModel.
func fromAddressDomain(data *entity.SavedAddress) *model.SavedAddressModel {
	if data == nil {
		return nil
	}

	addressM := &model.SavedAddressModel{
		ID:         data.ID,
		OwnerKey:   data.OwnerKey(),
		UserID:     data.UserID,
		DeviceID:   data.DeviceID,
		Lines:      data.Lines,
		City:       data.City,
		State:      data.State,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		Label:      data.Label.String(),
		IsDefault:  data.IsDefault,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Coordinates != nil {
		lat, lon := data.Coordinates.Latitude, data.Coordinates.Longitude
		addressM.Latitude = &lat
		addressM.Longitude = &lon
	}

	return addressM
}
