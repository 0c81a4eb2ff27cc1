package impl

import (
	"context"
	"log/slog"
	"strings"

	"locgate/internal/domain/entity"
	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/domain/repository"
	"locgate/internal/errors"
	"locgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type addressStore struct {
	addressRepo repository.AddressRepository
	flagRepo    repository.SetupFlagRepository
	txManager   repository.TransactionManager
	clock       clockwork.Clock
	logger      *slog.Logger
}

// NewAddressStore creates the address and setup-flag store used by gating.
func NewAddressStore(
	addressRepo repository.AddressRepository,
	flagRepo repository.SetupFlagRepository,
	txManager repository.TransactionManager,
	clock clockwork.Clock,
	logger *slog.Logger,
) usecase.AddressStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &addressStore{
		addressRepo: addressRepo,
		flagRepo:    flagRepo,
		txManager:   txManager,
		clock:       clock,
		logger:      logger,
	}
}

// GetAddresses returns the identity's saved addresses, default first.
func (s *addressStore) GetAddresses(ctx context.Context, identity entity.Identity) ([]*entity.SavedAddress, error) {
	if !identity.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("identity requires a user id or device id")
	}

	addresses, err := s.addressRepo.FindAddressesByOwner(ctx, identity.Key())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by owner")
	}

	return addresses, nil
}

func (s *addressStore) IsSetupCompleted(ctx context.Context, identity entity.Identity) (bool, error) {
	if !identity.IsValid() {
		return false, domainerrors.ErrValidationFailed.WithDetails("identity requires a user id or device id")
	}

	completed, err := s.flagRepo.IsSetupCompleted(ctx, identity.Key())
	if err != nil {
		return false, errors.Wrap(err, "failed to read setup flag")
	}

	return completed, nil
}

// MarkSetupCompleted stores the flag. Writing an existing flag is a no-op.
func (s *addressStore) MarkSetupCompleted(ctx context.Context, identity entity.Identity) error {
	if !identity.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("identity requires a user id or device id")
	}

	created, err := s.flagRepo.MarkSetupCompleted(ctx, identity.Key(), s.clock.Now())
	if err != nil {
		return errors.Wrap(err, "failed to write setup flag")
	}
	if !created {
		s.logger.DebugContext(ctx, "Setup flag already present", slog.String("identity", identity.Key()))
	}

	return nil
}

// SaveAddress stores a new address. The first address of an owner, or one marked
// default, becomes the only default.
func (s *addressStore) SaveAddress(ctx context.Context, identity entity.Identity, input *usecase.SaveAddressInput) (*entity.SavedAddress, error) {
	if !identity.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("identity requires a user id or device id")
	}
	address, err := s.newAddress(identity, input)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		existing, err := addressRepo.FindAddressesByOwner(ctx, address.OwnerKey())
		if err != nil {
			return errors.Wrap(err, "failed to find addresses by owner")
		}
		if len(existing) == 0 {
			address.IsDefault = true
		}

		if address.IsDefault && len(existing) > 0 {
			if err := addressRepo.ClearDefaultByOwner(ctx, address.OwnerKey()); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
		}

		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			if errors.Is(err, repository.ErrDefaultAddressConflict) {
				return domainerrors.ErrValidationFailed.WithDetails("owner already has a default address")
			}

			return errors.Wrap(err, "failed to create address")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Address saved",
		slog.String("identity", identity.Key()),
		slog.String("addressId", address.ID.String()),
		slog.Bool("default", address.IsDefault),
	)

	return address, nil
}

func (s *addressStore) newAddress(identity entity.Identity, input *usecase.SaveAddressInput) (*entity.SavedAddress, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address input is required")
	}

	lines := make([]string, 0, len(input.Lines))
	for _, line := range input.Lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one address line is required")
	}
	if !input.Label.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown address label " + input.Label.String())
	}

	var coords *entity.Coordinates
	if input.Coordinates != nil {
		if err := input.Coordinates.Validate(); err != nil {
			return nil, err
		}
		c := *input.Coordinates
		coords = &c
	}

	now := s.clock.Now()

	return &entity.SavedAddress{
		ID:          uuid.New(),
		UserID:      identity.UserID,
		DeviceID:    identity.DeviceID,
		Lines:       lines,
		City:        strings.TrimSpace(input.City),
		State:       strings.TrimSpace(input.State),
		PostalCode:  strings.TrimSpace(input.PostalCode),
		Country:     strings.TrimSpace(input.Country),
		Coordinates: coords,
		Label:       input.Label,
		IsDefault:   input.IsDefault,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
