// Package memory is an in-process persistence layer used when no database is configured.
package memory

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"locgate/internal/domain/entity"
	"locgate/internal/domain/repository"

	"github.com/google/uuid"
)

// Store keeps addresses, setup flags, zones and waitlist entries in maps.
type Store struct {
	mu        sync.Mutex
	addresses map[uuid.UUID]entity.SavedAddress  // id -> address
	flags     map[string]time.Time               // identity key -> completed at
	zones     map[uuid.UUID]entity.DeliveryZone  // id -> zone
	waitlist  map[uuid.UUID]entity.WaitlistEntry // id -> entry

	txMu sync.Mutex
	now  func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		addresses: map[uuid.UUID]entity.SavedAddress{},
		flags:     map[string]time.Time{},
		zones:     map[uuid.UUID]entity.DeliveryZone{},
		waitlist:  map[uuid.UUID]entity.WaitlistEntry{},
		now:       time.Now,
	}
}

func (s *Store) Addresses() repository.AddressRepository {
	return (*addressRepository)(s)
}

func (s *Store) SetupFlags() repository.SetupFlagRepository {
	return (*setupFlagRepository)(s)
}

func (s *Store) Zones() repository.ZoneRepository {
	return (*zoneRepository)(s)
}

func (s *Store) Waitlist() repository.WaitlistRepository {
	return (*waitlistRepository)(s)
}

func (s *Store) TransactionManager() repository.TransactionManager {
	return (*txManager)(s)
}

type addressRepository Store

func (r *addressRepository) CreateAddress(_ context.Context, address *entity.SavedAddress) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	owner := address.OwnerKey()
	if address.IsDefault {
		for _, existing := range s.addresses {
			if existing.IsDefault && existing.OwnerKey() == owner {
				return repository.ErrDefaultAddressConflict
			}
		}
	}

	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	now := s.now()
	address.CreatedAt, address.UpdatedAt = now, now
	s.addresses[address.ID] = *address

	return nil
}

func (r *addressRepository) FindAddressByID(_ context.Context, id uuid.UUID) (*entity.SavedAddress, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	address, ok := s.addresses[id]
	if !ok {
		return nil, repository.ErrAddressNotFound
	}

	return &address, nil
}

func (r *addressRepository) FindAddressesByOwner(_ context.Context, ownerKey string) ([]*entity.SavedAddress, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*entity.SavedAddress{}
	for _, address := range s.addresses {
		if address.OwnerKey() == ownerKey {
			out = append(out, &address)
		}
	}
	slices.SortFunc(out, func(a, b *entity.SavedAddress) int {
		if a.IsDefault != b.IsDefault {
			if a.IsDefault {
				return -1
			}

			return 1
		}

		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return out, nil
}

func (r *addressRepository) ClearDefaultByOwner(_ context.Context, ownerKey string) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, address := range s.addresses {
		if address.IsDefault && address.OwnerKey() == ownerKey {
			address.IsDefault = false
			address.UpdatedAt = s.now()
			s.addresses[id] = address
		}
	}

	return nil
}

type setupFlagRepository Store

func (r *setupFlagRepository) IsSetupCompleted(_ context.Context, identityKey string) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.flags[identityKey]

	return ok, nil
}

func (r *setupFlagRepository) MarkSetupCompleted(_ context.Context, identityKey string, at time.Time) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.flags[identityKey]; ok {
		return false, nil
	}
	s.flags[identityKey] = at

	return true, nil
}

type zoneRepository Store

func (r *zoneRepository) FindActiveZones(_ context.Context) ([]*entity.DeliveryZone, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*entity.DeliveryZone{}
	for _, zone := range s.zones {
		if zone.IsActive {
			out = append(out, &zone)
		}
	}
	slices.SortFunc(out, func(a, b *entity.DeliveryZone) int {
		if a.Name != b.Name {
			if a.Name < b.Name {
				return -1
			}

			return 1
		}

		return slices.Compare(a.ID[:], b.ID[:])
	})

	return out, nil
}

func (r *zoneRepository) UpsertZone(_ context.Context, zone *entity.DeliveryZone) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if existing, ok := s.zones[zone.ID]; ok {
		zone.CreatedAt = existing.CreatedAt
	} else {
		zone.CreatedAt = now
	}
	zone.UpdatedAt = now
	s.zones[zone.ID] = *zone

	return nil
}

type waitlistRepository Store

func (r *waitlistRepository) RecordEntry(_ context.Context, entry *entity.WaitlistEntry) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.waitlist[entry.ID]; ok {
		return false, nil
	}
	s.waitlist[entry.ID] = *entry

	return true, nil
}

func (r *waitlistRepository) CountByCell(_ context.Context, limit int) ([]entity.CellDemand, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := map[string]int64{}
	for _, entry := range s.waitlist {
		counts[entry.CellTopic]++
	}

	out := make([]entity.CellDemand, 0, len(counts))
	for topic, n := range counts {
		out = append(out, entity.CellDemand{CellTopic: topic, Entries: n})
	}
	slices.SortFunc(out, func(a, b entity.CellDemand) int {
		if a.Entries != b.Entries {
			if a.Entries > b.Entries {
				return -1
			}

			return 1
		}

		return strings.Compare(a.CellTopic, b.CellTopic)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

type txManager Store

// Execute serialises transactions; address changes are rolled back when fn fails.
func (m *txManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	s := (*Store)(m)
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	addresses := maps.Clone(s.addresses)
	flags := maps.Clone(s.flags)
	s.mu.Unlock()

	if err := fn(factory{store: s}); err != nil {
		s.mu.Lock()
		s.addresses = addresses
		s.flags = flags
		s.mu.Unlock()

		return err
	}

	return nil
}

type factory struct {
	store *Store
}

func (f factory) NewAddressRepository() repository.AddressRepository {
	return f.store.Addresses()
}

func (f factory) NewSetupFlagRepository() repository.SetupFlagRepository {
	return f.store.SetupFlags()
}
