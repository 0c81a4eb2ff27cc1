package memory

import (
	"context"
	"testing"
	"time"

	"locgate/internal/domain/entity"
	"locgate/internal/domain/repository"
	"locgate/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressRepository_DefaultFirstAndConflict(t *testing.T) {
	store := NewStore()
	repo := store.Addresses()
	ctx := context.Background()
	guest := entity.Identity{DeviceID: "pixel-7"}

	require.NoError(t, repo.CreateAddress(ctx, &entity.SavedAddress{DeviceID: guest.DeviceID, Lines: []string{"Office"}}))
	require.NoError(t, repo.CreateAddress(ctx, &entity.SavedAddress{DeviceID: guest.DeviceID, Lines: []string{"Home"}, IsDefault: true}))

	err := repo.CreateAddress(ctx, &entity.SavedAddress{DeviceID: guest.DeviceID, Lines: []string{"Other"}, IsDefault: true})
	require.ErrorIs(t, err, repository.ErrDefaultAddressConflict)

	addresses, err := repo.FindAddressesByOwner(ctx, guest.Key())
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, []string{"Home"}, addresses[0].Lines)

	require.NoError(t, repo.ClearDefaultByOwner(ctx, guest.Key()))
	addresses, err = repo.FindAddressesByOwner(ctx, guest.Key())
	require.NoError(t, err)
	for _, address := range addresses {
		assert.False(t, address.IsDefault)
	}

	_, err = repo.FindAddressByID(ctx, uuid.New())
	require.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestSetupFlagRepository_InsertIfAbsent(t *testing.T) {
	flags := NewStore().SetupFlags()
	ctx := context.Background()

	done, err := flags.IsSetupCompleted(ctx, "device:pixel-7")
	require.NoError(t, err)
	assert.False(t, done)

	created, err := flags.MarkSetupCompleted(ctx, "device:pixel-7", time.Now())
	require.NoError(t, err)
	assert.True(t, created)

	created, err = flags.MarkSetupCompleted(ctx, "device:pixel-7", time.Now())
	require.NoError(t, err)
	assert.False(t, created)

	done, err = flags.IsSetupCompleted(ctx, "device:pixel-7")
	require.NoError(t, err)
	assert.True(t, done)
}

func TestZoneRepository_ActiveOnlySortedByName(t *testing.T) {
	zones := NewStore().Zones()
	ctx := context.Background()

	require.NoError(t, zones.UpsertZone(ctx, &entity.DeliveryZone{ID: uuid.New(), Name: "Bravo", IsActive: true}))
	require.NoError(t, zones.UpsertZone(ctx, &entity.DeliveryZone{ID: uuid.New(), Name: "Alpha", IsActive: true}))
	require.NoError(t, zones.UpsertZone(ctx, &entity.DeliveryZone{ID: uuid.New(), Name: "Closed"}))

	active, err := zones.FindActiveZones(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Alpha", active[0].Name)
	assert.Equal(t, "Bravo", active[1].Name)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	owner := entity.Identity{DeviceID: "pixel-7"}

	errBoom := errors.New("boom")
	err := store.TransactionManager().Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewAddressRepository().CreateAddress(ctx, &entity.SavedAddress{DeviceID: owner.DeviceID, Lines: []string{"Home"}}); err != nil {
			return err
		}

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	addresses, err := store.Addresses().FindAddressesByOwner(ctx, owner.Key())
	require.NoError(t, err)
	assert.Empty(t, addresses)
}

func TestWaitlistRepository_DeduplicatesAndCounts(t *testing.T) {
	repo := NewStore().Waitlist()
	ctx := context.Background()

	first := &entity.WaitlistEntry{ID: uuid.New(), CellTopic: "waitlist_25.5_90.2"}
	created, err := repo.RecordEntry(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.RecordEntry(ctx, first)
	require.NoError(t, err)
	assert.False(t, created)

	for _, topic := range []string{"waitlist_25.5_90.2", "waitlist_25.6_90.3", "waitlist_25.4_90.1"} {
		_, err = repo.RecordEntry(ctx, &entity.WaitlistEntry{ID: uuid.New(), CellTopic: topic})
		require.NoError(t, err)
	}

	demand, err := repo.CountByCell(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []entity.CellDemand{
		{CellTopic: "waitlist_25.5_90.2", Entries: 2},
		{CellTopic: "waitlist_25.4_90.1", Entries: 1},
	}, demand)
}
