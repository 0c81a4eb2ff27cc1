package postgres

import (
	"testing"

	"locgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAddressMapper_RoundTrip(t *testing.T) {
	userID := uuid.New()
	address := &entity.SavedAddress{
		ID:          uuid.New(),
		UserID:      &userID,
		Lines:       []string{"Hawakhana Road", "Near Police Point"},
		City:        "Tura",
		State:       "Meghalaya",
		PostalCode:  "794001",
		Country:     "IN",
		Coordinates: &entity.Coordinates{Latitude: 25.514, Longitude: 90.21},
		Label:       entity.AddressLabelHome,
		IsDefault:   true,
	}

	addressM := fromAddressDomain(address)
	assert.Equal(t, "user:"+userID.String(), addressM.OwnerKey)
	require.NotNil(t, addressM.Latitude)
	assert.InDelta(t, 25.514, *addressM.Latitude, 1e-9)

	assert.Equal(t, address, toAddressDomain(addressM))
}

func TestAddressMapper_GuestWithoutCoordinates(t *testing.T) {
	address := &entity.SavedAddress{DeviceID: "pixel-7", Lines: []string{"Main Bazaar"}}

	addressM := fromAddressDomain(address)
	assert.Equal(t, "device:pixel-7", addressM.OwnerKey)
	assert.Nil(t, addressM.Latitude)
	assert.Nil(t, toAddressDomain(addressM).Coordinates)
	assert.Nil(t, toAddressDomain(nil))
}

func TestZoneMapper_RoundTrip(t *testing.T) {
	zone := &entity.DeliveryZone{
		ID:     uuid.New(),
		Name:   "Tura-Main",
		Region: "West Garo Hills",
		Boundary: []entity.Coordinates{
			{Latitude: 25.505, Longitude: 90.200},
			{Latitude: 25.505, Longitude: 90.220},
			{Latitude: 25.518, Longitude: 90.220},
			{Latitude: 25.518, Longitude: 90.200},
		},
		IsActive: true,
	}

	zoneM, err := fromZoneDomain(zone)
	require.NoError(t, err)
	assert.Contains(t, string(zoneM.Boundary), "Polygon")

	back, err := toZoneDomain(zoneM)
	require.NoError(t, err)
	assert.Equal(t, zone, back)
}

func TestConstraintClassification(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert")))
	assert.True(t, isUniqueConstraintViolation(errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)")))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	assert.True(t, isNotNullConstraintViolation(errors.New(`ERROR: null value in column "lines" violates not-null constraint`)))
}

func TestWaitlistMapper(t *testing.T) {
	userID := uuid.New()
	entry := &entity.WaitlistEntry{
		ID:        uuid.New(),
		Latitude:  25.52,
		Longitude: 90.23,
		CellTopic: "waitlist_25.5_90.2",
		UserID:    &userID,
		Contact:   "+91 98000 00000",
	}

	entryM := fromWaitlistDomain(entry)
	assert.Equal(t, entry.ID, entryM.ID)
	assert.Equal(t, &userID, entryM.UserID)
	assert.Equal(t, "waitlist_25.5_90.2", entryM.CellTopic)
	assert.Empty(t, entryM.DeviceID)
}
