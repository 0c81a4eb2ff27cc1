package geofence

import (
	"math/rand/v2"
	"testing"

	"locgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Locate_InsideAndOutside(t *testing.T) {
	index, rejected := NewIndex([]*entity.DeliveryZone{turaMain()}, 1.0)
	require.Empty(t, rejected)

	zone := index.Locate(scenarioInside)
	require.NotNil(t, zone)
	assert.Equal(t, "Tura-Main", zone.Name)

	assert.Nil(t, index.Locate(scenarioOutside))
}

func TestIndex_Locate_ConcavePolygonNotBoundingBox(t *testing.T) {
	// L-shaped zone: the bounding box covers the missing top-right quadrant.
	zone := &entity.DeliveryZone{
		ID:   uuid.New(),
		Name: "L-Zone",
		Boundary: []entity.Coordinates{
			{Latitude: 0, Longitude: 0},
			{Latitude: 0, Longitude: 2},
			{Latitude: 1, Longitude: 2},
			{Latitude: 1, Longitude: 1},
			{Latitude: 2, Longitude: 1},
			{Latitude: 2, Longitude: 0},
		},
		IsActive: true,
	}
	index, _ := NewIndex([]*entity.DeliveryZone{zone}, 50)

	assert.NotNil(t, index.Locate(entity.Coordinates{Latitude: 0.5, Longitude: 1.5}))
	assert.NotNil(t, index.Locate(entity.Coordinates{Latitude: 1.5, Longitude: 0.5}))
	assert.Nil(t, index.Locate(entity.Coordinates{Latitude: 1.5, Longitude: 1.5}))
}

func TestIndex_SkipsInactiveAndDegenerateZones(t *testing.T) {
	inactive := turaMain()
	inactive.IsActive = false

	degenerate := &entity.DeliveryZone{
		ID:   uuid.New(),
		Name: "Line",
		Boundary: []entity.Coordinates{
			{Latitude: 1, Longitude: 1},
			{Latitude: 2, Longitude: 2},
			{Latitude: 1, Longitude: 1},
		},
		IsActive: true,
	}

	index, rejected := NewIndex([]*entity.DeliveryZone{inactive, degenerate}, 1.0)
	assert.Equal(t, 0, index.Len())
	require.Len(t, rejected, 1)
	assert.ErrorIs(t, rejected[0], ErrInvalidBoundary)
	assert.Nil(t, index.Locate(scenarioInside))
}

func TestIndex_OverlappingZonesResolveByName(t *testing.T) {
	b := rectZone(uuid.New(), "Bravo", 0, 0, 1, 1)
	a := rectZone(uuid.New(), "Alpha", 0.5, 0.5, 1.5, 1.5)
	index, _ := NewIndex([]*entity.DeliveryZone{b, a}, 5)

	zone := index.Locate(entity.Coordinates{Latitude: 0.75, Longitude: 0.75})
	require.NotNil(t, zone)
	assert.Equal(t, "Alpha", zone.Name)

	names := make([]string, 0, 2)
	for _, z := range index.Zones() {
		names = append(names, z.Name)
	}
	assert.Equal(t, []string{"Alpha", "Bravo"}, names)
}

func TestIndex_GridNeverChangesResult(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	zones := make([]*entity.DeliveryZone, 0, 40)
	for i := range 40 {
		lat := 25 + rng.Float64()
		lon := 90 + rng.Float64()
		zones = append(zones, rectZone(uuid.New(), "zone-"+string(rune('A'+i%26)), lat, lon, lat+rng.Float64()*0.1, lon+rng.Float64()*0.1))
	}
	// one zone far larger than the grid cell budget
	zones = append(zones, rectZone(uuid.New(), "zz-Wide", 20, 80, 30, 100))

	for _, cellKm := range []float64{0.5, 2, 25} {
		index, rejected := NewIndex(zones, cellKm)
		require.Empty(t, rejected)

		for range 2000 {
			coords := entity.Coordinates{Latitude: 24.9 + rng.Float64()*1.3, Longitude: 89.9 + rng.Float64()*1.3}
			assert.Equal(t, exhaustiveLocate(index, coords), index.Locate(coords), "cell %.1fkm at %s", cellKm, coords)
		}
	}
}

func TestGridIndex_Candidates(t *testing.T) {
	index, _ := NewIndex([]*entity.DeliveryZone{turaMain()}, 1.0)

	assert.Equal(t, 1, index.grid.Size())
	assert.Contains(t, index.grid.Candidates(scenarioInside.Latitude, scenarioInside.Longitude), 0)
	assert.Empty(t, index.grid.Candidates(40, 10))
}

func exhaustiveLocate(index *Index, coords entity.Coordinates) *entity.DeliveryZone {
	point := coords.Point()
	for _, z := range index.zones {
		if planar.PolygonContains(z.polygon, point) {
			return z.zone
		}
	}

	return nil
}
