// Package geofence answers which delivery zone encloses a point.
package geofence

import (
	"cmp"
	"fmt"
	"slices"

	"locgate/internal/domain/entity"
	"locgate/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrInvalidBoundary is returned for zones with fewer than three distinct vertices.
var ErrInvalidBoundary = errors.New("zone boundary needs at least 3 distinct vertices")

type indexedZone struct {
	zone    *entity.DeliveryZone
	polygon orb.Polygon
	bound   orb.Bound
}

// Index is an immutable set of active zones.
type Index struct {
	zones []indexedZone // ordered by (name, id)
	grid  *GridIndex
}

// NewIndex builds an index over the active zones. Invalid zones are skipped and
// reported in the returned error slice.
func NewIndex(zones []*entity.DeliveryZone, cellSizeKm float64) (*Index, []error) {
	var rejected []error

	indexed := make([]indexedZone, 0, len(zones))
	for _, zone := range zones {
		if zone == nil || !zone.IsActive {
			continue
		}
		if zone.DistinctVertices() < 3 {
			rejected = append(rejected, fmt.Errorf("zone %q (%s): %w", zone.Name, zone.ID, ErrInvalidBoundary))

			continue
		}

		polygon := zone.Polygon()
		indexed = append(indexed, indexedZone{
			zone:    zone,
			polygon: polygon,
			bound:   polygon.Bound(),
		})
	}

	slices.SortFunc(indexed, func(a, b indexedZone) int {
		return cmp.Or(
			cmp.Compare(a.zone.Name, b.zone.Name),
			cmp.Compare(a.zone.ID.String(), b.zone.ID.String()),
		)
	})

	grid := NewGridIndex(cellSizeKm, referenceLatitude(indexed))
	for idx, z := range indexed {
		grid.Insert(idx, z.bound)
	}

	return &Index{zones: indexed, grid: grid}, rejected
}

// Locate returns the first zone (by name, id) containing the point, or nil.
func (i *Index) Locate(coords entity.Coordinates) *entity.DeliveryZone {
	point := coords.Point()

	for _, idx := range i.grid.Candidates(coords.Latitude, coords.Longitude) {
		z := i.zones[idx]
		if !z.bound.Contains(point) {
			continue
		}
		if planar.PolygonContains(z.polygon, point) {
			return z.zone
		}
	}

	return nil
}

// Zones returns the indexed zones in lookup order.
func (i *Index) Zones() []*entity.DeliveryZone {
	out := make([]*entity.DeliveryZone, 0, len(i.zones))
	for _, z := range i.zones {
		out = append(out, z.zone)
	}

	return out
}

// Bound returns the bounding box of a zone in the index.
func (i *Index) Bound(zone *entity.DeliveryZone) (orb.Bound, bool) {
	for _, z := range i.zones {
		if z.zone == zone {
			return z.bound, true
		}
	}

	return orb.Bound{}, false
}

// Len returns the number of indexed zones.
func (i *Index) Len() int {
	return len(i.zones)
}

func referenceLatitude(zones []indexedZone) float64 {
	if len(zones) == 0 {
		return 0
	}

	var sum float64
	for _, z := range zones {
		sum += z.bound.Center().Lat()
	}

	return sum / float64(len(zones))
}
