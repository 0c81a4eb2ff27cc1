package geofence

import (
	"math"
	"slices"

	"github.com/paulmach/orb"
)

const (
	// DefaultCellSizeKm is used when the configured cell size is not positive
	DefaultCellSizeKm = 2.0

	// zones whose bound spans more cells than this are checked for every point
	maxCellsPerZone = 4096

	kmPerDegreeLat = 111.32
)

// GridIndex is a coarse regional pre-filter: every zone is registered in each grid
// cell its bounding box overlaps, so a point only needs the zones of its own cell.
// It narrows candidates and never decides membership.
type GridIndex struct {
	cells       map[gridKey][]int // maps grid cell to zone indices
	wide        []int             // zones too large to rasterize
	cellSizeLat float64           // grid cell size in latitude degrees
	cellSizeLng float64           // grid cell size in longitude degrees
	size        int
}

type gridKey struct {
	latCell int
	lngCell int
}

// NewGridIndex creates a grid with square-ish cells of cellSizeKm around refLat.
func NewGridIndex(cellSizeKm, refLat float64) *GridIndex {
	if cellSizeKm <= 0 {
		cellSizeKm = DefaultCellSizeKm
	}

	// 1 degree longitude ≈ 111 km * cos(lat)
	cosLat := math.Max(math.Cos(refLat*math.Pi/180), 0.01)

	return &GridIndex{
		cells:       make(map[gridKey][]int),
		cellSizeLat: cellSizeKm / kmPerDegreeLat,
		cellSizeLng: cellSizeKm / (kmPerDegreeLat * cosLat),
	}
}

// Insert registers zone idx in every cell overlapped by bound.
// Indices must be inserted in ascending order.
func (g *GridIndex) Insert(idx int, bound orb.Bound) {
	g.size++

	minKey := g.getGridKey(bound.Min.Lat(), bound.Min.Lon())
	maxKey := g.getGridKey(bound.Max.Lat(), bound.Max.Lon())

	latCells := maxKey.latCell - minKey.latCell + 1
	lngCells := maxKey.lngCell - minKey.lngCell + 1
	if latCells*lngCells > maxCellsPerZone {
		g.wide = append(g.wide, idx)

		return
	}

	for latCell := minKey.latCell; latCell <= maxKey.latCell; latCell++ {
		for lngCell := minKey.lngCell; lngCell <= maxKey.lngCell; lngCell++ {
			key := gridKey{latCell: latCell, lngCell: lngCell}
			g.cells[key] = append(g.cells[key], idx)
		}
	}
}

// Candidates returns the zone indices that may contain the point, ascending.
func (g *GridIndex) Candidates(lat, lng float64) []int {
	cell := g.cells[g.getGridKey(lat, lng)]
	if len(g.wide) == 0 {
		return cell
	}

	merged := make([]int, 0, len(cell)+len(g.wide))
	merged = append(merged, cell...)
	merged = append(merged, g.wide...)
	slices.Sort(merged)

	return slices.Compact(merged)
}

// Size returns the number of zones in the index
func (g *GridIndex) Size() int {
	return g.size
}

// Cells returns the number of populated grid cells
func (g *GridIndex) Cells() int {
	return len(g.cells)
}

func (g *GridIndex) getGridKey(lat, lng float64) gridKey {
	latCell := int(math.Floor(lat / g.cellSizeLat))
	lngCell := int(math.Floor(lng / g.cellSizeLng))

	return gridKey{latCell: latCell, lngCell: lngCell}
}
