package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// DeliveryZone is a polygonal delivery-serviceable area.
type DeliveryZone struct {
	ID        uuid.UUID
	Name      string
	Region    string        // informational grouping, never used for membership
	Boundary  []Coordinates // closed outer ring
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ring returns the boundary as a closed orb ring.
func (z *DeliveryZone) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(z.Boundary)+1)
	for _, c := range z.Boundary {
		ring = append(ring, c.Point())
	}
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}

	return ring
}

// Polygon returns the zone boundary as an orb polygon.
func (z *DeliveryZone) Polygon() orb.Polygon {
	return orb.Polygon{z.Ring()}
}

// DistinctVertices counts the distinct boundary vertices.
func (z *DeliveryZone) DistinctVertices() int {
	seen := make(map[Coordinates]struct{}, len(z.Boundary))
	for _, c := range z.Boundary {
		seen[c] = struct{}{}
	}

	return len(seen)
}

// ZoneDetectionResult is the answer of a zone registry lookup.
type ZoneDetectionResult struct {
	InZone bool
	Zone   *DeliveryZone
}

// NotInZone is the successful "no enclosing zone" result.
func NotInZone() *ZoneDetectionResult {
	return &ZoneDetectionResult{}
}

// InZoneResult wraps the enclosing zone.
func InZoneResult(zone *DeliveryZone) *ZoneDetectionResult {
	return &ZoneDetectionResult{InZone: true, Zone: zone}
}
