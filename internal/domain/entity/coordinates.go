// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"math"

	domainerrors "locgate/internal/domain/errors"

	"github.com/paulmach/orb"
)

// Coordinates is a WGS84 position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks the latitude/longitude ranges. NaN is rejected.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return domainerrors.ErrInvalidCoordinates.WithDetails(fmt.Sprintf("latitude %v out of range", c.Latitude))
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return domainerrors.ErrInvalidCoordinates.WithDetails(fmt.Sprintf("longitude %v out of range", c.Longitude))
	}

	return nil
}

// Point converts to an orb point (lon, lat order).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// CoordinatesFromPoint converts an orb point back to coordinates.
func CoordinatesFromPoint(p orb.Point) Coordinates {
	return Coordinates{Latitude: p.Lat(), Longitude: p.Lon()}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Latitude, c.Longitude)
}
