package geofence

import (
	"io"
	"log/slog"

	"locgate/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	turaMainID = uuid.MustParse("6d1f7c52-0b7e-4a7f-9a53-0f4f0d3b2a11")

	scenarioInside  = entity.Coordinates{Latitude: 25.5140, Longitude: 90.2100}
	scenarioOutside = entity.Coordinates{Latitude: 25.5200, Longitude: 90.2300}
)

func rectZone(id uuid.UUID, name string, minLat, minLon, maxLat, maxLon float64) *entity.DeliveryZone {
	return &entity.DeliveryZone{
		ID:   id,
		Name: name,
		Boundary: []entity.Coordinates{
			{Latitude: minLat, Longitude: minLon},
			{Latitude: minLat, Longitude: maxLon},
			{Latitude: maxLat, Longitude: maxLon},
			{Latitude: maxLat, Longitude: minLon},
		},
		IsActive: true,
	}
}

func turaMain() *entity.DeliveryZone {
	return rectZone(turaMainID, "Tura-Main", 25.505, 90.200, 25.518, 90.220)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
