package usecase

import (
	"context"

	"locgate/internal/domain/entity"
)

// ZoneSummary describes an active zone without its full boundary.
type ZoneSummary struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Region   string     `json:"region,omitempty"`
	Vertices int        `json:"vertices"`
	Bound    [4]float64 `json:"bound"` // min lon, min lat, max lon, max lat
}

// ZoneUsecase serves zone lookups to remote clients.
type ZoneUsecase interface {
	Detect(ctx context.Context, coords entity.Coordinates) (*entity.ZoneDetectionResult, error)
	ListZones(ctx context.Context) ([]ZoneSummary, error)
	Reload(ctx context.Context) (int, error)
}
