package impl

import (
	"context"
	"log/slog"

	"locgate/internal/domain/entity"
	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/domain/service"
	"locgate/internal/errors"
	"locgate/internal/usecase"
)

// ZoneCatalog is a reloadable zone registry that can list its zones.
type ZoneCatalog interface {
	service.ZoneRegistry
	Zones() []*entity.DeliveryZone
	Reload(ctx context.Context) (int, error)
}

type zoneService struct {
	catalog ZoneCatalog
	logger  *slog.Logger
}

// NewZoneService creates the zone usecase served over HTTP.
func NewZoneService(catalog ZoneCatalog, logger *slog.Logger) usecase.ZoneUsecase {
	return &zoneService{
		catalog: catalog,
		logger:  logger,
	}
}

func (s *zoneService) Detect(ctx context.Context, coords entity.Coordinates) (*entity.ZoneDetectionResult, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	result, err := s.catalog.Detect(ctx, coords)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Zone lookup failed",
			slog.String("coordinates", coords.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrZoneLookupFailed.WithDetails(err.Error())
	}

	return result, nil
}

// ListZones summarises the active zones in lookup order.
func (s *zoneService) ListZones(_ context.Context) ([]usecase.ZoneSummary, error) {
	zones := s.catalog.Zones()
	summaries := make([]usecase.ZoneSummary, 0, len(zones))
	for _, zone := range zones {
		bound := zone.Ring().Bound()
		summaries = append(summaries, usecase.ZoneSummary{
			ID:       zone.ID.String(),
			Name:     zone.Name,
			Region:   zone.Region,
			Vertices: zone.DistinctVertices(),
			Bound:    [4]float64{bound.Min.Lon(), bound.Min.Lat(), bound.Max.Lon(), bound.Max.Lat()},
		})
	}

	return summaries, nil
}

func (s *zoneService) Reload(ctx context.Context) (int, error) {
	count, err := s.catalog.Reload(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Zone reload failed", slog.Any("error", err))

		return 0, domainerrors.ErrZoneSourceInvalid.WithDetails(err.Error())
	}

	s.logger.InfoContext(ctx, "Zones reloaded", slog.Int("zones", count))

	return count, nil
}
