package postgres

import (
	"context"
	"log/slog"

	"locgate/internal/domain/entity"
	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/domain/repository"
	"locgate/internal/infra/geofence"
	"locgate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// zoneRepository implements the domain.ZoneRepository interface.
type zoneRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewZoneRepository is the constructor for zoneRepository.
func NewZoneRepository(db *gorm.DB, logger *slog.Logger) repository.ZoneRepository {
	return &zoneRepository{db: db, logger: logger}
}

// FindActiveZones retrieves all active zones ordered by name. Rows with an
// unreadable boundary are skipped.
func (repo *zoneRepository) FindActiveZones(ctx context.Context) ([]*entity.DeliveryZone, error) {
	var zoneModels []*model.ZoneModel

	err := repo.db.WithContext(ctx).
		Where("is_active").
		Order("name ASC").
		Order("id ASC").
		Find(&zoneModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find active zones")
	}

	zones := make([]*entity.DeliveryZone, 0, len(zoneModels))
	for _, zoneM := range zoneModels {
		zone, err := toZoneDomain(zoneM)
		if err != nil {
			repo.logger.WarnContext(ctx, "Skipping zone with invalid boundary",
				slog.String("zone_id", zoneM.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		zones = append(zones, zone)
	}

	return zones, nil
}

// UpsertZone creates or replaces a zone by ID.
func (repo *zoneRepository) UpsertZone(ctx context.Context, zone *entity.DeliveryZone) error {
	zoneM, err := fromZoneDomain(zone)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "region", "boundary", "is_active", "updated_at"}),
		}).
		Create(zoneM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert zone")
	}

	zone.CreatedAt = zoneM.CreatedAt
	zone.UpdatedAt = zoneM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toZoneDomain(data *model.ZoneModel) (*entity.DeliveryZone, error) {
	boundary, err := geofence.DecodeBoundary(data.Boundary)
	if err != nil {
		return nil, err
	}

	return &entity.DeliveryZone{
		ID:        data.ID,
		Name:      data.Name,
		Region:    data.Region,
		Boundary:  boundary,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

func fromZoneDomain(data *entity.DeliveryZone) (*model.ZoneModel, error) {
	boundary, err := geofence.EncodeBoundary(data.Boundary)
	if err != nil {
		return nil, errors.Wrap(err, "encode zone boundary")
	}

	return &model.ZoneModel{
		ID:        data.ID,
		Name:      data.Name,
		Region:    data.Region,
		Boundary:  boundary,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}
