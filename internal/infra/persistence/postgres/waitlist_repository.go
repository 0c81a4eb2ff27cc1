package postgres

import (
	"context"

	"locgate/internal/domain/entity"
	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/domain/repository"
	"locgate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type waitlistRepository struct {
	db *gorm.DB
}

// NewWaitlistRepository is the constructor for waitlistRepository.
func NewWaitlistRepository(db *gorm.DB) repository.WaitlistRepository {
	return &waitlistRepository{db: db}
}

// RecordEntry inserts the entry, ignoring a redelivered id.
func (repo *waitlistRepository) RecordEntry(ctx context.Context, entry *entity.WaitlistEntry) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fromWaitlistDomain(entry))
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record waitlist entry")
	}

	return result.RowsAffected > 0, nil
}

// CountByCell groups entries by cell topic.
func (repo *waitlistRepository) CountByCell(ctx context.Context, limit int) ([]entity.CellDemand, error) {
	var rows []struct {
		CellTopic string
		Entries   int64
	}

	query := repo.db.WithContext(ctx).
		Model(&model.WaitlistEntryModel{}).
		Select("cell_topic, COUNT(*) AS entries").
		Group("cell_topic").
		Order("entries DESC, cell_topic")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count waitlist entries")
	}

	out := make([]entity.CellDemand, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.CellDemand{CellTopic: row.CellTopic, Entries: row.Entries})
	}

	return out, nil
}

func fromWaitlistDomain(data *entity.WaitlistEntry) *model.WaitlistEntryModel {
	return &model.WaitlistEntryModel{
		ID:          data.ID,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		CellTopic:   data.CellTopic,
		UserID:      data.UserID,
		DeviceID:    data.DeviceID,
		Contact:     data.Contact,
		RequestedAt: data.RequestedAt,
		ReceivedAt:  data.ReceivedAt,
	}
}
