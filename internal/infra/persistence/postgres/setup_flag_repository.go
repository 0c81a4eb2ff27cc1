package postgres

import (
	"context"
	"time"

	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/domain/repository"
	"locgate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// setupFlagRepository implements the domain.SetupFlagRepository interface.
type setupFlagRepository struct {
	db *gorm.DB
}

// NewSetupFlagRepository is the constructor for setupFlagRepository.
func NewSetupFlagRepository(db *gorm.DB) repository.SetupFlagRepository {
	return &setupFlagRepository{db: db}
}

// IsSetupCompleted reports whether the flag row exists.
func (repo *setupFlagRepository) IsSetupCompleted(ctx context.Context, identityKey string) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.SetupFlagModel{}).
		Where("identity_key = ?", identityKey).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to read setup flag")
	}

	return count > 0, nil
}

// MarkSetupCompleted inserts the flag row unless it already exists.
func (repo *setupFlagRepository) MarkSetupCompleted(ctx context.Context, identityKey string, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.SetupFlagModel{IdentityKey: identityKey, CompletedAt: at})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark setup completed")
	}

	return result.RowsAffected > 0, nil
}
