package postgres

import (
	"context"

	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/domain/repository"
	"locgate/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory binds address and setup flag repositories to tx.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewAddressRepository() repository.AddressRepository {
	return NewAddressRepository(f.tx)
}

func (f *gormRepositoryFactory) NewSetupFlagRepository() repository.SetupFlagRepository {
	return NewSetupFlagRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute delegates begin, commit and rollback (including on panic) to gorm.
// Errors from fn come back unchanged; driver failures become database errors.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&gormRepositoryFactory{tx: tx})

		return fnErr
	})
	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return domainerrors.NewDatabaseExecuteError(errors.WithStack(err), "address transaction failed")
	}
}
