package repository

import "context"

// TransactionManager runs address edits atomically: an address save and the
// setup flag it flips commit together or not at all.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewAddressRepository() AddressRepository
	NewSetupFlagRepository() SetupFlagRepository
}
