package repository

import (
	"context"
	"time"
)

// SetupFlagRepository persists the "completed location gating" flag per identity key.
type SetupFlagRepository interface {
	// IsSetupCompleted reports whether the flag exists for the key.
	IsSetupCompleted(ctx context.Context, identityKey string) (bool, error)

	// MarkSetupCompleted stores the flag if absent. It reports whether this call created it.
	MarkSetupCompleted(ctx context.Context, identityKey string, at time.Time) (bool, error)
}
