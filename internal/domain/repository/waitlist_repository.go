package repository

import (
	"context"

	"locgate/internal/domain/entity"
)

// WaitlistRepository stores waitlist entries keyed by their id.
type WaitlistRepository interface {
	// RecordEntry stores the entry unless one with the same id exists.
	// It reports whether this call created it.
	RecordEntry(ctx context.Context, entry *entity.WaitlistEntry) (bool, error)

	// CountByCell returns the entry count per cell topic, busiest first.
	CountByCell(ctx context.Context, limit int) ([]entity.CellDemand, error)
}
