package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "locgate/internal/delivery/context"
	"locgate/internal/domain/entity"
	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/domain/repository"
	"locgate/internal/domain/service"
	"locgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type waitlistRecorder struct {
	repo   repository.WaitlistRepository
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewWaitlistRecorder creates the consumer side of the waitlist.
func NewWaitlistRecorder(repo repository.WaitlistRepository, clock clockwork.Clock, logger *slog.Logger) usecase.WaitlistRecorder {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &waitlistRecorder{repo: repo, clock: clock, logger: logger}
}

// Record validates the event and stores it. Malformed events return 4xx
// domain errors; storage failures return 5xx ones.
func (r *waitlistRecorder) Record(ctx context.Context, event *service.AvailabilityRequestEvent) (bool, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)

	entry, err := r.toEntry(event)
	if err != nil {
		return false, err
	}

	created, err := r.repo.RecordEntry(ctx, entry)
	if err != nil {
		return false, err
	}
	if !created {
		logger.InfoContext(ctx, "Waitlist entry already recorded", slog.String("waitlistId", entry.ID.String()))

		return false, nil
	}

	logger.InfoContext(ctx, "Waitlist entry recorded",
		slog.String("waitlistId", entry.ID.String()),
		slog.String("topic", entry.CellTopic),
	)

	return true, nil
}

func (r *waitlistRecorder) toEntry(event *service.AvailabilityRequestEvent) (*entity.WaitlistEntry, error) {
	if event == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event is required")
	}

	id, err := uuid.Parse(event.WaitlistID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("waitlist_id is not a uuid")
	}

	coords := entity.Coordinates{Latitude: event.Latitude, Longitude: event.Longitude}
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	entry := &entity.WaitlistEntry{
		ID:          id,
		Latitude:    coords.Latitude,
		Longitude:   coords.Longitude,
		CellTopic:   event.CellTopic,
		DeviceID:    strings.TrimSpace(event.DeviceID),
		Contact:     strings.TrimSpace(event.Contact),
		RequestedAt: event.RequestedAt.UTC(),
		ReceivedAt:  r.clock.Now().UTC(),
	}
	if entry.CellTopic == "" {
		entry.CellTopic = CellTopic(coords.Latitude, coords.Longitude)
	}
	if entry.RequestedAt.IsZero() {
		entry.RequestedAt = entry.ReceivedAt
	}
	if event.UserID != "" {
		userID, err := uuid.Parse(event.UserID)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("user_id is not a uuid")
		}
		entry.UserID = &userID
	}

	return entry, nil
}

func (r *waitlistRecorder) Demand(ctx context.Context, limit int) ([]entity.CellDemand, error) {
	return r.repo.CountByCell(ctx, limit)
}
