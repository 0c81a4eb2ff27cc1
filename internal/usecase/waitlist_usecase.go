package usecase

import (
	"context"

	"locgate/internal/domain/entity"
	"locgate/internal/domain/service"
)

// WaitlistReceipt is returned once a request has been accepted.
type WaitlistReceipt struct {
	WaitlistID string `json:"waitlist_id"`
	Topic      string `json:"topic"`
}

// WaitlistUsecase accepts "notify me when you deliver here" requests.
type WaitlistUsecase interface {
	Join(ctx context.Context, req *service.AvailabilityRequest) (*WaitlistReceipt, error)
}

// WaitlistRecorder persists availability requests delivered by the broker.
type WaitlistRecorder interface {
	// Record stores the event once. Redelivered events report false.
	Record(ctx context.Context, event *service.AvailabilityRequestEvent) (bool, error)

	// Demand lists the busiest waitlist cells.
	Demand(ctx context.Context, limit int) ([]entity.CellDemand, error)
}
