package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	deliverycontext "locgate/internal/delivery/context"
	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/domain/service"
	"locgate/internal/errors"
	"locgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// waitlistCellDegrees is the size of a waitlist broadcast cell.
const waitlistCellDegrees = 0.1

type waitlistService struct {
	zones     service.ZoneRegistry
	publisher service.EventPublisher
	topics    service.TopicSubscriber
	clock     clockwork.Clock
	logger    *slog.Logger
}

// NewWaitlistService creates the waitlist usecase. topics may be nil, in which
// case push tokens are not subscribed.
func NewWaitlistService(
	zones service.ZoneRegistry,
	publisher service.EventPublisher,
	topics service.TopicSubscriber,
	clock clockwork.Clock,
	logger *slog.Logger,
) usecase.WaitlistUsecase {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &waitlistService{
		zones:     zones,
		publisher: publisher,
		topics:    topics,
		clock:     clock,
		logger:    logger,
	}
}

func (s *waitlistService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Join records a request to be notified once delivery reaches the location.
// Locations already inside a zone are rejected.
func (s *waitlistService) Join(ctx context.Context, req *service.AvailabilityRequest) (*usecase.WaitlistReceipt, error) {
	logger := s.getLogger(ctx)

	if req == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("waitlist request is required")
	}
	if err := req.Coordinates.Validate(); err != nil {
		return nil, err
	}
	if !req.Identity.IsValid() && strings.TrimSpace(req.PushToken) == "" && strings.TrimSpace(req.Contact) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a device id, user id, push token or contact is required")
	}

	result, err := s.zones.Detect(ctx, req.Coordinates)
	if err != nil {
		logger.ErrorContext(ctx, "Zone lookup for waitlist failed", slog.Any("error", err))

		return nil, domainerrors.ErrZoneLookupFailed.WithDetails(err.Error())
	}
	if result != nil && result.InZone {
		return nil, domainerrors.ErrAlreadyServiceable.WithDetails(result.Zone.Name)
	}

	topic := CellTopic(req.Coordinates.Latitude, req.Coordinates.Longitude)
	event := &service.AvailabilityRequestEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		WaitlistID:  uuid.NewString(),
		Latitude:    req.Coordinates.Latitude,
		Longitude:   req.Coordinates.Longitude,
		CellTopic:   topic,
		DeviceID:    req.Identity.DeviceID,
		Contact:     strings.TrimSpace(req.Contact),
		RequestedAt: s.clock.Now().UTC(),
	}
	if req.Identity.UserID != nil {
		event.UserID = req.Identity.UserID.String()
	}

	if err := s.publisher.PublishAvailabilityRequest(ctx, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish availability request",
			slog.String("waitlistId", event.WaitlistID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrWaitlistUnavailable.WithDetails(err.Error())
	}

	if token := strings.TrimSpace(req.PushToken); token != "" && s.topics != nil {
		s.subscribeToken(ctx, logger, token, topic)
	}

	logger.InfoContext(ctx, "Waitlist request accepted",
		slog.String("waitlistId", event.WaitlistID),
		slog.String("topic", topic),
	)

	return &usecase.WaitlistReceipt{WaitlistID: event.WaitlistID, Topic: topic}, nil
}

type waitlistNotifier struct {
	waitlist usecase.WaitlistUsecase
}

// NewWaitlistNotifier lets an in-process waitlist serve gating notify requests.
func NewWaitlistNotifier(waitlist usecase.WaitlistUsecase) service.AvailabilityNotifier {
	return &waitlistNotifier{waitlist: waitlist}
}

func (n *waitlistNotifier) RequestNotifyWhenAvailable(ctx context.Context, req *service.AvailabilityRequest) error {
	_, err := n.waitlist.Join(ctx, req)

	return err
}

// subscribeToken is best effort; the published event is the record of the request.
func (s *waitlistService) subscribeToken(ctx context.Context, logger *slog.Logger, token, topic string) {
	failures, err := s.topics.SubscribeToTopic(ctx, []string{token}, topic)
	if err != nil {
		logger.WarnContext(ctx, "Failed to subscribe push token to waitlist topic",
			slog.String("topic", topic),
			slog.Any("error", errors.WithStack(err)),
		)

		return
	}
	if failures > 0 {
		logger.WarnContext(ctx, "Push token rejected by waitlist topic",
			slog.String("topic", topic),
			slog.Int("failures", failures),
		)
	}
}

// CellTopic names the broadcast topic of the cell containing the point,
// e.g. "waitlist_25.5_90.2".
func CellTopic(lat, lon float64) string {
	return fmt.Sprintf("waitlist_%s_%s", cellEdge(lat), cellEdge(lon))
}

func cellEdge(v float64) string {
	edge := math.Floor(v/waitlistCellDegrees+1e-9) * waitlistCellDegrees
	if edge == 0 {
		edge = 0 // normalise -0
	}

	return fmt.Sprintf("%.1f", edge)
}
