package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "locgate/internal/delivery/context"
	"locgate/internal/domain/entity"
	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/domain/service"
	"locgate/internal/errors"
	servicemocks "locgate/internal/mocks/service"
	usecasemocks "locgate/internal/mocks/usecase"
	"locgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCellTopic(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     string
	}{
		{25.5200, 90.2300, "waitlist_25.5_90.2"},
		{25.5999, 90.2999, "waitlist_25.5_90.2"},
		{25.6, 90.3, "waitlist_25.6_90.3"},
		{-0.05, -179.95, "waitlist_-0.1_-180.0"},
		{0.01, 0.01, "waitlist_0.0_0.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CellTopic(tt.lat, tt.lon), "(%v, %v)", tt.lat, tt.lon)
	}
}

type waitlistFixture struct {
	svc       usecase.WaitlistUsecase
	publisher *servicemocks.MockEventPublisher
	topics    *servicemocks.MockTopicSubscriber
	clock     *clockwork.FakeClock
}

func newWaitlistFixture(t *testing.T) *waitlistFixture {
	t.Helper()

	fx := &waitlistFixture{
		publisher: servicemocks.NewMockEventPublisher(t),
		topics:    servicemocks.NewMockTopicSubscriber(t),
		clock:     clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
	}
	fx.svc = NewWaitlistService(newTuraRegistry(t), fx.publisher, fx.topics, fx.clock, newDiscardLogger())

	return fx
}

func TestWaitlistService_Join(t *testing.T) {
	userID := uuid.MustParse("0c6a4e1e-7d4b-4a53-8f57-5df6e0b7c001")

	t.Run("publishes and subscribes the push token", func(t *testing.T) {
		fx := newWaitlistFixture(t)
		ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

		var published *service.AvailabilityRequestEvent
		fx.publisher.EXPECT().PublishAvailabilityRequest(ctx, mock.AnythingOfType("*service.AvailabilityRequestEvent")).
			RunAndReturn(func(_ context.Context, event *service.AvailabilityRequestEvent) error {
				published = event

				return nil
			}).Once()
		fx.topics.EXPECT().SubscribeToTopic(ctx, []string{"fcm-token"}, "waitlist_25.5_90.2").Return(0, nil).Once()

		receipt, err := fx.svc.Join(ctx, &service.AvailabilityRequest{
			Coordinates: scenarioOutside,
			Identity:    entity.Identity{UserID: &userID, DeviceID: "device-1"},
			PushToken:   " fcm-token ",
			Contact:     "+91 98000 00000",
		})
		require.NoError(t, err)
		assert.Equal(t, "waitlist_25.5_90.2", receipt.Topic)

		require.NotNil(t, published)
		assert.Equal(t, receipt.WaitlistID, published.WaitlistID)
		assert.Equal(t, "req-1", published.RequestID)
		assert.Equal(t, userID.String(), published.UserID)
		assert.Equal(t, "device-1", published.DeviceID)
		assert.Equal(t, "+91 98000 00000", published.Contact)
		assert.Equal(t, scenarioOutside.Latitude, published.Latitude)
		assert.Equal(t, fx.clock.Now(), published.RequestedAt)
	})

	t.Run("subscription failure does not fail the request", func(t *testing.T) {
		fx := newWaitlistFixture(t)
		ctx := context.Background()
		fx.publisher.EXPECT().PublishAvailabilityRequest(ctx, mock.Anything).Return(nil)
		fx.topics.EXPECT().SubscribeToTopic(ctx, []string{"fcm-token"}, mock.Anything).Return(0, errors.New("fcm down"))

		_, err := fx.svc.Join(ctx, &service.AvailabilityRequest{Coordinates: scenarioOutside, PushToken: "fcm-token"})
		require.NoError(t, err)
	})

	t.Run("without a push token nothing is subscribed", func(t *testing.T) {
		fx := newWaitlistFixture(t)
		ctx := context.Background()
		fx.publisher.EXPECT().PublishAvailabilityRequest(ctx, mock.Anything).Return(nil)

		_, err := fx.svc.Join(ctx, &service.AvailabilityRequest{
			Coordinates: scenarioOutside,
			Identity:    entity.Identity{DeviceID: "device-1"},
		})
		require.NoError(t, err)
	})

	t.Run("inside a zone is rejected", func(t *testing.T) {
		fx := newWaitlistFixture(t)

		_, err := fx.svc.Join(context.Background(), &service.AvailabilityRequest{
			Coordinates: scenarioInside,
			Identity:    entity.Identity{DeviceID: "device-1"},
		})
		require.ErrorIs(t, err, domainerrors.ErrAlreadyServiceable)
	})

	t.Run("publish failure", func(t *testing.T) {
		fx := newWaitlistFixture(t)
		fx.publisher.EXPECT().PublishAvailabilityRequest(mock.Anything, mock.Anything).Return(errors.New("broker down"))

		_, err := fx.svc.Join(context.Background(), &service.AvailabilityRequest{
			Coordinates: scenarioOutside,
			Identity:    entity.Identity{DeviceID: "device-1"},
			PushToken:   "fcm-token",
		})
		require.ErrorIs(t, err, domainerrors.ErrWaitlistUnavailable)
	})

	t.Run("validation", func(t *testing.T) {
		fx := newWaitlistFixture(t)

		_, err := fx.svc.Join(context.Background(), nil)
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		_, err = fx.svc.Join(context.Background(), &service.AvailabilityRequest{Coordinates: scenarioOutside})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		_, err = fx.svc.Join(context.Background(), &service.AvailabilityRequest{
			Coordinates: entity.Coordinates{Latitude: 25, Longitude: 200},
			Identity:    entity.Identity{DeviceID: "device-1"},
		})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
	})

	t.Run("zone lookup failure", func(t *testing.T) {
		zones := servicemocks.NewMockZoneRegistry(t)
		zones.EXPECT().Detect(mock.Anything, scenarioOutside).Return(nil, service.ErrZoneLookup)
		svc := NewWaitlistService(zones, servicemocks.NewMockEventPublisher(t), nil, nil, newDiscardLogger())

		_, err := svc.Join(context.Background(), &service.AvailabilityRequest{
			Coordinates: scenarioOutside,
			Identity:    entity.Identity{DeviceID: "device-1"},
		})
		require.ErrorIs(t, err, domainerrors.ErrZoneLookupFailed)
	})
}

func TestWaitlistNotifier(t *testing.T) {
	waitlist := usecasemocks.NewMockWaitlistUsecase(t)
	req := &service.AvailabilityRequest{Coordinates: scenarioOutside, Identity: entity.Identity{DeviceID: "device-1"}}
	waitlist.EXPECT().Join(mock.Anything, req).Return(&usecase.WaitlistReceipt{WaitlistID: "w-1"}, nil).Once()

	require.NoError(t, NewWaitlistNotifier(waitlist).RequestNotifyWhenAvailable(context.Background(), req))
}
