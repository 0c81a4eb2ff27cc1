package pubsub

import (
	"context"
	"log/slog"

	"locgate/config"
	"locgate/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Publisher providers accepted in config.PubSubConfig.Provider.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
	ProviderLog    = "log"
)

// logPublisher records events in the log only. It backs the simulator and
// deployments without a broker.
type logPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher that only logs events
func NewLogPublisher(logger *slog.Logger) service.EventPublisher {
	return &logPublisher{logger: logger}
}

func (p *logPublisher) PublishAvailabilityRequest(ctx context.Context, event *service.AvailabilityRequestEvent) error {
	p.logger.InfoContext(ctx, "[LogPubSub] Availability request recorded",
		slog.String("waitlist_id", event.WaitlistID),
		slog.String("cell_topic", event.CellTopic),
		slog.Float64("latitude", event.Latitude),
		slog.Float64("longitude", event.Longitude),
	)

	return nil
}

func (p *logPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := NewPublisherFromConfig(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// NewPublisherFromConfig builds the publisher selected by cfg. A missing
// section or provider falls back to the log publisher.
func NewPublisherFromConfig(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderLog {
		logger.Info("PubSub not configured, availability requests are only logged")

		return NewLogPublisher(logger), nil
	}

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
