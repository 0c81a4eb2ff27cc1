package notification

import (
	"context"
	"fmt"
	"log/slog"

	"locgate/config"
	"locgate/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxTopicTokens is the FCM limit per topic management request.
const maxTopicTokens = 1000

// topicClient is the slice of the FCM client used for topic management.
type topicClient interface {
	SubscribeToTopic(ctx context.Context, tokens []string, topic string) (*messaging.TopicManagementResponse, error)
}

type firebaseService struct {
	client topicClient
	logger *slog.Logger
}

// NewFirebaseService creates a Firebase topic subscriber
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.TopicSubscriber, error) {
	var opts []option.ClientOption
	var appCfg *firebase.Config
	if cfg != nil {
		if cfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
		}
		if cfg.ProjectID != "" {
			appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
		}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return newFirebaseService(client, logger), nil
}

func newFirebaseService(client topicClient, logger *slog.Logger) *firebaseService {
	return &firebaseService{
		client: client,
		logger: logger,
	}
}

// SubscribeToTopic subscribes push tokens to a waitlist cell topic (max 1000 tokens)
func (s *firebaseService) SubscribeToTopic(ctx context.Context, tokens []string, topic string) (int, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	if len(tokens) > maxTopicTokens {
		return 0, fmt.Errorf("token count exceeds limit: %d (max %d)", len(tokens), maxTopicTokens)
	}

	response, err := s.client.SubscribeToTopic(ctx, tokens, topic)
	if err != nil {
		return 0, fmt.Errorf("failed to subscribe to topic %s: %w", topic, err)
	}

	for _, topicErr := range response.Errors {
		if topicErr == nil {
			continue
		}
		s.logger.WarnContext(ctx, "Push token rejected by topic subscription",
			slog.String("topic", topic),
			slog.Int("index", topicErr.Index),
			slog.String("reason", topicErr.Reason),
		)
	}

	return response.FailureCount, nil
}

// noopTopicSubscriber is used when Firebase is not configured
type noopTopicSubscriber struct {
	logger *slog.Logger
}

// NewNoopTopicSubscriber creates a subscriber that accepts and drops tokens
func NewNoopTopicSubscriber(logger *slog.Logger) service.TopicSubscriber {
	return &noopTopicSubscriber{logger: logger}
}

func (s *noopTopicSubscriber) SubscribeToTopic(ctx context.Context, tokens []string, topic string) (int, error) {
	s.logger.DebugContext(ctx, "Firebase not configured, skipping topic subscription",
		slog.String("topic", topic),
		slog.Int("tokens", len(tokens)),
	)

	return 0, nil
}

// NewTopicSubscriber picks the Firebase subscriber when credentials or a
// project are configured.
func NewTopicSubscriber(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.TopicSubscriber, error) {
	if cfg.Firebase == nil || (cfg.Firebase.CredentialsPath == "" && cfg.Firebase.ProjectID == "") {
		return NewNoopTopicSubscriber(logger), nil
	}

	return NewFirebaseService(ctx, cfg.Firebase, logger)
}
