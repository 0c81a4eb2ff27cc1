package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"locgate/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localPushAttempts = 3
	localPushBackoff  = 100 * time.Millisecond
)

// localHTTPPublisher POSTs push envelopes straight to a worker, standing in
// for a push subscription during development. Like Pub/Sub it redelivers on
// 429 and 5xx.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	backoff    time.Duration
	logger     *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		backoff:    localPushBackoff,
		logger:     logger.With(slog.String("component", "local_pubsub")),
	}
}

func (p *localHTTPPublisher) PublishAvailabilityRequest(ctx context.Context, event *service.AvailabilityRequestEvent) error {
	envelope, err := NewPushEnvelope(event, event.WaitlistID, time.Now())
	if err != nil {
		return err
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	backoff := p.backoff
	for attempt := 1; ; attempt++ {
		status, err := p.push(ctx, body, event.RequestID)
		switch {
		case err != nil:
			return err
		case status >= 200 && status < 300:
			p.logger.Info("[LocalPubSub] Availability request delivered",
				slog.String("waitlist_id", event.WaitlistID),
				slog.Int("attempts", attempt),
			)

			return nil
		case !redeliverable(status) || attempt == localPushAttempts:
			return errors.Errorf("push endpoint returned non-success status: %d", status)
		}

		p.logger.Warn("[LocalPubSub] Push rejected, redelivering",
			slog.String("waitlist_id", event.WaitlistID),
			slog.Int("status", status),
			slog.Int("attempt", attempt),
		)

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

func (p *localHTTPPublisher) push(ctx context.Context, body []byte, requestID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func redeliverable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
