package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"locgate/config"
	deliverycontext "locgate/internal/delivery/context"
	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/domain/service"
	"locgate/internal/errors"
	"locgate/internal/infra/pubsub"
	"locgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const (
	defaultDemandLimit = 20
	maxDemandLimit     = 500
)

// TokenVerifier authenticates a push request.
type TokenVerifier func(req *http.Request, audience string) error

// PushHandler records waitlist events pushed by Pub/Sub
type PushHandler struct {
	verify   TokenVerifier
	audience string
	logger   *slog.Logger
	recorder usecase.WaitlistRecorder
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Recorder usecase.WaitlistRecorder
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:   params.Logger,
		recorder: params.Recorder,
	}

	// Only Google pushes carry an OIDC token; local pushes come from our own publisher
	if params.Config.PubSub != nil && params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		params.Config.Env.Env != "local" {
		h.verify = verifyPubSubToken
	}
	if params.Config.Worker != nil {
		h.audience = params.Config.Worker.PushAudience
	}

	return h
}

// WithTokenVerifier replaces the push authentication check.
func (h *PushHandler) WithTokenVerifier(verify TokenVerifier) *PushHandler {
	h.verify = verify

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// 2xx acks the message, 503 asks Pub/Sub to redeliver.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request(), h.audience); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushEnvelope
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.Event()
	if err != nil {
		h.logger.Error("[Worker] Undecodable push message",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, h.logger, requestID)

	created, err := h.recorder.Record(ctx, event)
	if err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Failed to record availability request",
			slog.String("waitlist_id", event.WaitlistID),
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Availability request processed",
		slog.String("waitlist_id", event.WaitlistID),
		slog.Bool("duplicate", !created),
	)

	return c.NoContent(http.StatusOK)
}

// Demand lists the busiest waitlist cells.
func (h *PushHandler) Demand(c echo.Context) error {
	limit := defaultDemandLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return domainerrors.ErrValidationFailed.WithDetails("limit must be a positive integer")
		}
		limit = min(n, maxDemandLimit)
	}

	demand, err := h.recorder.Demand(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	type cell struct {
		Topic   string `json:"topic"`
		Entries int64  `json:"entries"`
	}
	out := make([]cell, 0, len(demand))
	for _, d := range demand {
		out = append(out, cell{Topic: d.CellTopic, Entries: d.Entries})
	}

	return c.JSON(http.StatusOK, map[string]any{"cells": out})
}

// isRetryable treats everything except client-side domain errors as transient.
func isRetryable(err error) bool {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return true
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushEnvelope, event *service.AvailabilityRequestEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// X-Request-Id header via RequestIDMiddleware
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Pub/Sub attaches to push requests
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
