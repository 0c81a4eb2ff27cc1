// Package zoneclient talks to a running zoned service. It implements the zone
// registry and the availability notifier for hosts that do not load zones
// themselves.
package zoneclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"locgate/config"
	deliverycontext "locgate/internal/delivery/context"
	"locgate/internal/domain/entity"
	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/domain/service"
	"locgate/internal/errors"

	"github.com/google/uuid"
)

const (
	detectPath   = "/api/v1/zones/detect"
	waitlistPath = "/api/v1/waitlist"

	defaultTimeout = 5 * time.Second
)

type coordinatesBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type zoneBody struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Region   string            `json:"region"`
	Boundary []coordinatesBody `json:"boundary"`
}

type detectBody struct {
	InZone bool      `json:"in_zone"`
	Zone   *zoneBody `json:"zone"`
}

type waitlistBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	DeviceID  string  `json:"device_id,omitempty"`
	UserID    string  `json:"user_id,omitempty"`
	FCMToken  string  `json:"fcm_token,omitempty"`
	Contact   string  `json:"contact,omitempty"`
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client is an HTTP ZoneRegistry and AvailabilityNotifier.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var (
	_ service.ZoneRegistry         = (*Client)(nil)
	_ service.AvailabilityNotifier = (*Client)(nil)
)

// New creates a client for the zoned base URL in cfg.
func New(cfg *config.ZoneServiceConfig, logger *slog.Logger) (*Client, error) {
	if cfg == nil || strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("zone service base url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(slog.String("component", "zoneclient")),
	}, nil
}

// Detect asks zoned which zone encloses coords. Transport and server failures
// wrap service.ErrZoneLookup.
func (c *Client) Detect(ctx context.Context, coords entity.Coordinates) (*entity.ZoneDetectionResult, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	var body detectBody
	status, err := c.post(ctx, detectPath, coordinatesBody(coords), &body)
	if err != nil {
		return nil, errors.Join(service.ErrZoneLookup, err)
	}
	if status != http.StatusOK {
		return nil, errors.Wrapf(service.ErrZoneLookup, "zone service returned status %d", status)
	}

	if !body.InZone {
		return entity.NotInZone(), nil
	}
	zone, err := body.Zone.toEntity()
	if err != nil {
		return nil, errors.Join(service.ErrZoneLookup, err)
	}

	return entity.InZoneResult(zone), nil
}

// RequestNotifyWhenAvailable joins the zoned waitlist.
func (c *Client) RequestNotifyWhenAvailable(ctx context.Context, req *service.AvailabilityRequest) error {
	payload := waitlistBody{
		Latitude:  req.Coordinates.Latitude,
		Longitude: req.Coordinates.Longitude,
		DeviceID:  req.Identity.DeviceID,
		FCMToken:  req.PushToken,
		Contact:   req.Contact,
	}
	if req.Identity.UserID != nil {
		payload.UserID = req.Identity.UserID.String()
	}

	status, err := c.post(ctx, waitlistPath, payload, nil)
	if err != nil {
		return err
	}

	switch status {
	case http.StatusAccepted, http.StatusOK:
		return nil
	case http.StatusConflict:
		return domainerrors.ErrAlreadyServiceable
	default:
		return errors.Errorf("waitlist returned status %d", status)
	}
}

// post sends a JSON body and decodes the data field of a 2xx envelope into out.
func (c *Client) post(ctx context.Context, path string, payload, out any) (int, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrapf(err, "POST %s", path)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return resp.StatusCode, errors.Wrap(err, "decode response envelope")
	}
	if env.Error != nil {
		c.logger.WarnContext(ctx, "Zone service returned an error",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("code", env.Error.Code),
		)
	}
	if out != nil && resp.StatusCode/100 == 2 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return resp.StatusCode, errors.Wrap(err, "decode response data")
		}
	}

	return resp.StatusCode, nil
}

func (z *zoneBody) toEntity() (*entity.DeliveryZone, error) {
	if z == nil {
		return nil, errors.New("in-zone response without a zone")
	}
	id, err := uuid.Parse(z.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "zone id %q", z.ID)
	}

	boundary := make([]entity.Coordinates, 0, len(z.Boundary))
	for _, c := range z.Boundary {
		boundary = append(boundary, entity.Coordinates(c))
	}

	return &entity.DeliveryZone{
		ID:       id,
		Name:     z.Name,
		Region:   z.Region,
		Boundary: boundary,
		IsActive: true,
	}, nil
}
