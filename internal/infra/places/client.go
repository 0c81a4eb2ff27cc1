// Package places implements free-text place search against a Google Places
// style text-search API, with an hourly request budget and a result cache.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"locgate/config"
	"locgate/internal/domain/entity"
	"locgate/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	textSearchPath = "/maps/api/place/textsearch/json"

	defaultRequestsPerHour = 100
	defaultBurst           = 10
	defaultCacheTTL        = 24 * time.Hour
	defaultTimeout         = 5 * time.Second
	maxCandidates          = 5
)

// Upstream statuses of the text-search API.
const (
	statusOK             = "OK"
	statusZeroResults    = "ZERO_RESULTS"
	statusOverQueryLimit = "OVER_QUERY_LIMIT"
)

type textSearchResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Client is a rate-limited, cached PlacesSearcher.
type Client struct {
	baseURL    string
	apiKey     string
	cacheTTL   time.Duration
	limiter    *rate.Limiter
	cache      Cache
	httpClient *http.Client
	logger     *slog.Logger
}

var _ service.PlacesSearcher = (*Client)(nil)

// NewClient creates a places client. A nil cache disables caching.
func NewClient(cfg *config.PlacesConfig, cache Cache, logger *slog.Logger) *Client {
	if cfg == nil {
		cfg = &config.PlacesConfig{}
	}
	perHour := cfg.RequestsPerHour
	if perHour <= 0 {
		perHour = defaultRequestsPerHour
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		cacheTTL:   ttl,
		limiter:    rate.NewLimiter(rate.Limit(float64(perHour)/time.Hour.Seconds()), burst),
		cache:      cache,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(slog.String("component", "places")),
	}
}

// Search returns up to five candidates. Cache hits do not spend the budget;
// a spent budget returns service.ErrPlacesRateLimited without waiting.
func (c *Client) Search(ctx context.Context, query, regionHint string) ([]entity.PlaceCandidate, error) {
	query = strings.Join(strings.Fields(query), " ")
	if query == "" {
		return nil, nil
	}
	key := CacheKey(query, regionHint)

	if c.cache != nil {
		candidates, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			c.logger.WarnContext(ctx, "Places cache read failed", slog.Any("error", err))
		} else if ok {
			return candidates, nil
		}
	}

	if !c.limiter.Allow() {
		return nil, service.ErrPlacesRateLimited
	}

	candidates, err := c.fetch(ctx, query, regionHint)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, candidates, c.cacheTTL); err != nil {
			c.logger.WarnContext(ctx, "Places cache write failed", slog.Any("error", err))
		}
	}

	return candidates, nil
}

func (c *Client) fetch(ctx context.Context, query, regionHint string) ([]entity.PlaceCandidate, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("key", c.apiKey)
	if regionHint != "" {
		params.Set("region", regionHint)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+textSearchPath+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "places request")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, service.ErrPlacesRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("places api returned status %d", resp.StatusCode)
	}

	var body textSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode places response")
	}

	switch body.Status {
	case statusOK:
	case statusZeroResults:
		return []entity.PlaceCandidate{}, nil
	case statusOverQueryLimit:
		return nil, service.ErrPlacesRateLimited
	default:
		return nil, fmt.Errorf("places api status %s: %s", body.Status, body.ErrorMessage)
	}

	candidates := make([]entity.PlaceCandidate, 0, min(len(body.Results), maxCandidates))
	for _, result := range body.Results {
		if len(candidates) == maxCandidates {
			break
		}
		candidate := entity.PlaceCandidate{
			Name:             result.Name,
			FormattedAddress: result.FormattedAddress,
			Latitude:         result.Geometry.Location.Lat,
			Longitude:        result.Geometry.Location.Lng,
		}
		if candidate.Coordinates().Validate() != nil {
			continue
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}
