package service

import (
	"context"

	"locgate/internal/domain/entity"
	"locgate/internal/errors"
)

// ErrPlacesRateLimited is returned when the hourly query budget is spent.
var ErrPlacesRateLimited = errors.New("places search rate limited")

// PlacesSearcher converts free-text queries to candidate places.
type PlacesSearcher interface {
	Search(ctx context.Context, query, regionHint string) ([]entity.PlaceCandidate, error)
}
