package usecase

import (
	"context"

	"locgate/internal/domain/entity"
)

// PlaceSearchResult is delivered for the latest query only.
type PlaceSearchResult struct {
	Seq        uint64
	Query      string
	Candidates []entity.PlaceCandidate
	Err        error
}

// PlaceSearch debounces free-text input and delivers the newest query's result.
type PlaceSearch interface {
	// Input records new text. The query is issued after the debounce window.
	Input(query string)

	// Results delivers results in input order, skipping superseded queries.
	Results() <-chan PlaceSearchResult

	// Close stops pending work. Results is closed afterwards.
	Close()

	// Search runs a query immediately, bypassing debounce.
	Search(ctx context.Context, query string) ([]entity.PlaceCandidate, error)
}
