package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"locgate/config"
	"locgate/internal/domain/entity"
	"locgate/internal/domain/service"
	"locgate/internal/usecase"

	"github.com/jonboulle/clockwork"
)

const (
	DefaultSearchDebounce = 400 * time.Millisecond
	MinSearchDebounce     = 300 * time.Millisecond
	MaxSearchDebounce     = 500 * time.Millisecond
	DefaultSearchTimeout  = 5 * time.Second
)

type placeSearchSession struct {
	searcher   service.PlacesSearcher
	regionHint string
	debounce   time.Duration
	timeout    time.Duration
	clock      clockwork.Clock
	logger     *slog.Logger

	ctx     context.Context
	stop    context.CancelFunc
	results chan usecase.PlaceSearchResult

	mu       sync.Mutex
	seq      uint64
	timer    clockwork.Timer
	inFlight context.CancelFunc
	closed   bool
	wg       sync.WaitGroup
}

// NewPlaceSearchSession creates a debounced search over searcher. The debounce
// is clamped to 300-500ms.
func NewPlaceSearchSession(searcher service.PlacesSearcher, cfg *config.PlacesConfig, clock clockwork.Clock, logger *slog.Logger) usecase.PlaceSearch {
	if cfg == nil {
		cfg = &config.PlacesConfig{}
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultSearchTimeout
	}

	ctx, stop := context.WithCancel(context.Background())

	return &placeSearchSession{
		searcher:   searcher,
		regionHint: cfg.RegionHint,
		debounce:   effectiveDebounce(cfg.Debounce),
		timeout:    timeout,
		clock:      clock,
		logger:     logger.With(slog.String("component", "place_search")),
		ctx:        ctx,
		stop:       stop,
		results:    make(chan usecase.PlaceSearchResult, 1),
	}
}

func effectiveDebounce(d time.Duration) time.Duration {
	switch {
	case d <= 0:
		return DefaultSearchDebounce
	case d < MinSearchDebounce:
		return MinSearchDebounce
	case d > MaxSearchDebounce:
		return MaxSearchDebounce
	default:
		return d
	}
}

// Input supersedes any pending or running query. Blank text only cancels.
func (s *placeSearchSession) Input(query string) {
	query = strings.Join(strings.Fields(query), " ")

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.seq++
	seq := s.seq
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if query == "" {
		s.cancelInFlightLocked()

		return
	}

	s.timer = s.clock.AfterFunc(s.debounce, func() {
		s.run(seq, query)
	})
}

func (s *placeSearchSession) Results() <-chan usecase.PlaceSearchResult {
	return s.results
}

func (s *placeSearchSession) run(seq uint64, query string) {
	s.mu.Lock()
	if s.closed || seq != s.seq {
		s.mu.Unlock()

		return
	}
	s.cancelInFlightLocked()
	ctx, cancel := context.WithCancel(s.ctx)
	s.inFlight = cancel
	s.timer = nil
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()
	defer cancel()

	candidates, err := callBounded(ctx, s.timeout, func(ctx context.Context) ([]entity.PlaceCandidate, error) {
		return s.searcher.Search(ctx, query, s.regionHint)
	})
	if err != nil && ctx.Err() == nil {
		s.logger.Warn("Place search failed", slog.String("query", query), slog.Any("error", err))
	}

	s.deliver(usecase.PlaceSearchResult{Seq: seq, Query: query, Candidates: candidates, Err: err})
}

// deliver keeps at most one undelivered result: the newest.
func (s *placeSearchSession) deliver(result usecase.PlaceSearchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || result.Seq != s.seq {
		return
	}
	select {
	case <-s.results:
	default:
	}
	s.results <- result
}

func (s *placeSearchSession) cancelInFlightLocked() {
	if s.inFlight != nil {
		s.inFlight()
		s.inFlight = nil
	}
}

func (s *placeSearchSession) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.cancelInFlightLocked()
	s.stop()
	s.mu.Unlock()

	s.wg.Wait()
	close(s.results)
}

// Search runs one bounded query now, outside the debounced stream.
func (s *placeSearchSession) Search(ctx context.Context, query string) ([]entity.PlaceCandidate, error) {
	query = strings.Join(strings.Fields(query), " ")
	if query == "" {
		return nil, nil
	}

	return callBounded(ctx, s.timeout, func(ctx context.Context) ([]entity.PlaceCandidate, error) {
		return s.searcher.Search(ctx, query, s.regionHint)
	})
}
