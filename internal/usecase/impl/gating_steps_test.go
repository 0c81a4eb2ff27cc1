package impl

import (
	"context"
	"testing"
	"time"

	"locgate/internal/domain/entity"
	"locgate/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallBounded(t *testing.T) {
	t.Run("returns the result", func(t *testing.T) {
		got, err := callBounded(context.Background(), time.Second, func(context.Context) (int, error) {
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("passes collaborator errors through", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := callBounded(context.Background(), time.Second, func(context.Context) (int, error) {
			return 0, boom
		})
		require.ErrorIs(t, err, boom)
	})

	t.Run("times out a context-aware call", func(t *testing.T) {
		_, err := callBounded(context.Background(), 10*time.Millisecond, func(ctx context.Context) (int, error) {
			<-ctx.Done()

			return 0, ctx.Err()
		})
		require.ErrorIs(t, err, errCallTimeout)
	})

	t.Run("abandons a call that ignores its context", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		start := time.Now()
		_, err := callBounded(context.Background(), 10*time.Millisecond, func(context.Context) (int, error) {
			<-release

			return 1, nil
		})
		require.ErrorIs(t, err, errCallTimeout)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("reports parent cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := callBounded(ctx, time.Second, func(ctx context.Context) (int, error) {
			<-ctx.Done()

			return 0, ctx.Err()
		})
		require.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, errCallTimeout)
	})

	t.Run("zero limit means unbounded", func(t *testing.T) {
		got, err := callBounded(context.Background(), 0, func(ctx context.Context) (bool, error) {
			_, hasDeadline := ctx.Deadline()

			return hasDeadline, nil
		})
		require.NoError(t, err)
		assert.False(t, got)
	})
}

func TestTransitionAllowed(t *testing.T) {
	tests := []struct {
		from, to entity.GatingStatus
		want     bool
	}{
		{entity.StatusNotStarted, entity.StatusPermissionRequesting, true},
		{entity.StatusGpsDisabled, entity.StatusPermissionRequesting, true},
		{entity.StatusPermissionRequesting, entity.StatusLocationDetecting, true},
		{entity.StatusLocationDetecting, entity.StatusZoneValidating, true},
		{entity.StatusZoneValidating, entity.StatusCompleted, true},
		{entity.StatusZoneValidating, entity.StatusZoneValidating, true},
		{entity.StatusFailed, entity.StatusZoneValidating, true},
		{entity.StatusServiceNotAvailable, entity.StatusViewingModeReady, true},
		{entity.StatusLocationDetecting, entity.StatusCompleted, false},
		{entity.StatusCompleted, entity.StatusZoneValidating, false},
		{entity.StatusViewingModeReady, entity.StatusZoneValidating, false},
		{entity.StatusFailed, entity.StatusLocationDetecting, false},
		{entity.StatusNotStarted, entity.StatusNotStarted, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, transitionAllowed(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTransitionTable_TerminalStatesAreClosed(t *testing.T) {
	for _, status := range []entity.GatingStatus{entity.StatusCompleted, entity.StatusViewingModeReady} {
		assert.Empty(t, allowedTransitions[status], status)
	}
	for from, targets := range allowedTransitions {
		assert.NotContains(t, targets, entity.StatusNotStarted, from)
	}
}

func TestClassifyFixError(t *testing.T) {
	assert.Equal(t, entity.FailureLocationTimeout, classifyFixError(errCallTimeout))
	assert.Equal(t, entity.FailureLocationUnavailable, classifyFixError(context.DeadlineExceeded))
}
