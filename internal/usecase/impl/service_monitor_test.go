package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"locgate/config"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceMonitor_IntervalAt(t *testing.T) {
	monitor := NewServiceMonitor(nil, clockwork.NewFakeClock(), newDiscardLogger())

	tests := []struct {
		elapsed time.Duration
		want    time.Duration
	}{
		{elapsed: 0, want: 2 * time.Second},
		{elapsed: 4 * time.Second, want: 2 * time.Second},
		{elapsed: 6 * time.Second, want: 5 * time.Second},
		{elapsed: 30 * time.Second, want: 5 * time.Second},
		{elapsed: 31 * time.Second, want: 10 * time.Second},
		{elapsed: 10 * time.Minute, want: 10 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, monitor.IntervalAt(tt.elapsed), "elapsed %s", tt.elapsed)
	}
}

func TestServiceMonitor_IntervalAt_LastPhaseBounded(t *testing.T) {
	monitor := NewServiceMonitor([]config.PollPhase{{Until: time.Second, Interval: 100 * time.Millisecond}}, clockwork.NewFakeClock(), newDiscardLogger())

	assert.Equal(t, 100*time.Millisecond, monitor.IntervalAt(time.Hour))
}

func TestServiceMonitor_PollsAdaptively(t *testing.T) {
	clock := clockwork.NewFakeClock()
	monitor := NewServiceMonitor(nil, clock, newDiscardLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var probes atomic.Int32
	var enabled atomic.Bool
	ready := make(chan struct{})

	watch := monitor.Watch(ctx, "service", func(context.Context) (bool, error) {
		probes.Add(1)

		return enabled.Load(), nil
	}, func() { close(ready) })

	// fast phase: probes at 2s, 4s, 6s
	for i := 1; i <= 3; i++ {
		require.NoError(t, clock.BlockUntilContext(ctx, 1))
		clock.Advance(2 * time.Second)
		require.Eventually(t, func() bool { return probes.Load() == int32(i) }, time.Second, time.Millisecond)
	}

	// medium phase: nothing before 5s have passed
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(4 * time.Second)
	assert.Never(t, func() bool { return probes.Load() > 3 }, 50*time.Millisecond, 5*time.Millisecond)

	enabled.Store(true)
	clock.Advance(time.Second)

	select {
	case <-ready:
	case <-ctx.Done():
		t.Fatal("monitor never became ready")
	}
	<-watch.Done()
	assert.Equal(t, int32(4), probes.Load())
}

func TestServiceMonitor_ResumeProbesImmediately(t *testing.T) {
	clock := clockwork.NewFakeClock()
	monitor := NewServiceMonitor(nil, clock, newDiscardLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ready := make(chan struct{})
	watch := monitor.Watch(ctx, "service", func(context.Context) (bool, error) { return true, nil }, func() { close(ready) })

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	watch.Resume()

	select {
	case <-ready:
	case <-ctx.Done():
		t.Fatal("resume did not trigger a probe")
	}
}

func TestServiceMonitor_StopSkipsCallback(t *testing.T) {
	clock := clockwork.NewFakeClock()
	monitor := NewServiceMonitor(nil, clock, newDiscardLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var called atomic.Bool
	watch := monitor.Watch(ctx, "service", func(context.Context) (bool, error) { return true, nil }, func() { called.Store(true) })

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	watch.Stop()
	<-watch.Done()

	clock.Advance(time.Minute)
	assert.False(t, called.Load())
}

func TestServiceMonitor_ProbeErrorKeepsPolling(t *testing.T) {
	clock := clockwork.NewFakeClock()
	monitor := NewServiceMonitor(nil, clock, newDiscardLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var probes atomic.Int32
	ready := make(chan struct{})
	monitor.Watch(ctx, "permission", func(context.Context) (bool, error) {
		if probes.Add(1) == 1 {
			return false, assert.AnError
		}

		return true, nil
	}, func() { close(ready) })

	for range 2 {
		require.NoError(t, clock.BlockUntilContext(ctx, 1))
		clock.Advance(2 * time.Second)
	}

	select {
	case <-ready:
	case <-ctx.Done():
		t.Fatal("monitor stopped after a probe error")
	}
}
