package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"locgate/config"

	"github.com/jonboulle/clockwork"
)

// Probe reports whether the awaited OS condition now holds.
type Probe func(ctx context.Context) (bool, error)

// ServiceMonitor polls a probe on an adaptive schedule while the user is away
// fixing OS settings.
type ServiceMonitor struct {
	phases []config.PollPhase
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewServiceMonitor creates a monitor. Empty phases use the default schedule.
func NewServiceMonitor(phases []config.PollPhase, clock clockwork.Clock, logger *slog.Logger) *ServiceMonitor {
	if len(phases) == 0 {
		phases = config.DefaultPollPhases()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &ServiceMonitor{
		phases: phases,
		clock:  clock,
		logger: logger,
	}
}

// IntervalAt returns the poll interval after elapsed time spent waiting.
func (m *ServiceMonitor) IntervalAt(elapsed time.Duration) time.Duration {
	for _, phase := range m.phases {
		if phase.Until == 0 || elapsed < phase.Until {
			return phase.Interval
		}
	}

	return m.phases[len(m.phases)-1].Interval
}

// Watch is a running monitor.
type Watch struct {
	resume chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Resume triggers an immediate probe, independent of the timer.
func (w *Watch) Resume() {
	select {
	case w.resume <- struct{}{}:
	default:
	}
}

// Stop ends the watch without calling onReady.
func (w *Watch) Stop() {
	w.once.Do(w.cancel)
}

// Done is closed when the watch has ended.
func (w *Watch) Done() <-chan struct{} {
	return w.done
}

// Watch starts polling probe until it reports true, then calls onReady once.
// It ends early when ctx is done or Stop is called.
func (m *ServiceMonitor) Watch(ctx context.Context, name string, probe Probe, onReady func()) *Watch {
	watchCtx, cancel := context.WithCancel(ctx)
	w := &Watch{
		resume: make(chan struct{}, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(w.done)
		defer w.Stop()

		if m.run(watchCtx, name, probe, w.resume) {
			onReady()
		}
	}()

	return w
}

func (m *ServiceMonitor) run(ctx context.Context, name string, probe Probe, resume <-chan struct{}) bool {
	started := m.clock.Now()
	logger := m.logger.With(slog.String("probe", name))

	for attempt := 1; ; attempt++ {
		interval := m.IntervalAt(m.clock.Since(started))
		timer := m.clock.NewTimer(interval)

		select {
		case <-ctx.Done():
			timer.Stop()

			return false
		case <-resume:
			timer.Stop()
			logger.Debug("Probe resumed on app foreground")
		case <-timer.Chan():
		}

		ready, err := probe(ctx)
		if ctx.Err() != nil {
			return false
		}
		if err != nil {
			logger.Warn("Probe failed", slog.Int("attempt", attempt), slog.Any("error", err))

			continue
		}
		if ready {
			logger.Info("Probe satisfied",
				slog.Int("attempt", attempt),
				slog.Duration("waited", m.clock.Since(started)),
			)

			return true
		}
	}
}
