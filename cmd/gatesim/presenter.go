package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"locgate/internal/domain/entity"
	"locgate/internal/usecase"

	"github.com/jonboulle/clockwork"
)

// consolePresenter prints transitions and wakes the command loop on change.
type consolePresenter struct {
	mu      sync.Mutex
	out     io.Writer
	clock   clockwork.Clock
	start   time.Time
	changed chan struct{}
}

var _ usecase.GatingObserver = (*consolePresenter)(nil)

func newConsolePresenter(out io.Writer, clock clockwork.Clock) *consolePresenter {
	return &consolePresenter{
		out:     out,
		clock:   clock,
		start:   clock.Now(),
		changed: make(chan struct{}, 1),
	}
}

func (p *consolePresenter) OnTransition(event entity.TransitionEvent) {
	p.mu.Lock()
	line := fmt.Sprintf("%s  %s -> %s  [%s]", p.elapsed(), event.From, event.To, event.Trigger)
	if failure := event.State.Failure; failure != nil && event.To == entity.StatusFailed {
		line += fmt.Sprintf("  %s: %s (remedy: %s)", failure.Kind, failure.Message, failure.Remedy)
	}
	fmt.Fprintln(p.out, line)
	p.mu.Unlock()

	select {
	case p.changed <- struct{}{}:
	default:
	}
}

// note prints a simulator event that is not a transition.
func (p *consolePresenter) note(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.out, "%s  * %s\n", p.elapsed(), fmt.Sprintf(format, args...))
}

// drain discards change signals that were already observed through State.
func (p *consolePresenter) drain() {
	select {
	case <-p.changed:
	default:
	}
}

func (p *consolePresenter) summary(state entity.GatingState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch state.Status {
	case entity.StatusCompleted:
		zone := "unknown zone"
		if state.Zone != nil {
			zone = state.Zone.Name
		}
		fmt.Fprintf(p.out, "result: delivering to %s at %s", zone, fixString(state.Fix))
		if state.ShouldShowCelebration {
			fmt.Fprint(p.out, " (first setup)")
		}
		fmt.Fprintln(p.out)
	case entity.StatusServiceNotAvailable:
		fmt.Fprintf(p.out, "result: no delivery zone covers %s\n", fixString(state.Fix))
	case entity.StatusViewingModeReady:
		fmt.Fprintf(p.out, "result: browsing without delivery at %s\n", fixString(state.Fix))
	case entity.StatusFailed:
		if state.Failure != nil {
			fmt.Fprintf(p.out, "result: failed with %s, %s\n", state.Failure.Kind, state.Failure.Message)
		} else {
			fmt.Fprintln(p.out, "result: failed")
		}
	default:
		fmt.Fprintf(p.out, "result: stopped while %s\n", state.Status)
	}
}

func (p *consolePresenter) elapsed() string {
	return fmt.Sprintf("+%6.3fs", p.clock.Since(p.start).Seconds())
}

func fixString(fix *entity.LocationFix) string {
	if fix == nil {
		return "an unknown location"
	}
	if fix.AccuracyMeters > 0 {
		return fmt.Sprintf("%s (±%.0fm, %s)", fix.Coordinates, fix.AccuracyMeters, fix.Source)
	}

	return fmt.Sprintf("%s (%s)", fix.Coordinates, fix.Source)
}
