package impl

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"locgate/internal/domain/entity"
	"locgate/internal/usecase"
)

// allowedTransitions lists every edge of the gating state machine. Entering
// NotStarted happens only when a new session resets the state.
var allowedTransitions = map[entity.GatingStatus][]entity.GatingStatus{
	entity.StatusNotStarted: {
		entity.StatusPermissionRequesting,
		entity.StatusGpsDisabled,
		entity.StatusZoneValidating,
		entity.StatusFailed,
	},
	entity.StatusGpsDisabled: {
		entity.StatusPermissionRequesting,
		entity.StatusZoneValidating,
	},
	entity.StatusPermissionRequesting: {
		entity.StatusLocationDetecting,
		entity.StatusFailed,
		entity.StatusGpsDisabled,
		entity.StatusZoneValidating,
	},
	entity.StatusLocationDetecting: {
		entity.StatusZoneValidating,
		entity.StatusFailed,
		entity.StatusGpsDisabled,
	},
	entity.StatusZoneValidating: {
		entity.StatusCompleted,
		entity.StatusServiceNotAvailable,
		entity.StatusFailed,
		entity.StatusZoneValidating,
	},
	entity.StatusFailed: {
		entity.StatusZoneValidating,
		entity.StatusPermissionRequesting,
	},
	entity.StatusServiceNotAvailable: {
		entity.StatusViewingModeReady,
	},
}

func transitionAllowed(from, to entity.GatingStatus) bool {
	return slices.Contains(allowedTransitions[from], to)
}

func resting(status entity.GatingStatus) bool {
	return status.IsTerminal() || status == entity.StatusFailed || status == entity.StatusGpsDisabled
}

// gatingSession scopes one run of the state machine. Cancelling it cancels every
// flow and monitor it started.
type gatingSession struct {
	id        uint64
	ctx       context.Context
	cancel    context.CancelFunc
	firstTime bool
	owner     *flow
	resolved  bool // a zone result has been accepted
	flows     map[uint64]*flow
	watch     *Watch
}

// flow is one call chain inside a session. Only the owning flow may transition.
type flow struct {
	id      uint64
	session *gatingSession
	trigger entity.GatingTrigger
	ctx     context.Context
	cancel  context.CancelFunc
	detach  func() bool
}

// startSession discards the current session and resets the state to NotStarted.
// A retry keeps the previous first-time flag and requires a failed state.
func (e *gatingEngine) startSession(ctx context.Context, trigger entity.GatingTrigger, retry bool) (*gatingSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if retry {
		e.mu.Lock()
		if err := e.retryAllowedLocked(); err != nil {
			e.mu.Unlock()

			return nil, err
		}
		s := e.newSessionLocked(trigger, e.session.firstTime)
		e.mu.Unlock()
		e.flush()

		return s, nil
	}

	if err := e.ensureOpen(); err != nil {
		return nil, err
	}

	completed, err := callBounded(ctx, e.cfg.StoreTimeout, func(callCtx context.Context) (bool, error) {
		return e.store.IsSetupCompleted(callCtx, e.identity)
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		e.logger.Warn("Setup flag read failed, assuming first use", slog.Any("error", err))
	}
	firstTime := !completed

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()

		return nil, usecase.ErrEngineClosed
	}
	s := e.newSessionLocked(trigger, firstTime)
	e.mu.Unlock()
	e.flush()

	return s, nil
}

func (e *gatingEngine) retryAllowedLocked() error {
	switch {
	case e.closed:
		return usecase.ErrEngineClosed
	case e.session == nil:
		return usecase.ErrNotInitialized
	case e.state.Status != entity.StatusFailed:
		return usecase.ErrRetryNotAllowed
	default:
		return nil
	}
}

func (e *gatingEngine) newSessionLocked(trigger entity.GatingTrigger, firstTime bool) *gatingSession {
	if e.session != nil {
		e.session.cancel()
	}
	if e.flagWritten {
		firstTime = false
	}

	e.lastSession++
	ctx, cancel := context.WithCancel(context.Background())
	s := &gatingSession{
		id:        e.lastSession,
		ctx:       ctx,
		cancel:    cancel,
		firstTime: firstTime,
		flows:     make(map[uint64]*flow),
	}
	e.session = s

	from := e.state.Status
	now := e.clock.Now()
	e.state = entity.GatingState{
		Session:   s.id,
		Status:    entity.StatusNotStarted,
		Trigger:   trigger,
		FirstTime: firstTime,
		UpdatedAt: now,
	}
	if from != entity.StatusNotStarted {
		e.queueLocked(entity.TransitionEvent{
			Session: s.id,
			From:    from,
			To:      entity.StatusNotStarted,
			Trigger: trigger,
			State:   snapshot(e.state),
			At:      now,
		})
	}
	e.logger.Info("Gating session started",
		slog.Uint64("session", s.id),
		slog.String("trigger", trigger.String()),
		slog.Bool("firstTime", firstTime),
	)

	return s
}

// beginFlow starts a flow in the current session. The flow is cancelled when
// either the session or callerCtx is done.
func (e *gatingEngine) beginFlow(callerCtx context.Context, trigger entity.GatingTrigger) (*flow, error) {
	if err := callerCtx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, usecase.ErrEngineClosed
	}
	if e.session == nil {
		return nil, usecase.ErrNotInitialized
	}

	return e.newFlowLocked(e.session, callerCtx, trigger), nil
}

// beginMonitorFlow starts a flow for a monitor callback of session s.
func (e *gatingEngine) beginMonitorFlow(s *gatingSession) (*flow, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.session != s {
		return nil, false
	}

	return e.newFlowLocked(s, nil, entity.TriggerMonitor), true
}

func (e *gatingEngine) newFlowLocked(s *gatingSession, callerCtx context.Context, trigger entity.GatingTrigger) *flow {
	e.lastFlow++
	ctx, cancel := context.WithCancel(s.ctx)
	f := &flow{
		id:      e.lastFlow,
		session: s,
		trigger: trigger,
		ctx:     ctx,
		cancel:  cancel,
		detach:  func() bool { return false },
	}
	if callerCtx != nil {
		f.detach = context.AfterFunc(callerCtx, cancel)
	}
	s.flows[f.id] = f

	return f
}

func (e *gatingEngine) endFlow(f *flow) {
	f.detach()
	f.cancel()

	e.mu.Lock()
	defer e.mu.Unlock()

	delete(f.session.flows, f.id)
	if f.session.owner == f {
		f.session.owner = nil
	}
}

// activeLocked reports whether f may still change the state.
func (e *gatingEngine) activeLocked(f *flow) bool {
	return !e.closed && e.session == f.session && f.ctx.Err() == nil
}

// apply moves the state from one status to another on behalf of f. It fails when
// f is stale, another flow owns the session, the state moved on, or the edge
// does not exist.
func (e *gatingEngine) apply(f *flow, from, to entity.GatingStatus, mutate func(*entity.GatingState)) bool {
	e.mu.Lock()
	ok := e.applyLocked(f, from, to, mutate)
	e.mu.Unlock()

	if ok {
		e.flush()
	}

	return ok
}

func (e *gatingEngine) applyLocked(f *flow, from, to entity.GatingStatus, mutate func(*entity.GatingState)) bool {
	if !e.activeLocked(f) {
		return false
	}
	if owner := f.session.owner; owner != nil && owner != f {
		return false
	}
	if e.state.Status != from || !transitionAllowed(from, to) {
		return false
	}
	e.transitionLocked(f, to, mutate)

	return true
}

func (e *gatingEngine) transitionLocked(f *flow, to entity.GatingStatus, mutate func(*entity.GatingState)) {
	s := f.session
	s.owner = f
	if s.watch != nil {
		s.watch.Stop()
		s.watch = nil
	}

	from := e.state.Status
	now := e.clock.Now()
	e.state.Status = to
	e.state.Trigger = f.trigger
	e.state.Failure = nil
	e.state.UpdatedAt = now
	if mutate != nil {
		mutate(&e.state)
	}

	attrs := []any{
		slog.Uint64("session", s.id),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.String("trigger", f.trigger.String()),
	}
	if e.state.Failure != nil {
		attrs = append(attrs, slog.String("failure", e.state.Failure.Kind.String()))
	}
	e.logger.Info("Gating transition", attrs...)

	// a resting state waits on the user, so any call path may continue from it
	if resting(to) {
		s.owner = nil
	}

	e.queueLocked(entity.TransitionEvent{
		Session: s.id,
		From:    from,
		To:      to,
		Trigger: f.trigger,
		State:   snapshot(e.state),
		At:      now,
	})
}

// claim accepts f's zone result. The first flow to claim wins and every other
// flow of the session is cancelled, so late results are dropped. A failed
// lookup does not resolve the session: it rests in Failed and a manual
// address may still be validated.
func (e *gatingEngine) claim(f *flow, answered bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := f.session
	if !e.activeLocked(f) || s.resolved || e.state.Status != entity.StatusZoneValidating {
		return false
	}
	s.resolved = answered
	s.owner = f
	e.cancelOthersLocked(f)

	return true
}

// takeOver hands the session to a manual flow and moves it to ZoneValidating.
// While another flow is already validating both keep running and the first
// zone result wins.
func (e *gatingEngine) takeOver(f *flow, fix *entity.LocationFix, address *entity.SavedAddress) error {
	e.mu.Lock()

	if !e.activeLocked(f) {
		e.mu.Unlock()
		if e.ensureOpen() != nil {
			return usecase.ErrEngineClosed
		}

		return nil
	}
	s := f.session
	status := e.state.Status
	if status.IsTerminal() || s.resolved {
		e.mu.Unlock()

		return usecase.ErrSessionTerminal
	}
	if status != entity.StatusZoneValidating {
		e.cancelOthersLocked(f)
	}
	e.transitionLocked(f, entity.StatusZoneValidating, func(state *entity.GatingState) {
		state.Fix = fix
		state.Address = address
		state.Zone = nil
	})
	e.mu.Unlock()
	e.flush()

	return nil
}

func (e *gatingEngine) cancelOthersLocked(f *flow) {
	for id, other := range f.session.flows {
		if id != f.id {
			other.cancel()
		}
	}
}

// startWatch replaces the session monitor, provided the state still rests
// in the status the watch waits on.
func (e *gatingEngine) startWatch(s *gatingSession, status entity.GatingStatus, name string, probe Probe, onReady func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.session != s || e.state.Status != status {
		return
	}
	if s.watch != nil {
		s.watch.Stop()
	}
	s.watch = e.monitor.Watch(s.ctx, name, probe, onReady)
}

func (e *gatingEngine) queueLocked(event entity.TransitionEvent) {
	e.pending = append(e.pending, event)
}

// flush delivers queued events in order. Only one goroutine delivers at a time;
// events queued meanwhile, including from observers, are picked up by the loop.
func (e *gatingEngine) flush() {
	for {
		if !e.emitMu.TryLock() {
			return
		}

		e.mu.Lock()
		events := e.pending
		e.pending = nil
		observers := make([]usecase.GatingObserver, 0, len(e.observers))
		for _, id := range slices.Sorted(maps.Keys(e.observers)) {
			observers = append(observers, e.observers[id])
		}
		e.mu.Unlock()

		for _, event := range events {
			for _, observer := range observers {
				observer.OnTransition(event)
			}
		}
		e.emitMu.Unlock()

		e.mu.Lock()
		more := len(e.pending) > 0
		e.mu.Unlock()
		if !more {
			return
		}
	}
}
