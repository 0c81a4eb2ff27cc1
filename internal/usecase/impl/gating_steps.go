package impl

import (
	"context"
	"log/slog"
	"time"

	"locgate/internal/domain/entity"
	"locgate/internal/domain/service"
	"locgate/internal/errors"
)

// errCallTimeout reports that a collaborator did not answer within its bound.
var errCallTimeout = errors.New("collaborator call timed out")

// callBounded runs fn with a deadline of limit. It returns errCallTimeout when
// the deadline fires and ctx.Err() when ctx itself is done. fn keeps running in
// the background after either; its result is dropped.
func callBounded[T any](ctx context.Context, limit time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var (
		callCtx context.Context
		cancel  context.CancelFunc
	)
	if limit > 0 {
		callCtx, cancel = context.WithTimeout(ctx, limit)
	} else {
		callCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := fn(callCtx)
		done <- result{value: value, err: err}
	}()

	var zero T
	select {
	case r := <-done:
		if r.err != nil && callCtx.Err() != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return zero, ctxErr
			}
			if errors.Is(r.err, context.DeadlineExceeded) {
				return zero, errCallTimeout
			}
		}

		return r.value, r.err
	case <-callCtx.Done():
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		return zero, errCallTimeout
	}
}

// drive runs a fresh session from NotStarted until it rests.
func (e *gatingEngine) drive(f *flow) {
	enabled, err := e.serviceEnabled(f.ctx)
	if err != nil {
		if f.ctx.Err() != nil {
			return
		}
		// let the permission and fix steps report what is actually wrong
		e.logger.Warn("Location service probe failed", slog.Any("error", err))
		enabled = true
	}

	if !enabled {
		e.disableService(f, entity.StatusNotStarted)

		return
	}

	e.requestPermission(f, entity.StatusNotStarted)
}

func (e *gatingEngine) serviceEnabled(ctx context.Context) (bool, error) {
	return callBounded(ctx, e.cfg.PlatformTimeout, e.provider.IsServiceEnabled)
}

// disableService moves to GpsDisabled and waits for the service to come back.
func (e *gatingEngine) disableService(f *flow, from entity.GatingStatus) {
	failure := entity.NewFailure(entity.FailureServiceDisabled)
	if !e.apply(f, from, entity.StatusGpsDisabled, withFailure(failure)) {
		return
	}

	s := f.session
	e.startWatch(s, entity.StatusGpsDisabled, "location_service", e.serviceEnabled, func() {
		mf, ok := e.beginMonitorFlow(s)
		if !ok {
			return
		}
		defer e.endFlow(mf)

		e.requestPermission(mf, entity.StatusGpsDisabled)
	})
}

func (e *gatingEngine) requestPermission(f *flow, from entity.GatingStatus) {
	if !e.apply(f, from, entity.StatusPermissionRequesting, nil) {
		return
	}

	e.runPermission(f)
}

func (e *gatingEngine) runPermission(f *flow) {
	const from = entity.StatusPermissionRequesting

	permission, err := callBounded(f.ctx, e.cfg.PermissionTimeout, e.provider.RequestPermission)
	if f.ctx.Err() != nil {
		return
	}

	switch {
	case err == nil:
	case errors.Is(err, errCallTimeout):
		// an unanswered dialog counts as a denial
		permission = entity.PermissionDenied
	case errors.Is(err, service.ErrServiceDisabled):
		e.disableService(f, from)

		return
	case errors.Is(err, service.ErrPermissionDeniedForever):
		permission = entity.PermissionDeniedForever
	case errors.Is(err, service.ErrPermissionDenied):
		permission = entity.PermissionDenied
	default:
		e.logger.Warn("Permission request failed", slog.Any("error", err))
		e.fail(f, from, entity.FailureLocationUnavailable)

		return
	}

	switch permission {
	case entity.PermissionGranted:
		if e.apply(f, from, entity.StatusLocationDetecting, nil) {
			e.runDetect(f)
		}
	case entity.PermissionDeniedForever:
		if e.fail(f, from, entity.FailurePermissionPermanentlyDenied) {
			e.watchPermission(f.session)
		}
	default:
		e.fail(f, from, entity.FailurePermissionDenied)
	}
}

// watchPermission waits for the user to grant access in the app settings.
func (e *gatingEngine) watchPermission(s *gatingSession) {
	probe := func(ctx context.Context) (bool, error) {
		permission, err := callBounded(ctx, e.cfg.PlatformTimeout, e.provider.CheckPermission)
		if err != nil {
			return false, err
		}

		return permission == entity.PermissionGranted, nil
	}

	e.startWatch(s, entity.StatusFailed, "location_permission", probe, func() {
		mf, ok := e.beginMonitorFlow(s)
		if !ok {
			return
		}
		defer e.endFlow(mf)

		e.requestPermission(mf, entity.StatusFailed)
	})
}

func (e *gatingEngine) runDetect(f *flow) {
	const from = entity.StatusLocationDetecting

	req := service.FixRequest{
		Timeout:  e.cfg.GPSTimeout,
		Accuracy: entity.AccuracyHigh,
	}
	fix, err := callBounded(f.ctx, e.cfg.GPSTimeout, func(ctx context.Context) (*entity.LocationFix, error) {
		return e.provider.CurrentFix(ctx, req)
	})
	if f.ctx.Err() != nil {
		return
	}

	if err != nil {
		if errors.Is(err, service.ErrServiceDisabled) {
			e.disableService(f, from)

			return
		}
		e.fail(f, from, classifyFixError(err))

		return
	}
	if fix == nil || fix.Coordinates.Validate() != nil {
		e.fail(f, from, entity.FailureLocationUnavailable)

		return
	}
	if !fix.WithinAccuracy(e.cfg.AccuracyThresholdMeters) {
		e.logger.Info("Location fix rejected",
			slog.Float64("accuracyMeters", fix.AccuracyMeters),
			slog.Float64("thresholdMeters", e.cfg.AccuracyThresholdMeters),
		)
		e.fail(f, from, entity.FailureLowAccuracy)

		return
	}

	gpsFix := *fix
	if gpsFix.Source == "" {
		gpsFix.Source = entity.FixSourceGPS
	}
	if gpsFix.Timestamp.IsZero() {
		gpsFix.Timestamp = e.clock.Now()
	}

	ok := e.apply(f, from, entity.StatusZoneValidating, func(state *entity.GatingState) {
		state.Fix = &gpsFix
		state.Address = nil
	})
	if ok {
		e.validateZone(f, &gpsFix, nil)
	}
}

func classifyFixError(err error) entity.FailureKind {
	switch {
	case errors.IsAny(err, errCallTimeout, service.ErrFixTimeout):
		return entity.FailureLocationTimeout
	case errors.Is(err, service.ErrLowAccuracy):
		return entity.FailureLowAccuracy
	case errors.Is(err, service.ErrPermissionDeniedForever):
		return entity.FailurePermissionPermanentlyDenied
	case errors.Is(err, service.ErrPermissionDenied):
		return entity.FailurePermissionDenied
	default:
		return entity.FailureLocationUnavailable
	}
}

// validateZone looks up fix and finishes the session. Only the first flow to
// get an answer may finish it.
func (e *gatingEngine) validateZone(f *flow, fix *entity.LocationFix, address *entity.SavedAddress) {
	const from = entity.StatusZoneValidating

	result, err := callBounded(f.ctx, e.cfg.ZoneLookupTimeout, func(ctx context.Context) (*entity.ZoneDetectionResult, error) {
		return e.zones.Detect(ctx, fix.Coordinates)
	})
	if f.ctx.Err() != nil {
		return
	}
	answered := err == nil && result != nil
	if !e.claim(f, answered) {
		return
	}

	if !answered {
		e.logger.Warn("Zone lookup failed",
			slog.String("coordinates", fix.Coordinates.String()),
			slog.Any("error", err),
		)
		e.apply(f, from, entity.StatusFailed, func(state *entity.GatingState) {
			failure := entity.NewFailure(entity.FailureZoneLookup)
			state.Failure = &failure
			state.Fix = fix
			state.Address = address
		})

		return
	}

	if !result.InZone {
		e.apply(f, from, entity.StatusServiceNotAvailable, func(state *entity.GatingState) {
			state.Fix = fix
			state.Address = address
			state.Zone = nil
		})

		return
	}

	celebrate := e.markSetupCompleted(f)
	e.apply(f, from, entity.StatusCompleted, func(state *entity.GatingState) {
		state.Fix = fix
		state.Address = address
		state.Zone = result.Zone
		state.ShouldShowCelebration = celebrate
	})
}

// markSetupCompleted writes the setup flag on the first successful completion
// and reports whether to celebrate. A failed write is logged and not retried.
func (e *gatingEngine) markSetupCompleted(f *flow) bool {
	e.mu.Lock()
	if !f.session.firstTime || e.flagWritten {
		e.mu.Unlock()

		return false
	}
	e.flagWritten = true
	e.mu.Unlock()

	_, err := callBounded(f.ctx, e.cfg.StoreTimeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, e.store.MarkSetupCompleted(ctx, e.identity)
	})
	if err != nil {
		e.logger.Warn("Setup flag write failed", slog.Any("error", err))
	}

	return true
}

func (e *gatingEngine) fail(f *flow, from entity.GatingStatus, kind entity.FailureKind) bool {
	return e.apply(f, from, entity.StatusFailed, withFailure(entity.NewFailure(kind)))
}

func withFailure(failure entity.Failure) func(*entity.GatingState) {
	return func(state *entity.GatingState) {
		state.Failure = &failure
	}
}
