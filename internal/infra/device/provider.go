// Package device provides a scripted stand-in for the platform location APIs,
// used by the simulator and by tests.
package device

import (
	"context"
	"sync"
	"time"

	"locgate/internal/domain/entity"
	"locgate/internal/domain/service"

	"github.com/jonboulle/clockwork"
)

// FixFunc produces a fix on demand. It overrides the scripted fix when set.
type FixFunc func(ctx context.Context, req service.FixRequest) (*entity.LocationFix, error)

// Script is the initial device state.
type Script struct {
	Permission     entity.PermissionState // current OS permission
	OnRequest      entity.PermissionState // answer shown by the permission dialog
	ServiceEnabled bool
	Fix            *entity.LocationFix
	FixErr         error
	FixDelay       time.Duration
}

// ScriptedProvider implements service.LocationProvider from a mutable script.
type ScriptedProvider struct {
	mu     sync.Mutex
	script Script
	fixFn  FixFunc
	clock  clockwork.Clock

	requestErr   error
	requestCalls int
	fixCalls     int
}

var _ service.LocationProvider = (*ScriptedProvider)(nil)

// NewScriptedProvider creates a provider. A nil clock uses real time.
func NewScriptedProvider(script Script, clock clockwork.Clock) *ScriptedProvider {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if script.Permission == "" {
		script.Permission = entity.PermissionDenied
	}
	if script.OnRequest == "" {
		script.OnRequest = entity.PermissionGranted
	}

	return &ScriptedProvider{script: script, clock: clock}
}

func (p *ScriptedProvider) CheckPermission(ctx context.Context) (entity.PermissionState, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.script.Permission, nil
}

func (p *ScriptedProvider) RequestPermission(ctx context.Context) (entity.PermissionState, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.requestCalls++
	if p.requestErr != nil {
		return "", p.requestErr
	}
	if p.script.Permission != entity.PermissionGranted && p.script.Permission != entity.PermissionDeniedForever {
		p.script.Permission = p.script.OnRequest
	}

	return p.script.Permission, nil
}

func (p *ScriptedProvider) IsServiceEnabled(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.script.ServiceEnabled, nil
}

func (p *ScriptedProvider) CurrentFix(ctx context.Context, req service.FixRequest) (*entity.LocationFix, error) {
	p.mu.Lock()
	p.fixCalls++
	script := p.script
	fixFn := p.fixFn
	p.mu.Unlock()

	if !script.ServiceEnabled {
		return nil, service.ErrServiceDisabled
	}
	if script.Permission != entity.PermissionGranted {
		return nil, service.ErrPermissionDenied
	}
	if fixFn != nil {
		return fixFn(ctx, req)
	}

	if script.FixDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-p.clock.After(script.FixDelay):
		}
	}
	if script.FixErr != nil {
		return nil, script.FixErr
	}
	if script.Fix == nil {
		return nil, service.ErrLocationUnavailable
	}

	fix := *script.Fix
	if fix.Source == "" {
		fix.Source = entity.FixSourceGPS
	}
	if fix.Timestamp.IsZero() {
		fix.Timestamp = p.clock.Now()
	}

	return &fix, nil
}

// SetServiceEnabled switches the OS location service.
func (p *ScriptedProvider) SetServiceEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.script.ServiceEnabled = enabled
}

// SetPermission changes the OS permission, as if edited in the app settings.
func (p *ScriptedProvider) SetPermission(permission entity.PermissionState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.script.Permission = permission
}

// SetOnRequest changes the answer of the next permission dialog.
func (p *ScriptedProvider) SetOnRequest(permission entity.PermissionState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.script.OnRequest = permission
}

// SetRequestError makes RequestPermission fail with err.
func (p *ScriptedProvider) SetRequestError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requestErr = err
}

// SetFix replaces the scripted fix result.
func (p *ScriptedProvider) SetFix(fix *entity.LocationFix, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.script.Fix = fix
	p.script.FixErr = err
}

// SetFixFunc installs fn as the fix source.
func (p *ScriptedProvider) SetFixFunc(fn FixFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fixFn = fn
}

// RequestCalls returns how many times the permission dialog was shown.
func (p *ScriptedProvider) RequestCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.requestCalls
}

// FixCalls returns how many fixes were requested.
func (p *ScriptedProvider) FixCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.fixCalls
}
