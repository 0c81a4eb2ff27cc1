package device

import (
	"context"
	"log/slog"

	"locgate/internal/domain/entity"
	"locgate/internal/domain/service"
)

// SimulatedSettings opens settings screens by logging them. When linked to a
// provider it also applies what the user would do there: grant permission or
// switch location on.
type SimulatedSettings struct {
	logger   *slog.Logger
	provider *ScriptedProvider
}

var _ service.SettingsOpener = (*SimulatedSettings)(nil)

// NewSimulatedSettings creates a settings opener. provider may be nil.
func NewSimulatedSettings(logger *slog.Logger, provider *ScriptedProvider) *SimulatedSettings {
	return &SimulatedSettings{logger: logger, provider: provider}
}

func (s *SimulatedSettings) OpenAppSettings(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Opening app settings")
	if s.provider != nil {
		s.provider.SetPermission(entity.PermissionGranted)
	}

	return nil
}

func (s *SimulatedSettings) OpenLocationSettings(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Opening location settings")
	if s.provider != nil {
		s.provider.SetServiceEnabled(true)
	}

	return nil
}
