package in

import (
	"context"

	"github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/dto"
)

// Usecase is the closed set of intents the presentation layer may dispatch.
type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Stop(ctx context.Context) error
	Submit(ctx context.Context, input dto.SubmitInput) (dto.ResultOutput, error)
	Reconfigure(ctx context.Context) (dto.SettingsOutput, error)
	Settings(ctx context.Context) (dto.SettingsOutput, error)
	Snapshot(ctx context.Context) (dto.SnapshotOutput, error)
	ResetSettings(ctx context.Context) (dto.SettingsOutput, error)
}
