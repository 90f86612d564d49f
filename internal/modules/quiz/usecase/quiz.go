package usecase

import (
	"context"

	"github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/domain"
	quizdto "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/dto"
	quizin "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/port/in"
	quizout "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/port/out"
	"github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/service"
	apperrors "github.com/automatistsw/quiz-reminder-popup/internal/platform/errors"
)

// Interactor adapts presentation intents onto the session. Range checks run
// here, at the boundary, before anything reaches the state machine; the
// service repeats the guard defensively.
type Interactor struct {
	svc   *service.Session
	store quizout.SettingsStore
}

func NewInteractor(svc *service.Session, store quizout.SettingsStore) quizin.Usecase {
	return &Interactor{svc: svc, store: store}
}

func (i *Interactor) Start(ctx context.Context, input quizdto.StartInput) (quizdto.StartOutput, error) {
	if input.Seconds < domain.MinTimerSeconds || input.Seconds > domain.MaxTimerSeconds {
		return quizdto.StartOutput{}, apperrors.ErrInvalidDuration
	}
	cfg := domain.QuizConfig{
		Question:     input.Question,
		Answer:       input.Answer,
		TimerSeconds: input.Seconds,
	}
	saved, err := i.svc.Start(ctx, cfg)
	if err != nil {
		return quizdto.StartOutput{}, err
	}
	return quizdto.StartOutput{Seconds: cfg.TimerSeconds, Saved: saved}, nil
}

func (i *Interactor) Stop(ctx context.Context) error {
	return i.svc.Stop(ctx)
}

func (i *Interactor) Submit(ctx context.Context, input quizdto.SubmitInput) (quizdto.ResultOutput, error) {
	result, err := i.svc.Submit(ctx, input.Answer)
	if err != nil {
		return quizdto.ResultOutput{}, err
	}
	return quizdto.ResultOutput{
		UserAnswer:    result.UserAnswer,
		CorrectAnswer: result.CorrectAnswer,
		Match:         result.Match,
	}, nil
}

func (i *Interactor) Reconfigure(ctx context.Context) (quizdto.SettingsOutput, error) {
	prefill, err := i.svc.Reconfigure(ctx)
	if err != nil {
		return quizdto.SettingsOutput{}, err
	}
	return settingsOutput(prefill), nil
}

func (i *Interactor) Settings(ctx context.Context) (quizdto.SettingsOutput, error) {
	return settingsOutput(i.store.Load(ctx)), nil
}

func (i *Interactor) Snapshot(context.Context) (quizdto.SnapshotOutput, error) {
	mode, cfg, hasActive := i.svc.Snapshot()
	out := quizdto.SnapshotOutput{Mode: mode.String()}
	if hasActive {
		out.Question = cfg.Question
		out.Seconds = cfg.TimerSeconds
	}
	return out, nil
}

// ResetSettings overwrites the stored record with defaults, the headless
// counterpart of the config view's reset action.
func (i *Interactor) ResetSettings(ctx context.Context) (quizdto.SettingsOutput, error) {
	cfg := domain.DefaultConfig()
	if err := i.store.Save(ctx, cfg); err != nil {
		return quizdto.SettingsOutput{}, err
	}
	return settingsOutput(cfg), nil
}

func settingsOutput(cfg domain.QuizConfig) quizdto.SettingsOutput {
	return quizdto.SettingsOutput{
		Question: cfg.Question,
		Answer:   cfg.Answer,
		Seconds:  cfg.TimerSeconds,
	}
}
