package in

import (
	"context"

	quizdto "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/dto"
	quizin "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/port/in"
)

type CLIHandler struct {
	usecase quizin.Usecase
}

func NewCLIHandler(usecase quizin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, question, answer string, seconds int) (quizdto.StartOutput, error) {
	return h.usecase.Start(ctx, quizdto.StartInput{Question: question, Answer: answer, Seconds: seconds})
}

func (h CLIHandler) Stop(ctx context.Context) error {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Submit(ctx context.Context, answer string) (quizdto.ResultOutput, error) {
	return h.usecase.Submit(ctx, quizdto.SubmitInput{Answer: answer})
}

func (h CLIHandler) Reconfigure(ctx context.Context) (quizdto.SettingsOutput, error) {
	return h.usecase.Reconfigure(ctx)
}

func (h CLIHandler) Settings(ctx context.Context) (quizdto.SettingsOutput, error) {
	return h.usecase.Settings(ctx)
}

func (h CLIHandler) ResetSettings(ctx context.Context) (quizdto.SettingsOutput, error) {
	return h.usecase.ResetSettings(ctx)
}

func (h CLIHandler) Snapshot(ctx context.Context) (quizdto.SnapshotOutput, error) {
	return h.usecase.Snapshot(ctx)
}
