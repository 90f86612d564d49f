package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/automatistsw/quiz-reminder-popup/internal/bootstrap"
	"github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/domain"
	"github.com/automatistsw/quiz-reminder-popup/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "quizreminder",
		Short:         "Self-authored quiz reminders on a countdown",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.New(configDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(cfg)
		},
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir", "", "settings directory (defaults to the user config dir)")

	root.AddCommand(newTUICmd(&configDir))
	root.AddCommand(newRunCmd(&configDir))
	root.AddCommand(newSettingsCmd(&configDir))
	return root
}

func loadConfig(configDir *string) (config.Config, error) {
	return config.New(*configDir)
}

func newTUICmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(cfg)
		},
	}
}

func newRunCmd(configDir *string) *cobra.Command {
	var question, answer string
	var seconds int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one quiz cycle without the TUI",
		Long:  "Starts the countdown, waits for it to fire, asks the question on stdin, and prints the result.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configDir)
			if err != nil {
				return err
			}
			presenter := newConsolePresenter()
			app := bootstrap.New(cfg, presenter)
			ctx := cmd.Context()

			// Unset flags fall back to the stored settings, like the
			// pre-filled config form.
			stored, err := app.Quiz.Settings(ctx)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("question") {
				question = stored.Question
			}
			if !cmd.Flags().Changed("answer") {
				answer = stored.Answer
			}
			if !cmd.Flags().Changed("timer") {
				seconds = stored.Seconds
			}

			if _, err := app.Quiz.Start(ctx, question, answer, seconds); err != nil {
				return err
			}

			asked := <-presenter.quizPrompt
			fmt.Println()
			fmt.Println("Question:", asked)
			fmt.Print("Your answer: ")
			scanner := bufio.NewScanner(os.Stdin)
			var typed string
			if scanner.Scan() {
				typed = scanner.Text()
			}

			result, err := app.Quiz.Submit(ctx, typed)
			if err != nil {
				return err
			}
			fmt.Println("Your answer:   ", result.UserAnswer)
			fmt.Println("Correct answer:", result.CorrectAnswer)
			if result.Match {
				fmt.Println("Match!")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&question, "question", "q", "", "question to be asked")
	cmd.Flags().StringVarP(&answer, "answer", "a", "", "expected answer")
	cmd.Flags().IntVarP(&seconds, "timer", "t", domain.DefaultTimerSeconds, "countdown in seconds (1-3600)")
	return cmd
}

func newSettingsCmd(configDir *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Inspect or reset stored settings"}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configDir)
			if err != nil {
				return err
			}
			app := bootstrap.New(cfg, newConsolePresenter())
			out, err := app.Quiz.Settings(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Overwrite the stored settings with defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configDir)
			if err != nil {
				return err
			}
			app := bootstrap.New(cfg, newConsolePresenter())
			out, err := app.Quiz.ResetSettings(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	settings.AddCommand(showCmd)
	settings.AddCommand(resetCmd)
	return settings
}

func printJSON(v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(payload))
	return nil
}
