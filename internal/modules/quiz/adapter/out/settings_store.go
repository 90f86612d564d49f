package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/domain"
	quizout "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/port/out"
)

// FileSettingsStore keeps the last-used quiz config as one JSON file in the
// per-user config location. Saves are whole-file overwrites; this is a
// single-process, low-frequency record, so no finer durability is needed.
type FileSettingsStore struct {
	path string
}

func NewFileSettingsStore(path string) quizout.SettingsStore {
	return &FileSettingsStore{path: path}
}

// Load never fails: a missing file, unreadable file, or malformed record all
// mean "no prior configuration" and yield the defaults. An out-of-range timer
// in an otherwise valid record is clamped back to the default.
func (s *FileSettingsStore) Load(_ context.Context) domain.QuizConfig {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return domain.DefaultConfig()
	}
	cfg := domain.DefaultConfig()
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return domain.DefaultConfig()
	}
	return cfg.Normalize()
}

func (s *FileSettingsStore) Save(_ context.Context, cfg domain.QuizConfig) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	payload, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
