package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	quizout "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/adapter/out"
	"github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/domain"
	portout "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/port/out"
)

func storeAt(dir string) (store portout.SettingsStore, path string) {
	path = filepath.Join(dir, "quizreminder", "settings.json")
	return quizout.NewFileSettingsStore(path), path
}

func TestLoadOnFreshInstallReturnsDefaults(t *testing.T) {
	t.Parallel()
	store, _ := storeAt(t.TempDir())

	got := store.Load(context.Background())
	want := domain.QuizConfig{Question: "", Answer: "", TimerSeconds: 1}
	if got != want {
		t.Fatalf("fresh install should yield defaults, got %+v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	store, path := storeAt(t.TempDir())
	cfg := domain.QuizConfig{Question: "what is the airspeed?", Answer: "african or european?", TimerSeconds: 600}

	// Save must create the containing directory on its own.
	if err := store.Save(context.Background(), cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("settings file not written: %v", err)
	}
	if got := store.Load(context.Background()); got != cfg {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, cfg)
	}
}

func TestLoadSwallowsMalformedRecord(t *testing.T) {
	t.Parallel()
	store, path := storeAt(t.TempDir())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cases := map[string]string{
		"truncated":  `{"question": "q", "ans`,
		"not json":   "question = q",
		"wrong type": `{"question": 7, "answer": [], "timer": "soon"}`,
		"empty":      "",
	}
	for name, payload := range cases {
		if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
			t.Fatalf("%s: write: %v", name, err)
		}
		got := store.Load(context.Background())
		if got != domain.DefaultConfig() {
			t.Fatalf("%s: malformed record should yield defaults, got %+v", name, got)
		}
	}
}

func TestLoadClampsOutOfRangeTimer(t *testing.T) {
	t.Parallel()
	store, path := storeAt(t.TempDir())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	for _, payload := range []string{
		`{"question": "q", "answer": "a", "timer": 0}`,
		`{"question": "q", "answer": "a", "timer": 99999}`,
		`{"question": "q", "answer": "a"}`,
	} {
		if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		got := store.Load(context.Background())
		if got.TimerSeconds != domain.DefaultTimerSeconds {
			t.Fatalf("timer should clamp to default for %s, got %d", payload, got.TimerSeconds)
		}
		if got.Question != "q" || got.Answer != "a" {
			t.Fatalf("valid fields should survive the clamp: %+v", got)
		}
	}
}

func TestSaveOverwritesWholeRecord(t *testing.T) {
	t.Parallel()
	store, _ := storeAt(t.TempDir())
	ctx := context.Background()

	first := domain.QuizConfig{Question: "one", Answer: "1", TimerSeconds: 10}
	second := domain.QuizConfig{Question: "two", Answer: "2", TimerSeconds: 20}
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}
	if got := store.Load(ctx); got != second {
		t.Fatalf("latest save should win: %+v", got)
	}
}
