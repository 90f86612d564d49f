package domain

import "fmt"

const (
	MinTimerSeconds     = 1
	MaxTimerSeconds     = 3600
	DefaultTimerSeconds = 1
)

// Mode is the session's position in the reminder cycle.
type Mode int

const (
	ModeIdle Mode = iota
	ModeTiming
	ModeQuizzing
	ModeShowingResult
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeTiming:
		return "timing"
	case ModeQuizzing:
		return "quizzing"
	case ModeShowingResult:
		return "showing_result"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// QuizConfig is the persisted record: what to ask, what counts as the right
// answer, and how long to wait before asking. Question and answer may be
// empty strings.
type QuizConfig struct {
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	TimerSeconds int    `json:"timer"`
}

func DefaultConfig() QuizConfig {
	return QuizConfig{TimerSeconds: DefaultTimerSeconds}
}

func (c QuizConfig) Validate() error {
	if c.TimerSeconds < MinTimerSeconds || c.TimerSeconds > MaxTimerSeconds {
		return fmt.Errorf("timer must be between %d and %d seconds, got %d",
			MinTimerSeconds, MaxTimerSeconds, c.TimerSeconds)
	}
	return nil
}

// Normalize clamps an out-of-range timer back to the default. Loaded records
// pass through here so a hand-edited file can never poison the session.
func (c QuizConfig) Normalize() QuizConfig {
	if c.TimerSeconds < MinTimerSeconds || c.TimerSeconds > MaxTimerSeconds {
		c.TimerSeconds = DefaultTimerSeconds
	}
	return c
}

// Result pairs the submitted answer with the stored one. Match is exact
// string equality, case-sensitive, no trimming; it exists for display only
// and nothing in the cycle branches on it.
type Result struct {
	UserAnswer    string
	CorrectAnswer string
	Match         bool
}

func NewResult(userAnswer, correctAnswer string) Result {
	return Result{
		UserAnswer:    userAnswer,
		CorrectAnswer: correctAnswer,
		Match:         userAnswer == correctAnswer,
	}
}
