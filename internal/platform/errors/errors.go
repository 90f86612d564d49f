package apperrors

import "errors"

var (
	ErrInvalidDuration  = errors.New("timer duration out of range")
	ErrNotIdle          = errors.New("a timer or quiz is already in progress")
	ErrNotTiming        = errors.New("no timer is running")
	ErrNotQuizzing      = errors.New("no quiz is waiting for an answer")
	ErrNotShowingResult = errors.New("no result is being shown")
)
