package util

import "errors"

var (
	ErrQuestionNotFound     = errors.New("question not found")
	ErrSessionNotFound      = errors.New("quiz session not found")
	ErrAnswerNotFound       = errors.New("answer not found")
	ErrInvalidOptionCount   = errors.New("options must contain between 3 and 5 entries")
	ErrCorrectOptionRange   = errors.New("correctOption is out of range of options")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidDifficulty    = errors.New("invalid difficulty")
	ErrSelectedOptionRange  = errors.New("selected option is out of range")
	ErrAlreadyAnswered      = errors.New("question already answered in this session")
	ErrSessionNotInProgress = errors.New("session already completed or abandoned")
)
