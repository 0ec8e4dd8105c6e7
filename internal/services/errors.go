package services

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrResponseNotFound = errors.New("response not found")

	ErrAlreadySubmitted = errors.New("answer already submitted, cannot modify response")
	ErrEmptyQuiz        = errors.New("quiz must have at least one question")

	ErrInvalidRole          = errors.New("role must be presenter or participant")
	ErrInvalidAnswer        = errors.New("answer must be one of A, B, C, D")
	ErrInvalidCorrectAnswer = errors.New("correct answer must reference a present option")

	// ErrCodeSpaceExhausted means repeated code collisions on launch.
	// With 36^6 possible codes this is practically unreachable.
	ErrCodeSpaceExhausted = errors.New("could not generate a unique session code")
)
