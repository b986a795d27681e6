package services

import "errors"

var (
	// ErrNotFound is returned when the requested row, or the parent it must attach to, does not exist
	ErrNotFound = errors.New("record not found")
	// ErrInvalidAnswerIndex is returned when a question's correct answer index is outside its options
	ErrInvalidAnswerIndex = errors.New("correct answer index out of range")
)
