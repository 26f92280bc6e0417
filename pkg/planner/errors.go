package planner

import "errors"

var (
	ErrUnknownCategory = errors.New("task type must be academic or personal")
	ErrInvalidSortKey  = errors.New("sort key must be one of priority, type, start, end")
	ErrUnknownHandle   = errors.New("no task with that handle")

	// ErrInvalidAnswer is returned by a Prompter when the reply is neither
	// yes nor no. It is never read as a default answer.
	ErrInvalidAnswer = errors.New("invalid input, expected y or n")
)
