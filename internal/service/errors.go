package service

import "errors"

var (
	ErrNoMode       = errors.New("no agent mode selected")
	ErrInvalidMode  = errors.New("unknown agent mode")
	ErrEmptyMessage = errors.New("message is empty")
	ErrTurnInFlight = errors.New("a turn is already in progress")
	ErrTaskNotFound = errors.New("task not found")
	ErrViewHidden   = errors.New("view is not available in this mode")
)
