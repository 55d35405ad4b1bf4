package domain

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNoValidPairing      = errors.New("no valid pairing")
	ErrInconsistentHistory = errors.New("inconsistent history")
)
