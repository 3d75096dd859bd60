package storage

import "errors"

// ErrInvalidInput is returned when input validation fails before any
// record is written.
var ErrInvalidInput = errors.New("invalid input")
