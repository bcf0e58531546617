package errors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
)
