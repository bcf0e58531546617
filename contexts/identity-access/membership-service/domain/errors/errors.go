package errors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidRole       = errors.New("invalid role")
	ErrAccessCodeInvalid = errors.New("invalid mentor access code")
	ErrAlreadyRegistered = errors.New("email already registered")
	ErrMemberNotFound    = errors.New("member not found")
	ErrNotAuthorized     = errors.New("approver is not an approved mentor")
)
