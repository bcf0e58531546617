package errors

import "errors"

var (
	ErrInvalidInput    = errors.New("connector input is invalid")
	ErrUnknownPlatform = errors.New("platform is not supported")
	ErrHandleNotFound  = errors.New("platform handle does not exist")
	ErrUpstream        = errors.New("platform upstream request failed")
	ErrMemberNotFound  = errors.New("member record does not exist")
	ErrNotConnected    = errors.New("platform is not connected for this member")
)
