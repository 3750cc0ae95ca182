package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrValidation wraps every input validation failure so that transport
	// layers can map the whole family to a single client error without
	// inspecting individual validator sentinels.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownCategory marks a section carrying a category outside the
	// closed set. Our own clients can never produce one, so it is a caller
	// bug rather than a user validation failure, and is kept out of the
	// [ErrValidation] family.
	ErrUnknownCategory = errors.New("unknown section category")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
