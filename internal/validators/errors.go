package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPropertyName = errors.New("property name must be between 2 and 100 characters")
	ErrInvalidPropertyID   = errors.New("invalid property ID")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")
	ErrEmptyTitle          = errors.New("section title is required")
	ErrInvalidCategory     = errors.New("unknown section category")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrWeakPassword        = errors.New("password must be at least 6 characters")
)
