package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN on the server, or an in-memory
	// cache DSN on the client).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAuthConfigs indicates invalid token settings
	// (for example, a missing token sign key).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")

	// ErrMissingClientEndpoint indicates that the client has no backend
	// endpoint URL configured. The client surfaces this as its
	// "configuration missing" screen instead of a crash.
	ErrMissingClientEndpoint = errors.New("backend endpoint URL is not configured")

	// ErrMissingClientAPIKey indicates that the client has no public API
	// key configured. Surfaced the same way as a missing endpoint URL.
	ErrMissingClientAPIKey = errors.New("public API key is not configured")
)
