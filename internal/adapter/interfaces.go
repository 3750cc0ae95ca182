// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StayKeeper Authors

// Package adapter provides transport-layer abstractions for communicating with
// the StayKeeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the owner client
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401). Requests
// that never reach the server at all (connection refused, DNS failure,
// timeout) are reported as [ErrNetwork].
package adapter

import (
	"context"

	"github.com/staykeeper/staykeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the StayKeeper
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login, and with an empty string on logout.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new owner account from user.Email and user.Password.
	// On success it stores the returned bearer token via SetToken and returns
	// the created user record. Returns an error if the request fails or the
	// server responds with a non-2xx status.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the owner with the server. On success it stores the
	// returned bearer token via SetToken and returns the server-side user
	// record. Returns [ErrUnauthorized] (wrapped) on bad credentials.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateProperty creates a new property owned by the authenticated user
	// and returns the stored record, including the generated ID and slug.
	// Requires a valid bearer token.
	CreateProperty(ctx context.Context, property models.Property) (models.Property, error)

	// ListProperties returns all properties owned by the authenticated user.
	// Requires a valid bearer token.
	ListProperties(ctx context.Context) ([]models.Property, error)

	// GetProperty returns one property of the authenticated user by its
	// internal ID. Returns [ErrNotFound] (wrapped) when the property does not
	// exist or belongs to someone else. Requires a valid bearer token.
	GetProperty(ctx context.Context, propertyID int64) (models.Property, error)

	// UpdateProperty applies a partial update to one property of the
	// authenticated user and returns the updated record. The slug is never
	// affected. Requires a valid bearer token.
	UpdateProperty(ctx context.Context, propertyID int64, patch models.PropertyPatch) (models.Property, error)

	// DeleteProperty removes one property of the authenticated user together
	// with all of its sections. Requires a valid bearer token.
	DeleteProperty(ctx context.Context, propertyID int64) error

	// CreateSection adds a section to one property of the authenticated user
	// and returns the stored record. Requires a valid bearer token.
	CreateSection(ctx context.Context, propertyID int64, payload models.SectionPayload) (models.Section, error)

	// ListSections returns all sections of one property of the authenticated
	// user. Requires a valid bearer token.
	ListSections(ctx context.Context, propertyID int64) ([]models.Section, error)

	// UpdateSection replaces the editable fields of one section of the
	// authenticated user and returns the updated record. Requires a valid
	// bearer token.
	UpdateSection(ctx context.Context, sectionID int64, payload models.SectionPayload) (models.Section, error)

	// DeleteSection removes one section of the authenticated user. Requires a
	// valid bearer token.
	DeleteSection(ctx context.Context, sectionID int64) error

	// ResolveGuide fetches the published guide for a public slug. This is the
	// only unauthenticated call; it never requires a token and never exposes
	// owner data. Returns [ErrNotFound] (wrapped) for an unknown slug.
	ResolveGuide(ctx context.Context, slug string) (models.Guide, error)
}
