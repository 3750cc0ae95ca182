package service

import (
	"context"

	"github.com/staykeeper/staykeeper/models"
)

// IdentityState is the client's view of who is signed in. The state machine
// is strictly ordered: the client starts in [IdentityLoading] while the
// persisted session is being restored, then settles into exactly one of
// [IdentitySignedOut] or [IdentitySignedIn]. Screens must not render
// identity-dependent content while the state is still loading.
type IdentityState int

const (
	// IdentityLoading means session restore has not finished yet.
	IdentityLoading IdentityState = iota

	// IdentitySignedOut means no valid session exists on the device.
	IdentitySignedOut

	// IdentitySignedIn means a session was restored or established and its
	// token is attached to all authenticated requests.
	IdentitySignedIn
)

// String returns the lowercase name of the state for logs and debugging.
func (s IdentityState) String() string {
	switch s {
	case IdentityLoading:
		return "loading"
	case IdentitySignedOut:
		return "signed-out"
	case IdentitySignedIn:
		return "signed-in"
	default:
		return "unknown"
	}
}

// ClientAuthService defines the client-side contract for owner sign-in state.
// Implementations own the identity state machine: they persist the session
// locally, keep the adapter's bearer token in step with it, and expose the
// current state to the UI.
type ClientAuthService interface {
	// Register creates a new owner account on the server, persists the
	// resulting session locally, and moves the state to signed-in.
	// Returns the established session or an error if the server call or
	// local persistence fails.
	Register(ctx context.Context, email, password string) (models.Session, error)

	// Login authenticates the owner against the server, persists the
	// resulting session locally, and moves the state to signed-in.
	// Returns [ErrWrongPassword] (wrapped) on bad credentials.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// RestoreSession loads the persisted session from the local store and, if
	// one exists, attaches its token to the adapter and moves the state to
	// signed-in. If none exists the state moves to signed-out and
	// [ErrNoActiveSession] is returned. Must be called once at startup; until
	// it returns the state is loading.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout deletes the persisted session, clears the adapter's token, and
	// moves the state to signed-out.
	Logout(ctx context.Context) error

	// State returns the current identity state.
	State() IdentityState

	// Session returns the active session and true when signed in, or a zero
	// session and false otherwise.
	Session() (models.Session, bool)
}

// ClientDashboardService defines the client-side contract for the owner's
// property list. Reads prefer the server and fall back to the local cache
// when the server is unreachable.
type ClientDashboardService interface {
	// Properties fetches the owner's properties from the server and refreshes
	// the local cache. When the server is unreachable it returns the cached
	// copy instead, with fromCache set to true. Returns an error only when
	// both the server and the cache fail to produce data.
	Properties(ctx context.Context) (properties []models.Property, fromCache bool, err error)

	// CreateProperty creates a new property on the server and returns the
	// stored record, including the generated slug. The trimmed name is
	// validated locally first; a bad name yields [ErrValidation] without a
	// network call.
	CreateProperty(ctx context.Context, name, address, coverImage string) (models.Property, error)

	// UpdateProperty applies a partial update to one property and returns the
	// updated record. The slug never changes. A patched name is validated
	// locally the same way as in CreateProperty.
	UpdateProperty(ctx context.Context, propertyID int64, patch models.PropertyPatch) (models.Property, error)

	// DeleteProperty removes one property together with all of its sections.
	DeleteProperty(ctx context.Context, propertyID int64) error

	// GuestLink returns the absolute shareable URL of the property's
	// published guide.
	GuestLink(property models.Property) string
}

// ClientGuideEditorService defines the client-side contract for editing one
// property's manual. The service holds the working copy of the loaded
// property's sections so that deletes can be applied optimistically and
// rolled back if the server rejects them.
type ClientGuideEditorService interface {
	// Load fetches the sections of propertyID from the server, refreshes the
	// local cache, and makes them the working copy. When the server is
	// unreachable the cached copy is loaded instead, with fromCache set to
	// true.
	Load(ctx context.Context, propertyID int64) (sections []models.Section, fromCache bool, err error)

	// Sections returns the current working copy in stable order.
	Sections() []models.Section

	// SaveSection creates a new section (sectionID zero) or replaces the
	// editable fields of an existing one, updates the working copy, and
	// returns the stored record.
	SaveSection(ctx context.Context, sectionID int64, payload models.SectionPayload) (models.Section, error)

	// DeleteSection removes the section from the working copy immediately,
	// then confirms the delete with the server. If the server call fails the
	// working copy is restored to its exact prior state and the error is
	// returned. At most one delete may be in flight at a time; concurrent
	// requests get [ErrDeleteInFlight].
	DeleteSection(ctx context.Context, sectionID int64) error

	// ResolveGuide fetches the published guest view of a guide by its public
	// slug, exactly as an unauthenticated guest would see it.
	ResolveGuide(ctx context.Context, slug string) (models.Guide, error)
}
