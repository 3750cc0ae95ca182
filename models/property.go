package models

import "time"

// Property represents one guest manual: a rental home whose owner authors
// categorized instructions for guests. Guests reach the published manual
// through the property's public slug; owners manage it by internal ID.
type Property struct {
	// ID is the internal unique identifier, assigned by the database.
	ID int64 `json:"id"`

	// OwnerID references the owning [User]. Set at creation, immutable.
	// Every owner-facing mutation is scoped by this field in addition to ID.
	OwnerID int64 `json:"owner_id"`

	// Name is the display name of the property (2–100 characters after
	// trimming).
	Name string `json:"name"`

	// Slug is the globally unique, URL-safe public identifier. Generated
	// once at creation from the name plus a random suffix; immutable. It is
	// the only identifier usable by the unauthenticated guest path.
	Slug string `json:"slug"`

	// Address is the optional street address shown to guests.
	Address string `json:"address"`

	// CoverImage is an optional URL of the hero image.
	CoverImage string `json:"cover_image"`

	// CreatedAt is assigned by the database at insert time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Property model.
func (p Property) TableName() string {
	return "properties"
}

// PropertyPatch describes a partial update of the owner-editable property
// fields. Nil fields are left untouched; Slug and OwnerID are never
// updatable.
type PropertyPatch struct {
	Name       *string `json:"name,omitempty"`
	Address    *string `json:"address,omitempty"`
	CoverImage *string `json:"cover_image,omitempty"`
}

// IsEmpty reports whether the patch carries no field changes at all.
func (p PropertyPatch) IsEmpty() bool {
	return p.Name == nil && p.Address == nil && p.CoverImage == nil
}
