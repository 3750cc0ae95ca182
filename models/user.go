package models

import "time"

// User represents a property owner account used for authentication and
// authorization. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the owner.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique login identifier of the owner.
	Email string `json:"email"`

	// Password carries the plaintext password on register/login requests
	// only. It is never stored and never included in responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash persisted for the account.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
