package models

import "time"

// Session is the locally persisted sign-in state of the owner client. It
// lets the app restore the signed-in identity on startup without asking for
// credentials again.
type Session struct {
	UserID  int64     `json:"user_id"`
	Email   string    `json:"email"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}
