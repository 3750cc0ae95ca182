// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StayKeeper Authors

package tui

import (
	"errors"

	"github.com/staykeeper/staykeeper/internal/service"
	"github.com/staykeeper/staykeeper/internal/store"
)

// ErrUserQuit is returned by [TUI.Run] when the owner quits deliberately
// rather than the program failing.
var ErrUserQuit = errors.New("user quit")

// humanizeError turns a service error into a short message fit for the
// error overlay. Unknown errors are shown as-is.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrServerUnavailable):
		return "The server is unreachable. Check your network and try again."
	case errors.Is(err, service.ErrWrongPassword):
		return "Wrong email or password."
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Your session has expired. Please sign in again."
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return "An account with this email already exists."
	case errors.Is(err, store.ErrSlugAlreadyExists):
		return "This name clashes with an existing guide link. Try a slightly different name."
	case errors.Is(err, store.ErrNotFoundOrForbidden):
		return "Not found. It may have been deleted on another device."
	case errors.Is(err, service.ErrDeleteInFlight):
		return "Another delete is still in progress."
	case errors.Is(err, service.ErrValidation):
		return "Invalid input: " + err.Error()
	default:
		return err.Error()
	}
}
