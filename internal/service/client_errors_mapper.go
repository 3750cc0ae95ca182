// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StayKeeper Authors

package service

import (
	"errors"
	"fmt"

	"github.com/staykeeper/staykeeper/internal/adapter"
	"github.com/staykeeper/staykeeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a client
// business error. A 409 conflict means different things at different call
// sites, so callers that can hit one go through mapConflict instead.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNetwork):
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)

	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %v", ErrValidation, err)

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrTokenIsExpiredOrInvalid

	// ownership is never distinguishable from absence on the client either
	case errors.Is(err, adapter.ErrForbidden), errors.Is(err, adapter.ErrNotFound):
		return store.ErrNotFoundOrForbidden

	case errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %v", ErrRemoteFailure, err)
	}

	return fmt.Errorf("%w: %v", ErrRemoteFailure, err)
}

// mapConflict is mapAdapterError with the call site's own meaning for a 409:
// a duplicate email on registration, a slug collision on property creation.
func mapConflict(err, sentinel error) error {
	if errors.Is(err, adapter.ErrConflict) {
		return sentinel
	}
	return mapAdapterError(err)
}
