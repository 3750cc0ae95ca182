package service

import "errors"

// Client-side business errors. The owner client maps every transport failure
// into one of four families before it reaches the UI: validation
// ([ErrValidation] wrapped), ownership/existence ([store.ErrNotFoundOrForbidden]),
// connectivity ([ErrServerUnavailable]), and everything else
// ([ErrRemoteFailure]).
var (
	// ErrServerUnavailable indicates the backend could not be reached at all.
	// The UI keeps current state and offers cached data where available.
	ErrServerUnavailable = errors.New("server unavailable")

	// ErrRemoteFailure indicates the backend responded with an unexpected
	// failure that is not the caller's fault.
	ErrRemoteFailure = errors.New("remote failure")

	// ErrNoActiveSession is returned when session restore finds no persisted
	// sign-in state on the device.
	ErrNoActiveSession = errors.New("no active session")

	// ErrDeleteInFlight is returned when a section delete is requested while
	// a previous delete of the same editor is still waiting for the server.
	ErrDeleteInFlight = errors.New("delete already in flight")

	// ErrRegisterOnServer wraps failures of the registration round trip.
	ErrRegisterOnServer = errors.New("registration on server failed")

	// ErrLoginOnServer wraps failures of the login round trip.
	ErrLoginOnServer = errors.New("login on server failed")
)
