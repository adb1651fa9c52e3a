package domain

import "errors"

// Sentinel errors for the login handoff. Callers match them with errors.Is.
var (
	// ErrLoginRejected means the backend answered but did not log the user in.
	ErrLoginRejected = errors.New("backend rejected the login")

	// ErrExchangeFailed covers transport errors, timeouts, non-2xx statuses and
	// undecodable responses from the backend exchange endpoint.
	ErrExchangeFailed = errors.New("authorization code exchange failed")

	// ErrUnknownLoginState is returned when a provider callback carries a state
	// that was never issued, has expired, or was already consumed.
	ErrUnknownLoginState = errors.New("unknown or expired login state")

	// ErrStateMismatch is returned when the callback state does not match the
	// one stored in the visitor's session.
	ErrStateMismatch = errors.New("login state does not match session")
)
