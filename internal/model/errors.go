package model

import "errors"

var (
	// ErrConcurrentUpdate is returned by versioned saves when the stored
	// counter no longer matches the one captured at load time. Callers must
	// reload and retry, the repositories never retry on their own.
	ErrConcurrentUpdate = errors.New("entity modified concurrently")

	// ErrDuplicateInstance is returned when storing an instance for an
	// account that already owns one. The unique index raises it even when
	// two creations race past the existence check.
	ErrDuplicateInstance = errors.New("account already has an instance")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInstanceNotFound   = errors.New("instance not found")
	ErrBindingNotFound    = errors.New("storage binding not found")
	ErrInvitationNotFound = errors.New("invitation not found")
)
