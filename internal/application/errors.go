package application

import "errors"

// Expected failure conditions, surfaced to callers as explicit branches. The
// error text doubles as the response message, so it matches the wire contract
// verbatim.
var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrEmailTaken         = errors.New("Email is already in use")
	ErrInvalidEventID     = errors.New("Invalid event id")
	ErrEventNotFound      = errors.New("Event not found")
	ErrParticipantNotFound = errors.New("Participant not found")
)
