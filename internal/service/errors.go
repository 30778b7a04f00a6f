package service

import "errors"

// Domain failures. The HTTP boundary translates these into not-found
// responses; the services themselves never talk to the transport.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrMachineNotFound = errors.New("machine not found")
)
