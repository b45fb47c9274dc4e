package app

import "github.com/google/uuid"

// newID returns a random identifier for a session.
func newID() string { return uuid.NewString() }
