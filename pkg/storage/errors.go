package storage

import "errors"

// ErrNoActiveProfile is returned by mutating operations that need a profile
// scope when no profile is currently active.
var ErrNoActiveProfile = errors.New("no active profile")

// ErrNotFound is returned when an update or delete targets an id that does
// not exist in its collection.
var ErrNotFound = errors.New("not found")
