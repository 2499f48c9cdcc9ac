package repository

import "errors"

// ErrNotFound is returned when a lookup, update or delete targets an unknown ID.
// Callers recover from it locally; it is never fatal.
var ErrNotFound = errors.New("not found")
