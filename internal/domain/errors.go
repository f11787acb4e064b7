package domain

import "errors"

// ErrNotFound signals a lookup for a ticket id that is not in the store.
var ErrNotFound = errors.New("ticket not found")
