package repositories

import "errors"

// ErrNotFound signals that a referenced identity is absent from the store.
// Callers detect it with errors.Is; handlers map it to a 404 outcome.
var ErrNotFound = errors.New("record not found")
