package db

import "errors"

// ErrNotFound reports an update or delete that referenced an absent id. It is
// surfaced to the caller and never retried.
var ErrNotFound = errors.New("record not found")
