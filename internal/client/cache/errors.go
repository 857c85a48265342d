package cache

import "errors"

// ErrStorageWriteFailed marks a write the local store could not complete.
// It is logged, never returned to callers.
var ErrStorageWriteFailed = errors.New("storage write failed")
