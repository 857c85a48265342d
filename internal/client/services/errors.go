package services

import "errors"

// ErrNoCachedData is reported when the local store holds no users.
var ErrNoCachedData = errors.New("no cached data")
