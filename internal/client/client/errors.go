package client

import "errors"

// Fetch failures are classified into these sentinels. Their messages are
// shown to the user as-is.
var (
	ErrUnreachable       = errors.New("server cannot be reached")
	ErrMalformedResponse = errors.New("malformed server response")
	ErrServerError       = errors.New("unexpected server error")
)
