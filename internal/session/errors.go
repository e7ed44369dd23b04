package session

import "errors"

var (
	// ErrNoToken indicates no credential is stored
	ErrNoToken = errors.New("not logged in")

	// ErrMalformedToken indicates the stored credential is not a decodable JWT
	ErrMalformedToken = errors.New("stored token is not a valid JWT")
)
