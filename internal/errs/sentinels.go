// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrBadRequest indicates a missing or malformed required identifier.
	ErrBadRequest = errors.New("bad request")

	// ErrDecode indicates malformed multipart or JSON structure in a request.
	ErrDecode = errors.New("decode failure")

	// ErrStorageUnavailable indicates the connectivity probe against the
	// database failed.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
