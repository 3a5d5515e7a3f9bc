package adapter

import "errors"

// Protocol error taxonomy. A nil error is success.
var (
	// ErrTagMismatch means the response tag did not verify: corruption or a
	// compromised channel. Not retryable by resending the same request.
	ErrTagMismatch = errors.New("tag mismatch")

	// ErrValueMismatch means the server rejected the counter. Callers should
	// resync with GetValue.
	ErrValueMismatch = errors.New("value mismatch")

	// ErrResponseDeserialization means the response body could not be decoded.
	ErrResponseDeserialization = errors.New("response deserialization failed")

	// ErrServerError covers transport failures and non-200 responses.
	ErrServerError = errors.New("server error")

	// ErrLibRequest means the caller's document lacks a required field. It is
	// detected before any network activity.
	ErrLibRequest = errors.New("malformed library request")
)
