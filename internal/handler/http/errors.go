// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the device request pipeline. Callers can match against
// them with [errors.Is].
var (
	// ErrInvalidBody is returned when the body is not a protocol document or
	// lacks the identity header.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrTagInvalid is returned when the request tag is missing or does not
	// verify against the device key.
	ErrTagInvalid = errors.New("request tag does not verify")

	// ErrValueInvalid is returned when the request counter differs from the
	// stored one.
	ErrValueInvalid = errors.New("request value does not match")

	// ErrUnknownErrorCode is returned by the error semantic endpoint for a
	// code it has no description for.
	ErrUnknownErrorCode = errors.New("unknown error code")
)
