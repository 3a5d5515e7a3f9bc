// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of protocol documents.
//
// The device adapter validates outgoing documents before any network
// activity (a state push without a "state" field fails fast), and the
// ingest simulator validates incoming ones with the same rules.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and restricts validation to
	// the named fields.
	Validate(context.Context, any, ...string) error
}
