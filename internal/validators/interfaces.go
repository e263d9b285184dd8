// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request input before it reaches the store.
//
// A [Validator] accepts any supported value and, optionally, a list of field
// names restricting which fields are checked. Services wrap the returned
// errors into their own invalid-data kind.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
