// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input validation rules of fitsync.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures,
//     with optional field-level scoping.
//   - MutationValidator guards the local store: a mutation that fails here is
//     rejected before anything is written.
//   - BinValidator guards the bin server against blank, non-JSON and
//     oversized documents.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
