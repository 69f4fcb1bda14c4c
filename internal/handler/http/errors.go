// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// key headers. Callers can match against them with [errors.Is].
var (
	// ErrEmptyMasterKey is returned when neither X-Master-Key nor
	// X-Access-Key is present.
	ErrEmptyMasterKey = errors.New("empty `X-Master-Key` header")

	// ErrInvalidMasterKey is returned when the key does not match any of the
	// configured master keys.
	ErrInvalidMasterKey = errors.New("invalid `X-Master-Key` header")
)
