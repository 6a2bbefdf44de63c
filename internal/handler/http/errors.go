// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authorization middleware when reading the
// "Authorization" header. They are logged only; clients always receive the
// same 401 body.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when the header holds only a "Bearer" scheme
	// or whitespace.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
