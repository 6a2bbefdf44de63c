// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the stores.
//
// Rules live in `validate` struct tags on the request types in package
// models. A failed check yields a *ValidationError listing every violated
// field in a readable form; services pass it through and the HTTP layer
// answers 400 with those messages.
package validators

import "context"

// Validator checks obj against its tag rules. When fields are given only
// those struct fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
