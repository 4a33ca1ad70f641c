// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks settings records against the rules the host
// project's generators rely on (hex colours, non-blank names, theme slugs).
//
// A Validator is injected into the store and the installer service; both
// call Validate before anything is written to disk, optionally scoping the
// check to a subset of persisted keys.
package validators

import "context"

// Validator validates an arbitrary input value.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific persisted keys.
	Validate(context.Context, any, ...string) error
}
