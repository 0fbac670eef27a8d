// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package recommend

import "errors"

// Sentinel errors for the recommendation engine.
//
// An empty result is deliberately NOT an error: filtering that matches
// nothing returns an empty slice, and callers surface that to users as a
// recoverable "no matches" condition.
var (
	// ErrNotFitted indicates a query arrived before any successful Fit.
	ErrNotFitted = errors.New("engine not fitted: call Fit first")

	// ErrNotFound indicates the referenced item is absent from the
	// current snapshot.
	ErrNotFound = errors.New("item not found in catalog")

	// ErrEmptyCatalog indicates Fit was given zero items.
	ErrEmptyCatalog = errors.New("catalog is empty")
)
