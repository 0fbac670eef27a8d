// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package recommend

import (
	"fmt"
	"strings"
)

// Quality thresholds for explanation clauses.
const (
	highlyRatedThreshold = 8.0
	wellRatedThreshold   = 7.0
)

// explanationSeparator joins individual justification clauses.
const explanationSeparator = " | "

// explain derives a human-readable justification from the same overlap and
// quality signals used for scoring. Clauses appear in a fixed order: genre
// overlap, cast overlap, director match, then quality. When nothing
// applies, a single fallback clause is emitted. Deterministic for a given
// item and preference set.
func explain(item Item, sets prefSets) string {
	var clauses []string

	if overlap := sets.genreOverlap(item); len(overlap) > 0 {
		clauses = append(clauses,
			fmt.Sprintf("Matches your preferred genres: %s", strings.Join(overlap, ", ")))
	}

	if overlap := sets.actorOverlap(item); len(overlap) > 0 {
		clauses = append(clauses,
			fmt.Sprintf("Features your favorite actors: %s", strings.Join(overlap, ", ")))
	}

	if director := sets.directorMatch(item); director != "" {
		clauses = append(clauses,
			fmt.Sprintf("Directed by your favorite director: %s", director))
	}

	switch {
	case item.Rating >= highlyRatedThreshold:
		clauses = append(clauses,
			fmt.Sprintf("Highly rated with %.1f/10", item.Rating))
	case item.Rating >= wellRatedThreshold:
		clauses = append(clauses,
			fmt.Sprintf("Well-rated with %.1f/10", item.Rating))
	}

	if len(clauses) == 0 {
		return "Recommended based on overall popularity and quality"
	}
	return strings.Join(clauses, explanationSeparator)
}
