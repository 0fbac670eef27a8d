// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package recommend

import "sort"

// Rank scores the catalog against the user's preferences and returns up to
// topN results ordered by combined score descending, ties broken by catalog
// index ascending.
//
// The pipeline:
//
//  1. Filter by prefs.Kind and prefs.Language (exact match) when set. An
//     empty filtered set yields an empty slice, not an error.
//  2. Compute raw preference scores over the filtered set.
//  3. Min-max normalize preference scores to [0,1]. When every raw score
//     is equal (including all-zero), the normalized value is 0 for every
//     item.
//  4. Min-max normalize ratings to [0,1] the same way, except an all-equal
//     rating set normalizes to 1 ("uniformly excellent" is distinct from
//     "uniformly unmatched").
//  5. combined = weights.Rating*quality + weights.Preference*preference.
//     Weights are applied verbatim; they need not sum to 1.
func (s *Snapshot) Rank(prefs Preferences, weights Weights, topN int) []RankedResult {
	candidates := s.filter(prefs)
	if len(candidates) == 0 || topN <= 0 {
		return []RankedResult{}
	}

	sets := newPrefSets(prefs)

	rawPrefs := make([]float64, len(candidates))
	ratings := make([]float64, len(candidates))
	for i, idx := range candidates {
		rawPrefs[i] = sets.rawScore(s.items[idx])
		ratings[i] = s.items[idx].Rating
	}

	normPrefs := minMaxNormalize(rawPrefs, 0)
	normQuality := minMaxNormalize(ratings, 1)

	order := make([]int, len(candidates))
	combined := make([]float64, len(candidates))
	for i := range candidates {
		order[i] = i
		combined[i] = weights.Rating*normQuality[i] + weights.Preference*normPrefs[i]
	}
	sort.SliceStable(order, func(a, b int) bool {
		if combined[order[a]] != combined[order[b]] {
			return combined[order[a]] > combined[order[b]]
		}
		return candidates[order[a]] < candidates[order[b]]
	})

	if topN < len(order) {
		order = order[:topN]
	}

	results := make([]RankedResult, len(order))
	for i, o := range order {
		item := s.items[candidates[o]]
		results[i] = RankedResult{
			Item:            item,
			Combined:        combined[o],
			PreferenceScore: normPrefs[o],
			QualityScore:    normQuality[o],
			Explanation:     explain(item, sets),
		}
	}
	return results
}

// filter returns the catalog indices passing the optional kind and
// language filters, in catalog order.
func (s *Snapshot) filter(prefs Preferences) []int {
	indices := make([]int, 0, len(s.items))
	for i, item := range s.items {
		if prefs.Kind != "" && item.Kind != prefs.Kind {
			continue
		}
		if prefs.Language != "" && item.Language != prefs.Language {
			continue
		}
		indices = append(indices, i)
	}
	return indices
}

// minMaxNormalize scales values to [0,1]. When all values are equal the
// spread is zero and every entry becomes uniform instead; normalization
// never divides by zero.
func minMaxNormalize(values []float64, uniform float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	out := make([]float64, len(values))
	if maxV == minV {
		for i := range out {
			out[i] = uniform
		}
		return out
	}
	spread := maxV - minV
	for i, v := range values {
		out[i] = (v - minV) / spread
	}
	return out
}
