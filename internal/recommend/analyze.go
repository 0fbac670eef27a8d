// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package recommend

import "sort"

// maxHighRatedUnexplored caps the highly-rated-genre suggestions in a
// taste analysis.
const maxHighRatedUnexplored = 5

// TopByGenre returns up to topN items carrying the genre tag with a rating
// of at least minRating, sorted by rating descending, ties broken by
// catalog index ascending. Genre comparison is case-sensitive. An unknown
// genre or an empty match set yields an empty slice.
func (s *Snapshot) TopByGenre(genre string, topN int, minRating float64) []Item {
	return s.topByRating(topN, func(item Item) bool {
		return item.Rating >= minRating && hasGenre(item, genre)
	})
}

// TopByLanguage returns up to topN items in the given language, sorted by
// rating descending, ties broken by catalog index ascending.
func (s *Snapshot) TopByLanguage(language string, topN int) []Item {
	return s.topByRating(topN, func(item Item) bool {
		return item.Language == language
	})
}

// topByRating collects matching items and orders them by rating descending
// with the catalog index as tiebreak.
func (s *Snapshot) topByRating(topN int, match func(Item) bool) []Item {
	if topN <= 0 {
		return []Item{}
	}

	indices := make([]int, 0, len(s.items))
	for i, item := range s.items {
		if match(item) {
			indices = append(indices, i)
		}
	}
	sort.SliceStable(indices, func(a, b int) bool {
		if s.items[indices[a]].Rating != s.items[indices[b]].Rating {
			return s.items[indices[a]].Rating > s.items[indices[b]].Rating
		}
		return indices[a] < indices[b]
	})

	if topN < len(indices) {
		indices = indices[:topN]
	}
	results := make([]Item, len(indices))
	for i, idx := range indices {
		results[i] = s.items[idx]
	}
	return results
}

// AnalyzeTaste summarizes how the user's genre preferences relate to the
// fitted catalog: the average rating of each preferred genre present in
// the catalog, the catalog genres the user has not listed, and up to five
// highly rated genres outside the user's preferences.
func (s *Snapshot) AnalyzeTaste(prefs Preferences) TasteAnalysis {
	preferred := make(map[string]struct{}, len(prefs.Genres))
	for _, g := range prefs.Genres {
		preferred[g] = struct{}{}
	}

	genreRatings := make(map[string]float64)
	for _, g := range prefs.Genres {
		var sum float64
		var count int
		for _, item := range s.items {
			if hasGenre(item, g) {
				sum += item.Rating
				count++
			}
		}
		if count > 0 {
			genreRatings[g] = sum / float64(count)
		}
	}

	// genreVocab is already lexicographically sorted.
	unexplored := make([]string, 0, len(s.genreVocab))
	for _, g := range s.genreVocab {
		if _, ok := preferred[g]; !ok {
			unexplored = append(unexplored, g)
		}
	}

	return TasteAnalysis{
		GenreRatings:        genreRatings,
		UnexploredGenres:    unexplored,
		HighRatedUnexplored: s.highRatedUnexplored(preferred),
	}
}

// highRatedUnexplored walks highly rated items strongest-first and
// collects the first unexplored genre of each, deduplicated, capped at
// maxHighRatedUnexplored.
func (s *Snapshot) highRatedUnexplored(preferred map[string]struct{}) []GenreRating {
	order := make([]int, 0, len(s.items))
	for i, item := range s.items {
		if item.Rating >= highlyRatedThreshold {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		if s.items[order[a]].Rating != s.items[order[b]].Rating {
			return s.items[order[a]].Rating > s.items[order[b]].Rating
		}
		return order[a] < order[b]
	})

	taken := make(map[string]struct{})
	suggestions := make([]GenreRating, 0, maxHighRatedUnexplored)
	for _, idx := range order {
		if len(suggestions) == maxHighRatedUnexplored {
			break
		}
		for _, g := range s.items[idx].Genres {
			if _, ok := preferred[g]; ok {
				continue
			}
			if _, ok := taken[g]; ok {
				continue
			}
			taken[g] = struct{}{}
			suggestions = append(suggestions, GenreRating{Genre: g, Rating: s.items[idx].Rating})
			break
		}
	}
	return suggestions
}

// hasGenre reports whether the item carries the genre tag (case-sensitive).
func hasGenre(item Item, genre string) bool {
	for _, g := range item.Genres {
		if g == genre {
			return true
		}
	}
	return false
}
