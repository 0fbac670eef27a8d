// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package recommend

// Kind values for catalog items. The engine treats kind as an opaque exact
// match; validation of the controlled vocabulary is the caller's concern.
const (
	KindMovie  = "movie"
	KindSeries = "series"
)

// Item is a single catalog entry, immutable after load.
//
// Genres, Actors and Directors must already be normalized: trimmed,
// deduplicated, and free of empty tokens (see internal/catalog). Title is
// the unique identifier within a fitted snapshot. Rating is the externally
// supplied quality score on a 0-10 scale. Runtime, Country and PosterURL
// are display fields the engine passes through untouched.
type Item struct {
	// Title is the unique content identifier within a snapshot.
	Title string `json:"title"`

	// Kind is the content type (movie, series).
	Kind string `json:"kind"`

	// Year is the release year.
	Year int `json:"year"`

	// Genres is the ordered, deduplicated genre tag list.
	Genres []string `json:"genres"`

	// Actors is the cast name list.
	Actors []string `json:"actors"`

	// Directors is the director name list.
	Directors []string `json:"directors"`

	// Language is the primary language tag.
	Language string `json:"language"`

	// Rating is the intrinsic quality score (0-10).
	Rating float64 `json:"rating"`

	// Description is the free-text synopsis.
	Description string `json:"description"`

	// Runtime is a display-only duration string (e.g. "143 min").
	Runtime string `json:"runtime,omitempty"`

	// Country is a display-only production country.
	Country string `json:"country,omitempty"`

	// PosterURL is a display-only artwork reference.
	PosterURL string `json:"poster_url,omitempty"`
}

// Preferences is a user's stated taste profile.
//
// Genre comparison is case-sensitive (genres come from a controlled
// vocabulary); actor and director comparison is case-insensitive. Kind and
// Language are optional exact-match filters; empty means no filter.
type Preferences struct {
	// Genres is the preferred genre set.
	Genres []string `json:"genres,omitempty"`

	// Actors is the preferred actor set.
	Actors []string `json:"actors,omitempty"`

	// Directors is the preferred director set.
	Directors []string `json:"directors,omitempty"`

	// Kind restricts results to one content kind when non-empty.
	Kind string `json:"kind,omitempty"`

	// Language restricts results to one language when non-empty.
	Language string `json:"language,omitempty"`
}

// Weights controls the blend of quality and preference-match in the final
// ranking. The engine applies the weights verbatim; it does not require
// them to sum to 1 (any normalize-to-1 policy belongs to the caller).
type Weights struct {
	// Rating weights the normalized intrinsic quality score.
	Rating float64 `json:"rating_weight"`

	// Preference weights the normalized preference-match score.
	Preference float64 `json:"preference_weight"`
}

// RankedResult is one entry of a ranking query, constructed fresh per query
// and never mutated after return.
type RankedResult struct {
	// Item is the ranked catalog entry.
	Item Item `json:"item"`

	// Combined is the weighted blend of QualityScore and PreferenceScore,
	// in [0,1] when the supplied weights sum to at most 1.
	Combined float64 `json:"combined_score"`

	// PreferenceScore is the preference-match component, min-max
	// normalized to [0,1] across the query's filtered candidate set.
	PreferenceScore float64 `json:"preference_score"`

	// QualityScore is the quality component, min-max normalized to [0,1]
	// across the query's filtered candidate set.
	QualityScore float64 `json:"quality_score"`

	// Explanation is a human-readable justification derived from the same
	// overlap and quality signals used for scoring.
	Explanation string `json:"explanation"`
}

// SimilarItem is one entry of a similarity query.
type SimilarItem struct {
	// Item is the similar catalog entry.
	Item Item `json:"item"`

	// Score is the cosine similarity to the queried item, in [0,1].
	Score float64 `json:"similarity_score"`
}

// GenreRating pairs a genre tag with a rating observed for it.
type GenreRating struct {
	Genre  string  `json:"genre"`
	Rating float64 `json:"rating"`
}

// TasteAnalysis summarizes how a user's genre preferences relate to the
// fitted catalog.
type TasteAnalysis struct {
	// GenreRatings maps each preferred genre present in the catalog to the
	// average rating of items carrying it.
	GenreRatings map[string]float64 `json:"genre_ratings"`

	// UnexploredGenres lists catalog genres absent from the user's
	// preferences, in vocabulary (lexicographic) order.
	UnexploredGenres []string `json:"unexplored_genres"`

	// HighRatedUnexplored lists up to five highly rated genres the user
	// has not stated a preference for, strongest first.
	HighRatedUnexplored []GenreRating `json:"high_rated_unexplored"`
}
