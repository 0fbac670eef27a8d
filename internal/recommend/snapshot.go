// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package recommend

import (
	"fmt"
	"time"
)

// Snapshot is an immutable bundle of one fitted catalog and its derived
// feature and similarity matrices. Queries are pure reads and safe for
// concurrent use; a re-fit produces a whole new Snapshot rather than
// mutating an existing one.
//
// Row i of every matrix corresponds to items[i]; the catalog index is the
// stable row identity for the lifetime of the snapshot. Mixing matrices
// across snapshots is invalid.
type Snapshot struct {
	items      []Item
	titleIndex map[string]int

	genreVocab  []string
	genreMatrix [][]float64

	textVocab  []string
	textMatrix [][]float64

	simMatrix [][]float64

	version  int64
	fittedAt time.Time
}

// newSnapshot builds a complete snapshot from a normalized catalog.
// It either fully succeeds, with all matrices built and consistent, or
// fails with no partial state.
func newSnapshot(items []Item, vocabCap int, version int64) (*Snapshot, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	titleIndex := make(map[string]int, len(items))
	for i, item := range items {
		if prev, ok := titleIndex[item.Title]; ok {
			return nil, fmt.Errorf("duplicate title %q at catalog indices %d and %d", item.Title, prev, i)
		}
		titleIndex[item.Title] = i
	}

	genreVocab, genreMatrix := fitGenres(items)
	textVocab, textMatrix := fitText(items, vocabCap)

	return &Snapshot{
		items:       items,
		titleIndex:  titleIndex,
		genreVocab:  genreVocab,
		genreMatrix: genreMatrix,
		textVocab:   textVocab,
		textMatrix:  textMatrix,
		simMatrix:   buildSimilarityMatrix(textMatrix),
		version:     version,
		fittedAt:    time.Now(),
	}, nil
}

// Size returns the number of catalog items in the snapshot.
func (s *Snapshot) Size() int {
	return len(s.items)
}

// Items returns the fitted catalog in index order. The returned slice is
// shared; callers must treat it as read-only.
func (s *Snapshot) Items() []Item {
	return s.items
}

// Item returns the catalog item with the given title.
func (s *Snapshot) Item(title string) (Item, error) {
	idx, ok := s.titleIndex[title]
	if !ok {
		return Item{}, ErrNotFound
	}
	return s.items[idx], nil
}

// GenreVocabulary returns the distinct genre tags of the fitted catalog
// in lexicographic order. The returned slice is shared; callers must
// treat it as read-only.
func (s *Snapshot) GenreVocabulary() []string {
	return s.genreVocab
}

// Version is the fit counter the snapshot was produced under, starting
// at 1 for the engine's first successful fit.
func (s *Snapshot) Version() int64 {
	return s.version
}

// FittedAt is the time the snapshot was built.
func (s *Snapshot) FittedAt() time.Time {
	return s.fittedAt
}
