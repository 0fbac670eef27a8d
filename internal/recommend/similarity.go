// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package recommend

import "sort"

// buildSimilarityMatrix computes pairwise cosine similarity over the
// L2-normalized text feature rows, so sim(i,j) is the dot product of rows
// i and j.
//
// A zero vector (an item with no extractable text) has similarity 0 to
// every other item. The diagonal is set to 1 by convention regardless,
// and is excluded from similar-item results. The matrix is symmetric;
// only the upper triangle is computed.
func buildSimilarityMatrix(textMatrix [][]float64) [][]float64 {
	n := len(textMatrix)
	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
		sim[i][i] = 1
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := dot(textMatrix[i], textMatrix[j])
			sim[i][j] = s
			sim[j][i] = s
		}
	}
	return sim
}

// dot returns the dot product of two equal-length vectors.
func dot(a, b []float64) float64 {
	var sum float64
	for i, v := range a {
		sum += v * b[i]
	}
	return sum
}

// SimilarTo returns up to topN items most similar to the titled item,
// strictly descending by cosine similarity over the text feature space,
// ties broken by catalog index ascending. The queried item itself is
// excluded. Returns ErrNotFound when the title is absent from the fitted
// catalog.
func (s *Snapshot) SimilarTo(title string, topN int) ([]SimilarItem, error) {
	idx, ok := s.titleIndex[title]
	if !ok {
		return nil, ErrNotFound
	}
	if topN <= 0 {
		return []SimilarItem{}, nil
	}

	row := s.simMatrix[idx]
	order := make([]int, 0, len(s.items)-1)
	for j := range s.items {
		if j != idx {
			order = append(order, j)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		if row[order[a]] != row[order[b]] {
			return row[order[a]] > row[order[b]]
		}
		return order[a] < order[b]
	})

	if topN < len(order) {
		order = order[:topN]
	}

	results := make([]SimilarItem, len(order))
	for i, j := range order {
		results[i] = SimilarItem{Item: s.items[j], Score: row[j]}
	}
	return results, nil
}
