// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// minTokenLength drops single-character fragments during tokenization.
const minTokenLength = 2

// fitGenres builds the multi-hot genre feature space for a catalog.
//
// The vocabulary is the sorted (lexicographic) union of every genre tag
// observed across the catalog, so two fits on identical input produce
// identical column ordering. Row i corresponds to items[i]; an entry is 1
// when the item carries that genre tag.
func fitGenres(items []Item) (vocab []string, matrix [][]float64) {
	seen := make(map[string]struct{})
	for _, item := range items {
		for _, g := range item.Genres {
			seen[g] = struct{}{}
		}
	}

	vocab = make([]string, 0, len(seen))
	for g := range seen {
		vocab = append(vocab, g)
	}
	sort.Strings(vocab)

	column := make(map[string]int, len(vocab))
	for i, g := range vocab {
		column[g] = i
	}

	matrix = make([][]float64, len(items))
	for i, item := range items {
		row := make([]float64, len(vocab))
		for _, g := range item.Genres {
			row[column[g]] = 1
		}
		matrix[i] = row
	}
	return vocab, matrix
}

// fitText builds the TF-IDF weighted text feature space for a catalog.
//
// Each item contributes one document: the concatenation of its title,
// directors, cast, synopsis, country, kind, and language. The vocabulary is
// capped at vocabCap terms, selected by global term frequency after
// stopword removal (ties broken lexicographically), and the final column
// order is lexicographic so the encoding is deterministic.
//
// Term weights use smoothed inverse document frequency,
//
//	idf(t) = ln((1+N) / (1+df(t))) + 1
//
// and each row is L2-normalized, which makes cosine similarity between
// rows a plain dot product. An item with no extractable text (empty
// synopsis and all-stopword fields) yields a zero row, not an error.
func fitText(items []Item, vocabCap int) (vocab []string, matrix [][]float64) {
	docs := make([][]string, len(items))
	globalCount := make(map[string]int)
	for i, item := range items {
		tokens := tokenize(textSurface(item))
		docs[i] = tokens
		for _, t := range tokens {
			globalCount[t]++
		}
	}

	vocab = selectVocabulary(globalCount, vocabCap)
	column := make(map[string]int, len(vocab))
	for i, t := range vocab {
		column[t] = i
	}

	// Document frequency over the selected vocabulary.
	df := make([]int, len(vocab))
	for _, tokens := range docs {
		inDoc := make(map[int]struct{})
		for _, t := range tokens {
			if col, ok := column[t]; ok {
				inDoc[col] = struct{}{}
			}
		}
		for col := range inDoc {
			df[col]++
		}
	}

	n := float64(len(items))
	idf := make([]float64, len(vocab))
	for col, d := range df {
		idf[col] = math.Log((1+n)/(1+float64(d))) + 1
	}

	matrix = make([][]float64, len(items))
	for i, tokens := range docs {
		row := make([]float64, len(vocab))
		for _, t := range tokens {
			if col, ok := column[t]; ok {
				row[col]++
			}
		}
		for col := range row {
			row[col] *= idf[col]
		}
		normalizeRow(row)
		matrix[i] = row
	}
	return vocab, matrix
}

// selectVocabulary picks the top vocabCap terms by global frequency, ties
// broken lexicographically, and returns them in lexicographic order.
func selectVocabulary(counts map[string]int, vocabCap int) []string {
	terms := make([]string, 0, len(counts))
	for t := range counts {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if vocabCap > 0 && len(terms) > vocabCap {
		terms = terms[:vocabCap]
	}
	sort.Strings(terms)
	return terms
}

// textSurface concatenates an item's descriptive fields into the document
// used for text feature extraction.
func textSurface(item Item) string {
	parts := make([]string, 0, 7+len(item.Directors)+len(item.Actors))
	parts = append(parts, item.Title)
	parts = append(parts, item.Directors...)
	parts = append(parts, item.Actors...)
	parts = append(parts, item.Description, item.Country, item.Kind, item.Language)
	return strings.Join(parts, " ")
}

// tokenize lowercases the text, splits on non-alphanumeric runes, and
// drops short tokens and stopwords.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if len(f) < minTokenLength || isStopword(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// normalizeRow scales the vector to unit L2 norm in place. Zero vectors
// are left untouched.
func normalizeRow(row []float64) {
	var sum float64
	for _, v := range row {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range row {
		row[i] /= norm
	}
}
