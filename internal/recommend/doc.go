// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

// Package recommend implements the scoring and ranking engine at the heart
// of Reeltaste.
//
// The engine turns a sparse, heterogeneous media catalog (genre tags, cast,
// directors, free-text synopsis) into comparable numeric feature spaces and
// answers four kinds of queries over them:
//
//   - Rank: blend a user-preference match score with an intrinsic quality
//     score under caller-supplied weights and return a ranked, explained
//     result list.
//   - SimilarTo: find the items closest to a given item in a TF-IDF text
//     feature space, by cosine similarity.
//   - TopByGenre / TopByLanguage: quality-ordered slices of the catalog
//     filtered by a single attribute.
//   - AnalyzeTaste: summarize how a user's stated genre preferences relate
//     to the fitted catalog.
//
// One call to Fit produces one immutable Snapshot holding the catalog, the
// genre and text feature matrices, and the pairwise similarity matrix. All
// queries are pure reads over a Snapshot and may be served concurrently.
// A re-fit builds a complete new Snapshot and swaps it in atomically; a
// half-built snapshot is never visible (see Engine).
//
// This package has no dependencies on other internal packages. Callers hand
// it a fully normalized catalog (see internal/catalog) and nothing else: no
// network, filesystem, or rendering concern belongs here.
package recommend
