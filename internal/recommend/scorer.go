// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package recommend

import "strings"

// Fixed preference weights. Genre overlap is the strongest taste signal;
// actor and director matches are secondary and co-equal.
const (
	genreOverlapWeight  = 2.0
	actorOverlapWeight  = 1.5
	directorMatchWeight = 1.5
)

// prefSets is a query-scoped view of Preferences with the case-insensitive
// fields pre-lowered, so raw scoring is a set lookup per attribute.
type prefSets struct {
	genres    map[string]struct{}
	actors    map[string]struct{}
	directors map[string]struct{}
}

// newPrefSets builds lookup sets from the user's preferences. Genre
// comparison stays case-sensitive; actors and directors are lowercased.
func newPrefSets(prefs Preferences) prefSets {
	p := prefSets{
		genres:    make(map[string]struct{}, len(prefs.Genres)),
		actors:    make(map[string]struct{}, len(prefs.Actors)),
		directors: make(map[string]struct{}, len(prefs.Directors)),
	}
	for _, g := range prefs.Genres {
		p.genres[g] = struct{}{}
	}
	for _, a := range prefs.Actors {
		p.actors[strings.ToLower(a)] = struct{}{}
	}
	for _, d := range prefs.Directors {
		p.directors[strings.ToLower(d)] = struct{}{}
	}
	return p
}

// rawScore computes the unnormalized preference-match score for one item:
//
//	raw = 2.0 * |genre overlap|
//	    + 1.5 * |actor overlap|        (case-insensitive)
//	    + 1.5 * [any director match]   (case-insensitive)
//
// An item with no overlapping signal scores 0. Normalization across the
// query's candidate set is the ranker's job, so raw scores are comparable
// only within one query.
func (p prefSets) rawScore(item Item) float64 {
	var score float64
	for _, g := range item.Genres {
		if _, ok := p.genres[g]; ok {
			score += genreOverlapWeight
		}
	}
	for _, a := range item.Actors {
		if _, ok := p.actors[strings.ToLower(a)]; ok {
			score += actorOverlapWeight
		}
	}
	for _, d := range item.Directors {
		if _, ok := p.directors[strings.ToLower(d)]; ok {
			score += directorMatchWeight
			break
		}
	}
	return score
}

// genreOverlap returns the item genres present in the preferences, in item
// order.
func (p prefSets) genreOverlap(item Item) []string {
	var overlap []string
	for _, g := range item.Genres {
		if _, ok := p.genres[g]; ok {
			overlap = append(overlap, g)
		}
	}
	return overlap
}

// actorOverlap returns the item actors present in the preferences, in item
// order and original casing.
func (p prefSets) actorOverlap(item Item) []string {
	var overlap []string
	for _, a := range item.Actors {
		if _, ok := p.actors[strings.ToLower(a)]; ok {
			overlap = append(overlap, a)
		}
	}
	return overlap
}

// directorMatch returns the first matching director, or "" when none of
// the item's directors is preferred.
func (p prefSets) directorMatch(item Item) string {
	for _, d := range item.Directors {
		if _, ok := p.directors[strings.ToLower(d)]; ok {
			return d
		}
	}
	return ""
}
