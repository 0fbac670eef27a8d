// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package catalog

import (
	"reflect"
	"testing"

	"github.com/tomtom215/reeltaste/internal/recommend"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "splits and trims",
			value: "Action, Adventure ,Sci-Fi",
			want:  []string{"Action", "Adventure", "Sci-Fi"},
		},
		{
			name:  "deduplicates preserving first occurrence",
			value: "Drama,Crime,Drama",
			want:  []string{"Drama", "Crime"},
		},
		{
			name:  "drops empty tokens",
			value: "Action,,  ,Drama,",
			want:  []string{"Action", "Drama"},
		},
		{
			name:  "empty input yields empty slice",
			value: "",
			want:  []string{},
		},
		{
			name:  "blank input yields empty slice",
			value: "   ",
			want:  []string{},
		},
		{
			name:  "single value",
			value: "Comedy",
			want:  []string{"Comedy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.value)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %#v, want %#v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	raw := Raw{
		Title:       "  The Dark Knight ",
		Year:        2008,
		Kind:        "movie",
		Genre:       "Action,Crime,Drama",
		Language:    " English",
		Director:    "Christopher Nolan",
		Actors:      "Christian Bale, Heath Ledger ,Aaron Eckhart",
		Rating:      9.0,
		Description: " Batman faces the Joker. ",
		PosterURL:   "https://example.com/tdk.jpg",
		Duration:    "152 min",
		Country:     "USA",
	}

	got := Normalize(raw)
	want := recommend.Item{
		Title:       "The Dark Knight",
		Kind:        recommend.KindMovie,
		Year:        2008,
		Genres:      []string{"Action", "Crime", "Drama"},
		Actors:      []string{"Christian Bale", "Heath Ledger", "Aaron Eckhart"},
		Directors:   []string{"Christopher Nolan"},
		Language:    "English",
		Rating:      9.0,
		Description: "Batman faces the Joker.",
		Runtime:     "152 min",
		Country:     "USA",
		PosterURL:   "https://example.com/tdk.jpg",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
}

func TestNormalize_MissingFields(t *testing.T) {
	got := Normalize(Raw{Title: "Bare", Kind: "series"})

	if got.Genres == nil || len(got.Genres) != 0 {
		t.Errorf("Genres = %#v, want empty non-nil slice", got.Genres)
	}
	if got.Actors == nil || len(got.Actors) != 0 {
		t.Errorf("Actors = %#v, want empty non-nil slice", got.Actors)
	}
	if got.Directors == nil || len(got.Directors) != 0 {
		t.Errorf("Directors = %#v, want empty non-nil slice", got.Directors)
	}
}

func TestNormalizeAll_PreservesOrder(t *testing.T) {
	raws := []Raw{
		{Title: "Third Man"},
		{Title: "First Blood"},
		{Title: "Second Act"},
	}

	items := NormalizeAll(raws)
	if len(items) != 3 {
		t.Fatalf("NormalizeAll() returned %d items, want 3", len(items))
	}
	for i, raw := range raws {
		if items[i].Title != raw.Title {
			t.Errorf("items[%d].Title = %q, want %q", i, items[i].Title, raw.Title)
		}
	}
}
