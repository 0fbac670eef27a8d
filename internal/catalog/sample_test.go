// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package catalog

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reeltaste/internal/recommend"
)

func TestSample(t *testing.T) {
	items := Sample()
	if len(items) == 0 {
		t.Fatal("Sample() is empty")
	}

	titles := make(map[string]bool, len(items))
	var movies, series, hindi int
	for _, item := range items {
		if item.Title == "" {
			t.Error("sample item with empty title")
		}
		if titles[item.Title] {
			t.Errorf("duplicate sample title %q", item.Title)
		}
		titles[item.Title] = true

		switch item.Kind {
		case recommend.KindMovie:
			movies++
		case recommend.KindSeries:
			series++
		default:
			t.Errorf("%s: unexpected kind %q", item.Title, item.Kind)
		}
		if item.Language == "Hindi" {
			hindi++
		}

		if item.Rating <= 0 || item.Rating > 10 {
			t.Errorf("%s: rating %v out of range", item.Title, item.Rating)
		}
		if len(item.Genres) == 0 {
			t.Errorf("%s: no genres", item.Title)
		}
		if item.Description == "" {
			t.Errorf("%s: no description", item.Title)
		}
	}

	// Every query path needs data: both kinds and more than one language.
	if movies == 0 || series == 0 {
		t.Errorf("sample has %d movies and %d series, want both present", movies, series)
	}
	if hindi == 0 {
		t.Error("sample has no Hindi titles")
	}
}

func TestSample_FitsCleanly(t *testing.T) {
	items := Sample()

	engine, err := recommend.NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	snap, err := engine.Fit(items)
	if err != nil {
		t.Fatalf("Fit(Sample()) error = %v", err)
	}
	if snap.Size() != len(items) {
		t.Errorf("snapshot size = %d, want %d", snap.Size(), len(items))
	}
}
