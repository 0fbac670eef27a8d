// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	data := `[
		{
			"title": "Heat Wave",
			"year": 1995,
			"type": "movie",
			"genre": "Action,Crime",
			"language": "English",
			"director": "Michael Mann",
			"actors": "Al Pacino,Robert De Niro",
			"imdb_rating": 8.3,
			"description": "A heist crew and a detective collide."
		},
		{
			"title": "Quiet Valley",
			"year": 2020,
			"type": "series",
			"genre": "Drama",
			"language": "French",
			"imdb_rating": 7.2
		}
	]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	items, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Load() returned %d items, want 2", len(items))
	}

	if items[0].Title != "Heat Wave" || items[0].Rating != 8.3 {
		t.Errorf("items[0] = %+v", items[0])
	}
	if len(items[0].Genres) != 2 || items[0].Genres[0] != "Action" {
		t.Errorf("items[0].Genres = %v, want [Action Crime]", items[0].Genres)
	}
	if items[1].Kind != "series" || items[1].Language != "French" {
		t.Errorf("items[1] = %+v", items[1])
	}
	if len(items[1].Actors) != 0 {
		t.Errorf("items[1].Actors = %v, want empty", items[1].Actors)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "nope.json")); err == nil {
			t.Error("Load() on a missing file succeeded, want error")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(path, []byte(`{"not": "an array"`), 0o600); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load() on malformed JSON succeeded, want error")
		}
	})
}
