// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reeltaste/internal/recommend"
)

func testItems() []recommend.Item {
	return []recommend.Item{
		{Title: "Iron Vortex", Kind: recommend.KindMovie, Year: 2012, Genres: []string{"Action", "Sci-Fi"}, Actors: []string{"Dana Cole"}, Directors: []string{"Pat Morrow"}, Language: "English", Rating: 8.0, Description: "Heroes band together against an alien invasion."},
		{Title: "Night Circuit", Kind: recommend.KindMovie, Year: 2008, Genres: []string{"Action", "Crime"}, Actors: []string{"Lee Webb"}, Directors: []string{"Kim Ro"}, Language: "English", Rating: 9.0, Description: "A vigilante faces a criminal mastermind."},
		{Title: "Spice Route", Kind: recommend.KindMovie, Year: 2009, Genres: []string{"Comedy", "Drama"}, Actors: []string{"Arun Vel"}, Directors: []string{"Raj Kanti"}, Language: "Hindi", Rating: 8.4, Description: "Two friends search for a lost companion."},
		{Title: "Cartel Teacher", Kind: recommend.KindSeries, Year: 2008, Genres: []string{"Crime", "Drama"}, Actors: []string{"Bry Stone"}, Directors: []string{"Vince Moss"}, Language: "English", Rating: 9.5, Description: "A teacher builds a drug empire."},
	}
}

func newTestRouter(t *testing.T, fitted bool) http.Handler {
	t.Helper()

	engine, err := recommend.NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if fitted {
		if _, err := engine.Fit(testItems()); err != nil {
			t.Fatalf("Fit() error = %v", err)
		}
	}
	return NewRouter(NewHandler(engine), RouterConfig{})
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response %q: %v", rec.Body.String(), err)
	}
	return rec, resp
}

func dataMap(t *testing.T, resp APIResponse) map[string]interface{} {
	t.Helper()
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("response data is %T, want object", resp.Data)
	}
	return data
}

func TestRecommendations(t *testing.T) {
	router := newTestRouter(t, true)

	rec, resp := doRequest(t, router, http.MethodPost, "/api/v1/recommendations",
		`{"genres":["Action"],"limit":2}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if resp.Status != "success" {
		t.Errorf("Status = %q, want success", resp.Status)
	}

	data := dataMap(t, resp)
	if count := data["count"].(float64); count != 2 {
		t.Errorf("count = %v, want 2", count)
	}
	results := data["results"].([]interface{})
	first := results[0].(map[string]interface{})
	item := first["item"].(map[string]interface{})
	if item["title"] != "Night Circuit" {
		t.Errorf("top result = %v, want Night Circuit", item["title"])
	}
	if first["explanation"] == "" {
		t.Error("result missing explanation")
	}
}

func TestRecommendations_Errors(t *testing.T) {
	router := newTestRouter(t, true)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed json",
			body:       `{"genres": [`,
			wantStatus: http.StatusBadRequest,
			wantCode:   codeInvalidRequest,
		},
		{
			name:       "negative limit",
			body:       `{"limit": -1}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   codeValidationError,
		},
		{
			name:       "bad kind",
			body:       `{"kind": "documentary"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   codeValidationError,
		},
		{
			name:       "negative weight",
			body:       `{"rating_weight": -0.5}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   codeValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := doRequest(t, router, http.MethodPost, "/api/v1/recommendations", tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestRecommendations_NotFitted(t *testing.T) {
	router := newTestRouter(t, false)

	rec, resp := doRequest(t, router, http.MethodPost, "/api/v1/recommendations", `{}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if resp.Error == nil || resp.Error.Code != codeNotFitted {
		t.Errorf("error = %+v, want code %s", resp.Error, codeNotFitted)
	}
}

func TestSimilar(t *testing.T) {
	router := newTestRouter(t, true)

	rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/similar/Iron%20Vortex?limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	data := dataMap(t, resp)
	if data["title"] != "Iron Vortex" {
		t.Errorf("title = %v, want Iron Vortex", data["title"])
	}
	results := data["results"].([]interface{})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		item := r.(map[string]interface{})["item"].(map[string]interface{})
		if item["title"] == "Iron Vortex" {
			t.Error("similar results include the queried item")
		}
	}
}

func TestSimilar_NotFound(t *testing.T) {
	router := newTestRouter(t, true)

	rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/similar/Nonexistent", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if resp.Error == nil || resp.Error.Code != codeNotFound {
		t.Errorf("error = %+v, want code %s", resp.Error, codeNotFound)
	}
}

func TestGenres(t *testing.T) {
	router := newTestRouter(t, true)

	rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/genres", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data := dataMap(t, resp)
	genres := data["genres"].([]interface{})
	want := []string{"Action", "Comedy", "Crime", "Drama", "Sci-Fi"}
	if len(genres) != len(want) {
		t.Fatalf("genres = %v, want %v", genres, want)
	}
	for i, g := range want {
		if genres[i] != g {
			t.Errorf("genres[%d] = %v, want %s", i, genres[i], g)
		}
	}
}

func TestGenreTop(t *testing.T) {
	router := newTestRouter(t, true)

	rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/genres/Crime/top?min_rating=8.5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data := dataMap(t, resp)
	if data["min_rating"].(float64) != 8.5 {
		t.Errorf("min_rating = %v, want 8.5", data["min_rating"])
	}
	results := data["results"].([]interface{})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (Cartel Teacher, Night Circuit)", len(results))
	}
	if results[0].(map[string]interface{})["title"] != "Cartel Teacher" {
		t.Errorf("top result = %v, want Cartel Teacher", results[0])
	}
}

func TestGenreTop_DefaultMinRating(t *testing.T) {
	router := newTestRouter(t, true)

	_, resp := doRequest(t, router, http.MethodGet, "/api/v1/genres/Drama/top", "")
	data := dataMap(t, resp)
	if data["min_rating"].(float64) != 7.0 {
		t.Errorf("min_rating = %v, want default 7.0", data["min_rating"])
	}
}

func TestLanguageTop(t *testing.T) {
	router := newTestRouter(t, true)

	rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/languages/Hindi/top", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data := dataMap(t, resp)
	results := data["results"].([]interface{})
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].(map[string]interface{})["title"] != "Spice Route" {
		t.Errorf("result = %v, want Spice Route", results[0])
	}
}

func TestTaste(t *testing.T) {
	router := newTestRouter(t, true)

	rec, resp := doRequest(t, router, http.MethodPost, "/api/v1/taste",
		`{"genres":["Action"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	data := dataMap(t, resp)
	ratings := data["genre_ratings"].(map[string]interface{})
	if ratings["Action"].(float64) != 8.5 {
		t.Errorf("genre_ratings[Action] = %v, want 8.5", ratings["Action"])
	}
	unexplored := data["unexplored_genres"].([]interface{})
	for _, g := range unexplored {
		if g == "Action" {
			t.Error("unexplored_genres contains a preferred genre")
		}
	}
}

func TestCatalog(t *testing.T) {
	router := newTestRouter(t, true)

	rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/catalog", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data := dataMap(t, resp)
	if data["count"].(float64) != 4 {
		t.Errorf("count = %v, want 4", data["count"])
	}
	if data["version"].(float64) != 1 {
		t.Errorf("version = %v, want 1", data["version"])
	}
}

func TestHealth(t *testing.T) {
	t.Run("live always ok", func(t *testing.T) {
		router := newTestRouter(t, false)
		rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/health/live", "")
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if resp.Status != "success" {
			t.Errorf("Status = %q, want success", resp.Status)
		}
	})

	t.Run("ready 503 before fit", func(t *testing.T) {
		router := newTestRouter(t, false)
		rec, resp := doRequest(t, router, http.MethodGet, "/api/v1/health/ready", "")
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
		if resp.Error == nil || resp.Error.Code != codeNotFitted {
			t.Errorf("error = %+v, want code %s", resp.Error, codeNotFitted)
		}
	})

	t.Run("ready 200 after fit", func(t *testing.T) {
		router := newTestRouter(t, true)
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/health/ready", "")
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, true)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "reeltaste") {
		t.Error("metrics output does not contain reeltaste collectors")
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t, true)

	t.Run("generated when absent", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/genres", "")
		if rec.Header().Get(requestIDHeader) == "" {
			t.Error("response missing X-Request-ID header")
		}
	})

	t.Run("echoed when supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil)
		req.Header.Set(requestIDHeader, "trace-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if got := rec.Header().Get(requestIDHeader); got != "trace-123" {
			t.Errorf("X-Request-ID = %q, want trace-123", got)
		}
	})
}
