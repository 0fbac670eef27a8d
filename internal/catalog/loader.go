// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package catalog

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reeltaste/internal/recommend"
)

// Load reads a JSON array of raw catalog records from path and returns
// the normalized catalog in file order.
func Load(path string) ([]recommend.Item, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var raws []Raw
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	return NormalizeAll(raws), nil
}
