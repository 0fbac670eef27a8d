// Reeltaste - Media Catalog Taste Ranking and Similarity Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reeltaste

package supervisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

// blockingService runs until its context is canceled, counting starts.
type blockingService struct {
	starts atomic.Int64
	name   string
}

func (s *blockingService) Serve(ctx context.Context) error {
	s.starts.Add(1)
	<-ctx.Done()
	return ctx.Err()
}

func (s *blockingService) String() string {
	return s.name
}

func TestDefaultTreeConfig(t *testing.T) {
	cfg := DefaultTreeConfig()

	if cfg.FailureThreshold != 5.0 {
		t.Errorf("FailureThreshold = %v, want 5.0", cfg.FailureThreshold)
	}
	if cfg.FailureDecay != 30.0 {
		t.Errorf("FailureDecay = %v, want 30.0", cfg.FailureDecay)
	}
	if cfg.FailureBackoff != 15*time.Second {
		t.Errorf("FailureBackoff = %v, want 15s", cfg.FailureBackoff)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
}

func TestTree_ServeAndShutdown(t *testing.T) {
	tree := NewTree(slog.New(slog.NewTextHandler(io.Discard, nil)), DefaultTreeConfig())

	data := &blockingService{name: "data-svc"}
	api := &blockingService{name: "api-svc"}
	tree.AddDataService(data)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tree.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if data.starts.Load() > 0 && api.starts.Load() > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if data.starts.Load() == 0 || api.starts.Load() == 0 {
		t.Fatal("services were not started by the supervisor")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want nil or context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancellation")
	}
}

func TestNewTree_ZeroConfigGetsDefaults(t *testing.T) {
	// A zero TreeConfig must not produce a tree that panics or spins; the
	// constructor backfills every knob.
	tree := NewTree(slog.New(slog.NewTextHandler(io.Discard, nil)), TreeConfig{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() error = %v, want nil or deadline exceeded", err)
	}
}
