package main

import (
	"testing"

	"github.com/okian/larmor/internal/adapters/seed"
	"github.com/okian/larmor/internal/config"
)

func TestEntryList(t *testing.T) {
	cfg := config.New()
	ids := entryList(cfg)
	want := seed.EntryIDs()
	if len(ids) != len(want) {
		t.Fatalf("expected seed catalog fallback of %d ids, got %d", len(want), len(ids))
	}

	cfg.Entries = []int{4023}
	ids = entryList(cfg)
	if len(ids) != 1 || ids[0] != 4023 {
		t.Fatalf("configured entries should win, got %v", ids)
	}
}
