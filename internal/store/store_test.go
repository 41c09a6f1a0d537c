package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil DB")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	db.SetMaxOpenConns(1)

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWALModeFileDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence %d not greater than previous %d", seq, prev)
		}
		prev = seq
	}
}

func TestAppendAndQueryEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendClassification(ctx, ClassificationEventData{
		Interaction: "NumericInput",
		Rule:        "Equals",
		Matched:     true,
	}); err != nil {
		t.Fatalf("append classification: %v", err)
	}
	if err := repo.AppendRender(ctx, RenderEventData{
		ID:        "render-1",
		Language:  "en",
		Fractions: true,
		Rendered:  "one half",
		OK:        true,
	}); err != nil {
		t.Fatalf("append render: %v", err)
	}
	if err := repo.AppendClassification(ctx, ClassificationEventData{
		Interaction: "TextInput",
		Rule:        "Equals",
		Error:       `rule "Equals": missing input "x"`,
	}); err != nil {
		t.Fatalf("append classification: %v", err)
	}

	events, err := repo.Events(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first.
	if events[0].Type != EventClassification || events[0].Classification.Interaction != "TextInput" {
		t.Errorf("events[0] = %+v, want TextInput classification", events[0])
	}
	if events[0].Classification.Error == "" {
		t.Error("expected error text to round-trip")
	}
	if events[0].Classification.ID == "" {
		t.Error("expected generated ID")
	}

	r := events[1].Render
	if events[1].Type != EventRender || r == nil {
		t.Fatalf("events[1] = %+v, want render", events[1])
	}
	if r.ID != "render-1" || r.Rendered != "one half" || !r.OK || !r.Fractions || r.Language != "en" {
		t.Errorf("render event = %+v", r)
	}

	c := events[2].Classification
	if c == nil || !c.Matched || c.Rule != "Equals" {
		t.Errorf("events[2] = %+v, want matched Equals", events[2])
	}
	if !(events[0].Sequence > events[1].Sequence && events[1].Sequence > events[2].Sequence) {
		t.Error("expected descending sequence order")
	}
}

func TestEventsQueryOpts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	repo := &eventRepo{db: s.db, seq: s.seq, now: func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}}

	for i := 0; i < 5; i++ {
		if err := repo.AppendRender(ctx, RenderEventData{Language: "en", Rendered: fmt.Sprint(i), OK: true}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.Events(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("got %d events, want 5", len(all))
	}

	limited, err := repo.Events(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(limited) != 2 || limited[0].Render.Rendered != "4" {
		t.Errorf("limit 2 = %+v", limited)
	}

	after, err := repo.Events(ctx, QueryOpts{After: all[2].Sequence})
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(after) != 2 {
		t.Errorf("after = %d events, want 2", len(after))
	}

	window, err := repo.Events(ctx, QueryOpts{
		From: base.Add(2 * time.Minute),
		To:   base.Add(3 * time.Minute),
	})
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(window) != 2 {
		t.Errorf("time window = %d events, want 2", len(window))
	}
	if !window[0].Timestamp.Equal(base.Add(3 * time.Minute)) {
		t.Errorf("timestamp = %v, want %v", window[0].Timestamp, base.Add(3*time.Minute))
	}
}
