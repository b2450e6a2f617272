package observability

import (
	"context"
	"testing"
	"time"

	"github.com/hcinews/newslens/dbopen"
)

func newTestLogger(t *testing.T) *EventLogger {
	t.Helper()
	db := dbopen.OpenMemory(t, dbopen.WithSchema(Schema))
	return NewEventLogger(db, nil)
}

func TestLogAndSummarize(t *testing.T) {
	// WHAT: logged events aggregate per kind with failure counts.
	l := newTestLogger(t)
	ctx := context.Background()

	l.LogGeneration(ctx, GenerationEvent{Kind: "dialogue", Key: "a1", Model: "command-r", Duration: 120 * time.Millisecond, Success: true})
	l.LogGeneration(ctx, GenerationEvent{Kind: "dialogue", Key: "a2", Model: "command-r", Duration: 80 * time.Millisecond, Success: false, Error: "malformed"})
	l.LogGeneration(ctx, GenerationEvent{Kind: "bias", Key: "a1", Model: "command-r", Duration: 50 * time.Millisecond, Success: true})

	stats, err := l.Summary(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats = %+v", stats)
	}
	// Ordered by kind: bias, dialogue.
	if stats[0].Kind != "bias" || stats[0].Total != 1 || stats[0].Failures != 0 {
		t.Fatalf("bias stats = %+v", stats[0])
	}
	if stats[1].Kind != "dialogue" || stats[1].Total != 2 || stats[1].Failures != 1 {
		t.Fatalf("dialogue stats = %+v", stats[1])
	}
	if stats[1].AvgMillis != 100 {
		t.Fatalf("dialogue avg = %v", stats[1].AvgMillis)
	}
}

func TestCleanup(t *testing.T) {
	// WHAT: cleanup keeps recent events and reports deleted row counts.
	l := newTestLogger(t)
	ctx := context.Background()

	l.LogGeneration(ctx, GenerationEvent{Kind: "highlight", Key: "a1", Success: true})
	deleted, err := l.Cleanup(ctx, time.Hour)
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("deleted = %d, want 0 (fresh event retained)", deleted)
	}

	deleted, err = l.Cleanup(ctx, -time.Minute)
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("deleted = %d, want 1", deleted)
	}
}
