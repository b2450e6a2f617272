// Package observability records artifact generation events for operator
// triage: which kinds fail, against which articles, and how long the
// external generator takes.
package observability

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Schema holds the generation event log table.
const Schema = `
CREATE TABLE IF NOT EXISTS generation_events (
    id           TEXT PRIMARY KEY,
    kind         TEXT NOT NULL,
    event_key    TEXT NOT NULL,
    model        TEXT NOT NULL DEFAULT '',
    duration_ms  INTEGER NOT NULL DEFAULT 0,
    success      INTEGER NOT NULL,
    error        TEXT NOT NULL DEFAULT '',
    created_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_generation_events_kind ON generation_events(kind, created_at);
`

// GenerationEvent is one artifact generation attempt. Key is the article id,
// or the calendar date for keyword summaries.
type GenerationEvent struct {
	Kind     string
	Key      string
	Model    string
	Duration time.Duration
	Success  bool
	Error    string
}

// EventLogger writes generation events. Non-blocking: write errors are
// logged, never propagated, so a failing event store cannot take down the
// read path.
type EventLogger struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewEventLogger(db *sql.DB, logger *slog.Logger) *EventLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventLogger{db: db, logger: logger}
}

// LogGeneration records one event.
func (l *EventLogger) LogGeneration(ctx context.Context, ev GenerationEvent) {
	success := 0
	if ev.Success {
		success = 1
	}
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO generation_events (id, kind, event_key, model, duration_ms, success, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), ev.Kind, ev.Key, ev.Model,
		ev.Duration.Milliseconds(), success, ev.Error, time.Now().Unix())
	if err != nil {
		l.logger.Warn("observability: event write failed", "kind", ev.Kind, "error", err)
	}
}

// KindStats summarizes generation activity for one artifact kind.
type KindStats struct {
	Kind      string
	Total     int
	Failures  int
	AvgMillis float64
}

// Summary aggregates events per kind since the given time.
func (l *EventLogger) Summary(ctx context.Context, since time.Time) ([]KindStats, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT kind, COUNT(*), SUM(1 - success), AVG(duration_ms)
		FROM generation_events
		WHERE created_at >= ?
		GROUP BY kind ORDER BY kind`, since.Unix())
	if err != nil {
		return nil, fmt.Errorf("summarize events: %w", err)
	}
	defer rows.Close()

	var out []KindStats
	for rows.Next() {
		var s KindStats
		if err := rows.Scan(&s.Kind, &s.Total, &s.Failures, &s.AvgMillis); err != nil {
			return nil, fmt.Errorf("scan event summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Cleanup deletes events older than the retention window and reports how
// many rows went away.
func (l *EventLogger) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	res, err := l.db.ExecContext(ctx,
		`DELETE FROM generation_events WHERE created_at < ?`,
		time.Now().Add(-retention).Unix())
	if err != nil {
		return 0, fmt.Errorf("cleanup events: %w", err)
	}
	return res.RowsAffected()
}
