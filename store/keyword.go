package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// GetKeywordSummary retrieves the keyword summary for a calendar date
// (YYYY-MM-DD). Returns (nil, nil) when none exists yet.
func (s *Store) GetKeywordSummary(ctx context.Context, date string) (*KeywordSummary, error) {
	var sum KeywordSummary
	var kwJSON string
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, date, keywords_json, created_at
		FROM keyword_summaries WHERE date = ?`, date).
		Scan(&sum.ID, &sum.Date, &kwJSON, &sum.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan keyword summary: %w", err)
	}
	if err := json.Unmarshal([]byte(kwJSON), &sum.Keywords); err != nil {
		return nil, fmt.Errorf("decode keywords: %w", err)
	}
	return &sum, nil
}

// InsertKeywordSummary stores the summary for its date. The UNIQUE(date)
// constraint rejects a concurrent duplicate for the same day.
func (s *Store) InsertKeywordSummary(ctx context.Context, sum *KeywordSummary) error {
	kwJSON, err := json.Marshal(sum.Keywords)
	if err != nil {
		return fmt.Errorf("encode keywords: %w", err)
	}
	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO keyword_summaries (id, date, keywords_json, created_at)
		VALUES (?, ?, ?, ?)`,
		sum.ID, sum.Date, string(kwJSON), sum.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert keyword summary: %w", err)
	}
	return nil
}
