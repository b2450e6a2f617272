package store

import (
	"context"
	"database/sql"
	"fmt"
)

// GetHighlight retrieves the highlighted text for an article.
// Returns (nil, nil) when absent.
func (s *Store) GetHighlight(ctx context.Context, articleID string) (*string, error) {
	var text string
	err := s.DB.QueryRowContext(ctx,
		`SELECT highlighted_text FROM highlighted_articles WHERE article_id = ?`,
		articleID).Scan(&text)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan highlight: %w", err)
	}
	return &text, nil
}

// InsertHighlight stores the highlighted article text. article_id is the
// primary key, so a concurrent duplicate insert fails cleanly.
func (s *Store) InsertHighlight(ctx context.Context, articleID, text string) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO highlighted_articles (article_id, highlighted_text) VALUES (?, ?)`,
		articleID, text)
	if err != nil {
		return fmt.Errorf("insert highlight: %w", err)
	}
	return nil
}
