package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// GetStorySummary retrieves the analogized retelling for an article.
// Returns (nil, nil) when absent.
func (s *Store) GetStorySummary(ctx context.Context, articleID string) (*StorySummary, error) {
	var sum StorySummary
	var dictJSON string
	err := s.DB.QueryRowContext(ctx,
		`SELECT article_id, story, dictionary_json
		FROM story_summaries WHERE article_id = ?`, articleID).
		Scan(&sum.ArticleID, &sum.Story, &dictJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan story summary: %w", err)
	}
	if err := json.Unmarshal([]byte(dictJSON), &sum.Dictionary); err != nil {
		return nil, fmt.Errorf("decode story dictionary: %w", err)
	}
	return &sum, nil
}

// InsertStorySummary stores the retelling and marks the article's
// narrative_summary field in the same transaction, so the existence check
// (articles.narrative_summary) and the artifact row can never disagree.
func (s *Store) InsertStorySummary(ctx context.Context, sum *StorySummary) error {
	dictJSON, err := json.Marshal(sum.Dictionary)
	if err != nil {
		return fmt.Errorf("encode story dictionary: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin story insert: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO story_summaries (article_id, story, dictionary_json)
		VALUES (?, ?, ?)`,
		sum.ArticleID, sum.Story, string(dictJSON)); err != nil {
		return fmt.Errorf("insert story summary: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE articles SET narrative_summary = ? WHERE id = ?`,
		sum.Story, sum.ArticleID); err != nil {
		return fmt.Errorf("mark narrative summary: %w", err)
	}
	return tx.Commit()
}
