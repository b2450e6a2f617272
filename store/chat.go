package store

import (
	"context"
	"fmt"
)

// HasChatLines reports whether any dialogue lines exist for the article.
// Presence of a single line means the artifact was generated; there is no
// partial regeneration.
func (s *Store) HasChatLines(ctx context.Context, articleID string) (bool, error) {
	var count int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM chat_lines WHERE article_id = ?`, articleID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("chat lines exist: %w", err)
	}
	return count > 0, nil
}

// ListChatLines returns the dialogue for an article in generation order.
func (s *Store) ListChatLines(ctx context.Context, articleID string) ([]*ChatLine, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, article_id, position, speaker_id, speaker, content
		FROM chat_lines WHERE article_id = ? ORDER BY position`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*ChatLine
	for rows.Next() {
		var l ChatLine
		if err := rows.Scan(&l.ID, &l.ArticleID, &l.Position, &l.SpeakerID, &l.Speaker, &l.Content); err != nil {
			return nil, fmt.Errorf("scan chat line: %w", err)
		}
		result = append(result, &l)
	}
	return result, rows.Err()
}

// InsertChatLines stores one generated dialogue batch in a single
// transaction. The UNIQUE(article_id, position) constraint rejects a second
// concurrent batch for the same article; the whole insert rolls back.
func (s *Store) InsertChatLines(ctx context.Context, lines []*ChatLine) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin chat insert: %w", err)
	}
	defer tx.Rollback()

	for _, l := range lines {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO chat_lines (id, article_id, position, speaker_id, speaker, content)
			VALUES (?, ?, ?, ?, ?, ?)`,
			l.ID, l.ArticleID, l.Position, l.SpeakerID, l.Speaker, l.Content); err != nil {
			return fmt.Errorf("insert chat line %d: %w", l.Position, err)
		}
	}
	return tx.Commit()
}
