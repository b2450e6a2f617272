package store

import (
	"context"
	"database/sql"
	"fmt"
)

const articleColumns = `id, title, url, content, published_at, edited_at, genre,
	ranking, activity_score, author_id, press_id, narrative_summary, media_bias, reporting_bias`

func scanArticle(row interface{ Scan(...any) error }) (*Article, error) {
	var a Article
	var edited sql.NullInt64
	var summary, media, reporting sql.NullString
	err := row.Scan(&a.ID, &a.Title, &a.URL, &a.Content, &a.PublishedAt, &edited,
		&a.Genre, &a.Ranking, &a.ActivityScore, &a.AuthorID, &a.PressID,
		&summary, &media, &reporting)
	if err != nil {
		return nil, err
	}
	if edited.Valid {
		a.EditedAt = &edited.Int64
	}
	if summary.Valid {
		a.NarrativeSummary = &summary.String
	}
	if media.Valid {
		a.MediaBias = &media.String
	}
	if reporting.Valid {
		a.ReportingBias = &reporting.String
	}
	return &a, nil
}

// GetArticle retrieves an article by ID. Returns (nil, nil) when absent.
func (s *Store) GetArticle(ctx context.Context, id string) (*Article, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = ?`, id)
	a, err := scanArticle(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan article: %w", err)
	}
	return a, nil
}

// ListArticlesByRank returns articles ordered by activity score, paged.
func (s *Store) ListArticlesByRank(ctx context.Context, offset, limit int) ([]*Article, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+articleColumns+` FROM articles
		ORDER BY activity_score DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectArticles(rows)
}

// ListArticlesByGenre returns all articles with the given genre, most active first.
func (s *Store) ListArticlesByGenre(ctx context.Context, genre string) ([]*Article, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+articleColumns+` FROM articles
		WHERE genre = ? ORDER BY activity_score DESC`, genre)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectArticles(rows)
}

func collectArticles(rows *sql.Rows) ([]*Article, error) {
	var result []*Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// ListTitles returns article titles published at or after since (unix
// seconds). since <= 0 returns every known title.
func (s *Store) ListTitles(ctx context.Context, since int64) ([]string, error) {
	query := `SELECT title FROM articles`
	args := []any{}
	if since > 0 {
		query += ` WHERE published_at >= ?`
		args = append(args, since)
	}
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan title: %w", err)
		}
		titles = append(titles, t)
	}
	return titles, rows.Err()
}

// BestArticleIDForKeyword returns the ID of the highest-activity article
// whose title contains the keyword, or nil when none matches.
func (s *Store) BestArticleIDForKeyword(ctx context.Context, keyword string) (*string, error) {
	var id string
	err := s.DB.QueryRowContext(ctx,
		`SELECT id FROM articles WHERE title LIKE ?
		ORDER BY activity_score DESC LIMIT 1`, "%"+keyword+"%").Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("best article for keyword: %w", err)
	}
	return &id, nil
}

// GetPressName returns the display name for a press ID, or "" when unknown.
func (s *Store) GetPressName(ctx context.Context, pressID string) (string, error) {
	var name string
	err := s.DB.QueryRowContext(ctx,
		`SELECT name FROM press WHERE id = ?`, pressID).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("press name: %w", err)
	}
	return name, nil
}

// HasBias reports whether both bias labels are set on the article.
func (s *Store) HasBias(ctx context.Context, articleID string) (bool, error) {
	var count int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM articles
		WHERE id = ? AND media_bias IS NOT NULL AND reporting_bias IS NOT NULL`,
		articleID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("bias exists: %w", err)
	}
	return count > 0, nil
}

// UpdateArticleBias sets both bias labels on an article. Labels are written
// once; the artifact pipeline never calls this for an article that already
// has them.
func (s *Store) UpdateArticleBias(ctx context.Context, articleID, mediaBias, reportingBias string) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE articles SET media_bias = ?, reporting_bias = ? WHERE id = ?`,
		mediaBias, reportingBias, articleID)
	if err != nil {
		return fmt.Errorf("update bias: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("update bias: article %s not found", articleID)
	}
	return nil
}

// InsertBatch persists one scrape batch (press, authors, articles) in a
// single transaction. Rows that already exist (same press code, author ID or
// article URL) are skipped so re-running a crawl is idempotent.
func (s *Store) InsertBatch(ctx context.Context, presses []*Press, authors []*Author, articles []*Article) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	defer tx.Rollback()

	for _, p := range presses {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO press (id, name, logo_url) VALUES (?, ?, ?)
			ON CONFLICT(id) DO NOTHING`,
			p.ID, p.Name, p.LogoURL); err != nil {
			return fmt.Errorf("insert press %s: %w", p.ID, err)
		}
	}
	for _, a := range authors {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO authors (id, author_key, name, press_id) VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING`,
			a.ID, a.AuthorKey, a.Name, a.PressID); err != nil {
			return fmt.Errorf("insert author %s: %w", a.ID, err)
		}
	}
	for _, a := range articles {
		var edited any
		if a.EditedAt != nil {
			edited = *a.EditedAt
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO articles (id, title, url, content, published_at, edited_at,
			genre, ranking, activity_score, author_id, press_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(url) DO NOTHING`,
			a.ID, a.Title, a.URL, a.Content, a.PublishedAt, edited,
			a.Genre, a.Ranking, a.ActivityScore, a.AuthorID, a.PressID); err != nil {
			return fmt.Errorf("insert article %s: %w", a.URL, err)
		}
	}
	return tx.Commit()
}
