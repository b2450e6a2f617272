// Package ingest collects ranked articles from the news portal and loads
// them into the store. The scraper is a swappable collaborator: the rest of
// the system only consumes the RawArticle batches it produces, whether they
// come from a live crawl or a pre-scraped JSON dump.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hcinews/newslens/store"
)

// RawArticle is one scraped article record, matching the JSON dump layout.
type RawArticle struct {
	Ranking       string  `json:"ranking"`
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	PublishedAt   string  `json:"published_at"`
	EditedAt      *string `json:"edited_at"`
	Genre         *string `json:"genre"`
	ActivityScore float64 `json:"activity_score"`
	AuthorName    string  `json:"author_name"`
	AuthorID      string  `json:"author_id"`
	PressID       string  `json:"press_id"`
}

// portal timestamps carry no zone marker and are Korea local time.
var kst = time.FixedZone("KST", 9*60*60)

const portalTimeLayout = "2006-01-02 15:04:05"

// unknownPress is the catch-all press entry for articles whose outlet page
// could not be resolved.
var unknownPress = PressRecord{
	ID:   "000",
	Name: "Unknown",
	Logo: "",
}

// Ingest converts raw scrape records into store rows and inserts them in one
// transaction. Articles are deduplicated by URL, assigned fresh UUIDs, and
// author identities are composed from the portal's author key and press code
// (the key alone is not unique across outlets). Returns the number of
// distinct articles handed to the store.
func Ingest(ctx context.Context, st *store.Store, raws []RawArticle, presses []PressRecord, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	byURL := make(map[string]RawArticle, len(raws))
	for _, r := range raws {
		if r.URL == "" {
			continue
		}
		byURL[r.URL] = r
	}

	articles := make([]*store.Article, 0, len(byURL))
	authorSeen := make(map[string]*store.Author)
	pressUsed := make(map[string]bool)

	for _, r := range byURL {
		publishedAt, err := time.ParseInLocation(portalTimeLayout, r.PublishedAt, kst)
		if err != nil {
			logger.Warn("ingest: bad published_at, skipping article", "url", r.URL, "value", r.PublishedAt)
			continue
		}
		var editedAt *int64
		if r.EditedAt != nil && *r.EditedAt != "" {
			t, err := time.ParseInLocation(portalTimeLayout, *r.EditedAt, kst)
			if err != nil {
				logger.Warn("ingest: bad edited_at, keeping article without it", "url", r.URL, "value", *r.EditedAt)
			} else {
				u := t.Unix()
				editedAt = &u
			}
		}

		ranking, _ := strconv.Atoi(strings.TrimSpace(r.Ranking))
		genre := ""
		if r.Genre != nil {
			genre = *r.Genre
		}
		pressID := r.PressID
		if pressID == "" {
			pressID = unknownPress.ID
		}
		authorID := r.AuthorID + pressID

		articles = append(articles, &store.Article{
			ID:            uuid.NewString(),
			Title:         r.Title,
			URL:           r.URL,
			Content:       r.Content,
			PublishedAt:   publishedAt.Unix(),
			EditedAt:      editedAt,
			Genre:         genre,
			Ranking:       ranking,
			ActivityScore: r.ActivityScore,
			AuthorID:      authorID,
			PressID:       pressID,
		})
		pressUsed[pressID] = true

		if r.AuthorID != "" {
			authorSeen[authorID] = &store.Author{
				ID:        authorID,
				AuthorKey: r.AuthorID,
				Name:      r.AuthorName,
				PressID:   pressID,
			}
		}
	}

	pressRows := make([]*store.Press, 0, len(presses)+1)
	for _, p := range append(presses, unknownPress) {
		if !pressUsed[p.ID] {
			continue
		}
		pressRows = append(pressRows, &store.Press{ID: p.ID, Name: p.Name, LogoURL: p.Logo})
	}

	authorRows := make([]*store.Author, 0, len(authorSeen))
	for _, a := range authorSeen {
		authorRows = append(authorRows, a)
	}

	if err := st.InsertBatch(ctx, pressRows, authorRows, articles); err != nil {
		return 0, fmt.Errorf("ingest: insert batch: %w", err)
	}

	logger.Info("ingest: batch inserted",
		"articles", len(articles), "authors", len(authorRows), "presses", len(pressRows))
	return len(articles), nil
}
