package artifact

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hcinews/newslens/store"
)

// DailyKeywords returns the keyword summary for today, generating it from
// the current title set on first request. The summary is keyed by calendar
// date: once stored, every later request that day returns it unchanged
// regardless of how the title set has grown since.
func (s *Service) DailyKeywords(ctx context.Context) (*store.KeywordSummary, error) {
	now := s.now()
	date := now.Format("2006-01-02")

	v, err, _ := s.group.Do("keywords:"+date, func() (any, error) {
		cached, err := s.store.GetKeywordSummary(ctx, date)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			return cached, nil
		}

		var since int64
		if s.cfg.KeywordWindow > 0 {
			since = now.Add(-s.cfg.KeywordWindow).Unix()
		}
		titles, err := s.store.ListTitles(ctx, since)
		if err != nil {
			return nil, err
		}
		if len(titles) == 0 {
			return nil, ErrNoArticles
		}

		start := time.Now()
		parsed, err := s.client.DailyKeywords(ctx, titles)
		s.recordGeneration(ctx, "keywords", date, start, err)
		if err != nil {
			return nil, err
		}

		entries := make([]store.KeywordEntry, len(parsed))
		for i, kw := range parsed {
			// Attach the busiest article mentioning the keyword; nil when
			// no title matches.
			articleID, err := s.store.BestArticleIDForKeyword(ctx, kw.Keyword)
			if err != nil {
				return nil, err
			}
			entries[i] = store.KeywordEntry{
				Keyword:   kw.Keyword,
				Score:     kw.Score,
				ArticleID: articleID,
			}
		}

		sum := &store.KeywordSummary{
			ID:        uuid.NewString(),
			Date:      date,
			Keywords:  entries,
			CreatedAt: now.Unix(),
		}
		s.absorbPersist("keywords", date, s.store.InsertKeywordSummary(ctx, sum))
		return sum, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*store.KeywordSummary), nil
}
