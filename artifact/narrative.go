package artifact

import (
	"context"
	"time"

	"github.com/hcinews/newslens/store"
)

// Narrative returns the analogized retelling of an article with its term
// dictionary, generating and caching it on first request.
func (s *Service) Narrative(ctx context.Context, articleID string) (*store.StorySummary, error) {
	v, err, _ := s.group.Do("narrative:"+articleID, func() (any, error) {
		art, err := s.getArticle(ctx, articleID)
		if err != nil {
			return nil, err
		}

		cached, err := s.store.GetStorySummary(ctx, articleID)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			return cached, nil
		}

		start := time.Now()
		n, err := s.client.Narrative(ctx, art.Content)
		s.recordGeneration(ctx, "narrative", articleID, start, err)
		if err != nil {
			return nil, err
		}

		sum := &store.StorySummary{
			ArticleID:  articleID,
			Story:      n.Story,
			Dictionary: n.Dictionary,
		}
		s.absorbPersist("narrative", articleID, s.store.InsertStorySummary(ctx, sum))
		return sum, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*store.StorySummary), nil
}
