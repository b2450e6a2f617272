package artifact

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hcinews/newslens/store"
)

// Dialogue returns the conversational retelling of an article, generating
// and caching it on first request. Lines come back ordered by position.
func (s *Service) Dialogue(ctx context.Context, articleID string) ([]*store.ChatLine, error) {
	v, err, _ := s.group.Do("dialogue:"+articleID, func() (any, error) {
		art, err := s.getArticle(ctx, articleID)
		if err != nil {
			return nil, err
		}

		has, err := s.store.HasChatLines(ctx, articleID)
		if err != nil {
			return nil, err
		}
		if has {
			return s.store.ListChatLines(ctx, articleID)
		}

		start := time.Now()
		parsed, err := s.client.Dialogue(ctx, art.Content)
		s.recordGeneration(ctx, "dialogue", articleID, start, err)
		if err != nil {
			return nil, err
		}

		lines := make([]*store.ChatLine, len(parsed))
		for i, p := range parsed {
			lines[i] = &store.ChatLine{
				ID:        uuid.NewString(),
				ArticleID: articleID,
				Position:  p.Position,
				SpeakerID: p.SpeakerID,
				Speaker:   p.Speaker,
				Content:   p.Content,
			}
		}
		s.absorbPersist("dialogue", articleID, s.store.InsertChatLines(ctx, lines))
		return lines, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*store.ChatLine), nil
}
