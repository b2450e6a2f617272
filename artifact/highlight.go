package artifact

import (
	"context"
	"strings"
	"time"
)

// Highlight markers inserted by the generator around emphasized spans.
const (
	markerOpen  = "[[highlight]]"
	markerClose = "[[/highlight]]"
)

// Highlight returns the focus-reading rendition of an article: the body with
// highlight markers inserted. Generated and cached on first request.
func (s *Service) Highlight(ctx context.Context, articleID string) (string, error) {
	v, err, _ := s.group.Do("highlight:"+articleID, func() (any, error) {
		art, err := s.getArticle(ctx, articleID)
		if err != nil {
			return nil, err
		}

		cached, err := s.store.GetHighlight(ctx, articleID)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			return *cached, nil
		}

		start := time.Now()
		text, err := s.client.Highlight(ctx, art.Content)
		s.recordGeneration(ctx, "highlight", articleID, start, err)
		if err != nil {
			return nil, err
		}

		if s.cfg.VerifyHighlights && !roundTrips(text, art.Content) {
			s.logger.Warn("highlight output does not round-trip to article body",
				"article_id", articleID)
		}

		s.absorbPersist("highlight", articleID, s.store.InsertHighlight(ctx, articleID, text))
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// roundTrips reports whether stripping the highlight markers from generated
// text reproduces the original body, modulo surrounding whitespace.
func roundTrips(generated, original string) bool {
	stripped := strings.ReplaceAll(generated, markerOpen, "")
	stripped = strings.ReplaceAll(stripped, markerClose, "")
	return strings.TrimSpace(stripped) == strings.TrimSpace(original)
}
