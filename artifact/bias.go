package artifact

import (
	"context"
	"time"
)

// BiasLabels holds the two political-bias labels for an article. Both fields
// nil means the labels do not apply (non-politics genre).
type BiasLabels struct {
	MediaBias     *string `json:"media_bias"`
	ReportingBias *string `json:"reporting_bias"`
}

// Bias returns the political-bias labels for an article. Articles outside
// the politics genre return the not-applicable sentinel without touching the
// generator; politics articles are labeled once and the labels cached on the
// article row.
func (s *Service) Bias(ctx context.Context, articleID string) (*BiasLabels, error) {
	v, err, _ := s.group.Do("bias:"+articleID, func() (any, error) {
		art, err := s.getArticle(ctx, articleID)
		if err != nil {
			return nil, err
		}
		if art.Genre != biasGenre {
			return &BiasLabels{}, nil
		}
		if art.MediaBias != nil && art.ReportingBias != nil {
			return &BiasLabels{MediaBias: art.MediaBias, ReportingBias: art.ReportingBias}, nil
		}

		pressName, err := s.store.GetPressName(ctx, art.PressID)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		b, err := s.client.Bias(ctx, pressName, art.Content)
		s.recordGeneration(ctx, "bias", articleID, start, err)
		if err != nil {
			return nil, err
		}

		s.absorbPersist("bias", articleID,
			s.store.UpdateArticleBias(ctx, articleID, b.MediaBias, b.ReportingBias))
		return &BiasLabels{MediaBias: &b.MediaBias, ReportingBias: &b.ReportingBias}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*BiasLabels), nil
}
