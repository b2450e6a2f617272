package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hcinews/newslens/store"
)

const pageSize = 10

// maxPage bounds the ranked listing; the ranking crawl keeps at most a few
// dozen articles per day.
const maxPage = 4

// articleJSON is the wire shape of one article.
type articleJSON struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	URL              string  `json:"url"`
	Content          string  `json:"content"`
	PublishedAt      int64   `json:"published_at"`
	EditedAt         *int64  `json:"edited_at"`
	Genre            string  `json:"genre"`
	Ranking          int     `json:"ranking"`
	ActivityScore    float64 `json:"activity_score"`
	AuthorID         string  `json:"author_id"`
	PressID          string  `json:"press_id"`
	NarrativeSummary *string `json:"narrative_summary"`
	MediaBias        *string `json:"media_bias"`
	ReportingBias    *string `json:"reporting_bias"`
}

func toArticleJSON(a *store.Article) articleJSON {
	return articleJSON{
		ID:               a.ID,
		Title:            a.Title,
		URL:              a.URL,
		Content:          a.Content,
		PublishedAt:      a.PublishedAt,
		EditedAt:         a.EditedAt,
		Genre:            a.Genre,
		Ranking:          a.Ranking,
		ActivityScore:    a.ActivityScore,
		AuthorID:         a.AuthorID,
		PressID:          a.PressID,
		NarrativeSummary: a.NarrativeSummary,
		MediaBias:        a.MediaBias,
		ReportingBias:    a.ReportingBias,
	}
}

func toArticleList(arts []*store.Article) []articleJSON {
	out := make([]articleJSON, len(arts))
	for i, a := range arts {
		out[i] = toArticleJSON(a)
	}
	return out
}

// handleArticlesPage serves GET /api/articles?page=N: the ranked listing,
// ten articles per page, pages 1 through 4.
func (s *Server) handleArticlesPage(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 || page > maxPage {
		s.writeJSON(w, http.StatusBadRequest,
			map[string]string{"detail": "page must be between 1 and 4"})
		return
	}
	arts, err := s.store.ListArticlesByRank(r.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toArticleList(arts))
}

// handleArticlesByGenre serves GET /api/articles/genre/{genre}. The portal
// writes the editorial genre with a slash, which does not survive a URL path
// segment, so the slashless alias maps back.
func (s *Server) handleArticlesByGenre(w http.ResponseWriter, r *http.Request) {
	genre := chi.URLParam(r, "genre")
	if genre == "사설칼럼" {
		genre = "사설/칼럼"
	}
	arts, err := s.store.ListArticlesByGenre(r.Context(), genre)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(arts) == 0 {
		s.writeJSON(w, http.StatusNotFound,
			map[string]string{"detail": "no articles found for this genre"})
		return
	}
	s.writeJSON(w, http.StatusOK, toArticleList(arts))
}

// handleArticleView serves GET /api/articles/{id}/view: the article together
// with its dialogue and narrative artifacts, generating whichever is missing.
// The two generations compose here at the route level; each one is its own
// orchestrator call.
func (s *Server) handleArticleView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dialogue, err := s.artifacts.Dialogue(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	narrative, err := s.artifacts.Narrative(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	art, err := s.store.GetArticle(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	type lineJSON struct {
		Position  int    `json:"position"`
		SpeakerID int    `json:"speaker_id"`
		Speaker   string `json:"speaker"`
		Content   string `json:"content"`
	}
	lines := make([]lineJSON, len(dialogue))
	for i, l := range dialogue {
		lines[i] = lineJSON{Position: l.Position, SpeakerID: l.SpeakerID, Speaker: l.Speaker, Content: l.Content}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"article":  toArticleJSON(art),
		"dialogue": lines,
		"narrative": map[string]any{
			"story":      narrative.Story,
			"dictionary": narrative.Dictionary,
		},
	})
}

// handleHighlight serves GET /api/articles/{id}/highlight.
func (s *Server) handleHighlight(w http.ResponseWriter, r *http.Request) {
	text, err := s.artifacts.Highlight(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"highlighted": text})
}

// handleBias serves GET /api/articles/{id}/bias. Non-politics articles get
// the not-applicable sentinel: both labels null.
func (s *Server) handleBias(w http.ResponseWriter, r *http.Request) {
	labels, err := s.artifacts.Bias(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, labels)
}

// handleKeywordsToday serves POST /api/keywords/today.
func (s *Server) handleKeywordsToday(w http.ResponseWriter, r *http.Request) {
	sum, err := s.artifacts.DailyKeywords(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"date":     sum.Date,
		"keywords": sum.Keywords,
	})
}
