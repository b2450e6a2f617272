package store

// Press is a news outlet scraped from the portal's press pages.
type Press struct {
	ID      string
	Name    string
	LogoURL string
}

// Author is a journalist; ID is author_key + press_id, matching the portal.
type Author struct {
	ID        string
	AuthorKey string
	Name      string
	PressID   string
}

// Article is a scraped ranked news article. NarrativeSummary, MediaBias and
// ReportingBias start nil and are each set at most once by the artifact
// pipeline; nil means "not generated yet".
type Article struct {
	ID               string
	Title            string
	URL              string
	Content          string
	PublishedAt      int64 // unix seconds
	EditedAt         *int64
	Genre            string
	Ranking          int
	ActivityScore    float64
	AuthorID         string
	PressID          string
	NarrativeSummary *string
	MediaBias        *string
	ReportingBias    *string
}

// ChatLine is one dialogue line of the conversational retelling.
type ChatLine struct {
	ID        string
	ArticleID string
	Position  int
	SpeakerID int
	Speaker   string
	Content   string
}

// StorySummary is the analogized retelling with its term dictionary
// (analogy term → real term).
type StorySummary struct {
	ArticleID  string
	Story      string
	Dictionary map[string]string
}

// KeywordEntry is one keyword of a daily summary, enriched with the
// highest-activity article whose title mentions it (nil when none matches).
type KeywordEntry struct {
	Keyword   string  `json:"keyword"`
	Score     int     `json:"score"`
	ArticleID *string `json:"article_id"`
}

// KeywordSummary holds the keywords generated for one calendar date.
type KeywordSummary struct {
	ID        string
	Date      string // YYYY-MM-DD
	Keywords  []KeywordEntry
	CreatedAt int64
}
