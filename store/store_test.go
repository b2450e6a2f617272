package store

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	db.Exec("PRAGMA foreign_keys=ON")
	if err := ApplySchema(db); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func seedArticle(t *testing.T, s *Store, a *Article) {
	t.Helper()
	if a.URL == "" {
		a.URL = "https://news.example/" + a.ID
	}
	err := s.InsertBatch(context.Background(),
		[]*Press{{ID: a.PressID, Name: "press-" + a.PressID}},
		nil,
		[]*Article{a})
	if err != nil {
		t.Fatalf("seed article %s: %v", a.ID, err)
	}
}

func TestApplySchema(t *testing.T) {
	// WHAT: schema creates every table the pipeline touches.
	db := openTestDB(t)
	for _, table := range []string{"press", "authors", "articles", "chat_lines",
		"story_summaries", "highlighted_articles", "keyword_summaries"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s not found: %v", table, err)
		}
	}
}

func TestGetArticleAbsent(t *testing.T) {
	// WHAT: unknown article yields (nil, nil), not an error.
	// WHY: the orchestrator maps nil to a NotFound condition itself.
	s := NewStore(openTestDB(t))
	a, err := s.GetArticle(context.Background(), "missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a != nil {
		t.Fatalf("want nil article, got %+v", a)
	}
}

func TestInsertBatchIdempotent(t *testing.T) {
	// WHAT: re-inserting the same batch does not duplicate rows.
	// WHY: the crawler may be re-run over an overlapping ranking page.
	s := NewStore(openTestDB(t))
	ctx := context.Background()

	presses := []*Press{{ID: "032", Name: "경향신문"}}
	authors := []*Author{{ID: "12345032", AuthorKey: "12345", Name: "김기자", PressID: "032"}}
	articles := []*Article{{
		ID: "a1", Title: "첫 기사", URL: "https://n.news.example/032/0001",
		Content: "본문", PublishedAt: 1717200000, Genre: "정치",
		ActivityScore: 42, AuthorID: "12345032", PressID: "032",
	}}

	for i := 0; i < 2; i++ {
		if err := s.InsertBatch(ctx, presses, authors, articles); err != nil {
			t.Fatalf("insert batch (round %d): %v", i+1, err)
		}
	}

	var count int
	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("articles = %d, want 1", count)
	}

	got, err := s.GetArticle(ctx, "a1")
	if err != nil || got == nil {
		t.Fatalf("get article: %v, %v", got, err)
	}
	if got.Genre != "정치" || got.ActivityScore != 42 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.MediaBias != nil || got.NarrativeSummary != nil {
		t.Error("generated fields should start nil")
	}
}

func TestChatLinesUniquePerPosition(t *testing.T) {
	// WHAT: a second dialogue batch for the same article fails and leaves
	// no partial rows.
	// WHY: the per-article-per-position key is the backstop for the
	// concurrent first-request race.
	s := NewStore(openTestDB(t))
	ctx := context.Background()
	seedArticle(t, s, &Article{ID: "a1", Title: "t", Content: "c", PressID: "001"})

	batch := []*ChatLine{
		{ID: "l1", ArticleID: "a1", Position: 1, SpeakerID: 1, Speaker: "바비킴", Content: "안녕하세요."},
		{ID: "l2", ArticleID: "a1", Position: 2, SpeakerID: 2, Speaker: "제작진", Content: "반갑습니다."},
	}
	if err := s.InsertChatLines(ctx, batch); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	dup := []*ChatLine{
		{ID: "l3", ArticleID: "a1", Position: 0, SpeakerID: 1, Speaker: "바비킴", Content: "다시."},
		{ID: "l4", ArticleID: "a1", Position: 1, SpeakerID: 2, Speaker: "제작진", Content: "충돌."},
	}
	if err := s.InsertChatLines(ctx, dup); err == nil {
		t.Fatal("want uniqueness violation for duplicate position")
	}

	lines, err := s.ListChatLines(ctx, "a1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2 (failed batch fully rolled back)", len(lines))
	}
	if lines[0].Position != 1 || lines[1].Position != 2 {
		t.Errorf("order: got %d,%d", lines[0].Position, lines[1].Position)
	}

	ok, err := s.HasChatLines(ctx, "a1")
	if err != nil || !ok {
		t.Fatalf("HasChatLines = %v, %v", ok, err)
	}
}

func TestStorySummaryMarksArticle(t *testing.T) {
	// WHAT: inserting a story summary also sets articles.narrative_summary.
	// WHY: the existence check reads the article field, not the artifact row.
	s := NewStore(openTestDB(t))
	ctx := context.Background()
	seedArticle(t, s, &Article{ID: "a1", Title: "t", Content: "c", PressID: "001"})

	sum := &StorySummary{
		ArticleID:  "a1",
		Story:      "옛날 옛적 어느 마을에...",
		Dictionary: map[string]string{"마을  ": "정치권"},
	}
	if err := s.InsertStorySummary(ctx, sum); err != nil {
		t.Fatalf("insert: %v", err)
	}

	a, err := s.GetArticle(ctx, "a1")
	if err != nil || a == nil {
		t.Fatalf("get article: %v", err)
	}
	if a.NarrativeSummary == nil || *a.NarrativeSummary != sum.Story {
		t.Errorf("narrative_summary not set: %+v", a.NarrativeSummary)
	}

	got, err := s.GetStorySummary(ctx, "a1")
	if err != nil || got == nil {
		t.Fatalf("get summary: %v", err)
	}
	if got.Dictionary["마을  "] != "정치권" {
		t.Errorf("dictionary round-trip: %+v", got.Dictionary)
	}
}

func TestHighlightPrimaryKey(t *testing.T) {
	// WHAT: one highlight per article; second insert errors.
	s := NewStore(openTestDB(t))
	ctx := context.Background()
	seedArticle(t, s, &Article{ID: "a1", Title: "t", Content: "c", PressID: "001"})

	if err := s.InsertHighlight(ctx, "a1", "[[highlight]]c[[/highlight]]"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.InsertHighlight(ctx, "a1", "other"); err == nil {
		t.Fatal("want primary key violation")
	}
	text, err := s.GetHighlight(ctx, "a1")
	if err != nil || text == nil {
		t.Fatalf("get: %v", err)
	}
	if *text != "[[highlight]]c[[/highlight]]" {
		t.Errorf("text = %q", *text)
	}
}

func TestKeywordSummaryByDate(t *testing.T) {
	// WHAT: keyword summaries are keyed by date and unique per date.
	s := NewStore(openTestDB(t))
	ctx := context.Background()

	aid := "a9"
	sum := &KeywordSummary{
		ID:   "k1",
		Date: "2024-06-01",
		Keywords: []KeywordEntry{
			{Keyword: "선거", Score: 5, ArticleID: &aid},
			{Keyword: "물가", Score: 3},
		},
		CreatedAt: 1717200000,
	}
	if err := s.InsertKeywordSummary(ctx, sum); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.InsertKeywordSummary(ctx, &KeywordSummary{ID: "k2", Date: "2024-06-01"}); err == nil {
		t.Fatal("want unique(date) violation")
	}

	got, err := s.GetKeywordSummary(ctx, "2024-06-01")
	if err != nil || got == nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Keywords) != 2 || got.Keywords[0].Keyword != "선거" {
		t.Errorf("keywords: %+v", got.Keywords)
	}
	if got.Keywords[0].ArticleID == nil || *got.Keywords[0].ArticleID != "a9" {
		t.Errorf("article id: %+v", got.Keywords[0].ArticleID)
	}
	if got.Keywords[1].ArticleID != nil {
		t.Error("second keyword should have nil article id")
	}

	none, err := s.GetKeywordSummary(ctx, "2024-06-02")
	if err != nil || none != nil {
		t.Fatalf("absent date: %v, %v", none, err)
	}
}

func TestBiasUpdateAndExists(t *testing.T) {
	// WHAT: bias fields update once and HasBias flips to true.
	s := NewStore(openTestDB(t))
	ctx := context.Background()
	seedArticle(t, s, &Article{ID: "a1", Title: "t", Content: "c", Genre: "정치", PressID: "001"})

	ok, err := s.HasBias(ctx, "a1")
	if err != nil || ok {
		t.Fatalf("HasBias before = %v, %v", ok, err)
	}
	if err := s.UpdateArticleBias(ctx, "a1", "진보", "있음"); err != nil {
		t.Fatalf("update: %v", err)
	}
	ok, err = s.HasBias(ctx, "a1")
	if err != nil || !ok {
		t.Fatalf("HasBias after = %v, %v", ok, err)
	}
	a, _ := s.GetArticle(ctx, "a1")
	if a.MediaBias == nil || *a.MediaBias != "진보" || a.ReportingBias == nil || *a.ReportingBias != "있음" {
		t.Errorf("bias fields: %+v %+v", a.MediaBias, a.ReportingBias)
	}

	if err := s.UpdateArticleBias(ctx, "missing", "중도", "없음"); err == nil {
		t.Fatal("want error for unknown article")
	}
}

func TestListTitlesWindow(t *testing.T) {
	// WHAT: ListTitles honours the since cutoff; since<=0 returns all.
	// WHY: the keyword window is configurable; zero keeps the historical
	// read-everything behavior.
	s := NewStore(openTestDB(t))
	ctx := context.Background()
	seedArticle(t, s, &Article{ID: "old", Title: "오래된 기사", Content: "c", PublishedAt: 100, PressID: "001"})
	seedArticle(t, s, &Article{ID: "new", Title: "새 기사", Content: "c", PublishedAt: 200, PressID: "001"})

	all, err := s.ListTitles(ctx, 0)
	if err != nil || len(all) != 2 {
		t.Fatalf("all titles = %v, %v", all, err)
	}
	recent, err := s.ListTitles(ctx, 150)
	if err != nil || len(recent) != 1 || recent[0] != "새 기사" {
		t.Fatalf("recent titles = %v, %v", recent, err)
	}
}

func TestBestArticleIDForKeyword(t *testing.T) {
	// WHAT: keyword lookup picks the highest-activity title match.
	s := NewStore(openTestDB(t))
	ctx := context.Background()
	seedArticle(t, s, &Article{ID: "low", Title: "선거 소식", Content: "c", ActivityScore: 1, PressID: "001"})
	seedArticle(t, s, &Article{ID: "high", Title: "선거 결과 발표", Content: "c", ActivityScore: 9, PressID: "001"})

	id, err := s.BestArticleIDForKeyword(ctx, "선거")
	if err != nil || id == nil {
		t.Fatalf("lookup: %v, %v", id, err)
	}
	if *id != "high" {
		t.Errorf("id = %s, want high", *id)
	}

	none, err := s.BestArticleIDForKeyword(ctx, "없는말")
	if err != nil || none != nil {
		t.Fatalf("no match: %v, %v", none, err)
	}
}
