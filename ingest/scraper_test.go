package ingest

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestRankingItemsKeepsTopThreePerBlock(t *testing.T) {
	// WHAT: of each outlet's five ranking entries only the first three are
	// visited; positions 4, 5, 9, 10 are skipped.
	// WHY: the tail entries rarely carry engagement worth a page render.
	var b strings.Builder
	b.WriteString(`<ul class="rankingnews_list">`)
	for i := 1; i <= 10; i++ {
		b.WriteString(`<li><em class="list_ranking_num">`)
		b.WriteString(strings.Repeat("I", i))
		b.WriteString(`</em><div class="list_content"><a class="list_title" href="https://n.news.naver.com/article/`)
		b.WriteString(string(rune('0' + i%10)))
		b.WriteString(`">기사</a></div></li>`)
	}
	b.WriteString(`</ul>`)

	items := rankingItems(docFrom(t, b.String()))
	if len(items) != 6 {
		t.Fatalf("items = %d, want 6", len(items))
	}
	wantRanks := []string{"I", "II", "III", "IIIIII", "IIIIIII", "IIIIIIII"}
	for i, want := range wantRanks {
		if items[i].Ranking != want {
			t.Errorf("item %d ranking = %q, want %q", i, items[i].Ranking, want)
		}
	}
}

const articleFixture = `<html><body>
<article id="dic_area">
  첫 문단입니다.
  <em class="img_desc">사진 설명은 본문이 아닙니다</em>
  <span class="end_photo_org"><img src="photo.jpg"></span>
  <p>둘째 문단입니다.</p>
</article>
<span class="_ARTICLE_DATE_TIME" data-date-time="2025-05-20 17:28:01"></span>
<span class="_ARTICLE_MODIFY_DATE_TIME" data-modify-date-time="2025-05-20 18:00:00"></span>
<a class="Nitem_link" aria-selected="false">경제</a>
<a class="Nitem_link" aria-selected="true">정치</a>
<a href="https://media.naver.com/journalist/032/78111"><em class="media_journalistcard_summary_name_text">홍길동 기자</em></a>
<span class="_count_num">1,234</span>
<span class="u_cbox_count">56</span>
</body></html>`

func TestParseArticle(t *testing.T) {
	// WHAT: a rendered article page yields the full raw record: cleaned
	// body, timestamps, selected genre tab, author identity split out of the
	// journalist link and the combined activity score.
	s := NewScraper(nil, nil)
	raw, err := s.parseArticle(docFrom(t, articleFixture), rankingItem{
		Ranking: "1", Title: "제목", URL: "https://n.news.naver.com/article/1",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if !strings.Contains(raw.Content, "첫 문단입니다") || !strings.Contains(raw.Content, "둘째 문단입니다") {
		t.Fatalf("body text missing: %q", raw.Content)
	}
	if strings.Contains(raw.Content, "사진 설명") {
		t.Fatalf("image caption leaked into body: %q", raw.Content)
	}
	if raw.PublishedAt != "2025-05-20 17:28:01" {
		t.Fatalf("published_at = %q", raw.PublishedAt)
	}
	if raw.EditedAt == nil || *raw.EditedAt != "2025-05-20 18:00:00" {
		t.Fatalf("edited_at = %v", raw.EditedAt)
	}
	if raw.Genre == nil || *raw.Genre != "정치" {
		t.Fatalf("genre = %v, want 정치", raw.Genre)
	}
	if raw.AuthorName != "홍길동" || raw.AuthorID != "78111" || raw.PressID != "032" {
		t.Fatalf("author = %q/%q press = %q", raw.AuthorName, raw.AuthorID, raw.PressID)
	}
	// likes + 2*comments
	if raw.ActivityScore != 1234+2*56 {
		t.Fatalf("activity_score = %v", raw.ActivityScore)
	}
}

func TestParseArticleMissingBody(t *testing.T) {
	// WHAT: a page without the article body is rejected, not half-parsed.
	s := NewScraper(nil, nil)
	_, err := s.parseArticle(docFrom(t, `<html><body><p>광고</p></body></html>`), rankingItem{})
	if err == nil {
		t.Fatal("expected error for missing body")
	}
}

func TestJournalistIDs(t *testing.T) {
	press, key, err := journalistIDs("https://media.naver.com/journalist/032/78111")
	if err != nil {
		t.Fatal(err)
	}
	if press != "032" || key != "78111" {
		t.Fatalf("got %q/%q", press, key)
	}
	if _, _, err := journalistIDs("https://media.naver.com/press/032"); err == nil {
		t.Fatal("expected error for non-journalist link")
	}
}

func TestParseCount(t *testing.T) {
	cases := map[string]int{
		"1,234":   1234,
		` "56" `:  56,
		"":        0,
		"없음":      0,
		"7":       7,
		"12,345 ": 12345,
	}
	for in, want := range cases {
		if got := parseCount(in); got != want {
			t.Errorf("parseCount(%q) = %d, want %d", in, got, want)
		}
	}
}
