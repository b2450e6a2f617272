package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const rankingURL = "https://news.naver.com/main/ranking/popularDay.naver"

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"

// PageRenderer renders a dynamic page to its settled HTML. Satisfied by
// *Browser; tests substitute canned documents.
type PageRenderer interface {
	HTML(ctx context.Context, pageURL string) (string, error)
}

// Scraper walks the portal's daily ranking page and collects the top ranked
// articles per outlet together with outlet metadata. The ranking and press
// pages are static; the article pages need a renderer.
type Scraper struct {
	http     *http.Client
	renderer PageRenderer
	cleaner  *Cleaner
	logger   *slog.Logger
}

func NewScraper(renderer PageRenderer, logger *slog.Logger) *Scraper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scraper{
		http:     &http.Client{Timeout: 30 * time.Second},
		renderer: renderer,
		cleaner:  NewCleaner(),
		logger:   logger,
	}
}

// rankingItem is one entry of the ranking list before the article page has
// been visited.
type rankingItem struct {
	Ranking string
	Title   string
	URL     string
}

// Crawl fetches the ranking page and returns the scraped articles and the
// outlets they belong to. Articles whose pages are missing required fields
// are skipped with a log line, matching a portal that reshuffles its markup
// per article type.
func (s *Scraper) Crawl(ctx context.Context) ([]RawArticle, []PressRecord, error) {
	doc, err := s.fetchDoc(ctx, rankingURL)
	if err != nil {
		return nil, nil, fmt.Errorf("ranking page: %w", err)
	}

	presses := s.collectPresses(ctx, doc)
	items := rankingItems(doc)

	raws := make([]RawArticle, 0, len(items))
	for _, item := range items {
		html, err := s.renderer.HTML(ctx, item.URL)
		if err != nil {
			s.logger.Warn("scrape: article render failed", "url", item.URL, "error", err)
			continue
		}
		articleDoc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			s.logger.Warn("scrape: article parse failed", "url", item.URL, "error", err)
			continue
		}
		raw, err := s.parseArticle(articleDoc, item)
		if err != nil {
			s.logger.Warn("scrape: article skipped", "url", item.URL, "error", err)
			continue
		}
		raws = append(raws, *raw)
	}
	return raws, presses, nil
}

// rankingItems extracts the article links to visit. Each outlet block lists
// five articles; only the top three per block carry enough engagement to be
// worth a full page render, so positions 4, 5, 9, 10, ... are skipped.
func rankingItems(doc *goquery.Document) []rankingItem {
	var items []rankingItem
	count := 0
	doc.Find("ul.rankingnews_list > li").Each(func(_ int, li *goquery.Selection) {
		count++
		if count%5 > 3 || count%5 == 0 {
			return
		}
		link := li.Find("div.list_content > a.list_title")
		href, ok := link.Attr("href")
		if !ok || link.Text() == "" {
			return
		}
		items = append(items, rankingItem{
			Ranking: strings.TrimSpace(li.Find("em.list_ranking_num").Text()),
			Title:   strings.TrimSpace(link.Text()),
			URL:     href,
		})
	})
	return items
}

// parseArticle pulls the article fields out of a rendered page.
func (s *Scraper) parseArticle(doc *goquery.Document, item rankingItem) (*RawArticle, error) {
	body := doc.Find("article#dic_area")
	if body.Length() == 0 {
		return nil, fmt.Errorf("no article body")
	}
	// Image captions are decoration, not article text.
	body.Find("em.img_desc, span.end_photo_org").Remove()
	bodyHTML, err := body.Html()
	if err != nil {
		return nil, fmt.Errorf("article body: %w", err)
	}
	content, err := s.cleaner.Text(bodyHTML)
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, fmt.Errorf("empty article body")
	}

	publishedAt, ok := doc.Find("span._ARTICLE_DATE_TIME").Attr("data-date-time")
	if !ok {
		return nil, fmt.Errorf("no published date")
	}
	var editedAt *string
	if v, ok := doc.Find("span._ARTICLE_MODIFY_DATE_TIME").Attr("data-modify-date-time"); ok && v != "" {
		editedAt = &v
	}

	var genre *string
	doc.Find("a.Nitem_link").EachWithBreak(func(_ int, tab *goquery.Selection) bool {
		if tab.AttrOr("aria-selected", "") == "true" {
			g := strings.TrimSpace(tab.Text())
			genre = &g
			return false
		}
		return true
	})

	authorTag := doc.Find("em.media_journalistcard_summary_name_text").First()
	if authorTag.Length() == 0 {
		return nil, fmt.Errorf("no author card")
	}
	authorName, _, _ := strings.Cut(strings.TrimSpace(authorTag.Text()), " 기자")
	authorHref, ok := authorTag.Closest("a").Attr("href")
	if !ok {
		return nil, fmt.Errorf("no author link")
	}
	pressID, authorKey, err := journalistIDs(authorHref)
	if err != nil {
		return nil, err
	}

	likes := parseCount(doc.Find("span._count_num").First().Text())
	comments := parseCount(doc.Find("span.u_cbox_count").First().Text())

	return &RawArticle{
		Ranking:       item.Ranking,
		Title:         item.Title,
		URL:           item.URL,
		Content:       content,
		PublishedAt:   publishedAt,
		EditedAt:      editedAt,
		Genre:         genre,
		ActivityScore: float64(likes + comments*2),
		AuthorName:    authorName,
		AuthorID:      authorKey,
		PressID:       pressID,
	}, nil
}

// collectPresses visits each outlet's header link on the ranking page and
// reads its display name and logo. Failures drop the outlet, not the crawl.
func (s *Scraper) collectPresses(ctx context.Context, doc *goquery.Document) []PressRecord {
	presses := []PressRecord{unknownPress}
	seen := map[string]bool{unknownPress.ID: true}

	doc.Find("a.rankingnews_box_head").Each(func(_ int, head *goquery.Selection) {
		href, ok := head.Attr("href")
		if !ok {
			return
		}
		pressID := lastPathSegment(href)
		if pressID == "" || seen[pressID] {
			return
		}

		pressDoc, err := s.fetchDoc(ctx, href)
		if err != nil {
			s.logger.Warn("scrape: press page failed", "url", href, "error", err)
			return
		}
		name := strings.TrimSpace(pressDoc.Find("h3.press_hd_name").First().Text())
		if name == "" {
			return
		}
		logo := pressDoc.Find("a.press_hd_ci_image img").First().AttrOr("src", "")

		seen[pressID] = true
		presses = append(presses, PressRecord{ID: pressID, Name: name, Logo: logo})
	})
	return presses
}

func (s *Scraper) fetchDoc(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

// journalistIDs splits a journalist profile URL of the form
// .../journalist/{pressID}/{authorKey} into its two identifiers.
func journalistIDs(href string) (pressID, authorKey string, err error) {
	u, err := url.Parse(href)
	if err != nil {
		return "", "", fmt.Errorf("author link: %w", err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, p := range parts {
		if p == "journalist" && i+2 < len(parts) {
			return parts[i+1], parts[i+2], nil
		}
	}
	return "", "", fmt.Errorf("author link %q has no journalist path", href)
}

// lastPathSegment returns the final path element of a URL, or "".
func lastPathSegment(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// parseCount parses a human-formatted count like "1,234". Anything
// unparseable is zero.
func parseCount(text string) int {
	clean := strings.NewReplacer(",", "", `"`, "").Replace(strings.TrimSpace(text))
	n, err := strconv.Atoi(clean)
	if err != nil {
		return 0
	}
	return n
}
