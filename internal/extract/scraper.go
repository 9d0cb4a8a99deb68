package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Scraper pulls article paragraphs straight off the page when no extraction
// credential is configured. Best effort only: sites that render body text
// client-side come back empty and the caller falls back to the snippet.
type Scraper struct {
	http *http.Client
}

func NewScraper() *Scraper {
	return &Scraper{
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Selectors tried in order; the first that yields any paragraphs wins.
var articleSelectors = []string{
	"article p",
	".article-body p",
	".article-content p",
	".content p",
	"main p",
}

const minParagraphLength = 40

func (s *Scraper) Extract(ctx context.Context, articleURL string) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		return "", err
	}
	request.Header.Set("User-Agent", "news-intel/1.0")

	resp, err := s.http.Do(request)
	if err != nil {
		return "", fmt.Errorf("error loading page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	text, err := ParagraphText(resp.Body)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("no article content at %s", articleURL)
	}

	return text, nil
}

// ParagraphText parses HTML and joins the article paragraphs it can find.
func ParagraphText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("error parsing HTML: %w", err)
	}

	var paragraphs []string
	for _, selector := range articleSelectors {
		doc.Find(selector).Each(func(i int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if len(text) >= minParagraphLength {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) > 0 {
			break
		}
	}

	return strings.Join(paragraphs, "\n\n"), nil
}
