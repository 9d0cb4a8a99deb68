package search

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/daye-lim/news-intel/internal/domain"
	"gopkg.in/yaml.v3"
)

// The demo catalog backs the credential-less path: a small fixed set of
// placeholder stories so the pipeline and UI stay exercisable without a
// provider key.

//go:embed demo_catalog.yaml
var demoCatalogYAML []byte

type demoCatalog struct {
	Entries []demoEntry `yaml:"entries"`
}

type demoEntry struct {
	Keyword string     `yaml:"keyword"`
	Items   []demoItem `yaml:"items"`
}

type demoItem struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	Source  string `yaml:"source"`
	DaysAgo int    `yaml:"days_ago"`
}

var catalog = mustLoadCatalog()

func mustLoadCatalog() demoCatalog {
	var c demoCatalog
	if err := yaml.Unmarshal(demoCatalogYAML, &c); err != nil {
		panic(fmt.Sprintf("demo catalog: %v", err))
	}
	return c
}

// demoNews synthesizes placeholder results for one keyword. A catalog entry
// matches when either string contains the other, case-insensitively; with no
// match a single generic placeholder mentioning the keyword is returned.
func demoNews(keyword string, now time.Time) []domain.NewsItem {
	kw := strings.ToLower(keyword)

	var matched []demoItem
	for _, entry := range catalog.Entries {
		ck := strings.ToLower(entry.Keyword)
		if strings.Contains(kw, ck) || strings.Contains(ck, kw) {
			matched = entry.Items
			break
		}
	}

	if len(matched) == 0 {
		matched = []demoItem{
			{
				Title:   fmt.Sprintf("Latest Developments in %s", keyword),
				Content: fmt.Sprintf("Stay updated on the latest news and regulatory changes related to %s. Legal experts are closely monitoring developments in this rapidly evolving area.", keyword),
				Source:  "lawtech.com",
				DaysAgo: 1,
			},
		}
	}

	items := make([]domain.NewsItem, 0, len(matched))
	for i, m := range matched {
		items = append(items, domain.NewsItem{
			Title:       m.Title,
			URL:         fmt.Sprintf("https://%s/article/%s-%d", m.Source, slugify(keyword), i),
			Content:     m.Content,
			Score:       0.95 - float64(i)*0.05,
			PublishedAt: now.Add(-time.Duration(m.DaysAgo) * 24 * time.Hour),
			Source:      m.Source,
		})
	}

	return items
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "-")
}
