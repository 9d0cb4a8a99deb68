package domain

import "time"

// NewsItem is a single search hit as served to the dashboard. Items are
// rebuilt on every aggregation cycle and never persisted.
type NewsItem struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Content     string    `json:"content"`
	Score       float64   `json:"score"` // provider relevance, 0.0-1.0
	PublishedAt time.Time `json:"publishedDate"`
	Source      string    `json:"source"`
	Category    string    `json:"category,omitempty"`
}

// Article is the shape the digest endpoint accepts: a user-selected item
// reduced to what the newsletter prompt needs.
type Article struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Source   string `json:"source"`
	Category string `json:"category"`
	URL      string `json:"url"`
}

// Insight is a per-result analyst note. Held only in process memory and lost
// on restart, same as the session it belongs to.
type Insight struct {
	NewsID    string    `json:"newsId"`
	Insight   string    `json:"insight"`
	UpdatedAt time.Time `json:"updatedAt"`
}
