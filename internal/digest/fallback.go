package digest

import (
	"fmt"
	"strings"
	"time"

	"github.com/daye-lim/news-intel/internal/domain"
)

// previewLength caps per-article content in the locally generated digest.
const previewLength = 300

// fallbackNewsletter renders a plain-Markdown digest directly from the
// article data. It is the answer whenever the generation provider is missing
// or fails: deterministic, always valid, never an error.
func fallbackNewsletter(articles []domain.Article, now time.Time) string {
	var b strings.Builder

	b.WriteString("# News Intelligence Weekly\n")
	b.WriteString(koreanDate(now) + "\n\n")
	b.WriteString("---\n\n")
	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "이번 주 주요 뉴스 %d건을 정리했습니다.\n\n", len(articles))
	b.WriteString("---\n\n")

	for i, a := range articles {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, a.Title)
		fmt.Fprintf(&b, "**카테고리:** %s | **출처:** %s\n\n", a.Category, a.Source)
		fmt.Fprintf(&b, "%s\n\n", preview(a.Content))
		b.WriteString("**Key Insight:** 해당 기사의 주요 함의를 검토하시기 바랍니다.\n\n")
		fmt.Fprintf(&b, "[원문 보기](%s)\n\n", a.URL)
		if i < len(articles)-1 {
			b.WriteString("---\n\n")
		}
	}

	return b.String()
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength]) + "..."
}
