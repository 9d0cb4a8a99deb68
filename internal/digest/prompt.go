package digest

import (
	"fmt"
	"strings"
	"time"

	"github.com/daye-lim/news-intel/internal/domain"
)

func koreanDate(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}

// newsletterPrompt composes the generation request: a Korean-language
// Substack-style newsletter built from the enriched article bodies.
func newsletterPrompt(articles []domain.Article, now time.Time) string {
	var blocks []string
	for i, a := range articles {
		blocks = append(blocks, fmt.Sprintf(
			"[Article %d]\nTitle: %s\nSource: %s\nCategory: %s\nContent: %s\nURL: %s",
			i+1, a.Title, a.Source, a.Category, a.Content, a.URL,
		))
	}
	articlesText := strings.Join(blocks, "\n\n---\n\n")

	return fmt.Sprintf(`You are a top Substack newsletter writer known for sharp, engaging analysis. Write a Korean-language newsletter from the articles below.

Use rich Markdown formatting. Follow this structure exactly:

# 📮 News Intelligence Weekly
> 한 줄 서브헤딩 — 이번 호의 핵심 키워드를 담은 문장

**%s**

---

## 🔍 이번 주 핵심 요약

Write 3-4 sentences summarizing the overarching themes across all articles. Use **bold** for key phrases. Make it feel like a personal briefing from an expert analyst.

---

Then for EACH article, write a section like this:

## 1. [Article title in Korean translation]

**📌 카테고리:** Category | **출처:** Source

Write 3-4 sentence analysis in Korean. Not a dry summary — add context, explain *why this matters*, and connect it to broader trends. Use **bold** for the most important phrases.

> 💡 **핵심 인사이트:** One sentence takeaway in Korean that captures the "so what?" of this article.

🔗 [원문 읽기](url)

---

After all articles, end with:

## 📝 에디터 노트

Write 2-3 closing sentences connecting the dots between the articles, offering a forward-looking perspective.

---

*다음 호에서 또 만나요! 🙌*

IMPORTANT RULES:
- Write ALL analysis and insights in Korean
- Keep article titles translated to Korean
- Use bold, blockquotes, and emojis purposefully (not excessively)
- Tone: professional yet warm, like a trusted industry insider
- Base your analysis on the FULL article content provided — not just headlines

Articles:
%s`, koreanDate(now), articlesText)
}
