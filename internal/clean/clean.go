// Package clean normalizes raw extracted article text before it is handed to
// the generation provider. Extraction providers return page text with
// navigation chrome, related-article blocks and legal boilerplate attached;
// the pipeline here strips the common shapes of that junk and caps length.
package clean

import (
	"regexp"
	"strings"
)

// MaxContentLength is the cap applied after stripping, counted in runes so
// the cut never splits a multi-byte character. Output never exceeds
// MaxContentLength plus the ellipsis marker.
const MaxContentLength = 5000

const ellipsis = "..."

// cutoffPatterns mark the start of trailing page furniture. Everything from
// the first match to the end of the text is dropped. Order matters: each
// pattern runs against the already-truncated text, so an earlier match
// preempts a later one.
var cutoffPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)### Topics`),
	regexp.MustCompile(`(?i)## Topics`),
	regexp.MustCompile(`(?i)More from (?:TechCrunch|Bloomberg|Reuters|The Verge|Wired|Ars Technica|The Guardian|BBC|Politico|WSJ|Financial Times|NYT)`),
	regexp.MustCompile(`(?i)\n(?:Staff|Events|Newsletters|Podcasts|Videos|Partner Content)\n`),
	regexp.MustCompile(`(?i)Related (?:articles?|stories|posts)`),
	regexp.MustCompile(`(?i)Popular (?:now|stories)`),
	regexp.MustCompile(`(?i)You may also like`),
	regexp.MustCompile(`(?i)Recommended for you`),
	regexp.MustCompile(`(?i)\nSign up for\b`),
	regexp.MustCompile(`(?i)\nSubscribe to\b`),
	regexp.MustCompile(`(?i)\nComments?\s*\n`),
}

// lineJunkPatterns scrub matching spans anywhere in the remaining text.
var lineJunkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^.*advertisement\s*$`),
	regexp.MustCompile(`(?im)^.*share this article.*$`),
	regexp.MustCompile(`(?im)^.*follow us on .*$`),
	regexp.MustCompile(`(?i)©\s*\d{4}.*`),
	regexp.MustCompile(`(?i)all rights reserved.*`),
	regexp.MustCompile(`(?i)getty images.*`),
	regexp.MustCompile(`(?i)\[.*?\]\(javascript:.*?\)`),
	regexp.MustCompile(`(?im)^\s*tags?:\s*.*$`),
	regexp.MustCompile(`(?im)^#+\s*Topics?\s*$`),
	regexp.MustCompile(`(?im)^(?:Biotech|Cloud Computing|Enterprise|Fintech|Fundraising|Gadgets|Gaming|Hardware|Privacy|Robotics|Security|Social|Space|Startups|Transportation|Venture|Media & Entertainment|Government & Policy|EVs|Layoffs)\s*$`),
	regexp.MustCompile(`(?im)^(?:Google|Instagram|Meta|Microsoft|TikTok|Apple|Amazon|Facebook)\s*$`),
	regexp.MustCompile(`(?im)^\s*(?:Crunchboard|Contact Us|StrictlyVC|Startup Battlefield|TechCrunch Brand Studio)\s*$`),
}

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// Content strips boilerplate from raw article text and truncates the result.
// It is a pure function: same input, same output. A result stripped down to
// nothing is valid output, not a failure.
func Content(raw string) string {
	cleaned := raw

	for _, p := range cutoffPatterns {
		if loc := p.FindStringIndex(cleaned); loc != nil {
			cleaned = cleaned[:loc[0]]
		}
	}

	for _, p := range lineJunkPatterns {
		cleaned = p.ReplaceAllString(cleaned, "")
	}

	cleaned = excessNewlines.ReplaceAllString(cleaned, "\n\n")
	cleaned = strings.TrimSpace(cleaned)

	if runes := []rune(cleaned); len(runes) > MaxContentLength {
		cleaned = string(runes[:MaxContentLength]) + ellipsis
	}

	return cleaned
}
