package domain

import "strings"

// NewsSource is a whitelisted publisher domain used to scope searches.
type NewsSource struct {
	ID     string `json:"id"`
	Domain string `json:"domain"`
	Name   string `json:"name"`
}

var tldSuffixes = []string{".com", ".org", ".net", ".co", ".io"}

// CleanDomain canonicalizes a user-entered domain: scheme, www prefix and
// path are stripped and the rest lowercased. Returns "" when nothing usable
// remains; callers treat that as a no-op rather than an error.
func CleanDomain(raw string) string {
	d := strings.ToLower(strings.TrimSpace(raw))
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "www.")
	if i := strings.Index(d, "/"); i >= 0 {
		d = d[:i]
	}
	return d
}

// DeriveSourceName strips one common TLD suffix from a cleaned domain to get
// a display name. "techcrunch.com" -> "techcrunch".
func DeriveSourceName(domain string) string {
	for _, suffix := range tldSuffixes {
		if strings.HasSuffix(domain, suffix) {
			return strings.TrimSuffix(domain, suffix)
		}
	}
	return domain
}
