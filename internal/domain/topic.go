package domain

import "time"

// Topic is a user-defined keyword used to query the search provider and to
// label results. Name is unique case-insensitively within a topic set.
type Topic struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// ColorPresets is the fixed palette topics draw from, first unused slot wins.
var ColorPresets = []string{
	"from-violet-500 to-purple-600",
	"from-emerald-500 to-teal-600",
	"from-blue-500 to-cyan-600",
	"from-rose-500 to-pink-600",
	"from-amber-500 to-orange-600",
	"from-indigo-500 to-blue-600",
	"from-fuchsia-500 to-pink-600",
	"from-lime-500 to-green-600",
	"from-sky-500 to-blue-600",
	"from-red-500 to-rose-600",
	"from-teal-500 to-emerald-600",
	"from-orange-500 to-amber-600",
}

// NextColor returns the first palette entry no existing topic uses, falling
// back to round-robin once the palette is exhausted.
func NextColor(existing []Topic) string {
	used := make(map[string]bool, len(existing))
	for _, t := range existing {
		used[t.Color] = true
	}
	for _, c := range ColorPresets {
		if !used[c] {
			return c
		}
	}
	return ColorPresets[len(existing)%len(ColorPresets)]
}
