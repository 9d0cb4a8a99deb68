// Package curation owns the durable dashboard state: user topics and
// whitelisted sources, each a JSON array in one file under the data
// directory, loaded once at startup and written back on every change.
// Missing or unparsable files fall back to the seeded defaults.
package curation

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

func loadJSON[T any](path string, defaults []T) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read store file, seeding defaults", "path", path, "error", err)
		}
		return defaults
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("failed to parse store file, seeding defaults", "path", path, "error", err)
		return defaults
	}
	if len(items) == 0 {
		return defaults
	}
	return items
}

func saveJSON(path string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Error("failed to marshal store file", "path", path, "error", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		slog.Error("failed to create data dir", "path", path, "error", err)
		return
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		slog.Error("failed to write store file", "path", path, "error", err)
	}
}
