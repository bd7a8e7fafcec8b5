package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of source definitions
type Loader struct {
	path string
}

// NewLoader creates a new source definitions loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the sources file and returns the usable source entries.
// Entries missing a name or endpoint are skipped rather than failing the
// whole run.
func (l *Loader) Load() ([]Source, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var parsed sourcesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", l.path, err)
	}

	sources := make([]Source, 0, len(parsed.Sources))
	for _, source := range parsed.Sources {
		source.Name = strings.TrimSpace(source.Name)
		source.RSS = strings.TrimSpace(source.RSS)
		if source.Name == "" || source.RSS == "" {
			slog.Warn("Skipping source entry without name or rss", "file", l.path)
			continue
		}
		sources = append(sources, source)
	}

	return sources, nil
}
