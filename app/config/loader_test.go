package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSourcesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write sources file: %v", err)
	}
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeSourcesFile(t, `
sources:
  - name: Vendor A
    rss: https://a.example/feed.xml
    site: https://a.example
    tags: [vendor, blog]
  - name: Vendor B
    rss: https://b.example/feed.xml
`)

	sources, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(sources) != 2 {
		t.Fatalf("Expected 2 sources, got %d", len(sources))
	}
	if sources[0].Name != "Vendor A" || sources[0].RSS != "https://a.example/feed.xml" {
		t.Errorf("Unexpected first source: %+v", sources[0])
	}
	if sources[0].Site != "https://a.example" {
		t.Errorf("Expected site to be kept, got '%s'", sources[0].Site)
	}
	if len(sources[0].Tags) != 2 {
		t.Errorf("Expected 2 tags, got %v", sources[0].Tags)
	}
}

func TestLoader_Load_SkipsInvalidEntries(t *testing.T) {
	path := writeSourcesFile(t, `
sources:
  - name: "  "
    rss: https://a.example/feed.xml
  - name: No Endpoint
  - name: "  Valid  "
    rss: "  https://c.example/feed.xml  "
`)

	sources, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(sources) != 1 {
		t.Fatalf("Expected 1 source, got %d", len(sources))
	}
	if sources[0].Name != "Valid" {
		t.Errorf("Expected trimmed name 'Valid', got '%s'", sources[0].Name)
	}
	if sources[0].RSS != "https://c.example/feed.xml" {
		t.Errorf("Expected trimmed endpoint, got '%s'", sources[0].RSS)
	}
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	path := writeSourcesFile(t, "")

	sources, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(sources) != 0 {
		t.Errorf("Expected no sources, got %d", len(sources))
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "absent.yaml")).Load(); err == nil {
		t.Error("Expected an error for a missing sources file")
	}
}

func TestLoader_Load_MalformedYAML(t *testing.T) {
	path := writeSourcesFile(t, "sources: [:::")

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Expected an error for malformed YAML")
	}
}
