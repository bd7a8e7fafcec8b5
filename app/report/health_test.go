package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lysyi3m/vendor-daily/app/feed"
)

func TestPrintHealth(t *testing.T) {
	reportDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	rows := []feed.Health{
		{Name: "zeta", TotalItems: 3, OnDate: 1, Latest: time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)},
		{Name: "Alpha", TotalItems: 5, OnDate: 0, Latest: time.Date(2023, 11, 1, 10, 0, 0, 0, time.UTC)},
		{Name: "broken", Err: "connection refused"},
		{Name: "quiet", TotalItems: 0},
	}

	var buf bytes.Buffer
	PrintHealth(&buf, rows, reportDate, 21)
	output := buf.String()

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("Expected header + 4 rows + summary, got %d lines:\n%s", len(lines), output)
	}

	if lines[0] != "Source health for 2024-01-05 (stale > 21 days):" {
		t.Errorf("Unexpected header: %s", lines[0])
	}

	// rows sort case-insensitively by name
	if !strings.HasPrefix(lines[1], "- Alpha:") || !strings.HasPrefix(lines[4], "- zeta:") {
		t.Errorf("Rows should be sorted by name:\n%s", output)
	}

	if !strings.Contains(lines[1], "status=stale") || !strings.Contains(lines[1], "age_days=65") {
		t.Errorf("Alpha should be stale with its age listed: %s", lines[1])
	}
	if !strings.Contains(lines[2], "status=error") || !strings.Contains(lines[2], "error=connection refused") {
		t.Errorf("broken should carry its error text: %s", lines[2])
	}
	if !strings.Contains(lines[3], "status=empty") || !strings.Contains(lines[3], "latest=-") {
		t.Errorf("quiet should be empty: %s", lines[3])
	}
	if !strings.Contains(lines[4], "status=ok") || !strings.Contains(lines[4], "latest=2024-01-04") || !strings.Contains(lines[4], "age_days=1") {
		t.Errorf("zeta should be ok with age 1: %s", lines[4])
	}

	if lines[5] != "Health summary: 4 sources, 1 stale, 1 empty, 1 error." {
		t.Errorf("Unexpected summary: %s", lines[5])
	}
}

func TestDaysBetween(t *testing.T) {
	report := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	if days := daysBetween(time.Date(2024, 1, 4, 23, 0, 0, 0, time.UTC), report); days != 1 {
		t.Errorf("Expected 1 day, got %d", days)
	}
	if days := daysBetween(time.Date(2024, 1, 5, 1, 0, 0, 0, time.UTC), report); days != 0 {
		t.Errorf("Same day should be 0, got %d", days)
	}
	if days := daysBetween(time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), report); days != 0 {
		t.Errorf("Future dates clamp to 0, got %d", days)
	}
}
