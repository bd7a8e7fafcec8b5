package feed

import (
	"testing"
	"time"
)

func TestFilterer_Run_SelectsReportDate(t *testing.T) {
	filterer := NewFilterer()
	reportDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	items := []Item{
		{Title: "Too Early", Published: time.Date(2024, 1, 4, 23, 59, 0, 0, time.UTC)},
		{Title: "On Date", Published: time.Date(2024, 1, 5, 0, 0, 1, 0, time.UTC)},
		{Title: "Too Late", Published: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)},
	}

	result := filterer.Run(items, reportDate)

	if len(result) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(result))
	}
	if result[0].Title != "On Date" {
		t.Errorf("Unexpected surviving item: %s", result[0].Title)
	}
}

func TestFilterer_Run_SortsAscending(t *testing.T) {
	filterer := NewFilterer()
	reportDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	items := []Item{
		{Title: "Evening", Published: time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC)},
		{Title: "Morning", Published: time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)},
		{Title: "Noon", Published: time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)},
	}

	result := filterer.Run(items, reportDate)

	if len(result) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(result))
	}
	for i, expected := range []string{"Morning", "Noon", "Evening"} {
		if result[i].Title != expected {
			t.Errorf("Position %d: expected '%s', got '%s'", i, expected, result[i].Title)
		}
	}
}

func TestFilterer_Run_StableForEqualInstants(t *testing.T) {
	filterer := NewFilterer()
	reportDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	instant := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)

	items := []Item{
		{Title: "First", Published: instant},
		{Title: "Second", Published: instant},
		{Title: "Third", Published: instant},
	}

	result := filterer.Run(items, reportDate)

	for i, expected := range []string{"First", "Second", "Third"} {
		if result[i].Title != expected {
			t.Errorf("Equal instants should keep input order, position %d got '%s'", i, result[i].Title)
		}
	}
}

func TestFilterer_Run_ComparesInLocalZone(t *testing.T) {
	filterer := NewFilterer()
	loc := time.FixedZone("UTC+8", 8*3600)
	reportDate := time.Date(2024, 1, 5, 0, 0, 0, 0, loc)

	// 2024-01-04 22:00 UTC is 2024-01-05 06:00 in UTC+8
	items := []Item{
		{Title: "Crosses Midnight", Published: time.Date(2024, 1, 4, 22, 0, 0, 0, time.UTC).In(loc)},
	}

	result := filterer.Run(items, reportDate)
	if len(result) != 1 {
		t.Errorf("The calendar date comparison happens in the normalized zone, got %d items", len(result))
	}
}
