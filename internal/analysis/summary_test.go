package analysis

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/ademuri/spotify-rediscover/internal/history"
)

func TestBuildSummary(t *testing.T) {
	now := at("2024-06-01T00:00:00Z")
	var events []history.PlayEvent
	events = append(events, monthlyPlays("2021-06", 30, "Gone", "Album")...)
	events = append(events, monthlyPlays("2023-12", 10, "Current", "Other")...)

	summary := BuildSummary(Aggregate(events), DefaultConfig(), now)

	meta := summary.Metadata
	if meta.GeneratedDate != "2024-06-01" {
		t.Errorf("Expected generated date 2024-06-01, got %q", meta.GeneratedDate)
	}
	if meta.TotalPlays != 40 || meta.TotalArtists != 2 || meta.TotalAlbums != 2 {
		t.Errorf("Unexpected totals: %+v", meta)
	}
	if meta.FirstMonth != "2021-06" || meta.LastMonth != "2023-12" {
		t.Errorf("Unexpected month range: %+v", meta)
	}

	if len(summary.TopArtists) != 2 || summary.TopArtists[0].Artist != "Gone" {
		t.Errorf("Unexpected top artists: %v", summary.TopArtists)
	}
	if len(summary.ArtistDropoffs) != 1 || summary.ArtistDropoffs[0].Artist != "Gone" {
		t.Errorf("Expected Gone to drop off, got %v", summary.ArtistDropoffs)
	}
}

func TestBuildSummary_deterministic(t *testing.T) {
	now := at("2024-06-01T00:00:00Z")
	var events []history.PlayEvent
	events = append(events, monthlyPlays("2021-06", 80, "Spiker", "A")...)
	for m := 1; m <= 12; m++ {
		events = append(events, monthlyPlays(fmt.Sprintf("2022-%02d", m), 1, "Spiker", "A")...)
	}
	events = append(events, monthlyPlays("2021-06", 25, "Binge", "The Album")...)

	first := BuildSummary(Aggregate(events), DefaultConfig(), now)
	second := BuildSummary(Aggregate(events), DefaultConfig(), now)
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical summaries for identical inputs")
	}
}

func TestPeriod(t *testing.T) {
	events := []history.PlayEvent{
		play("2022-12-31T23:59:59Z", "A", "B", "C"),
		play("2023-01-01T00:00:00Z", "A", "B", "C"),
		play("2023-06-15T12:00:00Z", "A", "B", "C"),
		play("2024-01-01T00:00:00Z", "A", "B", "C"),
	}

	start := at("2023-01-01T00:00:00Z")
	end := at("2024-01-01T00:00:00Z")

	// Half-open: start included, end excluded.
	filtered := Period(events, start, end)
	if len(filtered) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(filtered))
	}
	if !filtered[0].Timestamp.Equal(start) {
		t.Errorf("Expected the start instant to be included, got %v", filtered[0].Timestamp)
	}

	if got := Period(events, start, time.Time{}); len(got) != 3 {
		t.Errorf("Expected 3 events with open end, got %d", len(got))
	}
	if got := Period(events, time.Time{}, end); len(got) != 3 {
		t.Errorf("Expected 3 events with open start, got %d", len(got))
	}
	if got := Period(events, time.Time{}, time.Time{}); len(got) != 4 {
		t.Errorf("Expected all events with open bounds, got %d", len(got))
	}
}
