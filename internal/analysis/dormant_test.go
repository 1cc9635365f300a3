package analysis

import (
	"testing"
	"time"

	"github.com/ademuri/spotify-rediscover/internal/history"
)

// listening returns n one-hour plays for the artist starting at ts.
func listening(ts string, n int, artist string) []history.PlayEvent {
	events := make([]history.PlayEvent, 0, n)
	start := at(ts)
	for i := 0; i < n; i++ {
		events = append(events, history.PlayEvent{
			Timestamp: start.Add(time.Duration(i) * time.Hour),
			MsPlayed:  3600000,
			Artist:    artist,
			Album:     "Album",
			Track:     "Track",
		})
	}
	return events
}

func TestDetectDormant(t *testing.T) {
	now := at("2024-06-01T00:00:00Z")
	var events []history.PlayEvent
	// 5 hours, last played 2020: dormant.
	events = append(events, listening("2020-03-01T10:00:00Z", 5, "Forgotten")...)
	// 10 hours, but played last month: not dormant.
	events = append(events, listening("2024-05-01T10:00:00Z", 10, "Current")...)
	// Long silence but only 2 hours of lifetime listening: not dormant.
	events = append(events, listening("2019-01-01T10:00:00Z", 2, "Barely Heard")...)

	results := DetectDormant(Aggregate(events), DefaultConfig(), now)
	if len(results) != 1 {
		t.Fatalf("Expected 1 dormant artist, got %v", results)
	}

	d := results[0]
	if d.Artist != "Forgotten" {
		t.Errorf("Unexpected artist: %+v", d)
	}
	if d.Hours != 5 {
		t.Errorf("Expected 5 hours, got %v", d.Hours)
	}
	// 2020-03 to 2024-06 is about 4.3 years.
	if d.DormantYears < 4.2 || d.DormantYears > 4.3 {
		t.Errorf("Expected ~4.2 dormant years, got %v", d.DormantYears)
	}
}

func TestDetectDormant_boundary(t *testing.T) {
	// Exactly 3 hours and just over 2 years of silence qualifies.
	events := listening("2022-05-01T10:00:00Z", 3, "Edge")

	results := DetectDormant(Aggregate(events), DefaultConfig(), at("2024-06-01T00:00:00Z"))
	if len(results) != 1 {
		t.Fatalf("Expected the boundary artist to qualify, got %v", results)
	}

	// A year and a half of silence does not.
	results = DetectDormant(Aggregate(events), DefaultConfig(), at("2023-11-01T00:00:00Z"))
	if len(results) != 0 {
		t.Errorf("Expected no dormant artists, got %v", results)
	}
}

func TestDetectDormant_ordering(t *testing.T) {
	now := at("2024-06-01T00:00:00Z")
	var events []history.PlayEvent
	events = append(events, listening("2018-01-01T10:00:00Z", 4, "Oldest Silence")...)
	events = append(events, listening("2020-01-01T10:00:00Z", 20, "Heavier")...)
	events = append(events, listening("2020-01-01T10:00:00Z", 5, "Lighter")...)

	results := DetectDormant(Aggregate(events), DefaultConfig(), now)
	if len(results) != 3 {
		t.Fatalf("Expected 3 dormant artists, got %v", results)
	}
	if results[0].Artist != "Oldest Silence" {
		t.Errorf("Expected longest silence first, got %+v", results)
	}
	if results[1].Artist != "Heavier" || results[2].Artist != "Lighter" {
		t.Errorf("Expected hours to break year ties, got %+v", results)
	}
}
