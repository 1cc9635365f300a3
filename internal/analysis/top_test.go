package analysis

import (
	"reflect"
	"testing"

	"github.com/ademuri/spotify-rediscover/internal/history"
)

func TestTopArtists(t *testing.T) {
	var events []history.PlayEvent
	events = append(events, monthlyPlays("2023-01", 5, "Heavy", "Album")...)
	events = append(events, monthlyPlays("2023-01", 3, "Medium", "Album")...)
	events = append(events, monthlyPlays("2023-01", 3, "Also Medium", "Album")...)
	events = append(events, monthlyPlays("2023-01", 1, "Light", "Album")...)

	agg := Aggregate(events)

	results := TopArtists(agg, 3)
	expected := []ArtistPlays{
		{Artist: "Heavy", Plays: 5},
		{Artist: "Also Medium", Plays: 3},
		{Artist: "Medium", Plays: 3},
	}
	if !reflect.DeepEqual(results, expected) {
		t.Errorf("Expected %v, got %v", expected, results)
	}

	// limit <= 0 means unlimited.
	if got := TopArtists(agg, 0); len(got) != 4 {
		t.Errorf("Expected all 4 artists, got %v", got)
	}
}

func TestTopAlbums(t *testing.T) {
	var events []history.PlayEvent
	events = append(events, monthlyPlays("2023-01", 4, "Artist", "Second")...)
	events = append(events, monthlyPlays("2023-02", 6, "Artist", "First")...)

	results := TopAlbums(Aggregate(events), 10)
	expected := []AlbumPlays{
		{Artist: "Artist", Album: "First", Plays: 6},
		{Artist: "Artist", Album: "Second", Plays: 4},
	}
	if !reflect.DeepEqual(results, expected) {
		t.Errorf("Expected %v, got %v", expected, results)
	}
}

func TestTopTracks(t *testing.T) {
	events := []history.PlayEvent{
		play("2023-01-01T10:00:00Z", "Artist", "Album", "Hit"),
		play("2023-01-02T10:00:00Z", "Artist", "Album", "Hit"),
		play("2023-01-03T10:00:00Z", "Artist", "Album", "Deep Cut"),
		play("2023-01-04T10:00:00Z", "", "", ""),
	}

	results := TopTracks(events, 10)
	// "<unknown>" sorts before uppercase names in the play-count tie.
	expected := []TrackPlays{
		{Artist: "Artist", Track: "Hit", Plays: 2},
		{Artist: Unknown, Track: Unknown, Plays: 1},
		{Artist: "Artist", Track: "Deep Cut", Plays: 1},
	}
	if !reflect.DeepEqual(results, expected) {
		t.Errorf("Expected %v, got %v", expected, results)
	}
}
