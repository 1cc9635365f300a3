package store

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/ademuri/spotify-rediscover/internal/history"
)

func createStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Creating store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEvents() []history.PlayEvent {
	return []history.PlayEvent{
		{
			Timestamp: time.Date(2023, 1, 10, 12, 0, 0, 0, time.UTC),
			MsPlayed:  200000,
			Artist:    "Artist A",
			Album:     "Album A",
			Track:     "Track 1",
		},
		{
			Timestamp: time.Date(2023, 2, 1, 0, 30, 0, 0, time.UTC),
			MsPlayed:  180000,
			Artist:    "Artist B",
			Album:     "Album B",
			Track:     "Track 2",
		},
	}
}

func TestAddAndGetPlays(t *testing.T) {
	s := createStore(t)

	inserted, err := s.AddPlays(testEvents())
	if err != nil {
		t.Fatalf("AddPlays: %v", err)
	}
	if inserted != 2 {
		t.Errorf("Expected 2 inserted, got %d", inserted)
	}

	got, err := s.GetPlays()
	if err != nil {
		t.Fatalf("GetPlays: %v", err)
	}
	if !reflect.DeepEqual(got, testEvents()) {
		t.Errorf("Expected %v, got %v", testEvents(), got)
	}
}

func TestAddPlays_idempotent(t *testing.T) {
	s := createStore(t)

	if _, err := s.AddPlays(testEvents()); err != nil {
		t.Fatalf("AddPlays: %v", err)
	}
	inserted, err := s.AddPlays(testEvents())
	if err != nil {
		t.Fatalf("AddPlays again: %v", err)
	}
	if inserted != 0 {
		t.Errorf("Expected 0 inserted on re-import, got %d", inserted)
	}

	count, err := s.CountPlays()
	if err != nil {
		t.Fatalf("CountPlays: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 plays, got %d", count)
	}
}

func TestCountPlays_empty(t *testing.T) {
	s := createStore(t)

	count, err := s.CountPlays()
	if err != nil {
		t.Fatalf("CountPlays: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 plays, got %d", count)
	}
}
