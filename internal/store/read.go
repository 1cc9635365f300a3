package store

import (
	"fmt"
	"time"

	"github.com/ademuri/spotify-rediscover/internal/history"
)

// GetPlays returns every stored play as a normalized event, ordered by
// timestamp. The result feeds the same aggregation pipeline as a fresh
// export read.
func (s *Store) GetPlays() ([]history.PlayEvent, error) {
	rows, err := s.db.Query("SELECT ts, ms_played, artist, album, track FROM Play ORDER BY ts, artist, album, track")
	if err != nil {
		return nil, fmt.Errorf("querying plays: %w", err)
	}
	defer rows.Close()

	var events []history.PlayEvent
	for rows.Next() {
		var ts int64
		var e history.PlayEvent
		if err := rows.Scan(&ts, &e.MsPlayed, &e.Artist, &e.Album, &e.Track); err != nil {
			return nil, fmt.Errorf("scanning play: %w", err)
		}
		e.Timestamp = time.Unix(ts, 0).UTC()
		events = append(events, e)
	}
	return events, rows.Err()
}

// CountPlays returns the number of stored plays.
func (s *Store) CountPlays() (int64, error) {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM Play").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting plays: %w", err)
	}
	return count, nil
}
