package store

import (
	"fmt"

	"github.com/ademuri/spotify-rediscover/internal/history"
)

// AddPlays inserts a batch of normalized events transactionally. Events
// already present (same timestamp, artist, album, and track) are
// ignored, so importing overlapping export files is safe. Returns the
// number of newly inserted rows.
func (s *Store) AddPlays(events []history.PlayEvent) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT OR IGNORE INTO Play (ts, ms_played, artist, album, track) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	var inserted int64
	for _, e := range events {
		res, err := stmt.Exec(e.Timestamp.UTC().Unix(), e.MsPlayed, e.Artist, e.Album, e.Track)
		if err != nil {
			return 0, fmt.Errorf("inserting play: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("inserting play: %w", err)
		}
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return inserted, nil
}
