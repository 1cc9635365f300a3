package history

import (
	"time"
)

// PlayEvent is one validated listening occurrence. Timestamp is always
// resolvable and normalized to UTC. Track, Album, and Artist may be empty
// strings when the export had no metadata, never a null sentinel.
type PlayEvent struct {
	Timestamp time.Time
	MsPlayed  int64
	Track     string
	Album     string
	Artist    string
}

// NormalizeOptions controls which raw records survive normalization.
type NormalizeOptions struct {
	// MinMs drops records played for less than this many milliseconds.
	MinMs int64

	// ExcludePodcasts drops episodic (non-music) records.
	ExcludePodcasts bool
}

// Normalize converts raw export records into validated PlayEvents.
// Records with an absent or unparseable timestamp are silently dropped:
// the export is an uncurated personal dump, and a row we can't place in
// time can't contribute to any monthly series.
func Normalize(records []Record, opts NormalizeOptions) []PlayEvent {
	events := make([]PlayEvent, 0, len(records))
	for i := range records {
		r := &records[i]
		if opts.ExcludePodcasts && r.IsPodcast() {
			continue
		}

		var ms int64
		if r.MsPlayed != nil {
			ms = *r.MsPlayed
		}
		if ms < opts.MinMs {
			continue
		}

		ts, ok := ParseTimestamp(r.Timestamp)
		if !ok {
			continue
		}

		events = append(events, PlayEvent{
			Timestamp: ts,
			MsPlayed:  ms,
			Track:     stringOrEmpty(r.TrackName),
			Album:     stringOrEmpty(r.AlbumName),
			Artist:    stringOrEmpty(r.ArtistName),
		})
	}
	return events
}

// timestampLayouts are tried in order. Layouts without an offset are
// parsed as UTC: the export writes UTC without always saying so.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601-ish timestamp string and normalizes
// it to UTC. A trailing "Z" is equivalent to an explicit zero offset; a
// string with no offset at all is assumed to already be UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
