package analysis

import (
	"sort"
	"time"

	"github.com/ademuri/spotify-rediscover/internal/history"
)

// Unknown is the placeholder under which plays with missing artist or
// album metadata aggregate. It is a reserved value in the artist/album
// domain: using the empty string as a map key would silently merge
// "no metadata" with deliberately empty names.
const Unknown = "<unknown>"

// MonthKey identifies a UTC calendar month as "YYYY-MM". The string form
// sorts chronologically.
type MonthKey string

// MonthOf derives the MonthKey for a timestamp. Timestamps in the same
// UTC calendar month always produce the same key, whatever offset the
// source carried.
func MonthOf(t time.Time) MonthKey {
	return MonthKey(t.UTC().Format("2006-01"))
}

// MonthlySeries maps months to play counts for one entity. Entries exist
// only for months with at least one play.
type MonthlySeries map[MonthKey]int

// Lifetime is the sum of all monthly counts.
func (s MonthlySeries) Lifetime() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// EntityStats aggregates one artist or one (artist, album) pair.
type EntityStats struct {
	FirstPlay time.Time
	LastPlay  time.Time
	TotalMs   int64
	Months    MonthlySeries
}

func (e *EntityStats) observe(ts time.Time, ms int64) {
	if e.FirstPlay.IsZero() || ts.Before(e.FirstPlay) {
		e.FirstPlay = ts
	}
	if ts.After(e.LastPlay) {
		e.LastPlay = ts
	}
	e.TotalMs += ms
	e.Months[MonthOf(ts)]++
}

// AlbumKey identifies an album within an artist.
type AlbumKey struct {
	Artist string
	Album  string
}

// Aggregates is everything the detectors need, built in one pass over
// the normalized events and read-only afterwards.
type Aggregates struct {
	Artists map[string]*EntityStats
	Albums  map[AlbumKey]*EntityStats

	// ArtistMonthTotals is the artist's total plays per month, kept
	// separately from the per-album breakdown for the obsession scan.
	ArtistMonthTotals map[string]MonthlySeries

	// AlbumPlayTimes holds every play timestamp per album, for the
	// sliding-window concentration scan. Unsorted.
	AlbumPlayTimes map[AlbumKey][]time.Time

	EventCount int
	TotalMs    int64
}

// Aggregate builds all per-entity aggregates from normalized events.
// O(events); order of the input doesn't matter.
func Aggregate(events []history.PlayEvent) *Aggregates {
	agg := &Aggregates{
		Artists:           make(map[string]*EntityStats),
		Albums:            make(map[AlbumKey]*EntityStats),
		ArtistMonthTotals: make(map[string]MonthlySeries),
		AlbumPlayTimes:    make(map[AlbumKey][]time.Time),
	}

	for _, e := range events {
		artist := e.Artist
		if artist == "" {
			artist = Unknown
		}
		album := e.Album
		if album == "" {
			album = Unknown
		}
		key := AlbumKey{Artist: artist, Album: album}

		as, ok := agg.Artists[artist]
		if !ok {
			as = &EntityStats{Months: make(MonthlySeries)}
			agg.Artists[artist] = as
		}
		as.observe(e.Timestamp, e.MsPlayed)

		als, ok := agg.Albums[key]
		if !ok {
			als = &EntityStats{Months: make(MonthlySeries)}
			agg.Albums[key] = als
		}
		als.observe(e.Timestamp, e.MsPlayed)

		totals, ok := agg.ArtistMonthTotals[artist]
		if !ok {
			totals = make(MonthlySeries)
			agg.ArtistMonthTotals[artist] = totals
		}
		totals[MonthOf(e.Timestamp)]++

		agg.AlbumPlayTimes[key] = append(agg.AlbumPlayTimes[key], e.Timestamp)

		agg.EventCount++
		agg.TotalMs += e.MsPlayed
	}

	return agg
}

// AllMonths returns the sorted axis of every month observed across all
// artists. Detectors compare each entity's series against this shared
// axis so silent months count toward its statistics.
func (a *Aggregates) AllMonths() []MonthKey {
	seen := make(map[MonthKey]bool)
	for _, stats := range a.Artists {
		for m := range stats.Months {
			seen[m] = true
		}
	}
	months := make([]MonthKey, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	return months
}

// artistAlbums returns each artist's album keys, album names sorted, so
// scans that iterate albums are deterministic.
func (a *Aggregates) artistAlbums() map[string][]AlbumKey {
	byArtist := make(map[string][]AlbumKey)
	for key := range a.Albums {
		byArtist[key.Artist] = append(byArtist[key.Artist], key)
	}
	for _, keys := range byArtist {
		sort.Slice(keys, func(i, j int) bool { return keys[i].Album < keys[j].Album })
	}
	return byArtist
}
