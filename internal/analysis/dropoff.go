package analysis

import (
	"sort"
	"time"
)

// ArtistDropoff is an artist whose listening collapsed after a single
// dominant peak month.
type ArtistDropoff struct {
	Artist        string   `yaml:"artist"`
	PeakMonth     MonthKey `yaml:"peak_month"`
	PeakPlays     int      `yaml:"peak_plays"`
	LifetimePlays int      `yaml:"lifetime_plays"`
	PeakShare     float64  `yaml:"peak_share"`
}

// AlbumDropoff is the album-level equivalent of ArtistDropoff.
type AlbumDropoff struct {
	Artist        string   `yaml:"artist"`
	Album         string   `yaml:"album"`
	PeakMonth     MonthKey `yaml:"peak_month"`
	PeakPlays     int      `yaml:"peak_plays"`
	LifetimePlays int      `yaml:"lifetime_plays"`
	PeakShare     float64  `yaml:"peak_share"`
}

// DetectDropoffs flags entities whose single best month explains at
// least cfg.DropPeakShare of their lifetime plays and whose last play is
// at least cfg.DropSilenceMonths calendar months before now. Results are
// ordered by peak month ascending, then peak share descending.
func DetectDropoffs(agg *Aggregates, cfg Config, now time.Time) ([]ArtistDropoff, []AlbumDropoff) {
	artists := []ArtistDropoff{}
	for artist, stats := range agg.Artists {
		peakMonth, peakPlays, lifetime, ok := qualifiesDropoff(stats, cfg, now)
		if !ok {
			continue
		}
		artists = append(artists, ArtistDropoff{
			Artist:        artist,
			PeakMonth:     peakMonth,
			PeakPlays:     peakPlays,
			LifetimePlays: lifetime,
			PeakShare:     round2(float64(peakPlays) / float64(lifetime)),
		})
	}
	sort.Slice(artists, func(i, j int) bool {
		a, b := artists[i], artists[j]
		if a.PeakMonth != b.PeakMonth {
			return a.PeakMonth < b.PeakMonth
		}
		if a.PeakShare != b.PeakShare {
			return a.PeakShare > b.PeakShare
		}
		return a.Artist < b.Artist
	})

	albums := []AlbumDropoff{}
	for key, stats := range agg.Albums {
		peakMonth, peakPlays, lifetime, ok := qualifiesDropoff(stats, cfg, now)
		if !ok {
			continue
		}
		albums = append(albums, AlbumDropoff{
			Artist:        key.Artist,
			Album:         key.Album,
			PeakMonth:     peakMonth,
			PeakPlays:     peakPlays,
			LifetimePlays: lifetime,
			PeakShare:     round2(float64(peakPlays) / float64(lifetime)),
		})
	}
	sort.Slice(albums, func(i, j int) bool {
		a, b := albums[i], albums[j]
		if a.PeakMonth != b.PeakMonth {
			return a.PeakMonth < b.PeakMonth
		}
		if a.PeakShare != b.PeakShare {
			return a.PeakShare > b.PeakShare
		}
		if a.Artist != b.Artist {
			return a.Artist < b.Artist
		}
		return a.Album < b.Album
	})

	return artists, albums
}

func qualifiesDropoff(stats *EntityStats, cfg Config, now time.Time) (MonthKey, int, int, bool) {
	lifetime := stats.Months.Lifetime()
	if lifetime == 0 {
		return "", 0, 0, false
	}

	// Earliest month wins ties, so the peak is deterministic.
	peakMonth, peakPlays := peakOf(stats.Months)

	if peakPlays < cfg.DropPeakMinPlays {
		return "", 0, 0, false
	}
	if float64(peakPlays) < cfg.DropPeakShare*float64(lifetime) {
		return "", 0, 0, false
	}
	if stats.LastPlay.IsZero() || monthsSince(now, stats.LastPlay) < cfg.DropSilenceMonths {
		return "", 0, 0, false
	}
	return peakMonth, peakPlays, lifetime, true
}

func peakOf(series MonthlySeries) (MonthKey, int) {
	months := make([]MonthKey, 0, len(series))
	for m := range series {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

	var peakMonth MonthKey
	peakPlays := 0
	for _, m := range months {
		if series[m] > peakPlays {
			peakMonth = m
			peakPlays = series[m]
		}
	}
	return peakMonth, peakPlays
}

// monthsSince counts whole calendar months between t and now. A play on
// the last day of a month is as recent as one on the first day.
func monthsSince(now, t time.Time) int {
	now = now.UTC()
	t = t.UTC()
	return (now.Year()-t.Year())*12 + int(now.Month()) - int(t.Month())
}
