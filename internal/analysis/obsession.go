package analysis

import (
	"sort"
	"time"
)

// AlbumObsession is an artist-month where one album dominated the
// artist's plays, and that album's lifetime plays are concentrated in a
// short span.
type AlbumObsession struct {
	Month            MonthKey `yaml:"month"`
	Artist           string   `yaml:"artist"`
	Album            string   `yaml:"album"`
	AlbumMonthPlays  int      `yaml:"album_month_plays"`
	ArtistMonthPlays int      `yaml:"artist_month_plays"`
	LifetimePlays    int      `yaml:"lifetime_plays"`
	Concentration    float64  `yaml:"concentration"`
}

// DetectObsessions runs the two-stage obsession scan.
//
// Stage 1 finds artist-months with at least cfg.AlbumMinMonthPlays total
// plays where a single album accounts for cfg.AlbumDominance of them:
// the month an album briefly eclipsed everything else the artist made.
//
// Stage 2 keeps only candidates whose album has cfg.Concentration of its
// lifetime plays inside some window of cfg.ConcentrationSpan, separating
// a genuine binge from an all-time favorite that merely had a good
// month. Qualifying months for the same (artist, album) collapse to the
// earliest one. Results are ordered by month ascending.
func DetectObsessions(agg *Aggregates, cfg Config) []AlbumObsession {
	byArtist := agg.artistAlbums()

	candidates := []AlbumObsession{}
	for artist, totals := range agg.ArtistMonthTotals {
		months := make([]MonthKey, 0, len(totals))
		for m := range totals {
			months = append(months, m)
		}
		sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

		for _, month := range months {
			artistTotal := totals[month]
			if artistTotal < cfg.AlbumMinMonthPlays {
				continue
			}

			// Albums are scanned in name order with a strictly-greater
			// comparison: ties go to the lexicographically first album.
			var dominant AlbumKey
			dominantPlays := 0
			for _, key := range byArtist[artist] {
				if plays := agg.Albums[key].Months[month]; plays > dominantPlays {
					dominant = key
					dominantPlays = plays
				}
			}
			if dominantPlays == 0 {
				continue
			}
			if float64(dominantPlays)/float64(artistTotal) < cfg.AlbumDominance {
				continue
			}

			lifetime := agg.Albums[dominant].Months.Lifetime()
			if lifetime == 0 {
				continue
			}
			best := maxWindowCount(agg.AlbumPlayTimes[dominant], cfg.ConcentrationSpan)
			concentration := float64(best) / float64(lifetime)
			if concentration < cfg.Concentration {
				continue
			}

			candidates = append(candidates, AlbumObsession{
				Month:            month,
				Artist:           artist,
				Album:            dominant.Album,
				AlbumMonthPlays:  dominantPlays,
				ArtistMonthPlays: artistTotal,
				LifetimePlays:    lifetime,
				Concentration:    round2(concentration),
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		if a.Artist != b.Artist {
			return a.Artist < b.Artist
		}
		return a.Album < b.Album
	})

	// Keep only the earliest qualifying month per (artist, album).
	seen := make(map[AlbumKey]bool)
	results := []AlbumObsession{}
	for _, c := range candidates {
		key := AlbumKey{Artist: c.Artist, Album: c.Album}
		if seen[key] {
			continue
		}
		seen[key] = true
		results = append(results, c)
	}
	return results
}

// maxWindowCount returns the maximum number of timestamps inside any
// contiguous window of the given span, via a two-pointer scan over the
// sorted timestamps.
func maxWindowCount(times []time.Time, span time.Duration) int {
	sorted := make([]time.Time, len(times))
	copy(sorted, times)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	best := 0
	left := 0
	for right := range sorted {
		for sorted[right].Sub(sorted[left]) > span {
			left++
		}
		if n := right - left + 1; n > best {
			best = n
		}
	}
	return best
}
