package analysis

import (
	"math"
	"sort"
	"time"
)

// DormantArtist is an artist with substantial lifetime exposure and a
// long silence since the last play.
type DormantArtist struct {
	Artist       string    `yaml:"artist"`
	Hours        float64   `yaml:"hours"`
	DormantYears float64   `yaml:"dormant_years"`
	LastPlay     time.Time `yaml:"last_play"`
}

// maxDormantYears stands in for "never played again" when an aggregate
// somehow has no last-play timestamp. Aggregation always records one, so
// this sentinel shouldn't be reachable in practice.
const maxDormantYears = 100.0

// DetectDormant flags artists with at least cfg.DormantMinHours of
// lifetime listening and no plays for cfg.DormantMinYears years before
// now. Ordered by dormant years descending, then hours descending, then
// artist name ascending.
func DetectDormant(agg *Aggregates, cfg Config, now time.Time) []DormantArtist {
	results := []DormantArtist{}
	for artist, stats := range agg.Artists {
		hours := float64(stats.TotalMs) / 3600000.0

		years := maxDormantYears
		if !stats.LastPlay.IsZero() {
			years = now.Sub(stats.LastPlay).Hours() / 24 / 365.25
		}

		if hours >= cfg.DormantMinHours && years >= cfg.DormantMinYears {
			results = append(results, DormantArtist{
				Artist:       artist,
				Hours:        round2(hours),
				DormantYears: math.Round(years*10) / 10,
				LastPlay:     stats.LastPlay,
			})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.DormantYears != b.DormantYears {
			return a.DormantYears > b.DormantYears
		}
		if a.Hours != b.Hours {
			return a.Hours > b.Hours
		}
		return a.Artist < b.Artist
	})
	return results
}
