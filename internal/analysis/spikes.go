package analysis

import (
	"math"
	"sort"
)

// ArtistSpike is a month where an artist's play count was an outlier
// against that artist's own history.
type ArtistSpike struct {
	Month  MonthKey `yaml:"month"`
	Artist string   `yaml:"artist"`
	Plays  int      `yaml:"plays"`
	Z      float64  `yaml:"z"`
}

// AlbumSpike is the album-level equivalent of ArtistSpike.
type AlbumSpike struct {
	Month  MonthKey `yaml:"month"`
	Artist string   `yaml:"artist"`
	Album  string   `yaml:"album"`
	Plays  int      `yaml:"plays"`
	Z      float64  `yaml:"z"`
}

// DetectSpikes flags entity-months whose play count is at least
// cfg.SpikeZ standard deviations above the entity's mean over the shared
// month axis. Zero-count months are part of every series, so an entity
// with many silent months and one heavy month scores a high z. Results
// are ordered by month ascending, then plays descending.
func DetectSpikes(agg *Aggregates, cfg Config) ([]ArtistSpike, []AlbumSpike) {
	months := agg.AllMonths()

	artistSpikes := []ArtistSpike{}
	for artist, stats := range agg.Artists {
		for i, z := range zscoreSeries(stats.Months, months) {
			plays := stats.Months[months[i]]
			if plays >= cfg.SpikeMinArtistPlays && z >= cfg.SpikeZ {
				artistSpikes = append(artistSpikes, ArtistSpike{
					Month:  months[i],
					Artist: artist,
					Plays:  plays,
					Z:      round2(z),
				})
			}
		}
	}
	sort.Slice(artistSpikes, func(i, j int) bool {
		a, b := artistSpikes[i], artistSpikes[j]
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		if a.Plays != b.Plays {
			return a.Plays > b.Plays
		}
		return a.Artist < b.Artist
	})

	albumSpikes := []AlbumSpike{}
	for key, stats := range agg.Albums {
		for i, z := range zscoreSeries(stats.Months, months) {
			plays := stats.Months[months[i]]
			if plays >= cfg.SpikeMinAlbumPlays && z >= cfg.SpikeZ {
				albumSpikes = append(albumSpikes, AlbumSpike{
					Month:  months[i],
					Artist: key.Artist,
					Album:  key.Album,
					Plays:  plays,
					Z:      round2(z),
				})
			}
		}
	}
	sort.Slice(albumSpikes, func(i, j int) bool {
		a, b := albumSpikes[i], albumSpikes[j]
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		if a.Plays != b.Plays {
			return a.Plays > b.Plays
		}
		if a.Artist != b.Artist {
			return a.Artist < b.Artist
		}
		return a.Album < b.Album
	})

	return artistSpikes, albumSpikes
}

// zscoreSeries computes one z-score per axis month for a single entity,
// using the population standard deviation over its values across the
// whole axis. A flat series has zero variance and never spikes: every
// z is exactly 0, not NaN.
func zscoreSeries(series MonthlySeries, months []MonthKey) []float64 {
	if len(months) == 0 {
		return nil
	}

	var sum float64
	for _, m := range months {
		sum += float64(series[m])
	}
	mean := sum / float64(len(months))

	var variance float64
	for _, m := range months {
		d := float64(series[m]) - mean
		variance += d * d
	}
	variance /= float64(len(months))
	sd := math.Sqrt(variance)

	zs := make([]float64, len(months))
	if sd == 0 {
		return zs
	}
	for i, m := range months {
		zs[i] = (float64(series[m]) - mean) / sd
	}
	return zs
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
