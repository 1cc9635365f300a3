package analysis

import (
	"time"

	"github.com/ademuri/spotify-rediscover/internal/history"
)

// Summary is the top-level structure for the YAML rediscovery report.
type Summary struct {
	Metadata       SummaryMetadata  `yaml:"metadata"`
	TopArtists     []ArtistPlays    `yaml:"top_artists"`
	ArtistSpikes   []ArtistSpike    `yaml:"artist_spikes"`
	AlbumSpikes    []AlbumSpike     `yaml:"album_spikes"`
	ArtistDropoffs []ArtistDropoff  `yaml:"artist_dropoffs"`
	AlbumDropoffs  []AlbumDropoff   `yaml:"album_dropoffs"`
	DormantArtists []DormantArtist  `yaml:"dormant_artists"`
	Obsessions     []AlbumObsession `yaml:"one_album_obsessions"`
}

type SummaryMetadata struct {
	GeneratedDate string  `yaml:"generated_date"`
	TotalPlays    int     `yaml:"total_plays"`
	TotalArtists  int     `yaml:"total_artists"`
	TotalAlbums   int     `yaml:"total_albums"`
	TotalHours    float64 `yaml:"total_hours"`
	FirstMonth    string  `yaml:"first_month,omitempty"`
	LastMonth     string  `yaml:"last_month,omitempty"`
}

// BuildSummary runs every detector over the aggregates and assembles
// the full report. now is the reference point for the dormancy and
// drop-off silence checks.
func BuildSummary(agg *Aggregates, cfg Config, now time.Time) *Summary {
	artistSpikes, albumSpikes := DetectSpikes(agg, cfg)
	artistDrops, albumDrops := DetectDropoffs(agg, cfg, now)

	s := &Summary{
		TopArtists:     TopArtists(agg, cfg.TopN),
		ArtistSpikes:   artistSpikes,
		AlbumSpikes:    albumSpikes,
		ArtistDropoffs: artistDrops,
		AlbumDropoffs:  albumDrops,
		DormantArtists: DetectDormant(agg, cfg, now),
		Obsessions:     DetectObsessions(agg, cfg),
	}

	s.Metadata = SummaryMetadata{
		GeneratedDate: now.UTC().Format("2006-01-02"),
		TotalPlays:    agg.EventCount,
		TotalArtists:  len(agg.Artists),
		TotalAlbums:   len(agg.Albums),
		TotalHours:    round2(Hours(agg.TotalMs)),
	}
	if months := agg.AllMonths(); len(months) > 0 {
		s.Metadata.FirstMonth = string(months[0])
		s.Metadata.LastMonth = string(months[len(months)-1])
	}
	return s
}

// Hours converts milliseconds of playback to hours.
func Hours(ms int64) float64 {
	return float64(ms) / 3600000.0
}

// Period filters events to [start, end). Zero bounds are open.
func Period(events []history.PlayEvent, start, end time.Time) []history.PlayEvent {
	if start.IsZero() && end.IsZero() {
		return events
	}
	filtered := make([]history.PlayEvent, 0, len(events))
	for _, e := range events {
		if !start.IsZero() && e.Timestamp.Before(start) {
			continue
		}
		if !end.IsZero() && !e.Timestamp.Before(end) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}
