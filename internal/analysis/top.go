package analysis

import (
	"sort"

	"github.com/ademuri/spotify-rediscover/internal/history"
)

// ArtistPlays is one row of the all-time top artists list.
type ArtistPlays struct {
	Artist string `yaml:"artist"`
	Plays  int    `yaml:"plays"`
}

// AlbumPlays is one row of the all-time top albums list.
type AlbumPlays struct {
	Artist string `yaml:"artist"`
	Album  string `yaml:"album"`
	Plays  int    `yaml:"plays"`
}

// TrackPlays is one row of the all-time top tracks list.
type TrackPlays struct {
	Artist string `yaml:"artist"`
	Track  string `yaml:"track"`
	Plays  int    `yaml:"plays"`
}

// TopArtists returns artists by lifetime plays, descending, capped at
// limit (unlimited if limit <= 0). Ties order by name.
func TopArtists(agg *Aggregates, limit int) []ArtistPlays {
	results := make([]ArtistPlays, 0, len(agg.Artists))
	for artist, stats := range agg.Artists {
		results = append(results, ArtistPlays{Artist: artist, Plays: stats.Months.Lifetime()})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Plays != results[j].Plays {
			return results[i].Plays > results[j].Plays
		}
		return results[i].Artist < results[j].Artist
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// TopAlbums returns albums by lifetime plays, descending, capped at
// limit (unlimited if limit <= 0).
func TopAlbums(agg *Aggregates, limit int) []AlbumPlays {
	results := make([]AlbumPlays, 0, len(agg.Albums))
	for key, stats := range agg.Albums {
		results = append(results, AlbumPlays{Artist: key.Artist, Album: key.Album, Plays: stats.Months.Lifetime()})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Plays != results[j].Plays {
			return results[i].Plays > results[j].Plays
		}
		if results[i].Artist != results[j].Artist {
			return results[i].Artist < results[j].Artist
		}
		return results[i].Album < results[j].Album
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// TopTracks returns tracks by lifetime plays, descending, capped at
// limit (unlimited if limit <= 0). Tracks aren't part of the monthly
// aggregates, so this counts straight off the normalized events.
func TopTracks(events []history.PlayEvent, limit int) []TrackPlays {
	type trackKey struct {
		artist string
		track  string
	}
	counts := make(map[trackKey]int)
	for _, e := range events {
		artist := e.Artist
		if artist == "" {
			artist = Unknown
		}
		track := e.Track
		if track == "" {
			track = Unknown
		}
		counts[trackKey{artist: artist, track: track}]++
	}

	results := make([]TrackPlays, 0, len(counts))
	for key, plays := range counts {
		results = append(results, TrackPlays{Artist: key.artist, Track: key.track, Plays: plays})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Plays != results[j].Plays {
			return results[i].Plays > results[j].Plays
		}
		if results[i].Artist != results[j].Artist {
			return results[i].Artist < results[j].Artist
		}
		return results[i].Track < results[j].Track
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
