package report

import (
	"fmt"

	"github.com/ademuri/spotify-rediscover/internal/analysis"
)

// BuildSections converts a full analysis summary into the ordered report
// sections. Row shapes and ordering here are the display contract; the
// detectors own qualification and result ordering.
func BuildSections(sum *analysis.Summary, cfg analysis.Config) []Section {
	sections := []Section{TopArtistsSection(sum, cfg)}
	sections = append(sections, SpikeSections(sum, cfg)...)
	sections = append(sections, DropoffSections(sum, cfg)...)
	sections = append(sections, DormantSection(sum, cfg))
	sections = append(sections, ObsessionSection(sum, cfg))
	return sections
}

// TopArtistsSection is the all-time top artists list, capped at cfg.TopN.
func TopArtistsSection(sum *analysis.Summary, cfg analysis.Config) Section {
	rows := make([][]any, 0, len(sum.TopArtists))
	for i, a := range sum.TopArtists {
		rows = append(rows, []any{i + 1, a.Artist, a.Plays})
	}
	return Section{
		Title:    fmt.Sprintf("Top artists — all time (by plays, capped at %d)", cfg.TopN),
		Subtitle: "Your lifetime listening, descending by play count.",
		Headers:  []string{"#", "Artist", "Plays"},
		Rows:     rows,
	}
}

// SpikeSections are the artist and album single-month spike tables.
func SpikeSections(sum *analysis.Summary, cfg analysis.Config) []Section {
	subtitle := "Detected via monthly play-count z-scores; unusually high, short-lived peaks."

	artistRows := make([][]any, 0, len(sum.ArtistSpikes))
	for _, s := range sum.ArtistSpikes {
		artistRows = append(artistRows, []any{string(s.Month), s.Artist, s.Plays, s.Z})
	}

	albumRows := make([][]any, 0, len(sum.AlbumSpikes))
	for _, s := range sum.AlbumSpikes {
		albumRows = append(albumRows, []any{string(s.Month), s.Artist, s.Album, s.Plays, s.Z})
	}

	return []Section{
		{
			Title:    "Highest-intensity single-month spikes — Artist",
			Subtitle: subtitle,
			Headers:  []string{"Month", "Artist", "Plays", "z"},
			Rows:     artistRows,
		},
		{
			Title:    "Highest-intensity single-month spikes — Album",
			Subtitle: subtitle,
			Headers:  []string{"Month", "Artist", "Album", "Plays", "z"},
			Rows:     albumRows,
		},
	}
}

// DropoffSections are the artist and album peak-then-abandonment tables.
func DropoffSections(sum *analysis.Summary, cfg analysis.Config) []Section {
	subtitle := fmt.Sprintf(
		"Peak month >= %d%% of lifetime plays, peak month >= %d plays, and no plays in the last %d months.",
		int(100*cfg.DropPeakShare), cfg.DropPeakMinPlays, cfg.DropSilenceMonths)

	artistRows := make([][]any, 0, len(sum.ArtistDropoffs))
	for _, d := range sum.ArtistDropoffs {
		artistRows = append(artistRows, []any{
			string(d.PeakMonth), d.Artist, d.PeakPlays, d.LifetimePlays,
			100 * d.PeakPlays / d.LifetimePlays,
		})
	}

	albumRows := make([][]any, 0, len(sum.AlbumDropoffs))
	for _, d := range sum.AlbumDropoffs {
		albumRows = append(albumRows, []any{
			string(d.PeakMonth), d.Artist, d.Album, d.PeakPlays, d.LifetimePlays,
			100 * d.PeakPlays / d.LifetimePlays,
		})
	}

	return []Section{
		{
			Title:    "Massive peak, total drop-off — Artists",
			Subtitle: subtitle,
			Headers:  []string{"Peak Month", "Artist", "Peak Plays", "Lifetime Plays", "Peak Share %"},
			Rows:     artistRows,
		},
		{
			Title:    "Massive peak, total drop-off — Albums",
			Subtitle: subtitle,
			Headers:  []string{"Peak Month", "Artist", "Album", "Peak Plays", "Lifetime Plays", "Peak Share %"},
			Rows:     albumRows,
		},
	}
}

// DormantSection is the dormant-artist table.
func DormantSection(sum *analysis.Summary, cfg analysis.Config) Section {
	rows := make([][]any, 0, len(sum.DormantArtists))
	for _, d := range sum.DormantArtists {
		rows = append(rows, []any{
			d.Artist, d.Hours, d.DormantYears, d.LastPlay.UTC().Format("2006-01-02"),
		})
	}
	return Section{
		Title: "Had a grip on you, now dormant",
		Subtitle: fmt.Sprintf("Artists with >= %.1f hours lifetime and no plays in >= %.0f years.",
			cfg.DormantMinHours, cfg.DormantMinYears),
		Headers: []string{"Artist", "Hours (lifetime)", "Dormant ~years", "Last Played"},
		Rows:    rows,
	}
}

// ObsessionSection is the one-album obsession table.
func ObsessionSection(sum *analysis.Summary, cfg analysis.Config) Section {
	rows := make([][]any, 0, len(sum.Obsessions))
	for _, o := range sum.Obsessions {
		rows = append(rows, []any{
			string(o.Month), o.Artist, o.Album, o.AlbumMonthPlays,
			o.ArtistMonthPlays, o.LifetimePlays, o.Concentration,
		})
	}
	days := int(cfg.ConcentrationSpan.Hours() / 24)
	return Section{
		Title: "One-album obsessions",
		Subtitle: fmt.Sprintf(
			"In a month, one album was >= %d%% of that artist's plays AND >= %d%% of the album's lifetime plays fell within %d days.",
			int(100*cfg.AlbumDominance), int(100*cfg.Concentration), days),
		Headers: []string{"Month", "Artist", "Album", "Month Plays (album)", "Month Plays (artist)", "Lifetime Plays (album)", fmt.Sprintf("%d-day Concentration", days)},
		Rows:    rows,
	}
}
