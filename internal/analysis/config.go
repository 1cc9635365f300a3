package analysis

import "time"

// Config holds every detector threshold. Detectors take a Config value
// rather than reading package state, so tests can run several
// configurations side by side.
type Config struct {
	// Spike detection.
	SpikeZ              float64
	SpikeMinArtistPlays int
	SpikeMinAlbumPlays  int

	// Drop-off detection.
	DropPeakShare      float64
	DropPeakMinPlays   int
	DropSilenceMonths  int

	// Dormancy detection.
	DormantMinHours float64
	DormantMinYears float64

	// One-album obsession detection.
	AlbumDominance     float64
	AlbumMinMonthPlays int
	ConcentrationSpan  time.Duration
	Concentration      float64

	// Display cap for the all-time top-entities list.
	TopN int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		SpikeZ:              2.0,
		SpikeMinArtistPlays: 60,
		SpikeMinAlbumPlays:  max(5, 60/2),

		DropPeakShare:     0.40,
		DropPeakMinPlays:  20,
		DropSilenceMonths: 24,

		DormantMinHours: 3.0,
		DormantMinYears: 2,

		AlbumDominance:     0.80,
		AlbumMinMonthPlays: 20,
		ConcentrationSpan:  60 * 24 * time.Hour,
		Concentration:      0.70,

		TopN: 100,
	}
}
