package cmd

import (
	"os"

	"github.com/ademuri/spotify-rediscover/internal/analysis"
	"github.com/ademuri/spotify-rediscover/internal/report"
	"github.com/spf13/cobra"
)

var spikesCmd = &cobra.Command{
	Use:   "spikes [path]",
	Short: "Flags months with unusually intense artist or album listening",
	Long: `Compares each artist's and album's monthly play count against its own
history (z-score over all observed months) and lists short-lived peaks.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(runSpikes(args))
	},
}

func init() {
	rootCmd.AddCommand(spikesCmd)
}

func runSpikes(args []string) error {
	events, _, err := resolveEvents(args)
	if err != nil {
		return err
	}

	cfg := analysis.DefaultConfig()
	artistSpikes, albumSpikes := analysis.DetectSpikes(analysis.Aggregate(events), cfg)
	summary := &analysis.Summary{ArtistSpikes: artistSpikes, AlbumSpikes: albumSpikes}
	return report.WriteSections(os.Stdout, report.SpikeSections(summary, cfg))
}
