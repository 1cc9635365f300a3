package cmd

import (
	"os"
	"time"

	"github.com/ademuri/spotify-rediscover/internal/analysis"
	"github.com/ademuri/spotify-rediscover/internal/report"
	"github.com/spf13/cobra"
)

var dropoffsCmd = &cobra.Command{
	Use:   "dropoffs [path]",
	Short: "Flags artists and albums abandoned after one dominant peak month",
	Long: `Lists entities whose single best month explains most of their lifetime
plays and that have been silent for a long time since.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(runDropoffs(args))
	},
}

func init() {
	rootCmd.AddCommand(dropoffsCmd)
}

func runDropoffs(args []string) error {
	events, _, err := resolveEvents(args)
	if err != nil {
		return err
	}

	cfg := analysis.DefaultConfig()
	artists, albums := analysis.DetectDropoffs(analysis.Aggregate(events), cfg, time.Now())
	summary := &analysis.Summary{ArtistDropoffs: artists, AlbumDropoffs: albums}
	return report.WriteSections(os.Stdout, report.DropoffSections(summary, cfg))
}
