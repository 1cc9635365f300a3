package cmd

import (
	"os"
	"time"

	"github.com/ademuri/spotify-rediscover/internal/analysis"
	"github.com/ademuri/spotify-rediscover/internal/report"
	"github.com/spf13/cobra"
)

var dormantCmd = &cobra.Command{
	Use:   "dormant [path]",
	Short: "Flags artists with heavy lifetime listening and a long silence",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(runDormant(args))
	},
}

func init() {
	rootCmd.AddCommand(dormantCmd)
}

func runDormant(args []string) error {
	events, _, err := resolveEvents(args)
	if err != nil {
		return err
	}

	cfg := analysis.DefaultConfig()
	dormant := analysis.DetectDormant(analysis.Aggregate(events), cfg, time.Now())
	summary := &analysis.Summary{DormantArtists: dormant}
	return report.WriteSection(os.Stdout, report.DormantSection(summary, cfg))
}
