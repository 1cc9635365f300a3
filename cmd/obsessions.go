package cmd

import (
	"os"

	"github.com/ademuri/spotify-rediscover/internal/analysis"
	"github.com/ademuri/spotify-rediscover/internal/report"
	"github.com/spf13/cobra"
)

var obsessionsCmd = &cobra.Command{
	Use:   "obsessions [path]",
	Short: "Flags months where one album briefly eclipsed everything else",
	Long: `Lists artist-months where a single album dominated that month's plays
and the album's lifetime plays are concentrated in one short span.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(runObsessions(args))
	},
}

func init() {
	rootCmd.AddCommand(obsessionsCmd)
}

func runObsessions(args []string) error {
	events, _, err := resolveEvents(args)
	if err != nil {
		return err
	}

	cfg := analysis.DefaultConfig()
	obsessions := analysis.DetectObsessions(analysis.Aggregate(events), cfg)
	summary := &analysis.Summary{Obsessions: obsessions}
	return report.WriteSection(os.Stdout, report.ObsessionSection(summary, cfg))
}
