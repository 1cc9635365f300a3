package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/ademuri/spotify-rediscover/internal/analysis"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var reportCmd = &cobra.Command{
	Use:   "report [path]",
	Short: "Generates a YAML summary of the full analysis",
	Long: `Runs every detector and writes the complete result set as YAML to
stdout, for piping into other tooling.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(runReport(args))
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(args []string) error {
	events, _, err := resolveEvents(args)
	if err != nil {
		return err
	}

	cfg := analysis.DefaultConfig()
	summary := analysis.BuildSummary(analysis.Aggregate(events), cfg, time.Now())

	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return encoder.Close()
}
