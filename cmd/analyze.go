/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ademuri/spotify-rediscover/internal/analysis"
	"github.com/ademuri/spotify-rediscover/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var htmlPath string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Runs the full rediscovery analysis",
	Long: `Runs every detector over the export at the given path (a directory or
glob of StreamingHistory*.json files), or over previously imported plays
when no path is given. Prints the report to the console; --html also
writes the full HTML report.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(runAnalyze(os.Stdout, args))
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&htmlPath, "html", "", "Write a full HTML report to this path")
}

func runAnalyze(out io.Writer, args []string) error {
	events, filesRead, err := resolveEvents(args)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Fprintln(out, "No qualifying plays after filters.")
		return nil
	}

	cfg := analysis.DefaultConfig()
	agg := analysis.Aggregate(events)
	now := time.Now()
	summary := analysis.BuildSummary(agg, cfg, now)
	sections := report.BuildSections(summary, cfg)

	// Console gets a short numbered top list; the HTML report carries
	// the full capped table.
	printHeader(out, "Top artists (all time) — by plays")
	for i, a := range analysis.TopArtists(agg, viper.GetInt("top")) {
		fmt.Fprintf(out, "%2d. %s  (%d plays)\n", i+1, a.Artist, a.Plays)
	}

	if err := report.WriteSections(out, sections[1:]); err != nil {
		return err
	}

	if htmlPath != "" {
		if err := writeHTMLReport(htmlPath, filesRead, sections, now); err != nil {
			return err
		}
		abs, err := filepath.Abs(htmlPath)
		if err != nil {
			abs = htmlPath
		}
		fmt.Fprintf(out, "\nWrote HTML report to: %s\n", abs)
	}

	printHeader(out, "Summary")
	fmt.Fprintf(out, "Files read: %d; plays: %d; total hours: %.1f\n",
		filesRead, agg.EventCount, analysis.Hours(agg.TotalMs))

	return nil
}

func printHeader(out io.Writer, title string) {
	line := strings.Repeat("=", 80)
	fmt.Fprintf(out, "\n%s\n%s\n%s\n", line, title, line)
}

func reportParams(filesRead int) []report.Param {
	return []report.Param{
		{Key: "Files", Value: strconv.Itoa(filesRead)},
		{Key: "Min ms", Value: strconv.FormatInt(viper.GetInt64("min_ms"), 10)},
		{Key: "Exclude podcasts", Value: strconv.FormatBool(viper.GetBool("exclude_podcasts"))},
	}
}

func writeHTMLReport(path string, filesRead int, sections []report.Section, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	if err := report.RenderHTML(f, "Spotify Rediscovery Report", reportParams(filesRead), sections, now); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
