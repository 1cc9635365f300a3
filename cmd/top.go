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
	"strconv"

	"github.com/ademuri/spotify-rediscover/internal/analysis"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	limitArtists int
	limitAlbums  int
	limitTracks  int
)

var topCmd = &cobra.Command{
	Use:   "top [path]",
	Short: "Lists all-time top artists, albums, and tracks",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(printTop(os.Stdout, args))
	},
}

func init() {
	rootCmd.AddCommand(topCmd)
	topCmd.Flags().IntVar(&limitArtists, "artists", 10, "Number of top artists to show")
	topCmd.Flags().IntVar(&limitAlbums, "albums", 10, "Number of top albums to show")
	topCmd.Flags().IntVar(&limitTracks, "tracks", 10, "Number of top tracks to show")
}

func printTop(out io.Writer, args []string) error {
	events, _, err := resolveEvents(args)
	if err != nil {
		return err
	}

	agg := analysis.Aggregate(events)
	fmt.Fprintf(out, "Total plays: %d; total hours: %.1f\n", agg.EventCount, analysis.Hours(agg.TotalMs))

	if limitArtists > 0 {
		fmt.Fprintf(out, "\n## Top %d Artists\n", limitArtists)
		table := tablewriter.NewWriter(out)
		table.Header([]string{"Artist", "Plays"})
		for _, a := range analysis.TopArtists(agg, limitArtists) {
			table.Append([]string{a.Artist, strconv.Itoa(a.Plays)})
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("rendering artists: %w", err)
		}
	}

	if limitAlbums > 0 {
		fmt.Fprintf(out, "\n## Top %d Albums\n", limitAlbums)
		table := tablewriter.NewWriter(out)
		table.Header([]string{"Artist", "Album", "Plays"})
		for _, a := range analysis.TopAlbums(agg, limitAlbums) {
			table.Append([]string{a.Artist, a.Album, strconv.Itoa(a.Plays)})
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("rendering albums: %w", err)
		}
	}

	if limitTracks > 0 {
		fmt.Fprintf(out, "\n## Top %d Tracks\n", limitTracks)
		table := tablewriter.NewWriter(out)
		table.Header([]string{"Artist", "Track", "Plays"})
		for _, t := range analysis.TopTracks(events, limitTracks) {
			table.Append([]string{t.Artist, t.Track, strconv.Itoa(t.Plays)})
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("rendering tracks: %w", err)
		}
	}

	return nil
}
