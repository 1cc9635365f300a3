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

	"github.com/ademuri/spotify-rediscover/internal/history"
	"github.com/ademuri/spotify-rediscover/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Imports an export into the play database",
	Long: `Normalizes the export at the given path once and stores the resulting
play events in the SQLite database, so later analysis runs can skip the
JSON parsing. Importing the same files again is a no-op.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(runImport(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(path string) error {
	files, err := history.ExpandFiles(path)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errNoFiles
	}

	records := history.LoadRecords(files)
	events := history.Normalize(records, normalizeOptions())

	db, err := store.New(viper.GetString("database"))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	inserted, err := db.AddPlays(events)
	if err != nil {
		return err
	}

	total, err := db.CountPlays()
	if err != nil {
		return err
	}

	fmt.Printf("Read %d files, %d qualifying plays; imported %d new (database now has %d).\n",
		len(files), len(events), inserted, total)
	return nil
}
