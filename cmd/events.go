package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ademuri/spotify-rediscover/internal/analysis"
	"github.com/ademuri/spotify-rediscover/internal/history"
	"github.com/ademuri/spotify-rediscover/internal/store"
	"github.com/spf13/viper"
)

// errNoFiles distinguishes "the path matched nothing" from analysis
// errors; commands exit with code 2 for it.
var errNoFiles = errors.New("no JSON files found")

// errorExitCode maps an error to the process exit code: 2 when the
// input path matched no JSON files, 1 for anything else.
func errorExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoFiles):
		return 2
	default:
		return 1
	}
}

// exitOnError is the shared error tail for every command's Run.
func exitOnError(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, errNoFiles) {
		fmt.Fprintln(os.Stderr, "No JSON files found.")
	} else {
		fmt.Println(err)
	}
	os.Exit(errorExitCode(err))
}

func normalizeOptions() history.NormalizeOptions {
	return history.NormalizeOptions{
		MinMs:           viper.GetInt64("min_ms"),
		ExcludePodcasts: viper.GetBool("exclude_podcasts"),
	}
}

// resolveEvents loads play events from the export path given as the
// positional argument, or from the play database when no path is given.
// The --from/--to period filter applies to either source. Returns the
// events and the number of files read (0 for the database path).
func resolveEvents(args []string) ([]history.PlayEvent, int, error) {
	var events []history.PlayEvent
	filesRead := 0

	if len(args) > 0 {
		files, err := history.ExpandFiles(args[0])
		if err != nil {
			return nil, 0, err
		}
		if len(files) == 0 {
			return nil, 0, errNoFiles
		}
		records := history.LoadRecords(files)
		events = history.Normalize(records, normalizeOptions())
		filesRead = len(files)
	} else {
		db, err := store.New(viper.GetString("database"))
		if err != nil {
			return nil, 0, fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		events, err = db.GetPlays()
		if err != nil {
			return nil, 0, err
		}
	}

	start, end, err := parsePeriodFlags(viper.GetString("from"), viper.GetString("to"))
	if err != nil {
		return nil, 0, err
	}
	return analysis.Period(events, start, end), filesRead, nil
}
