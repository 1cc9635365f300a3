package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ExpandFiles resolves a directory or glob pattern to a sorted list of
// JSON files. A directory expands to the *.json files directly inside it.
func ExpandFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		path = filepath.Join(path, "*.json")
	}

	files, err := filepath.Glob(path)
	if err != nil {
		return nil, fmt.Errorf("expanding %q: %w", path, err)
	}
	sort.Strings(files)
	return files, nil
}

// LoadRecords reads export records from the given JSON files. Each file
// is expected to hold a JSON array of rows. Files that can't be read or
// parsed are skipped with a warning to stderr rather than aborting the
// run, since a single corrupt file shouldn't hide the rest of a
// multi-file export.
func LoadRecords(files []string) []Record {
	var records []Record
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[WARN] failed to read %s: %v\n", f, err)
			continue
		}

		var rows []Record
		if err := json.Unmarshal(data, &rows); err != nil {
			fmt.Fprintf(os.Stderr, "[WARN] failed to parse %s: %v\n", f, err)
			continue
		}
		records = append(records, rows...)
	}
	return records
}
