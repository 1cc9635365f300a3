package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// WriteSection renders one section to the console.
func WriteSection(out io.Writer, s Section) error {
	line := strings.Repeat("=", 80)
	fmt.Fprintf(out, "\n%s\n%s\n%s\n", line, s.Title, line)
	if s.Subtitle != "" {
		fmt.Fprintf(out, "%s\n", s.Subtitle)
	}

	if len(s.Rows) == 0 {
		fmt.Fprintln(out, "No data matched this section with current thresholds.")
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header(s.Headers)
	for _, row := range s.StringRows() {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("rendering %q: %w", s.Title, err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering %q: %w", s.Title, err)
	}
	return nil
}

// WriteSections renders every section in order.
func WriteSections(out io.Writer, sections []Section) error {
	for _, s := range sections {
		if err := WriteSection(out, s); err != nil {
			return err
		}
	}
	return nil
}
