package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ademuri/spotify-rediscover/internal/analysis"
)

func TestRenderHTML(t *testing.T) {
	sections := BuildSections(testSummary(), analysis.DefaultConfig())
	params := []Param{{Key: "Files", Value: "3"}, {Key: "Min ms", Value: "30000"}}
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := RenderHTML(&buf, "Spotify Rediscovery Report", params, sections, now); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<title>Spotify Rediscovery Report</title>",
		"Generated 2024-06-01 12:00 UTC",
		"Files: 3",
		"Had a grip on you, now dormant",
		"One-album obsessions",
		"<td class=\"nowrap\">Forgotten</td>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestRenderHTML_escapesNames(t *testing.T) {
	sections := []Section{{
		Title:   "Top artists",
		Headers: []string{"Artist", "Plays"},
		Rows:    [][]any{{"<script>alert(1)</script> & Sons", 3}},
	}}

	var buf bytes.Buffer
	if err := RenderHTML(&buf, "Report", nil, sections, time.Now()); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	html := buf.String()

	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("Artist name was not escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("Expected escaped artist name in output")
	}
}

func TestRenderHTML_emptySection(t *testing.T) {
	sections := []Section{{
		Title:   "Massive peak, total drop-off — Artists",
		Headers: []string{"Peak Month", "Artist"},
		Rows:    [][]any{},
	}}

	var buf bytes.Buffer
	if err := RenderHTML(&buf, "Report", nil, sections, time.Now()); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if !strings.Contains(buf.String(), "No data matched this section") {
		t.Error("Expected the empty-section placeholder")
	}
}
