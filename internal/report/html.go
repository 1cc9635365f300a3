package report

import (
	"fmt"
	"html/template"
	"io"
	"time"
)

// Param is one report parameter shown in the header badges.
type Param struct {
	Key   string
	Value string
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root{--bg:#0b0f14;--panel:#121821;--ink:#e8eef6;--muted:#9bb0c9;--accent:#7bdff6}
*{box-sizing:border-box;font-family:system-ui,-apple-system,Segoe UI,Roboto,Helvetica,Arial,sans-serif}
body{margin:0;background:linear-gradient(180deg,#0b0f14,#0d121a);color:var(--ink)}
header{padding:28px 24px;border-bottom:1px solid #233047}
h1{margin:0;font-size:28px;letter-spacing:.3px}
.meta{color:var(--muted);margin-top:6px;font-size:14px}
.wrap{max-width:1100px;margin:0 auto;padding:22px}
section{background:var(--panel);border:1px solid #233047;border-radius:16px;margin:18px 0;overflow:hidden}
section header{display:flex;justify-content:space-between;align-items:baseline;padding:16px 18px;border-bottom:1px solid #233047}
section h2{margin:0;font-size:18px}
section p.sub{margin:0;color:var(--muted);font-size:13px}
.table{width:100%;border-collapse:separate;border-spacing:0}
.table th,.table td{padding:10px 12px;border-bottom:1px solid #1f2a3a}
.table th{position:sticky;top:0;background:#0f1621;text-align:left;font-weight:600;color:#c6d4ea;cursor:pointer}
.table tr:nth-child(2n){background:#0f1520}
.table tr:hover{background:#172033}
.badge{display:inline-block;padding:2px 8px;border-radius:999px;border:1px solid #2a3a53;background:#0f1621;color:#c6d4ea;font-size:12px}
footer{color:var(--muted);padding:24px;text-align:center}
.small{font-size:12px;color:var(--muted)}
.nowrap{white-space:nowrap}
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
<div class="meta">Generated {{.Generated}} &middot;
{{- range .Params}} <span class="badge">{{.Key}}: {{.Value}}</span>{{end}}</div>
</header>
<div class="wrap">
{{- range .Sections}}
<section>
<header>
<div>
<h2>{{.Title}}</h2>
<p class="sub">{{.Subtitle}}</p>
</div>
</header>
<div class="wrap">
{{- if .Rows}}
<table class="table">
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .StringRows}}
<tr>{{range .}}<td class="nowrap">{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
{{- else}}
<p class="small">No data matched this section with current thresholds.</p>
{{- end}}
</div>
</section>
{{- end}}
</div>
<footer>spotify-rediscover</footer>
<script>
// Click a header to sort its table.
document.querySelectorAll('table').forEach(t => {
  t.querySelectorAll('th').forEach((th, idx) => {
    th.addEventListener('click', () => {
      const rows = Array.from(t.querySelectorAll('tbody tr'));
      const asc = th.dataset.sortAsc === 'true' ? false : true;
      th.dataset.sortAsc = asc;
      rows.sort((a, b) => {
        let A = a.children[idx].innerText.trim();
        let B = b.children[idx].innerText.trim();
        const nA = parseFloat(A.replace(/[^0-9.-]/g, ''));
        const nB = parseFloat(B.replace(/[^0-9.-]/g, ''));
        if (!Number.isNaN(nA) && !Number.isNaN(nB)) { return asc ? nA - nB : nB - nA; }
        return asc ? A.localeCompare(B) : B.localeCompare(A);
      });
      rows.forEach(r => t.querySelector('tbody').appendChild(r));
    });
  });
});
</script>
</body>
</html>
`))

type htmlData struct {
	Title     string
	Generated string
	Params    []Param
	Sections  []Section
}

// RenderHTML writes the full report document. Artist and album names
// come straight from the export, so everything goes through
// html/template's contextual escaping.
func RenderHTML(out io.Writer, title string, params []Param, sections []Section, now time.Time) error {
	data := htmlData{
		Title:     title,
		Generated: now.UTC().Format("2006-01-02 15:04 UTC"),
		Params:    params,
		Sections:  sections,
	}
	if err := htmlTemplate.Execute(out, data); err != nil {
		return fmt.Errorf("rendering HTML report: %w", err)
	}
	return nil
}
