package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"sort"

	"github.com/gyeh/claimtriage/internal/model"
)

// renderData is the view model handed to the report template.
type renderData struct {
	ActiveClaims int
	TeamRows     []teamRow
	SubTeamRows  []teamRow
	Groups       []*model.Group
	Sections     []focusSection
}

type teamRow struct {
	Name  string
	Count int
	Pct   string
}

type focusSection struct {
	Title  string
	Tables []focusTable
}

type focusTable struct {
	Title  string
	Rows   []focusRow
	Pct31  focusPctRow
	Totals focusRow
}

type focusRow struct {
	Label  string
	Par    int
	NonPar int
	Total  int
}

type focusPctRow struct {
	Par    string
	NonPar string
	Total  string
}

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Claims Analysis Report</title>
<style>
body { font-family: sans-serif; margin: 24px; }
table { border-collapse: collapse; margin-bottom: 18px; }
th, td { border: 1px solid #999; padding: 4px 10px; text-align: left; }
td.num { text-align: right; }
h2 { margin-top: 28px; }
</style>
</head>
<body>
<h1>Claims Analysis Report</h1>
<p>{{.ActiveClaims}} active claims analyzed.</p>

<h2>Team Totals</h2>
<table>
<tr><th>Team</th><th>Claims</th></tr>
{{range .TeamRows}}<tr><td>{{.Name}}</td><td class="num">{{.Count}}</td></tr>
{{end}}</table>

{{if .SubTeamRows}}<h2>PV Sub-Team Breakdown</h2>
<table>
<tr><th>PV Sub-Team</th><th>Claim Count</th><th>Percentage of PV Work</th></tr>
{{range .SubTeamRows}}<tr><td>{{.Name}}</td><td class="num">{{.Count}}</td><td class="num">{{.Pct}}</td></tr>
{{end}}</table>
{{end}}

<h2>Unique Edits/Notes Groups</h2>
<table>
<tr><th>Count</th><th>Team</th><th>Sub-Team</th><th>Claim Edits</th><th>Claim Notes</th></tr>
{{range .Groups}}<tr><td class="num">{{.Count}}</td><td>{{.Team}}</td><td>{{.SubTeam}}</td><td>{{.Edits}}</td><td>{{.Notes}}</td></tr>
{{end}}</table>

<h2>Overall Focus: Claim Count Analysis (Excluding Needs Assignment)</h2>
{{range .Sections}}<h3>{{.Title}}</h3>
{{range .Tables}}<h4>{{.Title}}</h4>
<table>
<tr><th>Aging</th><th>Par</th><th>Non Par</th><th>Grand Total</th></tr>
{{range .Rows}}<tr><td>{{.Label}}</td><td class="num">{{.Par}}</td><td class="num">{{.NonPar}}</td><td class="num">{{.Total}}</td></tr>
{{end}}<tr><td>31+ Percentage</td><td class="num">{{.Pct31.Par}}</td><td class="num">{{.Pct31.NonPar}}</td><td class="num">{{.Pct31.Total}}</td></tr>
<tr><td><b>Grand Total</b></td><td class="num"><b>{{.Totals.Par}}</b></td><td class="num"><b>{{.Totals.NonPar}}</b></td><td class="num"><b>{{.Totals.Total}}</b></td></tr>
</table>
{{end}}{{end}}
</body>
</html>
`))

// Render writes the HTML summary report for the session's grouping map and
// aggregate counts.
func Render(w io.Writer, groups map[string]*model.Group, counts *Counts, activeClaims int) error {
	data := buildRenderData(groups, counts, activeClaims)
	if err := reportTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// RenderFile renders the report to a file at path.
func RenderFile(path string, groups map[string]*model.Group, counts *Counts, activeClaims int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()
	if err := Render(f, groups, counts, activeClaims); err != nil {
		return err
	}
	return f.Close()
}

func buildRenderData(groups map[string]*model.Group, counts *Counts, activeClaims int) *renderData {
	data := &renderData{ActiveClaims: activeClaims}

	teamTotals := TeamTotals(groups)
	for _, t := range model.AllTeams {
		data.TeamRows = append(data.TeamRows, teamRow{Name: string(t), Count: teamTotals[t]})
	}

	subTotals := PVSubTeamTotals(groups)
	pvTotal := teamTotals[model.TeamPV]
	for _, st := range model.AllSubTeams {
		n := subTotals[st]
		if n == 0 {
			continue
		}
		data.SubTeamRows = append(data.SubTeamRows, teamRow{
			Name:  string(st),
			Count: n,
			Pct:   pct(n, pvTotal),
		})
	}

	for _, g := range groups {
		data.Groups = append(data.Groups, g)
	}
	sort.Slice(data.Groups, func(i, j int) bool {
		if data.Groups[i].Count != data.Groups[j].Count {
			return data.Groups[i].Count > data.Groups[j].Count
		}
		if data.Groups[i].Edits != data.Groups[j].Edits {
			return data.Groups[i].Edits < data.Groups[j].Edits
		}
		return data.Groups[i].Notes < data.Groups[j].Notes
	})

	statuses := []struct {
		title string
		pick  func(*StatusCounts) *SegmentCounts
	}{
		{"Combined Claim Counts (Active + Prebatch)", func(s *StatusCounts) *SegmentCounts { return s.Combined }},
		{"Active-Only Claim Counts Analysis", func(s *StatusCounts) *SegmentCounts { return s.Active }},
		{"Prebatch-Only Claim Counts Analysis", func(s *StatusCounts) *SegmentCounts { return s.Prebatch }},
	}
	segments := []struct {
		title string
		sc    *StatusCounts
	}{
		{"Overall", counts.Overall},
		{"DSNP", counts.DSNP},
		{"Non DSNP", counts.NonDSNP},
	}

	for _, st := range statuses {
		section := focusSection{Title: st.title}
		for _, seg := range segments {
			sc := st.pick(seg.sc)
			if sc.Total == 0 {
				continue
			}
			section.Tables = append(section.Tables, buildFocusTable(seg.title, sc))
		}
		data.Sections = append(data.Sections, section)
	}

	return data
}

func buildFocusTable(title string, sc *SegmentCounts) focusTable {
	t := focusTable{Title: title}
	for _, b := range model.AgingBuckets {
		bc := sc.Bucket(b.Short())
		t.Rows = append(t.Rows, focusRow{Label: b.Short(), Par: bc.Par, NonPar: bc.NonPar, Total: bc.Total})
	}
	b31 := sc.Bucket(model.Age31Plus.Short())
	t.Pct31 = focusPctRow{
		Par:    pct(b31.Par, sc.ParTotal),
		NonPar: pct(b31.NonPar, sc.NonParTotal),
		Total:  pct(b31.Total, sc.Total),
	}
	t.Totals = focusRow{Label: "Grand Total", Par: sc.ParTotal, NonPar: sc.NonParTotal, Total: sc.Total}
	return t
}

func pct(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100)
}
