package export

import (
	"fmt"
	"strconv"

	"github.com/gyeh/claimtriage/internal/model"
)

// PVWorkbook writes the non-PHI PV workload workbook: a PV SUMMARY sheet
// with sub-team totals, then one sheet per non-empty sub-team using the
// reduced work columns, deduplicated by billing tax ID + provider name
// with a Claim_Count column.
func PVWorkbook(path string, pvClaims []*model.Claim, subTotals map[model.SubTeam]int) error {
	w, err := newWriter()
	if err != nil {
		return err
	}

	pvTotal := 0
	for _, st := range model.AllSubTeams {
		pvTotal += subTotals[st]
	}

	var summaryRows [][]string
	for _, st := range model.AllSubTeams {
		n := subTotals[st]
		if n == 0 {
			continue
		}
		p := "0.0%"
		if pvTotal > 0 {
			p = fmt.Sprintf("%.1f%%", float64(n)/float64(pvTotal)*100)
		}
		summaryRows = append(summaryRows, []string{string(st), strconv.Itoa(n), p})
	}
	summaryHeaders := []string{"PV Sub-Team", "Claim Count", "Percentage of PV Work"}
	if err := w.addSheet("PV SUMMARY", summaryHeaders, summaryRows, nil); err != nil {
		return err
	}

	kept, cleaned := CleanHeaders(model.PVWorkColumns)
	cleaned = append(cleaned, "Claim_Count")

	for _, st := range model.AllSubTeams {
		var members []*model.Claim
		for _, c := range pvClaims {
			if c.PVSubTeam == st {
				members = append(members, c)
			}
		}
		if len(members) == 0 {
			continue
		}
		rows := dedupeProviderRows(members, kept)
		if err := w.addSheet(sheetName(string(st), 30), cleaned, rows, nil); err != nil {
			return err
		}
	}

	return w.save(path)
}

// SubTeamReport writes one deduplicated, non-PHI sheet for a single PV
// sub-team.
func SubTeamReport(path string, members []*model.Claim, subTeam model.SubTeam) error {
	w, err := newWriter()
	if err != nil {
		return err
	}
	kept, cleaned := CleanHeaders(model.PVWorkColumns)
	cleaned = append(cleaned, "Claim_Count")
	if err := w.addSheet(sheetName(string(subTeam), 30), cleaned, dedupeProviderRows(members, kept), nil); err != nil {
		return err
	}
	return w.save(path)
}

// dedupeProviderRows collapses claims to one row per provider identity,
// counting members. The first-seen claim supplies the field values.
func dedupeProviderRows(claims []*model.Claim, columns []string) [][]string {
	type entry struct {
		claim *model.Claim
		count int
	}
	var order []string
	byKey := make(map[string]*entry)

	for _, c := range claims {
		key := c.Field("Billing Provider Tax ID") + "|" + c.Field("ProviderFullName")
		e, ok := byKey[key]
		if !ok {
			e = &entry{claim: c}
			byKey[key] = e
			order = append(order, key)
		}
		e.count++
	}

	rows := make([][]string, 0, len(order))
	for _, key := range order {
		e := byKey[key]
		row := make([]string, 0, len(columns)+1)
		for _, col := range columns {
			row = append(row, e.claim.Field(col))
		}
		row = append(row, strconv.Itoa(e.count))
		rows = append(rows, row)
	}
	return rows
}
