package ingest

import (
	"strings"

	"github.com/gyeh/claimtriage/internal/classify"
	"github.com/gyeh/claimtriage/internal/model"
)

// Ingest turns parsed rows into typed claims, deriving the assignment and
// aging fields per row. All required headers must be present; rows with
// fewer fields than the header list are dropped silently as a data-quality
// tolerance. Zero resulting claims is not an error.
func Ingest(headers []string, rows [][]string, cls *classify.Classifier) ([]*model.Claim, error) {
	if err := checkSchema(headers); err != nil {
		return nil, err
	}

	claims := make([]*model.Claim, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(headers) {
			continue
		}
		claims = append(claims, buildClaim(headers, row, cls))
	}
	return claims, nil
}

func checkSchema(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	var missing []string
	for _, h := range model.RequiredHeaders {
		if !present[h] {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

func buildClaim(headers []string, row []string, cls *classify.Classifier) *model.Claim {
	fields := make(map[string]string, len(headers))
	for i, h := range headers {
		v := ""
		if i < len(row) {
			v = strings.TrimSpace(row[i])
		}
		fields[h] = v
	}

	c := &model.Claim{Fields: fields}
	Reclassify(c, cls)
	c.AgeBucket = classify.AgeBucket(fields[model.ColCleanAge])
	c.ReceivedAgeBucket = classify.AgeBucket(fields[model.ColAge])

	status := strings.ToUpper(fields[model.ColClaimStatus])
	state := strings.ToUpper(fields[model.ColClaimState])
	c.IsPrebatch = status == "PREBATCH" || state == "PREBATCH" ||
		status == "DRAFT" || state == "DRAFT"

	return c
}

// Reclassify rederives the team fields on an existing claim from the
// current rule store state. Aging and prebatch fields are untouched.
func Reclassify(c *model.Claim, cls *classify.Classifier) {
	c.AssignedTeam = cls.AssignTeam(c.Edits(), c.Notes())
	if c.AssignedTeam == model.TeamPV {
		c.PVSubTeam = cls.SubTeam(c.Edits(), c.Notes())
	} else {
		c.PVSubTeam = ""
	}
}
