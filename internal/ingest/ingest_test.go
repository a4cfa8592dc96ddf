package ingest

import (
	"testing"

	"github.com/gyeh/claimtriage/internal/classify"
	"github.com/gyeh/claimtriage/internal/model"
	"github.com/gyeh/claimtriage/internal/rules"
)

// testHeaders is the full required header set in input order.
var testHeaders = append([]string(nil), model.RequiredHeaders...)

// row builds a full-width row with the given overrides by header name.
func row(t *testing.T, overrides map[string]string) []string {
	t.Helper()
	defaults := map[string]string{
		model.ColClaimNumber:   "C-1",
		model.ColClaimStatus:   "OPEN",
		model.ColClaimState:    "ACTIVE",
		model.ColCleanAge:      "10",
		model.ColAge:           "12",
		model.ColPayer:         "Acme Health",
		model.ColNetworkStatus: "In Network",
		model.ColDSNP:          "Non DSNP",
		model.ColReceivedDate:  "01/02/2025",
		model.ColDOSFrom:       "2024-12-01",
		model.ColDOSTo:         "2024-12-05",
	}
	for k, v := range overrides {
		defaults[k] = v
	}
	out := make([]string, len(testHeaders))
	for i, h := range testHeaders {
		out[i] = defaults[h]
	}
	return out
}

func newClassifier() *classify.Classifier {
	return classify.New(rules.NewStore(rules.NewMemoryStorage()), nil)
}

func TestIngestSchemaError(t *testing.T) {
	headers := []string{model.ColClaimNumber, model.ColClaimEdits, "Unrelated"}
	_, err := Ingest(headers, nil, newClassifier())

	se, ok := err.(*SchemaError)
	if !ok {
		t.Fatalf("expected *SchemaError, got %T: %v", err, err)
	}
	if len(se.Missing) != len(model.RequiredHeaders)-2 {
		t.Errorf("missing = %v", se.Missing)
	}
	for _, m := range se.Missing {
		if m == model.ColClaimNumber || m == model.ColClaimEdits {
			t.Errorf("present header %q reported missing", m)
		}
	}
}

func TestIngestShortRowsDropped(t *testing.T) {
	full := row(t, map[string]string{model.ColClaimNumber: "C-1"})
	short := full[:len(full)-2]

	claims, err := Ingest(testHeaders, [][]string{full, short}, newClassifier())
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if len(claims) != 1 {
		t.Fatalf("claims = %d, want 1 (short row dropped silently)", len(claims))
	}
	if claims[0].Number() != "C-1" {
		t.Errorf("kept claim = %q", claims[0].Number())
	}
}

func TestIngestEmptyResultIsNotError(t *testing.T) {
	claims, err := Ingest(testHeaders, nil, newClassifier())
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if len(claims) != 0 {
		t.Errorf("claims = %d, want 0", len(claims))
	}
}

func TestIngestDerivedFields(t *testing.T) {
	rows := [][]string{
		row(t, map[string]string{
			model.ColClaimNumber: " C-9 ",
			model.ColCleanAge:    "31",
			model.ColAge:         "abc",
		}),
		row(t, map[string]string{model.ColClaimStatus: "Prebatch"}),
		row(t, map[string]string{model.ColClaimState: "DRAFT"}),
	}
	claims, err := Ingest(testHeaders, rows, newClassifier())
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	c := claims[0]
	if c.Number() != "C-9" {
		t.Errorf("values must be trimmed, got %q", c.Number())
	}
	if c.AgeBucket != model.Age31Plus {
		t.Errorf("AgeBucket = %q", c.AgeBucket)
	}
	if c.ReceivedAgeBucket != model.AgeNA {
		t.Errorf("ReceivedAgeBucket = %q", c.ReceivedAgeBucket)
	}
	if c.AssignedTeam != model.TeamUnassigned {
		t.Errorf("AssignedTeam = %q, want unassigned with no rules", c.AssignedTeam)
	}
	if c.PVSubTeam != "" {
		t.Errorf("PVSubTeam = %q, want absent outside PV team", c.PVSubTeam)
	}
	if c.IsPrebatch {
		t.Error("claim 0 should not be prebatch")
	}
	if !claims[1].IsPrebatch || !claims[2].IsPrebatch {
		t.Error("prebatch/draft status or state must set IsPrebatch")
	}
}
