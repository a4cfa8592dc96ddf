package ingest

import (
	"reflect"
	"testing"

	"github.com/gyeh/claimtriage/internal/model"
	"github.com/gyeh/claimtriage/internal/normalize"
)

func TestConsolidateCountConservation(t *testing.T) {
	cls := newClassifier()
	rows := [][]string{
		row(t, map[string]string{model.ColClaimNumber: "C-1", model.ColClaimEdits: "Edit A"}),
		row(t, map[string]string{model.ColClaimNumber: "C-2", model.ColClaimEdits: "edit  a"}),
		row(t, map[string]string{model.ColClaimNumber: "C-3", model.ColClaimEdits: "Edit B"}),
		row(t, map[string]string{model.ColClaimNumber: "C-4", model.ColClaimStatus: "PREBATCH"}),
	}
	claims, err := Ingest(testHeaders, rows, cls)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	groups := Consolidate(claims, cls)

	sum := 0
	for _, g := range groups {
		sum += g.Count
	}
	active := 0
	for _, c := range claims {
		if !c.IsPrebatch {
			active++
		}
	}
	if sum != active {
		t.Errorf("sum of group counts = %d, want %d active claims", sum, active)
	}
	if len(groups) != 2 {
		t.Errorf("groups = %d, want 2 (whitespace/case variants share a key)", len(groups))
	}
}

func TestConsolidateDisplayTextAndSamples(t *testing.T) {
	cls := newClassifier()
	rows := [][]string{
		row(t, map[string]string{model.ColClaimNumber: "C-1", model.ColClaimEdits: "Edit A"}),
		row(t, map[string]string{model.ColClaimNumber: "C-2", model.ColClaimEdits: "EDIT A"}),
		row(t, map[string]string{model.ColClaimNumber: "C-3", model.ColClaimEdits: "edit a"}),
		row(t, map[string]string{model.ColClaimNumber: "C-4", model.ColClaimEdits: "edit a"}),
	}
	claims, _ := Ingest(testHeaders, rows, cls)
	groups := Consolidate(claims, cls)

	key := normalize.Key("Edit A", "")
	g, ok := groups[key]
	if !ok {
		t.Fatalf("no group for key %q", key)
	}
	if g.Count != 4 {
		t.Errorf("Count = %d, want 4", g.Count)
	}
	if g.Edits != "Edit A" {
		t.Errorf("display edits = %q, want first-seen case", g.Edits)
	}
	if g.Notes != normalize.NoNotesPlaceholder {
		t.Errorf("display notes = %q", g.Notes)
	}
	if want := []string{"C-1", "C-2", "C-3"}; !reflect.DeepEqual(g.SampleClaims, want) {
		t.Errorf("SampleClaims = %v, want %v", g.SampleClaims, want)
	}
}

func TestConsolidateScenarioRuleDrivenRegroup(t *testing.T) {
	cls := newClassifier()
	edits := "No Active Contracts Found For This DOS"
	rows := [][]string{
		row(t, map[string]string{model.ColClaimNumber: "C-1", model.ColClaimEdits: edits}),
		row(t, map[string]string{model.ColClaimNumber: "C-2", model.ColClaimEdits: edits}),
		row(t, map[string]string{model.ColClaimNumber: "C-3", model.ColClaimEdits: edits}),
	}
	claims, err := Ingest(testHeaders, rows, cls)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	groups := Consolidate(claims, cls)

	key := normalize.Key(edits, "")
	g := groups[key]
	if g == nil {
		t.Fatalf("no group for key %q", key)
	}
	if g.Count != 3 || g.Team != model.TeamUnassigned {
		t.Fatalf("initial group = count %d team %q, want 3 / unassigned", g.Count, g.Team)
	}

	// A rule plus re-ingest flips the whole group.
	if err := cls.Rules().Set(key, model.TeamPV); err != nil {
		t.Fatalf("Set: %v", err)
	}
	claims, _ = Ingest(testHeaders, rows, cls)
	groups = Consolidate(claims, cls)

	g = groups[key]
	if g.Count != 3 || g.Team != model.TeamPV {
		t.Fatalf("regrouped = count %d team %q, want 3 / PV", g.Count, g.Team)
	}
	if g.SubTeam != model.SubTeamContract {
		t.Errorf("SubTeam = %q, want Contract/Network Issues", g.SubTeam)
	}
}

func TestConsolidateIdempotent(t *testing.T) {
	cls := newClassifier()
	rows := [][]string{
		row(t, map[string]string{model.ColClaimNumber: "C-1", model.ColClaimEdits: "Edit A"}),
		row(t, map[string]string{model.ColClaimNumber: "C-2", model.ColClaimNotes: "Note B"}),
		row(t, map[string]string{model.ColClaimNumber: "C-3", model.ColClaimEdits: "Edit A"}),
	}

	runPass := func() map[string]*model.Group {
		claims, err := Ingest(testHeaders, rows, cls)
		if err != nil {
			t.Fatalf("Ingest: %v", err)
		}
		return Consolidate(claims, cls)
	}

	first := runPass()
	second := runPass()
	if !reflect.DeepEqual(first, second) {
		t.Error("two passes with unchanged rules and rows must produce identical grouping maps")
	}
}

func TestWinningTeamTieBreakDeterministic(t *testing.T) {
	counts := map[model.Team]int{
		model.TeamPV:         2,
		model.TeamClaims:     2,
		model.TeamUnassigned: 1,
	}
	for i := 0; i < 50; i++ {
		if got := winningTeam(counts); got != model.TeamClaims {
			t.Fatalf("winningTeam = %q, want Claims Team by canonical order", got)
		}
	}
}
