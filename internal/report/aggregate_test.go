package report

import (
	"testing"

	"github.com/gyeh/claimtriage/internal/model"
)

func claim(team model.Team, bucket model.AgeBucket, network, dsnp string, prebatch bool) *model.Claim {
	return &model.Claim{
		Fields: map[string]string{
			model.ColNetworkStatus: network,
			model.ColDSNP:          dsnp,
		},
		AssignedTeam: team,
		AgeBucket:    bucket,
		IsPrebatch:   prebatch,
	}
}

func TestAggregateExcludesUnassigned(t *testing.T) {
	claims := []*model.Claim{
		claim(model.TeamUnassigned, model.Age0to20, "In Network", "DSNP", false),
		claim(model.TeamClaims, model.Age0to20, "In Network", "DSNP", false),
	}
	counts := Aggregate(claims)
	if counts.Overall.Combined.Total != 1 {
		t.Errorf("combined total = %d, want 1 (unassigned excluded)", counts.Overall.Combined.Total)
	}
}

func TestAggregateFourPathConsistency(t *testing.T) {
	claims := []*model.Claim{
		claim(model.TeamClaims, model.Age0to20, "In Network", "DSNP", false),
		claim(model.TeamClaims, model.Age31Plus, "Out of Network", "DSNP", true),
		claim(model.TeamPV, model.Age21to27, "in network ", "Non DSNP", false),
		claim(model.TeamPV, model.Age28to30, "", "Non DSNP", false),
	}
	counts := Aggregate(claims)

	// Combined totals equal active + prebatch at every level.
	if got := counts.Overall.Combined.Total; got != 4 {
		t.Errorf("overall combined = %d, want 4", got)
	}
	if got := counts.Overall.Active.Total + counts.Overall.Prebatch.Total; got != 4 {
		t.Errorf("overall active+prebatch = %d, want 4", got)
	}
	if got := counts.DSNP.Combined.Total + counts.NonDSNP.Combined.Total; got != 4 {
		t.Errorf("dsnp+nondsnp combined = %d, want 4", got)
	}

	// Par splits by case-insensitive, trimmed "IN NETWORK".
	if counts.Overall.Combined.ParTotal != 2 || counts.Overall.Combined.NonParTotal != 2 {
		t.Errorf("par split = %d/%d, want 2/2",
			counts.Overall.Combined.ParTotal, counts.Overall.Combined.NonParTotal)
	}

	// Bucket placement.
	b := counts.DSNP.Prebatch.Bucket("31+")
	if b.NonPar != 1 || b.Total != 1 {
		t.Errorf("DSNP prebatch 31+ = %+v", b)
	}
	if counts.NonDSNP.Active.Bucket("21-27").Par != 1 {
		t.Errorf("NonDSNP active 21-27 Par = %d, want 1", counts.NonDSNP.Active.Bucket("21-27").Par)
	}
}

func TestTeamTotals(t *testing.T) {
	groups := map[string]*model.Group{
		"A": {Count: 3, Team: model.TeamClaims},
		"B": {Count: 2, Team: model.TeamPV, SubTeam: model.SubTeamContract},
		"C": {Count: 4, Team: model.TeamPV, SubTeam: model.SubTeamContract},
		"D": {Count: 1, Team: model.TeamUnassigned},
	}
	teams := TeamTotals(groups)
	if teams[model.TeamClaims] != 3 || teams[model.TeamPV] != 6 || teams[model.TeamUnassigned] != 1 {
		t.Errorf("team totals = %v", teams)
	}
	subs := PVSubTeamTotals(groups)
	if subs[model.SubTeamContract] != 6 {
		t.Errorf("sub-team totals = %v", subs)
	}
}
