package model

// Team is one of the three coarse work-assignment categories.
type Team string

const (
	TeamClaims     Team = "Claims Team"
	TeamPV         Team = "PV Team (Provider Ops)"
	TeamUnassigned Team = "Needs Assignment (Initial Review)"
)

// AllTeams lists the teams in canonical order. The order is also the
// tie-break precedence when group consolidation votes are level.
var AllTeams = []Team{TeamClaims, TeamPV, TeamUnassigned}

// ParseTeam resolves a team display name, or ok=false.
func ParseTeam(name string) (Team, bool) {
	for _, t := range AllTeams {
		if string(t) == name {
			return t, true
		}
	}
	return "", false
}

// Explicit reports whether t may be stored as a reassignment rule.
// TeamUnassigned is never stored; its absence is the unassigned state.
func (t Team) Explicit() bool {
	return t == TeamClaims || t == TeamPV
}

// SubTeam is the finer-grained category within the PV team.
type SubTeam string

const (
	SubTeamProviderVendor SubTeam = "Provider/Vendor Creation"
	SubTeamW9Validation   SubTeam = "W9/Validation/COB"
	SubTeamContract       SubTeam = "Contract/Network Issues"
	SubTeamPayTo          SubTeam = "Pay-to Provider Issues"
	SubTeamPricing        SubTeam = "Pricing/PBP/Other"
	SubTeamUncategorized  SubTeam = "PV Team (Uncategorized)"
)

// AllSubTeams lists the PV sub-teams in taxonomy priority order.
var AllSubTeams = []SubTeam{
	SubTeamProviderVendor,
	SubTeamW9Validation,
	SubTeamContract,
	SubTeamPayTo,
	SubTeamPricing,
	SubTeamUncategorized,
}
