package model

// Group is the consolidated entry for all non-prebatch claims sharing a
// normalized (edits, notes) key. Rebuilt wholesale on every analysis pass.
type Group struct {
	Count int

	// Display text in original case, taken from the first-seen claim.
	Edits string
	Notes string

	Team    Team
	SubTeam SubTeam // set only when Team == TeamPV

	// Up to 3 member claim numbers for spot checks.
	SampleClaims []string
}
