package model

// Claim is one row of the input dataset. Fields preserves every original
// column verbatim (trimmed); the derived fields are recomputed in place on
// each analysis pass.
type Claim struct {
	Fields map[string]string

	AssignedTeam      Team
	PVSubTeam         SubTeam // set only when AssignedTeam == TeamPV
	AgeBucket         AgeBucket
	ReceivedAgeBucket AgeBucket
	IsPrebatch        bool
}

// Field returns the trimmed value of the named column, or "" if absent.
func (c *Claim) Field(name string) string {
	return c.Fields[name]
}

func (c *Claim) Number() string { return c.Fields[ColClaimNumber] }
func (c *Claim) Edits() string  { return c.Fields[ColClaimEdits] }
func (c *Claim) Notes() string  { return c.Fields[ColClaimNotes] }
