package classify

import (
	"strings"

	"github.com/gyeh/claimtriage/internal/model"
	"github.com/gyeh/claimtriage/internal/normalize"
	"github.com/gyeh/claimtriage/internal/rules"
)

// Classifier decides the work team for a claim's raw edits/notes text.
// Rule hits are the only path to an explicit team; every key absent from
// the rule store is unassigned, forcing human triage of new combinations.
type Classifier struct {
	rules    *rules.Store
	taxonomy Taxonomy
}

// New creates a Classifier over the given rule store and taxonomy.
// A nil taxonomy falls back to DefaultTaxonomy.
func New(store *rules.Store, taxonomy Taxonomy) *Classifier {
	if taxonomy == nil {
		taxonomy = DefaultTaxonomy
	}
	return &Classifier{rules: store, taxonomy: taxonomy}
}

// Rules exposes the underlying rule store.
func (c *Classifier) Rules() *rules.Store {
	return c.rules
}

// AssignTeam returns the explicit team from the rule store for the
// normalized (edits, notes) key, or TeamUnassigned when no rule exists.
func (c *Classifier) AssignTeam(edits, notes string) model.Team {
	key := normalize.Key(edits, notes)
	if team, ok := c.rules.Lookup(key); ok && team.Explicit() {
		return team
	}
	return model.TeamUnassigned
}

// SubTeam categorizes PV work by case-insensitive substring search against
// the ordered phrase groups; the first matching group wins. Call only for
// claims assigned to the PV team.
func (c *Classifier) SubTeam(edits, notes string) model.SubTeam {
	editsUpper := strings.ToUpper(edits)
	notesUpper := strings.ToUpper(notes)

	for _, g := range c.taxonomy {
		for _, p := range g.Notes {
			if strings.Contains(notesUpper, strings.ToUpper(p)) {
				return g.SubTeam
			}
		}
		for _, p := range g.Edits {
			if strings.Contains(editsUpper, strings.ToUpper(p)) {
				return g.SubTeam
			}
		}
	}
	return model.SubTeamUncategorized
}
