package ingest

import (
	"github.com/gyeh/claimtriage/internal/classify"
	"github.com/gyeh/claimtriage/internal/model"
	"github.com/gyeh/claimtriage/internal/normalize"
)

const maxSampleClaims = 3

// tally accumulates per-team votes for one normalized key while scanning.
type tally struct {
	group      *model.Group
	teamCounts map[model.Team]int
}

// Consolidate builds one group per normalized key from the non-prebatch
// claims. Each group resolves its team by majority vote across member
// claims; in steady state every member carries the same team, so the vote
// is a safety net rather than the primary mechanism.
func Consolidate(claims []*model.Claim, cls *classify.Classifier) map[string]*model.Group {
	tallies := make(map[string]*tally)
	order := make([]string, 0)

	for _, c := range claims {
		if c.IsPrebatch {
			continue
		}
		displayEdits := normalize.SanitizeEdits(c.Edits())
		displayNotes := normalize.SanitizeNotes(c.Notes())
		key := normalize.KeyFromSanitized(displayEdits, displayNotes)

		tl, ok := tallies[key]
		if !ok {
			tl = &tally{
				group: &model.Group{
					Edits: displayEdits,
					Notes: displayNotes,
				},
				teamCounts: make(map[model.Team]int),
			}
			tallies[key] = tl
			order = append(order, key)
		}
		tl.group.Count++
		tl.teamCounts[c.AssignedTeam]++
		if len(tl.group.SampleClaims) < maxSampleClaims {
			tl.group.SampleClaims = append(tl.group.SampleClaims, c.Number())
		}
	}

	groups := make(map[string]*model.Group, len(tallies))
	for _, key := range order {
		tl := tallies[key]
		tl.group.Team = winningTeam(tl.teamCounts)
		if tl.group.Team == model.TeamPV {
			tl.group.SubTeam = cls.SubTeam(tl.group.Edits, tl.group.Notes)
		}
		groups[key] = tl.group
	}
	return groups
}

// winningTeam picks the team with the highest vote count. Ties break by
// the canonical team order so the result never depends on map iteration.
func winningTeam(counts map[model.Team]int) model.Team {
	winner := model.TeamUnassigned
	max := 0
	for _, t := range model.AllTeams {
		if n := counts[t]; n > max {
			max = n
			winner = t
		}
	}
	return winner
}
