package ingest

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/claimtriage/internal/classify"
	"github.com/gyeh/claimtriage/internal/model"
	"github.com/gyeh/claimtriage/internal/rules"
)

// Session owns the mutable state of one analysis: the retained raw rows,
// the claim collection, and the consolidated grouping map. Claims and
// groups are replaced wholesale on every pass, never patched in place.
type Session struct {
	log zerolog.Logger
	cls *classify.Classifier

	Headers []string
	rows    [][]string
	Claims  []*model.Claim
	Groups  map[string]*model.Group
	Summary model.AnalysisSummary
}

// NewSession creates an empty Session over the given classifier.
func NewSession(log zerolog.Logger, cls *classify.Classifier) *Session {
	return &Session{log: log, cls: cls}
}

// Classifier returns the session's classifier.
func (s *Session) Classifier() *classify.Classifier {
	return s.cls
}

// Rules returns the session's rule store.
func (s *Session) Rules() *rules.Store {
	return s.cls.Rules()
}

// Loaded reports whether claims have been ingested.
func (s *Session) Loaded() bool {
	return len(s.Claims) > 0
}

// Load ingests parsed tabular data and consolidates the grouping map,
// replacing any previously loaded state. The raw rows are retained so
// reassignment passes can recompute from scratch.
func (s *Session) Load(headers []string, rows [][]string) error {
	start := time.Now()

	claims, err := Ingest(headers, rows, s.cls)
	if err != nil {
		return err
	}

	s.Headers = append([]string(nil), headers...)
	s.rows = rows
	s.Claims = claims
	s.Groups = Consolidate(claims, s.cls)
	s.updateSummary(len(rows), time.Since(start))

	s.log.Info().
		Int("rows", len(rows)).
		Int("claims", len(claims)).
		Int("dropped", len(rows)-len(claims)).
		Int("groups", len(s.Groups)).
		Dur("duration", time.Since(start)).
		Msg("analysis pass complete")
	return nil
}

// updateSummary recomputes the pass metrics from current session state.
func (s *Session) updateSummary(rowsRead int, elapsed time.Duration) {
	totals := make(map[model.Team]int)
	var prebatch int
	for _, c := range s.Claims {
		if c.IsPrebatch {
			prebatch++
			continue
		}
		totals[c.AssignedTeam]++
	}

	s.Summary = model.AnalysisSummary{
		RowsRead:       int64(rowsRead),
		RowsDropped:    int64(rowsRead - len(s.Claims)),
		Claims:         int64(len(s.Claims)),
		ActiveClaims:   int64(len(s.Claims) - prebatch),
		PrebatchClaims: int64(prebatch),
		Groups:         int64(len(s.Groups)),
		RulesApplied:   int64(s.Rules().Count()),
		TeamTotals:     totals,
		DurationTotal:  elapsed,
	}
}

// Edit is one user decision against a grouped entry.
type Edit struct {
	Key  string
	Team model.Team
}

// ApplyEdits writes a batch of edits into the rule store (explicit teams
// become rules, unassigned removes the rule) and then recomputes all
// derived state from the retained rows. Every reassignment is a full
// recomputation pass so no stale derived field can outlive a rule change.
func (s *Session) ApplyEdits(edits []Edit) error {
	store := s.Rules()
	for _, e := range edits {
		var err error
		if e.Team.Explicit() {
			err = store.Set(e.Key, e.Team)
		} else {
			err = store.Clear(e.Key)
		}
		if err != nil {
			return err
		}
	}

	s.log.Info().
		Int("edits", len(edits)).
		Int("rules", store.Count()).
		Msg("edit batch applied")

	return s.refresh()
}

// ImportRules parses external rule bytes and merges them into the store,
// imported entries winning on key clash. Unparsable or wrong-shape input
// returns an ImportError with the store left untouched. When claims are
// loaded the full recomputation pass runs afterwards.
func (s *Session) ImportRules(data []byte) (int, error) {
	imported, err := rules.Parse(data)
	if err != nil {
		return 0, &ImportError{Err: err}
	}

	n, err := s.Rules().Merge(imported)
	if err != nil {
		return 0, err
	}

	s.log.Info().
		Int("imported", n).
		Int("rules", s.Rules().Count()).
		Msg("rules imported")

	if err := s.refresh(); err != nil {
		return 0, err
	}
	return n, nil
}

// refresh re-runs the full ingest and consolidation over the retained
// rows. A no-op before any Load.
func (s *Session) refresh() error {
	if !s.Loaded() {
		return nil
	}
	start := time.Now()
	claims, err := Ingest(s.Headers, s.rows, s.cls)
	if err != nil {
		return err
	}
	s.Claims = claims
	s.Groups = Consolidate(claims, s.cls)
	s.updateSummary(len(s.rows), time.Since(start))
	return nil
}

// ActiveClaims returns the non-prebatch claims.
func (s *Session) ActiveClaims() []*model.Claim {
	var out []*model.Claim
	for _, c := range s.Claims {
		if !c.IsPrebatch {
			out = append(out, c)
		}
	}
	return out
}

// TeamClaims returns the active claims assigned to team.
func (s *Session) TeamClaims(team model.Team) []*model.Claim {
	var out []*model.Claim
	for _, c := range s.Claims {
		if !c.IsPrebatch && c.AssignedTeam == team {
			out = append(out, c)
		}
	}
	return out
}
