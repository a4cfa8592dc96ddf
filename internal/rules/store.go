package rules

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/gyeh/claimtriage/internal/model"
)

// Store maps normalized (edits, notes) keys to explicit team decisions.
// Only TeamClaims and TeamPV are ever stored; a key's absence is the
// unassigned state. Every mutation is written through to Storage so the
// rules survive process restarts.
type Store struct {
	storage Storage
	rules   map[string]model.Team
}

// NewStore creates a Store backed by storage, loading any persisted state.
// Absent or unparsable persisted bytes yield an empty store.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage, rules: make(map[string]model.Team)}
	data, ok, err := storage.Load()
	if err != nil || !ok {
		return s
	}
	parsed, err := Parse(data)
	if err != nil {
		return s
	}
	s.rules = parsed
	return s
}

// Lookup returns the explicit team for key, or ok=false when unassigned.
func (s *Store) Lookup(key string) (model.Team, bool) {
	t, ok := s.rules[key]
	return t, ok
}

// Set records an explicit team decision for key and persists.
// Setting TeamUnassigned removes the rule instead.
func (s *Store) Set(key string, team model.Team) error {
	if !team.Explicit() {
		return s.Clear(key)
	}
	s.rules[key] = team
	return s.persist()
}

// Clear removes the rule for key, reverting it to unassigned, and persists.
func (s *Store) Clear(key string) error {
	delete(s.rules, key)
	return s.persist()
}

// Merge folds imported rules into the store, imported values winning on
// key clash, and persists. Returns the number of entries merged.
func (s *Store) Merge(imported map[string]model.Team) (int, error) {
	for k, t := range imported {
		if !t.Explicit() {
			// An imported unassigned entry clears any existing rule.
			delete(s.rules, k)
			continue
		}
		s.rules[k] = t
	}
	if err := s.persist(); err != nil {
		return 0, err
	}
	return len(imported), nil
}

// ClearAll removes every rule and persists the empty state.
func (s *Store) ClearAll() error {
	s.rules = make(map[string]model.Team)
	return s.persist()
}

// Count returns the number of stored rules.
func (s *Store) Count() int {
	return len(s.rules)
}

// All returns a copy of the rule map.
func (s *Store) All() map[string]model.Team {
	out := make(map[string]model.Team, len(s.rules))
	for k, t := range s.rules {
		out[k] = t
	}
	return out
}

// Keys returns the rule keys in sorted order, for stable listings.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.rules))
	for k := range s.rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Serialize renders the rules as the indented-JSON interchange format.
func (s *Store) Serialize() ([]byte, error) {
	m := make(map[string]string, len(s.rules))
	for k, t := range s.rules {
		m[k] = string(t)
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize rules: %w", err)
	}
	return data, nil
}

func (s *Store) persist() error {
	data, err := s.Serialize()
	if err != nil {
		return err
	}
	if err := s.storage.Save(data); err != nil {
		return fmt.Errorf("persist rules: %w", err)
	}
	return nil
}

// Parse decodes rule bytes: a JSON object mapping normalized keys to team
// display names. Unknown team names are rejected rather than silently kept.
func Parse(data []byte) (map[string]model.Team, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	out := make(map[string]model.Team, len(raw))
	for k, v := range raw {
		t, ok := model.ParseTeam(v)
		if !ok {
			return nil, fmt.Errorf("parse rules: unknown team %q for key %q", v, k)
		}
		out[k] = t
	}
	return out, nil
}
