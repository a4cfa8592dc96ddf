package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gyeh/claimtriage/internal/classify"
)

// Config holds all runtime configuration for a claimtriage run.
type Config struct {
	RulesPath    string // persisted rule store location
	TaxonomyPath string // optional YAML override for the PV sub-team taxonomy
	LogFormat    string // "text" or "json"
	Verbose      bool

	FilePath string // input claims export

	// Output targets; empty means the artifact is not written.
	ReportPath     string
	ClaimsWorkbook string
	PVWorkbook     string
	PVFullWorkbook string

	EditsPath  string // reassignment batch file
	ShowGroups bool
}

// DefaultRulesPath returns the per-user rule store location.
func DefaultRulesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rules.json"
	}
	return filepath.Join(home, ".claimtriage", "rules.json")
}

// Validate checks that the input file is set and accessible.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}

// ValidateWithEdits checks both the input file and the edits batch file.
func (c *Config) ValidateWithEdits() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.EditsPath == "" {
		return fmt.Errorf("--edits is required")
	}
	if _, err := os.Stat(c.EditsPath); err != nil {
		return fmt.Errorf("edits file not accessible: %w", err)
	}
	return nil
}

// Taxonomy loads the phrase taxonomy from TaxonomyPath, or returns the
// built-in default when no override is configured.
func (c *Config) Taxonomy() (classify.Taxonomy, error) {
	if c.TaxonomyPath == "" {
		return classify.DefaultTaxonomy, nil
	}
	return classify.LoadTaxonomy(c.TaxonomyPath)
}
