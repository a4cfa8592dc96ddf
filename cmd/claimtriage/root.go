package main

import (
	"github.com/spf13/cobra"

	"github.com/gyeh/claimtriage/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "claimtriage",
	Short: "Claims export triage: team assignment, grouping, workload reports",
	Long: "Reads a tabular claims export (CSV/TSV/XLSX), classifies every claim " +
		"into a work team via persisted reassignment rules, consolidates identical " +
		"edits/notes groups, and writes workload reports and hand-off workbooks.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.RulesPath, "rules", config.DefaultRulesPath(), "Path to the persisted rule store")
	pf.StringVar(&cfg.TaxonomyPath, "taxonomy", "", "YAML file overriding the PV sub-team phrase taxonomy")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging")
}
