package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gyeh/claimtriage/internal/exitcode"
	"github.com/gyeh/claimtriage/internal/ingest"
	"github.com/gyeh/claimtriage/internal/logging"
	"github.com/gyeh/claimtriage/internal/model"
	"github.com/gyeh/claimtriage/internal/normalize"
)

var reassignCmd = &cobra.Command{
	Use:   "reassign",
	Short: "Apply a reassignment edit batch and re-analyze",
	RunE:  runReassign,
}

func init() {
	f := reassignCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to claims export (required)")
	f.StringVar(&cfg.EditsPath, "edits", "", "YAML edit batch to apply (required)")
	f.StringVar(&cfg.ReportPath, "report", "", "Write the HTML summary report to this path")
	f.StringVar(&cfg.ClaimsWorkbook, "claims-workbook", "", "Write the Claims Team master workbook")
	f.StringVar(&cfg.PVWorkbook, "pv-workbook", "", "Write the PV workload workbook")
	f.StringVar(&cfg.PVFullWorkbook, "pv-full", "", "Write the PV full-data workbook")
	f.BoolVar(&cfg.ShowGroups, "show-groups", false, "Print the consolidated edits/notes groups")
	_ = reassignCmd.MarkFlagRequired("file")
	_ = reassignCmd.MarkFlagRequired("edits")
	rootCmd.AddCommand(reassignCmd)
}

// editEntry is one decision in the batch file. The key may be given
// directly or derived from raw edits/notes text.
type editEntry struct {
	Key   string `yaml:"key"`
	Edits string `yaml:"edits"`
	Notes string `yaml:"notes"`
	Team  string `yaml:"team"`
}

type editBatch struct {
	Edits []editEntry `yaml:"edits"`
}

// parseTeamArg accepts team display names and short aliases.
func parseTeamArg(s string) (model.Team, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "claims":
		return model.TeamClaims, true
	case "pv", "provider-ops":
		return model.TeamPV, true
	case "unassigned", "needs-assignment":
		return model.TeamUnassigned, true
	}
	return model.ParseTeam(s)
}

func readEditBatch(path string) ([]ingest.Edit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read edits file: %w", err)
	}
	var batch editBatch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("parse edits file: %w", err)
	}
	if len(batch.Edits) == 0 {
		return nil, fmt.Errorf("edits file has no entries")
	}

	out := make([]ingest.Edit, 0, len(batch.Edits))
	for i, e := range batch.Edits {
		team, ok := parseTeamArg(e.Team)
		if !ok {
			return nil, fmt.Errorf("edit %d: unknown team %q", i, e.Team)
		}
		key := e.Key
		if key == "" {
			key = normalize.Key(e.Edits, e.Notes)
		}
		out = append(out, ingest.Edit{Key: key, Team: team})
	}
	return out, nil
}

func runReassign(cmd *cobra.Command, args []string) error {
	start := time.Now()
	log := logging.Setup(cfg.LogFormat, cfg.Verbose).
		With().Str("run_id", uuid.New().String()).Logger()

	if err := cfg.ValidateWithEdits(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	edits, err := readEditBatch(cfg.EditsPath)
	if err != nil {
		log.Error().Err(err).Msg("edit batch invalid")
		os.Exit(exitcode.UsageError)
	}

	s := newSession(log)
	loadInput(log, s)

	if err := s.ApplyEdits(edits); err != nil {
		log.Error().Err(err).Msg("reassignment failed")
		os.Exit(exitcode.RuleError)
	}

	writeOutputs(log, s)
	fmt.Printf("Applied %d edit(s); %d rule(s) now stored.\n", len(edits), s.Rules().Count())
	printSummary(s, start)
	return nil
}
