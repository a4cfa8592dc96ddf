package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gyeh/claimtriage/internal/exitcode"
	"github.com/gyeh/claimtriage/internal/logging"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a claims export and write reports",
	RunE:  runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to claims export: CSV, TSV, or XLSX (required)")
	f.StringVar(&cfg.ReportPath, "report", "", "Write the HTML summary report to this path")
	f.StringVar(&cfg.ClaimsWorkbook, "claims-workbook", "", "Write the Claims Team master workbook (full columns)")
	f.StringVar(&cfg.PVWorkbook, "pv-workbook", "", "Write the PV workload workbook (non-PHI columns, deduplicated)")
	f.StringVar(&cfg.PVFullWorkbook, "pv-full", "", "Write the PV full-data workbook (full columns)")
	f.BoolVar(&cfg.ShowGroups, "show-groups", false, "Print the consolidated edits/notes groups")
	_ = analyzeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	start := time.Now()
	log := logging.Setup(cfg.LogFormat, cfg.Verbose).
		With().Str("run_id", uuid.New().String()).Logger()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	s := newSession(log)
	loadInput(log, s)

	if len(s.Claims) == 0 {
		fmt.Println("Analysis complete: no valid claims rows were found after processing.")
		return nil
	}

	writeOutputs(log, s)
	printSummary(s, start)
	return nil
}
