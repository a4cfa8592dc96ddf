package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/claimtriage/internal/classify"
	"github.com/gyeh/claimtriage/internal/exitcode"
	"github.com/gyeh/claimtriage/internal/export"
	"github.com/gyeh/claimtriage/internal/ingest"
	"github.com/gyeh/claimtriage/internal/model"
	"github.com/gyeh/claimtriage/internal/report"
	"github.com/gyeh/claimtriage/internal/rules"
	"github.com/gyeh/claimtriage/internal/tabread"
)

// newSession builds a Session over the configured rule store and taxonomy.
func newSession(log zerolog.Logger) *ingest.Session {
	tax, err := cfg.Taxonomy()
	if err != nil {
		log.Error().Err(err).Msg("taxonomy load failed")
		os.Exit(exitcode.UsageError)
	}
	store := rules.NewStore(rules.NewFileStorage(cfg.RulesPath))
	return ingest.NewSession(log, classify.New(store, tax))
}

// loadInput reads the configured claims export into the session.
func loadInput(log zerolog.Logger, s *ingest.Session) {
	tbl, err := tabread.Read(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Str("file", cfg.FilePath).Msg("input parse failed")
		os.Exit(exitcode.ParseError)
	}

	if err := s.Load(tbl.Headers, tbl.Rows); err != nil {
		if se, ok := err.(*ingest.SchemaError); ok {
			log.Error().Strs("missing", se.Missing).Msg("header mismatch")
			os.Exit(exitcode.SchemaError)
		}
		log.Error().Err(err).Msg("ingest failed")
		os.Exit(exitcode.ParseError)
	}
}

// writeOutputs renders the configured artifacts from the session state.
func writeOutputs(log zerolog.Logger, s *ingest.Session) {
	counts := report.Aggregate(s.Claims)

	if cfg.ReportPath != "" {
		if err := report.RenderFile(cfg.ReportPath, s.Groups, counts, len(s.ActiveClaims())); err != nil {
			log.Error().Err(err).Msg("report render failed")
			os.Exit(exitcode.ReportError)
		}
		log.Info().Str("path", cfg.ReportPath).Msg("report written")
	}

	if cfg.ClaimsWorkbook != "" {
		claims := s.TeamClaims(model.TeamClaims)
		if err := export.TeamWorkbook(cfg.ClaimsWorkbook, s.Headers, claims, true); err != nil {
			log.Error().Err(err).Msg("claims workbook failed")
			os.Exit(exitcode.ExportError)
		}
		log.Info().Str("path", cfg.ClaimsWorkbook).Int("claims", len(claims)).Msg("claims workbook written")
	}

	if cfg.PVFullWorkbook != "" {
		claims := s.TeamClaims(model.TeamPV)
		if err := export.TeamWorkbook(cfg.PVFullWorkbook, s.Headers, claims, true); err != nil {
			log.Error().Err(err).Msg("pv full workbook failed")
			os.Exit(exitcode.ExportError)
		}
		log.Info().Str("path", cfg.PVFullWorkbook).Int("claims", len(claims)).Msg("pv full workbook written")
	}

	if cfg.PVWorkbook != "" {
		claims := s.TeamClaims(model.TeamPV)
		totals := report.PVSubTeamTotals(s.Groups)
		if err := export.PVWorkbook(cfg.PVWorkbook, claims, totals); err != nil {
			log.Error().Err(err).Msg("pv workbook failed")
			os.Exit(exitcode.ExportError)
		}
		log.Info().Str("path", cfg.PVWorkbook).Int("claims", len(claims)).Msg("pv workbook written")
	}

	if cfg.ShowGroups {
		printGroups(s.Groups)
	}
}

// printGroups dumps the grouping map sorted by count descending.
func printGroups(groups map[string]*model.Group) {
	sorted := make([]*model.Group, 0, len(groups))
	for _, g := range groups {
		sorted = append(sorted, g)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Edits < sorted[j].Edits
	})

	fmt.Printf("%-7s %-34s %s\n", "COUNT", "TEAM", "EDITS | NOTES")
	for _, g := range sorted {
		fmt.Printf("%-7d %-34s %s | %s\n", g.Count, g.Team, g.Edits, g.Notes)
	}
}

// printSummary prints the one-line pass result.
func printSummary(s *ingest.Session, start time.Time) {
	sum := s.Summary
	fmt.Printf("Analysis complete: %d rows read, %d claims (%d active, %d prebatch), %d groups, %d rules (%.1fs)\n",
		sum.RowsRead, sum.Claims, sum.ActiveClaims, sum.PrebatchClaims, sum.Groups, sum.RulesApplied,
		time.Since(start).Seconds())
}
