package model

import "time"

// AnalysisSummary captures metrics from a single analysis pass.
type AnalysisSummary struct {
	RowsRead       int64
	RowsDropped    int64
	Claims         int64
	ActiveClaims   int64
	PrebatchClaims int64
	Groups         int64
	RulesApplied   int64
	TeamTotals     map[Team]int
	DurationTotal  time.Duration
}
