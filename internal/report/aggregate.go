package report

import (
	"strings"

	"github.com/gyeh/claimtriage/internal/model"
)

// BucketCounts splits one aging bucket by network participation.
type BucketCounts struct {
	Par    int
	NonPar int
	Total  int
}

// SegmentCounts accumulates one slice (e.g. DSNP + active) across aging
// buckets, keyed by the short bucket label.
type SegmentCounts struct {
	Total       int
	ParTotal    int
	NonParTotal int
	Buckets     map[string]*BucketCounts
}

func newSegment() *SegmentCounts {
	return &SegmentCounts{Buckets: make(map[string]*BucketCounts)}
}

// Bucket returns the counts for the short bucket label, zero-valued when
// nothing landed there.
func (s *SegmentCounts) Bucket(label string) BucketCounts {
	if b := s.Buckets[label]; b != nil {
		return *b
	}
	return BucketCounts{}
}

func (s *SegmentCounts) add(bucket string, par bool) {
	s.Total++
	b := s.Buckets[bucket]
	if b == nil {
		b = &BucketCounts{}
		s.Buckets[bucket] = b
	}
	b.Total++
	if par {
		s.ParTotal++
		b.Par++
	} else {
		s.NonParTotal++
		b.NonPar++
	}
}

// StatusCounts splits a segment by claim lifecycle status.
type StatusCounts struct {
	Active   *SegmentCounts
	Prebatch *SegmentCounts
	Combined *SegmentCounts
}

func newStatusCounts() *StatusCounts {
	return &StatusCounts{
		Active:   newSegment(),
		Prebatch: newSegment(),
		Combined: newSegment(),
	}
}

// Counts is the full cross-cut: {overall, DSNP, non-DSNP} ×
// {active, prebatch, combined} × aging bucket × {Par, NonPar}.
type Counts struct {
	Overall *StatusCounts
	DSNP    *StatusCounts
	NonDSNP *StatusCounts
}

// Aggregate computes workload counts over the claim set. Unassigned claims
// are excluded entirely: work is not attributable to a segment until a
// team owns it. Each claim increments four nesting paths so totals stay
// consistent across every slice in a single scan.
func Aggregate(claims []*model.Claim) *Counts {
	counts := &Counts{
		Overall: newStatusCounts(),
		DSNP:    newStatusCounts(),
		NonDSNP: newStatusCounts(),
	}

	for _, c := range claims {
		if c.AssignedTeam == model.TeamUnassigned {
			continue
		}

		bucket := c.AgeBucket.Short()
		par := strings.ToUpper(strings.TrimSpace(c.Field(model.ColNetworkStatus))) == "IN NETWORK"
		segment := counts.NonDSNP
		if strings.ToUpper(c.Field(model.ColDSNP)) == "DSNP" {
			segment = counts.DSNP
		}

		status := counts.Overall.Active
		segStatus := segment.Active
		if c.IsPrebatch {
			status = counts.Overall.Prebatch
			segStatus = segment.Prebatch
		}

		status.add(bucket, par)
		counts.Overall.Combined.add(bucket, par)
		segStatus.add(bucket, par)
		segment.Combined.add(bucket, par)
	}

	return counts
}

// TeamTotals sums group member counts per resolved team.
func TeamTotals(groups map[string]*model.Group) map[model.Team]int {
	totals := make(map[model.Team]int)
	for _, g := range groups {
		totals[g.Team] += g.Count
	}
	return totals
}

// PVSubTeamTotals sums group member counts per PV sub-team.
func PVSubTeamTotals(groups map[string]*model.Group) map[model.SubTeam]int {
	totals := make(map[model.SubTeam]int)
	for _, g := range groups {
		if g.Team == model.TeamPV && g.SubTeam != "" {
			totals[g.SubTeam] += g.Count
		}
	}
	return totals
}
