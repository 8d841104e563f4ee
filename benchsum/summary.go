// Copyright 2026 The PMR Market Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchsum computes per-scenario summary statistics over
// benchmark result records.
package benchsum

import (
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/pmr-sim/benchreport/benchcsv"
)

// A Summary holds the aggregated statistics of all repetitions of one
// scenario.
//
// Mode, Threads, Symbols and Events are representative values taken
// from the lowest-Rep record of the group; they are assumed
// homogeneous across repetitions and are not verified.
type Summary struct {
	Scenario string
	Mode     string
	Threads  int
	Symbols  int
	Events   int

	BestThroughput int
	AvgThroughput  int
	BestBookOps    int
	AvgBookOps     int

	// AvgActionRatio is invalid if the ratio of any repetition in
	// the group was absent or unparseable.
	AvgActionRatio benchcsv.Float
}

// Summarize groups records by scenario and computes one Summary per
// distinct scenario value. Summaries are returned in first-seen input
// order; presentation order is the renderer's concern.
//
// Averages of the integer rate metrics are truncated toward zero, not
// rounded.
func Summarize(records []benchcsv.Record) []Summary {
	groups := make(map[string][]benchcsv.Record)
	var order []string
	for _, r := range records {
		if _, ok := groups[r.Scenario]; !ok {
			order = append(order, r.Scenario)
		}
		groups[r.Scenario] = append(groups[r.Scenario], r)
	}

	summaries := make([]Summary, 0, len(order))
	for _, scenario := range order {
		summaries = append(summaries, summarizeGroup(scenario, groups[scenario]))
	}
	return summaries
}

func summarizeGroup(scenario string, group []benchcsv.Record) Summary {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Rep < group[j].Rep
	})

	throughputs := make([]float64, len(group))
	bookOps := make([]float64, len(group))
	var sumT, sumO int
	for i, r := range group {
		throughputs[i] = float64(r.Throughput)
		bookOps[i] = float64(r.BookOpsPerSec)
		sumT += r.Throughput
		sumO += r.BookOpsPerSec
	}

	_, bestT := stats.Bounds(throughputs)
	_, bestO := stats.Bounds(bookOps)

	return Summary{
		Scenario: scenario,
		Mode:     group[0].Mode,
		Threads:  group[0].Threads,
		Symbols:  group[0].Symbols,
		Events:   group[0].Events,

		// The truncated averages come from exact integer sums:
		// a floating-point mean can drift fractionally below an
		// exact integer mean and truncate one too low.
		BestThroughput: int(bestT),
		AvgThroughput:  sumT / len(group),
		BestBookOps:    int(bestO),
		AvgBookOps:     sumO / len(group),

		AvgActionRatio: meanFloat(group),
	}
}

// meanFloat averages the action ratios of a group. An invalid member
// poisons the mean, the tagged equivalent of NaN propagation.
func meanFloat(group []benchcsv.Record) benchcsv.Float {
	xs := make([]float64, len(group))
	for i, r := range group {
		if !r.ActionRatio.OK {
			return benchcsv.Float{}
		}
		xs[i] = r.ActionRatio.Value
	}
	return benchcsv.ValidFloat(stats.Mean(xs))
}
