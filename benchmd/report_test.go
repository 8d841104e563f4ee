// Copyright 2026 The PMR Market Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/pmr-sim/benchreport/benchcsv"
	"github.com/pmr-sim/benchreport/benchsum"
	"github.com/pmr-sim/benchreport/internal/diff"
)

var testTime = time.Date(2026, 3, 14, 15, 9, 2, 0, time.UTC)

func testReport() *Report {
	return &Report{
		GeneratedAt: testTime,
		Host:        "linux-x86_64-test",
		// Deliberately not in lexicographic order; the renderer
		// must sort.
		Scenarios: []benchsum.Summary{
			{
				Scenario: "mt-4", Mode: "mt", Threads: 4, Symbols: 64, Events: 4000000,
				BestThroughput: 5000000, AvgThroughput: 4750000,
				BestBookOps: 1900000, AvgBookOps: 1850000,
				AvgActionRatio: benchcsv.Float{},
			},
			{
				Scenario: "baseline", Mode: "st", Threads: 1, Symbols: 16, Events: 1000000,
				BestThroughput: 1250000, AvgThroughput: 1200000,
				BestBookOps: 480000, AvgBookOps: 450000,
				AvgActionRatio: benchcsv.ValidFloat(0.375),
			},
		},
	}
}

func TestFormatMarkdown(t *testing.T) {
	want := `# PMR Market Simulator Bench Report

Generated: 2026-03-14T15:09:02
Host: linux-x86_64-test

## Summary

| Scenario | Mode | Threads | Symbols | Events | Best Throughput (ev/s) | Avg Throughput (ev/s) | Best Book Ops/s | Avg Book Ops/s | Action Ratio (avg) |
|---|---:|---:|---:|---:|---:|---:|---:|---:|---:|
| baseline | st | 1 | 16 | 1,000,000 | 1,250,000 | 1,200,000 | 480,000 | 450,000 | 0.375 |
| mt-4 | mt | 4 | 64 | 4,000,000 | 5,000,000 | 4,750,000 | 1,900,000 | 1,850,000 | - |

## Notes

- **Throughput (ev/s)** is the simulator's printed ` + "`Throughput:`" + ` metric.
- **Book Ops/s** is emitted ops (adds+cancels+trades). For multi-thread runs, this comes from the simulator's ` + "`Book ops/sec`" + ` line (max-thread time basis).
- **Action ratio** = (adds+cancels+trades) / total steps.

`
	var buf bytes.Buffer
	FormatMarkdown(&buf, testReport())
	if d := diff.Diff(buf.String(), want); d != "" {
		t.Errorf("markdown report mismatch (-got +want):\n%s", d)
	}
}

func TestFormatMarkdownDoesNotMutateReport(t *testing.T) {
	r := testReport()
	var buf bytes.Buffer
	FormatMarkdown(&buf, r)
	if r.Scenarios[0].Scenario != "mt-4" {
		t.Errorf("renderer reordered the report's summaries: first is %q", r.Scenarios[0].Scenario)
	}
}
