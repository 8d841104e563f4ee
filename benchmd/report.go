// Copyright 2026 The PMR Market Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmd renders per-scenario benchmark summaries as a
// report document.
//
// The default rendering is a Markdown document with a pipe table; the
// same report can also be rendered as an HTML document or as CSV for
// machine consumption. Rendering is a pure function of the Report
// value: the generation timestamp and host descriptor are supplied by
// the caller, not read from process state, so output is deterministic
// under test.
package benchmd

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/pmr-sim/benchreport/benchsum"
)

// Title is the fixed title line of the report.
const Title = "PMR Market Simulator Bench Report"

// ratioPrec is the number of decimal places used for ratio cells.
const ratioPrec = 3

// A Report is the complete input to a rendering: the aggregated
// scenario summaries plus the ambient context they are reported
// under.
type Report struct {
	// GeneratedAt is the generation timestamp, printed with
	// seconds precision.
	GeneratedAt time.Time

	// Host is an opaque platform descriptor string.
	Host string

	// Scenarios holds one summary per distinct scenario, in any
	// order. Renderers emit them in lexicographic order of the
	// scenario key.
	Scenarios []benchsum.Summary
}

// sorted returns the report's summaries in lexicographic order of
// scenario key, without mutating the Report.
func (r *Report) sorted() []benchsum.Summary {
	rows := append([]benchsum.Summary(nil), r.Scenarios...)
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Scenario < rows[j].Scenario
	})
	return rows
}

var notes = []string{
	"- **Throughput (ev/s)** is the simulator's printed `Throughput:` metric.",
	"- **Book Ops/s** is emitted ops (adds+cancels+trades). For multi-thread runs, this comes from the simulator's `Book ops/sec` line (max-thread time basis).",
	"- **Action ratio** = (adds+cancels+trades) / total steps.",
}

// FormatMarkdown appends the Markdown rendering of r to buf: title,
// generation and host lines, the summary table with one row per
// scenario, and the fixed notes block.
func FormatMarkdown(buf *bytes.Buffer, r *Report) {
	fmt.Fprintf(buf, "# %s\n\n", Title)
	fmt.Fprintf(buf, "Generated: %s\n", r.GeneratedAt.Format("2006-01-02T15:04:05"))
	fmt.Fprintf(buf, "Host: %s\n\n", r.Host)

	buf.WriteString("## Summary\n\n")
	buf.WriteString("| Scenario | Mode | Threads | Symbols | Events | Best Throughput (ev/s) | Avg Throughput (ev/s) | Best Book Ops/s | Avg Book Ops/s | Action Ratio (avg) |\n")
	buf.WriteString("|---|---:|---:|---:|---:|---:|---:|---:|---:|---:|\n")
	for _, s := range r.sorted() {
		fmt.Fprintf(buf, "| %s | %s | %d | %d | %s | %s | %s | %s | %s | %s |\n",
			s.Scenario, s.Mode, s.Threads, s.Symbols,
			Int(s.Events),
			Int(s.BestThroughput), Int(s.AvgThroughput),
			Int(s.BestBookOps), Int(s.AvgBookOps),
			Float(s.AvgActionRatio, ratioPrec))
	}

	buf.WriteString("\n## Notes\n\n")
	for _, n := range notes {
		buf.WriteString(n)
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
}
