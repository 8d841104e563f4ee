// Copyright 2026 The PMR Market Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmd

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvHeader names the summary columns in input-file vocabulary so the
// output round-trips into other tooling.
var csvHeader = []string{
	"scenario", "mode", "threads", "symbols", "events",
	"best_throughput_ev_s", "avg_throughput_ev_s",
	"best_book_ops_per_s", "avg_book_ops_per_s",
	"avg_action_ratio",
}

// FormatCSV writes the summary table of r to w in CSV form. Values
// are unscaled and ungrouped; the invalid ratio sentinel becomes an
// empty cell. The generation timestamp and host line are omitted:
// CSV output is for machines, not for reading.
func FormatCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range r.sorted() {
		ratio := ""
		if s.AvgActionRatio.OK {
			ratio = strconv.FormatFloat(s.AvgActionRatio.Value, 'f', -1, 64)
		}
		row := []string{
			s.Scenario,
			s.Mode,
			strconv.Itoa(s.Threads),
			strconv.Itoa(s.Symbols),
			strconv.Itoa(s.Events),
			strconv.Itoa(s.BestThroughput),
			strconv.Itoa(s.AvgThroughput),
			strconv.Itoa(s.BestBookOps),
			strconv.Itoa(s.AvgBookOps),
			ratio,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
