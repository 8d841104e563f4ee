// Copyright 2026 The PMR Market Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv provides a reader for the CSV result files written
// by the simulator's bench harness.
//
// Each row of an input file is one observation of one benchmark run.
// Fields are matched to columns by header name, not by position, so
// the column order in the source file is irrelevant and unknown extra
// columns are ignored. The reader is structured as a streaming
// operation modeled on bufio.Scanner.
//
// Required numeric fields that fail to parse are a hard error
// (ParseError); optional numeric fields degrade to an invalid Float
// that propagates through aggregation and renders as a placeholder.
package benchcsv

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// A Record is a single benchmark observation row.
//
// Within a scenario, Mode, Threads, Symbols and Events are assumed
// homogeneous across repetitions; consumers read them from the
// lowest-Rep record of a group and do not verify consistency.
type Record struct {
	// Scenario is the grouping key identifying a benchmark
	// configuration.
	Scenario string

	// Mode is a descriptive execution mode label.
	Mode string

	Threads int
	Symbols int
	Events  int

	// Sigma is the price-walk volatility parameter of the run.
	Sigma Float

	// ArenaBytes is the size of the run's arena allocation.
	ArenaBytes int

	// Rep is the repetition index within a scenario. It orders
	// records inside a group and is not aggregated.
	Rep int

	// Throughput is the simulator's reported events per second.
	Throughput int

	// StepsPerSec is the simulation step rate.
	StepsPerSec int

	// BookOpsPerSec is the emitted book operation rate
	// (adds+cancels+trades per second).
	BookOpsPerSec int

	// ActionRatio is the fraction of steps that produced a
	// book-mutating action, nominally in [0,1].
	ActionRatio Float

	// ElapsedMS and WallMS are optional timing columns. They are
	// invalid when the column is absent from the file.
	ElapsedMS Float
	WallMS    Float

	// WithGRPC is an optional descriptive flag column, "" when
	// absent.
	WithGRPC string
}

// A Float is a float64 that may be absent or unparseable.
//
// The zero Float is invalid. Invalid values propagate through any
// aggregation that touches them and render as a placeholder, never as
// an error. This stands in for a NaN sentinel without relying on
// floating-point comparison semantics.
type Float struct {
	Value float64
	OK    bool
}

// ValidFloat returns a valid Float holding v.
func ValidFloat(v float64) Float {
	return Float{Value: v, OK: true}
}

// parseFloat interprets s as a Float. Any parse failure, including an
// empty field, yields the invalid Float rather than an error. A
// literal NaN also maps to the invalid Float so that the sentinel
// stays tagged instead of leaking into arithmetic.
func parseFloat(s string) Float {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return Float{}
	}
	return Float{Value: v, OK: true}
}

var errIntRange = errors.New("value out of integer range")

// parseInt interprets s as an integer by way of a float parse, so
// inputs like "1e3" and "42.0" are accepted and truncated toward
// zero. Non-numeric input is an error, as are NaN and values outside
// the int range, whose conversion behavior is platform-defined.
func parseInt(s string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || v >= float64(math.MaxInt) || v < float64(math.MinInt) {
		return 0, errIntRange
	}
	return int(v), nil
}
