// Copyright 2026 The PMR Market Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchreport summarizes the CSV written by the simulator's bench
// harness into a Markdown report.
//
// Usage:
//
//	benchreport [-html | -csv] results.csv
//
// The input file is the results.csv produced by scripts/bench.sh: one
// row per benchmark repetition, tagged with a scenario identifier and
// the run parameters. Benchreport groups the rows by scenario and
// prints one summary row per scenario with the best and average
// throughput, the best and average book operation rate, and the
// average action ratio, ordered by scenario name.
//
// By default the report is a Markdown document with a generation
// timestamp, a host descriptor, the summary table, and a notes block
// describing each metric column. The -html option renders the same
// report as an HTML document; the -csv option prints only the summary
// table in CSV form for consumption by other tools.
//
// Benchreport exits with status 0 on success, including the case of
// an input file that contains no data rows, in which case it prints
// "No rows found." and no report. A missing input file or a usage
// error exits with status 2. A malformed required column in the input
// is treated as a fatal input-contract violation and terminates with
// a diagnostic and status 1.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/pmr-sim/benchreport/benchcsv"
	"github.com/pmr-sim/benchreport/benchmd"
	"github.com/pmr-sim/benchreport/benchsum"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: benchreport [options] results.csv\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(2)
}

var (
	flagHTML = flag.Bool("html", false, "print the report as an HTML document")
	flagCSV  = flag.Bool("csv", false, "print the summary table in CSV form")
)

func main() {
	log.SetPrefix("benchreport: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}

	format := "markdown"
	switch {
	case *flagHTML:
		format = "html"
	case *flagCSV:
		format = "csv"
	}

	code, err := run(os.Stdout, os.Stderr, flag.Arg(0), format, time.Now(), hostString())
	if err != nil {
		log.Fatal(err)
	}
	exit(code)
}

// run drives load, aggregate, render and returns the process exit
// code. The generation time and host descriptor are parameters so
// that output is deterministic under test. Schema and parse failures
// are returned for main to report; they are not recoverable.
func run(w, werr io.Writer, path, format string, now time.Time, host string) (int, error) {
	records, err := benchcsv.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(werr, "File not found: %s\n", path)
		return 2, nil
	}
	if err != nil {
		return 1, err
	}
	if len(records) == 0 {
		fmt.Fprintln(w, "No rows found.")
		return 0, nil
	}

	report := &benchmd.Report{
		GeneratedAt: now,
		Host:        host,
		Scenarios:   benchsum.Summarize(records),
	}

	var buf bytes.Buffer
	switch format {
	case "html":
		buf.WriteString(htmlHeader)
		benchmd.FormatHTML(&buf, report)
		buf.WriteString(htmlFooter)
	case "csv":
		if err := benchmd.FormatCSV(&buf, report); err != nil {
			return 1, err
		}
	default:
		benchmd.FormatMarkdown(&buf, report)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return 1, err
	}
	return 0, nil
}

// hostString builds the opaque platform descriptor printed in the
// report header.
func hostString() string {
	return fmt.Sprintf("%s/%s %s", runtime.GOOS, runtime.GOARCH, runtime.Version())
}

var htmlHeader = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>PMR Market Simulator Bench Report</title>
<style>
.benchreport { border-collapse: collapse; }
.benchreport th:nth-child(1) { text-align: left; }
.benchreport td:nth-child(1n+3) { text-align: right; padding: 0em 1em; }
.benchreport th { border-top: 1px solid #666; border-bottom: 1px solid #ccc; }
</style>
</head>
<body>
`
var htmlFooter = `</body>
</html>
`
