// Copyright 2026 The PMR Market Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Required result columns. A file whose header lacks one of these
// fails with a SchemaError as soon as a data row references it.
var requiredColumns = []string{
	"scenario", "mode", "threads", "symbols", "events", "sigma",
	"arena_bytes", "rep", "throughput_ev_s", "steps_per_s",
	"book_ops_per_s", "action_ratio",
}

// A SchemaError reports a required column that is absent from the
// header of a result file.
type SchemaError struct {
	FileName string
	Column   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.FileName, e.Column)
}

// A ParseError reports a malformed required field on a particular row
// of a result file.
type ParseError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// A Reader reads benchmark result rows from a CSV file.
//
// Its API is modeled on bufio.Scanner. The Reader retains ownership
// of the Record returned by Result; a caller that needs to keep it
// across calls to Scan must copy it.
type Reader struct {
	c        *csv.Reader
	fileName string
	line     int

	header map[string]int
	result Record
	err    error
}

// NewReader constructs a reader that parses benchmark result rows
// from r. fileName is used in error messages; it is purely
// diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	c := csv.NewReader(r)
	// Rows may legitimately be shorter than the header when
	// trailing fields were never written; the missing fields are
	// treated as absent values.
	c.FieldsPerRecord = -1
	c.ReuseRecord = true
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{c: c, fileName: fileName}
}

// Scan advances the reader to the next record and reports whether one
// was read. If Scan reaches EOF or an error occurs, it returns false,
// in which case the caller should use the Err method to check for
// errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if r.header == nil && !r.readHeader() {
		return false
	}
	row, err := r.c.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		r.err = err
		return false
	}
	r.line, _ = r.c.FieldPos(0)
	if err := r.parseRow(row); err != nil {
		r.err = err
		return false
	}
	return true
}

// Result returns the record read by the last call to Scan.
func (r *Reader) Result() *Record {
	return &r.result
}

// Err returns the first error encountered by the Reader, other than
// EOF. Typed errors are *SchemaError, *ParseError, and
// *csv.ParseError for malformed CSV syntax.
func (r *Reader) Err() error {
	return r.err
}

// readHeader consumes the header row and builds the column index.
// An empty input has no header and simply produces no records.
func (r *Reader) readHeader() bool {
	hdr, err := r.c.Read()
	if err == io.EOF {
		r.header = map[string]int{}
		return false
	}
	if err != nil {
		r.err = err
		return false
	}
	r.header = make(map[string]int, len(hdr))
	for i, name := range hdr {
		// A duplicated column name resolves to its last
		// occurrence.
		r.header[name] = i
	}
	return true
}

func (r *Reader) parseRow(row []string) error {
	rec := &r.result
	var err error
	if rec.Scenario, err = r.stringField(row, "scenario"); err != nil {
		return err
	}
	if rec.Mode, err = r.stringField(row, "mode"); err != nil {
		return err
	}
	if rec.Threads, err = r.intField(row, "threads"); err != nil {
		return err
	}
	if rec.Symbols, err = r.intField(row, "symbols"); err != nil {
		return err
	}
	if rec.Events, err = r.intField(row, "events"); err != nil {
		return err
	}
	if rec.Sigma, err = r.floatField(row, "sigma"); err != nil {
		return err
	}
	if rec.ArenaBytes, err = r.intField(row, "arena_bytes"); err != nil {
		return err
	}
	if rec.Rep, err = r.intField(row, "rep"); err != nil {
		return err
	}
	if rec.Throughput, err = r.intField(row, "throughput_ev_s"); err != nil {
		return err
	}
	if rec.StepsPerSec, err = r.intField(row, "steps_per_s"); err != nil {
		return err
	}
	if rec.BookOpsPerSec, err = r.intField(row, "book_ops_per_s"); err != nil {
		return err
	}
	if rec.ActionRatio, err = r.floatField(row, "action_ratio"); err != nil {
		return err
	}
	rec.ElapsedMS = r.optFloatField(row, "elapsed_ms")
	rec.WallMS = r.optFloatField(row, "wall_ms")
	rec.WithGRPC = r.optStringField(row, "with_grpc")
	return nil
}

// field returns the raw value of a required column on row. A row
// shorter than the header yields "" for the missing trailing fields.
func (r *Reader) field(row []string, name string) (string, error) {
	i, ok := r.header[name]
	if !ok {
		return "", &SchemaError{r.fileName, name}
	}
	if i >= len(row) {
		return "", nil
	}
	return row[i], nil
}

func (r *Reader) stringField(row []string, name string) (string, error) {
	return r.field(row, name)
}

func (r *Reader) intField(row []string, name string) (int, error) {
	s, err := r.field(row, name)
	if err != nil {
		return 0, err
	}
	v, err := parseInt(s)
	if err != nil {
		return 0, &ParseError{r.fileName, r.line, fmt.Sprintf("column %q: malformed number %q", name, s)}
	}
	return v, nil
}

// floatField coerces a required floating-point column. The column
// itself must exist, but a value that fails to parse degrades to the
// invalid Float rather than an error.
func (r *Reader) floatField(row []string, name string) (Float, error) {
	s, err := r.field(row, name)
	if err != nil {
		return Float{}, err
	}
	return parseFloat(s), nil
}

func (r *Reader) optFloatField(row []string, name string) Float {
	i, ok := r.header[name]
	if !ok || i >= len(row) {
		return Float{}
	}
	return parseFloat(row[i])
}

func (r *Reader) optStringField(row []string, name string) string {
	i, ok := r.header[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// ReadFile reads all benchmark records from the named file, in file
// order. The file is closed before ReadFile returns on all paths,
// including parse failures mid-read. A nonexistent path is reported
// with an error satisfying errors.Is(err, fs.ErrNotExist).
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := NewReader(f, path)
	var records []Record
	for r.Scan() {
		records = append(records, *r.Result())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
