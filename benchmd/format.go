// Copyright 2026 The PMR Market Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmd

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pmr-sim/benchreport/benchcsv"
)

// Placeholder is rendered in place of an absent or unparseable value.
const Placeholder = "-"

var printer = message.NewPrinter(language.English)

// Int formats n with thousands grouping separators, e.g. "1,234,567".
func Int(n int) string {
	return printer.Sprintf("%d", n)
}

// Float formats f with prec digits after the decimal point. The
// invalid sentinel renders as Placeholder.
func Float(f benchcsv.Float, prec int) string {
	if !f.OK {
		return Placeholder
	}
	return strconv.FormatFloat(f.Value, 'f', prec, 64)
}
