// Copyright 2026 The PMR Market Simulator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmd

import (
	"bytes"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("report").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`<h1>{{.Title}}</h1>
<p>Generated: {{.Generated}}<br/>
Host: {{.Host}}</p>
<h2>Summary</h2>
<table class="benchreport">
<tr><th>Scenario</th><th>Mode</th><th>Threads</th><th>Symbols</th><th>Events</th><th>Best Throughput (ev/s)</th><th>Avg Throughput (ev/s)</th><th>Best Book Ops/s</th><th>Avg Book Ops/s</th><th>Action Ratio (avg)</th></tr>
{{range .Rows -}}
<tr><td>{{.Scenario}}</td><td>{{.Mode}}</td><td>{{.Threads}}</td><td>{{.Symbols}}</td><td>{{.Events}}</td><td>{{.BestThroughput}}</td><td>{{.AvgThroughput}}</td><td>{{.BestBookOps}}</td><td>{{.AvgBookOps}}</td><td>{{.ActionRatio}}</td></tr>
{{end -}}
</table>
<h2>Notes</h2>
<ul>
<li><b>Throughput (ev/s)</b> is the simulator's printed <code>Throughput:</code> metric.</li>
<li><b>Book Ops/s</b> is emitted ops (adds+cancels+trades). For multi-thread runs, this comes from the simulator's <code>Book ops/sec</code> line (max-thread time basis).</li>
<li><b>Action ratio</b> = (adds+cancels+trades) / total steps.</li>
</ul>
`)))

type htmlReport struct {
	Title     string
	Generated string
	Host      string
	Rows      []htmlRow
}

type htmlRow struct {
	Scenario, Mode                string
	Threads, Symbols              int
	Events                        string
	BestThroughput, AvgThroughput string
	BestBookOps, AvgBookOps       string
	ActionRatio                   string
}

// FormatHTML appends an HTML rendering of r to buf. The caller is
// responsible for any surrounding document framing.
func FormatHTML(buf *bytes.Buffer, r *Report) {
	data := htmlReport{
		Title:     Title,
		Generated: r.GeneratedAt.Format("2006-01-02T15:04:05"),
		Host:      r.Host,
	}
	for _, s := range r.sorted() {
		data.Rows = append(data.Rows, htmlRow{
			Scenario:       s.Scenario,
			Mode:           s.Mode,
			Threads:        s.Threads,
			Symbols:        s.Symbols,
			Events:         Int(s.Events),
			BestThroughput: Int(s.BestThroughput),
			AvgThroughput:  Int(s.AvgThroughput),
			BestBookOps:    Int(s.BestBookOps),
			AvgBookOps:     Int(s.AvgBookOps),
			ActionRatio:    Float(s.AvgActionRatio, ratioPrec),
		})
	}
	if err := htmlTemplate.Execute(buf, data); err != nil {
		// Only possible errors here are template not matching
		// the data structure. Don't make the caller check -
		// it's our fault.
		panic(err)
	}
}
