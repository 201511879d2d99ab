// Copyright 2025 The Souffle Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package reporter holds souffle.Reporter implementations: a human-
// readable console reporter and a machine-readable JSON reporter.
package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"

	"github.com/Quince-Pie/souffle"
)

// defaultWidth is used when the output isn't a terminal (piped to a file,
// CI log capture) and term.GetSize can't return a usable value.
const defaultWidth = 80

// Text prints one line per test as it completes, coloured by Outcome
// (disabled by SOUFFLE_NOCOLOR, which this Reporter reads itself each
// time it colours a line), followed by an aligned summary table once the
// run finishes.
type Text struct {
	Out io.Writer

	mu       sync.Mutex
	width    int
	failures []failure
}

type failure struct {
	suite, name string
	outcome     souffle.Outcome
	diag        string
}

// NewText builds a console Reporter writing to w. If w is os.Stdout and
// connected to a terminal, the summary table is sized to fit it;
// otherwise it falls back to defaultWidth, matching spec.md §4.4's
// "falls back to a default width when not a TTY" note.
func NewText(w io.Writer) *Text {
	width := defaultWidth
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			width = cols
		}
	}
	return &Text{Out: w, width: width}
}

func (t *Text) colorize(o souffle.Outcome) string {
	if noColor() {
		return o.String()
	}
	switch o {
	case souffle.Success:
		return color.GreenString(o.String())
	case souffle.Skip:
		return color.YellowString(o.String())
	default:
		return color.RedString(o.String())
	}
}

func (t *Text) StartSuite(suite string, testCount int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.Out, "\n== %s (%d tests) ==\n", suite, testCount)
}

func (t *Text) ReportTest(suite, name string, res souffle.Result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.Out, "  [%s] %s/%s (%s)\n", t.colorize(res.Outcome), suite, name, res.Elapsed.Round(time.Millisecond))
	switch res.Outcome {
	case souffle.Fail, souffle.Crashed, souffle.Timeout:
		t.failures = append(t.failures, failure{suite, name, res.Outcome, string(res.Diagnostic)})
	}
}

func (t *Text) FinishSuite(suite string) {}

// Finish prints the per-outcome tally table and, for each test that
// Failed, Crashed or Timed out, its diagnostic text. Skipped tests get no
// diagnostic section.
func (t *Text) Finish(totals souffle.Totals) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	tw := table.NewWriter()
	tw.SetOutputMirror(t.Out)
	tw.SetStyle(table.StyleRounded)
	tw.SetAllowedRowLength(t.width)
	tw.AppendHeader(table.Row{
		text.Colors{text.FgHiBlue, text.Bold}.Sprint("OUTCOME"),
		text.Colors{text.FgHiBlue, text.Bold}.Sprint("COUNT"),
	})
	for _, o := range []souffle.Outcome{souffle.Success, souffle.Fail, souffle.Skip, souffle.Timeout, souffle.Crashed} {
		tw.AppendRow(table.Row{o.String(), totals.Counts[o]})
	}
	tw.Render()

	for _, f := range t.failures {
		fmt.Fprintf(t.Out, "\n--- %s %s/%s ---\n%s\n", f.outcome, f.suite, f.name, strings.TrimRight(f.diag, "\n"))
	}

	verdict := "PASS"
	if totals.Failed() {
		verdict = "FAIL"
	}
	fmt.Fprintf(t.Out, "\nrun %s: %s (elapsed %s)\n", totals.RunID, verdict, totals.Elapsed.Round(time.Millisecond))
	return nil
}

func noColor() bool {
	v, ok := os.LookupEnv("SOUFFLE_NOCOLOR")
	return ok && v != ""
}
