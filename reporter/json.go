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

package reporter

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Quince-Pie/souffle"
)

// JSON is a machine-readable Reporter, the structural equivalent of the
// teacher's reporters.jsonReporter but keyed on souffle's five-way
// Outcome instead of testresult.TestResult's pass/fail/skip. Not excluded
// by spec.md's Non-goals (those name JUnit/XML specifically), so it is
// offered as an additional reporter rather than a replacement for Text.
type JSON struct {
	Filename string `json:"-"`

	mu      sync.Mutex
	RunID   string         `json:"run_id"`
	Suites  []jsonSuite    `json:"suites"`
	Counts  map[string]int `json:"counts"`
	bySuite map[string]*jsonSuite
}

type jsonSuite struct {
	Name  string     `json:"name"`
	Tests []jsonTest `json:"tests"`
}

type jsonTest struct {
	Name       string        `json:"name"`
	Outcome    string        `json:"outcome"`
	Duration   time.Duration `json:"duration_ns"`
	Diagnostic string        `json:"diagnostic,omitempty"`
}

// NewJSON builds a JSON reporter that writes its report to filename at
// Finish time, mirroring NewJSONReporter in the teacher.
func NewJSON(filename string) *JSON {
	return &JSON{
		Filename: filename,
		Counts:   make(map[string]int, 5),
		bySuite:  make(map[string]*jsonSuite),
	}
}

func (j *JSON) StartSuite(suite string, testCount int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	s := &jsonSuite{Name: suite, Tests: make([]jsonTest, 0, testCount)}
	j.bySuite[suite] = s
	j.Suites = append(j.Suites, *s)
}

func (j *JSON) ReportTest(suite, name string, res souffle.Result) {
	j.mu.Lock()
	defer j.mu.Unlock()

	s, ok := j.bySuite[suite]
	if !ok {
		s = &jsonSuite{Name: suite}
		j.bySuite[suite] = s
	}
	s.Tests = append(s.Tests, jsonTest{
		Name:       name,
		Outcome:    res.Outcome.String(),
		Duration:   res.Elapsed,
		Diagnostic: string(res.Diagnostic),
	})
	j.Counts[res.Outcome.String()]++

	for i := range j.Suites {
		if j.Suites[i].Name == suite {
			j.Suites[i] = *s
			return
		}
	}
	j.Suites = append(j.Suites, *s)
}

func (j *JSON) FinishSuite(suite string) {}

// Finish writes the accumulated report to Filename, creating parent
// directories as needed, and also sets RunID from totals.
func (j *JSON) Finish(totals souffle.Totals) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.RunID = totals.RunID

	if err := os.MkdirAll(filepath.Dir(j.Filename), 0o777); err != nil && !os.IsExist(err) {
		return err
	}
	f, err := os.Create(j.Filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return encode(f, j)
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
