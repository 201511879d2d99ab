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

package souffle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// scriptedRunner replays canned Results keyed by test name, instead of
// actually isolating anything — the Supervisor's loop logic is what's
// under test here, not the isolation backend.
type scriptedRunner struct {
	byName map[string]Result
}

func (r scriptedRunner) Run(t *Test, timeout time.Duration) Result {
	return r.byName[t.Name]
}

type recordingReporter struct {
	started  []string
	reported []string
	finished []string
	totals   Totals
}

func (r *recordingReporter) StartSuite(suite string, n int) { r.started = append(r.started, suite) }
func (r *recordingReporter) ReportTest(suite, name string, res Result) {
	r.reported = append(r.reported, suite+"/"+name)
}
func (r *recordingReporter) FinishSuite(suite string) { r.finished = append(r.finished, suite) }
func (r *recordingReporter) Finish(t Totals) error    { r.totals = t; return nil }

func TestSupervisorRunTalliesAndReports(t *testing.T) {
	saved := defaultRegistry
	defer func() { defaultRegistry = saved }()
	defaultRegistry = freshRegistry()

	Register("s1", "pass", func(*Info, *Context) {})
	Register("s1", "fail", func(*Info, *Context) {})
	Register("s2", "skip", func(*Info, *Context) {})

	rep := &recordingReporter{}
	sup := NewSupervisor(rep, time.Second)
	sup.runner = scriptedRunner{byName: map[string]Result{
		"pass": {Outcome: Success},
		"fail": {Outcome: Fail},
		"skip": {Outcome: Skip},
	}}

	totals := sup.Run()

	assert.Equal(t, 1, totals.Counts[Success])
	assert.Equal(t, 1, totals.Counts[Fail])
	assert.Equal(t, 1, totals.Counts[Skip])
	assert.True(t, totals.Failed())

	assert.Equal(t, []string{"s1", "s2"}, rep.started)
	assert.Equal(t, []string{"s1/pass", "s1/fail", "s2/skip"}, rep.reported)
	assert.Equal(t, []string{"s1", "s2"}, rep.finished)
}

func TestTotalsFailedOnlyOnFailLikeOutcomes(t *testing.T) {
	ok := Totals{Counts: map[Outcome]int{Success: 3, Skip: 2}}
	assert.False(t, ok.Failed())

	bad := Totals{Counts: map[Outcome]int{Timeout: 1}}
	assert.True(t, bad.Failed())
}
