//go:build windows

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
	"context"
	"time"
)

// windowsRunner isolates each test in a worker goroutine rather than a
// worker thread: Go does not expose OS threads as a schedulable unit the
// way the C source's CreateThread/TRY-EXCEPT pair does, so a goroutine
// guarded by recover() (see runBody in isolate.go) is the idiomatic
// substitute for the C source's SEH-based crash trap. A goroutine that is
// abandoned after a timeout leaks exactly the way the C source's
// abandoned worker thread does — spec.md §5 documents this as an accepted
// resource cost rather than something to special-case away.
type windowsRunner struct{}

func newRunner() runner { return windowsRunner{} }

func (windowsRunner) Run(t *Test, timeout time.Duration) Result {
	start := time.Now()

	type outcomeMsg struct {
		outcome Outcome
		diag    []byte
	}
	done := make(chan outcomeMsg, 1)

	info := &Info{}
	ctx := &Context{}

	go func() {
		outcome, diag := runBody(t, info, ctx)
		done <- outcomeMsg{outcome, diag}
	}()

	waitCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	select {
	case <-waitCtx.Done():
		return Result{Outcome: Timeout, Elapsed: time.Since(start)}
	case msg := <-done:
		return Result{Outcome: msg.outcome, Elapsed: time.Since(start), Diagnostic: msg.diag}
	}
}

// isWorkerProcess is always false on Windows: there is no re-exec'd child
// to detect, isolation happens in-process via a goroutine.
func isWorkerProcess() bool { return false }

// runWorkerAndExit is unreachable on Windows (isWorkerProcess never
// returns true) but kept so RunAll's dispatch code is identical across
// both build-tagged files.
func runWorkerAndExit() {}
