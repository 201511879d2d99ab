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

import "time"

// Result is what the Isolation runner reports back to the Supervisor for
// one test (spec.md §4.3, "Reports (outcome, elapsed_ms, diagnostic) to
// the Supervisor").
type Result struct {
	Outcome    Outcome
	Elapsed    time.Duration
	Diagnostic []byte
}

// runner is implemented once per backend (isolate_unix.go's child-process
// backend, isolate_windows.go's goroutine backend). Run executes exactly
// one test under isolation with the given timeout and returns its
// classified Result; it never panics and never returns early without a
// Result, regardless of what the test itself does.
type runner interface {
	Run(t *Test, timeout time.Duration) Result
}

// runBody executes setup→body→teardown in the caller's own goroutine (no
// isolation of its own — the caller is expected to already be an isolated
// unit, i.e. the re-exec'd child on POSIX or the guarded goroutine on
// Windows). It implements the "Crashed-in-situ" vs "NormalReturn" split of
// spec.md §4.3's state machine via recover(): a panic during setup/body/
// teardown is the closest Go analogue of a C-level crash caught by the
// isolation unit, so it is classified Crashed. A genuine segfault
// (nil-pointer deref in unsafe code, stack overflow, etc.) instead kills
// the process/goroutine outright before this function gets a chance to
// recover, and is detected by the caller from the isolation unit's own
// termination (exit-by-signal on POSIX).
//
// Setup crashing skips teardown, matching spec.md's "teardown does not
// run" edge case; body or teardown crashing still reports Crashed.
func runBody(t *Test, info *Info, ctx *Context) (outcome Outcome, diagnostic []byte) {
	defer func() {
		if r := recover(); r != nil {
			info.setOutcome(Crashed)
			info.Logf("\n\t  >> panic: %v", r)
		}
		outcome = info.Outcome()
		diagnostic = info.Diagnostic()
	}()

	if t.Setup != nil {
		t.Setup(ctx)
	}
	t.Body(info, ctx)
	if t.Teardown != nil {
		t.Teardown(ctx)
	}
	return
}
