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

// Package souffle is a self-contained C-style unit-test harness ported to
// Go: tests register themselves from func init(), the Supervisor runs
// each one under process (POSIX) or goroutine (Windows) isolation with a
// timeout, and a pluggable Reporter prints or serializes the results.
package souffle

import "github.com/google/uuid"

// RunAll is the single entry point a generated main() calls, mirroring
// the teacher's two-entrypoint split between "the kola binary drives the
// suite" and "the kolet binary runs one named test" — except here both
// roles live behind the same exported function, dispatched by the
// presence of the worker environment variables set by the isolation
// runner itself.
//
// When called in the isolated child spawned by the POSIX backend, RunAll
// never returns: it runs exactly the one test named by the environment
// and calls os.Exit with that test's numeric Outcome. Otherwise it runs
// the full Supervisor loop and returns the process exit code spec.md
// §4.4 specifies: 1 if any test Failed, Crashed, or Timed out, 0
// otherwise.
func RunAll(rep Reporter) int {
	if isWorkerProcess() {
		runWorkerAndExit()
		panic("souffle: runWorkerAndExit returned")
	}

	sup := NewSupervisor(rep, timeoutFromEnv())
	totals := sup.Run()
	totals.RunID = uuid.NewString()

	if rep != nil {
		if err := rep.Finish(totals); err != nil {
			fatalf(err)
		}
	}

	if totals.Failed() {
		return 1
	}
	return 0
}
