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
	"fmt"
	"strings"
	"sync"
)

// Outcome is the closed set of outcomes a test can be classified with.
// The numeric value is also the isolated child's process exit code on the
// POSIX backend (see isolate_unix.go), so the ordering here is part of the
// wire contract and must not be reordered.
type Outcome int

const (
	Success Outcome = iota
	Fail
	Skip
	Timeout
	Crashed
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "PASSED"
	case Fail:
		return "FAILED"
	case Skip:
		return "SKIPPED"
	case Timeout:
		return "TIMEOUT"
	case Crashed:
		return "CRASHED"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Info is the per-test mutable record a running test body, setup, and
// teardown share. It plays the role of souffle.c's StatusInfo: an outcome
// tag plus an append-only diagnostic buffer.
//
// The zero value is ready to use: Outcome defaults to Success and the
// diagnostic buffer is empty, matching invariant R2 in spec.md.
type Info struct {
	mu   sync.Mutex
	out  Outcome
	diag strings.Builder
}

// Outcome reports the test's current classification.
func (s *Info) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out
}

// setOutcome is used by assertion helpers and the isolation runner; it is
// not exported because only the body's own goroutine/process may set it
// (spec.md's "first Fail is final" contract depends on that).
func (s *Info) setOutcome(o Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = o
}

// Fail marks the test Fail without formatting a diagnostic. Prefer Failf
// for anything with a message.
func (s *Info) Fail() {
	s.setOutcome(Fail)
}

// Failf marks the test Fail and appends a formatted diagnostic line,
// mirroring souffle.c's LOG_FAIL/err_print.
func (s *Info) Failf(format string, args ...interface{}) {
	s.setOutcome(Fail)
	s.Logf(format, args...)
}

// Skip marks the test Skipped. Callers are expected to return immediately
// afterwards (SKIP_TEST's contract); the harness does not enforce this
// itself, it only records the tag.
func (s *Info) Skip() {
	s.setOutcome(Skip)
}

// Diagnostic returns the accumulated, already-formatted diagnostic text.
func (s *Info) Diagnostic() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return []byte(s.diag.String())
}

// Log appends freeform text to the diagnostic buffer without affecting
// Outcome, analogous to souffle_log_msg_raw.
func (s *Info) Log(args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprint(&s.diag, args...)
}

// Logf is the formatted counterpart of Log.
func (s *Info) Logf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(&s.diag, format, args...)
}

// reset returns the Info to its zero value so a single allocation can be
// reused across a worker-mode invocation's setup/body/teardown sequence.
func (s *Info) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = Success
	s.diag.Reset()
}
