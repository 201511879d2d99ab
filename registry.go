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
	"sync"
)

// registry is the process-wide mapping from suite name to its ordered
// TestsVec (spec.md §4.1). It is populated entirely by init() functions
// that run before any harness entry point (Go's equivalent of the C
// source's pre-main constructors), then frozen: RunAll never mutates it.
type registry struct {
	mu         sync.Mutex
	bySuite    map[string][]*Test
	suiteOrder []string // first-registration order; Go map iteration is randomized
	total      int
	maxName    int
}

var defaultRegistry = &registry{
	bySuite: make(map[string][]*Test),
}

// Register adds a test to the global registry. It is meant to be called
// from a package-level func init(), exactly like the teacher's
// register.Register calls in kola/tests/**/*.go.
//
// Duplicate (suite, name) pairs are not rejected — both run in
// registration order, matching spec.md's documented "allowed; both run"
// resolution of that open question.
func Register(suite, name string, body TestFunc, opts ...Option) {
	if suite == "" || name == "" {
		panic("souffle: suite and test name must be non-empty")
	}
	t := &Test{Suite: suite, Name: name, Body: body}
	for _, opt := range opts {
		opt(t)
	}
	defaultRegistry.add(t)
}

func (r *registry) add(t *Test) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bySuite[t.Suite]; !ok {
		r.suiteOrder = append(r.suiteOrder, t.Suite)
	}
	r.bySuite[t.Suite] = append(r.bySuite[t.Suite], t)
	r.total++

	if n := len(t.Name); n > r.maxName {
		r.maxName = n
	}
	if n := len(t.Suite); n > r.maxName {
		r.maxName = n
	}
}

// suites returns suite names in first-registration order, and the tests
// within each suite in insertion order — the ordering guarantee spec.md
// §4.1 and §4.4 require.
func (r *registry) suites() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.suiteOrder))
	copy(out, r.suiteOrder)
	return out
}

func (r *registry) tests(suite string) []*Test {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bySuite[suite]
}

func (r *registry) counts() (total, maxName, suiteCount int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total, r.maxName, len(r.suiteOrder)
}

// Suites returns the registered suite names in first-registration order.
func Suites() []string {
	return defaultRegistry.suites()
}

// TestNames returns the names of tests registered under suite, in
// registration order (duplicates included, once per registration).
func TestNames(suite string) []string {
	tests := defaultRegistry.tests(suite)
	out := make([]string, len(tests))
	for i, t := range tests {
		out[i] = t.Name
	}
	return out
}

// lookup finds a test by (suite, name, index) where index selects among
// duplicate (suite, name) pairs (see Register's doc). Used by worker mode
// to resolve exactly one test out of the registry inside the isolated
// child (spec.md §9's re-exec isolation design).
func (r *registry) lookup(suite, name string, index int) (*Test, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := 0
	for _, t := range r.bySuite[suite] {
		if t.Name == name {
			if matched == index {
				return t, nil
			}
			matched++
		}
	}
	return nil, fmt.Errorf("souffle: no test %s/%s at index %d", suite, name, index)
}
