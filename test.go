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

// TestFunc is the body of a registered test. It receives the per-test
// Info (to report Fail/Skip/diagnostics) and the user-context slot set up
// by an optional Setup.
type TestFunc func(s *Info, ctx *Context)

// SetupFunc prepares the user-context slot before the body runs.
type SetupFunc func(ctx *Context)

// TeardownFunc disposes of whatever Setup placed in the user-context slot.
// It does not run if Setup (or the body, on Crashed) never completed —
// see spec.md §4.3 edge cases.
type TeardownFunc func(ctx *Context)

// Test is one registered test: a stable (suite, name) pair, a body, and
// optional setup/teardown. This mirrors souffle.h's `Test` struct and the
// teacher's register.Test.
type Test struct {
	Suite    string
	Name     string
	Body     TestFunc
	Setup    SetupFunc
	Teardown TeardownFunc
}

// Option configures optional fields of a Test at registration time.
type Option func(*Test)

// WithSetup attaches a setup callable.
func WithSetup(f SetupFunc) Option {
	return func(t *Test) { t.Setup = f }
}

// WithTeardown attaches a teardown callable.
func WithTeardown(f TeardownFunc) Option {
	return func(t *Test) { t.Teardown = f }
}
