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

// Package assert is souffle's assertion surface, the Go-generic
// replacement for souffle.h's _Generic-based ASSERT_* macro family. Every
// function here takes the test's *souffle.Info first and returns early
// (not panics) after marking it Fail, matching the "return;" inside each
// C macro: callers are expected to follow the same early-return
// discipline their C counterparts enforced via the preprocessor, since Go
// has no macro to do it for them.
//
// The three typed array assertions spec.md names (Int, Uint, Float) are
// all instantiations of the same generic ArrayEqual/ArrayNotEqual pair;
// cmp.Ordered collapses what souffle.h had to special-case with
// ISFLOAT/ISUNSIGNED helpers at the macro level.
package assert

import (
	"cmp"
	"fmt"
	"reflect"
	"runtime"

	"github.com/Quince-Pie/souffle"
)

// failAt formats a diagnostic and appends the call site of the assertion
// that raised it, mirroring souffle.c's status_print appending
// "   [%s:%d]\n" from the __FILE__/__LINE__ its LOG_FAIL macro captured.
// Go has no macro to do that capture for us, so every assert function
// calls failAt directly (never through another wrapper) so its fixed
// skip count of 2 lands on the test code that called the assertion.
func failAt(s *souffle.Info, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if _, file, line, ok := runtime.Caller(2); ok {
		msg = fmt.Sprintf("%s\n\t  [%s:%d]", msg, file, line)
	}
	s.Failf("%s", msg)
}

// True marks the test Fail unless cond holds.
func True(s *souffle.Info, cond bool) {
	if !cond {
		failAt(s, "\n\t  >> Expected: \"true\"\n\t  >> Got: \"false\"")
	}
}

// False marks the test Fail unless cond is false.
func False(s *souffle.Info, cond bool) {
	if cond {
		failAt(s, "\n\t  >> Expected: \"false\"\n\t  >> Got: \"true\"")
	}
}

// Equal marks the test Fail unless a == b.
func Equal[T comparable](s *souffle.Info, a, b T) {
	if a != b {
		failAt(s, "\n\t  >> Expected: \"%v\"\n\t  >> Got: \"%v\"", a, b)
	}
}

// NotEqual marks the test Fail unless a != b.
func NotEqual[T comparable](s *souffle.Info, a, b T) {
	if a == b {
		failAt(s, "\n\t  >> Expected: not \"%v\"\n\t  >> Got: \"%v\"", a, b)
	}
}

// Less marks the test Fail unless a < b.
func Less[T cmp.Ordered](s *souffle.Info, a, b T) {
	if !(a < b) {
		failAt(s, "\n\t  >> Expected: \"%v\" < \"%v\"", a, b)
	}
}

// LessOrEqual marks the test Fail unless a <= b.
func LessOrEqual[T cmp.Ordered](s *souffle.Info, a, b T) {
	if !(a <= b) {
		failAt(s, "\n\t  >> Expected: \"%v\" <= \"%v\"", a, b)
	}
}

// Greater marks the test Fail unless a > b.
func Greater[T cmp.Ordered](s *souffle.Info, a, b T) {
	if !(a > b) {
		failAt(s, "\n\t  >> Expected: \"%v\" > \"%v\"", a, b)
	}
}

// GreaterOrEqual marks the test Fail unless a >= b.
func GreaterOrEqual[T cmp.Ordered](s *souffle.Info, a, b T) {
	if !(a >= b) {
		failAt(s, "\n\t  >> Expected: \"%v\" >= \"%v\"", a, b)
	}
}

// Null marks the test Fail unless p is a nil pointer.
func Null(s *souffle.Info, p interface{}) {
	if !isNil(p) {
		failAt(s, "\n\t  >> Expected: \"nil\"\n\t  >> Got: \"%v\"", p)
	}
}

// NotNull marks the test Fail if p is a nil pointer.
func NotNull(s *souffle.Info, p interface{}) {
	if isNil(p) {
		failAt(s, "\n\t  >> Expected: \"not nil\"\n\t  >> Got: \"nil\"")
	}
}

func isNil(p interface{}) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// PtrEqual marks the test Fail unless a and b point at the same address.
// It is spelled out separately from Equal, matching souffle.h's
// ASSERT_PTR_EQ, because the diagnostic format differs (addresses, not
// values).
func PtrEqual[T any](s *souffle.Info, a, b *T) {
	if a != b {
		failAt(s, "\n\t  >> Expected: \"%p\"\n\t  >> Got: \"%p\"", a, b)
	}
}

// PtrNotEqual marks the test Fail if a and b point at the same address.
func PtrNotEqual[T any](s *souffle.Info, a, b *T) {
	if a == b {
		failAt(s, "\n\t  >> Expected: \"%p\"\n\t  >> Got: \"%p\"", a, b)
	}
}

// StrEqual marks the test Fail unless a == b.
func StrEqual(s *souffle.Info, a, b string) {
	if a != b {
		failAt(s, "\n\t  >> Expected: \"%s\"\n\t  >> Got: \"%s\"", a, b)
	}
}

// StrNotEqual marks the test Fail unless a != b.
func StrNotEqual(s *souffle.Info, a, b string) {
	if a == b {
		failAt(s, "\n\t  >> Expected: \"%s\"\n\t  >> Got: \"%s\"", a, b)
	}
}

// ArrayEqual marks the test Fail unless a and b are the same length and
// elementwise equal. Int/Uint/Float callers spec.md names are simply
// ArrayEqual[int], ArrayEqual[uint], ArrayEqual[float64].
func ArrayEqual[T comparable](s *souffle.Info, a, b []T) {
	if !slicesEqual(a, b) {
		failAt(s, "\n\t  >> Expected: %v\n\t  >> Got: %v", a, b)
	}
}

// ArrayNotEqual marks the test Fail if a and b are the same length and
// elementwise equal.
func ArrayNotEqual[T comparable](s *souffle.Info, a, b []T) {
	if slicesEqual(a, b) {
		failAt(s, "\n\t  >> Expected: not %v\n\t  >> Got: %v", a, b)
	}
}

func slicesEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Fail marks the test Fail with a formatted message, matching
// ASSERT_FAIL / LOG_FAIL's "just fail, unconditionally" form.
func Fail(s *souffle.Info, format string, args ...interface{}) {
	failAt(s, format, args...)
}

// Skip marks the test Skipped, matching SKIP_TEST(). Callers must return
// immediately afterwards; the harness does not enforce this for them.
func Skip(s *souffle.Info) {
	s.Skip()
}
