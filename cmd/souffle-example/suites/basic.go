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

// Package suites registers the demo tests shipped with souffle-example,
// a Go port of original_source/examples/basic.c: a setup/teardown pair
// sharing context, a string of deliberately passing/failing/skipping/
// crashing/slow tests showing every Outcome at least once.
package suites

import (
	"time"

	"github.com/Quince-Pie/souffle"
	"github.com/Quince-Pie/souffle/assert"
)

func init() {
	souffle.Register("MySuite", "TestCase1", testCase1,
		souffle.WithSetup(setupTestCase1),
		souffle.WithTeardown(teardownTestCase1))

	souffle.Register("MySuite", "test_number_eq", testNumberEq)
	souffle.Register("MySuite", "fffff", crashes)
	souffle.Register("MySuite", "pass", pass)
	souffle.Register("MySuite", "pass_fail_pass", passFailPass)
	souffle.Register("MySuite", "float_check", floatCheck)
	souffle.Register("MySuite", "pass_fail", passFail)
	souffle.Register("MySuite", "pass_crash", passCrash)
	souffle.Register("MySuite", "skip_me", skipMe)

	souffle.Register("arr", "arr1", arrEqual)

	souffle.Register("MySuite", "timeoutf", timeoutFast)
	souffle.Register("MySuite", "timeout", timeoutSlow)
}

type testCase1Data struct {
	value int
}

func setupTestCase1(ctx *souffle.Context) {
	ctx.Set(&testCase1Data{value: 5})
}

func testCase1(s *souffle.Info, ctx *souffle.Context) {
	assert.True(s, true)
	data, _ := ctx.Get().(*testCase1Data)
	assert.NotNull(s, data)
	assert.Equal(s, data.value, 5)
}

func teardownTestCase1(ctx *souffle.Context) {
	ctx.Set(nil)
}

func testNumberEq(s *souffle.Info, _ *souffle.Context) {
	a, b := 5, 1
	assert.Equal(s, a, b)
}

func crashes(s *souffle.Info, _ *souffle.Context) {
	panic("simulated native crash")
}

func pass(s *souffle.Info, _ *souffle.Context) {
	assert.Equal(s, 1, 1)
}

func passFailPass(s *souffle.Info, _ *souffle.Context) {
	assert.Equal(s, 1, 1)
	assert.Equal(s, 2, 1)
	assert.Equal(s, 1, 1)
}

func floatCheck(s *souffle.Info, _ *souffle.Context) {
	assert.Equal(s, 1.5, 2.5)
}

func passFail(s *souffle.Info, _ *souffle.Context) {
	assert.Equal(s, 1, 1)
	assert.Equal(s, 2, 1)
}

func passCrash(s *souffle.Info, _ *souffle.Context) {
	assert.Equal(s, 1, 1)
	panic("simulated native crash")
}

func skipMe(s *souffle.Info, _ *souffle.Context) {
	assert.Skip(s)
}

func arrEqual(s *souffle.Info, _ *souffle.Context) {
	a := []int{1, 2, 3}
	b := []int{1, 2, 3}
	assert.ArrayEqual(s, a, b)
}

func timeoutFast(s *souffle.Info, _ *souffle.Context) {
	for i := 0; i < 3; i++ {
		time.Sleep(time.Second)
		assert.Equal(s, i, i)
	}
}

func timeoutSlow(s *souffle.Info, _ *souffle.Context) {
	for i := 0; i < 10_000_000_000; i++ {
		time.Sleep(time.Second)
		assert.Equal(s, i, i)
	}
}
