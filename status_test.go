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

	"github.com/stretchr/testify/assert"
)

func TestInfoZeroValueIsSuccess(t *testing.T) {
	var info Info
	assert.Equal(t, Success, info.Outcome())
	assert.Empty(t, info.Diagnostic())
}

func TestInfoFailf(t *testing.T) {
	var info Info
	info.Failf("expected %d got %d", 1, 2)
	assert.Equal(t, Fail, info.Outcome())
	assert.Contains(t, string(info.Diagnostic()), "expected 1 got 2")
}

func TestInfoFailfOverridesSkip(t *testing.T) {
	var info Info
	info.Skip()
	info.Failf("overrides the skip")
	assert.Equal(t, Fail, info.Outcome())
}

func TestInfoLogDoesNotChangeOutcome(t *testing.T) {
	var info Info
	info.Log("just a note")
	assert.Equal(t, Success, info.Outcome())
	assert.Equal(t, "just a note", string(info.Diagnostic()))
}

func TestInfoReset(t *testing.T) {
	var info Info
	info.Failf("boom")
	info.reset()
	assert.Equal(t, Success, info.Outcome())
	assert.Empty(t, info.Diagnostic())
}

func TestOutcomeString(t *testing.T) {
	cases := map[Outcome]string{
		Success: "PASSED",
		Fail:    "FAILED",
		Skip:    "SKIPPED",
		Timeout: "TIMEOUT",
		Crashed: "CRASHED",
	}
	for outcome, want := range cases {
		assert.Equal(t, want, outcome.String())
	}
	assert.Contains(t, Outcome(99).String(), "Outcome(99)")
}
