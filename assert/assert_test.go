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

package assert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Quince-Pie/souffle"
	souffle_assert "github.com/Quince-Pie/souffle/assert"
)

func TestTrueFalse(t *testing.T) {
	var s souffle.Info
	souffle_assert.True(&s, 1 == 1)
	assert.Equal(t, souffle.Success, s.Outcome())

	var s2 souffle.Info
	souffle_assert.True(&s2, false)
	assert.Equal(t, souffle.Fail, s2.Outcome())

	var s3 souffle.Info
	souffle_assert.False(&s3, false)
	assert.Equal(t, souffle.Success, s3.Outcome())
}

func TestEqualNotEqual(t *testing.T) {
	var s souffle.Info
	souffle_assert.Equal(&s, 5, 5)
	assert.Equal(t, souffle.Success, s.Outcome())

	var s2 souffle.Info
	souffle_assert.Equal(&s2, 5, 1)
	assert.Equal(t, souffle.Fail, s2.Outcome())

	var s3 souffle.Info
	souffle_assert.NotEqual(&s3, 5, 5)
	assert.Equal(t, souffle.Fail, s3.Outcome())
}

func TestOrdered(t *testing.T) {
	var s souffle.Info
	souffle_assert.Less(&s, 1, 2)
	assert.Equal(t, souffle.Success, s.Outcome())

	var s2 souffle.Info
	souffle_assert.Less(&s2, 2, 1)
	assert.Equal(t, souffle.Fail, s2.Outcome())

	var s3 souffle.Info
	souffle_assert.GreaterOrEqual(&s3, 2, 2)
	assert.Equal(t, souffle.Success, s3.Outcome())
}

func TestNullNotNull(t *testing.T) {
	var p *int
	var s souffle.Info
	souffle_assert.Null(&s, p)
	assert.Equal(t, souffle.Success, s.Outcome())

	v := 5
	p = &v
	var s2 souffle.Info
	souffle_assert.NotNull(&s2, p)
	assert.Equal(t, souffle.Success, s2.Outcome())

	var s3 souffle.Info
	souffle_assert.NotNull(&s3, (*int)(nil))
	assert.Equal(t, souffle.Fail, s3.Outcome())
}

func TestPtrEqPtrNe(t *testing.T) {
	a, b := 1, 1
	var s souffle.Info
	souffle_assert.PtrEqual(&s, &a, &a)
	assert.Equal(t, souffle.Success, s.Outcome())

	var s2 souffle.Info
	souffle_assert.PtrEqual(&s2, &a, &b)
	assert.Equal(t, souffle.Fail, s2.Outcome())

	var s3 souffle.Info
	souffle_assert.PtrNotEqual(&s3, &a, &b)
	assert.Equal(t, souffle.Success, s3.Outcome())
}

func TestStrEqStrNe(t *testing.T) {
	var s souffle.Info
	souffle_assert.StrEqual(&s, "abc", "abc")
	assert.Equal(t, souffle.Success, s.Outcome())

	var s2 souffle.Info
	souffle_assert.StrEqual(&s2, "abc", "xyz")
	assert.Equal(t, souffle.Fail, s2.Outcome())
}

func TestArrayEqualNotEqual(t *testing.T) {
	var s souffle.Info
	souffle_assert.ArrayEqual(&s, []int{1, 2, 3}, []int{1, 2, 3})
	assert.Equal(t, souffle.Success, s.Outcome())

	var s2 souffle.Info
	souffle_assert.ArrayEqual(&s2, []int{1, 2, 3}, []int{1, 2, 4})
	assert.Equal(t, souffle.Fail, s2.Outcome())

	var s3 souffle.Info
	souffle_assert.ArrayEqual(&s3, []float64{1.5, 2.5}, []float64{1.5, 2.5})
	assert.Equal(t, souffle.Success, s3.Outcome())

	var s4 souffle.Info
	souffle_assert.ArrayNotEqual(&s4, []uint{1, 2}, []uint{1, 2})
	assert.Equal(t, souffle.Fail, s4.Outcome())
}

func TestFailureDiagnosticCarriesSourceLocation(t *testing.T) {
	var s souffle.Info
	souffle_assert.Equal(&s, 5, 1)
	diag := string(s.Diagnostic())
	assert.Contains(t, diag, "assert_test.go:")
}

func TestFailAndSkip(t *testing.T) {
	var s souffle.Info
	souffle_assert.Fail(&s, "custom failure %d", 7)
	assert.Equal(t, souffle.Fail, s.Outcome())
	assert.Contains(t, string(s.Diagnostic()), "custom failure 7")

	var s2 souffle.Info
	souffle_assert.Skip(&s2)
	assert.Equal(t, souffle.Skip, s2.Outcome())
}
