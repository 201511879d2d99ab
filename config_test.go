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
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeoutFromEnvDefault(t *testing.T) {
	t.Setenv("SOUFFLE_TIMEOUT", "")
	assert.Equal(t, defaultTimeout, timeoutFromEnv())
}

func TestTimeoutFromEnvZeroFallsBackToDefault(t *testing.T) {
	t.Setenv("SOUFFLE_TIMEOUT", "0")
	assert.Equal(t, defaultTimeout, timeoutFromEnv())
}

func TestTimeoutFromEnvInvalidFallsBackToDefault(t *testing.T) {
	t.Setenv("SOUFFLE_TIMEOUT", "not-a-number")
	assert.Equal(t, defaultTimeout, timeoutFromEnv())
}

func TestTimeoutFromEnvParses(t *testing.T) {
	t.Setenv("SOUFFLE_TIMEOUT", "5")
	assert.Equal(t, 5*time.Second, timeoutFromEnv())
}

func TestNoColor(t *testing.T) {
	t.Setenv("SOUFFLE_NOCOLOR", "")
	assert.False(t, noColor())
	t.Setenv("SOUFFLE_NOCOLOR", "1")
	assert.True(t, noColor())
}
