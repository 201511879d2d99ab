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
	"os"
	"strconv"
	"time"
)

const defaultTimeout = 20 * time.Second

// timeoutFromEnv reads SOUFFLE_TIMEOUT (whole seconds), matching
// souffle.c's run_all_tests: an unset, empty, or non-numeric value falls
// back to the default; a literal "0" is also treated as the default,
// exactly like `if (timeout_time == 0) timeout_time = 20;` in the C
// source.
func timeoutFromEnv() time.Duration {
	raw, ok := os.LookupEnv("SOUFFLE_TIMEOUT")
	if !ok || raw == "" {
		return defaultTimeout
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs == 0 {
		return defaultTimeout
	}
	return time.Duration(secs) * time.Second
}

// noColor reports whether SOUFFLE_NOCOLOR is set to any non-empty value.
func noColor() bool {
	v, ok := os.LookupEnv("SOUFFLE_NOCOLOR")
	return ok && v != ""
}

const (
	envWorkerSuite = "SOUFFLE_WORKER_SUITE"
	envWorkerTest  = "SOUFFLE_WORKER_TEST"
	envWorkerIndex = "SOUFFLE_WORKER_INDEX"
)
