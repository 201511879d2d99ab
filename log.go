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

import "github.com/coreos/pkg/capnslog"

// plog is the harness-internal logger, used the same way kola/harness.go
// uses its own package logger: never for test output (that goes through
// the Reporter), only for conditions that abort the whole run.
var plog = capnslog.NewPackageLogger("github.com/Quince-Pie/souffle", "souffle")

// fatalf logs a harness-internal failure and aborts the process. It is
// reserved for harness failures, not test failures: the isolation unit
// itself could not be created, a worker process could not resolve its
// test, or the Reporter failed to finish the report.
func fatalf(err error) {
	plog.Fatalf("%v", err)
}
