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

// Command souffle-example is the minimal way to use the souffle module
// directly, without soufflectl: register tests via func init(), then
// call souffle.RunAll from main. This is the Go analogue of linking
// examples/basic.c against souffle.c and running the resulting binary.
package main

import (
	"os"

	"github.com/Quince-Pie/souffle"
	"github.com/Quince-Pie/souffle/reporter"

	_ "github.com/Quince-Pie/souffle/cmd/souffle-example/suites"
)

func main() {
	os.Exit(souffle.RunAll(reporter.NewText(os.Stdout)))
}
