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

// Command soufflectl is a thin cobra CLI over souffle.RunAll, in the
// shape of the teacher's cmd/kola: a root command with subcommands for
// running the registered suites and listing them, plus the flags
// SOUFFLE_TIMEOUT/SOUFFLE_NOCOLOR also expose as env vars.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Quince-Pie/souffle"
	"github.com/Quince-Pie/souffle/reporter"

	// Import side-effect registers any test packages linked into this
	// binary, the same way cmd/kolet imports kola purely for its init()s.
	_ "github.com/Quince-Pie/souffle/cmd/souffle-example/suites"
)

var (
	flagTimeoutSecs int
	flagNoColor     bool
	flagJSONOut     string

	root = &cobra.Command{
		Use:   "soufflectl [command]",
		Short: "Run souffle-registered C-style unit tests",
	}

	cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Run every registered suite",
		RunE:  runRun,
	}

	cmdList = &cobra.Command{
		Use:   "list",
		Short: "List registered suites and tests",
		Run:   runList,
	}
)

func init() {
	root.PersistentFlags().IntVar(&flagTimeoutSecs, "timeout", 0,
		"per-test timeout in seconds (0 uses SOUFFLE_TIMEOUT or the 20s default)")
	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false,
		"disable ANSI colour in the console report (also SOUFFLE_NOCOLOR)")
	cmdRun.Flags().StringVar(&flagJSONOut, "json-out", "",
		"additionally write a machine-readable report to this file")

	root.AddCommand(cmdRun, cmdList)
}

func main() {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	if flagTimeoutSecs > 0 {
		os.Setenv("SOUFFLE_TIMEOUT", fmt.Sprintf("%d", flagTimeoutSecs))
	}
	if flagNoColor {
		os.Setenv("SOUFFLE_NOCOLOR", "1")
	}

	text := reporter.NewText(os.Stdout)

	var rep souffle.Reporter = text
	if flagJSONOut != "" {
		rep = multiReporter{text, reporter.NewJSON(flagJSONOut)}
	}

	os.Exit(souffle.RunAll(rep))
	return nil
}

func runList(cmd *cobra.Command, args []string) {
	for _, suite := range souffle.Suites() {
		for _, name := range souffle.TestNames(suite) {
			fmt.Printf("%s/%s\n", suite, name)
		}
	}
}

// multiReporter fans a single Supervisor run out to more than one
// Reporter, mirroring the teacher's reporters.Reporters slice type.
type multiReporter []souffle.Reporter

func (m multiReporter) StartSuite(suite string, n int) {
	for _, r := range m {
		r.StartSuite(suite, n)
	}
}

func (m multiReporter) ReportTest(suite, name string, res souffle.Result) {
	for _, r := range m {
		r.ReportTest(suite, name, res)
	}
}

func (m multiReporter) FinishSuite(suite string) {
	for _, r := range m {
		r.FinishSuite(suite)
	}
}

func (m multiReporter) Finish(t souffle.Totals) error {
	for _, r := range m {
		if err := r.Finish(t); err != nil {
			return err
		}
	}
	return nil
}
