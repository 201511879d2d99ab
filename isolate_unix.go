//go:build !windows

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
	"context"
	"os"
	"os/exec"
	"strconv"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// unixRunner isolates each test in a freshly re-exec'd child process, the
// Go-idiomatic substitute for souffle.c's vfork()+exit() pair: the Go
// runtime does not survive a bare fork (its scheduler and goroutines are
// not fork-safe), so the isolation unit is instead "the same binary,
// invoked again, told to run exactly one test" — the same trick the
// teacher's cmd/kolet/kolet.go binary uses to run one native test
// function by name against the shared registry.
type unixRunner struct{}

func newRunner() runner { return unixRunner{} }

// Run implements the POSIX backend of spec.md §4.3.
func (unixRunner) Run(t *Test, timeout time.Duration) Result {
	start := time.Now()

	readEnd, writeEnd, err := os.Pipe()
	if err != nil {
		// Pipe creation failing is a harness-internal failure (spec.md
		// §4.3 "Failure semantics"): fatal, not a test outcome.
		fatalf(errors.Wrap(err, "souffle: failed to create outcome pipe"))
	}
	defer readEnd.Close()

	index := duplicateIndex(t)

	cmd := exec.Command(os.Args[0], os.Args[1:]...)
	cmd.Env = append(os.Environ(),
		envWorkerSuite+"="+t.Suite,
		envWorkerTest+"="+t.Name,
		envWorkerIndex+"="+strconv.Itoa(index),
		// A Go fatal error (stack overflow, unrecovered panic on another
		// goroutine) otherwise exits with status 2, which reads as Skip;
		// crash mode makes the runtime die by SIGABRT instead.
		"GOTRACEBACK=crash",
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.ExtraFiles = []*os.File{writeEnd}
	setPdeathsig(cmd)

	if err := cmd.Start(); err != nil {
		writeEnd.Close()
		fatalf(errors.Wrap(err, "souffle: failed to spawn isolated test process"))
	}
	writeEnd.Close() // parent's copy; the child now owns the only other reference

	// readDiagnostic blocks until the child closes its end of the pipe,
	// which for a hung or still-sleeping child doesn't happen until it is
	// killed below. Read it on its own goroutine so a slow child can't
	// hold the select hostage and starve the timeout path.
	diagCh := make(chan []byte, 1)
	go func() { diagCh <- readDiagnostic(readEnd) }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	waitErr := make(chan error, 1)
	go func() { waitErr <- cmd.Wait() }()

	var outcome Outcome
	select {
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-waitErr
		outcome = Timeout
	case err := <-waitErr:
		outcome = classifyExit(err)
	}

	diag := <-diagCh

	return Result{
		Outcome:    outcome,
		Elapsed:    time.Since(start),
		Diagnostic: diag,
	}
}

// classifyExit turns a cmd.Wait() error into an Outcome per the
// precedence rule in spec.md §4.3: a normal exit carries the Outcome tag
// in its exit code; death by signal is always Crashed.
func classifyExit(err error) Outcome {
	if err == nil {
		return Success
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		return Crashed
	}
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return Crashed
	}
	code := exitErr.ExitCode()
	switch Outcome(code) {
	case Success, Fail, Skip, Timeout, Crashed:
		return Outcome(code)
	default:
		return Crashed
	}
}

// duplicateIndex finds t's position among other tests sharing its
// (suite, name) pair so the re-exec'd worker can pick the exact same Test
// value back out of the registry (spec.md allows duplicate pairs; both
// must run independently).
func duplicateIndex(t *Test) int {
	idx := 0
	for _, other := range defaultRegistry.tests(t.Suite) {
		if other == t {
			return idx
		}
		if other.Name == t.Name {
			idx++
		}
	}
	return idx
}

// isWorkerProcess reports whether this process was re-exec'd to run a
// single isolated test, i.e. whether RunAll is being invoked inside the
// child spawned by unixRunner.Run.
func isWorkerProcess() bool {
	_, ok := os.LookupEnv(envWorkerTest)
	return ok
}

// runWorkerAndExit is the child side of the POSIX backend: look up the
// one test named by the environment, run it to completion, ship its
// diagnostic back over fd 3, and exit with the numeric Outcome. It never
// returns.
func runWorkerAndExit() {
	suite := os.Getenv(envWorkerSuite)
	name := os.Getenv(envWorkerTest)
	index, _ := strconv.Atoi(os.Getenv(envWorkerIndex))

	t, err := defaultRegistry.lookup(suite, name, index)
	if err != nil {
		fatalf(errors.Wrap(err, "souffle: worker process could not resolve its test"))
	}

	info := &Info{}
	ctx := &Context{}
	outcome, diag := runBody(t, info, ctx)

	if pipe := os.NewFile(3, "souffle-outcome-channel"); pipe != nil {
		_ = writeDiagnostic(pipe, diag)
		pipe.Close()
	}

	os.Exit(int(outcome))
}
