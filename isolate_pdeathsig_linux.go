//go:build linux

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
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// setPdeathsig asks the kernel to SIGKILL the isolated child if souffle's
// own process dies first (e.g. is itself killed while waiting), so a
// crashed or killed Supervisor never leaves orphaned test children
// running. This is a Linux-only prctl(PR_SET_PDEATHSIG) facility; other
// Unixes have no equivalent (see isolate_pdeathsig_other.go).
func setPdeathsig(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Pdeathsig: unix.SIGKILL}
}
