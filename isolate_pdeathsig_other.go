//go:build !windows && !linux

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

import "os/exec"

// setPdeathsig is a no-op on Unixes without PR_SET_PDEATHSIG (BSD,
// Darwin): the parent-death race it closes on Linux is narrow (the
// Supervisor would have to die between Start and the timeout firing) and
// has no portable equivalent here.
func setPdeathsig(cmd *exec.Cmd) {}
