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

// Context is the user-context slot shared across one test's setup, body,
// and teardown (spec.md §3, "User-context slot"). It is a single
// machine-word-sized value in the original C; here it is simply the one
// interface{} the test author is allowed to stash a pointer-sized value
// in. The harness never interprets it.
type Context struct {
	value interface{}
}

// Set stores v in the slot. Only setup is expected to call this, but
// nothing enforces that — same as the C contract, which leaves lifetime
// management to the test author.
func (c *Context) Set(v interface{}) {
	c.value = v
}

// Get returns the current value, or nil if Set was never called.
func (c *Context) Get() interface{} {
	return c.value
}
