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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	want := []byte("assertion failed at line 12")
	require := assert.New(t)
	require.NoError(writeDiagnostic(&buf, want))
	got := readDiagnostic(&buf)
	require.Equal(want, got)
}

func TestDiagnosticRoundTripEmpty(t *testing.T) {
	var buf bytes.Buffer
	a := assert.New(t)
	a.NoError(writeDiagnostic(&buf, nil))
	a.Nil(readDiagnostic(&buf))
}

func TestReadDiagnosticTruncated(t *testing.T) {
	var buf bytes.Buffer
	a := assert.New(t)
	a.NoError(writeDiagnostic(&buf, []byte("hello world")))
	// Simulate a writer that died mid-flush: keep the length prefix but
	// drop all but a few payload bytes.
	full := buf.Bytes()
	truncated := append([]byte{}, full[:4+3]...)
	got := readDiagnostic(bytes.NewReader(truncated))
	a.Equal("hel", string(got))
}

func TestReadDiagnosticEOFBeforeHeader(t *testing.T) {
	got := readDiagnostic(strings.NewReader(""))
	assert.Nil(t, got)
}
