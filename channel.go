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
	"encoding/binary"
	"io"
)

// writeDiagnostic encodes the outcome channel's wire contract (spec.md
// §4.2): a little-endian signed 32-bit length prefix followed by exactly
// that many bytes of UTF-8 diagnostic text. L=0 means "no diagnostic" and
// no body bytes follow.
//
// This mirrors souffle.c's pipe writer:
//
//	write(pipefd[1], &tstatus.msg->len, sizeof(int));
//	write(pipefd[1], tstatus.msg->buf, tstatus.msg->len);
func writeDiagnostic(w io.Writer, diag []byte) error {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(diag)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	if len(diag) == 0 {
		return nil
	}
	_, err := w.Write(diag)
	return err
}

// readDiagnostic decodes the wire contract written by writeDiagnostic.
// A read that returns fewer bytes than the declared length is treated as
// a truncated diagnostic: whatever arrived is returned, matching spec.md
// §4.2's "display what arrived" policy. A reader that hits EOF before any
// bytes (the writer died before flushing) returns an empty diagnostic and
// no error — the outcome tag, not this channel, carries the failure.
func readDiagnostic(r io.Reader) []byte {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil
	}
	length := int32(binary.LittleEndian.Uint32(lenBuf[:]))
	if length <= 0 {
		return nil
	}
	buf := make([]byte, length)
	n, _ := io.ReadFull(r, buf)
	return buf[:n]
}
