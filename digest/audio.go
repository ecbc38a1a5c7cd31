// This file is part of mdcore.
//
// mdcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mdcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mdcore.  If not, see <https://www.gnu.org/licenses/>.

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length.
const audioBufferLength = 1024 + sha1.Size

// to allow digests over sample streams longer than audioBufferLength, the
// previous digest value is stuffed into the first part of the buffer and
// included when the next digest value is formed.
const audioBufferStart = sha1.Size

// Audio chains a SHA-1 hash across the combined YM2612+PSG sample stream.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []byte
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]byte, audioBufferLength)
	dig.bufferCt = audioBufferStart
	return dig
}

func (dig Audio) String() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest resets the current digest value to 0.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// AddSample appends one stereo sample pair to the buffer. The running digest
// is recomputed only when the buffer fills, so String does not reflect
// samples still waiting in the buffer.
func (dig *Audio) AddSample(left, right int16) {
	if dig.bufferCt+4 > len(dig.buffer) {
		dig.flush()
	}
	binary.LittleEndian.PutUint16(dig.buffer[dig.bufferCt:], uint16(left))
	binary.LittleEndian.PutUint16(dig.buffer[dig.bufferCt+2:], uint16(right))
	dig.bufferCt += 4
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
