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

// Video chains a SHA-1 hash across successive VDP framebuffers, so that a
// single String() value at the end of a run summarises every frame the VDP
// produced.
type Video struct {
	digest [sha1.Size]byte
	buf    []byte
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

func (dig Video) String() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest resets the current digest value to 0.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// AddFrame folds one VDP framebuffer into the running digest, chaining the
// previous digest value ahead of the pixel data so that frame order is part
// of the hash.
func (dig *Video) AddFrame(framebuffer []uint16) {
	need := len(dig.digest) + len(framebuffer)*2
	if cap(dig.buf) < need {
		dig.buf = make([]byte, need)
	}
	dig.buf = dig.buf[:need]

	copy(dig.buf, dig.digest[:])
	for i, px := range framebuffer {
		binary.LittleEndian.PutUint16(dig.buf[len(dig.digest)+i*2:], px)
	}

	dig.digest = sha1.Sum(dig.buf)
}
