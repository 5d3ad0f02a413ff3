// This file is part of Snescore.
//
// Snescore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Snescore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Snescore.  If not, see <https://www.gnu.org/licenses/>.

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/snescore/snescore/hardware/output"
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length.
const audioBufferLength = 1024 + sha1.Size

// to allow us to create digests on audio streams longer than
// audioBufferLength, we'll stuff the previous digest value into the first part
// of the buffer array and make sure we include it when we create the next
// digest value.
const audioBufferStart = sha1.Size

// Audio produces a hash of the samples in an audio ring.
type Audio struct {
	ring     *output.AudioRing
	scratch  []output.Sample
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(ring *output.AudioRing) *Audio {
	dig := &Audio{
		ring:    ring,
		scratch: make([]output.Sample, ring.Cap()),
	}
	dig.buffer = make([]uint8, audioBufferLength)
	dig.bufferCt = audioBufferStart
	return dig
}

// Hash implements digest.Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Drain consumes the samples waiting in the ring.
func (dig *Audio) Drain() {
	for {
		n := dig.ring.Pop(dig.scratch)
		if n == 0 {
			return
		}
		for _, s := range dig.scratch[:n] {
			dig.add(uint8(s.Left))
			dig.add(uint8(s.Left >> 8))
			dig.add(uint8(s.Right))
			dig.add(uint8(s.Right >> 8))
		}
	}
}

func (dig *Audio) add(v uint8) {
	dig.buffer[dig.bufferCt] = v
	dig.bufferCt++
	if dig.bufferCt >= audioBufferLength {
		dig.flush()
	}
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}

// Flush includes samples that have been consumed but not yet hashed. Called
// at the end of the stream.
func (dig *Audio) Flush() {
	dig.Drain()
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
}
