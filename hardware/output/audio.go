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

package output

import "sync/atomic"

// Sample is a stereo audio sample.
type Sample struct {
	Left  int16
	Right int16
}

// DefaultAudioRingSize holds a little more than a quarter of a second of
// audio at 32kHz.
const DefaultAudioRingSize = 8192

// AudioRing is a lock-free ring of audio samples. Push() must only be called
// by one goroutine and Pop() by one other goroutine.
type AudioRing struct {
	buf  []Sample
	mask uint64

	// write and read positions. the positions only ever increase
	head atomic.Uint64
	tail atomic.Uint64

	dropped atomic.Uint64
}

// NewAudioRing is the preferred method of initialisation for the AudioRing
// type. The size is rounded up to a power of two.
func NewAudioRing(size int) *AudioRing {
	n := 1
	for n < size {
		n <<= 1
	}
	return &AudioRing{
		buf:  make([]Sample, n),
		mask: uint64(n - 1),
	}
}

// Cap returns the number of samples the ring can hold.
func (r *AudioRing) Cap() int {
	return len(r.buf)
}

// Len returns the number of samples waiting to be consumed.
func (r *AudioRing) Len() int {
	return int(r.head.Load() - r.tail.Load())
}

// Push adds a sample. If the ring is full the sample is dropped and the
// function returns false.
func (r *AudioRing) Push(left, right int16) bool {
	head := r.head.Load()
	if head-r.tail.Load() >= uint64(len(r.buf)) {
		r.dropped.Add(1)
		return false
	}
	r.buf[head&r.mask] = Sample{Left: left, Right: right}
	r.head.Store(head + 1)
	return true
}

// Pop copies waiting samples into dst and returns the number copied.
func (r *AudioRing) Pop(dst []Sample) int {
	tail := r.tail.Load()
	n := int(r.head.Load() - tail)
	if n > len(dst) {
		n = len(dst)
	}
	for i := range n {
		dst[i] = r.buf[(tail+uint64(i))&r.mask]
	}
	r.tail.Store(tail + uint64(n))
	return n
}

// Dropped returns the number of samples dropped because the ring was full.
func (r *AudioRing) Dropped() uint64 {
	return r.dropped.Load()
}

// Discard all waiting samples. Must only be called by the consumer.
func (r *AudioRing) Discard() {
	r.tail.Store(r.head.Load())
}
