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

package output_test

import (
	"runtime"
	"testing"

	"github.com/snescore/snescore/hardware/output"
	"github.com/snescore/snescore/test"
)

func TestRing(t *testing.T) {
	r := output.NewAudioRing(5)
	test.ExpectEquality(t, r.Cap(), 8)

	for i := range 8 {
		test.ExpectSuccess(t, r.Push(int16(i), int16(-i)))
	}
	test.ExpectEquality(t, r.Push(100, 100), false)
	test.ExpectEquality(t, r.Dropped(), uint64(1))
	test.ExpectEquality(t, r.Len(), 8)

	dst := make([]output.Sample, 3)
	test.ExpectEquality(t, r.Pop(dst), 3)
	test.ExpectEquality(t, dst[2], output.Sample{Left: 2, Right: -2})
	test.ExpectEquality(t, r.Len(), 5)

	// wrap around
	test.ExpectSuccess(t, r.Push(8, -8))
	dst = make([]output.Sample, 16)
	test.ExpectEquality(t, r.Pop(dst), 6)
	test.ExpectEquality(t, dst[5], output.Sample{Left: 8, Right: -8})

	r.Push(1, 1)
	r.Discard()
	test.ExpectEquality(t, r.Len(), 0)
}

func TestConcurrent(t *testing.T) {
	const total = 20000
	r := output.NewAudioRing(64)

	go func() {
		for i := 0; i < total; {
			if r.Push(int16(i), int16(i>>1)) {
				i++
			} else {
				runtime.Gosched()
			}
		}
	}()

	dst := make([]output.Sample, 16)
	next := 0
	for next < total {
		n := r.Pop(dst)
		if n == 0 {
			runtime.Gosched()
		}
		for _, s := range dst[:n] {
			if !test.ExpectEquality(t, s.Left, int16(next)) {
				return
			}
			next++
		}
	}
}

func TestFrames(t *testing.T) {
	var f output.Frames
	test.ExpectEquality(t, f.Ready(), false)
	f.Complete()
	f.Complete()
	test.ExpectEquality(t, f.Count(), uint64(2))
	test.ExpectEquality(t, f.Ready(), true)
	test.ExpectEquality(t, f.Ready(), false)
	f.Reset()
	test.ExpectEquality(t, f.Count(), uint64(0))
}
