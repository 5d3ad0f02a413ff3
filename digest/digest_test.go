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

package digest_test

import (
	"testing"

	"github.com/snescore/snescore/digest"
	"github.com/snescore/snescore/hardware"
	"github.com/snescore/snescore/hardware/output"
	"github.com/snescore/snescore/hardware/preferences"
	"github.com/snescore/snescore/test"
	"github.com/snescore/snescore/test/testrom"
)

func newSNES(t *testing.T, program []uint8) *hardware.SNES {
	t.Helper()
	b := testrom.NewBuilder(testrom.LoROM, 0x20000)
	b.Place(testrom.DefaultOrigin, program)

	snes, err := hardware.NewSNES(nil, preferences.NewConfig())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, snes.LoadCartridge(b.Build()))
	return snes
}

// INC $10, BRA
var counter = []uint8{0xe6, 0x10, 0x80, 0xfc}

func stateHash(t *testing.T, snes *hardware.SNES, frames int) string {
	t.Helper()
	dig := digest.NewState(snes)
	for range frames {
		test.DemandSuccess(t, snes.RunFrame())
		test.DemandSuccess(t, dig.NewFrame())
	}
	test.ExpectEquality(t, dig.Frame(), frames)
	return dig.Hash()
}

func TestState(t *testing.T) {
	a := stateHash(t, newSNES(t, counter), 5)
	b := stateHash(t, newSNES(t, counter), 5)
	test.ExpectEquality(t, a, b)

	// INC $11, BRA
	c := stateHash(t, newSNES(t, []uint8{0xe6, 0x11, 0x80, 0xfc}), 5)
	test.ExpectInequality(t, a, c)
}

func TestAudio(t *testing.T) {
	hash := func(n int, v int16) string {
		ring := output.NewAudioRing(256)
		dig := digest.NewAudio(ring)
		for range n {
			ring.Push(v, -v)
			if ring.Len() == ring.Cap() {
				dig.Drain()
			}
		}
		dig.Flush()
		return dig.Hash()
	}

	test.ExpectEquality(t, hash(1000, 1), hash(1000, 1))
	test.ExpectInequality(t, hash(1000, 1), hash(1000, 2))
	test.ExpectInequality(t, hash(1000, 1), hash(1001, 1))

	// an empty stream has a zero digest
	ring := output.NewAudioRing(16)
	dig := digest.NewAudio(ring)
	dig.Flush()
	test.ExpectEquality(t, dig.Hash(), "0000000000000000000000000000000000000000")
}
