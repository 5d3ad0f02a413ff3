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

package apu_test

import (
	"testing"

	"github.com/snescore/snescore/hardware/apu"
	"github.com/snescore/snescore/test"
)

func TestBootHandshake(t *testing.T) {
	a := apu.NewAPU()
	test.ExpectEquality(t, a.Read(0x2140), 0xaa)
	test.ExpectEquality(t, a.Read(0x2141), 0xbb)

	// ports are mirrored
	test.ExpectEquality(t, a.Read(0x2174), 0xaa)

	// writes before the kick are not echoed
	a.Write(0x2141, 0x01)
	test.ExpectEquality(t, a.Read(0x2141), 0xbb)

	a.Write(0x2140, 0xcc)
	test.ExpectEquality(t, a.Read(0x2140), 0xcc)

	a.Write(0x2141, 0x12)
	a.Write(0x2140, 0x00)
	test.ExpectEquality(t, a.Read(0x2140), 0x00)
	test.ExpectEquality(t, a.Read(0x2141), 0x12)

	a.Reset()
	test.ExpectEquality(t, a.Read(0x2140), 0xaa)
}

func TestSnapshot(t *testing.T) {
	a := apu.NewAPU()
	a.Write(0x2140, 0xcc)
	s := a.Snapshot()
	a.Reset()
	a.Plumb(s)
	test.ExpectEquality(t, a.Read(0x2140), 0xcc)

	l, r := a.Sample()
	test.ExpectEquality(t, l, 0)
	test.ExpectEquality(t, r, 0)
}
