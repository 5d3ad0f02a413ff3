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

package ppu_test

import (
	"testing"

	"github.com/snescore/snescore/hardware/clocks"
	"github.com/snescore/snescore/hardware/ppu"
	"github.com/snescore/snescore/test"
)

type counters struct {
	h, v int
}

func (c counters) HCounter() int { return c.h }
func (c counters) VCounter() int { return c.v }

func TestVRAM(t *testing.T) {
	p := ppu.NewPPU(counters{})

	// increment after writing high byte, by one word
	p.Write(0x2115, 0x80)
	p.Write(0x2116, 0x00)
	p.Write(0x2117, 0x10)
	p.Write(0x2118, 0x34)
	p.Write(0x2119, 0x12)
	p.Write(0x2118, 0x78)
	p.Write(0x2119, 0x56)

	test.ExpectEquality(t, p.VRAM(0x1000), 0x1234)
	test.ExpectEquality(t, p.VRAM(0x1001), 0x5678)

	// reading back uses the prefetch buffer. the first read after setting
	// the address is repeated
	p.Write(0x2116, 0x00)
	p.Write(0x2117, 0x10)
	for _, expected := range []uint16{0x1234, 0x1234, 0x5678} {
		lo, ok := p.Read(0x2139)
		test.ExpectSuccess(t, ok)
		hi, _ := p.Read(0x213a)
		test.ExpectEquality(t, uint16(hi)<<8|uint16(lo), expected)
	}

	// step of 32 words, increment on low byte
	p.Write(0x2115, 0x01)
	p.Write(0x2116, 0x00)
	p.Write(0x2117, 0x00)
	p.Write(0x2118, 0xaa)
	p.Write(0x2118, 0xbb)
	test.ExpectEquality(t, p.VRAM(0x0000)&0xff, 0xaa)
	test.ExpectEquality(t, p.VRAM(0x0020)&0xff, 0xbb)
}

func TestCGRAM(t *testing.T) {
	p := ppu.NewPPU(counters{})
	p.Write(0x2121, 0x10)
	p.Write(0x2122, 0xff)

	// nothing is written until the high byte
	test.ExpectEquality(t, p.CGRAM(0x10), 0x0000)
	p.Write(0x2122, 0xff)
	test.ExpectEquality(t, p.CGRAM(0x10), 0x7fff)

	p.Write(0x2121, 0x10)
	v, _ := p.Read(0x213b)
	test.ExpectEquality(t, v, 0xff)
	v, _ = p.Read(0x213b)
	test.ExpectEquality(t, v&0x7f, 0x7f)
}

func TestOAM(t *testing.T) {
	p := ppu.NewPPU(counters{})
	p.Write(0x2102, 0x01)
	p.Write(0x2103, 0x00)
	p.Write(0x2104, 0x11)
	p.Write(0x2104, 0x22)
	test.ExpectEquality(t, p.OAM(0x02), 0x11)
	test.ExpectEquality(t, p.OAM(0x03), 0x22)

	// the high table is written directly
	p.Write(0x2102, 0x00)
	p.Write(0x2103, 0x01)
	p.Write(0x2104, 0x55)
	test.ExpectEquality(t, p.OAM(0x200), 0x55)

	p.Write(0x2102, 0x01)
	p.Write(0x2103, 0x00)
	v, _ := p.Read(0x2138)
	test.ExpectEquality(t, v, 0x11)
	v, _ = p.Read(0x2138)
	test.ExpectEquality(t, v, 0x22)

	// the top of the address range mirrors the high table and wraps to the
	// start of OAM
	p.Write(0x2102, 0xff)
	p.Write(0x2103, 0x01)
	p.Write(0x2104, 0x66)
	test.ExpectEquality(t, p.OAM(0x21e), 0x66)
	p.Write(0x2104, 0x77)
	test.ExpectEquality(t, p.OAM(0x21f), 0x77)
	p.Write(0x2104, 0x01)
	p.Write(0x2104, 0x02)
	test.ExpectEquality(t, p.OAM(0x00), 0x01)
	test.ExpectEquality(t, p.OAM(0x01), 0x02)

	p.Write(0x2102, 0xff)
	p.Write(0x2103, 0x01)
	v, _ = p.Read(0x2138)
	test.ExpectEquality(t, v, 0x66)
}

func TestValidate(t *testing.T) {
	p := ppu.NewPPU(counters{})
	s := p.Snapshot()
	test.ExpectSuccess(t, s.Validate())

	s.OAMAddr = 0x3ff
	test.ExpectSuccess(t, s.Validate())
	s.OAMAddr = 0x400
	test.ExpectFailure(t, s.Validate())

	s = p.Snapshot()
	s.CGRAMAddr = ppu.CGRAMSize
	test.ExpectFailure(t, s.Validate())
}

func TestMultiply(t *testing.T) {
	p := ppu.NewPPU(counters{})

	// M7A = -2 (0xfffe), M7B = 3
	p.Write(0x211b, 0xfe)
	p.Write(0x211b, 0xff)
	p.Write(0x211c, 0x03)

	l, _ := p.Read(0x2134)
	m, _ := p.Read(0x2135)
	h, _ := p.Read(0x2136)
	test.ExpectEquality(t, uint32(l)|uint32(m)<<8|uint32(h)<<16, 0xfffffa)
}

func TestCounterLatch(t *testing.T) {
	p := ppu.NewPPU(counters{h: 0x123, v: 0x45})

	_, ok := p.Read(0x2137)
	test.ExpectFailure(t, ok)

	lo, _ := p.Read(0x213c)
	hi, _ := p.Read(0x213c)
	test.ExpectEquality(t, lo, 0x23)
	test.ExpectEquality(t, hi&0x01, 0x01)

	v, _ := p.Read(0x213d)
	test.ExpectEquality(t, v, 0x45)

	stat, _ := p.Read(0x213f)
	test.ExpectEquality(t, stat&0x40, 0x40)
	test.ExpectEquality(t, stat&0x10, 0x00)

	// flag is cleared by reading STAT78
	stat, _ = p.Read(0x213f)
	test.ExpectEquality(t, stat&0x40, 0x00)

	p.SetSpec(clocks.SpecPAL)
	stat, _ = p.Read(0x213f)
	test.ExpectEquality(t, stat&0x10, 0x10)
}

func TestSnapshot(t *testing.T) {
	p := ppu.NewPPU(counters{})
	test.ExpectSuccess(t, p.ForcedBlank())

	p.Write(0x2100, 0x0f)
	s := p.Snapshot()
	p.Write(0x2100, 0x80)
	test.ExpectSuccess(t, p.ForcedBlank())

	p.Plumb(s)
	test.ExpectFailure(t, p.ForcedBlank())
	test.ExpectEquality(t, p.Brightness(), 15)
}
