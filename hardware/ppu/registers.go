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

package ppu

// register addresses as offsets from $2100.
const (
	inidisp = 0x00
	oamaddl = 0x02
	oamaddh = 0x03
	oamdata = 0x04
	vmain   = 0x15
	vmaddl  = 0x16
	vmaddh  = 0x17
	vmdatal = 0x18
	vmdatah = 0x19
	m7a     = 0x1b
	m7b     = 0x1c
	cgadd   = 0x21
	cgdata  = 0x22
	mpyl    = 0x34
	mpym    = 0x35
	mpyh    = 0x36
	slhv    = 0x37
	rdoam   = 0x38
	rdvraml = 0x39
	rdvramh = 0x3a
	rdcgram = 0x3b
	ophct   = 0x3c
	opvct   = 0x3d
	stat77  = 0x3e
	stat78  = 0x3f
)

// chip version numbers reported by STAT77 and STAT78.
const (
	ppu1Version = 0x01
	ppu2Version = 0x03
)

// the amount the VRAM address is incremented by, indexed by the low bits of
// VMAIN.
var vramStep = [4]uint16{1, 32, 128, 128}

func (ppu *PPU) vramIncrementOnHigh() bool {
	return ppu.state.Registers[vmain]&0x80 == 0x80
}

func (ppu *PPU) incrementVRAM() {
	ppu.state.VRAMAddr += vramStep[ppu.state.Registers[vmain]&0x03]
}

func (ppu *PPU) prefetchVRAM() {
	ppu.state.VRAMPrefetch = ppu.VRAM(ppu.state.VRAMAddr)
}

func (ppu *PPU) product() int32 {
	return int32(ppu.state.M7A) * int32(ppu.state.M7B)
}

// the OAM byte address is ten bits. addresses above the low table all map
// onto the 32 bytes of the high table.
const oamAddrMask = 0x3ff

func oamIndex(a uint16) uint16 {
	if a < 0x200 {
		return a
	}
	return 0x200 | a&0x1f
}

// Write to a PPU register. The address is in the range $2100 to $213f.
func (ppu *PPU) Write(addr uint16, data uint8) {
	reg := addr & 0x3f
	s := ppu.state
	s.Registers[reg] = data

	switch reg {
	case oamaddl:
		s.OAMReload = s.OAMReload&0x100 | uint16(data)
		s.OAMAddr = s.OAMReload << 1
	case oamaddh:
		s.OAMReload = s.OAMReload&0x0ff | uint16(data&0x01)<<8
		s.OAMAddr = s.OAMReload << 1
	case oamdata:
		a := s.OAMAddr
		if a < 0x200 {
			if a&0x01 == 0x00 {
				s.OAMLatch = data
			} else {
				s.OAM[a-1] = s.OAMLatch
				s.OAM[a] = data
			}
		} else {
			s.OAM[oamIndex(a)] = data
		}
		s.OAMAddr = (a + 1) & oamAddrMask
	case vmaddl:
		s.VRAMAddr = s.VRAMAddr&0xff00 | uint16(data)
		ppu.prefetchVRAM()
	case vmaddh:
		s.VRAMAddr = s.VRAMAddr&0x00ff | uint16(data)<<8
		ppu.prefetchVRAM()
	case vmdatal:
		s.VRAM[uint32(s.VRAMAddr)<<1&(VRAMSize-1)] = data
		if !ppu.vramIncrementOnHigh() {
			ppu.incrementVRAM()
		}
	case vmdatah:
		s.VRAM[(uint32(s.VRAMAddr)<<1+1)&(VRAMSize-1)] = data
		if ppu.vramIncrementOnHigh() {
			ppu.incrementVRAM()
		}
	case m7a:
		s.M7A = int16(uint16(data)<<8 | uint16(s.M7Latch))
		s.M7Latch = data
	case m7b:
		s.M7B = int8(data)
		s.M7Latch = data
	case cgadd:
		s.CGRAMAddr = uint16(data) << 1
	case cgdata:
		a := s.CGRAMAddr
		if a&0x01 == 0x00 {
			s.CGRAMLatch = data
		} else {
			s.CGRAM[a-1] = s.CGRAMLatch
			s.CGRAM[a] = data & 0x7f
		}
		s.CGRAMAddr = (a + 1) & (CGRAMSize - 1)
	}
}

// Read from a PPU register. The address is in the range $2100 to $213f.
// Returns false if the register is write-only, in which case the value on
// the data bus is unchanged.
func (ppu *PPU) Read(addr uint16) (uint8, bool) {
	s := ppu.state

	var v uint8
	switch addr & 0x3f {
	case mpyl:
		v = uint8(ppu.product())
		s.PPU1OpenBus = v
	case mpym:
		v = uint8(ppu.product() >> 8)
		s.PPU1OpenBus = v
	case mpyh:
		v = uint8(ppu.product() >> 16)
		s.PPU1OpenBus = v
	case slhv:
		ppu.LatchCounters()
		return 0, false
	case rdoam:
		v = s.OAM[oamIndex(s.OAMAddr)]
		s.OAMAddr = (s.OAMAddr + 1) & oamAddrMask
		s.PPU1OpenBus = v
	case rdvraml:
		v = uint8(s.VRAMPrefetch)
		if !ppu.vramIncrementOnHigh() {
			ppu.prefetchVRAM()
			ppu.incrementVRAM()
		}
		s.PPU1OpenBus = v
	case rdvramh:
		v = uint8(s.VRAMPrefetch >> 8)
		if ppu.vramIncrementOnHigh() {
			ppu.prefetchVRAM()
			ppu.incrementVRAM()
		}
		s.PPU1OpenBus = v
	case rdcgram:
		v = s.CGRAM[s.CGRAMAddr]
		if s.CGRAMAddr&0x01 == 0x01 {
			v = v&0x7f | s.PPU2OpenBus&0x80
		}
		s.CGRAMAddr = (s.CGRAMAddr + 1) & (CGRAMSize - 1)
		s.PPU2OpenBus = v
	case ophct:
		if s.HFlip {
			v = uint8(s.LatchedH>>8)&0x01 | s.PPU2OpenBus&0xfe
		} else {
			v = uint8(s.LatchedH)
		}
		s.HFlip = !s.HFlip
		s.PPU2OpenBus = v
	case opvct:
		if s.VFlip {
			v = uint8(s.LatchedV>>8)&0x01 | s.PPU2OpenBus&0xfe
		} else {
			v = uint8(s.LatchedV)
		}
		s.VFlip = !s.VFlip
		s.PPU2OpenBus = v
	case stat77:
		v = ppu1Version | s.PPU1OpenBus&0x10
		s.PPU1OpenBus = v
	case stat78:
		v = ppu2Version | s.PPU2OpenBus&0x20
		if s.CountersFlag {
			v |= 0x40
		}
		if s.InterlaceFlag {
			v |= 0x80
		}
		if ppu.spec.IsPAL() {
			v |= 0x10
		}
		s.CountersFlag = false
		s.HFlip = false
		s.VFlip = false
		s.PPU2OpenBus = v
	default:
		return 0, false
	}

	return v, true
}
