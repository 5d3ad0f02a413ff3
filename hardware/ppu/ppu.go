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

import (
	"fmt"

	"github.com/snescore/snescore/hardware/clocks"
)

// Counters is the source of the H and V counters latched by SLHV.
type Counters interface {
	HCounter() int
	VCounter() int
}

// Sizes of the PPU memories.
const (
	VRAMSize  = 0x10000
	CGRAMSize = 0x200
	OAMSize   = 0x220
)

// State is the complete state of the PPU.
type State struct {
	// last value written to each register in the $2100 to $213f range
	Registers [0x40]uint8

	VRAM  [VRAMSize]uint8
	CGRAM [CGRAMSize]uint8
	OAM   [OAMSize]uint8

	// VRAM word address and read prefetch
	VRAMAddr     uint16
	VRAMPrefetch uint16

	// CGRAM byte address and write latch
	CGRAMAddr  uint16
	CGRAMLatch uint8

	// OAM byte address, the word address it is reloaded from, and the
	// write latch
	OAMAddr   uint16
	OAMReload uint16
	OAMLatch  uint8

	// mode 7 write-twice latch and the values used by the multiplier
	M7Latch uint8
	M7A     int16
	M7B     int8

	// latched counters and the low/high flip-flops for reading them
	LatchedH      uint16
	LatchedV      uint16
	CountersFlag  bool
	HFlip         bool
	VFlip         bool
	PPU1OpenBus   uint8
	PPU2OpenBus   uint8
	InterlaceFlag bool
}

// Validate checks that the state can be plumbed into the PPU.
func (s *State) Validate() error {
	if s.OAMAddr > oamAddrMask || s.OAMReload > oamAddrMask>>1 {
		return fmt.Errorf("OAM address %#x (reload %#x) out of range", s.OAMAddr, s.OAMReload)
	}
	if s.CGRAMAddr >= CGRAMSize {
		return fmt.Errorf("CGRAM address %#x out of range", s.CGRAMAddr)
	}
	return nil
}

// PPU is the CPU visible part of the picture processing unit.
type PPU struct {
	state    *State
	spec     clocks.Spec
	counters Counters
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(counters Counters) *PPU {
	ppu := &PPU{
		state:    &State{},
		spec:     clocks.SpecNTSC,
		counters: counters,
	}
	ppu.Reset()
	return ppu
}

// SetSpec changes the television specification reported by STAT78.
func (ppu *PPU) SetSpec(spec clocks.Spec) {
	ppu.spec = spec
}

// Reset the PPU registers. The memories are cleared.
func (ppu *PPU) Reset() {
	ppu.state = &State{}
	ppu.state.Registers[inidisp] = 0x80
}

// Snapshot creates a copy of the PPU state.
func (ppu *PPU) Snapshot() *State {
	n := *ppu.state
	return &n
}

// Plumb a previously created snapshot into the PPU.
func (ppu *PPU) Plumb(state *State) {
	n := *state
	ppu.state = &n
}

// ForcedBlank returns true if the display is disabled by INIDISP.
func (ppu *PPU) ForcedBlank() bool {
	return ppu.state.Registers[inidisp]&0x80 == 0x80
}

// Brightness returns the master brightness set by INIDISP.
func (ppu *PPU) Brightness() int {
	return int(ppu.state.Registers[inidisp] & 0x0f)
}

// VRAM returns the word at the VRAM word address.
func (ppu *PPU) VRAM(addr uint16) uint16 {
	a := uint32(addr) << 1 & (VRAMSize - 1)
	return uint16(ppu.state.VRAM[a]) | uint16(ppu.state.VRAM[a+1])<<8
}

// CGRAM returns the colour at the palette index.
func (ppu *PPU) CGRAM(idx uint8) uint16 {
	a := uint16(idx) << 1
	return uint16(ppu.state.CGRAM[a]) | uint16(ppu.state.CGRAM[a+1])<<8
}

// OAM returns the byte at the OAM address.
func (ppu *PPU) OAM(addr uint16) uint8 {
	return ppu.state.OAM[addr%OAMSize]
}

// LatchCounters copies the current H and V counters into the latch read by
// OPHCT and OPVCT.
func (ppu *PPU) LatchCounters() {
	ppu.state.LatchedH = uint16(ppu.counters.HCounter())
	ppu.state.LatchedV = uint16(ppu.counters.VCounter())
	ppu.state.CountersFlag = true
}
