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

package gsu

import (
	"fmt"

	"github.com/snescore/snescore/hardware/memory/cartridge"
	"github.com/snescore/snescore/logger"
)

// UnimplementedOpcode is logged the first time an instruction that is not
// emulated is executed.
const UnimplementedOpcode = "gsu: unimplemented opcode %#02x (alt %d) at %02x:%04x"

// Bits in the status/flag register.
const (
	FlagZ    = uint16(0x0002)
	FlagCY   = uint16(0x0004)
	FlagS    = uint16(0x0008)
	FlagOV   = uint16(0x0010)
	FlagG    = uint16(0x0020)
	FlagR    = uint16(0x0040)
	FlagALT1 = uint16(0x0100)
	FlagALT2 = uint16(0x0200)
	FlagIL   = uint16(0x0400)
	FlagIH   = uint16(0x0800)
	FlagB    = uint16(0x1000)
	FlagIRQ  = uint16(0x8000)
)

// CacheSize is the size of the instruction cache.
const CacheSize = 0x200

// the opcode loaded into the pipeline when the GSU stops.
const opNOP = 0x01

// State is the complete state of the GSU.
type State struct {
	R [16]uint16

	SFR uint16

	// bank registers
	PBR   uint8
	ROMBR uint8
	RAMBR uint8
	CBR   uint16

	// screen and plot registers
	SCBR  uint8
	SCMR  uint8
	COLR  uint8
	POR   uint8
	BRAMR uint8
	CFGR  uint8
	CLSR  uint8

	Cache      [CacheSize]uint8
	CacheValid [CacheSize / 16]uint16

	// the next opcode
	Pipe uint8

	// source and destination registers selected by the prefix instructions
	Sreg uint8
	Dreg uint8

	// address of the last RAM access, used by SBK
	RAMAddr uint16

	// byte read from ROM at the address in R14
	ROMBuffer uint8

	// master cycles granted but not yet used. 16.16 fixed point
	Credit int64

	// GSU cycles executed since reset
	Elapsed int64
}

// Validate checks that the state can be plumbed into the GSU.
func (s *State) Validate() error {
	if s.Sreg >= uint8(len(s.R)) || s.Dreg >= uint8(len(s.R)) {
		return fmt.Errorf("register selection out of range (%d, %d)", s.Sreg, s.Dreg)
	}
	if s.CBR&0x000f != 0 {
		return fmt.Errorf("cache base %#04x is not aligned", s.CBR)
	}
	if s.PBR > 0x7f || s.ROMBR > 0x7f || s.RAMBR > 0x01 {
		return fmt.Errorf("bank registers out of range (%#02x, %#02x, %#02x)", s.PBR, s.ROMBR, s.RAMBR)
	}
	return nil
}

// GSU is the SuperFX coprocessor.
type GSU struct {
	state *State
	cart  *cartridge.Cartridge
	perm  logger.Permission

	// clock ratio in 16.16 fixed point. a ratio of 2.0 runs the GSU at
	// twice its normal speed
	ratio int64

	// R15 was written by the current instruction
	modified bool

	// cycles used by the current instruction
	cycles int

	// opcodes (combined with the alt mode) that have been reported
	reported [4][256]bool
}

// NewGSU is the preferred method of initialisation for the GSU type. The
// cartridge provides the ROM and the GSU RAM.
func NewGSU(perm logger.Permission, cart *cartridge.Cartridge) *GSU {
	gsu := &GSU{
		cart:  cart,
		perm:  perm,
		ratio: 1 << 16,
	}
	gsu.Reset()
	return gsu
}

// Reset the GSU to its power-on state.
func (gsu *GSU) Reset() {
	gsu.state = &State{
		Pipe: opNOP,
	}
	gsu.modified = false
}

// Snapshot creates a copy of the GSU state.
func (gsu *GSU) Snapshot() *State {
	n := *gsu.state
	return &n
}

// Plumb a previously created snapshot into the GSU.
func (gsu *GSU) Plumb(state *State) {
	n := *state
	gsu.state = &n
}

// SetClockRatio changes the speed of the GSU relative to its normal speed.
// Takes effect from the next call to Run().
func (gsu *GSU) SetClockRatio(ratio float64) {
	gsu.ratio = int64(ratio * 65536)
	if gsu.ratio < 1 {
		gsu.ratio = 1
	}
}

// Running returns true while the GSU is executing.
func (gsu *GSU) Running() bool {
	return gsu.state.SFR&FlagG == FlagG
}

// IRQ returns true while the GSU interrupt line to the CPU is asserted.
func (gsu *GSU) IRQ() bool {
	return gsu.state.SFR&FlagIRQ == FlagIRQ && gsu.state.CFGR&0x80 == 0x00
}

// Elapsed returns the number of GSU cycles executed since reset.
func (gsu *GSU) Elapsed() int64 {
	return gsu.state.Elapsed
}

// the number of master cycles per GSU cycle in 16.16 fixed point. the GSU
// runs at half the master clock unless CLSR selects the high speed.
func (gsu *GSU) scale() int64 {
	divider := int64(2)
	if gsu.state.CLSR&0x01 == 0x01 {
		divider = 1
	}
	return (divider << 32) / gsu.ratio
}

// Run the GSU for the number of master cycles. Cycles granted while the GSU
// is stopped are discarded.
func (gsu *GSU) Run(master int) {
	if !gsu.Running() {
		gsu.state.Credit = 0
		return
	}

	gsu.state.Credit += int64(master) << 16
	scale := gsu.scale()

	for gsu.state.Credit > 0 {
		cycles := gsu.step()
		gsu.state.Elapsed += int64(cycles)
		gsu.state.Credit -= int64(cycles) * scale

		if !gsu.Running() {
			gsu.state.Credit = 0
			return
		}
	}
}
