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

package registers

import "fmt"

// Registers of the 65C816.
type Registers struct {
	// the 16 bit accumulator. the high byte is the B accumulator when the
	// accumulator is 8 bits wide
	A uint16

	X uint16
	Y uint16

	// stack pointer. always in page one in emulation mode
	S uint16

	// direct page register
	D uint16

	// data bank and program bank
	DB uint8
	PB uint8

	PC uint16

	P StatusRegister

	// emulation mode flag
	E bool
}

func (r Registers) String() string {
	e := "n"
	if r.E {
		e = "e"
	}
	return fmt.Sprintf("PC=%02x:%04x A=%04x X=%04x Y=%04x S=%04x D=%04x DB=%02x P=%s %s",
		r.PB, r.PC, r.A, r.X, r.Y, r.S, r.D, r.DB, r.P, e)
}

// Accumulator8 returns true if the accumulator is 8 bits wide.
func (r Registers) Accumulator8() bool {
	return r.E || r.P.MemorySelect
}

// Index8 returns true if the index registers are 8 bits wide.
func (r Registers) Index8() bool {
	return r.E || r.P.IndexSelect
}

// ProgramAddress returns the 24 bit address of the program counter.
func (r Registers) ProgramAddress() uint32 {
	return uint32(r.PB)<<16 | uint32(r.PC)
}

// Enforce the register constraints of the current mode. Must be called after
// anything that changes the emulation flag or the X and M flags.
func (r *Registers) Enforce() {
	if r.E {
		r.P.MemorySelect = true
		r.P.IndexSelect = true
		r.S = 0x0100 | r.S&0x00ff
	}
	if r.P.IndexSelect {
		r.X &= 0x00ff
		r.Y &= 0x00ff
	}
}

// SetA sets the accumulator honouring its width. In 8 bit mode only the low
// byte is changed.
func (r *Registers) SetA(v uint16) {
	if r.Accumulator8() {
		r.A = r.A&0xff00 | v&0x00ff
	} else {
		r.A = v
	}
}

// GetA returns the accumulator at its current width.
func (r Registers) GetA() uint16 {
	if r.Accumulator8() {
		return r.A & 0x00ff
	}
	return r.A
}

// SetIndex returns the value truncated to the current index width.
func (r Registers) SetIndex(v uint16) uint16 {
	if r.Index8() {
		return v & 0x00ff
	}
	return v
}
