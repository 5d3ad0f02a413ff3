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

import "strings"

// StatusRegister is the special purpose register that stores the flags of
// the CPU. In emulation mode the M and X flags are always set and bit 4 of
// the value pushed to the stack is the break flag.
type StatusRegister struct {
	Negative         bool
	Overflow         bool
	MemorySelect     bool
	IndexSelect      bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}
	flag := func(v bool, set, clear rune) {
		if v {
			s.WriteRune(set)
		} else {
			s.WriteRune(clear)
		}
	}
	flag(sr.Negative, 'N', 'n')
	flag(sr.Overflow, 'V', 'v')
	flag(sr.MemorySelect, 'M', 'm')
	flag(sr.IndexSelect, 'X', 'x')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')
	return s.String()
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8
	if sr.Negative {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.MemorySelect {
		v |= 0x20
	}
	if sr.IndexSelect {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}
	return v
}

// Load sets the flags from a value.
func (sr *StatusRegister) Load(v uint8) {
	sr.Negative = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.MemorySelect = v&0x20 == 0x20
	sr.IndexSelect = v&0x10 == 0x10
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}

// SetNZ sets the negative and zero flags for a value of the given width.
func (sr *StatusRegister) SetNZ(v uint16, wide bool) {
	if wide {
		sr.Negative = v&0x8000 == 0x8000
		sr.Zero = v == 0
	} else {
		sr.Negative = v&0x80 == 0x80
		sr.Zero = v&0xff == 0
	}
}
