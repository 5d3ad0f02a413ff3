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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode

	// length of the instruction with 8 bit registers
	Bytes int

	// base number of CPU cycles. see package documentation for the
	// conditions under which the base count applies
	Cycles int

	Effect Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a conditional or unconditional
// branch.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative || (defn.AddressingMode == RelativeLong && defn.Effect == Flow)
}

// Length returns the number of bytes in the instruction for the given
// accumulator and index register widths.
func (defn Definition) Length(accumulator8 bool, index8 bool) int {
	switch defn.AddressingMode {
	case Immediate:
		if !accumulator8 {
			return defn.Bytes + 1
		}
	case ImmediateIndex:
		if !index8 {
			return defn.Bytes + 1
		}
	}
	return defn.Bytes
}

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode.
func GetDefinitions() *[256]Definition {
	return &definitions
}
