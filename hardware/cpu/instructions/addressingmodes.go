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

// AddressingMode describes the method data for the instruction is located.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator

	// immediate data the width of the accumulator
	Immediate

	// immediate data the width of the index registers
	ImmediateIndex

	// immediate data that is always one byte (REP, SEP, BRK, COP, WDM)
	Immediate8

	Relative
	RelativeLong

	Direct
	DirectX
	DirectY
	DirectIndirect
	DirectIndirectLong
	DirectXIndirect
	DirectIndirectY
	DirectIndirectLongY

	Absolute
	AbsoluteX
	AbsoluteY
	AbsoluteLong
	AbsoluteLongX
	AbsoluteIndirect
	AbsoluteIndirectLong
	AbsoluteXIndirect

	StackRelative
	StackRelativeIndirectY

	BlockMove
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case ImmediateIndex:
		return "ImmediateIndex"
	case Immediate8:
		return "Immediate8"
	case Relative:
		return "Relative"
	case RelativeLong:
		return "RelativeLong"
	case Direct:
		return "Direct"
	case DirectX:
		return "DirectX"
	case DirectY:
		return "DirectY"
	case DirectIndirect:
		return "DirectIndirect"
	case DirectIndirectLong:
		return "DirectIndirectLong"
	case DirectXIndirect:
		return "DirectXIndirect"
	case DirectIndirectY:
		return "DirectIndirectY"
	case DirectIndirectLongY:
		return "DirectIndirectLongY"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case AbsoluteLong:
		return "AbsoluteLong"
	case AbsoluteLongX:
		return "AbsoluteLongX"
	case AbsoluteIndirect:
		return "AbsoluteIndirect"
	case AbsoluteIndirectLong:
		return "AbsoluteIndirectLong"
	case AbsoluteXIndirect:
		return "AbsoluteXIndirect"
	case StackRelative:
		return "StackRelative"
	case StackRelativeIndirectY:
		return "StackRelativeIndirectY"
	case BlockMove:
		return "BlockMove"
	}
	return "unknown addressing mode"
}

// Format returns a template for the operand of an instruction using the
// addressing mode. The template has a single %s verb for the operand value.
func (m AddressingMode) Format() string {
	switch m {
	case Accumulator:
		return "A"
	case Immediate, ImmediateIndex, Immediate8:
		return "#%s"
	case DirectX, AbsoluteX, AbsoluteLongX:
		return "%s,X"
	case DirectY, AbsoluteY:
		return "%s,Y"
	case DirectIndirect, AbsoluteIndirect:
		return "(%s)"
	case DirectIndirectLong, AbsoluteIndirectLong:
		return "[%s]"
	case DirectXIndirect, AbsoluteXIndirect:
		return "(%s,X)"
	case DirectIndirectY:
		return "(%s),Y"
	case DirectIndirectLongY:
		return "[%s],Y"
	case StackRelative:
		return "%s,S"
	case StackRelativeIndirectY:
		return "(%s,S),Y"
	case Implied:
		return ""
	}
	return "%s"
}
