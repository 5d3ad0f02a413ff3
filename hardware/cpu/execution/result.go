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

package execution

import (
	"fmt"

	"github.com/snescore/snescore/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the 24 bit address of the instruction
	Address uint32

	// the definition of the instruction. nil if the CPU did not execute an
	// instruction (an interrupt or an idle slice)
	Defn *instructions.Definition

	// the operand of the instruction as it appears in program memory
	InstructionData uint32

	// number of bytes in the instruction
	ByteCount int

	// number of CPU cycles (bus accesses and internal operations)
	Cycles int

	// number of master cycles taken
	MasterCycles int

	// an indexed read crossed a page boundary
	PageFault bool

	// a branch instruction changed the program counter
	BranchSuccess bool

	// the name of the interrupt serviced before the instruction. empty if
	// no interrupt was serviced
	Interrupt string

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		if r.Interrupt != "" {
			return fmt.Sprintf("%06x\t[%s]\t[%d]", r.Address, r.Interrupt, r.Cycles)
		}
		return fmt.Sprintf("%06x\t[idle]\t[%d]", r.Address, r.Cycles)
	}

	var operand string
	switch r.ByteCount {
	case 2:
		operand = fmt.Sprintf("$%02x", r.InstructionData)
	case 3:
		operand = fmt.Sprintf("$%04x", r.InstructionData)
	case 4:
		operand = fmt.Sprintf("$%06x", r.InstructionData)
	}

	if f := r.Defn.AddressingMode.Format(); f == "" {
		operand = ""
	} else {
		operand = fmt.Sprintf(f, operand)
	}

	return fmt.Sprintf("%06x\t%s\t%s\t[%d]", r.Address, r.Defn.Operator, operand, r.Cycles)
}
