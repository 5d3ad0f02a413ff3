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
	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware/cpu/instructions"
)

// Validity error patterns.
const (
	NotFinal    = "execution: not checking an unfinalised result"
	BadLength   = "execution: %s has length %d, expected %d or %d"
	BadCycles   = "execution: %s took %d cycles, fewer than the minimum of %d"
	UnexpPage   = "execution: unexpected page fault for %s"
	UnexpBranch = "execution: %s reports a branch"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
//
// The number of cycles can exceed the base count of the instruction for
// several reasons (wide registers, direct page alignment, page faults,
// branches) so only a lower bound is checked.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(NotFinal)
	}

	if r.Defn == nil {
		return nil
	}

	if r.ByteCount != r.Defn.Bytes && r.ByteCount != r.Defn.Bytes+1 {
		return curated.Errorf(BadLength, r.Defn.Operator, r.ByteCount, r.Defn.Bytes, r.Defn.Bytes+1)
	}

	// the base count of the interrupt instructions is for native mode. in
	// emulation mode they take one cycle fewer
	minCycles := r.Defn.Cycles
	if r.Defn.Operator == instructions.Brk || r.Defn.Operator == instructions.Cop || r.Defn.Operator == instructions.Rti {
		minCycles--
	}
	if r.Cycles < minCycles {
		return curated.Errorf(BadCycles, r.Defn.Operator, r.Cycles, minCycles)
	}

	if r.PageFault {
		switch r.Defn.AddressingMode {
		case instructions.AbsoluteX, instructions.AbsoluteY, instructions.DirectIndirectY, instructions.Relative:
		default:
			return curated.Errorf(UnexpPage, r.Defn.Operator)
		}
	}

	if r.BranchSuccess && !r.Defn.IsBranch() {
		return curated.Errorf(UnexpBranch, r.Defn.Operator)
	}

	return nil
}
