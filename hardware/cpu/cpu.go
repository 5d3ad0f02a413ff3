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

package cpu

import (
	"math/rand"

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware/cpu/execution"
	"github.com/snescore/snescore/hardware/cpu/instructions"
	"github.com/snescore/snescore/hardware/cpu/registers"
	"github.com/snescore/snescore/hardware/memory/cpubus"
	"github.com/snescore/snescore/logger"
)

// IllegalOpcode is logged when the CPU encounters an opcode that is reserved
// on the 65C816. It is never returned as an error.
const IllegalOpcode = "cpu: illegal opcode %#02x at %06x"

// Interrupts is the source of the interrupt lines sampled by the CPU.
type Interrupts interface {
	// returns true if an NMI edge has occurred since the last call
	TakeNMI() bool

	// returns true while the IRQ line is asserted
	IRQ() bool
}

// State is the part of the CPU that is saved and restored.
type State struct {
	Registers registers.Registers
	Waiting   bool
	Stopped   bool
}

// CPU implements the 65C816 as found in the SNES.
type CPU struct {
	registers.Registers

	// the CPU has executed a WAI instruction and is waiting for an
	// interrupt
	Waiting bool

	// the CPU has executed a STP instruction. requires a Reset()
	Stopped bool

	mem   cpubus.Memory
	lines Interrupts
	perm  logger.Permission

	instructions *[256]instructions.Definition

	// result of the most recent call to ExecuteInstruction()
	LastResult execution.Result

	// opcodes that have been reported as illegal
	reported [256]bool

	// accounting for the current instruction
	cycles int
	master int
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The lines argument can be nil.
func NewCPU(perm logger.Permission, mem cpubus.Memory, lines Interrupts) *CPU {
	return &CPU{
		mem:          mem,
		lines:        lines,
		perm:         perm,
		instructions: instructions.GetDefinitions(),
	}
}

func (mc *CPU) String() string {
	return mc.Registers.String()
}

// Reset the CPU to its power-on state and load the program counter from the
// reset vector.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Waiting = false
	mc.Stopped = false

	mc.E = true
	mc.P.Load(0x34)
	mc.D = 0
	mc.DB = 0
	mc.PB = 0
	mc.S = 0x01ff
	mc.Enforce()

	lo := mc.mem.Read(uint32(cpubus.Reset))
	hi := mc.mem.Read(uint32(cpubus.Reset + 1))
	mc.PC = uint16(hi)<<8 | uint16(lo)
}

// Randomise the general purpose registers. Used to emulate the undefined
// state of the registers at power-on.
func (mc *CPU) Randomise(rnd *rand.Rand) {
	mc.A = uint16(rnd.Intn(0x10000))
	mc.X = uint16(rnd.Intn(0x100))
	mc.Y = uint16(rnd.Intn(0x100))
}

// Snapshot creates a copy of the CPU state.
func (mc *CPU) Snapshot() *State {
	return &State{
		Registers: mc.Registers,
		Waiting:   mc.Waiting,
		Stopped:   mc.Stopped,
	}
}

// Plumb a previously created snapshot into the CPU.
func (mc *CPU) Plumb(state *State) {
	mc.Registers = state.Registers
	mc.Waiting = state.Waiting
	mc.Stopped = state.Stopped
	mc.LastResult.Reset()
}

// SetPC sets the program bank and program counter.
func (mc *CPU) SetPC(bank uint8, pc uint16) {
	mc.PB = bank
	mc.PC = pc
}

// finalise the result of the current call to ExecuteInstruction() and
// return the number of master cycles used.
func (mc *CPU) finalise() int {
	mc.LastResult.Cycles = mc.cycles
	mc.LastResult.MasterCycles = mc.master
	mc.LastResult.Final = true
	return mc.master
}

// reportIllegal logs the illegal opcode the first time it is encountered.
func (mc *CPU) reportIllegal(opcode uint8) {
	if mc.reported[opcode] {
		return
	}
	mc.reported[opcode] = true
	logger.Log(mc.perm, "cpu", curated.Errorf(IllegalOpcode, opcode, mc.LastResult.Address))
}
