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

// Package cpu emulates the 65C816 CPU found in the SNES. The bulk of the work
// is done by the ExecuteInstruction() function, which executes one complete
// instruction and returns the number of master cycles it took.
//
// Every bus access is made through the cpubus.Memory interface, which also
// reports how many master cycles the access takes. The cost of an
// instruction is therefore the sum of its accesses plus one fast cycle for
// each internal operation. This means that the same instruction can take a
// different number of master cycles depending on where its operands are in
// the address space.
//
// Interrupts are sampled at the start of each call to ExecuteInstruction().
// If an interrupt is serviced then no instruction is executed in that call.
// NMI is edge triggered and is always serviced. IRQ is level triggered and
// is serviced unless the interrupt disable flag is set.
//
// The WDM opcode is treated as an illegal instruction. It is executed as a
// two byte no-op and reported to the log the first time it is encountered.
package cpu
