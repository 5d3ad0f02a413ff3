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

// Package instructions defines the 65C816 instruction set.
//
// Each opcode has a Definition describing its operator, addressing mode,
// length and base cycle count. The base cycle count is the number of CPU
// cycles taken in native mode with 8 bit accumulator and index registers,
// when the low byte of the direct page register is zero, no page boundary
// is crossed by an indexed read and a branch is not taken. Every bus access
// and every internal operation is one cycle.
//
// The number of master cycles an instruction takes depends on the memory
// regions it accesses and is determined by the CPU as it executes.
package instructions
