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

// Package hardware is the base package for the SNES emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The SNES type is the root of the emulation and contains external
// references to all the SNES sub-systems. From here, the emulation can
// either be started to run continuously (with optional callback to check for
// continuation); or it can be stepped one instruction at a time.
//
// Stepping executes one CPU instruction, grants the coprocessor its share of
// the master cycles used, and then advances the timing model by the same
// number of cycles. Interrupts raised by the timing model are seen by the CPU
// at the start of the next instruction.
//
// The state of the machine can be saved and loaded at instruction
// boundaries. See the Save(), Load(), SaveSRAM() and LoadSRAM() functions.
package hardware
