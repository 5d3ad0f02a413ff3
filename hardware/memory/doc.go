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

// Package memory implements the SNES address space as seen by the CPU.
//
// A 24 bit address is decoded into one of the memory areas of the console:
// work RAM, the cartridge (ROM, SRAM and any cartridge registers), the PPU
// and APU registers on the B bus, the system registers of the CPU package
// and the register window of a coprocessor. Addresses with nothing behind
// them return the last value seen on the data bus.
//
// The system banks ($00-$3f and $80-$bf) are laid out as follows
//
//	$0000-$1fff    WRAM (first 8k mirrored)
//	$2100-$213f    PPU registers
//	$2140-$217f    APU ports
//	$2180-$2183    WRAM port
//	$3000-$34ff    coprocessor window (SuperFX cartridges)
//	$4016-$4017    joypad serial ports
//	$4200-$421f    system registers
//	$4300-$437f    DMA channels
//	$4800-$48ff    cartridge registers
//	$6000-$ffff    cartridge (mapper dependent)
//
// Banks $7e and $7f are the full 128k of WRAM. All other banks are decoded
// by the cartridge mapper.
//
// Each access takes a number of master cycles that depends on the region of
// the address space. AccessCycles() reports this. Writes to MDMAEN run the
// general purpose DMA immediately. The cycles taken by the transfer are
// collected with DrainStall().
//
// Cheats are applied as an overlay on reads. The overlay is keyed by the
// decoded location rather than the bus address so that a patch applies to
// every mirror of the location.
package memory
