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

// Package ppu implements the register bank and memories of the SNES picture
// processing unit: VRAM, CGRAM and OAM, the mode 7 multiplier and the H/V
// counter latch.
//
// The PPU does not render. Only the behaviour visible to the CPU through the
// registers at $2100 to $213f is emulated. The timing of the PPU (scanlines,
// vertical blank, frames) is the responsibility of the timing package.
package ppu
