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

// Package registers implements the registers of the 65C816 and the
// arithmetic that operates on them.
//
// The width of the accumulator and the index registers depends on the M and
// X flags of the status register and on the emulation flag. The Registers
// type stores every register at its full width. Operations that care about
// the width are told it explicitly.
package registers
