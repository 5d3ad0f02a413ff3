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

// Package gsu implements the SuperFX graphics support unit found in some
// cartridges.
//
// The GSU is a 16 bit RISC processor with sixteen general purpose registers,
// a 512 byte instruction cache and access to the cartridge ROM and its own
// RAM. The CPU communicates with it through a register window at $3000 to
// $34ff: it sets up the registers, writes the high byte of R15 to start the
// GSU and is interrupted when the GSU executes STOP.
//
// The GSU is stepped by the scheduler with Run(), which is given a number of
// master cycles. The cost of each GSU instruction in master cycles depends on
// the clock speed selected by the CLSR register and on the clock ratio given
// to SetClockRatio(). The ratio is not part of the GSU state.
//
// The bitmap instructions PLOT and RPIX are not emulated. They are logged the
// first time they are encountered and otherwise do nothing beyond advancing
// the plot position.
package gsu
