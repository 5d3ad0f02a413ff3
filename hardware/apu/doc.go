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

// Package apu implements the four communication ports between the CPU and
// the sound processor.
//
// The SPC700 and the DSP are not emulated. The ports reproduce the handshake
// of the sound processor's boot ROM closely enough that a game can upload
// its sound driver: after reset the ports read $AA and $BB, and once the CPU
// has kicked the transfer by writing $CC the ports echo whatever the CPU
// writes. Samples produced by the APU are silence.
package apu
