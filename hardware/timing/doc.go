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

// Package timing models the passage of master clock cycles through the
// scanline and frame structure of the television signal, and the 32kHz
// sample clock of the APU.
//
// Advance() is split invariant: advancing by a+b cycles produces exactly the
// same events, in the same order, and leaves exactly the same state as
// advancing by a and then by b. Events that fall on the same master cycle
// are emitted in the order
//
//	ScanlineBoundary < VBlankStart < FrameComplete < AudioSampleReady
//
// The interrupt sources that depend on the beam position (NMI at the start
// of the vertical blank, the H/V timer IRQ) are also handled by this
// package, along with the CPU registers that control and report them.
package timing
