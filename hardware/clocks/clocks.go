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

// Package clocks defines the frequencies and frame geometry of the SNES
// master clock for the supported television regions.
package clocks

import "strings"

// Master clock frequencies in Hz.
const (
	NTSC = 21477272
	PAL  = 21281370
)

// AudioRate is the frequency of the APU sample clock in Hz.
const AudioRate = 32000

// MasterCyclesPerScanline is the length of a scanline in master cycles. The
// length is the same for both regions.
const MasterCyclesPerScanline = 1364

// MasterCyclesPerDot is the length of a dot. The H counter counts in dots.
const MasterCyclesPerDot = 4

// Access speeds for the three classes of memory region. The value is the
// number of master cycles an access takes.
const (
	FastAccess  = 6
	SlowAccess  = 8
	XSlowAccess = 12
)

// Spec describes the timing of a television region.
type Spec struct {
	ID          string
	MasterClock int
	Scanlines   int

	// the scanline on which the vertical blank begins
	VBlankLine int
}

// The two supported regions.
var (
	SpecNTSC = Spec{
		ID:          "NTSC",
		MasterClock: NTSC,
		Scanlines:   262,
		VBlankLine:  225,
	}

	SpecPAL = Spec{
		ID:          "PAL",
		MasterClock: PAL,
		Scanlines:   312,
		VBlankLine:  225,
	}
)

// MasterCyclesPerFrame returns the number of master cycles in one frame.
func (spec Spec) MasterCyclesPerFrame() int {
	return spec.Scanlines * MasterCyclesPerScanline
}

// IsPAL returns true if the specification is for a PAL region console.
func (spec Spec) IsPAL() bool {
	return spec.ID == SpecPAL.ID
}

// SpecFromID returns the Spec for the region ID. The ID is not case
// sensitive. Returns false if the ID is not recognised.
func SpecFromID(id string) (Spec, bool) {
	switch strings.ToUpper(id) {
	case "NTSC":
		return SpecNTSC, true
	case "PAL":
		return SpecPAL, true
	}
	return Spec{}, false
}
