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

package cartridge

import (
	"fmt"
	"strings"

	"github.com/snescore/snescore/hardware/memory/cartridge/mapper"
)

// the size of a copier header that some dumps are prefixed with.
const copierHeaderSize = 512

// header locations for the three candidate layouts.
const (
	loROMHeader   = 0x007fc0
	hiROMHeader   = 0x00ffc0
	exHiROMHeader = 0x40ffc0
)

// offsets of fields from the start of the header.
const (
	hdrTitle       = 0x00
	hdrMapMode     = 0x15
	hdrChipset     = 0x16
	hdrROMSize     = 0x17
	hdrRAMSize     = 0x18
	hdrRegion      = 0x19
	hdrDeveloper   = 0x1a
	hdrVersion     = 0x1b
	hdrComplement  = 0x1c
	hdrChecksum    = 0x1e
	hdrResetVector = 0x3c

	// the extended header precedes the header. the expansion RAM field is
	// only valid if the developer ID is 0x33
	hdrExpansionRAM = -0x03

	titleLen = 21

	extendedHeaderID = 0x33
)

// Header contains the information in the cartridge header.
type Header struct {
	// offset of the header in the ROM data
	Offset int

	Title        string
	MapMode      uint8
	Chipset      uint8
	ROMSize      uint8
	RAMSize      uint8
	ExpansionRAM uint8
	Region       uint8
	Developer    uint8
	Version      uint8
	Complement   uint16
	Checksum     uint16
	ResetVector  uint16
}

func (h Header) String() string {
	return fmt.Sprintf("%s [map=%#02x chip=%#02x rom=%#02x ram=%#02x region=%#02x v1.%d]",
		h.Title, h.MapMode, h.Chipset, h.ROMSize, h.RAMSize, h.Region, h.Version)
}

// FastROM returns true if the map mode indicates that the ROM can be
// accessed at the fast speed.
func (h Header) FastROM() bool {
	return h.MapMode&0x10 == 0x10
}

// PAL returns true if the destination code indicates a PAL region console.
func (h Header) PAL() bool {
	switch h.Region {
	case 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x11, 0x12:
		return true
	}
	return false
}

// readHeader decodes the header at the offset. Returns false if the data is
// too short to contain the header.
func readHeader(data []uint8, offset int) (Header, bool) {
	if offset+hdrResetVector+2 > len(data) {
		return Header{}, false
	}

	h := Header{Offset: offset}
	b := data[offset:]

	var title strings.Builder
	for _, c := range b[hdrTitle : hdrTitle+titleLen] {
		if c < 0x20 || c > 0x7e {
			c = ' '
		}
		title.WriteByte(c)
	}
	h.Title = strings.TrimSpace(title.String())

	h.MapMode = b[hdrMapMode]
	h.Chipset = b[hdrChipset]
	h.ROMSize = b[hdrROMSize]
	h.RAMSize = b[hdrRAMSize]
	h.Region = b[hdrRegion]
	h.Developer = b[hdrDeveloper]
	h.Version = b[hdrVersion]
	h.Complement = uint16(b[hdrComplement]) | uint16(b[hdrComplement+1])<<8
	h.Checksum = uint16(b[hdrChecksum]) | uint16(b[hdrChecksum+1])<<8
	h.ResetVector = uint16(b[hdrResetVector]) | uint16(b[hdrResetVector+1])<<8

	if h.Developer == extendedHeaderID {
		h.ExpansionRAM = data[offset+hdrExpansionRAM]
	}

	return h, true
}

// plausible first instructions of a reset routine.
var resetOpcodes = map[uint8]bool{
	0x78: true, // SEI
	0x18: true, // CLC
	0x38: true, // SEC
	0x9c: true, // STZ abs
	0x4c: true, // JMP abs
	0x5c: true, // JML long
	0xc2: true, // REP
	0xe2: true, // SEP
	0xa2: true, // LDX #
	0xa9: true, // LDA #
	0x8d: true, // STA abs
	0xfb: true, // XCE
	0xd8: true, // CLD
}

// score the likelihood that the header is the genuine header for the
// candidate mapper. a higher value is more likely.
func (h Header) score(data []uint8, candidate mapper.Kind) int {
	var s int

	if h.Checksum^h.Complement == 0xffff {
		s += 4
	}

	if h.MapMode&0xe0 == 0x20 {
		switch h.MapMode & 0x0f {
		case 0x00, 0x02, 0x03:
			if candidate == mapper.LoROM {
				s += 2
			}
		case 0x01:
			if candidate == mapper.HiROM {
				s += 2
			}
		case 0x05:
			if candidate == mapper.ExHiROM {
				s += 2
			}
		}
	}

	if h.ResetVector >= 0x8000 {
		s++

		// the reset vector is a bank zero address. find the ROM offset in the
		// way the candidate would map it
		var o int
		switch candidate {
		case mapper.LoROM:
			o = int(h.ResetVector) - 0x8000
		case mapper.HiROM:
			o = int(h.ResetVector)
		case mapper.ExHiROM:
			o = 0x400000 + int(h.ResetVector)
		}
		if o < len(data) && resetOpcodes[data[o]] {
			s++
		}
	}

	if h.ROMSize >= 0x08 && h.ROMSize <= 0x0d {
		s++
	}

	if h.RAMSize <= 0x08 {
		s++
	}

	if len(h.Title) > 0 {
		s++
	}

	return s
}

// findHeader scores each candidate header and returns the best. LoROM is
// favoured in the case of a tie.
func findHeader(data []uint8) (Header, mapper.Kind, bool) {
	candidates := []struct {
		offset int
		kind   mapper.Kind
	}{
		{loROMHeader, mapper.LoROM},
		{hiROMHeader, mapper.HiROM},
		{exHiROMHeader, mapper.ExHiROM},
	}

	var best Header
	var bestKind mapper.Kind
	bestScore := -1

	for _, c := range candidates {
		h, ok := readHeader(data, c.offset)
		if !ok {
			continue
		}
		if s := h.score(data, c.kind); s > bestScore {
			best = h
			bestKind = c.kind
			bestScore = s
		}
	}

	return best, bestKind, bestScore >= 0
}
