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

// Package testrom builds cartridge images for use in tests. The images have a
// valid header and checksum for the chosen layout.
package testrom

import "strings"

// Layout of the image.
type Layout int

// List of layouts.
const (
	LoROM Layout = iota
	HiROM
	ExHiROM
	Banked
	SuperFX
)

// Interrupt vectors in bank zero.
const (
	VectorCOP     = 0xffe4
	VectorBRK     = 0xffe6
	VectorNMI     = 0xffea
	VectorIRQ     = 0xffee
	VectorEmuCOP  = 0xfff4
	VectorEmuNMI  = 0xfffa
	VectorReset   = 0xfffc
	VectorEmuIRQ  = 0xfffe
	DefaultOrigin = 0x8000
)

// Builder assembles a cartridge image.
type Builder struct {
	Layout Layout
	Data   []uint8

	Title   string
	RAMSize uint8
	Battery bool
	Region  uint8
	Version uint8

	// expansion RAM size for SuperFX layouts
	ExpansionRAM uint8
}

// NewBuilder creates an image of the given size filled with zero. The reset
// vector points to DefaultOrigin.
func NewBuilder(layout Layout, size int) *Builder {
	b := &Builder{
		Layout: layout,
		Data:   make([]uint8, size),
		Title:  "SNESCORE TEST",
	}
	b.SetVector(VectorReset, DefaultOrigin)
	return b
}

// Offset returns the offset in the image of a bus address. Only addresses in
// the upper half of banks $00 to $3f and $80 to $bf, and in banks $c0 and
// upwards are supported.
func (b *Builder) Offset(addr uint32) int {
	bank := int(addr>>16) & 0xff
	a := int(addr & 0xffff)
	switch b.Layout {
	case HiROM:
		return (bank&0x3f)<<16 | a
	case ExHiROM:
		o := (bank&0x3f)<<16 | a
		if bank < 0x80 {
			o += 0x400000
		}
		return o
	case Banked:
		if bank >= 0xc0 {
			return (bank-0xc0)<<16 | a
		}
	}
	return (bank&0x7f)*0x8000 + (a & 0x7fff)
}

// Place copies data into the image at the bus address.
func (b *Builder) Place(addr uint32, data []uint8) {
	copy(b.Data[b.Offset(addr):], data)
}

// SetVector sets a bank zero vector to the address.
func (b *Builder) SetVector(vector uint16, addr uint16) {
	o := b.Offset(uint32(vector))
	b.Data[o] = uint8(addr)
	b.Data[o+1] = uint8(addr >> 8)
}

func (b *Builder) headerOffset() int {
	switch b.Layout {
	case HiROM:
		return 0xffc0
	case ExHiROM:
		return 0x40ffc0
	}
	return 0x7fc0
}

// Build writes the header and checksum and returns the image.
func (b *Builder) Build() []uint8 {
	h := b.Data[b.headerOffset():]

	title := b.Title
	if len(title) > 21 {
		title = title[:21]
	}
	copy(h, title+strings.Repeat(" ", 21-len(title)))

	switch b.Layout {
	case LoROM:
		h[0x15] = 0x20
	case HiROM:
		h[0x15] = 0x21
	case ExHiROM:
		h[0x15] = 0x25
	case Banked:
		h[0x15] = 0x32
	case SuperFX:
		h[0x15] = 0x20
	}

	var chip uint8
	switch {
	case b.Layout == SuperFX && b.Battery:
		chip = 0x15
	case b.Layout == SuperFX:
		chip = 0x13
	case b.Layout == Banked && b.Battery:
		chip = 0x45
	case b.Layout == Banked:
		chip = 0x43
	case b.Battery && b.RAMSize > 0:
		chip = 0x02
	case b.RAMSize > 0:
		chip = 0x01
	}
	h[0x16] = chip

	var romSize uint8
	for 1024<<romSize < len(b.Data) {
		romSize++
	}
	h[0x17] = romSize
	h[0x18] = b.RAMSize
	h[0x19] = b.Region
	h[0x1b] = b.Version

	if b.Layout == SuperFX {
		h[0x1a] = 0x33
		b.Data[b.headerOffset()-0x03] = b.ExpansionRAM
	}

	// checksum is calculated with the complement and checksum fields
	// holding values that sum to 0x1fe
	h[0x1c], h[0x1d], h[0x1e], h[0x1f] = 0xff, 0xff, 0x00, 0x00
	var sum uint16
	for _, v := range b.Data {
		sum += uint16(v)
	}
	h[0x1c] = uint8(^sum)
	h[0x1d] = uint8(^sum >> 8)
	h[0x1e] = uint8(sum)
	h[0x1f] = uint8(sum >> 8)

	return b.Data
}
