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
	"github.com/snescore/snescore/hardware/memory/cartridge/mapper"
)

// mirror reduces an offset to the size of the data. sizes that are not a
// power of two are mirrored in the way the hardware does it: the largest
// power of two portion first and then the remainder.
func mirror(offset uint32, size uint32) uint32 {
	if size == 0 {
		return 0
	}
	var base uint32
	mask := uint32(1 << 24)
	for offset >= size {
		for offset&mask == 0 {
			mask >>= 1
		}
		offset -= mask
		if size > mask {
			size -= mask
			base += mask
		}
		mask >>= 1
	}
	return base + offset
}

// Map decodes a cartridge address. The system area of the address space
// (WRAM, registers) is handled by the memory package and addresses in that
// area should not be passed to this function, with the exception of the
// $6000 to $7fff range in the system banks.
func (cart *Cartridge) Map(bank uint8, addr uint16) (mapper.Area, uint32) {
	switch cart.Kind {
	case mapper.LoROM:
		return cart.mapLoROM(bank, addr)
	case mapper.HiROM:
		return cart.mapHiROM(bank, addr)
	case mapper.ExHiROM:
		return cart.mapExHiROM(bank, addr)
	case mapper.Banked:
		return cart.mapBanked(bank, addr)
	case mapper.SuperFX:
		return cart.mapSuperFX(bank, addr)
	}
	panic("cartridge: unhandled mapper kind")
}

func (cart *Cartridge) rom(offset uint32) (mapper.Area, uint32) {
	return mapper.ROM, mirror(offset, uint32(len(cart.ROM)))
}

func (cart *Cartridge) sram(offset uint32) (mapper.Area, uint32) {
	if len(cart.SRAM) == 0 {
		return mapper.Unmapped, 0
	}
	return mapper.SRAM, offset & uint32(len(cart.SRAM)-1)
}

func (cart *Cartridge) mapLoROM(bank uint8, addr uint16) (mapper.Area, uint32) {
	lb := bank & 0x7f
	if lb >= 0x70 && addr < 0x8000 {
		return cart.sram(uint32(lb&0x0f)*0x8000 + uint32(addr))
	}
	if addr >= 0x8000 || lb >= 0x40 {
		return cart.rom(uint32(lb)*0x8000 + uint32(addr&0x7fff))
	}
	return mapper.Unmapped, 0
}

func (cart *Cartridge) mapHiROM(bank uint8, addr uint16) (mapper.Area, uint32) {
	lb := bank & 0x7f
	if lb >= 0x40 {
		return cart.rom(uint32(lb&0x3f)<<16 | uint32(addr))
	}
	if addr >= 0x8000 {
		return cart.rom(uint32(lb)<<16 | uint32(addr))
	}
	if addr >= 0x6000 && lb >= 0x20 {
		return cart.sram(uint32(lb&0x1f)*0x2000 + uint32(addr-0x6000))
	}
	return mapper.Unmapped, 0
}

func (cart *Cartridge) mapExHiROM(bank uint8, addr uint16) (mapper.Area, uint32) {
	var base uint32
	if bank&0x80 == 0x00 {
		base = 0x400000
	}
	lb := bank & 0x7f
	if lb >= 0x40 {
		return cart.rom(base + (uint32(lb&0x3f)<<16 | uint32(addr)))
	}
	if addr >= 0x8000 {
		return cart.rom(base + (uint32(lb)<<16 | uint32(addr)))
	}
	if addr >= 0x6000 && lb >= 0x20 {
		return cart.sram(uint32(lb&0x1f)*0x2000 + uint32(addr-0x6000))
	}
	return mapper.Unmapped, 0
}

func (cart *Cartridge) mapBanked(bank uint8, addr uint16) (mapper.Area, uint32) {
	if bank >= 0xc0 {
		w := (bank - 0xc0) >> 4
		return cart.rom(uint32(cart.state.Windows[w])*mapper.WindowSize + (uint32(bank&0x0f)<<16 | uint32(addr)))
	}
	return cart.mapLoROM(bank, addr)
}

func (cart *Cartridge) mapSuperFX(bank uint8, addr uint16) (mapper.Area, uint32) {
	lb := bank & 0x7f
	switch {
	case lb < 0x40:
		if addr >= 0x8000 {
			return cart.rom(uint32(lb)*0x8000 + uint32(addr&0x7fff))
		}
		if addr >= 0x6000 {
			return cart.sram(uint32(addr - 0x6000))
		}
	case lb < 0x60:
		return cart.rom(uint32(lb-0x40)<<16 | uint32(addr))
	case lb == 0x70 || lb == 0x71:
		return cart.sram(uint32(lb&0x01)<<16 | uint32(addr))
	}
	return mapper.Unmapped, 0
}

// ROMOffset returns the offset into the ROM for a bus address. Returns false
// if the bus address is not mapped to ROM.
func (cart *Cartridge) ROMOffset(addr uint32) (uint32, bool) {
	a, o := cart.Map(uint8(addr>>16), uint16(addr))
	return o, a == mapper.ROM
}
