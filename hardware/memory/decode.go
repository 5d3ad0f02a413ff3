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

package memory

import "github.com/snescore/snescore/hardware/memory/cartridge/mapper"

type region int

const (
	regionOpenBus region = iota
	regionWRAM
	regionROM
	regionSRAM
	regionPPU
	regionAPU
	regionWRAMPort
	regionJoypad
	regionSystem
	regionDMA
	regionCartRegister
	regionCoprocessor
)

// location is a decoded address. for memory regions the offset is the index
// into the memory. for register regions it is the 16 bit address.
type location struct {
	region region
	offset uint32
}

func (bus *Bus) decode(bank uint8, addr uint16) location {
	if bank == 0x7e || bank == 0x7f {
		return location{region: regionWRAM, offset: uint32(bank&0x01)<<16 | uint32(addr)}
	}

	if bank&0x40 == 0x00 {
		switch {
		case addr < 0x2000:
			return location{region: regionWRAM, offset: uint32(addr)}
		case addr < 0x2100:
			return location{}
		case addr < 0x2140:
			return location{region: regionPPU, offset: uint32(addr)}
		case addr < 0x2180:
			return location{region: regionAPU, offset: uint32(addr)}
		case addr < 0x2184:
			return location{region: regionWRAMPort, offset: uint32(addr)}
		case addr < 0x3000:
			return location{}
		case addr < 0x3500:
			if bus.cop != nil {
				return location{region: regionCoprocessor, offset: uint32(addr)}
			}
			return location{}
		case addr < 0x4000:
			return location{}
		case addr == 0x4016 || addr == 0x4017:
			return location{region: regionJoypad, offset: uint32(addr)}
		case addr < 0x4200:
			return location{}
		case addr < 0x4220:
			return location{region: regionSystem, offset: uint32(addr)}
		case addr < 0x4300:
			return location{}
		case addr < 0x4380:
			return location{region: regionDMA, offset: uint32(addr)}
		case addr < 0x4800:
			return location{}
		case addr < 0x4900:
			if bus.cart != nil {
				return location{region: regionCartRegister, offset: uint32(addr)}
			}
			return location{}
		case addr < 0x6000:
			return location{}
		}
	}

	if bus.cart == nil {
		return location{}
	}

	area, offset := bus.cart.Map(bank, addr)
	switch area {
	case mapper.ROM:
		return location{region: regionROM, offset: offset}
	case mapper.SRAM:
		return location{region: regionSRAM, offset: offset}
	}
	return location{}
}
