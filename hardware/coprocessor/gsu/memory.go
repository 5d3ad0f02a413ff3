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

package gsu

import "github.com/snescore/snescore/hardware/memory/cartridge/mapper"

// access costs in GSU cycles.
const (
	cacheCycles = 1
	romCycles   = 3
	ramCycles   = 3
)

// read a byte from the GSU's view of the cartridge.
func (gsu *GSU) read(bank uint8, addr uint16) uint8 {
	area, offset := gsu.cart.Map(bank, addr)
	switch area {
	case mapper.ROM:
		return gsu.cart.ROM[offset]
	case mapper.SRAM:
		return gsu.cart.SRAM[offset]
	}
	return 0
}

// the bank of the game pak RAM selected by RAMBR.
func (gsu *GSU) ramBank() uint8 {
	return 0x70 | gsu.state.RAMBR&0x01
}

func (gsu *GSU) readRAM(addr uint16) uint8 {
	return gsu.read(gsu.ramBank(), addr)
}

func (gsu *GSU) writeRAM(addr uint16, data uint8) {
	area, offset := gsu.cart.Map(gsu.ramBank(), addr)
	if area == mapper.SRAM {
		gsu.cart.WriteSRAM(offset, data)
	}
}

// read a word from RAM. the high byte is at the address with the lowest bit
// inverted.
func (gsu *GSU) readRAMWord(addr uint16) uint16 {
	gsu.state.RAMAddr = addr
	return uint16(gsu.readRAM(addr)) | uint16(gsu.readRAM(addr^1))<<8
}

func (gsu *GSU) writeRAMWord(addr uint16, data uint16) {
	gsu.state.RAMAddr = addr
	gsu.writeRAM(addr, uint8(data))
	gsu.writeRAM(addr^1, uint8(data>>8))
}

// reload the ROM buffer from the address in R14.
func (gsu *GSU) reloadROMBuffer() {
	gsu.state.ROMBuffer = gsu.read(gsu.state.ROMBR, gsu.state.R[14])
}

// the cache index for an address in the cache window. returns false if the
// address is outside the window.
func (gsu *GSU) cacheIndex(addr uint16) (uint16, bool) {
	if addr-gsu.state.CBR >= CacheSize {
		return 0, false
	}
	return addr & (CacheSize - 1), true
}

func (gsu *GSU) cacheByteValid(idx uint16) bool {
	return gsu.state.CacheValid[idx>>4]&(1<<(idx&0x0f)) != 0
}

func (gsu *GSU) setCacheByte(idx uint16, data uint8) {
	gsu.state.Cache[idx] = data
	gsu.state.CacheValid[idx>>4] |= 1 << (idx & 0x0f)
}

// flush the cache and move the window to the address.
func (gsu *GSU) flushCache(cbr uint16) {
	gsu.state.CBR = cbr & 0xfff0
	for i := range gsu.state.CacheValid {
		gsu.state.CacheValid[i] = 0
	}
}

// fetch an instruction byte. bytes inside the cache window are loaded into
// the cache the first time they are fetched.
func (gsu *GSU) fetch(addr uint16) (uint8, int) {
	if idx, ok := gsu.cacheIndex(addr); ok {
		if gsu.cacheByteValid(idx) {
			return gsu.state.Cache[idx], cacheCycles
		}
		v := gsu.read(gsu.state.PBR, addr)
		gsu.setCacheByte(idx, v)
		return v, romCycles
	}
	return gsu.read(gsu.state.PBR, addr), romCycles
}
