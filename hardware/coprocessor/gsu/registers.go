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

// version returned by VCR.
const version = 0x04

// the CPU's view of the cache.
const (
	cacheOrigin = 0x3100
	cacheMemtop = 0x32ff
)

// ReadRegister implements the memory.Coprocessor interface.
func (gsu *GSU) ReadRegister(addr uint16) (uint8, bool) {
	if addr >= cacheOrigin && addr <= cacheMemtop {
		return gsu.state.Cache[(addr-cacheOrigin+gsu.state.CBR)&(CacheSize-1)], true
	}

	if addr < 0x3020 {
		r := gsu.state.R[(addr>>1)&0x0f]
		if addr&0x01 == 0x01 {
			return uint8(r >> 8), true
		}
		return uint8(r), true
	}

	switch addr {
	case 0x3030:
		return uint8(gsu.state.SFR), true
	case 0x3031:
		// reading the high byte acknowledges the interrupt
		v := uint8(gsu.state.SFR >> 8)
		gsu.state.SFR &^= FlagIRQ
		return v, true
	case 0x3034:
		return gsu.state.PBR, true
	case 0x3036:
		return gsu.state.ROMBR, true
	case 0x303b:
		return version, true
	case 0x303c:
		return gsu.state.RAMBR, true
	case 0x303e:
		return uint8(gsu.state.CBR), true
	case 0x303f:
		return uint8(gsu.state.CBR >> 8), true
	}

	return 0, false
}

// WriteRegister implements the memory.Coprocessor interface.
func (gsu *GSU) WriteRegister(addr uint16, data uint8) {
	if addr >= cacheOrigin && addr <= cacheMemtop {
		gsu.setCacheByte((addr-cacheOrigin+gsu.state.CBR)&(CacheSize-1), data)
		return
	}

	if addr < 0x3020 {
		n := (addr >> 1) & 0x0f
		r := gsu.state.R[n]
		if addr&0x01 == 0x01 {
			r = r&0x00ff | uint16(data)<<8
		} else {
			r = r&0xff00 | uint16(data)
		}
		gsu.state.R[n] = r

		switch n {
		case 14:
			gsu.reloadROMBuffer()
		case 15:
			// writing the high byte of R15 starts the GSU
			if addr&0x01 == 0x01 {
				gsu.start()
			}
		}
		return
	}

	switch addr {
	case 0x3030:
		gsu.state.SFR = gsu.state.SFR&0xff00 | uint16(data)
		if gsu.state.SFR&FlagG == 0 {
			gsu.state.Pipe = opNOP
			gsu.flushCache(0)
		}
	case 0x3031:
		gsu.state.SFR = gsu.state.SFR&0x00ff | uint16(data)<<8
	case 0x3033:
		gsu.state.BRAMR = data & 0x01
	case 0x3034:
		gsu.state.PBR = data & 0x7f
	case 0x3037:
		gsu.state.CFGR = data
	case 0x3038:
		gsu.state.SCBR = data
	case 0x3039:
		gsu.state.CLSR = data & 0x01
	case 0x303a:
		gsu.state.SCMR = data
	}
}

func (gsu *GSU) start() {
	gsu.state.SFR |= FlagG
}
