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

package cpu

// read from the bus, accounting for the cost of the access.
func (mc *CPU) read(addr uint32) uint8 {
	mc.cycles++
	mc.master += mc.mem.AccessCycles(addr)
	return mc.mem.Read(addr)
}

// write to the bus, accounting for the cost of the access.
func (mc *CPU) write(addr uint32, data uint8) {
	mc.cycles++
	mc.master += mc.mem.AccessCycles(addr)
	mc.mem.Write(addr, data)
}

// an internal operation.
func (mc *CPU) idle() {
	mc.cycles++
	mc.master += mc.mem.IdleCycles()
}

// fetch the next byte of the instruction stream. bytes after the opcode are
// recorded as the instruction data.
func (mc *CPU) fetch() uint8 {
	v := mc.read(mc.ProgramAddress())
	mc.PC++
	if mc.LastResult.ByteCount > 0 {
		mc.LastResult.InstructionData |= uint32(v) << (8 * (mc.LastResult.ByteCount - 1))
	}
	mc.LastResult.ByteCount++
	return v
}

func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch()
	hi := mc.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) fetch24() uint32 {
	lo := mc.fetch()
	hi := mc.fetch()
	bank := mc.fetch()
	return uint32(bank)<<16 | uint32(hi)<<8 | uint32(lo)
}

// push to the stack. the stack pointer stays in page one in emulation mode.
func (mc *CPU) push(data uint8) {
	mc.write(uint32(mc.S), data)
	if mc.E {
		mc.S = 0x0100 | (mc.S-1)&0x00ff
	} else {
		mc.S--
	}
}

func (mc *CPU) pull() uint8 {
	if mc.E {
		mc.S = 0x0100 | (mc.S+1)&0x00ff
	} else {
		mc.S++
	}
	return mc.read(uint32(mc.S))
}

func (mc *CPU) push16(data uint16) {
	mc.push(uint8(data >> 8))
	mc.push(uint8(data))
}

func (mc *CPU) pull16() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return uint16(hi)<<8 | uint16(lo)
}

// pushes a value of the given width.
func (mc *CPU) pushWidth(data uint16, narrow bool) {
	if narrow {
		mc.push(uint8(data))
	} else {
		mc.push16(data)
	}
}

func (mc *CPU) pullWidth(narrow bool) uint16 {
	if narrow {
		return uint16(mc.pull())
	}
	return mc.pull16()
}
