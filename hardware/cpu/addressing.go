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

import "github.com/snescore/snescore/hardware/cpu/instructions"

// address is the location of an operand. some locations wrap at the bank
// boundary when a 16 bit value is accessed; others carry into the next bank.
type address struct {
	addr uint32
	wrap bool
}

func (a address) next() address {
	if a.wrap {
		return address{addr: a.addr&0xff0000 | uint32(uint16(a.addr)+1), wrap: true}
	}
	return address{addr: (a.addr + 1) & 0xffffff}
}

func bankZero(addr uint16) address {
	return address{addr: uint32(addr), wrap: true}
}

// read a value of the given width from the address.
func (mc *CPU) readData(a address, narrow bool) uint16 {
	lo := mc.read(a.addr)
	if narrow {
		return uint16(lo)
	}
	hi := mc.read(a.next().addr)
	return uint16(hi)<<8 | uint16(lo)
}

// write a value of the given width to the address.
func (mc *CPU) writeData(a address, data uint16, narrow bool) {
	mc.write(a.addr, uint8(data))
	if !narrow {
		mc.write(a.next().addr, uint8(data>>8))
	}
}

// the direct page costs an extra cycle when it is not aligned to a page.
func (mc *CPU) directPenalty() {
	if mc.D&0x00ff != 0 {
		mc.idle()
	}
}

// the direct page address of an indexed access. in emulation mode, when the
// direct page is page aligned, the index wraps within the page.
func (mc *CPU) directIndexed(offset uint16, index uint16) address {
	if mc.E && mc.D&0x00ff == 0 {
		return bankZero(mc.D | uint16(uint8(offset+index)))
	}
	return bankZero(mc.D + offset + index)
}

// read a 16 bit pointer from the direct page.
func (mc *CPU) directPointer(addr uint16) uint16 {
	lo := mc.read(uint32(addr))
	next := addr + 1
	if mc.E && mc.D&0x00ff == 0 {
		next = addr&0xff00 | uint16(uint8(addr+1))
	}
	hi := mc.read(uint32(next))
	return uint16(hi)<<8 | uint16(lo)
}

// data bank relative address.
func (mc *CPU) dataBank(addr uint16) uint32 {
	return uint32(mc.DB)<<16 | uint32(addr)
}

// index a base address, adding the index cycle if required. the cycle is
// always taken for write and modify instructions.
func (mc *CPU) indexed(base uint32, index uint16, always bool) address {
	ea := (base + uint32(index)) & 0xffffff
	crossed := base&0xffff00 != ea&0xffff00
	if always || !mc.Index8() || crossed {
		mc.idle()
		if crossed {
			mc.LastResult.PageFault = true
		}
	}
	return address{addr: ea}
}

// resolve the effective address of the operand for the instruction. the
// opcode has already been fetched.
//
// not used for immediate, implied, accumulator or control flow modes.
func (mc *CPU) resolve(defn *instructions.Definition) address {
	always := defn.Effect != instructions.Read

	switch defn.AddressingMode {
	case instructions.Direct:
		offset := uint16(mc.fetch())
		mc.directPenalty()
		return bankZero(mc.D + offset)

	case instructions.DirectX:
		offset := uint16(mc.fetch())
		mc.directPenalty()
		mc.idle()
		return mc.directIndexed(offset, mc.X)

	case instructions.DirectY:
		offset := uint16(mc.fetch())
		mc.directPenalty()
		mc.idle()
		return mc.directIndexed(offset, mc.Y)

	case instructions.DirectIndirect:
		offset := uint16(mc.fetch())
		mc.directPenalty()
		return address{addr: mc.dataBank(mc.directPointer(mc.D + offset))}

	case instructions.DirectXIndirect:
		offset := uint16(mc.fetch())
		mc.directPenalty()
		mc.idle()
		ptr := mc.directIndexed(offset, mc.X)
		return address{addr: mc.dataBank(mc.directPointer(uint16(ptr.addr)))}

	case instructions.DirectIndirectY:
		offset := uint16(mc.fetch())
		mc.directPenalty()
		base := mc.dataBank(mc.directPointer(mc.D + offset))
		return mc.indexed(base, mc.Y, always)

	case instructions.DirectIndirectLong, instructions.DirectIndirectLongY:
		offset := uint16(mc.fetch())
		mc.directPenalty()
		ptr := mc.D + offset
		lo := mc.read(uint32(ptr))
		hi := mc.read(uint32(ptr + 1))
		bank := mc.read(uint32(ptr + 2))
		ea := uint32(bank)<<16 | uint32(hi)<<8 | uint32(lo)
		if defn.AddressingMode == instructions.DirectIndirectLongY {
			ea = (ea + uint32(mc.Y)) & 0xffffff
		}
		return address{addr: ea}

	case instructions.Absolute:
		return address{addr: mc.dataBank(mc.fetch16())}

	case instructions.AbsoluteX:
		return mc.indexed(mc.dataBank(mc.fetch16()), mc.X, always)

	case instructions.AbsoluteY:
		return mc.indexed(mc.dataBank(mc.fetch16()), mc.Y, always)

	case instructions.AbsoluteLong:
		return address{addr: mc.fetch24()}

	case instructions.AbsoluteLongX:
		return address{addr: (mc.fetch24() + uint32(mc.X)) & 0xffffff}

	case instructions.StackRelative:
		offset := uint16(mc.fetch())
		mc.idle()
		return bankZero(mc.S + offset)

	case instructions.StackRelativeIndirectY:
		offset := uint16(mc.fetch())
		mc.idle()
		ptr := mc.S + offset
		lo := mc.read(uint32(ptr))
		hi := mc.read(uint32(ptr + 1))
		mc.idle()
		base := mc.dataBank(uint16(hi)<<8 | uint16(lo))
		return address{addr: (base + uint32(mc.Y)) & 0xffffff}
	}

	panic("cpu: unresolvable addressing mode")
}
