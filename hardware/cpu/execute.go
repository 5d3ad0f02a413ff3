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

import (
	"github.com/snescore/snescore/hardware/cpu/instructions"
	"github.com/snescore/snescore/hardware/cpu/registers"
	"github.com/snescore/snescore/hardware/memory/cpubus"
)

// ExecuteInstruction steps the CPU forward one instruction and returns the
// number of master cycles taken. If an interrupt is serviced, or the CPU is
// stopped or waiting, no instruction is executed and the cycles are for the
// interrupt sequence or an idle slice.
//
// The error return is currently always nil. Illegal opcodes are logged and
// execution continues.
func (mc *CPU) ExecuteInstruction() (int, error) {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.ProgramAddress()
	mc.cycles = 0
	mc.master = 0

	if mc.Stopped {
		mc.idle()
		return mc.finalise(), nil
	}

	if mc.serviceInterrupts() {
		return mc.finalise(), nil
	}

	if mc.Waiting {
		mc.idle()
		return mc.finalise(), nil
	}

	defn := &mc.instructions[mc.fetch()]
	mc.LastResult.Defn = defn
	mc.execute(defn)

	return mc.finalise(), nil
}

// readOperand returns the operand of a read instruction.
func (mc *CPU) readOperand(defn *instructions.Definition, narrow bool) uint16 {
	switch defn.AddressingMode {
	case instructions.Immediate, instructions.ImmediateIndex:
		if narrow {
			return uint16(mc.fetch())
		}
		return mc.fetch16()
	}
	return mc.readData(mc.resolve(defn), narrow)
}

func (mc *CPU) execute(defn *instructions.Definition) {
	m8 := mc.Accumulator8()
	x8 := mc.Index8()

	switch defn.Operator {
	// loads and stores
	case instructions.Lda:
		v := mc.readOperand(defn, m8)
		mc.SetA(v)
		mc.P.SetNZ(v, !m8)
	case instructions.Ldx:
		mc.X = mc.readOperand(defn, x8)
		mc.P.SetNZ(mc.X, !x8)
	case instructions.Ldy:
		mc.Y = mc.readOperand(defn, x8)
		mc.P.SetNZ(mc.Y, !x8)
	case instructions.Sta:
		mc.writeData(mc.resolve(defn), mc.A, m8)
	case instructions.Stx:
		mc.writeData(mc.resolve(defn), mc.X, x8)
	case instructions.Sty:
		mc.writeData(mc.resolve(defn), mc.Y, x8)
	case instructions.Stz:
		mc.writeData(mc.resolve(defn), 0, m8)

	// arithmetic and logic
	case instructions.Adc:
		v := mc.readOperand(defn, m8)
		r, c, o := registers.Add(mc.GetA(), v, mc.P.Carry, mc.P.DecimalMode, !m8)
		mc.SetA(r)
		mc.P.Carry = c
		mc.P.Overflow = o
		mc.P.SetNZ(r, !m8)
	case instructions.Sbc:
		v := mc.readOperand(defn, m8)
		r, c, o := registers.Subtract(mc.GetA(), v, mc.P.Carry, mc.P.DecimalMode, !m8)
		mc.SetA(r)
		mc.P.Carry = c
		mc.P.Overflow = o
		mc.P.SetNZ(r, !m8)
	case instructions.And:
		v := mc.readOperand(defn, m8) & mc.GetA()
		mc.SetA(v)
		mc.P.SetNZ(v, !m8)
	case instructions.Ora:
		v := mc.readOperand(defn, m8) | mc.GetA()
		mc.SetA(v)
		mc.P.SetNZ(v, !m8)
	case instructions.Eor:
		v := mc.readOperand(defn, m8) ^ mc.GetA()
		mc.SetA(v)
		mc.P.SetNZ(v, !m8)
	case instructions.Cmp:
		mc.compare(mc.GetA(), mc.readOperand(defn, m8), m8)
	case instructions.Cpx:
		mc.compare(mc.X, mc.readOperand(defn, x8), x8)
	case instructions.Cpy:
		mc.compare(mc.Y, mc.readOperand(defn, x8), x8)
	case instructions.Bit:
		v := mc.readOperand(defn, m8)
		mc.P.Zero = v&mc.GetA() == 0
		if defn.AddressingMode != instructions.Immediate {
			if m8 {
				mc.P.Negative = v&0x80 == 0x80
				mc.P.Overflow = v&0x40 == 0x40
			} else {
				mc.P.Negative = v&0x8000 == 0x8000
				mc.P.Overflow = v&0x4000 == 0x4000
			}
		}

	// read-modify-write
	case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror,
		instructions.Inc, instructions.Dec, instructions.Tsb, instructions.Trb:
		mc.modify(defn, m8)

	// index registers
	case instructions.Inx:
		mc.idle()
		mc.X = mc.SetIndex(mc.X + 1)
		mc.P.SetNZ(mc.X, !x8)
	case instructions.Iny:
		mc.idle()
		mc.Y = mc.SetIndex(mc.Y + 1)
		mc.P.SetNZ(mc.Y, !x8)
	case instructions.Dex:
		mc.idle()
		mc.X = mc.SetIndex(mc.X - 1)
		mc.P.SetNZ(mc.X, !x8)
	case instructions.Dey:
		mc.idle()
		mc.Y = mc.SetIndex(mc.Y - 1)
		mc.P.SetNZ(mc.Y, !x8)

	// transfers
	case instructions.Tax:
		mc.idle()
		mc.X = mc.SetIndex(mc.A)
		mc.P.SetNZ(mc.X, !x8)
	case instructions.Tay:
		mc.idle()
		mc.Y = mc.SetIndex(mc.A)
		mc.P.SetNZ(mc.Y, !x8)
	case instructions.Txa:
		mc.idle()
		mc.SetA(mc.X)
		mc.P.SetNZ(mc.GetA(), !m8)
	case instructions.Tya:
		mc.idle()
		mc.SetA(mc.Y)
		mc.P.SetNZ(mc.GetA(), !m8)
	case instructions.Txy:
		mc.idle()
		mc.Y = mc.X
		mc.P.SetNZ(mc.Y, !x8)
	case instructions.Tyx:
		mc.idle()
		mc.X = mc.Y
		mc.P.SetNZ(mc.X, !x8)
	case instructions.Tsx:
		mc.idle()
		mc.X = mc.SetIndex(mc.S)
		mc.P.SetNZ(mc.X, !x8)
	case instructions.Txs:
		mc.idle()
		mc.S = mc.X
		mc.Enforce()
	case instructions.Tcs:
		mc.idle()
		mc.S = mc.A
		mc.Enforce()
	case instructions.Tsc:
		mc.idle()
		mc.A = mc.S
		mc.P.SetNZ(mc.A, true)
	case instructions.Tcd:
		mc.idle()
		mc.D = mc.A
		mc.P.SetNZ(mc.D, true)
	case instructions.Tdc:
		mc.idle()
		mc.A = mc.D
		mc.P.SetNZ(mc.A, true)
	case instructions.Xba:
		mc.idle()
		mc.idle()
		mc.A = mc.A<<8 | mc.A>>8
		mc.P.SetNZ(mc.A, false)

	// flags
	case instructions.Clc:
		mc.idle()
		mc.P.Carry = false
	case instructions.Sec:
		mc.idle()
		mc.P.Carry = true
	case instructions.Cli:
		mc.idle()
		mc.P.InterruptDisable = false
	case instructions.Sei:
		mc.idle()
		mc.P.InterruptDisable = true
	case instructions.Cld:
		mc.idle()
		mc.P.DecimalMode = false
	case instructions.Sed:
		mc.idle()
		mc.P.DecimalMode = true
	case instructions.Clv:
		mc.idle()
		mc.P.Overflow = false
	case instructions.Rep:
		v := mc.fetch()
		mc.idle()
		mc.P.Load(mc.P.Value() &^ v)
		mc.Enforce()
	case instructions.Sep:
		v := mc.fetch()
		mc.idle()
		mc.P.Load(mc.P.Value() | v)
		mc.Enforce()
	case instructions.Xce:
		mc.idle()
		mc.E, mc.P.Carry = mc.P.Carry, mc.E
		mc.Enforce()

	// stack
	case instructions.Pha:
		mc.idle()
		mc.pushWidth(mc.A, m8)
	case instructions.Phx:
		mc.idle()
		mc.pushWidth(mc.X, x8)
	case instructions.Phy:
		mc.idle()
		mc.pushWidth(mc.Y, x8)
	case instructions.Php:
		mc.idle()
		mc.push(mc.P.Value())
	case instructions.Phb:
		mc.idle()
		mc.push(mc.DB)
	case instructions.Phk:
		mc.idle()
		mc.push(mc.PB)
	case instructions.Phd:
		mc.idle()
		mc.push16(mc.D)
	case instructions.Pla:
		mc.idle()
		mc.idle()
		v := mc.pullWidth(m8)
		mc.SetA(v)
		mc.P.SetNZ(v, !m8)
	case instructions.Plx:
		mc.idle()
		mc.idle()
		mc.X = mc.pullWidth(x8)
		mc.P.SetNZ(mc.X, !x8)
	case instructions.Ply:
		mc.idle()
		mc.idle()
		mc.Y = mc.pullWidth(x8)
		mc.P.SetNZ(mc.Y, !x8)
	case instructions.Plp:
		mc.idle()
		mc.idle()
		mc.P.Load(mc.pull())
		mc.Enforce()
	case instructions.Plb:
		mc.idle()
		mc.idle()
		mc.DB = mc.pull()
		mc.P.SetNZ(uint16(mc.DB), false)
	case instructions.Pld:
		mc.idle()
		mc.idle()
		mc.D = mc.pull16()
		mc.P.SetNZ(mc.D, true)
	case instructions.Pea:
		mc.push16(mc.fetch16())
	case instructions.Pei:
		offset := uint16(mc.fetch())
		mc.directPenalty()
		mc.push16(mc.directPointer(mc.D + offset))
	case instructions.Per:
		offset := mc.fetch16()
		mc.idle()
		mc.push16(mc.PC + offset)

	// branches
	case instructions.Bpl:
		mc.branch(!mc.P.Negative)
	case instructions.Bmi:
		mc.branch(mc.P.Negative)
	case instructions.Bvc:
		mc.branch(!mc.P.Overflow)
	case instructions.Bvs:
		mc.branch(mc.P.Overflow)
	case instructions.Bcc:
		mc.branch(!mc.P.Carry)
	case instructions.Bcs:
		mc.branch(mc.P.Carry)
	case instructions.Bne:
		mc.branch(!mc.P.Zero)
	case instructions.Beq:
		mc.branch(mc.P.Zero)
	case instructions.Bra:
		mc.branch(true)
	case instructions.Brl:
		offset := mc.fetch16()
		mc.idle()
		mc.PC += offset
		mc.LastResult.BranchSuccess = true

	// jumps and subroutines
	case instructions.Jmp:
		mc.jump(defn)
	case instructions.Jml:
		mc.jump(defn)
	case instructions.Jsr:
		if defn.AddressingMode == instructions.AbsoluteXIndirect {
			lo := mc.fetch()
			mc.push16(mc.PC)
			hi := mc.fetch()
			mc.idle()
			ptr := (uint16(hi)<<8 | uint16(lo)) + mc.X
			mc.PC = mc.programPointer(ptr)
		} else {
			target := mc.fetch16()
			mc.idle()
			mc.push16(mc.PC - 1)
			mc.PC = target
		}
	case instructions.Jsl:
		target := mc.fetch16()
		mc.push(mc.PB)
		mc.idle()
		bank := mc.fetch()
		mc.push16(mc.PC - 1)
		mc.PB = bank
		mc.PC = target
	case instructions.Rts:
		mc.idle()
		mc.idle()
		mc.PC = mc.pull16() + 1
		mc.idle()
	case instructions.Rtl:
		mc.idle()
		mc.idle()
		mc.PC = mc.pull16() + 1
		mc.PB = mc.pull()
	case instructions.Rti:
		mc.idle()
		mc.idle()
		mc.P.Load(mc.pull())
		mc.Enforce()
		mc.PC = mc.pull16()
		if !mc.E {
			mc.PB = mc.pull()
		}

	// block moves
	case instructions.Mvn, instructions.Mvp:
		dst := mc.fetch()
		src := mc.fetch()
		mc.DB = dst
		v := mc.read(uint32(src)<<16 | uint32(mc.X))
		mc.write(uint32(dst)<<16|uint32(mc.Y), v)
		mc.idle()
		mc.idle()
		if defn.Operator == instructions.Mvn {
			mc.X = mc.SetIndex(mc.X + 1)
			mc.Y = mc.SetIndex(mc.Y + 1)
		} else {
			mc.X = mc.SetIndex(mc.X - 1)
			mc.Y = mc.SetIndex(mc.Y - 1)
		}
		mc.A--
		if mc.A != 0xffff {
			mc.PC -= 3
		}

	// interrupts and processor control
	case instructions.Brk:
		mc.fetch()
		if mc.E {
			mc.interrupt(cpubus.EmulationBRK, true)
		} else {
			mc.interrupt(cpubus.NativeBRK, false)
		}
	case instructions.Cop:
		mc.fetch()
		if mc.E {
			mc.interrupt(cpubus.EmulationCOP, false)
		} else {
			mc.interrupt(cpubus.NativeCOP, false)
		}
	case instructions.Wai:
		mc.idle()
		mc.idle()
		mc.Waiting = true
	case instructions.Stp:
		mc.idle()
		mc.idle()
		mc.Stopped = true
	case instructions.Nop:
		mc.idle()
	case instructions.Wdm:
		mc.fetch()
		mc.reportIllegal(defn.OpCode)
	}
}

func (mc *CPU) compare(reg uint16, v uint16, narrow bool) {
	mc.P.Carry = reg >= v
	mc.P.SetNZ(reg-v, !narrow)
}

// branch to the relative address if the condition is true.
func (mc *CPU) branch(condition bool) {
	offset := int8(mc.fetch())
	if !condition {
		return
	}

	mc.idle()
	target := mc.PC + uint16(int16(offset))

	// in emulation mode, crossing a page costs an extra cycle
	if mc.E && target&0xff00 != mc.PC&0xff00 {
		mc.idle()
		mc.LastResult.PageFault = true
	}

	mc.PC = target
	mc.LastResult.BranchSuccess = true
}

// read a pointer in the program bank.
func (mc *CPU) programPointer(ptr uint16) uint16 {
	lo := mc.read(uint32(mc.PB)<<16 | uint32(ptr))
	hi := mc.read(uint32(mc.PB)<<16 | uint32(ptr+1))
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) jump(defn *instructions.Definition) {
	switch defn.AddressingMode {
	case instructions.Absolute:
		mc.PC = mc.fetch16()
	case instructions.AbsoluteLong:
		target := mc.fetch24()
		mc.PB = uint8(target >> 16)
		mc.PC = uint16(target)
	case instructions.AbsoluteIndirect:
		ptr := mc.fetch16()
		lo := mc.read(uint32(ptr))
		hi := mc.read(uint32(ptr + 1))
		mc.PC = uint16(hi)<<8 | uint16(lo)
	case instructions.AbsoluteXIndirect:
		ptr := mc.fetch16()
		mc.idle()
		mc.PC = mc.programPointer(ptr + mc.X)
	case instructions.AbsoluteIndirectLong:
		ptr := mc.fetch16()
		lo := mc.read(uint32(ptr))
		hi := mc.read(uint32(ptr + 1))
		bank := mc.read(uint32(ptr + 2))
		mc.PB = bank
		mc.PC = uint16(hi)<<8 | uint16(lo)
	}
}

// modify performs the read-modify-write instructions, on either the
// accumulator or memory.
func (mc *CPU) modify(defn *instructions.Definition, narrow bool) {
	if defn.AddressingMode == instructions.Accumulator {
		mc.idle()
		mc.SetA(mc.alter(defn.Operator, mc.GetA(), narrow))
		return
	}

	a := mc.resolve(defn)
	v := mc.readData(a, narrow)
	mc.idle()
	mc.writeData(a, mc.alter(defn.Operator, v, narrow), narrow)
}

// alter applies a read-modify-write operator to the value and sets the
// flags.
func (mc *CPU) alter(op instructions.Operator, v uint16, narrow bool) uint16 {
	mask := uint16(0xffff)
	top := uint16(0x8000)
	if narrow {
		mask = 0x00ff
		top = 0x0080
	}

	var r uint16
	switch op {
	case instructions.Asl:
		mc.P.Carry = v&top == top
		r = v << 1
	case instructions.Lsr:
		mc.P.Carry = v&0x01 == 0x01
		r = v >> 1
	case instructions.Rol:
		r = v << 1
		if mc.P.Carry {
			r |= 0x01
		}
		mc.P.Carry = v&top == top
	case instructions.Ror:
		r = v >> 1
		if mc.P.Carry {
			r |= top
		}
		mc.P.Carry = v&0x01 == 0x01
	case instructions.Inc:
		r = v + 1
	case instructions.Dec:
		r = v - 1
	case instructions.Tsb:
		mc.P.Zero = v&mc.GetA() == 0
		return (v | mc.GetA()) & mask
	case instructions.Trb:
		mc.P.Zero = v&mc.GetA() == 0
		return v &^ mc.GetA() & mask
	}

	r &= mask
	mc.P.SetNZ(r, !narrow)
	return r
}
