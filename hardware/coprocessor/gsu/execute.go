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

import (
	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/logger"
)

// step executes one instruction and returns the number of GSU cycles it
// took.
//
// R15 is the address of the byte in the pipeline while an instruction is
// executing. The byte in the pipeline is always executed, which gives the
// branch and jump instructions their delay slot.
func (gsu *GSU) step() int {
	gsu.modified = false
	gsu.cycles = 0

	op := gsu.state.Pipe
	gsu.refill()

	if !gsu.execute(op) {
		gsu.endInstruction()
	}

	if !gsu.modified {
		gsu.state.R[15]++
	}

	return gsu.cycles
}

// load the pipeline from the address in R15.
func (gsu *GSU) refill() {
	v, c := gsu.fetch(gsu.state.R[15])
	gsu.state.Pipe = v
	gsu.cycles += c
}

// operand returns the byte in the pipeline and loads the next one.
func (gsu *GSU) operand() uint8 {
	v := gsu.state.Pipe
	gsu.state.R[15]++
	gsu.refill()
	return v
}

func (gsu *GSU) operand16() uint16 {
	lo := gsu.operand()
	hi := gsu.operand()
	return uint16(hi)<<8 | uint16(lo)
}

func (gsu *GSU) alt() int {
	return int(gsu.state.SFR>>8) & 0x03
}

// clear the prefix state. called after every instruction that is not a
// prefix.
func (gsu *GSU) endInstruction() {
	gsu.state.SFR &^= FlagALT1 | FlagALT2 | FlagB
	gsu.state.Sreg = 0
	gsu.state.Dreg = 0
}

func (gsu *GSU) setReg(n uint8, v uint16) {
	gsu.state.R[n] = v
	switch n {
	case 14:
		gsu.reloadROMBuffer()
	case 15:
		gsu.modified = true
	}
}

func (gsu *GSU) src() uint16 {
	return gsu.state.R[gsu.state.Sreg]
}

func (gsu *GSU) setDest(v uint16) {
	gsu.setReg(gsu.state.Dreg, v)
}

func (gsu *GSU) flag(f uint16) bool {
	return gsu.state.SFR&f == f
}

func (gsu *GSU) setFlag(f uint16, v bool) {
	if v {
		gsu.state.SFR |= f
	} else {
		gsu.state.SFR &^= f
	}
}

func (gsu *GSU) setSZ(v uint16) {
	gsu.setFlag(FlagS, v&0x8000 == 0x8000)
	gsu.setFlag(FlagZ, v == 0)
}

// result stores the value in the destination register and sets the sign and
// zero flags.
func (gsu *GSU) result(v uint16) {
	gsu.setSZ(v)
	gsu.setDest(v)
}

func (gsu *GSU) add(a, b uint16, carry bool) uint16 {
	r := uint32(a) + uint32(b)
	if carry {
		r++
	}
	gsu.setFlag(FlagCY, r > 0xffff)
	gsu.setFlag(FlagOV, ^(a^b)&(b^uint16(r))&0x8000 != 0)
	gsu.setSZ(uint16(r))
	return uint16(r)
}

func (gsu *GSU) sub(a, b uint16, borrow bool) uint16 {
	r := int32(a) - int32(b)
	if borrow {
		r--
	}
	gsu.setFlag(FlagCY, r >= 0)
	gsu.setFlag(FlagOV, (a^b)&(a^uint16(r))&0x8000 != 0)
	gsu.setSZ(uint16(r))
	return uint16(r)
}

func (gsu *GSU) branch(condition bool) {
	offset := int8(gsu.operand())
	if condition {
		gsu.setReg(15, gsu.state.R[15]+uint16(int16(offset)))
	}
}

func (gsu *GSU) reportUnimplemented(op uint8) {
	alt := gsu.alt()
	if gsu.reported[alt][op] {
		return
	}
	gsu.reported[alt][op] = true
	logger.Log(gsu.perm, "gsu", curated.Errorf(UnimplementedOpcode, op, alt, gsu.state.PBR, gsu.state.R[15]-1))
}

// execute the opcode. returns true if the opcode is a prefix.
func (gsu *GSU) execute(op uint8) bool {
	alt := gsu.alt()
	n := op & 0x0f

	switch op >> 4 {
	case 0x0:
		gsu.control(op)

	case 0x1:
		// TO, or MOVE when preceded by WITH
		if gsu.flag(FlagB) {
			gsu.setReg(n, gsu.src())
			return false
		}
		gsu.state.Dreg = n
		return true

	case 0x2:
		// WITH
		gsu.state.Sreg = n
		gsu.state.Dreg = n
		gsu.state.SFR |= FlagB
		return true

	case 0x3:
		switch {
		case n <= 0x0b:
			gsu.state.RAMAddr = gsu.state.R[n]
			if alt&0x01 == 0x01 {
				gsu.writeRAM(gsu.state.R[n], uint8(gsu.src()))
				gsu.cycles += ramCycles
			} else {
				gsu.writeRAMWord(gsu.state.R[n], gsu.src())
				gsu.cycles += 2 * ramCycles
			}
		case n == 0x0c:
			// LOOP
			gsu.state.R[12]--
			gsu.setSZ(gsu.state.R[12])
			if gsu.state.R[12] != 0 {
				gsu.setReg(15, gsu.state.R[13])
			}
		case n == 0x0d:
			gsu.state.SFR = gsu.state.SFR&^(FlagB|FlagALT2) | FlagALT1
			return true
		case n == 0x0e:
			gsu.state.SFR = gsu.state.SFR&^(FlagB|FlagALT1) | FlagALT2
			return true
		case n == 0x0f:
			gsu.state.SFR = gsu.state.SFR&^FlagB | FlagALT1 | FlagALT2
			return true
		}

	case 0x4:
		switch {
		case n <= 0x0b:
			if alt&0x01 == 0x01 {
				gsu.state.RAMAddr = gsu.state.R[n]
				gsu.setDest(uint16(gsu.readRAM(gsu.state.R[n])))
				gsu.cycles += ramCycles
			} else {
				gsu.setDest(gsu.readRAMWord(gsu.state.R[n]))
				gsu.cycles += 2 * ramCycles
			}
		case n == 0x0c:
			// PLOT and RPIX
			gsu.reportUnimplemented(op)
			if alt&0x01 == 0x01 {
				gsu.result(0)
			} else {
				gsu.state.R[1]++
			}
		case n == 0x0d:
			// SWAP
			s := gsu.src()
			gsu.result(s>>8 | s<<8)
		case n == 0x0e:
			if alt&0x01 == 0x01 {
				gsu.state.POR = uint8(gsu.src())
			} else {
				gsu.state.COLR = uint8(gsu.src())
			}
		case n == 0x0f:
			gsu.result(^gsu.src())
		}

	case 0x5:
		v := gsu.state.R[n]
		if alt&0x02 == 0x02 {
			v = uint16(n)
		}
		gsu.setDest(gsu.add(gsu.src(), v, alt&0x01 == 0x01 && gsu.flag(FlagCY)))

	case 0x6:
		switch alt {
		case 0:
			gsu.setDest(gsu.sub(gsu.src(), gsu.state.R[n], false))
		case 1:
			gsu.setDest(gsu.sub(gsu.src(), gsu.state.R[n], !gsu.flag(FlagCY)))
		case 2:
			gsu.setDest(gsu.sub(gsu.src(), uint16(n), false))
		case 3:
			// CMP
			gsu.sub(gsu.src(), gsu.state.R[n], false)
		}

	case 0x7:
		if n == 0 {
			gsu.merge()
			break
		}
		v := gsu.state.R[n]
		if alt&0x02 == 0x02 {
			v = uint16(n)
		}
		if alt&0x01 == 0x01 {
			gsu.result(gsu.src() &^ v)
		} else {
			gsu.result(gsu.src() & v)
		}

	case 0x8:
		v := gsu.state.R[n]
		if alt&0x02 == 0x02 {
			v = uint16(n)
		}
		if alt&0x01 == 0x01 {
			gsu.result(uint16(uint8(gsu.src())) * uint16(uint8(v)))
		} else {
			gsu.result(uint16(int16(int8(gsu.src())) * int16(int8(v))))
		}
		gsu.cycles++

	case 0x9:
		gsu.misc(op, alt)

	case 0xa:
		switch alt {
		case 1:
			// LMS
			addr := uint16(gsu.operand()) << 1
			gsu.setReg(n, gsu.readRAMWord(addr))
			gsu.cycles += 2 * ramCycles
		case 2:
			// SMS
			addr := uint16(gsu.operand()) << 1
			gsu.writeRAMWord(addr, gsu.state.R[n])
			gsu.cycles += 2 * ramCycles
		default:
			// IBT
			gsu.setReg(n, uint16(int16(int8(gsu.operand()))))
		}

	case 0xb:
		// FROM, or MOVES when preceded by WITH
		if gsu.flag(FlagB) {
			v := gsu.state.R[n]
			gsu.setFlag(FlagOV, v&0x80 == 0x80)
			gsu.result(v)
			return false
		}
		gsu.state.Sreg = n
		return true

	case 0xc:
		if n == 0 {
			// HIB
			v := gsu.src() >> 8
			gsu.setDest(v)
			gsu.setFlag(FlagS, v&0x80 == 0x80)
			gsu.setFlag(FlagZ, v == 0)
			break
		}
		v := gsu.state.R[n]
		if alt&0x02 == 0x02 {
			v = uint16(n)
		}
		if alt&0x01 == 0x01 {
			gsu.result(gsu.src() ^ v)
		} else {
			gsu.result(gsu.src() | v)
		}

	case 0xd:
		if n < 0x0f {
			v := gsu.state.R[n] + 1
			gsu.setSZ(v)
			gsu.setReg(n, v)
			break
		}
		switch alt {
		case 2:
			gsu.state.RAMBR = uint8(gsu.src()) & 0x01
		case 3:
			gsu.state.ROMBR = uint8(gsu.src()) & 0x7f
			gsu.reloadROMBuffer()
		default:
			gsu.state.COLR = gsu.state.ROMBuffer
			gsu.cycles += romCycles
		}

	case 0xe:
		if n < 0x0f {
			v := gsu.state.R[n] - 1
			gsu.setSZ(v)
			gsu.setReg(n, v)
			break
		}
		buf := uint16(gsu.state.ROMBuffer)
		switch alt {
		case 0:
			gsu.setDest(buf)
		case 1:
			gsu.setDest(gsu.src()&0x00ff | buf<<8)
		case 2:
			gsu.setDest(gsu.src()&0xff00 | buf)
		case 3:
			gsu.setDest(uint16(int16(int8(buf))))
		}
		gsu.cycles += romCycles

	case 0xf:
		switch alt {
		case 1:
			// LM
			addr := gsu.operand16()
			gsu.setReg(n, gsu.readRAMWord(addr))
			gsu.cycles += 2 * ramCycles
		case 2:
			// SM
			addr := gsu.operand16()
			gsu.writeRAMWord(addr, gsu.state.R[n])
			gsu.cycles += 2 * ramCycles
		default:
			// IWT
			gsu.setReg(n, gsu.operand16())
		}
	}

	return false
}

// control flow and the instructions in the $00 to $0f range.
func (gsu *GSU) control(op uint8) {
	s := gsu.state.SFR
	sign := s&FlagS == FlagS
	overflow := s&FlagOV == FlagOV

	switch op {
	case 0x00:
		// STOP
		gsu.state.SFR &^= FlagG
		gsu.state.SFR |= FlagIRQ
		gsu.state.Pipe = opNOP
	case 0x01:
		// NOP
	case 0x02:
		// CACHE
		if gsu.state.CBR != gsu.state.R[15]&0xfff0 {
			gsu.flushCache(gsu.state.R[15])
		}
	case 0x03:
		// LSR
		v := gsu.src()
		gsu.setFlag(FlagCY, v&0x01 == 0x01)
		gsu.result(v >> 1)
	case 0x04:
		// ROL
		v := gsu.src()
		r := v << 1
		if gsu.flag(FlagCY) {
			r |= 0x01
		}
		gsu.setFlag(FlagCY, v&0x8000 == 0x8000)
		gsu.result(r)
	case 0x05:
		gsu.branch(true)
	case 0x06:
		gsu.branch(sign == overflow)
	case 0x07:
		gsu.branch(sign != overflow)
	case 0x08:
		gsu.branch(s&FlagZ == 0)
	case 0x09:
		gsu.branch(s&FlagZ == FlagZ)
	case 0x0a:
		gsu.branch(!sign)
	case 0x0b:
		gsu.branch(sign)
	case 0x0c:
		gsu.branch(s&FlagCY == 0)
	case 0x0d:
		gsu.branch(s&FlagCY == FlagCY)
	case 0x0e:
		gsu.branch(!overflow)
	case 0x0f:
		gsu.branch(overflow)
	}
}

// the instructions in the $90 to $9f range.
func (gsu *GSU) misc(op uint8, alt int) {
	n := op & 0x0f

	switch {
	case n == 0x00:
		// SBK
		gsu.writeRAMWord(gsu.state.RAMAddr, gsu.src())
		gsu.cycles += 2 * ramCycles
	case n <= 0x04:
		// LINK
		gsu.state.R[11] = gsu.state.R[15] + uint16(n)
	case n == 0x05:
		// SEX
		gsu.result(uint16(int16(int8(gsu.src()))))
	case n == 0x06:
		// ASR and DIV2
		v := gsu.src()
		gsu.setFlag(FlagCY, v&0x01 == 0x01)
		if alt&0x01 == 0x01 && v == 0xffff {
			gsu.result(0)
		} else {
			gsu.result(uint16(int16(v) >> 1))
		}
	case n == 0x07:
		// ROR
		v := gsu.src()
		r := v >> 1
		if gsu.flag(FlagCY) {
			r |= 0x8000
		}
		gsu.setFlag(FlagCY, v&0x01 == 0x01)
		gsu.result(r)
	case n <= 0x0d:
		if alt&0x01 == 0x01 {
			// LJMP
			gsu.state.PBR = uint8(gsu.state.R[n]) & 0x7f
			gsu.setReg(15, gsu.src())
			gsu.flushCache(gsu.state.R[15])
		} else {
			// JMP
			gsu.setReg(15, gsu.state.R[n])
		}
	case n == 0x0e:
		// LOB
		v := gsu.src() & 0x00ff
		gsu.setDest(v)
		gsu.setFlag(FlagS, v&0x80 == 0x80)
		gsu.setFlag(FlagZ, v == 0)
	case n == 0x0f:
		// FMULT and LMULT
		r := int32(int16(gsu.src())) * int32(int16(gsu.state.R[6]))
		if alt&0x01 == 0x01 {
			gsu.state.R[4] = uint16(r)
		}
		gsu.setFlag(FlagCY, r&0x8000 == 0x8000)
		gsu.result(uint16(r >> 16))
		gsu.cycles += 7
	}
}

// MERGE combines the high bytes of R7 and R8.
func (gsu *GSU) merge() {
	v := gsu.state.R[7]&0xff00 | gsu.state.R[8]>>8
	gsu.setDest(v)
	gsu.setFlag(FlagS, v&0x8080 != 0)
	gsu.setFlag(FlagZ, v&0xf0f0 != 0)
	gsu.setFlag(FlagOV, v&0xc0c0 != 0)
	gsu.setFlag(FlagCY, v&0xe0e0 != 0)
}
