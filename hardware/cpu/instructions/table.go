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

package instructions

// the instruction set, indexed by opcode.
var definitions = [256]Definition{
	{OpCode: 0x00, Operator: Brk, AddressingMode: Immediate8, Bytes: 2, Cycles: 8, Effect: Interrupt},
	{OpCode: 0x01, Operator: Ora, AddressingMode: DirectXIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0x02, Operator: Cop, AddressingMode: Immediate8, Bytes: 2, Cycles: 8, Effect: Interrupt},
	{OpCode: 0x03, Operator: Ora, AddressingMode: StackRelative, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0x04, Operator: Tsb, AddressingMode: Direct, Bytes: 2, Cycles: 5, Effect: Modify},
	{OpCode: 0x05, Operator: Ora, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0x06, Operator: Asl, AddressingMode: Direct, Bytes: 2, Cycles: 5, Effect: Modify},
	{OpCode: 0x07, Operator: Ora, AddressingMode: DirectIndirectLong, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0x08, Operator: Php, AddressingMode: Implied, Bytes: 1, Cycles: 3, Effect: Write},
	{OpCode: 0x09, Operator: Ora, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0x0a, Operator: Asl, AddressingMode: Accumulator, Bytes: 1, Cycles: 2, Effect: Modify},
	{OpCode: 0x0b, Operator: Phd, AddressingMode: Implied, Bytes: 1, Cycles: 4, Effect: Write},
	{OpCode: 0x0c, Operator: Tsb, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: Modify},
	{OpCode: 0x0d, Operator: Ora, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x0e, Operator: Asl, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: Modify},
	{OpCode: 0x0f, Operator: Ora, AddressingMode: AbsoluteLong, Bytes: 4, Cycles: 5, Effect: Read},
	{OpCode: 0x10, Operator: Bpl, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	{OpCode: 0x11, Operator: Ora, AddressingMode: DirectIndirectY, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0x12, Operator: Ora, AddressingMode: DirectIndirect, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0x13, Operator: Ora, AddressingMode: StackRelativeIndirectY, Bytes: 2, Cycles: 7, Effect: Read},
	{OpCode: 0x14, Operator: Trb, AddressingMode: Direct, Bytes: 2, Cycles: 5, Effect: Modify},
	{OpCode: 0x15, Operator: Ora, AddressingMode: DirectX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0x16, Operator: Asl, AddressingMode: DirectX, Bytes: 2, Cycles: 6, Effect: Modify},
	{OpCode: 0x17, Operator: Ora, AddressingMode: DirectIndirectLongY, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0x18, Operator: Clc, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x19, Operator: Ora, AddressingMode: AbsoluteY, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x1a, Operator: Inc, AddressingMode: Accumulator, Bytes: 1, Cycles: 2, Effect: Modify},
	{OpCode: 0x1b, Operator: Tcs, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x1c, Operator: Trb, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: Modify},
	{OpCode: 0x1d, Operator: Ora, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x1e, Operator: Asl, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 7, Effect: Modify},
	{OpCode: 0x1f, Operator: Ora, AddressingMode: AbsoluteLongX, Bytes: 4, Cycles: 5, Effect: Read},
	{OpCode: 0x20, Operator: Jsr, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: Subroutine},
	{OpCode: 0x21, Operator: And, AddressingMode: DirectXIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0x22, Operator: Jsl, AddressingMode: AbsoluteLong, Bytes: 4, Cycles: 8, Effect: Subroutine},
	{OpCode: 0x23, Operator: And, AddressingMode: StackRelative, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0x24, Operator: Bit, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0x25, Operator: And, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0x26, Operator: Rol, AddressingMode: Direct, Bytes: 2, Cycles: 5, Effect: Modify},
	{OpCode: 0x27, Operator: And, AddressingMode: DirectIndirectLong, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0x28, Operator: Plp, AddressingMode: Implied, Bytes: 1, Cycles: 4, Effect: Read},
	{OpCode: 0x29, Operator: And, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0x2a, Operator: Rol, AddressingMode: Accumulator, Bytes: 1, Cycles: 2, Effect: Modify},
	{OpCode: 0x2b, Operator: Pld, AddressingMode: Implied, Bytes: 1, Cycles: 5, Effect: Read},
	{OpCode: 0x2c, Operator: Bit, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x2d, Operator: And, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x2e, Operator: Rol, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: Modify},
	{OpCode: 0x2f, Operator: And, AddressingMode: AbsoluteLong, Bytes: 4, Cycles: 5, Effect: Read},
	{OpCode: 0x30, Operator: Bmi, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	{OpCode: 0x31, Operator: And, AddressingMode: DirectIndirectY, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0x32, Operator: And, AddressingMode: DirectIndirect, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0x33, Operator: And, AddressingMode: StackRelativeIndirectY, Bytes: 2, Cycles: 7, Effect: Read},
	{OpCode: 0x34, Operator: Bit, AddressingMode: DirectX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0x35, Operator: And, AddressingMode: DirectX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0x36, Operator: Rol, AddressingMode: DirectX, Bytes: 2, Cycles: 6, Effect: Modify},
	{OpCode: 0x37, Operator: And, AddressingMode: DirectIndirectLongY, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0x38, Operator: Sec, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x39, Operator: And, AddressingMode: AbsoluteY, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x3a, Operator: Dec, AddressingMode: Accumulator, Bytes: 1, Cycles: 2, Effect: Modify},
	{OpCode: 0x3b, Operator: Tsc, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x3c, Operator: Bit, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x3d, Operator: And, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x3e, Operator: Rol, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 7, Effect: Modify},
	{OpCode: 0x3f, Operator: And, AddressingMode: AbsoluteLongX, Bytes: 4, Cycles: 5, Effect: Read},
	{OpCode: 0x40, Operator: Rti, AddressingMode: Implied, Bytes: 1, Cycles: 7, Effect: Subroutine},
	{OpCode: 0x41, Operator: Eor, AddressingMode: DirectXIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0x42, Operator: Wdm, AddressingMode: Immediate8, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0x43, Operator: Eor, AddressingMode: StackRelative, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0x44, Operator: Mvp, AddressingMode: BlockMove, Bytes: 3, Cycles: 7, Effect: Write},
	{OpCode: 0x45, Operator: Eor, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0x46, Operator: Lsr, AddressingMode: Direct, Bytes: 2, Cycles: 5, Effect: Modify},
	{OpCode: 0x47, Operator: Eor, AddressingMode: DirectIndirectLong, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0x48, Operator: Pha, AddressingMode: Implied, Bytes: 1, Cycles: 3, Effect: Write},
	{OpCode: 0x49, Operator: Eor, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0x4a, Operator: Lsr, AddressingMode: Accumulator, Bytes: 1, Cycles: 2, Effect: Modify},
	{OpCode: 0x4b, Operator: Phk, AddressingMode: Implied, Bytes: 1, Cycles: 3, Effect: Write},
	{OpCode: 0x4c, Operator: Jmp, AddressingMode: Absolute, Bytes: 3, Cycles: 3, Effect: Flow},
	{OpCode: 0x4d, Operator: Eor, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x4e, Operator: Lsr, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: Modify},
	{OpCode: 0x4f, Operator: Eor, AddressingMode: AbsoluteLong, Bytes: 4, Cycles: 5, Effect: Read},
	{OpCode: 0x50, Operator: Bvc, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	{OpCode: 0x51, Operator: Eor, AddressingMode: DirectIndirectY, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0x52, Operator: Eor, AddressingMode: DirectIndirect, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0x53, Operator: Eor, AddressingMode: StackRelativeIndirectY, Bytes: 2, Cycles: 7, Effect: Read},
	{OpCode: 0x54, Operator: Mvn, AddressingMode: BlockMove, Bytes: 3, Cycles: 7, Effect: Write},
	{OpCode: 0x55, Operator: Eor, AddressingMode: DirectX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0x56, Operator: Lsr, AddressingMode: DirectX, Bytes: 2, Cycles: 6, Effect: Modify},
	{OpCode: 0x57, Operator: Eor, AddressingMode: DirectIndirectLongY, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0x58, Operator: Cli, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x59, Operator: Eor, AddressingMode: AbsoluteY, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x5a, Operator: Phy, AddressingMode: Implied, Bytes: 1, Cycles: 3, Effect: Write},
	{OpCode: 0x5b, Operator: Tcd, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x5c, Operator: Jml, AddressingMode: AbsoluteLong, Bytes: 4, Cycles: 4, Effect: Flow},
	{OpCode: 0x5d, Operator: Eor, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x5e, Operator: Lsr, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 7, Effect: Modify},
	{OpCode: 0x5f, Operator: Eor, AddressingMode: AbsoluteLongX, Bytes: 4, Cycles: 5, Effect: Read},
	{OpCode: 0x60, Operator: Rts, AddressingMode: Implied, Bytes: 1, Cycles: 6, Effect: Subroutine},
	{OpCode: 0x61, Operator: Adc, AddressingMode: DirectXIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0x62, Operator: Per, AddressingMode: RelativeLong, Bytes: 3, Cycles: 6, Effect: Write},
	{OpCode: 0x63, Operator: Adc, AddressingMode: StackRelative, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0x64, Operator: Stz, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Write},
	{OpCode: 0x65, Operator: Adc, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0x66, Operator: Ror, AddressingMode: Direct, Bytes: 2, Cycles: 5, Effect: Modify},
	{OpCode: 0x67, Operator: Adc, AddressingMode: DirectIndirectLong, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0x68, Operator: Pla, AddressingMode: Implied, Bytes: 1, Cycles: 4, Effect: Read},
	{OpCode: 0x69, Operator: Adc, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0x6a, Operator: Ror, AddressingMode: Accumulator, Bytes: 1, Cycles: 2, Effect: Modify},
	{OpCode: 0x6b, Operator: Rtl, AddressingMode: Implied, Bytes: 1, Cycles: 6, Effect: Subroutine},
	{OpCode: 0x6c, Operator: Jmp, AddressingMode: AbsoluteIndirect, Bytes: 3, Cycles: 5, Effect: Flow},
	{OpCode: 0x6d, Operator: Adc, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x6e, Operator: Ror, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: Modify},
	{OpCode: 0x6f, Operator: Adc, AddressingMode: AbsoluteLong, Bytes: 4, Cycles: 5, Effect: Read},
	{OpCode: 0x70, Operator: Bvs, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	{OpCode: 0x71, Operator: Adc, AddressingMode: DirectIndirectY, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0x72, Operator: Adc, AddressingMode: DirectIndirect, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0x73, Operator: Adc, AddressingMode: StackRelativeIndirectY, Bytes: 2, Cycles: 7, Effect: Read},
	{OpCode: 0x74, Operator: Stz, AddressingMode: DirectX, Bytes: 2, Cycles: 4, Effect: Write},
	{OpCode: 0x75, Operator: Adc, AddressingMode: DirectX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0x76, Operator: Ror, AddressingMode: DirectX, Bytes: 2, Cycles: 6, Effect: Modify},
	{OpCode: 0x77, Operator: Adc, AddressingMode: DirectIndirectLongY, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0x78, Operator: Sei, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x79, Operator: Adc, AddressingMode: AbsoluteY, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x7a, Operator: Ply, AddressingMode: Implied, Bytes: 1, Cycles: 4, Effect: Read},
	{OpCode: 0x7b, Operator: Tdc, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x7c, Operator: Jmp, AddressingMode: AbsoluteXIndirect, Bytes: 3, Cycles: 6, Effect: Flow},
	{OpCode: 0x7d, Operator: Adc, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x7e, Operator: Ror, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 7, Effect: Modify},
	{OpCode: 0x7f, Operator: Adc, AddressingMode: AbsoluteLongX, Bytes: 4, Cycles: 5, Effect: Read},
	{OpCode: 0x80, Operator: Bra, AddressingMode: Relative, Bytes: 2, Cycles: 3, Effect: Flow},
	{OpCode: 0x81, Operator: Sta, AddressingMode: DirectXIndirect, Bytes: 2, Cycles: 6, Effect: Write},
	{OpCode: 0x82, Operator: Brl, AddressingMode: RelativeLong, Bytes: 3, Cycles: 4, Effect: Flow},
	{OpCode: 0x83, Operator: Sta, AddressingMode: StackRelative, Bytes: 2, Cycles: 4, Effect: Write},
	{OpCode: 0x84, Operator: Sty, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Write},
	{OpCode: 0x85, Operator: Sta, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Write},
	{OpCode: 0x86, Operator: Stx, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Write},
	{OpCode: 0x87, Operator: Sta, AddressingMode: DirectIndirectLong, Bytes: 2, Cycles: 6, Effect: Write},
	{OpCode: 0x88, Operator: Dey, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x89, Operator: Bit, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0x8a, Operator: Txa, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x8b, Operator: Phb, AddressingMode: Implied, Bytes: 1, Cycles: 3, Effect: Write},
	{OpCode: 0x8c, Operator: Sty, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Write},
	{OpCode: 0x8d, Operator: Sta, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Write},
	{OpCode: 0x8e, Operator: Stx, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Write},
	{OpCode: 0x8f, Operator: Sta, AddressingMode: AbsoluteLong, Bytes: 4, Cycles: 5, Effect: Write},
	{OpCode: 0x90, Operator: Bcc, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	{OpCode: 0x91, Operator: Sta, AddressingMode: DirectIndirectY, Bytes: 2, Cycles: 6, Effect: Write},
	{OpCode: 0x92, Operator: Sta, AddressingMode: DirectIndirect, Bytes: 2, Cycles: 5, Effect: Write},
	{OpCode: 0x93, Operator: Sta, AddressingMode: StackRelativeIndirectY, Bytes: 2, Cycles: 7, Effect: Write},
	{OpCode: 0x94, Operator: Sty, AddressingMode: DirectX, Bytes: 2, Cycles: 4, Effect: Write},
	{OpCode: 0x95, Operator: Sta, AddressingMode: DirectX, Bytes: 2, Cycles: 4, Effect: Write},
	{OpCode: 0x96, Operator: Stx, AddressingMode: DirectY, Bytes: 2, Cycles: 4, Effect: Write},
	{OpCode: 0x97, Operator: Sta, AddressingMode: DirectIndirectLongY, Bytes: 2, Cycles: 6, Effect: Write},
	{OpCode: 0x98, Operator: Tya, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x99, Operator: Sta, AddressingMode: AbsoluteY, Bytes: 3, Cycles: 5, Effect: Write},
	{OpCode: 0x9a, Operator: Txs, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x9b, Operator: Txy, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x9c, Operator: Stz, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Write},
	{OpCode: 0x9d, Operator: Sta, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 5, Effect: Write},
	{OpCode: 0x9e, Operator: Stz, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 5, Effect: Write},
	{OpCode: 0x9f, Operator: Sta, AddressingMode: AbsoluteLongX, Bytes: 4, Cycles: 5, Effect: Write},
	{OpCode: 0xa0, Operator: Ldy, AddressingMode: ImmediateIndex, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0xa1, Operator: Lda, AddressingMode: DirectXIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0xa2, Operator: Ldx, AddressingMode: ImmediateIndex, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0xa3, Operator: Lda, AddressingMode: StackRelative, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0xa4, Operator: Ldy, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0xa5, Operator: Lda, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0xa6, Operator: Ldx, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0xa7, Operator: Lda, AddressingMode: DirectIndirectLong, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0xa8, Operator: Tay, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xa9, Operator: Lda, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0xaa, Operator: Tax, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xab, Operator: Plb, AddressingMode: Implied, Bytes: 1, Cycles: 4, Effect: Read},
	{OpCode: 0xac, Operator: Ldy, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xad, Operator: Lda, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xae, Operator: Ldx, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xaf, Operator: Lda, AddressingMode: AbsoluteLong, Bytes: 4, Cycles: 5, Effect: Read},
	{OpCode: 0xb0, Operator: Bcs, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	{OpCode: 0xb1, Operator: Lda, AddressingMode: DirectIndirectY, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0xb2, Operator: Lda, AddressingMode: DirectIndirect, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0xb3, Operator: Lda, AddressingMode: StackRelativeIndirectY, Bytes: 2, Cycles: 7, Effect: Read},
	{OpCode: 0xb4, Operator: Ldy, AddressingMode: DirectX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0xb5, Operator: Lda, AddressingMode: DirectX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0xb6, Operator: Ldx, AddressingMode: DirectY, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0xb7, Operator: Lda, AddressingMode: DirectIndirectLongY, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0xb8, Operator: Clv, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xb9, Operator: Lda, AddressingMode: AbsoluteY, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xba, Operator: Tsx, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xbb, Operator: Tyx, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xbc, Operator: Ldy, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xbd, Operator: Lda, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xbe, Operator: Ldx, AddressingMode: AbsoluteY, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xbf, Operator: Lda, AddressingMode: AbsoluteLongX, Bytes: 4, Cycles: 5, Effect: Read},
	{OpCode: 0xc0, Operator: Cpy, AddressingMode: ImmediateIndex, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0xc1, Operator: Cmp, AddressingMode: DirectXIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0xc2, Operator: Rep, AddressingMode: Immediate8, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0xc3, Operator: Cmp, AddressingMode: StackRelative, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0xc4, Operator: Cpy, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0xc5, Operator: Cmp, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0xc6, Operator: Dec, AddressingMode: Direct, Bytes: 2, Cycles: 5, Effect: Modify},
	{OpCode: 0xc7, Operator: Cmp, AddressingMode: DirectIndirectLong, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0xc8, Operator: Iny, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xc9, Operator: Cmp, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0xca, Operator: Dex, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xcb, Operator: Wai, AddressingMode: Implied, Bytes: 1, Cycles: 3, Effect: Interrupt},
	{OpCode: 0xcc, Operator: Cpy, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xcd, Operator: Cmp, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xce, Operator: Dec, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: Modify},
	{OpCode: 0xcf, Operator: Cmp, AddressingMode: AbsoluteLong, Bytes: 4, Cycles: 5, Effect: Read},
	{OpCode: 0xd0, Operator: Bne, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	{OpCode: 0xd1, Operator: Cmp, AddressingMode: DirectIndirectY, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0xd2, Operator: Cmp, AddressingMode: DirectIndirect, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0xd3, Operator: Cmp, AddressingMode: StackRelativeIndirectY, Bytes: 2, Cycles: 7, Effect: Read},
	{OpCode: 0xd4, Operator: Pei, AddressingMode: DirectIndirect, Bytes: 2, Cycles: 6, Effect: Write},
	{OpCode: 0xd5, Operator: Cmp, AddressingMode: DirectX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0xd6, Operator: Dec, AddressingMode: DirectX, Bytes: 2, Cycles: 6, Effect: Modify},
	{OpCode: 0xd7, Operator: Cmp, AddressingMode: DirectIndirectLongY, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0xd8, Operator: Cld, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xd9, Operator: Cmp, AddressingMode: AbsoluteY, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xda, Operator: Phx, AddressingMode: Implied, Bytes: 1, Cycles: 3, Effect: Write},
	{OpCode: 0xdb, Operator: Stp, AddressingMode: Implied, Bytes: 1, Cycles: 3, Effect: Interrupt},
	{OpCode: 0xdc, Operator: Jml, AddressingMode: AbsoluteIndirectLong, Bytes: 3, Cycles: 6, Effect: Flow},
	{OpCode: 0xdd, Operator: Cmp, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xde, Operator: Dec, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 7, Effect: Modify},
	{OpCode: 0xdf, Operator: Cmp, AddressingMode: AbsoluteLongX, Bytes: 4, Cycles: 5, Effect: Read},
	{OpCode: 0xe0, Operator: Cpx, AddressingMode: ImmediateIndex, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0xe1, Operator: Sbc, AddressingMode: DirectXIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0xe2, Operator: Sep, AddressingMode: Immediate8, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0xe3, Operator: Sbc, AddressingMode: StackRelative, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0xe4, Operator: Cpx, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0xe5, Operator: Sbc, AddressingMode: Direct, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0xe6, Operator: Inc, AddressingMode: Direct, Bytes: 2, Cycles: 5, Effect: Modify},
	{OpCode: 0xe7, Operator: Sbc, AddressingMode: DirectIndirectLong, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0xe8, Operator: Inx, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xe9, Operator: Sbc, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0xea, Operator: Nop, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xeb, Operator: Xba, AddressingMode: Implied, Bytes: 1, Cycles: 3, Effect: Read},
	{OpCode: 0xec, Operator: Cpx, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xed, Operator: Sbc, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xee, Operator: Inc, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: Modify},
	{OpCode: 0xef, Operator: Sbc, AddressingMode: AbsoluteLong, Bytes: 4, Cycles: 5, Effect: Read},
	{OpCode: 0xf0, Operator: Beq, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	{OpCode: 0xf1, Operator: Sbc, AddressingMode: DirectIndirectY, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0xf2, Operator: Sbc, AddressingMode: DirectIndirect, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0xf3, Operator: Sbc, AddressingMode: StackRelativeIndirectY, Bytes: 2, Cycles: 7, Effect: Read},
	{OpCode: 0xf4, Operator: Pea, AddressingMode: Absolute, Bytes: 3, Cycles: 5, Effect: Write},
	{OpCode: 0xf5, Operator: Sbc, AddressingMode: DirectX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0xf6, Operator: Inc, AddressingMode: DirectX, Bytes: 2, Cycles: 6, Effect: Modify},
	{OpCode: 0xf7, Operator: Sbc, AddressingMode: DirectIndirectLongY, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0xf8, Operator: Sed, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xf9, Operator: Sbc, AddressingMode: AbsoluteY, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xfa, Operator: Plx, AddressingMode: Implied, Bytes: 1, Cycles: 4, Effect: Read},
	{OpCode: 0xfb, Operator: Xce, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xfc, Operator: Jsr, AddressingMode: AbsoluteXIndirect, Bytes: 3, Cycles: 8, Effect: Subroutine},
	{OpCode: 0xfd, Operator: Sbc, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xfe, Operator: Inc, AddressingMode: AbsoluteX, Bytes: 3, Cycles: 7, Effect: Modify},
	{OpCode: 0xff, Operator: Sbc, AddressingMode: AbsoluteLongX, Bytes: 4, Cycles: 5, Effect: Read},
}
