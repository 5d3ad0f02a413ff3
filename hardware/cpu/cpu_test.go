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

package cpu_test

import (
	"strings"
	"testing"

	"github.com/alttpo/snes/asm"
	"github.com/snescore/snescore/hardware/cpu"
	"github.com/snescore/snescore/hardware/memory/cpubus"
	"github.com/snescore/snescore/logger"
	"github.com/snescore/snescore/test"
)

const (
	accessCycles = 8
	idleCycles   = 6
)

// flat memory covering the entire 24 bit address space.
type mockMem struct {
	data []uint8
}

func newMockMem() *mockMem {
	return &mockMem{data: make([]uint8, 0x1000000)}
}

func (mem *mockMem) Read(address uint32) uint8 {
	return mem.data[address&0xffffff]
}

func (mem *mockMem) Write(address uint32, data uint8) {
	mem.data[address&0xffffff] = data
}

func (mem *mockMem) AccessCycles(_ uint32) int {
	return accessCycles
}

func (mem *mockMem) IdleCycles() int {
	return idleCycles
}

func (mem *mockMem) vector(vector uint16, addr uint16) {
	mem.data[vector] = uint8(addr)
	mem.data[vector+1] = uint8(addr >> 8)
}

type mockLines struct {
	nmi bool
	irq bool
}

func (l *mockLines) TakeNMI() bool {
	v := l.nmi
	l.nmi = false
	return v
}

func (l *mockLines) IRQ() bool {
	return l.irq
}

// assemble code at the address.
func assemble(t *testing.T, mem *mockMem, addr uint32, program func(a *asm.Emitter)) {
	t.Helper()
	a := asm.NewEmitter(make([]byte, 0x200), false)
	a.SetBase(addr)

	// the CPU comes out of reset with 8 bit registers
	a.AssumeSEP(0x30)
	program(a)
	test.DemandSuccess(t, a.Finalize())
	copy(mem.data[addr:], a.Bytes())
}

func newTestCPU(t *testing.T, program func(a *asm.Emitter)) (*cpu.CPU, *mockMem, *mockLines) {
	t.Helper()
	mem := newMockMem()
	mem.vector(cpubus.Reset, 0x8000)
	assemble(t, mem, 0x008000, program)

	lines := &mockLines{}
	mc := cpu.NewCPU(logger.Allow, mem, lines)
	mc.Reset()
	return mc, mem, lines
}

// step executes a single instruction and checks the result is consistent.
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles, err := mc.ExecuteInstruction()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, cycles, mc.LastResult.MasterCycles)
	return cycles
}

// native mode and clear carry.
func native(a *asm.Emitter) {
	a.EmitBytes([]byte{0x18, 0xfb})
}

func TestReset(t *testing.T) {
	mc, _, _ := newTestCPU(t, func(a *asm.Emitter) {
		a.NOP()
	})
	test.ExpectEquality(t, mc.PC, uint16(0x8000))
	test.ExpectEquality(t, mc.E, true)
	test.ExpectEquality(t, mc.S, uint16(0x01ff))
	test.ExpectEquality(t, mc.P.InterruptDisable, true)
	test.ExpectEquality(t, mc.Accumulator8(), true)
	test.ExpectEquality(t, mc.Index8(), true)
}

func TestLoadStore(t *testing.T) {
	mc, mem, _ := newTestCPU(t, func(a *asm.Emitter) {
		a.SEP(0x30)
		a.LDA_imm8_b(0x42)
		a.STA_dp(0x10)
		a.LDA_imm8_b(0x00)
		a.LDA_dp(0x10)
	})

	// SEP: opcode, operand and one internal cycle
	test.ExpectEquality(t, step(t, mc), 2*accessCycles+idleCycles)

	// immediate load
	test.ExpectEquality(t, step(t, mc), 2*accessCycles)
	test.ExpectEquality(t, mc.A&0xff, uint16(0x42))

	test.ExpectEquality(t, step(t, mc), 3*accessCycles)
	test.ExpectEquality(t, mem.data[0x10], uint8(0x42))

	step(t, mc)
	test.ExpectEquality(t, mc.P.Zero, true)
	step(t, mc)
	test.ExpectEquality(t, mc.A&0xff, uint16(0x42))
	test.ExpectEquality(t, mc.P.Zero, false)
}

func TestWideRegisters(t *testing.T) {
	mc, mem, _ := newTestCPU(t, func(a *asm.Emitter) {
		native(a)
		a.REP(0x30)
		a.LDA_imm16_w(0x8234)
		a.STA_long(0x7e0000)
	})

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.E, false)
	step(t, mc)
	test.ExpectEquality(t, mc.Accumulator8(), false)
	test.ExpectEquality(t, mc.Index8(), false)

	// the immediate operand is one byte longer with a wide accumulator
	test.ExpectEquality(t, step(t, mc), 3*accessCycles)
	test.ExpectEquality(t, mc.LastResult.ByteCount, 3)
	test.ExpectEquality(t, mc.A, uint16(0x8234))
	test.ExpectEquality(t, mc.P.Negative, true)

	test.ExpectEquality(t, step(t, mc), 6*accessCycles)
	test.ExpectEquality(t, mem.data[0x7e0000], uint8(0x34))
	test.ExpectEquality(t, mem.data[0x7e0001], uint8(0x82))
}

func TestDecimal(t *testing.T) {
	mc, _, _ := newTestCPU(t, func(a *asm.Emitter) {
		a.EmitBytes([]byte{0xf8, 0x18}) // SED CLC
		a.LDA_imm8_b(0x19)
		a.ADC_imm8_b(0x01)
	})

	for range 4 {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.A&0xff, uint16(0x20))
	test.ExpectEquality(t, mc.P.Carry, false)
}

func TestBranch(t *testing.T) {
	mc, _, _ := newTestCPU(t, func(a *asm.Emitter) {
		a.LDX_imm8_b(0x03)
		a.DEX()
		a.BNE_imm8(-3)
		a.NOP()
	})

	step(t, mc)
	for i := range 3 {
		step(t, mc)
		cycles := step(t, mc)
		if i < 2 {
			test.ExpectEquality(t, mc.LastResult.BranchSuccess, true)
			test.ExpectEquality(t, cycles, 2*accessCycles+idleCycles)
		} else {
			test.ExpectEquality(t, mc.LastResult.BranchSuccess, false)
			test.ExpectEquality(t, cycles, 2*accessCycles)
		}
	}
	test.ExpectEquality(t, mc.X, uint16(0))
	test.ExpectEquality(t, mc.PC, uint16(0x8005))
}

func TestPageFault(t *testing.T) {
	mc, mem, _ := newTestCPU(t, func(a *asm.Emitter) {
		a.LDX_imm8_b(0x01)
		a.LDA_abs_x(0x10ff)
		a.LDA_abs_x(0x1000)
	})
	mem.data[0x1100] = 0x99
	mem.data[0x1001] = 0x11

	step(t, mc)

	test.ExpectEquality(t, step(t, mc), 4*accessCycles+idleCycles)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)
	test.ExpectEquality(t, mc.A&0xff, uint16(0x99))

	test.ExpectEquality(t, step(t, mc), 4*accessCycles)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)
	test.ExpectEquality(t, mc.A&0xff, uint16(0x11))
}

func TestSubroutine(t *testing.T) {
	mc, mem, _ := newTestCPU(t, func(a *asm.Emitter) {
		a.JSL(0x019000)
		a.NOP()
	})
	assemble(t, mem, 0x019000, func(a *asm.Emitter) {
		a.RTL()
	})

	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 8)
	test.ExpectEquality(t, mc.PB, uint8(0x01))
	test.ExpectEquality(t, mc.PC, uint16(0x9000))
	test.ExpectEquality(t, mc.S, uint16(0x01fc))

	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
	test.ExpectEquality(t, mc.PB, uint8(0x00))
	test.ExpectEquality(t, mc.PC, uint16(0x8004))
	test.ExpectEquality(t, mc.S, uint16(0x01ff))
}

func TestBlockMove(t *testing.T) {
	mc, mem, _ := newTestCPU(t, func(a *asm.Emitter) {
		native(a)
		a.REP(0x30)
		a.LDA_imm16_w(0x0003)
		a.EmitBytes([]byte{0xa2, 0x00, 0x10}) // LDX #$1000
		a.EmitBytes([]byte{0xa0, 0x00, 0x20}) // LDY #$2000
		a.EmitBytes([]byte{0x54, 0x7f, 0x7e}) // MVN $7f,$7e
		a.NOP()
	})
	copy(mem.data[0x7e1000:], []uint8{1, 2, 3, 4})

	for range 6 {
		step(t, mc)
	}

	for range 4 {
		test.ExpectEquality(t, step(t, mc), 5*accessCycles+2*idleCycles)
	}

	test.ExpectEquality(t, mc.A, uint16(0xffff))
	test.ExpectEquality(t, mc.X, uint16(0x1004))
	test.ExpectEquality(t, mc.Y, uint16(0x2004))
	test.ExpectEquality(t, mc.DB, uint8(0x7f))
	test.ExpectEquality(t, mc.PC, uint16(0x8010))
	for i := range 4 {
		test.ExpectEquality(t, mem.data[0x7f2000+i], uint8(i+1))
	}
}

func TestNMI(t *testing.T) {
	mc, mem, lines := newTestCPU(t, func(a *asm.Emitter) {
		native(a)
		a.NOP()
		a.NOP()
	})
	mem.vector(cpubus.NativeNMI, 0x9000)
	assemble(t, mem, 0x009000, func(a *asm.Emitter) {
		a.EmitBytes([]byte{0x40}) // RTI
	})

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x8003))
	sp := mc.S

	lines.nmi = true
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, cpu.InterruptNMI)
	test.ExpectEquality(t, mc.LastResult.Cycles, 8)
	test.ExpectEquality(t, mc.PC, uint16(0x9000))
	test.ExpectEquality(t, mc.S, sp-4)
	test.ExpectEquality(t, mc.P.InterruptDisable, true)

	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 7)
	test.ExpectEquality(t, mc.PC, uint16(0x8003))
	test.ExpectEquality(t, mc.S, sp)
}

func TestIRQ(t *testing.T) {
	mc, mem, lines := newTestCPU(t, func(a *asm.Emitter) {
		a.NOP()
		a.EmitBytes([]byte{0x58}) // CLI
		a.NOP()
	})
	mem.vector(cpubus.EmulationIRQ, 0x9000)

	// masked while the interrupt disable flag is set
	lines.irq = true
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, "")
	step(t, mc)
	test.ExpectEquality(t, mc.P.InterruptDisable, false)

	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, cpu.InterruptIRQ)
	test.ExpectEquality(t, mc.PC, uint16(0x9000))

	// break flag is clear in the pushed status for a hardware interrupt
	test.ExpectEquality(t, mem.data[uint32(mc.S)+1]&0x10, uint8(0x00))
}

func TestBRK(t *testing.T) {
	mc, mem, _ := newTestCPU(t, func(a *asm.Emitter) {
		a.EmitBytes([]byte{0x00, 0xff}) // BRK #$ff
	})
	mem.vector(cpubus.EmulationBRK, 0x9000)

	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 7)
	test.ExpectEquality(t, mc.PC, uint16(0x9000))
	test.ExpectEquality(t, mem.data[uint32(mc.S)+1]&0x10, uint8(0x10))

	// return address skips the signature byte
	test.ExpectEquality(t, mem.data[uint32(mc.S)+2], uint8(0x02))
	test.ExpectEquality(t, mem.data[uint32(mc.S)+3], uint8(0x80))
}

func TestWait(t *testing.T) {
	mc, _, lines := newTestCPU(t, func(a *asm.Emitter) {
		a.EmitBytes([]byte{0xcb}) // WAI
		a.NOP()
	})

	step(t, mc)
	test.ExpectEquality(t, mc.Waiting, true)

	test.ExpectEquality(t, step(t, mc), idleCycles)
	test.ExpectEquality(t, mc.PC, uint16(0x8001))

	// a masked IRQ ends the wait without being serviced
	lines.irq = true
	step(t, mc)
	test.ExpectEquality(t, mc.Waiting, false)
	test.ExpectEquality(t, mc.PC, uint16(0x8002))
}

func TestStop(t *testing.T) {
	mc, _, lines := newTestCPU(t, func(a *asm.Emitter) {
		a.EmitBytes([]byte{0xdb}) // STP
		a.NOP()
	})

	step(t, mc)
	test.ExpectEquality(t, mc.Stopped, true)

	lines.nmi = true
	test.ExpectEquality(t, step(t, mc), idleCycles)
	test.ExpectEquality(t, mc.PC, uint16(0x8001))

	mc.Reset()
	test.ExpectEquality(t, mc.Stopped, false)
}

func TestIllegalReportedOnce(t *testing.T) {
	mc, _, _ := newTestCPU(t, func(a *asm.Emitter) {
		a.EmitBytes([]byte{0x42, 0x00}) // WDM
		a.EmitBytes([]byte{0x42, 0x00})
		a.NOP()
	})

	logger.Clear()
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x8005))

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, strings.Count(s.String(), "illegal opcode"), 1)
}

func TestSnapshot(t *testing.T) {
	mc, _, _ := newTestCPU(t, func(a *asm.Emitter) {
		a.LDA_imm8_b(0x55)
		a.LDA_imm8_b(0x66)
	})

	step(t, mc)
	s := mc.Snapshot()
	step(t, mc)
	test.ExpectEquality(t, mc.A&0xff, uint16(0x66))

	mc.Plumb(s)
	test.ExpectEquality(t, mc.A&0xff, uint16(0x55))
	test.ExpectEquality(t, mc.PC, uint16(0x8002))
	step(t, mc)
	test.ExpectEquality(t, mc.A&0xff, uint16(0x66))
}
