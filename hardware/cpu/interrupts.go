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

import "github.com/snescore/snescore/hardware/memory/cpubus"

// Names of interrupts recorded in LastResult.
const (
	InterruptNMI = "NMI"
	InterruptIRQ = "IRQ"
)

// serviceInterrupts checks the interrupt lines. returns true if an interrupt
// was serviced.
func (mc *CPU) serviceInterrupts() bool {
	if mc.lines == nil {
		return false
	}

	if mc.lines.TakeNMI() {
		mc.Waiting = false
		mc.LastResult.Interrupt = InterruptNMI
		mc.idle()
		mc.idle()
		if mc.E {
			mc.interrupt(cpubus.EmulationNMI, false)
		} else {
			mc.interrupt(cpubus.NativeNMI, false)
		}
		return true
	}

	if mc.lines.IRQ() {
		// an IRQ ends a WAI even if interrupts are disabled, in which
		// case execution continues with the next instruction
		mc.Waiting = false

		if !mc.P.InterruptDisable {
			mc.LastResult.Interrupt = InterruptIRQ
			mc.idle()
			mc.idle()
			if mc.E {
				mc.interrupt(cpubus.EmulationIRQ, false)
			} else {
				mc.interrupt(cpubus.NativeIRQ, false)
			}
			return true
		}
	}

	return false
}

// interrupt pushes the return state and jumps through the vector. the break
// flag is only meaningful in emulation mode.
func (mc *CPU) interrupt(vector uint16, brk bool) {
	if !mc.E {
		mc.push(mc.PB)
	}
	mc.push16(mc.PC)

	p := mc.P.Value()
	if mc.E {
		if brk {
			p |= 0x10
		} else {
			p &^= 0x10
		}
	}
	mc.push(p)

	mc.P.InterruptDisable = true
	mc.P.DecimalMode = false
	mc.PB = 0

	lo := mc.read(uint32(vector))
	hi := mc.read(uint32(vector + 1))
	mc.PC = uint16(hi)<<8 | uint16(lo)
}
