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

package timing

// NMIEnabled returns true if NMITIMEN enables the vertical blank NMI.
func (tm *Timing) NMIEnabled() bool {
	return tm.state.NMITIMEN&0x80 == 0x80
}

// AutoJoypadRead returns true if NMITIMEN enables the automatic joypad read.
func (tm *Timing) AutoJoypadRead() bool {
	return tm.state.NMITIMEN&0x01 == 0x01
}

// InVBlank returns true if the beam is in the vertical blank.
func (tm *Timing) InVBlank() bool {
	return tm.state.VBlank
}

// WriteNMITIMEN sets the interrupt enable register. Enabling the NMI during
// the vertical blank, while the RDNMI flag is still set, raises an NMI
// immediately. Disabling the timer IRQ acknowledges any pending IRQ.
func (tm *Timing) WriteNMITIMEN(data uint8) {
	s := tm.state
	if !tm.NMIEnabled() && data&0x80 == 0x80 && s.NMIFlag {
		s.NMIPending = true
	}
	s.NMITIMEN = data
	if data&0x30 == 0x00 {
		s.IRQFlag = false
	}
}

// WriteHTIMEL sets the low byte of HTIME.
func (tm *Timing) WriteHTIMEL(data uint8) {
	tm.state.HTIME = tm.state.HTIME&0x100 | uint16(data)
}

// WriteHTIMEH sets the high bit of HTIME.
func (tm *Timing) WriteHTIMEH(data uint8) {
	tm.state.HTIME = tm.state.HTIME&0x0ff | uint16(data&0x01)<<8
}

// WriteVTIMEL sets the low byte of VTIME.
func (tm *Timing) WriteVTIMEL(data uint8) {
	tm.state.VTIME = tm.state.VTIME&0x100 | uint16(data)
}

// WriteVTIMEH sets the high bit of VTIME.
func (tm *Timing) WriteVTIMEH(data uint8) {
	tm.state.VTIME = tm.state.VTIME&0x0ff | uint16(data&0x01)<<8
}

// ReadRDNMI returns bit 7 of RDNMI. The flag is cleared by the read.
func (tm *Timing) ReadRDNMI() uint8 {
	var v uint8
	if tm.state.NMIFlag {
		v = 0x80
	}
	tm.state.NMIFlag = false
	return v
}

// ReadTIMEUP returns bit 7 of TIMEUP. The flag is cleared by the read.
func (tm *Timing) ReadTIMEUP() uint8 {
	var v uint8
	if tm.state.IRQFlag {
		v = 0x80
	}
	tm.state.IRQFlag = false
	return v
}

// ReadHVBJOY returns bits 6 and 7 of HVBJOY. Bit 0, the joypad read busy
// flag, is always clear.
func (tm *Timing) ReadHVBJOY() uint8 {
	var v uint8
	if tm.state.VBlank {
		v |= 0x80
	}
	if tm.state.Dot <= hblankEnd || tm.state.Dot >= hblankStart {
		v |= 0x40
	}
	return v
}

// IRQ returns true while the timer IRQ is asserted.
func (tm *Timing) IRQ() bool {
	return tm.state.IRQFlag
}

// TakeNMI returns true if an NMI edge has occurred since the last call.
func (tm *Timing) TakeNMI() bool {
	if tm.state.NMIPending {
		tm.state.NMIPending = false
		return true
	}
	return false
}
