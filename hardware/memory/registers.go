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

package memory

// NumJoypads is the number of joypads read by the automatic joypad read.
const NumJoypads = 4

// system register addresses.
const (
	nmitimen = 0x4200
	wrio     = 0x4201
	wrmpya   = 0x4202
	wrmpyb   = 0x4203
	wrdivl   = 0x4204
	wrdivh   = 0x4205
	wrdivb   = 0x4206
	htimel   = 0x4207
	htimeh   = 0x4208
	vtimel   = 0x4209
	vtimeh   = 0x420a
	mdmaen   = 0x420b
	hdmaen   = 0x420c
	memsel   = 0x420d
	rdnmi    = 0x4210
	timeup   = 0x4211
	hvbjoy   = 0x4212
	rdio     = 0x4213
	rddivl   = 0x4214
	rddivh   = 0x4215
	rdmpyl   = 0x4216
	rdmpyh   = 0x4217
	joy1l    = 0x4218
	joy4h    = 0x421f
)

// cpu version number reported in the low bits of RDNMI.
const cpuVersion = 0x02

// SetJoypad sets the button state returned by the auto-read registers for
// the joypad. A set bit is a pressed button.
func (bus *Bus) SetJoypad(joypad int, buttons uint16) {
	if joypad >= 0 && joypad < NumJoypads {
		bus.state.Joypads[joypad] = buttons
	}
}

// Joypad returns the button state set by SetJoypad().
func (bus *Bus) Joypad(joypad int) uint16 {
	if joypad >= 0 && joypad < NumJoypads {
		return bus.state.Joypads[joypad]
	}
	return 0
}

func (bus *Bus) readSystem(addr uint16) (uint8, bool) {
	s := bus.state

	switch addr {
	case rdnmi:
		return bus.timing.ReadRDNMI() | s.OpenBus&0x70 | cpuVersion, true
	case timeup:
		return bus.timing.ReadTIMEUP() | s.OpenBus&0x7f, true
	case hvbjoy:
		return bus.timing.ReadHVBJOY() | s.OpenBus&0x3e, true
	case rdio:
		return s.WRIO, true
	case rddivl:
		return uint8(s.RDDIV), true
	case rddivh:
		return uint8(s.RDDIV >> 8), true
	case rdmpyl:
		return uint8(s.RDMPY), true
	case rdmpyh:
		return uint8(s.RDMPY >> 8), true
	}

	if addr >= joy1l && addr <= joy4h {
		j := s.Joypads[(addr-joy1l)>>1]
		if addr&0x01 == 0x01 {
			return uint8(j >> 8), true
		}
		return uint8(j), true
	}

	// write-only register
	return 0, false
}

func (bus *Bus) writeSystem(addr uint16, data uint8) {
	s := bus.state

	switch addr {
	case nmitimen:
		bus.timing.WriteNMITIMEN(data)
	case wrio:
		s.WRIO = data
	case wrmpya:
		s.WRMPYA = data
	case wrmpyb:
		s.RDMPY = uint16(s.WRMPYA) * uint16(data)
		s.RDDIV = uint16(data)
	case wrdivl:
		s.WRDIV = s.WRDIV&0xff00 | uint16(data)
	case wrdivh:
		s.WRDIV = s.WRDIV&0x00ff | uint16(data)<<8
	case wrdivb:
		if data == 0 {
			s.RDDIV = 0xffff
			s.RDMPY = s.WRDIV
		} else {
			s.RDDIV = s.WRDIV / uint16(data)
			s.RDMPY = s.WRDIV % uint16(data)
		}
	case htimel:
		bus.timing.WriteHTIMEL(data)
	case htimeh:
		bus.timing.WriteHTIMEH(data)
	case vtimel:
		bus.timing.WriteVTIMEL(data)
	case vtimeh:
		bus.timing.WriteVTIMEH(data)
	case mdmaen:
		bus.runDMA(data)
	case hdmaen:
		s.HDMAEN = data
	case memsel:
		s.MEMSEL = data & 0x01
	}
}

func (bus *Bus) readWRAMPort(addr uint16) (uint8, bool) {
	if addr != 0x2180 {
		return 0, false
	}
	v := bus.state.WRAM[bus.state.WRAMAddr]
	bus.state.WRAMAddr = (bus.state.WRAMAddr + 1) & (WRAMSize - 1)
	return v, true
}

func (bus *Bus) writeWRAMPort(addr uint16, data uint8) {
	s := bus.state
	switch addr {
	case 0x2180:
		s.WRAM[s.WRAMAddr] = data
		s.WRAMAddr = (s.WRAMAddr + 1) & (WRAMSize - 1)
	case 0x2181:
		s.WRAMAddr = s.WRAMAddr&0x1ff00 | uint32(data)
	case 0x2182:
		s.WRAMAddr = s.WRAMAddr&0x100ff | uint32(data)<<8
	case 0x2183:
		s.WRAMAddr = s.WRAMAddr&0x0ffff | uint32(data&0x01)<<16
	}
}

// the serial joypad ports always report that no buttons are pressed.
func (bus *Bus) readJoypadSerial(addr uint16) uint8 {
	if addr == 0x4016 {
		return bus.state.OpenBus & 0xfc
	}
	return bus.state.OpenBus&0xe0 | 0x1c
}

func (bus *Bus) writeJoypadSerial(addr uint16, data uint8) {
	if addr == 0x4016 {
		bus.state.JoypadLatch = data & 0x01
	}
}
