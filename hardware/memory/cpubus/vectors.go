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

package cpubus

// Interrupt vectors in bank zero when the CPU is in native mode.
const (
	NativeCOP = uint16(0xffe4)
	NativeBRK = uint16(0xffe6)
	NativeNMI = uint16(0xffea)
	NativeIRQ = uint16(0xffee)
)

// Interrupt vectors in bank zero when the CPU is in emulation mode. BRK
// shares the IRQ vector.
const (
	EmulationCOP = uint16(0xfff4)
	EmulationNMI = uint16(0xfffa)
	Reset        = uint16(0xfffc)
	EmulationIRQ = uint16(0xfffe)
	EmulationBRK = EmulationIRQ
)
