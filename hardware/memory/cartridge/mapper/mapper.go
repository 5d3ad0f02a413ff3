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

package mapper

import "fmt"

// Kind is the mapping scheme used by a cartridge.
type Kind int

// List of supported mapping schemes.
const (
	// ROM in 32K pages in the upper half of each bank
	LoROM Kind = iota

	// ROM in 64K pages
	HiROM

	// HiROM extended to 8MB
	ExHiROM

	// LoROM with the upper 4MB of address space divided into four 1MB
	// windows. each window can be switched to any 1MB bank of the ROM
	Banked

	// LoROM with the GSU coprocessor and its RAM
	SuperFX
)

func (k Kind) String() string {
	switch k {
	case LoROM:
		return "LoROM"
	case HiROM:
		return "HiROM"
	case ExHiROM:
		return "ExHiROM"
	case Banked:
		return "Banked"
	case SuperFX:
		return "SuperFX"
	}
	return "unknown mapper"
}

// Area is the backing of a decoded cartridge address.
type Area int

// List of cartridge areas.
const (
	Unmapped Area = iota
	ROM
	SRAM
)

func (a Area) String() string {
	switch a {
	case Unmapped:
		return "unmapped"
	case ROM:
		return "ROM"
	case SRAM:
		return "SRAM"
	}
	return "unknown area"
}

// NumSwitchableWindows is the number of windows in the Banked scheme.
const NumSwitchableWindows = 4

// WindowSize is the size of a switchable window in the Banked scheme.
const WindowSize = 0x100000

// BankInfo describes the bank currently selected for a switchable window.
type BankInfo struct {
	Window int
	Bank   int
}

func (b BankInfo) String() string {
	return fmt.Sprintf("window %d: bank %d", b.Window, b.Bank)
}
