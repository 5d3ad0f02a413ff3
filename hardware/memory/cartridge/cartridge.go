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

package cartridge

import (
	"bytes"
	"fmt"
	"hash/crc32"

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware/memory/cartridge/mapper"
	"github.com/snescore/snescore/logger"
)

// Sentinal error patterns.
const (
	UnsupportedMapper = "cartridge: unsupported mapper (map mode %#02x, chipset %#02x)"
	InvalidImage      = "cartridge: invalid image: %v"
	NoSwitchableBanks = "cartridge: %s mapper has no switchable banks"
	InvalidBank       = "cartridge: invalid bank (window %d, bank %d)"
)

// minimum size of a cartridge image.
const minImageSize = 0x8000

// Cartridge is a loaded SNES cartridge.
type Cartridge struct {
	Header Header
	Kind   mapper.Kind

	// the ROM data with any copier header removed. the ROM is never written
	// to after the cartridge has been created
	ROM []uint8

	// cartridge RAM. for SuperFX cartridges this is the GSU RAM. may be
	// empty
	SRAM []uint8

	// SRAM is battery backed
	Battery bool

	// CRC32 of the ROM data
	CRC32 uint32

	// combination of CRC32 and title identifying the cartridge. used to key
	// SRAM files
	Identity string

	state *State

	// SRAM has been written to since ClearBatteryDirty() was last called
	batteryDirty bool
}

// State is the mutable state of the cartridge, excluding SRAM.
type State struct {
	// bank selected for each switchable window
	Windows [mapper.NumSwitchableWindows]uint8
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The data is copied.
func NewCartridge(data []uint8) (*Cartridge, error) {
	if len(data)%1024 == copierHeaderSize {
		data = data[copierHeaderSize:]
	}

	if len(data) < minImageSize {
		return nil, curated.Errorf(InvalidImage, fmt.Sprintf("too small (%d bytes)", len(data)))
	}

	hdr, candidate, ok := findHeader(data)
	if !ok {
		return nil, curated.Errorf(InvalidImage, "no header")
	}

	kind, err := resolveKind(hdr, candidate)
	if err != nil {
		return nil, err
	}

	cart := &Cartridge{
		Header: hdr,
		Kind:   kind,
		ROM:    make([]uint8, len(data)),
		state:  &State{},
	}
	copy(cart.ROM, data)

	cart.CRC32 = crc32.ChecksumIEEE(cart.ROM)
	cart.Identity = fmt.Sprintf("%08X-%s", cart.CRC32, hdr.Title)

	cart.SRAM = make([]uint8, sramSize(hdr, kind))
	cart.Battery = len(cart.SRAM) > 0 && hasBattery(hdr, kind)

	if hdr.Checksum^hdr.Complement != 0xffff {
		logger.Logf(logger.Allow, "cartridge", "header checksum complement mismatch (%04x %04x)", hdr.Checksum, hdr.Complement)
	}

	cart.Reset()

	return cart, nil
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s %s (%dK ROM, %dK RAM)", cart.Kind, cart.Header.Title, len(cart.ROM)/1024, len(cart.SRAM)/1024)
}

// resolveKind chooses the mapper from the header and the candidate layout
// the header was found in.
func resolveKind(hdr Header, candidate mapper.Kind) (mapper.Kind, error) {
	switch candidate {
	case mapper.LoROM:
		switch hdr.MapMode & 0x0f {
		case 0x00:
			switch hdr.Chipset {
			case 0x13, 0x14, 0x15, 0x1a:
				return mapper.SuperFX, nil
			}
			return mapper.LoROM, nil
		case 0x02:
			return mapper.Banked, nil
		}
	case mapper.HiROM:
		if hdr.MapMode&0x0f == 0x01 {
			return mapper.HiROM, nil
		}
	case mapper.ExHiROM:
		if hdr.MapMode&0x0f == 0x05 {
			return mapper.ExHiROM, nil
		}
	}
	return mapper.LoROM, curated.Errorf(UnsupportedMapper, hdr.MapMode, hdr.Chipset)
}

// sramSize returns the size of the cartridge RAM in bytes.
func sramSize(hdr Header, kind mapper.Kind) int {
	if kind == mapper.SuperFX {
		if hdr.ExpansionRAM > 0 && hdr.ExpansionRAM <= 7 {
			return 1024 << hdr.ExpansionRAM
		}
		return 0x10000
	}
	if hdr.RAMSize == 0 || hdr.RAMSize > 8 {
		return 0
	}
	return 1024 << hdr.RAMSize
}

// hasBattery returns true if the chipset indicates battery backed RAM.
func hasBattery(hdr Header, kind mapper.Kind) bool {
	if kind == mapper.SuperFX {
		return hdr.Chipset == 0x15 || hdr.Chipset == 0x1a
	}
	switch hdr.Chipset & 0x0f {
	case 0x02, 0x05, 0x06:
		return true
	}
	return false
}

// Reset the bank registers. SRAM is not affected.
func (cart *Cartridge) Reset() {
	for i := range cart.state.Windows {
		cart.state.Windows[i] = uint8(i)
	}
}

// Snapshot creates a copy of the cartridge state.
func (cart *Cartridge) Snapshot() *State {
	n := *cart.state
	return &n
}

// Plumb a previously created snapshot into the cartridge.
func (cart *Cartridge) Plumb(state *State) {
	n := *state
	cart.state = &n
}

// SwitchBank selects the ROM bank for a switchable window. Only the Banked
// mapper has switchable windows.
func (cart *Cartridge) SwitchBank(window int, bank int) error {
	if cart.Kind != mapper.Banked {
		return curated.Errorf(NoSwitchableBanks, cart.Kind)
	}
	if window < 0 || window >= mapper.NumSwitchableWindows || bank < 0 || bank*mapper.WindowSize >= len(cart.ROM) {
		return curated.Errorf(InvalidBank, window, bank)
	}
	cart.state.Windows[window] = uint8(bank)
	return nil
}

// Banks returns the current bank for each switchable window. Returns nil if
// the mapper has no switchable windows.
func (cart *Cartridge) Banks() []mapper.BankInfo {
	if cart.Kind != mapper.Banked {
		return nil
	}
	b := make([]mapper.BankInfo, mapper.NumSwitchableWindows)
	for i := range b {
		b[i] = mapper.BankInfo{Window: i, Bank: int(cart.state.Windows[i])}
	}
	return b
}

// Windows returns the bank selected for each switchable window. The value
// is only meaningful for the Banked mapper.
func (cart *Cartridge) Windows() [mapper.NumSwitchableWindows]uint8 {
	return cart.state.Windows
}

// WriteSRAM writes to the cartridge RAM. The offset must have been returned
// by Map().
func (cart *Cartridge) WriteSRAM(offset uint32, data uint8) {
	if cart.SRAM[offset] != data {
		cart.SRAM[offset] = data
		if cart.Battery {
			cart.batteryDirty = true
		}
	}
}

// RestoreSRAM replaces the contents of the cartridge RAM. The battery dirty
// flag is raised if the contents change.
func (cart *Cartridge) RestoreSRAM(data []uint8) {
	if bytes.Equal(cart.SRAM, data) {
		return
	}
	copy(cart.SRAM, data)
	if cart.Battery {
		cart.batteryDirty = true
	}
}

// BatteryDirty returns true if battery backed SRAM has been changed since
// ClearBatteryDirty() was last called.
func (cart *Cartridge) BatteryDirty() bool {
	return cart.batteryDirty
}

// ClearBatteryDirty resets the flag returned by BatteryDirty().
func (cart *Cartridge) ClearBatteryDirty() {
	cart.batteryDirty = false
}

// the bank registers of the Banked mapper.
const (
	bankRegisterOrigin = 0x4804
	bankRegisterMemtop = 0x4807
)

// ReadRegister returns the value of a cartridge register in the system area.
// Returns false if the address is not a cartridge register.
func (cart *Cartridge) ReadRegister(addr uint16) (uint8, bool) {
	if cart.Kind == mapper.Banked && addr >= bankRegisterOrigin && addr <= bankRegisterMemtop {
		return cart.state.Windows[addr-bankRegisterOrigin], true
	}
	return 0, false
}

// WriteRegister writes to a cartridge register in the system area. Returns
// false if the address is not a cartridge register.
func (cart *Cartridge) WriteRegister(addr uint16, data uint8) bool {
	if cart.Kind == mapper.Banked && addr >= bankRegisterOrigin && addr <= bankRegisterMemtop {
		cart.state.Windows[addr-bankRegisterOrigin] = data & 0x07
		return true
	}
	return false
}
