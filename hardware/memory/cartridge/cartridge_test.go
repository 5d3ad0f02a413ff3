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

package cartridge_test

import (
	"testing"

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware/memory/cartridge"
	"github.com/snescore/snescore/hardware/memory/cartridge/mapper"
	"github.com/snescore/snescore/test"
	"github.com/snescore/snescore/test/testrom"
)

func TestDetection(t *testing.T) {
	for _, tc := range []struct {
		layout testrom.Layout
		size   int
		kind   mapper.Kind
	}{
		{testrom.LoROM, 0x20000, mapper.LoROM},
		{testrom.HiROM, 0x40000, mapper.HiROM},
		{testrom.ExHiROM, 0x500000, mapper.ExHiROM},
		{testrom.Banked, 0x400000, mapper.Banked},
		{testrom.SuperFX, 0x100000, mapper.SuperFX},
	} {
		b := testrom.NewBuilder(tc.layout, tc.size)
		b.Title = "DETECT"
		cart, err := cartridge.NewCartridge(b.Build())
		test.DemandSuccess(t, err, tc.kind)
		test.ExpectEquality(t, cart.Kind, tc.kind)
		test.ExpectEquality(t, cart.Header.Title, "DETECT", tc.kind)
	}
}

func TestCopierHeader(t *testing.T) {
	b := testrom.NewBuilder(testrom.LoROM, 0x20000)
	data := append(make([]uint8, 512), b.Build()...)

	cart, err := cartridge.NewCartridge(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(cart.ROM), 0x20000)
	test.ExpectEquality(t, cart.Kind, mapper.LoROM)
}

func TestUnsupportedMapper(t *testing.T) {
	b := testrom.NewBuilder(testrom.LoROM, 0x20000)
	data := b.Build()

	// change map mode to SA-1. the LoROM header is still the preferred
	// candidate
	data[0x7fd5] = 0x23

	_, err := cartridge.NewCartridge(data)
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedMapper))

	_, err = cartridge.NewCartridge(make([]uint8, 0x100))
	test.ExpectSuccess(t, curated.Is(err, cartridge.InvalidImage))
}

func TestIdentity(t *testing.T) {
	b := testrom.NewBuilder(testrom.LoROM, 0x20000)
	b.Title = "IDENTITY"
	cartA, err := cartridge.NewCartridge(b.Build())
	test.DemandSuccess(t, err)

	b = testrom.NewBuilder(testrom.LoROM, 0x20000)
	b.Title = "IDENTITY"
	b.Place(0x018000, []uint8{0x01})
	cartB, err := cartridge.NewCartridge(b.Build())
	test.DemandSuccess(t, err)

	test.ExpectInequality(t, cartA.Identity, cartB.Identity)
	test.ExpectInequality(t, cartA.CRC32, cartB.CRC32)
}

func TestSRAM(t *testing.T) {
	b := testrom.NewBuilder(testrom.LoROM, 0x20000)
	b.RAMSize = 3
	b.Battery = true
	cart, err := cartridge.NewCartridge(b.Build())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(cart.SRAM), 0x2000)
	test.ExpectSuccess(t, cart.Battery)

	area, o := cart.Map(0x70, 0x0010)
	test.DemandEquality(t, area, mapper.SRAM)
	test.ExpectEquality(t, o, uint32(0x0010))

	// SRAM is mirrored
	area, o = cart.Map(0xf0, 0x2010)
	test.DemandEquality(t, area, mapper.SRAM)
	test.ExpectEquality(t, o, uint32(0x0010))

	test.ExpectFailure(t, cart.BatteryDirty())
	cart.WriteSRAM(o, 0x55)
	test.ExpectSuccess(t, cart.BatteryDirty())
	cart.ClearBatteryDirty()

	// writing the same value does not dirty the battery
	cart.WriteSRAM(o, 0x55)
	test.ExpectFailure(t, cart.BatteryDirty())

	// restoring identical contents leaves the flag alone
	saved := append([]uint8(nil), cart.SRAM...)
	cart.RestoreSRAM(saved)
	test.ExpectFailure(t, cart.BatteryDirty())

	saved[0] ^= 0xff
	cart.RestoreSRAM(saved)
	test.ExpectSuccess(t, cart.BatteryDirty())
	test.ExpectEquality(t, cart.SRAM[0], saved[0])
}

func TestLoROMMapping(t *testing.T) {
	b := testrom.NewBuilder(testrom.LoROM, 0x20000)
	b.Place(0x018000, []uint8{0xaa})
	cart, err := cartridge.NewCartridge(b.Build())
	test.DemandSuccess(t, err)

	for _, addr := range []uint32{0x018000, 0x818000, 0x410000} {
		o, ok := cart.ROMOffset(addr)
		test.ExpectSuccess(t, ok, addr)
		test.ExpectEquality(t, o, uint32(0x8000), addr)
	}

	// a 128K ROM is mirrored every four banks
	o, ok := cart.ROMOffset(0x058000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, o, uint32(0x8000))

	// no SRAM so the area is unmapped
	area, _ := cart.Map(0x70, 0x0000)
	test.ExpectEquality(t, area, mapper.Unmapped)
}

func TestHiROMMapping(t *testing.T) {
	b := testrom.NewBuilder(testrom.HiROM, 0x40000)
	b.RAMSize = 1
	cart, err := cartridge.NewCartridge(b.Build())
	test.DemandSuccess(t, err)

	o, ok := cart.ROMOffset(0xc12345)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, o, uint32(0x012345))

	o, ok = cart.ROMOffset(0x01c000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, o, uint32(0x01c000))

	area, o := cart.Map(0x30, 0x6001)
	test.ExpectEquality(t, area, mapper.SRAM)
	test.ExpectEquality(t, o, uint32(0x0001))
}

func TestMirror(t *testing.T) {
	// a 3MB image is mirrored as 2MB + 1MB + 1MB
	b := testrom.NewBuilder(testrom.HiROM, 0x300000)
	cart, err := cartridge.NewCartridge(b.Build())
	test.DemandSuccess(t, err)

	o, ok := cart.ROMOffset(0xf00000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, o, uint32(0x200000))
}

func TestSwitchBank(t *testing.T) {
	b := testrom.NewBuilder(testrom.Banked, 0x400000)
	b.Data[0x300000] = 0x33
	cart, err := cartridge.NewCartridge(b.Build())
	test.DemandSuccess(t, err)

	o, ok := cart.ROMOffset(0xc00000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, o, uint32(0x000000))

	test.DemandSuccess(t, cart.SwitchBank(0, 3))
	o, _ = cart.ROMOffset(0xc00000)
	test.ExpectEquality(t, o, uint32(0x300000))
	test.ExpectEquality(t, cart.ROM[o], uint8(0x33))

	// out of range banks and windows
	test.ExpectFailure(t, cart.SwitchBank(0, 4))
	test.ExpectFailure(t, cart.SwitchBank(4, 0))

	// bank registers
	v, ok := cart.ReadRegister(0x4804)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(3))
	test.ExpectSuccess(t, cart.WriteRegister(0x4807, 0x01))
	o, _ = cart.ROMOffset(0xf00000)
	test.ExpectEquality(t, o, uint32(0x100000))

	// snapshot and reset
	s := cart.Snapshot()
	cart.Reset()
	o, _ = cart.ROMOffset(0xc00000)
	test.ExpectEquality(t, o, uint32(0x000000))
	cart.Plumb(s)
	o, _ = cart.ROMOffset(0xc00000)
	test.ExpectEquality(t, o, uint32(0x300000))

	// other mappers cannot switch banks
	lo, err := cartridge.NewCartridge(testrom.NewBuilder(testrom.LoROM, 0x20000).Build())
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, curated.Is(lo.SwitchBank(0, 0), cartridge.NoSwitchableBanks))
}

func TestSuperFXMapping(t *testing.T) {
	b := testrom.NewBuilder(testrom.SuperFX, 0x100000)
	b.ExpansionRAM = 5
	b.Battery = true
	cart, err := cartridge.NewCartridge(b.Build())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(cart.SRAM), 0x8000)
	test.ExpectSuccess(t, cart.Battery)

	o, ok := cart.ROMOffset(0x400010)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, o, uint32(0x000010))

	area, o := cart.Map(0x70, 0x1234)
	test.ExpectEquality(t, area, mapper.SRAM)
	test.ExpectEquality(t, o, uint32(0x1234))

	area, o = cart.Map(0x00, 0x6004)
	test.ExpectEquality(t, area, mapper.SRAM)
	test.ExpectEquality(t, o, uint32(0x0004))
}
