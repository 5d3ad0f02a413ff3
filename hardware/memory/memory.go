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

import (
	"fmt"
	"sync/atomic"

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware/apu"
	"github.com/snescore/snescore/hardware/clocks"
	"github.com/snescore/snescore/hardware/memory/cartridge"
	"github.com/snescore/snescore/hardware/ppu"
	"github.com/snescore/snescore/hardware/timing"
)

// NoCartridge is returned by operations that require a cartridge.
const NoCartridge = "memory: no cartridge inserted"

// WRAMSize is the size of work RAM.
const WRAMSize = 0x20000

// Coprocessor is implemented by any coprocessor that exposes registers to
// the CPU.
type Coprocessor interface {
	ReadRegister(addr uint16) (uint8, bool)
	WriteRegister(addr uint16, data uint8)
}

// State of the memory system, excluding the chips attached to it.
type State struct {
	WRAM [WRAMSize]uint8

	// WRAM port address
	WRAMAddr uint32

	// last value on the data bus
	OpenBus uint8

	// programmable I/O port
	WRIO uint8

	// multiply and divide unit
	WRMPYA uint8
	WRDIV  uint16
	RDDIV  uint16
	RDMPY  uint16

	HDMAEN uint8
	MEMSEL uint8

	// joypad serial latch and the auto-read values
	JoypadLatch uint8
	Joypads     [NumJoypads]uint16

	DMA [NumDMAChannels]DMAChannel
}

// Validate checks that the state can be plumbed into the memory system.
func (s *State) Validate() error {
	if s.WRAMAddr >= WRAMSize {
		return fmt.Errorf("WRAM port address %#x out of range", s.WRAMAddr)
	}
	return nil
}

// Bus is the CPU's view of the address space.
type Bus struct {
	state *State

	ppu    *ppu.PPU
	apu    *apu.APU
	timing *timing.Timing

	cart *cartridge.Cartridge
	cop  Coprocessor

	// access speeds for the three classes of region
	fast  int
	slow  int
	xslow int

	// master cycles used by DMA that the CPU has not yet accounted for
	stall int

	patches atomic.Pointer[overlay]
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(ppu *ppu.PPU, apu *apu.APU, tm *timing.Timing) *Bus {
	bus := &Bus{
		state:  &State{},
		ppu:    ppu,
		apu:    apu,
		timing: tm,
		fast:   clocks.FastAccess,
		slow:   clocks.SlowAccess,
		xslow:  clocks.XSlowAccess,
	}
	return bus
}

// SetAccessSpeeds changes the number of master cycles taken by accesses to
// the fast, slow and extra-slow regions.
func (bus *Bus) SetAccessSpeeds(fast, slow, xslow int) {
	bus.fast = fast
	bus.slow = slow
	bus.xslow = xslow
}

// AttachCartridge inserts the cartridge into the address space. A nil value
// removes the cartridge. The cheat overlay is discarded.
func (bus *Bus) AttachCartridge(cart *cartridge.Cartridge) {
	bus.cart = cart
	bus.cop = nil
	bus.patches.Store(nil)
}

// AttachCoprocessor adds the coprocessor's register window to the address
// space.
func (bus *Bus) AttachCoprocessor(cop Coprocessor) {
	bus.cop = cop
}

// Cartridge returns the attached cartridge. May be nil.
func (bus *Bus) Cartridge() *cartridge.Cartridge {
	return bus.cart
}

// Reset the memory system. WRAM is filled with the value.
func (bus *Bus) Reset(fill uint8) {
	bus.state = &State{}
	for i := range bus.state.WRAM {
		bus.state.WRAM[i] = fill
	}
	bus.state.WRIO = 0xff
	bus.stall = 0
}

// SoftReset resets the system registers. WRAM is not affected.
func (bus *Bus) SoftReset() {
	wram := bus.state.WRAM
	bus.state = &State{WRAM: wram}
	bus.state.WRIO = 0xff
	bus.stall = 0
}

// Snapshot creates a copy of the memory state.
func (bus *Bus) Snapshot() *State {
	n := *bus.state
	return &n
}

// Plumb a previously created snapshot into the memory system.
func (bus *Bus) Plumb(state *State) {
	n := *state
	bus.state = &n
	bus.stall = 0
}

// WRAM returns the contents of work RAM. The returned slice refers to the
// live memory.
func (bus *Bus) WRAM() []uint8 {
	return bus.state.WRAM[:]
}

// FastROM returns true if MEMSEL selects the fast access speed for the upper
// ROM banks.
func (bus *Bus) FastROM() bool {
	return bus.state.MEMSEL&0x01 == 0x01
}

// DrainStall returns the master cycles used by DMA since the previous call.
func (bus *Bus) DrainStall() int {
	s := bus.stall
	bus.stall = 0
	return s
}

// IdleCycles implements the cpubus.Memory interface.
func (bus *Bus) IdleCycles() int {
	return bus.fast
}

// AccessCycles implements the cpubus.Memory interface.
func (bus *Bus) AccessCycles(address uint32) int {
	bank := uint8(address >> 16)
	addr := uint16(address)

	if bank&0x40 == 0x00 {
		switch {
		case addr < 0x2000:
			return bus.slow
		case addr < 0x4000:
			return bus.fast
		case addr < 0x4200:
			return bus.xslow
		case addr < 0x6000:
			return bus.fast
		case addr < 0x8000:
			return bus.slow
		}
		if bank&0x80 == 0x80 && bus.FastROM() {
			return bus.fast
		}
		return bus.slow
	}

	if bank&0x80 == 0x80 && bus.FastROM() {
		return bus.fast
	}
	return bus.slow
}

// Read implements the cpubus.Memory interface.
func (bus *Bus) Read(address uint32) uint8 {
	loc := bus.decode(uint8(address>>16), uint16(address))

	v, ok := bus.read(loc)
	if ok {
		bus.state.OpenBus = v
	}

	if p, ok := bus.patch(loc); ok {
		bus.state.OpenBus = p
	}

	return bus.state.OpenBus
}

// Write implements the cpubus.Memory interface.
func (bus *Bus) Write(address uint32, data uint8) {
	bus.state.OpenBus = data
	bus.write(bus.decode(uint8(address>>16), uint16(address)), data)
}

// Peek returns the value at the address without side effects. Register
// locations return the value on the data bus.
func (bus *Bus) Peek(address uint32) uint8 {
	loc := bus.decode(uint8(address>>16), uint16(address))

	if p, ok := bus.patch(loc); ok {
		return p
	}

	switch loc.region {
	case regionWRAM:
		return bus.state.WRAM[loc.offset]
	case regionROM:
		return bus.cart.ROM[loc.offset]
	case regionSRAM:
		return bus.cart.SRAM[loc.offset]
	}
	return bus.state.OpenBus
}

// SwitchBank selects the ROM bank of a switchable window of the cartridge.
func (bus *Bus) SwitchBank(window int, bank int) error {
	if bus.cart == nil {
		return curated.Errorf(NoCartridge)
	}
	return bus.cart.SwitchBank(window, bank)
}

func (bus *Bus) read(loc location) (uint8, bool) {
	switch loc.region {
	case regionWRAM:
		return bus.state.WRAM[loc.offset], true
	case regionROM:
		return bus.cart.ROM[loc.offset], true
	case regionSRAM:
		return bus.cart.SRAM[loc.offset], true
	case regionPPU:
		return bus.ppu.Read(uint16(loc.offset))
	case regionAPU:
		return bus.apu.Read(uint16(loc.offset)), true
	case regionWRAMPort:
		return bus.readWRAMPort(uint16(loc.offset))
	case regionJoypad:
		return bus.readJoypadSerial(uint16(loc.offset)), true
	case regionSystem:
		return bus.readSystem(uint16(loc.offset))
	case regionDMA:
		return bus.readDMA(uint16(loc.offset))
	case regionCartRegister:
		return bus.cart.ReadRegister(uint16(loc.offset))
	case regionCoprocessor:
		return bus.cop.ReadRegister(uint16(loc.offset))
	}
	return 0, false
}

func (bus *Bus) write(loc location, data uint8) {
	switch loc.region {
	case regionWRAM:
		bus.state.WRAM[loc.offset] = data
	case regionSRAM:
		bus.cart.WriteSRAM(loc.offset, data)
	case regionPPU:
		bus.ppu.Write(uint16(loc.offset), data)
	case regionAPU:
		bus.apu.Write(uint16(loc.offset), data)
	case regionWRAMPort:
		bus.writeWRAMPort(uint16(loc.offset), data)
	case regionJoypad:
		bus.writeJoypadSerial(uint16(loc.offset), data)
	case regionSystem:
		bus.writeSystem(uint16(loc.offset), data)
	case regionDMA:
		bus.writeDMA(uint16(loc.offset), data)
	case regionCartRegister:
		bus.cart.WriteRegister(uint16(loc.offset), data)
	case regionCoprocessor:
		bus.cop.WriteRegister(uint16(loc.offset), data)
	}
}
