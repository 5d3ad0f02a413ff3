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

package hardware

import (
	"github.com/snescore/snescore/hardware/apu"
	"github.com/snescore/snescore/hardware/coprocessor/gsu"
	"github.com/snescore/snescore/hardware/cpu"
	"github.com/snescore/snescore/hardware/memory"
	"github.com/snescore/snescore/hardware/memory/cartridge"
	"github.com/snescore/snescore/hardware/ppu"
	"github.com/snescore/snescore/hardware/timing"
)

// State stores the SNES sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// The ROM is not part of the state.
type State struct {
	CPU    *cpu.State
	Mem    *memory.State
	PPU    *ppu.State
	APU    *apu.State
	Timing *timing.State
	Cart   *cartridge.State
	SRAM   []uint8

	// nil if the cartridge has no coprocessor
	GSU *gsu.State
}

// Snapshot the state of the SNES sub-systems. Returns nil if no cartridge
// is loaded.
func (snes *SNES) Snapshot() *State {
	if snes.cart == nil {
		return nil
	}

	s := &State{
		CPU:    snes.CPU.Snapshot(),
		Mem:    snes.Mem.Snapshot(),
		PPU:    snes.PPU.Snapshot(),
		APU:    snes.APU.Snapshot(),
		Timing: snes.Timing.Snapshot(),
		Cart:   snes.cart.Snapshot(),
		SRAM:   make([]uint8, len(snes.cart.SRAM)),
	}
	copy(s.SRAM, snes.cart.SRAM)

	if snes.GSU != nil {
		s.GSU = snes.GSU.Snapshot()
	}

	return s
}

// Plumb a previously snapshotted system. The state must have been created
// for the currently loaded cartridge.
func (snes *SNES) Plumb(state *State) {
	if state == nil {
		panic("snes: cannot plumb in a nil state")
	}

	snes.CPU.Plumb(state.CPU)
	snes.Mem.Plumb(state.Mem)
	snes.PPU.Plumb(state.PPU)
	snes.APU.Plumb(state.APU)
	snes.Timing.Plumb(state.Timing)
	snes.cart.Plumb(state.Cart)
	snes.cart.RestoreSRAM(state.SRAM)

	if snes.GSU != nil && state.GSU != nil {
		snes.GSU.Plumb(state.GSU)
	}

	snes.frameDone = false
}
