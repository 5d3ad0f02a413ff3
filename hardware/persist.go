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
	"fmt"

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware/apu"
	"github.com/snescore/snescore/hardware/clocks"
	"github.com/snescore/snescore/hardware/coprocessor/gsu"
	"github.com/snescore/snescore/hardware/cpu"
	"github.com/snescore/snescore/hardware/memory"
	"github.com/snescore/snescore/hardware/memory/cartridge"
	"github.com/snescore/snescore/hardware/ppu"
	"github.com/snescore/snescore/hardware/timing"
	"github.com/snescore/snescore/savestate"
)

// NotQuiesced is returned by the save and load functions if the emulation
// is running and has not been paused.
const NotQuiesced = "snes: emulation must be paused before %s"

// region IDs in a save buffer.
const (
	regionCPU uint16 = iota + 1
	regionMem
	regionPPU
	regionAPU
	regionTiming
	regionCart
	regionSRAM
	regionGSU
)

// a fixed size value and the region it is saved in.
type value struct {
	id uint16
	v  any
}

// CartridgeCRC implements the savestate.Machine interface.
func (snes *SNES) CartridgeCRC() uint32 {
	if snes.cart == nil {
		return 0
	}
	return snes.cart.CRC32
}

// Regions implements the savestate.Machine interface.
func (snes *SNES) Regions(kind savestate.Kind) ([]savestate.Region, error) {
	s := snes.Snapshot()
	if s == nil {
		return nil, curated.Errorf(memory.NoCartridge)
	}

	sram := savestate.Region{ID: regionSRAM, Data: s.SRAM}

	switch kind {
	case savestate.KindSRAM:
		return []savestate.Region{sram}, nil
	case savestate.KindFull:
	default:
		return nil, fmt.Errorf("unsupported buffer kind (%s)", kind)
	}

	values := []value{
		{regionCPU, s.CPU},
		{regionMem, s.Mem},
		{regionPPU, s.PPU},
		{regionAPU, s.APU},
		{regionTiming, s.Timing},
		{regionCart, s.Cart},
	}
	if s.GSU != nil {
		values = append(values, value{regionGSU, s.GSU})
	}

	regions := make([]savestate.Region, 0, len(values)+1)
	for _, v := range values {
		r, err := savestate.EncodeValue(v.id, v.v)
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}
	regions = append(regions, sram)

	return regions, nil
}

type stateScratch struct {
	snes  *SNES
	state *State
}

func (s *stateScratch) Apply() {
	s.snes.Plumb(s.state)
}

type sramScratch struct {
	snes *SNES
	sram []uint8
}

func (s *sramScratch) Apply() {
	copy(s.snes.cart.SRAM, s.sram)
	s.snes.cart.ClearBatteryDirty()
}

// Decode implements the savestate.Machine interface. The SNES is not
// changed.
func (snes *SNES) Decode(kind savestate.Kind, regions []savestate.Region) (savestate.Scratch, error) {
	if snes.cart == nil {
		return nil, curated.Errorf(memory.NoCartridge)
	}

	switch kind {
	case savestate.KindSRAM:
		if len(regions) != 1 || regions[0].ID != regionSRAM {
			return nil, fmt.Errorf("SRAM buffer must contain exactly one SRAM region")
		}
		if len(regions[0].Data) != len(snes.cart.SRAM) {
			return nil, fmt.Errorf("SRAM is %d bytes, cartridge has %d bytes", len(regions[0].Data), len(snes.cart.SRAM))
		}
		return &sramScratch{snes: snes, sram: regions[0].Data}, nil
	case savestate.KindFull:
	default:
		return nil, fmt.Errorf("unsupported buffer kind (%s)", kind)
	}

	s := &State{
		CPU:    &cpu.State{},
		Mem:    &memory.State{},
		PPU:    &ppu.State{},
		APU:    &apu.State{},
		Timing: &timing.State{},
		Cart:   &cartridge.State{},
	}

	expected := uint32(1<<regionCPU | 1<<regionMem | 1<<regionPPU | 1<<regionAPU | 1<<regionTiming | 1<<regionCart | 1<<regionSRAM)
	if snes.GSU != nil {
		expected |= 1 << regionGSU
	}

	var seen uint32
	for _, r := range regions {
		var err error

		switch r.ID {
		case regionCPU:
			err = savestate.DecodeValue(r, s.CPU)
		case regionMem:
			err = savestate.DecodeValue(r, s.Mem)
		case regionPPU:
			err = savestate.DecodeValue(r, s.PPU)
		case regionAPU:
			err = savestate.DecodeValue(r, s.APU)
		case regionTiming:
			err = savestate.DecodeValue(r, s.Timing)
		case regionCart:
			err = savestate.DecodeValue(r, s.Cart)
		case regionSRAM:
			if len(r.Data) != len(snes.cart.SRAM) {
				err = fmt.Errorf("SRAM is %d bytes, cartridge has %d bytes", len(r.Data), len(snes.cart.SRAM))
			}
			s.SRAM = r.Data
		case regionGSU:
			if snes.GSU == nil {
				err = fmt.Errorf("coprocessor state for a cartridge without a coprocessor")
				break
			}
			s.GSU = &gsu.State{}
			err = savestate.DecodeValue(r, s.GSU)
		default:
			err = fmt.Errorf("unknown region %d", r.ID)
		}

		if err != nil {
			return nil, err
		}
		seen |= 1 << r.ID
	}

	if seen != expected {
		return nil, fmt.Errorf("missing regions (have %#x, need %#x)", seen, expected)
	}

	if err := snes.checkTiming(s.Timing); err != nil {
		return nil, err
	}
	if err := s.Mem.Validate(); err != nil {
		return nil, err
	}
	if err := s.PPU.Validate(); err != nil {
		return nil, err
	}
	if s.GSU != nil {
		if err := s.GSU.Validate(); err != nil {
			return nil, err
		}
	}

	return &stateScratch{snes: snes, state: s}, nil
}

// checkTiming rejects a beam position that is not possible for the current
// television specification.
func (snes *SNES) checkTiming(s *timing.State) error {
	spec := snes.Timing.Spec()
	if s.Scanline < 0 || int(s.Scanline) >= spec.Scanlines {
		return fmt.Errorf("scanline %d not possible for %s", s.Scanline, spec.ID)
	}
	if s.Dot < 0 || s.Dot >= clocks.MasterCyclesPerScanline {
		return fmt.Errorf("dot %d out of range", s.Dot)
	}
	if s.AudioAccumulator < 0 || s.AudioAccumulator >= int64(spec.MasterClock) {
		return fmt.Errorf("audio accumulator %d out of range", s.AudioAccumulator)
	}
	return nil
}

func (snes *SNES) quiesced(op string) error {
	if snes.cart == nil {
		return curated.Errorf(memory.NoCartridge)
	}
	if !snes.Governor.Quiesced() {
		return curated.Errorf(NotQuiesced, op)
	}
	return nil
}

// Save the complete state of the machine. The ROM is not included.
func (snes *SNES) Save() ([]byte, error) {
	if err := snes.quiesced("save"); err != nil {
		return nil, err
	}
	return snes.codec.Save(snes, savestate.KindFull)
}

// Load a buffer created by Save(). The buffer is validated completely
// before any part of the machine is changed. On error the machine is
// unchanged and the error will match savestate.CorruptOrIncompatible.
func (snes *SNES) Load(buf []byte) error {
	if err := snes.quiesced("load"); err != nil {
		return err
	}
	return snes.codec.Load(snes, savestate.KindFull, buf)
}

// Validate a buffer created by Save() without changing the machine.
func (snes *SNES) Validate(buf []byte) error {
	if snes.cart == nil {
		return curated.Errorf(memory.NoCartridge)
	}
	return snes.codec.Validate(snes, savestate.KindFull, buf)
}

// SaveSRAM saves the cartridge RAM. The battery dirty flag is cleared.
func (snes *SNES) SaveSRAM() ([]byte, error) {
	if err := snes.quiesced("saving SRAM"); err != nil {
		return nil, err
	}
	buf, err := snes.codec.Save(snes, savestate.KindSRAM)
	if err != nil {
		return nil, err
	}
	snes.cart.ClearBatteryDirty()
	return buf, nil
}

// LoadSRAM loads a buffer created by SaveSRAM(). The buffer must have been
// created for the same cartridge. On error the SRAM is unchanged.
func (snes *SNES) LoadSRAM(buf []byte) error {
	if err := snes.quiesced("loading SRAM"); err != nil {
		return err
	}
	return snes.codec.Load(snes, savestate.KindSRAM, buf)
}

// Codec returns the codec used by the save and load functions.
func (snes *SNES) Codec() *savestate.Codec {
	return snes.codec
}
