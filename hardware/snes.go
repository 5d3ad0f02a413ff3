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
	"github.com/snescore/snescore/cheats"
	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware/apu"
	"github.com/snescore/snescore/hardware/clocks"
	"github.com/snescore/snescore/hardware/coprocessor/gsu"
	"github.com/snescore/snescore/hardware/cpu"
	"github.com/snescore/snescore/hardware/govern"
	"github.com/snescore/snescore/hardware/memory"
	"github.com/snescore/snescore/hardware/memory/cartridge"
	"github.com/snescore/snescore/hardware/memory/cartridge/mapper"
	"github.com/snescore/snescore/hardware/output"
	"github.com/snescore/snescore/hardware/ppu"
	"github.com/snescore/snescore/hardware/preferences"
	"github.com/snescore/snescore/hardware/timing"
	"github.com/snescore/snescore/logger"
	"github.com/snescore/snescore/prefs"
	"github.com/snescore/snescore/random"
	"github.com/snescore/snescore/savestate"
)

// SNES struct is the main container for the emulated components of the SNES.
type SNES struct {
	// the configuration used by the most recent reset
	Config preferences.Config

	CPU    *cpu.CPU
	Mem    *memory.Bus
	PPU    *ppu.PPU
	APU    *apu.APU
	Timing *timing.Timing

	// the SuperFX coprocessor. nil unless a SuperFX cartridge is loaded
	GSU *gsu.GSU

	Cheats *cheats.Cheats

	// output to the consumer goroutine
	Audio  *output.AudioRing
	Frames *output.Frames

	// the pause and resume handshake used by Run()
	Governor *govern.Governor

	// the currently loaded cartridge. nil if no cartridge has been loaded
	cart *cartridge.Cartridge

	codec *savestate.Codec
	rnd   *random.Random

	// receives the events from the timing model
	sink *events

	// a frame has completed during the current call to RunFrame()
	frameDone bool

	perm logger.Permission
}

// NewSNES creates a new SNES and everything associated with the hardware.
// The perm argument controls whether the emulation logs anything. It can be
// nil, in which case the emulation always logs.
func NewSNES(perm logger.Permission, cfg preferences.Config) (*SNES, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if perm == nil {
		perm = logger.Allow
	}

	snes := &SNES{
		Config:   cfg,
		APU:      apu.NewAPU(),
		Timing:   timing.NewTiming(clocks.SpecNTSC),
		Cheats:   cheats.NewCheats(),
		Audio:    output.NewAudioRing(output.DefaultAudioRingSize),
		Frames:   &output.Frames{},
		Governor: govern.NewGovernor(),
		codec:    savestate.NewCodec(perm),
		perm:     perm,
	}

	snes.PPU = ppu.NewPPU(snes.Timing)
	snes.Mem = memory.NewBus(snes.PPU, snes.APU, snes.Timing)
	snes.CPU = cpu.NewCPU(perm, snes.Mem, &lines{snes: snes})
	snes.rnd = random.NewRandom(snes.Timing, cfg.RandSeed)
	snes.sink = &events{snes: snes}

	snes.applyConfig()

	return snes, nil
}

// applyConfig sets the parts of the hardware that are derived from the
// configuration and the cartridge.
func (snes *SNES) applyConfig() {
	spec := clocks.SpecNTSC
	switch snes.Config.Region {
	case preferences.RegionPAL:
		spec = clocks.SpecPAL
	case preferences.RegionAuto:
		if snes.cart != nil && snes.cart.Header.PAL() {
			spec = clocks.SpecPAL
		}
	}

	snes.Timing.SetSpec(spec)
	snes.PPU.SetSpec(spec)
	snes.Mem.SetAccessSpeeds(snes.Config.FastAccess, snes.Config.SlowAccess, snes.Config.XSlowAccess)
	snes.rnd.Seed = snes.Config.RandSeed

	if snes.GSU != nil {
		snes.GSU.SetClockRatio(snes.Config.CoprocessorClockRatio)
	}
}

// Cartridge returns the currently loaded cartridge. Returns nil if no
// cartridge has been loaded.
func (snes *SNES) Cartridge() *cartridge.Cartridge {
	return snes.cart
}

// LoadCartridge replaces the cartridge and resets the machine to its
// power-on state. The SRAM of any previous cartridge is discarded, as is the
// list of cheats.
//
// On error the previous cartridge remains loaded and the machine is
// unchanged.
func (snes *SNES) LoadCartridge(data []uint8) error {
	cart, err := cartridge.NewCartridge(data)
	if err != nil {
		logger.Log(snes.perm, "cartridge", err)
		return err
	}

	snes.cart = cart
	snes.Mem.AttachCartridge(cart)

	snes.GSU = nil
	switch cart.Kind {
	case mapper.SuperFX:
		snes.GSU = gsu.NewGSU(snes.perm, cart)
		snes.Mem.AttachCoprocessor(snes.GSU)
	case mapper.LoROM, mapper.HiROM, mapper.ExHiROM, mapper.Banked:
	}

	snes.Cheats.Clear()

	logger.Logf(snes.perm, "cartridge", "loaded %s", cart)

	return snes.Reset(snes.Config)
}

// Reset the machine to its power-on state with a new configuration. The
// mapper and timing parameters are derived again from the configuration and
// the cartridge. Battery backed SRAM survives the reset.
//
// On error the machine is unchanged.
func (snes *SNES) Reset(cfg preferences.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if snes.cart == nil {
		return curated.Errorf(memory.NoCartridge)
	}

	snes.Config = cfg
	snes.applyConfig()

	snes.Mem.Reset(0x55)
	if snes.Config.RandomState {
		snes.rnd.Fill(snes.Mem.WRAM())
	}

	snes.PPU.Reset()
	snes.APU.Reset()
	snes.cart.Reset()
	if snes.GSU != nil {
		snes.GSU.Reset()
	}

	snes.CPU.Reset()
	if snes.Config.RandomState {
		snes.CPU.Randomise(snes.rnd.Rand())
	}

	snes.Frames.Reset()
	snes.frameDone = false

	return nil
}

// SoftReset emulates the reset button on the console. The registers of the
// CPU, PPU and APU are reset. The cartridge, SRAM and WRAM are preserved.
func (snes *SNES) SoftReset() error {
	if snes.cart == nil {
		return curated.Errorf(memory.NoCartridge)
	}

	snes.Mem.SoftReset()
	snes.Timing.Reset()
	snes.PPU.Reset()
	snes.APU.Reset()
	snes.cart.Reset()
	if snes.GSU != nil {
		snes.GSU.Reset()
	}
	snes.CPU.Reset()
	snes.frameDone = false

	return nil
}

// SetCoprocessorClockRatio changes the speed of the coprocessor relative to
// its stock speed. The change takes effect from the next call to Step(). The
// state of the machine is not changed.
func (snes *SNES) SetCoprocessorClockRatio(ratio float64) error {
	if err := preferences.ValidateRatio(ratio); err != nil {
		return err
	}
	snes.Config.CoprocessorClockRatio = ratio
	if snes.GSU != nil {
		snes.GSU.SetClockRatio(ratio)
	}
	return nil
}

// FollowPreferences changes the coprocessor clock ratio whenever the SuperFX
// overclock preference changes. The preference should only be changed by
// the goroutine running the emulation or while the emulation is paused.
func (snes *SNES) FollowPreferences(p *preferences.Preferences) {
	p.SuperFXOverclock.SetHookPost(func(v prefs.Value) error {
		o, err := preferences.FindSuperFXOverclock(v.(string))
		if err != nil {
			return err
		}
		return snes.SetCoprocessorClockRatio(o.Ratio())
	})
}

// SetJoypad sets the buttons held on a joypad. The value is in the order
// returned by the automatic joypad read.
func (snes *SNES) SetJoypad(joypad int, buttons uint16) {
	snes.Mem.SetJoypad(joypad, buttons)
}

// IsRunning returns true if a cartridge is loaded and the CPU has not been
// halted by a STP instruction.
func (snes *SNES) IsRunning() bool {
	return snes.cart != nil && !snes.CPU.Stopped
}

// FrameReady returns true if a frame has completed since the previous call.
func (snes *SNES) FrameReady() bool {
	return snes.Frames.Ready()
}

// BatteryBackupDirty returns true if battery backed SRAM has changed since
// it was last saved or loaded.
func (snes *SNES) BatteryBackupDirty() bool {
	return snes.cart != nil && snes.cart.BatteryDirty()
}
