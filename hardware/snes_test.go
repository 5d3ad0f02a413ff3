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

package hardware_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware"
	"github.com/snescore/snescore/hardware/clocks"
	"github.com/snescore/snescore/hardware/govern"
	"github.com/snescore/snescore/hardware/memory"
	"github.com/snescore/snescore/hardware/memory/cartridge"
	"github.com/snescore/snescore/hardware/ppu"
	"github.com/snescore/snescore/hardware/preferences"
	"github.com/snescore/snescore/savestate"
	"github.com/snescore/snescore/test"
	"github.com/snescore/snescore/test/testrom"
)

// the main loop counts in $10 and copies the count to the start of SRAM. the
// NMI handler counts frames in $11.
var mainLoop = []uint8{
	0x64, 0x11, // STZ $11
	0xa9, 0x80, // LDA #$80
	0x8f, 0x00, 0x42, 0x00, // STA $004200
	0xa5, 0x10, // loop: LDA $10
	0x18,       // CLC
	0x69, 0x01, // ADC #$01
	0x85, 0x10, // STA $10
	0x8f, 0x00, 0x00, 0x70, // STA $700000
	0x80, 0xf3, // BRA loop
}

const nmiHandler = 0x8020

var nmiRoutine = []uint8{
	0x48,       // PHA
	0xa5, 0x11, // LDA $11
	0x18,       // CLC
	0x69, 0x01, // ADC #$01
	0x85, 0x11, // STA $11
	0xaf, 0x10, 0x42, 0x00, // LDA $004210
	0x68, // PLA
	0x40, // RTI
}

func buildROM(title string, region uint8) []uint8 {
	b := testrom.NewBuilder(testrom.LoROM, 0x20000)
	b.Title = title
	b.RAMSize = 3
	b.Battery = true
	b.Region = region
	b.Place(testrom.DefaultOrigin, mainLoop)
	b.Place(nmiHandler, nmiRoutine)
	b.Place(0x00a000, []uint8{0x12, 0x34})
	b.SetVector(testrom.VectorEmuNMI, nmiHandler)
	return b.Build()
}

func newSNES(t *testing.T) *hardware.SNES {
	t.Helper()
	snes, err := hardware.NewSNES(nil, preferences.NewConfig())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, snes.LoadCartridge(buildROM("COUNTER", 0x01)))
	return snes
}

func runFrames(t *testing.T, snes *hardware.SNES, n int) {
	t.Helper()
	test.DemandSuccess(t, snes.RunForFrameCount(n, nil))
}

func save(t *testing.T, snes *hardware.SNES) []byte {
	t.Helper()
	buf, err := snes.Save()
	test.DemandSuccess(t, err)
	return buf
}

func TestNoCartridge(t *testing.T) {
	snes, err := hardware.NewSNES(nil, preferences.NewConfig())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snes.IsRunning(), false)
	test.ExpectEquality(t, snes.BatteryBackupDirty(), false)
	test.ExpectEquality(t, curated.Is(snes.Step(), memory.NoCartridge), true)
	test.ExpectEquality(t, curated.Is(snes.SoftReset(), memory.NoCartridge), true)

	_, err = snes.Save()
	test.ExpectEquality(t, curated.Is(err, memory.NoCartridge), true)
}

func TestInvalidConfig(t *testing.T) {
	cfg := preferences.NewConfig()
	cfg.Region = "SECAM"
	_, err := hardware.NewSNES(nil, cfg)
	test.ExpectEquality(t, curated.Is(err, preferences.InvalidConfig), true)
}

func TestLoadCartridge(t *testing.T) {
	snes := newSNES(t)
	test.ExpectEquality(t, snes.IsRunning(), true)
	test.ExpectEquality(t, snes.CPU.PC, uint16(testrom.DefaultOrigin))
	test.ExpectEquality(t, len(snes.Cartridge().SRAM), 0x2000)
	test.ExpectEquality(t, snes.Timing.Spec().ID, clocks.SpecNTSC.ID)

	// an image that is too small is rejected and the previous cartridge
	// remains
	err := snes.LoadCartridge(make([]uint8, 0x1000))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cartridge.InvalidImage), true)
	test.ExpectEquality(t, snes.Cartridge().Header.Title, "COUNTER")

	// the region is taken from the header
	test.DemandSuccess(t, snes.LoadCartridge(buildROM("EUROPE", 0x02)))
	test.ExpectEquality(t, snes.Timing.Spec().ID, clocks.SpecPAL.ID)
}

func TestRunFrame(t *testing.T) {
	snes := newSNES(t)

	test.ExpectEquality(t, snes.FrameReady(), false)
	test.DemandSuccess(t, snes.RunFrame())
	test.ExpectEquality(t, snes.FrameReady(), true)
	test.ExpectEquality(t, snes.FrameReady(), false)
	test.ExpectEquality(t, snes.Timing.Frame(), 1)

	// the NMI handler has run once for each frame
	runFrames(t, snes, 9)
	test.ExpectEquality(t, snes.Timing.Frame(), 10)
	test.ExpectEquality(t, snes.Frames.Count(), uint64(10))
	test.ExpectEquality(t, snes.Mem.Peek(0x7e0011), 10)

	// a little over 532 samples per NTSC frame
	perFrame := float64(clocks.AudioRate) * float64(clocks.SpecNTSC.MasterCyclesPerFrame()) / float64(clocks.NTSC)
	test.ExpectApproximate(t, float64(snes.Audio.Len()), perFrame*10, 0.01)
}

func TestRunForFrameCountEnding(t *testing.T) {
	snes := newSNES(t)

	var frames []int
	err := snes.RunForFrameCount(10, func(frame int) (govern.State, error) {
		frames = append(frames, frame)
		if frame == 3 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(frames), 3)
	test.ExpectEquality(t, snes.Timing.Frame(), 3)
}

func TestRoundTrip(t *testing.T) {
	snes := newSNES(t)
	runFrames(t, snes, 3)

	a := save(t, snes)
	runFrames(t, snes, 2)
	b := save(t, snes)

	test.DemandSuccess(t, snes.Load(a))
	test.ExpectEquality(t, bytes.Equal(save(t, snes), a), true)
	test.ExpectEquality(t, snes.Timing.Frame(), 3)

	// the machine continues exactly as it did the first time
	runFrames(t, snes, 2)
	test.ExpectEquality(t, bytes.Equal(save(t, snes), b), true)

	trace := snes.Codec().Trace()
	test.ExpectEquality(t, len(trace), 3)
	test.ExpectEquality(t, trace[1], savestate.Applying)
}

func TestCorruptHeader(t *testing.T) {
	snes := newSNES(t)
	runFrames(t, snes, 2)
	buf := save(t, snes)

	runFrames(t, snes, 1)
	before := save(t, snes)

	// a version from the future
	corrupt := bytes.Clone(buf)
	corrupt[4] = 0xff
	err := snes.Load(corrupt)
	test.ExpectEquality(t, curated.Is(err, savestate.CorruptOrIncompatible), true)
	test.ExpectEquality(t, bytes.Equal(save(t, snes), before), true)

	trace := snes.Codec().Trace()
	test.ExpectEquality(t, trace[len(trace)-2], savestate.Rejected)

	// truncated payload
	err = snes.Load(buf[:len(buf)-1])
	test.ExpectEquality(t, curated.Is(err, savestate.CorruptOrIncompatible), true)
	test.ExpectEquality(t, bytes.Equal(save(t, snes), before), true)

	// the uncorrupted buffer still loads
	test.ExpectSuccess(t, snes.Validate(buf))
	test.ExpectSuccess(t, snes.Load(buf))
}

// rewriteRegion changes the first region of the buffer that decodes as a
// value of type T. the region and header checksums are recalculated.
func rewriteRegion[T any](t *testing.T, snes *hardware.SNES, buf []byte, change func(*T)) []byte {
	t.Helper()
	regions, err := savestate.Decode(buf, savestate.KindFull, snes.CartridgeCRC())
	test.DemandSuccess(t, err)

	for i, r := range regions {
		var v T
		if savestate.DecodeValue(r, &v) != nil {
			continue
		}
		change(&v)
		regions[i], err = savestate.EncodeValue(r.ID, &v)
		test.DemandSuccess(t, err)
		break
	}

	buf, err = savestate.Encode(savestate.KindFull, snes.CartridgeCRC(), regions)
	test.DemandSuccess(t, err)
	return buf
}

func TestOutOfRangeState(t *testing.T) {
	snes := newSNES(t)
	runFrames(t, snes, 2)
	buf := save(t, snes)

	// an unchanged rewrite is accepted
	same := rewriteRegion(t, snes, buf, func(s *memory.State) {})
	test.DemandSuccess(t, snes.Validate(same))

	for _, bad := range [][]byte{
		rewriteRegion(t, snes, buf, func(s *memory.State) { s.WRAMAddr = 0xfffffff0 }),
		rewriteRegion(t, snes, buf, func(s *ppu.State) { s.OAMAddr = 0x8000 }),
		rewriteRegion(t, snes, buf, func(s *ppu.State) { s.CGRAMAddr = ppu.CGRAMSize }),
	} {
		before := save(t, snes)
		err := snes.Load(bad)
		test.ExpectEquality(t, curated.Is(err, savestate.CorruptOrIncompatible), true)
		test.ExpectEquality(t, bytes.Equal(save(t, snes), before), true)
	}

	// the WRAM port still works
	test.ExpectEquality(t, snes.Mem.Read(0x002180), snes.Mem.Peek(0x7e0000))
}

func TestIncompatibleCartridge(t *testing.T) {
	snes := newSNES(t)
	runFrames(t, snes, 1)
	buf := save(t, snes)

	test.DemandSuccess(t, snes.LoadCartridge(buildROM("ANOTHER", 0x01)))
	before := save(t, snes)

	err := snes.Load(buf)
	test.ExpectEquality(t, curated.Is(err, savestate.CorruptOrIncompatible), true)
	test.ExpectEquality(t, bytes.Equal(save(t, snes), before), true)

	// an SRAM buffer is not a state buffer
	sram, err := snes.SaveSRAM()
	test.DemandSuccess(t, err)
	err = snes.Load(sram)
	test.ExpectEquality(t, curated.Is(err, savestate.CorruptOrIncompatible), true)
}

func TestSoftReset(t *testing.T) {
	snes := newSNES(t)
	runFrames(t, snes, 2)

	sram := bytes.Clone(snes.Cartridge().SRAM)
	test.ExpectEquality(t, snes.BatteryBackupDirty(), true)
	counter := snes.Mem.Peek(0x7e0010)

	test.DemandSuccess(t, snes.SoftReset())
	test.ExpectEquality(t, bytes.Equal(snes.Cartridge().SRAM, sram), true)
	test.ExpectEquality(t, snes.Mem.Peek(0x7e0010), counter)
	test.ExpectEquality(t, snes.CPU.PC, uint16(testrom.DefaultOrigin))
	test.ExpectEquality(t, snes.CPU.E, true)
	test.ExpectEquality(t, snes.Timing.Frame(), 0)

	// a hard reset keeps the battery backed SRAM but not WRAM
	test.DemandSuccess(t, snes.Reset(snes.Config))
	test.ExpectEquality(t, bytes.Equal(snes.Cartridge().SRAM, sram), true)
	test.ExpectEquality(t, snes.Mem.Peek(0x7e0010), 0x55)

	// a new cartridge does not inherit the SRAM
	test.DemandSuccess(t, snes.LoadCartridge(buildROM("ANOTHER", 0x01)))
	test.ExpectEquality(t, snes.Cartridge().SRAM[0], 0x00)
}

func TestSRAM(t *testing.T) {
	snes := newSNES(t)
	test.ExpectEquality(t, snes.BatteryBackupDirty(), false)
	runFrames(t, snes, 1)
	test.ExpectEquality(t, snes.BatteryBackupDirty(), true)

	buf, err := snes.SaveSRAM()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snes.BatteryBackupDirty(), false)
	saved := bytes.Clone(snes.Cartridge().SRAM)

	snes.Mem.Write(0x700001, 0xaa)
	test.ExpectEquality(t, bytes.Equal(snes.Cartridge().SRAM, saved), false)
	test.ExpectEquality(t, snes.BatteryBackupDirty(), true)

	test.DemandSuccess(t, snes.LoadSRAM(buf))
	test.ExpectEquality(t, bytes.Equal(snes.Cartridge().SRAM, saved), true)
	test.ExpectEquality(t, snes.BatteryBackupDirty(), false)

	// a state buffer is not an SRAM buffer
	state := save(t, snes)
	err = snes.LoadSRAM(state)
	test.ExpectEquality(t, curated.Is(err, savestate.CorruptOrIncompatible), true)

	// SRAM from another cartridge
	other := newSNES(t)
	test.DemandSuccess(t, other.LoadCartridge(buildROM("ANOTHER", 0x01)))
	err = other.LoadSRAM(buf)
	test.ExpectEquality(t, curated.Is(err, savestate.CorruptOrIncompatible), true)
	test.ExpectEquality(t, other.Cartridge().SRAM[0], 0x00)
}

func TestLoadMarksSRAMDirty(t *testing.T) {
	snes := newSNES(t)
	runFrames(t, snes, 1)
	state := save(t, snes)

	// the program only writes the first byte of SRAM
	snes.Mem.Write(0x700001, 0xaa)
	_, err := snes.SaveSRAM()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snes.BatteryBackupDirty(), false)
	flushed := bytes.Clone(snes.Cartridge().SRAM)

	// the state carries older SRAM than the host last saved
	test.DemandSuccess(t, snes.Load(state))
	test.DemandEquality(t, bytes.Equal(snes.Cartridge().SRAM, flushed), false)
	test.ExpectEquality(t, snes.BatteryBackupDirty(), true)

	// loading a state with the same SRAM does not raise the flag
	_, err = snes.SaveSRAM()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, snes.Load(state))
	test.ExpectEquality(t, snes.BatteryBackupDirty(), false)
}

func TestCheats(t *testing.T) {
	snes := newSNES(t)
	test.ExpectEquality(t, snes.Mem.Read(0x00a000), 0x12)

	id, err := snes.AddCheat("test", "00a000:5a", true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snes.Mem.Read(0x00a000), 0x5a)
	test.ExpectEquality(t, snes.Mem.Read(0x80a000), 0x5a)
	test.ExpectEquality(t, snes.Mem.Read(0x00a001), 0x34)

	test.DemandSuccess(t, snes.SetCheat(id, false))
	test.ExpectEquality(t, snes.Mem.Read(0x00a000), 0x12)

	test.DemandSuccess(t, snes.SetCheat(id, true))
	test.ExpectEquality(t, snes.Mem.Read(0x00a000), 0x5a)

	// the ROM itself is never changed
	test.ExpectEquality(t, snes.Cartridge().ROM[0x2000], 0x12)

	test.ExpectFailure(t, snes.SetCheat(id+1, true))
	_, err = snes.AddCheat("bad", "not a code", true)
	test.ExpectFailure(t, err)

	test.DemandSuccess(t, snes.RemoveCheat(id))
	test.ExpectEquality(t, snes.Mem.Read(0x00a000), 0x12)
}

func TestCheatsDiscardedWithCartridge(t *testing.T) {
	snes := newSNES(t)
	_, err := snes.AddCheat("", "00a000:5a", true)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, snes.LoadCartridge(buildROM("COUNTER", 0x01)))
	test.ExpectEquality(t, snes.Cheats.Len(), 0)
	test.ExpectEquality(t, snes.Mem.Read(0x00a000), 0x12)
}

func TestCoprocessorClockRatio(t *testing.T) {
	snes := newSNES(t)
	test.ExpectFailure(t, snes.SetCoprocessorClockRatio(0))
	test.ExpectFailure(t, snes.SetCoprocessorClockRatio(1000))
	test.ExpectSuccess(t, snes.SetCoprocessorClockRatio(2.0))
	test.ExpectEquality(t, snes.Config.CoprocessorClockRatio, 2.0)

	// the machine state is not changed
	runFrames(t, snes, 1)
	a := save(t, snes)
	test.ExpectSuccess(t, snes.SetCoprocessorClockRatio(1.0))
	test.ExpectEquality(t, bytes.Equal(save(t, snes), a), true)
}

func TestDeterminism(t *testing.T) {
	const frames = 30

	cfg := preferences.NewConfig()
	cfg.RandomState = true
	cfg.RandSeed = 12345

	var saves [2][]byte
	for i := range saves {
		snes, err := hardware.NewSNES(nil, cfg)
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, snes.LoadCartridge(buildROM("COUNTER", 0x01)))
		runFrames(t, snes, frames)
		saves[i] = save(t, snes)
	}
	test.ExpectEquality(t, bytes.Equal(saves[0], saves[1]), true)

	// a different seed produces a different power-on state
	cfg.RandSeed++
	snes, err := hardware.NewSNES(nil, cfg)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, snes.LoadCartridge(buildROM("COUNTER", 0x01)))
	runFrames(t, snes, frames)
	test.ExpectEquality(t, bytes.Equal(save(t, snes), saves[0]), false)
}

func TestSuperFX(t *testing.T) {
	b := testrom.NewBuilder(testrom.SuperFX, 0x80000)
	b.Battery = true
	b.Place(testrom.DefaultOrigin, []uint8{0x80, 0xfe}) // BRA *

	snes, err := hardware.NewSNES(nil, preferences.NewConfig())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, snes.LoadCartridge(b.Build()))
	test.DemandEquality(t, snes.GSU != nil, true)

	// GSU version register through the CPU's view of the address space
	test.ExpectEquality(t, snes.Mem.Read(0x00303b), 0x04)

	test.ExpectSuccess(t, snes.SetCoprocessorClockRatio(4.0))
	runFrames(t, snes, 2)

	buf := save(t, snes)
	test.ExpectSuccess(t, snes.Load(buf))
	test.ExpectEquality(t, bytes.Equal(save(t, snes), buf), true)

	// the state belongs to the SuperFX cartridge
	plain := newSNES(t)
	err = plain.Load(buf)
	test.ExpectEquality(t, curated.Is(err, savestate.CorruptOrIncompatible), true)
}

func TestPauseResume(t *testing.T) {
	snes := newSNES(t)

	done := make(chan error)
	go func() {
		done <- snes.Run(nil)
	}()

	for snes.Governor.State() != govern.Running {
		time.Sleep(time.Millisecond)
	}

	_, err := snes.Save()
	test.ExpectEquality(t, curated.Is(err, hardware.NotQuiesced), true)

	snes.Governor.Pause()
	test.ExpectEquality(t, snes.Governor.State(), govern.Paused)
	a := save(t, snes)
	test.ExpectSuccess(t, snes.Load(a))

	count := snes.Frames.Count()
	snes.Governor.Resume()
	for snes.Frames.Count() == count {
		time.Sleep(time.Millisecond)
	}
	snes.Governor.Stop()
	test.ExpectSuccess(t, <-done)
	test.ExpectEquality(t, snes.Governor.State(), govern.Ending)

	// the emulation has moved on since the pause
	test.ExpectEquality(t, bytes.Equal(save(t, snes), a), false)
}

func TestMemviz(t *testing.T) {
	snes := newSNES(t)
	runFrames(t, snes, 1)

	var w bytes.Buffer
	test.ExpectSuccess(t, snes.Memviz(&w))
	test.ExpectInequality(t, w.Len(), 0)
}

func TestFollowPreferences(t *testing.T) {
	snes := newSNES(t)

	p, err := preferences.NewPreferencesFromFile(t.TempDir() + "/prefs")
	test.DemandSuccess(t, err)
	snes.FollowPreferences(p)

	o := preferences.SuperFXOverclocks[len(preferences.SuperFXOverclocks)-1]
	test.DemandSuccess(t, p.SuperFXOverclock.Set(o.Label))
	test.ExpectEquality(t, snes.Config.CoprocessorClockRatio, o.Ratio())
}
