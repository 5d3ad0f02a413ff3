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

package rewind_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware"
	"github.com/snescore/snescore/hardware/govern"
	"github.com/snescore/snescore/hardware/preferences"
	"github.com/snescore/snescore/rewind"
	"github.com/snescore/snescore/test"
	"github.com/snescore/snescore/test/testrom"
)

func newRewind(t *testing.T) (*hardware.SNES, *rewind.Rewind) {
	t.Helper()

	b := testrom.NewBuilder(testrom.LoROM, 0x20000)
	b.Place(testrom.DefaultOrigin, []uint8{
		0xa5, 0x10, // LDA $10
		0x18,       // CLC
		0x69, 0x01, // ADC #$01
		0x85, 0x10, // STA $10
		0x80, 0xf7, // BRA
	})

	snes, err := hardware.NewSNES(nil, preferences.NewConfig())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, snes.LoadCartridge(b.Build()))

	r, err := rewind.NewRewind(snes, filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, r.Reset())

	return snes, r
}

func run(t *testing.T, snes *hardware.SNES, r *rewind.Rewind, frames int) {
	t.Helper()
	err := snes.RunForFrameCount(frames, func(_ int) (govern.State, error) {
		return govern.Running, r.Check()
	})
	test.DemandSuccess(t, err)
}

func TestRewindTo(t *testing.T) {
	snes, r := newRewind(t)
	test.DemandSuccess(t, r.Prefs.Freq.Set(4))

	run(t, snes, r, 10)
	wram := bytes.Clone(snes.Mem.WRAM())

	run(t, snes, r, 10)
	test.ExpectEquality(t, r.GetFrames(), rewind.Frames{Start: 0, End: 20, Current: 20})

	// frame 10 is not a multiple of the frequency. the emulation is run
	// forward from frame 8
	frame, err := r.RewindTo(10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, frame, 10)
	test.ExpectEquality(t, snes.Timing.Frame(), 10)
	test.ExpectEquality(t, bytes.Equal(snes.Mem.WRAM(), wram), true)
	test.ExpectEquality(t, r.GetFrames().End, 8)

	tl, err := r.GetTimeline()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tl.FrameNum[len(tl.FrameNum)-1], 10)
	test.ExpectEquality(t, tl.AvailableEnd, 8)

	// history continues from the rewound frame
	run(t, snes, r, 2)
	test.ExpectEquality(t, r.GetFrames().End, 12)
}

func TestRewindClamp(t *testing.T) {
	snes, r := newRewind(t)
	run(t, snes, r, 5)

	frame, err := r.RewindTo(-10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, frame, 0)
	test.ExpectEquality(t, r.Len(), 1)

	run(t, snes, r, 3)
	frame, err = r.RewindTo(100)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, frame, 3)

	test.DemandSuccess(t, r.GotoLast())
	test.ExpectEquality(t, snes.Timing.Frame(), 3)
}

func TestMaxEntries(t *testing.T) {
	snes, r := newRewind(t)
	test.DemandSuccess(t, r.Prefs.MaxEntries.Set(5))
	test.ExpectEquality(t, r.Len(), 0)
	test.ExpectFailure(t, r.Prefs.MaxEntries.Set(1))

	run(t, snes, r, 12)
	test.ExpectEquality(t, r.Len(), 5)
	test.ExpectEquality(t, r.GetFrames(), rewind.Frames{Start: 8, End: 12, Current: 12})

	frame, err := r.RewindTo(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, frame, 8)

	// rewinding to the most recent entry of a full history keeps every entry
	run(t, snes, r, 4)
	_, err = r.RewindTo(12)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Len(), 5)
}

func TestNoHistory(t *testing.T) {
	_, r := newRewind(t)
	test.DemandSuccess(t, r.Prefs.MaxEntries.Set(10))
	_, err := r.RewindTo(0)
	test.ExpectEquality(t, curated.Is(err, rewind.NoHistory), true)
	test.ExpectEquality(t, curated.Is(r.GotoLast(), rewind.NoHistory), true)
}
