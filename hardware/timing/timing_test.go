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

package timing_test

import (
	"math/rand"
	"testing"

	"github.com/snescore/snescore/hardware/clocks"
	"github.com/snescore/snescore/hardware/timing"
	"github.com/snescore/snescore/test"
)

type record struct {
	cycle int64
	ev    timing.Event
}

type recorder struct {
	tm     *timing.Timing
	events []record
}

func (r *recorder) TimingEvent(ev timing.Event) {
	r.events = append(r.events, record{cycle: r.tm.MasterCycle(), ev: ev})
}

func (r *recorder) count(ev timing.Event) int {
	var n int
	for _, e := range r.events {
		if e.ev == ev {
			n++
		}
	}
	return n
}

func TestFrame(t *testing.T) {
	for _, spec := range []clocks.Spec{clocks.SpecNTSC, clocks.SpecPAL} {
		tm := timing.NewTiming(spec)
		rec := &recorder{tm: tm}

		tm.Advance(spec.MasterCyclesPerFrame()-1, rec)
		test.ExpectEquality(t, rec.count(timing.FrameComplete), 0, spec.ID)
		test.ExpectEquality(t, rec.count(timing.VBlankStart), 1, spec.ID)
		test.ExpectEquality(t, rec.count(timing.ScanlineBoundary), spec.Scanlines-1, spec.ID)

		tm.Advance(1, rec)
		test.ExpectEquality(t, rec.count(timing.FrameComplete), 1, spec.ID)
		test.ExpectEquality(t, tm.Frame(), 1, spec.ID)
		test.ExpectEquality(t, tm.Scanline(), 0, spec.ID)

		// the frame complete event follows the scanline boundary on the
		// same cycle
		n := len(rec.events)
		for rec.events[n-1].ev == timing.AudioSampleReady {
			n--
		}
		test.ExpectEquality(t, rec.events[n-1].ev, timing.FrameComplete, spec.ID)
		test.ExpectEquality(t, rec.events[n-2].ev, timing.ScanlineBoundary, spec.ID)
		test.ExpectEquality(t, rec.events[n-1].cycle, rec.events[n-2].cycle, spec.ID)
	}
}

func TestAudioRate(t *testing.T) {
	spec := clocks.SpecNTSC
	tm := timing.NewTiming(spec)
	rec := &recorder{tm: tm}

	// one second of emulation produces exactly the audio rate
	remaining := spec.MasterClock
	for remaining > 0 {
		n := min(remaining, 1000)
		tm.Advance(n, rec)
		remaining -= n
	}
	test.ExpectEquality(t, rec.count(timing.AudioSampleReady), clocks.AudioRate)
}

func TestSplitInvariance(t *testing.T) {
	rnd := rand.New(rand.NewSource(100))
	total := clocks.SpecNTSC.MasterCyclesPerFrame()*3 + 777

	whole := timing.NewTiming(clocks.SpecNTSC)
	whole.WriteNMITIMEN(0xb0)
	whole.WriteHTIMEL(100)
	whole.WriteVTIMEL(50)
	wholeRec := &recorder{tm: whole}
	whole.Advance(total, wholeRec)

	split := timing.NewTiming(clocks.SpecNTSC)
	split.WriteNMITIMEN(0xb0)
	split.WriteHTIMEL(100)
	split.WriteVTIMEL(50)
	splitRec := &recorder{tm: split}
	remaining := total
	for remaining > 0 {
		n := min(remaining, rnd.Intn(3000))
		split.Advance(n, splitRec)
		remaining -= n
	}

	test.ExpectEquality(t, *split.Snapshot(), *whole.Snapshot())
	if test.ExpectEquality(t, len(splitRec.events), len(wholeRec.events)) {
		for i := range wholeRec.events {
			if !test.ExpectEquality(t, splitRec.events[i], wholeRec.events[i], i) {
				break
			}
		}
	}

	// events are emitted in temporal order with ties broken by event type
	for i := 1; i < len(wholeRec.events); i++ {
		a := wholeRec.events[i-1]
		b := wholeRec.events[i]
		ordered := a.cycle < b.cycle || (a.cycle == b.cycle && a.ev <= b.ev)
		if !test.ExpectSuccess(t, ordered, i) {
			break
		}
	}
}

func TestNMI(t *testing.T) {
	spec := clocks.SpecNTSC
	tm := timing.NewTiming(spec)
	tm.WriteNMITIMEN(0x80)

	tm.Advance(spec.VBlankLine*clocks.MasterCyclesPerScanline-1, nil)
	test.ExpectFailure(t, tm.TakeNMI())
	test.ExpectFailure(t, tm.InVBlank())

	tm.Advance(1, nil)
	test.ExpectSuccess(t, tm.InVBlank())
	test.ExpectSuccess(t, tm.TakeNMI())
	test.ExpectFailure(t, tm.TakeNMI())
	test.ExpectEquality(t, tm.ReadHVBJOY()&0x80, 0x80)

	// RDNMI is cleared by reading
	test.ExpectEquality(t, tm.ReadRDNMI(), 0x80)
	test.ExpectEquality(t, tm.ReadRDNMI(), 0x00)
}

func TestLateNMIEnable(t *testing.T) {
	spec := clocks.SpecNTSC
	tm := timing.NewTiming(spec)

	tm.Advance(spec.VBlankLine*clocks.MasterCyclesPerScanline+10, nil)
	test.ExpectFailure(t, tm.TakeNMI())

	// enabling the NMI while the flag is set raises the NMI
	tm.WriteNMITIMEN(0x80)
	test.ExpectSuccess(t, tm.TakeNMI())

	// but not once the flag has been read
	tm.WriteNMITIMEN(0x00)
	tm.ReadRDNMI()
	tm.WriteNMITIMEN(0x80)
	test.ExpectFailure(t, tm.TakeNMI())
}

func TestTimerIRQ(t *testing.T) {
	tm := timing.NewTiming(clocks.SpecNTSC)

	// H and V timer
	tm.WriteHTIMEL(0x20)
	tm.WriteVTIMEL(0x02)
	tm.WriteNMITIMEN(0x30)

	pos := 2*clocks.MasterCyclesPerScanline + 0x20*clocks.MasterCyclesPerDot
	tm.Advance(pos-1, nil)
	test.ExpectFailure(t, tm.IRQ())
	tm.Advance(1, nil)
	test.ExpectSuccess(t, tm.IRQ())
	test.ExpectEquality(t, tm.HCounter(), 0x20)
	test.ExpectEquality(t, tm.VCounter(), 2)

	test.ExpectEquality(t, tm.ReadTIMEUP(), 0x80)
	test.ExpectFailure(t, tm.IRQ())

	// V only timer fires at the start of the line
	tm.Reset()
	tm.WriteVTIMEL(0x03)
	tm.WriteNMITIMEN(0x20)
	tm.Advance(3*clocks.MasterCyclesPerScanline, nil)
	test.ExpectSuccess(t, tm.IRQ())

	// disabling the timer acknowledges the IRQ
	tm.WriteNMITIMEN(0x00)
	test.ExpectFailure(t, tm.IRQ())
}
