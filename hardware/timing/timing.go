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

package timing

import "github.com/snescore/snescore/hardware/clocks"

// the range of the H counter in which HVBJOY reports the horizontal blank.
const (
	hblankEnd   = 2
	hblankStart = 1096
)

// State of the timing model.
type State struct {
	// total master cycles since reset
	MasterCycle int64

	// beam position. Dot is measured in master cycles from the start of
	// the scanline
	Scanline int32
	Dot      int32

	Frame int64

	// audio sample accumulator. a sample is due whenever the accumulator
	// reaches the master clock frequency
	AudioAccumulator int64

	// registers that control the interrupt sources
	NMITIMEN uint8
	HTIME    uint16
	VTIME    uint16

	// RDNMI and TIMEUP flags
	NMIFlag bool
	IRQFlag bool

	// an NMI edge has occurred and has not yet been taken by the CPU
	NMIPending bool

	VBlank bool
}

// Timing advances the beam position and the audio clock.
type Timing struct {
	spec  clocks.Spec
	state *State
}

// NewTiming is the preferred method of initialisation for the Timing type.
func NewTiming(spec clocks.Spec) *Timing {
	tm := &Timing{spec: spec}
	tm.Reset()
	return tm
}

// Reset timing to the start of the first frame.
func (tm *Timing) Reset() {
	tm.state = &State{}
}

// SetSpec changes the television specification. The beam position is reset.
func (tm *Timing) SetSpec(spec clocks.Spec) {
	tm.spec = spec
	tm.Reset()
}

// Spec returns the current television specification.
func (tm *Timing) Spec() clocks.Spec {
	return tm.spec
}

// Snapshot creates a copy of the timing state.
func (tm *Timing) Snapshot() *State {
	n := *tm.state
	return &n
}

// Plumb a previously created snapshot into the timing model.
func (tm *Timing) Plumb(state *State) {
	n := *state
	tm.state = &n
}

// Frame returns the number of completed frames since reset.
func (tm *Timing) Frame() int {
	return int(tm.state.Frame)
}

// Scanline returns the current scanline.
func (tm *Timing) Scanline() int {
	return int(tm.state.Scanline)
}

// MasterCycle returns the number of master cycles since reset.
func (tm *Timing) MasterCycle() int64 {
	return tm.state.MasterCycle
}

// HCounter returns the horizontal position of the beam in dots.
func (tm *Timing) HCounter() int {
	return int(tm.state.Dot / clocks.MasterCyclesPerDot)
}

// VCounter returns the vertical position of the beam.
func (tm *Timing) VCounter() int {
	return int(tm.state.Scanline)
}

// irqTarget returns the position on the current scanline at which the timer
// IRQ fires. Returns false if the IRQ will not fire on this scanline.
func (tm *Timing) irqTarget() (int32, bool) {
	s := tm.state
	switch (s.NMITIMEN >> 4) & 0x03 {
	case 0x01:
		return int32(s.HTIME) * clocks.MasterCyclesPerDot, true
	case 0x02:
		if int32(s.VTIME) == s.Scanline {
			return 0, true
		}
	case 0x03:
		if int32(s.VTIME) == s.Scanline {
			return int32(s.HTIME) * clocks.MasterCyclesPerDot, true
		}
	}
	return 0, false
}

// Advance the timing model by the number of master cycles. Events are sent
// to the sink in the order they occur. The sink may be nil.
func (tm *Timing) Advance(cycles int, sink EventSink) {
	s := tm.state
	masterClock := int64(tm.spec.MasterClock)
	remaining := int64(cycles)

	for remaining > 0 {
		step := remaining

		if n := int64(clocks.MasterCyclesPerScanline - s.Dot); n < step {
			step = n
		}

		// the smallest step that takes the accumulator to the master
		// clock frequency
		if n := (masterClock - s.AudioAccumulator + clocks.AudioRate - 1) / clocks.AudioRate; n < step {
			step = n
		}

		target, ok := tm.irqTarget()
		if ok && target > s.Dot {
			if n := int64(target - s.Dot); n < step {
				step = n
			}
		}

		remaining -= step
		s.MasterCycle += step
		s.Dot += int32(step)
		s.AudioAccumulator += step * clocks.AudioRate

		if ok && target == s.Dot {
			s.IRQFlag = true
		}

		if s.Dot >= clocks.MasterCyclesPerScanline {
			tm.endScanline(sink)
		}

		for s.AudioAccumulator >= masterClock {
			s.AudioAccumulator -= masterClock
			if sink != nil {
				sink.TimingEvent(AudioSampleReady)
			}
		}
	}
}

func (tm *Timing) endScanline(sink EventSink) {
	s := tm.state
	s.Dot = 0
	s.Scanline++

	if sink != nil {
		sink.TimingEvent(ScanlineBoundary)
	}

	if int(s.Scanline) == tm.spec.VBlankLine {
		s.VBlank = true
		s.NMIFlag = true
		if tm.NMIEnabled() {
			s.NMIPending = true
		}
		if sink != nil {
			sink.TimingEvent(VBlankStart)
		}
	}

	if int(s.Scanline) >= tm.spec.Scanlines {
		s.Scanline = 0
		s.Frame++
		s.VBlank = false
		s.NMIFlag = false
		if sink != nil {
			sink.TimingEvent(FrameComplete)
		}
	}

	// a V-only timer fires at the very start of the scanline
	if target, ok := tm.irqTarget(); ok && target == 0 {
		s.IRQFlag = true
	}
}
