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
	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware/memory"
	"github.com/snescore/snescore/hardware/timing"
)

// lines are the interrupt lines seen by the CPU. The IRQ line is shared by
// the timer and the coprocessor.
type lines struct {
	snes *SNES
}

func (l *lines) TakeNMI() bool {
	return l.snes.Timing.TakeNMI()
}

func (l *lines) IRQ() bool {
	if l.snes.Timing.IRQ() {
		return true
	}
	return l.snes.GSU != nil && l.snes.GSU.IRQ()
}

// events receives the events from the timing model.
type events struct {
	snes *SNES
}

func (ev *events) TimingEvent(e timing.Event) {
	switch e {
	case timing.AudioSampleReady:
		l, r := ev.snes.APU.Sample()
		ev.snes.Audio.Push(l, r)
	case timing.FrameComplete:
		ev.snes.frameDone = true
		ev.snes.Frames.Complete()
	case timing.ScanlineBoundary, timing.VBlankStart:
	}
}

// Step the emulation one CPU instruction. If the CPU is stopped or waiting
// for an interrupt the emulation is advanced by one idle cycle.
//
// The master cycles used by the instruction, including any DMA started by
// the instruction, are granted to the coprocessor and then to the timing
// model. Interrupts raised by the timing model are seen by the CPU at the
// start of the next call to Step().
func (snes *SNES) Step() error {
	if snes.cart == nil {
		return curated.Errorf(memory.NoCartridge)
	}

	cycles, err := snes.CPU.ExecuteInstruction()
	if err != nil {
		return err
	}
	cycles += snes.Mem.DrainStall()

	if snes.GSU != nil {
		snes.GSU.Run(cycles)
	}

	snes.Timing.Advance(cycles, snes.sink)

	return nil
}
