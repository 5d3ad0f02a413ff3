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

package rewind

import (
	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware"
	"github.com/snescore/snescore/hardware/memory"
)

// Timeline provides a summary of the frames that have been seen by the
// rewind system.
//
// Useful for GUIs for example, to present the range of frame numbers that are
// available in the rewind history.
type Timeline struct {
	FrameNum []int

	// whether any buttons were held on the joypads during the frame
	JoypadInput []bool

	// whether battery backed SRAM had unsaved changes at the end of the frame
	BatteryDirty []bool

	// These two "available" fields state the earliest and latest frames that
	// are available in the rewind history.
	//
	// The earliest information in the Timeline array fields may be different.
	AvailableStart int
	AvailableEnd   int
}

const timelineLength = 1000

func newTimeline() Timeline {
	return Timeline{
		FrameNum:     make([]int, 0),
		JoypadInput:  make([]bool, 0),
		BatteryDirty: make([]bool, 0),
	}
}

func (tl *Timeline) add(frame int, snes *hardware.SNES) {
	var input bool
	for i := range memory.NumJoypads {
		input = input || snes.Mem.Joypad(i) != 0
	}

	tl.FrameNum = append(tl.FrameNum, frame)
	tl.JoypadInput = append(tl.JoypadInput, input)
	tl.BatteryDirty = append(tl.BatteryDirty, snes.BatteryBackupDirty())

	if len(tl.FrameNum) > timelineLength {
		tl.FrameNum = tl.FrameNum[1:]
		tl.JoypadInput = tl.JoypadInput[1:]
		tl.BatteryDirty = tl.BatteryDirty[1:]
	}
}

func (tl *Timeline) checkIntegrity() error {
	if len(tl.FrameNum) != len(tl.JoypadInput) || len(tl.FrameNum) != len(tl.BatteryDirty) {
		return curated.Errorf("timeline arrays are different lengths")
	}

	if len(tl.FrameNum) > 1 {
		prev := tl.FrameNum[0]
		for _, fn := range tl.FrameNum[1:] {
			if fn != prev+1 {
				return curated.Errorf("frame numbers in timeline are not consecutive")
			}
			prev = fn
		}
	}

	return nil
}

// splice removes the frame and every frame after it.
func (tl *Timeline) splice(frameNumber int) {
	for i := range tl.FrameNum {
		if frameNumber == tl.FrameNum[i] {
			tl.FrameNum = tl.FrameNum[:i]
			tl.JoypadInput = tl.JoypadInput[:i]
			tl.BatteryDirty = tl.BatteryDirty[:i]
			break // for loop
		}
	}
}

// GetTimeline returns a summary of the rewind history.
func (r *Rewind) GetTimeline() (Timeline, error) {
	if err := r.timeline.checkIntegrity(); err != nil {
		return Timeline{}, err
	}

	f := r.GetFrames()
	r.timeline.AvailableStart = f.Start
	r.timeline.AvailableEnd = f.End

	return r.timeline, nil
}
