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
	"github.com/snescore/snescore/hardware/govern"
)

// RunFrame steps the emulation until a frame has completed.
func (snes *SNES) RunFrame() error {
	snes.frameDone = false
	for !snes.frameDone {
		if err := snes.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// frames. Useful for FPS and regression tests.
//
// The continueCheck function is called after every frame with the number of
// the frame just completed. It can be nil.
func (snes *SNES) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	for range numFrames {
		if err := snes.RunFrame(); err != nil {
			return err
		}

		state, err := continueCheck(snes.Timing.Frame())
		if err != nil {
			return err
		}
		if state == govern.Ending {
			break
		}
	}

	return nil
}

// Run sets the emulation running as quickly as possible. The Governor can be
// used by other goroutines to pause, resume and stop the emulation.
//
// The continueCheck function is called after every frame. It can be nil.
func (snes *SNES) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	snes.Governor.Start()
	defer snes.Governor.End()

	snes.frameDone = false

	for snes.Governor.Check() {
		if err := snes.Step(); err != nil {
			return err
		}

		if !snes.frameDone {
			continue
		}
		snes.frameDone = false

		state, err := continueCheck()
		if err != nil {
			return err
		}

		switch state {
		case govern.Running:
		case govern.Ending:
			return nil
		default:
			return curated.Errorf("snes: unsupported emulation state (%v) in Run() function", state)
		}
	}

	return nil
}
