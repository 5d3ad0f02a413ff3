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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware"
)

// State produces a chained hash of the machine state. NewFrame() should be
// called after every frame.
type State struct {
	snes   *hardware.SNES
	digest [sha1.Size]byte

	// previous digest followed by the save buffer
	buffer []byte

	frameNum int
}

// NewState is the preferred method of initialisation for the State type.
func NewState(snes *hardware.SNES) *State {
	return &State{snes: snes}
}

// Hash implements digest.Digest interface.
func (dig *State) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *State) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Frame returns the frame number of the most recent call to NewFrame().
func (dig *State) Frame() int {
	return dig.frameNum
}

// NewFrame adds the current machine state to the digest.
func (dig *State) NewFrame() error {
	buf, err := dig.snes.Save()
	if err != nil {
		return curated.Errorf("digest: %v", err)
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the state data
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)
	dig.buffer = append(dig.buffer, buf...)
	dig.digest = sha1.Sum(dig.buffer)
	dig.frameNum = dig.snes.Timing.Frame()

	return nil
}
