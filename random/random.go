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

package random

import (
	"math/rand"
)

// Position is the source of the emulation's position in time.
type Position interface {
	MasterCycle() int64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	pos Position

	// base seed. the same seed produces the same sequence of numbers for the
	// same emulation position
	Seed int64
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(pos Position, seed int64) *Random {
	return &Random{
		pos:  pos,
		Seed: seed,
	}
}

// Rand returns a new RNG from the standard library seeded for the current
// emulation position.
func (rnd *Random) Rand() *rand.Rand {
	return rand.New(rand.NewSource(rnd.Seed + rnd.pos.MasterCycle()))
}

// Intn returns a number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.Rand().Intn(n)
}

// Fill the slice with random bytes.
func (rnd *Random) Fill(b []uint8) {
	r := rnd.Rand()
	for i := range b {
		b[i] = uint8(r.Intn(256))
	}
}
