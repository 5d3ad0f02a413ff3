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

package output

import "sync/atomic"

// Frames counts completed frames.
type Frames struct {
	count atomic.Uint64
	ready atomic.Bool
}

// Complete is called by the emulation when a frame has completed.
func (f *Frames) Complete() {
	f.count.Add(1)
	f.ready.Store(true)
}

// Count returns the number of frames completed.
func (f *Frames) Count() uint64 {
	return f.count.Load()
}

// Ready returns true if a frame has completed since the previous call.
func (f *Frames) Ready() bool {
	return f.ready.Swap(false)
}

// Reset the count and the ready flag.
func (f *Frames) Reset() {
	f.count.Store(0)
	f.ready.Store(false)
}
