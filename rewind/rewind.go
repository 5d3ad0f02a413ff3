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
	"github.com/snescore/snescore/crunched"
	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware"
)

// Sentinal error patterns.
const (
	InvalidPreference = "rewind: invalid preference: %v"
	NoHistory         = "rewind: no history"
	RewindFailed      = "rewind: %v"
)

// entry is a saved state and the frame number it was saved at. the state is
// stored crunched.
type entry struct {
	frame int
	state crunched.Data
}

// Rewind contains a history of machine states for the emulation.
type Rewind struct {
	snes *hardware.SNES

	Prefs *Preferences

	// circular array of entries. end is the position after the most recent
	// entry. the array is empty if start equals end and entries[start] is nil
	entries []*entry
	start   int
	end     int

	timeline Timeline
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The preferences are read from the file at pth.
func NewRewind(snes *hardware.SNES, pth string) (*Rewind, error) {
	r := &Rewind{
		snes:     snes,
		timeline: newTimeline(),
	}

	var err error
	r.Prefs, err = newPreferences(r, pth)
	if err != nil {
		return nil, err
	}

	r.allocate()

	return r, nil
}

// allocate the circular array and forget the history.
func (r *Rewind) allocate() {
	r.entries = make([]*entry, r.Prefs.MaxEntries.Get().(int))
	r.start = 0
	r.end = 0
	r.timeline = newTimeline()
}

// Reset removes all entries and saves the current state. This should be
// called whenever a new cartridge is loaded or the machine is reset.
func (r *Rewind) Reset() error {
	r.allocate()
	return r.save()
}

// Check should be called after every frame. A state is saved if the frame
// number is a multiple of the frequency preference.
func (r *Rewind) Check() error {
	frame := r.snes.Timing.Frame()
	r.timeline.add(frame, r.snes)

	if frame%r.Prefs.Freq.Get().(int) != 0 {
		return nil
	}

	// the most recent entry may already be for this frame
	if n, ok := r.last(); ok && r.entries[n].frame == frame {
		return nil
	}

	return r.save()
}

func (r *Rewind) save() error {
	buf, err := r.snes.Save()
	if err != nil {
		return curated.Errorf(RewindFailed, err)
	}
	r.append(&entry{frame: r.snes.Timing.Frame(), state: crunched.NewRLE(buf).Snapshot()})
	return nil
}

func (r *Rewind) append(e *entry) {
	full := r.entries[r.end] != nil && r.start == r.end

	r.entries[r.end] = e
	r.end = r.next(r.end)

	// push start index along if the oldest entry has been overwritten
	if full {
		r.start = r.end
	}
}

func (r *Rewind) next(i int) int {
	i++
	if i >= len(r.entries) {
		i = 0
	}
	return i
}

func (r *Rewind) prev(i int) int {
	i--
	if i < 0 {
		i += len(r.entries)
	}
	return i
}

// last returns the index of the most recent entry.
func (r *Rewind) last() (int, bool) {
	if r.Len() == 0 {
		return 0, false
	}
	return r.prev(r.end), true
}

// Len returns the number of entries in the history.
func (r *Rewind) Len() int {
	if r.entries[r.start] == nil {
		return 0
	}
	n := r.end - r.start
	if n <= 0 {
		n += len(r.entries)
	}
	return n
}

// index returns the position in the circular array of the nth entry.
func (r *Rewind) index(n int) int {
	return (r.start + n) % len(r.entries)
}

// Frames of the current state of the rewind system.
type Frames struct {
	Start   int
	End     int
	Current int
}

// GetFrames returns the earliest and latest frames in the history and the
// current frame of the emulation.
func (r *Rewind) GetFrames() Frames {
	f := Frames{Current: r.snes.Timing.Frame()}
	if n, ok := r.last(); ok {
		f.Start = r.entries[r.start].frame
		f.End = r.entries[n].frame
	}
	return f
}

// RewindTo returns the emulation to the frame. If the frame is earlier than
// the history then the earliest state is used. If it is later than the most
// recent state the most recent state is used. Returns the frame the emulation
// is at.
//
// History after the frame is discarded.
func (r *Rewind) RewindTo(frame int) (int, error) {
	if r.Len() == 0 {
		return r.snes.Timing.Frame(), curated.Errorf(NoHistory)
	}

	// binary search for the latest entry at or before the frame
	lo := 0
	hi := r.Len() - 1
	if frame < r.entries[r.index(lo)].frame {
		frame = r.entries[r.index(lo)].frame
	}
	if frame > r.entries[r.index(hi)].frame {
		frame = r.entries[r.index(hi)].frame
	}

	for lo < hi {
		m := (lo + hi + 1) / 2
		if r.entries[r.index(m)].frame <= frame {
			lo = m
		} else {
			hi = m - 1
		}
	}

	idx := r.index(lo)
	// uncrunch a copy so that the entry remains crunched
	state := r.entries[idx].state.Snapshot()
	if err := r.snes.Load(*state.Data()); err != nil {
		return r.snes.Timing.Frame(), curated.Errorf(RewindFailed, err)
	}

	// discard everything after the entry
	r.end = r.next(idx)
	for i := r.end; i != r.start && r.entries[i] != nil; i = r.next(i) {
		r.entries[i] = nil
	}

	// run forward to the exact frame
	for r.snes.Timing.Frame() < frame {
		if err := r.snes.RunFrame(); err != nil {
			return r.snes.Timing.Frame(), curated.Errorf(RewindFailed, err)
		}
	}

	r.timeline.splice(frame + 1)

	return frame, nil
}

// GotoLast returns the emulation to the most recent state in the history.
func (r *Rewind) GotoLast() error {
	n, ok := r.last()
	if !ok {
		return curated.Errorf(NoHistory)
	}
	_, err := r.RewindTo(r.entries[n].frame)
	return err
}
