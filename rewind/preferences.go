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
	"fmt"

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/prefs"
)

// Preferences for the rewind system.
type Preferences struct {
	r   *Rewind
	dsk *prefs.Disk

	// the number of states to keep before the earliest are forgotten
	MaxEntries prefs.Int

	// how often, in frames, a state is saved
	Freq prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// the default number of entries to store before the earliest are forgotten.
const maxEntries = 100

// how often a state is saved. the higher the number the longer it takes on
// average to rewind to a frame.
const snapshotFreq = 1

// newPreferences is the preferred method of initialisation for the
// Preferences type.
func newPreferences(r *Rewind, pth string) (*Preferences, error) {
	p := &Preferences{r: r}

	_ = p.MaxEntries.Set(maxEntries)
	_ = p.Freq.Set(snapshotFreq)

	p.MaxEntries.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 2 {
			return curated.Errorf(InvalidPreference, fmt.Sprintf("max entries too small (%d)", v))
		}
		return nil
	})
	p.Freq.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf(InvalidPreference, fmt.Sprintf("frequency too small (%d)", v))
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("rewind.maxEntries", &p.MaxEntries)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rewind.snapshotFreq", &p.Freq)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	// changing the number of entries clears the history
	p.MaxEntries.SetHookPost(func(_ prefs.Value) error {
		r.allocate()
		return nil
	})

	return p, nil
}

// Load rewind preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current rewind preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
