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

package cheats

import (
	"fmt"
	"strings"

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware/memory"
)

// NoCheat is returned when a cheat ID does not exist.
const NoCheat = "cheats: no cheat with id %d"

// Entry is a single cheat. A cheat can patch more than one address.
type Entry struct {
	Name    string
	Code    string
	Enabled bool

	patches []memory.Patch
}

func (e Entry) String() string {
	s := "off"
	if e.Enabled {
		s = "on"
	}
	return fmt.Sprintf("%s [%s] (%s)", e.Name, e.Code, s)
}

// Patches returns the patches the cheat applies when enabled.
func (e Entry) Patches() []memory.Patch {
	return e.patches
}

// Cheats is the list of cheats for the loaded cartridge. Cheats are
// identified by their position in the list.
type Cheats struct {
	entries []Entry
}

// NewCheats is the preferred method of initialisation for the Cheats type.
func NewCheats() *Cheats {
	return &Cheats{}
}

// Add a cheat to the end of the list. Returns the ID of the new cheat.
func (ch *Cheats) Add(name string, code string, enabled bool) (int, error) {
	patches, err := ParseCode(code)
	if err != nil {
		return 0, err
	}
	if name == "" {
		name = code
	}
	ch.entries = append(ch.entries, Entry{
		Name:    name,
		Code:    strings.TrimSpace(code),
		Enabled: enabled,
		patches: patches,
	})
	return len(ch.entries) - 1, nil
}

// Remove the cheat. IDs of the cheats that follow it are reduced by one.
func (ch *Cheats) Remove(id int) error {
	if id < 0 || id >= len(ch.entries) {
		return curated.Errorf(NoCheat, id)
	}
	ch.entries = append(ch.entries[:id], ch.entries[id+1:]...)
	return nil
}

// Clear removes all cheats.
func (ch *Cheats) Clear() {
	ch.entries = ch.entries[:0]
}

// Len returns the number of cheats.
func (ch *Cheats) Len() int {
	return len(ch.entries)
}

// Entry returns a copy of the cheat.
func (ch *Cheats) Entry(id int) (Entry, error) {
	if id < 0 || id >= len(ch.entries) {
		return Entry{}, curated.Errorf(NoCheat, id)
	}
	return ch.entries[id], nil
}

// SetEnabled enables or disables the cheat.
func (ch *Cheats) SetEnabled(id int, enabled bool) error {
	if id < 0 || id >= len(ch.entries) {
		return curated.Errorf(NoCheat, id)
	}
	ch.entries[id].Enabled = enabled
	return nil
}

// Patches returns the patches of all enabled cheats. Where two cheats patch
// the same address the later cheat takes precedence.
func (ch *Cheats) Patches() []memory.Patch {
	var patches []memory.Patch
	for _, e := range ch.entries {
		if e.Enabled {
			patches = append(patches, e.patches...)
		}
	}
	return patches
}

func (ch *Cheats) String() string {
	s := strings.Builder{}
	for i, e := range ch.entries {
		s.WriteString(fmt.Sprintf("%03d %s\n", i, e))
	}
	return s.String()
}
