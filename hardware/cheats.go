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
	"io"

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware/memory"
)

// AddCheat adds a cheat for the current cartridge and returns its ID. An
// enabled cheat takes effect from the next read of the patched address.
func (snes *SNES) AddCheat(name string, code string, enabled bool) (int, error) {
	if snes.cart == nil {
		return 0, curated.Errorf(memory.NoCartridge)
	}
	id, err := snes.Cheats.Add(name, code, enabled)
	if err != nil {
		return 0, err
	}
	snes.applyCheats()
	return id, nil
}

// SetCheat enables or disables a cheat. The change takes effect from the
// next read of the patched address.
func (snes *SNES) SetCheat(id int, enabled bool) error {
	if err := snes.Cheats.SetEnabled(id, enabled); err != nil {
		return err
	}
	snes.applyCheats()
	return nil
}

// RemoveCheat removes a cheat. IDs of the cheats that follow it are reduced
// by one.
func (snes *SNES) RemoveCheat(id int) error {
	if err := snes.Cheats.Remove(id); err != nil {
		return err
	}
	snes.applyCheats()
	return nil
}

// ReadCheats adds the cheats in a cheat file for the current cartridge.
func (snes *SNES) ReadCheats(r io.Reader) error {
	if snes.cart == nil {
		return curated.Errorf(memory.NoCartridge)
	}
	err := snes.Cheats.Read(r)
	snes.applyCheats()
	return err
}

// the overlay is replaced in one operation so a cheat is never partially
// applied.
func (snes *SNES) applyCheats() {
	snes.Mem.SetPatches(snes.Cheats.Patches())
}
