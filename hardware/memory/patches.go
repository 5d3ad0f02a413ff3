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

package memory

import "github.com/snescore/snescore/hardware/memory/cartridge/mapper"

// Patch replaces the value read from an address.
type Patch struct {
	Address uint32
	Value   uint8
}

// overlay is the set of patches decoded against the cartridge mapping in
// place when the overlay was built. locations in switchable windows depend
// on the selected banks so the overlay is rebuilt whenever they change.
type overlay struct {
	patches []Patch
	windows [mapper.NumSwitchableWindows]uint8
	locs    map[location]uint8
}

// SetPatches replaces the set of patches applied to reads. The patches take
// effect from the next read. A nil or empty list removes all patches.
//
// The cartridge must be attached first. Patches to addresses that decode to
// nothing are ignored.
func (bus *Bus) SetPatches(patches []Patch) {
	if len(patches) == 0 {
		bus.patches.Store(nil)
		return
	}
	bus.patches.Store(bus.buildOverlay(append([]Patch(nil), patches...)))
}

func (bus *Bus) buildOverlay(patches []Patch) *overlay {
	ov := &overlay{
		patches: patches,
		locs:    make(map[location]uint8, len(patches)),
	}
	if bus.cart != nil {
		ov.windows = bus.cart.Windows()
	}
	for _, p := range patches {
		loc := bus.decode(uint8(p.Address>>16), uint16(p.Address))
		if loc.region == regionOpenBus {
			continue
		}
		ov.locs[loc] = p.Value
	}
	return ov
}

// patch returns the patched value for the location, if there is one.
func (bus *Bus) patch(loc location) (uint8, bool) {
	ov := bus.patches.Load()
	if ov == nil {
		return 0, false
	}
	if bus.cart != nil && ov.windows != bus.cart.Windows() {
		n := bus.buildOverlay(ov.patches)
		if bus.patches.CompareAndSwap(ov, n) {
			ov = n
		} else if ov = bus.patches.Load(); ov == nil {
			return 0, false
		}
	}
	v, ok := ov.locs[loc]
	return v, ok
}

// NumPatches returns the number of locations being patched.
func (bus *Bus) NumPatches() int {
	if ov := bus.patches.Load(); ov != nil {
		return len(ov.locs)
	}
	return 0
}
