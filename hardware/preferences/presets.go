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

package preferences

import (
	"fmt"
	"strings"

	"github.com/snescore/snescore/curated"
)

// CPUOverclock is a preset for the CPU memory access speeds.
type CPUOverclock struct {
	Label       string
	FastAccess  int
	SlowAccess  int
	XSlowAccess int
}

// List of CPU overclock presets. The first entry is the stock setting.
var CPUOverclocks = []CPUOverclock{
	{Label: "None", FastAccess: 6, SlowAccess: 8, XSlowAccess: 12},
	{Label: "Low", FastAccess: 6, SlowAccess: 6, XSlowAccess: 12},
	{Label: "Medium", FastAccess: 4, SlowAccess: 5, XSlowAccess: 6},
	{Label: "Max", FastAccess: 3, SlowAccess: 3, XSlowAccess: 3},
}

// SuperFX clock presets. The stock GSU runs at approximately 10.74MHz. The
// stock speed is expressed as the work done per scanline.
const (
	stockSuperFXSpeedPerLine = 5823405
	superFXSpeedFactor       = 0.417
)

// SuperFXOverclock is a preset for the coprocessor clock ratio.
type SuperFXOverclock struct {
	Label string
	MHz   int
}

// List of SuperFX overclock presets. The first entry is the stock setting.
var SuperFXOverclocks = []SuperFXOverclock{
	{Label: "None"},
	{Label: "20 MHz", MHz: 20},
	{Label: "40 MHz", MHz: 40},
	{Label: "60 MHz", MHz: 60},
	{Label: "80 MHz", MHz: 80},
	{Label: "100 MHz", MHz: 100},
	{Label: "120 MHz", MHz: 120},
}

// Ratio returns the coprocessor clock ratio for the preset.
func (p SuperFXOverclock) Ratio() float64 {
	if p.MHz == 0 {
		return 1.0
	}
	// each preset runs half a MHz above its label
	return superFXSpeedFactor * (float64(p.MHz) + 0.5) * 1e6 / stockSuperFXSpeedPerLine
}

// UnknownPreset is returned when a preset label is not recognised.
const UnknownPreset = "preferences: unknown preset (%s)"

// FindCPUOverclock returns the CPU preset with the label. Not case sensitive.
func FindCPUOverclock(label string) (CPUOverclock, error) {
	for _, p := range CPUOverclocks {
		if strings.EqualFold(p.Label, label) {
			return p, nil
		}
	}
	return CPUOverclock{}, curated.Errorf(UnknownPreset, label)
}

// FindSuperFXOverclock returns the SuperFX preset with the label. Not case
// sensitive. The label can also be given as the number of MHz.
func FindSuperFXOverclock(label string) (SuperFXOverclock, error) {
	for _, p := range SuperFXOverclocks {
		if strings.EqualFold(p.Label, label) || (p.MHz > 0 && label == fmt.Sprintf("%d", p.MHz)) {
			return p, nil
		}
	}
	return SuperFXOverclock{}, curated.Errorf(UnknownPreset, label)
}

// AutoSave describes what the host saves automatically when a session ends.
type AutoSave int

// List of AutoSave values. The values match those stored in the
// preferences file.
const (
	AutoSaveOff AutoSave = iota
	AutoSaveSRAM
	AutoSaveState
	AutoSaveBoth
)

func (a AutoSave) String() string {
	switch a {
	case AutoSaveOff:
		return "Off"
	case AutoSaveSRAM:
		return "SRAM"
	case AutoSaveState:
		return "State"
	case AutoSaveBoth:
		return "Both"
	}
	return "unknown autosave mode"
}

// SRAM returns true if the mode includes saving of battery backed SRAM.
func (a AutoSave) SRAM() bool {
	return a == AutoSaveSRAM || a == AutoSaveBoth
}

// State returns true if the mode includes saving of the machine state.
func (a AutoSave) State() bool {
	return a == AutoSaveState || a == AutoSaveBoth
}

// FindAutoSave returns the AutoSave value with the label. Not case sensitive.
func FindAutoSave(label string) (AutoSave, error) {
	for a := AutoSaveOff; a <= AutoSaveBoth; a++ {
		if strings.EqualFold(a.String(), label) {
			return a, nil
		}
	}
	return AutoSaveOff, curated.Errorf(UnknownPreset, label)
}
