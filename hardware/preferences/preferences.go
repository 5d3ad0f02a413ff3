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

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/prefs"
	"github.com/snescore/snescore/resources"
)

// Preferences defines and collates the persistent hardware preferences.
type Preferences struct {
	dsk *prefs.Disk

	// television region (AUTO, NTSC or PAL)
	Region prefs.String

	// label of the CPU overclock preset
	CPUOverclock prefs.String

	// label of the SuperFX overclock preset
	SuperFXOverclock prefs.String

	// initialise hardware to unknown state after reset
	RandomState prefs.Bool

	// what to save automatically when the session ends
	AutoSave prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The prefs file is found in the resources path.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() except that the
// path of the prefs file is specified.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Region.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case RegionAuto, RegionNTSC, RegionPAL:
			return nil
		}
		return curated.Errorf(InvalidConfig, fmt.Sprintf("unknown region (%s)", v))
	})
	p.CPUOverclock.SetHookPre(func(v prefs.Value) error {
		_, err := FindCPUOverclock(v.(string))
		return err
	})
	p.SuperFXOverclock.SetHookPre(func(v prefs.Value) error {
		_, err := FindSuperFXOverclock(v.(string))
		return err
	})
	p.AutoSave.SetHookPre(func(v prefs.Value) error {
		if a := v.(int); a < int(AutoSaveOff) || a > int(AutoSaveBoth) {
			return curated.Errorf(InvalidConfig, fmt.Sprintf("unknown autosave mode (%d)", a))
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.region", &p.Region)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.overclock", &p.CPUOverclock)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.superfx.overclock", &p.SuperFXOverclock)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.autosave", &p.AutoSave)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the stock settings.
func (p *Preferences) SetDefaults() {
	_ = p.Region.Set(RegionAuto)
	_ = p.CPUOverclock.Set(CPUOverclocks[0].Label)
	_ = p.SuperFXOverclock.Set(SuperFXOverclocks[0].Label)
	_ = p.RandomState.Set(false)
	_ = p.AutoSave.Set(int(AutoSaveSRAM))
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config returns a Config value reflecting the current preferences.
func (p *Preferences) Config() Config {
	cfg := NewConfig()
	cfg.Region = p.Region.String()
	if c, err := FindCPUOverclock(p.CPUOverclock.String()); err == nil {
		cfg.FastAccess = c.FastAccess
		cfg.SlowAccess = c.SlowAccess
		cfg.XSlowAccess = c.XSlowAccess
	}
	if s, err := FindSuperFXOverclock(p.SuperFXOverclock.String()); err == nil {
		cfg.CoprocessorClockRatio = s.Ratio()
	}
	cfg.RandomState = p.RandomState.Get().(bool)
	return cfg
}

// AutoSaveMode returns the current AutoSave preference.
func (p *Preferences) AutoSaveMode() AutoSave {
	return AutoSave(p.AutoSave.Get().(int))
}
