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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/snescore/snescore/hardware/preferences"
	"github.com/snescore/snescore/test"
)

func TestConfigValidate(t *testing.T) {
	cfg := preferences.NewConfig()
	test.ExpectSuccess(t, cfg.Validate())

	cfg.Region = "SECAM"
	test.ExpectFailure(t, cfg.Validate())

	cfg = preferences.NewConfig()
	cfg.FastAccess = 0
	test.ExpectFailure(t, cfg.Validate())

	cfg = preferences.NewConfig()
	cfg.CoprocessorClockRatio = 0
	test.ExpectFailure(t, cfg.Validate())
}

func TestPresets(t *testing.T) {
	c, err := preferences.FindCPUOverclock("medium")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.FastAccess, 4)
	test.ExpectEquality(t, c.SlowAccess, 5)
	test.ExpectEquality(t, c.XSlowAccess, 6)

	_, err = preferences.FindCPUOverclock("turbo")
	test.ExpectFailure(t, err)

	s, err := preferences.FindSuperFXOverclock("None")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Ratio(), 1.0)

	s, err = preferences.FindSuperFXOverclock("40")
	test.DemandSuccess(t, err)
	test.ExpectApproximate(t, s.Ratio(), 2.900, 0.001)

	s, err = preferences.FindSuperFXOverclock("120 MHz")
	test.DemandSuccess(t, err)
	test.ExpectApproximate(t, s.Ratio(), 8.629, 0.001)

	// every preset produces a usable ratio
	for _, p := range preferences.SuperFXOverclocks {
		test.ExpectSuccess(t, preferences.ValidateRatio(p.Ratio()), p.Label)
	}
}

func TestPreferences(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)

	cfg := p.Config()
	test.ExpectEquality(t, cfg, preferences.NewConfig())
	test.ExpectEquality(t, p.AutoSaveMode(), preferences.AutoSaveSRAM)

	test.ExpectSuccess(t, p.CPUOverclock.Set("Max"))
	test.ExpectFailure(t, p.CPUOverclock.Set("Ludicrous"))
	test.ExpectSuccess(t, p.Region.Set("PAL"))
	test.ExpectFailure(t, p.AutoSave.Set(9))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	cfg = q.Config()
	test.ExpectEquality(t, cfg.Region, preferences.RegionPAL)
	test.ExpectEquality(t, cfg.FastAccess, 3)
	test.ExpectEquality(t, cfg.XSlowAccess, 3)
}

func TestAutoSave(t *testing.T) {
	test.ExpectFailure(t, preferences.AutoSaveOff.SRAM())
	test.ExpectSuccess(t, preferences.AutoSaveBoth.SRAM())
	test.ExpectSuccess(t, preferences.AutoSaveBoth.State())
	test.ExpectFailure(t, preferences.AutoSaveSRAM.State())
}

func TestFindAutoSave(t *testing.T) {
	a, err := preferences.FindAutoSave("both")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, preferences.AutoSaveBoth)

	a, err = preferences.FindAutoSave("Off")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, preferences.AutoSaveOff)

	_, err = preferences.FindAutoSave("sometimes")
	test.ExpectFailure(t, err)
}
