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
	"github.com/snescore/snescore/hardware/clocks"
)

// Region values for the Config.Region field.
const (
	RegionAuto = "AUTO"
	RegionNTSC = "NTSC"
	RegionPAL  = "PAL"
)

// InvalidConfig is returned by Config.Validate().
const InvalidConfig = "config: %v"

// Config is the explicit configuration of the emulated hardware.
type Config struct {
	// television region. RegionAuto selects the region from the cartridge
	// header
	Region string

	// number of master cycles taken by an access to each class of memory
	// region. the internal operation of the CPU takes FastAccess cycles
	FastAccess  int
	SlowAccess  int
	XSlowAccess int

	// clock-speed ratio of the coprocessor. a value of 1.0 is the stock
	// speed. values greater than one give the coprocessor more work per
	// master cycle
	CoprocessorClockRatio float64

	// initialise WRAM and registers to random values on a hard reset
	RandomState bool

	// seed for the random number generator used by RandomState. the same
	// seed always produces the same initial state
	RandSeed int64
}

// NewConfig returns the stock configuration.
func NewConfig() Config {
	return Config{
		Region:                RegionAuto,
		FastAccess:            clocks.FastAccess,
		SlowAccess:            clocks.SlowAccess,
		XSlowAccess:           clocks.XSlowAccess,
		CoprocessorClockRatio: 1.0,
	}
}

func (cfg Config) String() string {
	return fmt.Sprintf("%s cpu=%d/%d/%d coproc=%.3f", cfg.Region, cfg.FastAccess, cfg.SlowAccess, cfg.XSlowAccess, cfg.CoprocessorClockRatio)
}

// Validate checks that the values in the Config are usable.
func (cfg Config) Validate() error {
	switch cfg.Region {
	case RegionAuto, RegionNTSC, RegionPAL:
	default:
		return curated.Errorf(InvalidConfig, fmt.Sprintf("unknown region (%s)", cfg.Region))
	}

	if cfg.FastAccess < 1 || cfg.SlowAccess < 1 || cfg.XSlowAccess < 1 {
		return curated.Errorf(InvalidConfig, "memory access speeds must be positive")
	}

	if err := ValidateRatio(cfg.CoprocessorClockRatio); err != nil {
		return err
	}

	return nil
}

// limits of the coprocessor clock ratio.
const (
	MinClockRatio = 0.125
	MaxClockRatio = 64.0
)

// ValidateRatio checks that a coprocessor clock ratio is usable.
func ValidateRatio(ratio float64) error {
	if ratio < MinClockRatio || ratio > MaxClockRatio {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("coprocessor clock ratio out of range (%.3f)", ratio))
	}
	return nil
}
