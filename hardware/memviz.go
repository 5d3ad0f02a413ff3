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

	"github.com/bradleyjkemp/memviz"
	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware/apu"
	"github.com/snescore/snescore/hardware/coprocessor/gsu"
	"github.com/snescore/snescore/hardware/cpu"
	"github.com/snescore/snescore/hardware/memory"
	"github.com/snescore/snescore/hardware/memory/cartridge"
	"github.com/snescore/snescore/hardware/timing"
)

// the parts of the machine state that are shown by Memviz(). the large
// memories are left out because they would swamp the graph.
type vizState struct {
	CPU    *cpu.State
	Timing *timing.State
	APU    *apu.State
	Cart   *cartridge.State
	DMA    *[memory.NumDMAChannels]memory.DMAChannel
	GSU    *gsu.State
}

// Memviz writes a graph of the machine state in the DOT format.
func (snes *SNES) Memviz(w io.Writer) error {
	s := snes.Snapshot()
	if s == nil {
		return curated.Errorf(memory.NoCartridge)
	}

	v := &vizState{
		CPU:    s.CPU,
		Timing: s.Timing,
		APU:    s.APU,
		Cart:   s.Cart,
		DMA:    &s.Mem.DMA,
		GSU:    s.GSU,
	}
	memviz.Map(w, v)

	return nil
}
