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

// NumDMAChannels is the number of DMA channels.
const NumDMAChannels = 8

// DMAChannel is the register set of one DMA channel.
type DMAChannel struct {
	DMAP uint8
	BBAD uint8

	// A bus address
	A1T uint16
	A1B uint8

	// byte count. zero means 65536 bytes
	DAS uint16

	// HDMA registers. latched but not used
	DASB  uint8
	A2A   uint16
	NLTR  uint8
	Spare uint8
}

// cost of DMA in master cycles.
const (
	dmaByteCycles    = 8
	dmaChannelCycles = 8
	dmaStartCycles   = 8
)

// B bus offsets for each byte of a transfer unit, indexed by the transfer
// mode in the lower three bits of DMAP.
var transferPatterns = [8][]uint8{
	{0},
	{0, 1},
	{0, 0},
	{0, 0, 1, 1},
	{0, 1, 2, 3},
	{0, 1, 0, 1},
	{0, 0},
	{0, 0, 1, 1},
}

func (bus *Bus) readDMA(addr uint16) (uint8, bool) {
	ch := &bus.state.DMA[(addr>>4)&0x07]
	switch addr & 0x0f {
	case 0x0:
		return ch.DMAP, true
	case 0x1:
		return ch.BBAD, true
	case 0x2:
		return uint8(ch.A1T), true
	case 0x3:
		return uint8(ch.A1T >> 8), true
	case 0x4:
		return ch.A1B, true
	case 0x5:
		return uint8(ch.DAS), true
	case 0x6:
		return uint8(ch.DAS >> 8), true
	case 0x7:
		return ch.DASB, true
	case 0x8:
		return uint8(ch.A2A), true
	case 0x9:
		return uint8(ch.A2A >> 8), true
	case 0xa:
		return ch.NLTR, true
	case 0xb, 0xf:
		return ch.Spare, true
	}
	return 0, false
}

func (bus *Bus) writeDMA(addr uint16, data uint8) {
	ch := &bus.state.DMA[(addr>>4)&0x07]
	switch addr & 0x0f {
	case 0x0:
		ch.DMAP = data
	case 0x1:
		ch.BBAD = data
	case 0x2:
		ch.A1T = ch.A1T&0xff00 | uint16(data)
	case 0x3:
		ch.A1T = ch.A1T&0x00ff | uint16(data)<<8
	case 0x4:
		ch.A1B = data
	case 0x5:
		ch.DAS = ch.DAS&0xff00 | uint16(data)
	case 0x6:
		ch.DAS = ch.DAS&0x00ff | uint16(data)<<8
	case 0x7:
		ch.DASB = data
	case 0x8:
		ch.A2A = ch.A2A&0xff00 | uint16(data)
	case 0x9:
		ch.A2A = ch.A2A&0x00ff | uint16(data)<<8
	case 0xa:
		ch.NLTR = data
	case 0xb, 0xf:
		ch.Spare = data
	}
}

// runDMA performs the transfers for the channels enabled in MDMAEN. Channels
// run in order, lowest first.
func (bus *Bus) runDMA(enable uint8) {
	if enable == 0 {
		return
	}

	bus.stall += dmaStartCycles

	for i := range bus.state.DMA {
		if enable&(1<<i) == 0 {
			continue
		}

		ch := &bus.state.DMA[i]
		pattern := transferPatterns[ch.DMAP&0x07]
		toA := ch.DMAP&0x80 == 0x80
		fixed := ch.DMAP&0x08 == 0x08
		decrement := ch.DMAP&0x10 == 0x10

		count := int(ch.DAS)
		if count == 0 {
			count = 0x10000
		}

		for n := 0; n < count; n++ {
			a := uint32(ch.A1B)<<16 | uint32(ch.A1T)
			b := 0x2100 | uint32(ch.BBAD+pattern[n%len(pattern)])

			if toA {
				bus.Write(a, bus.Read(b))
			} else {
				bus.Write(b, bus.Read(a))
			}

			if !fixed {
				if decrement {
					ch.A1T--
				} else {
					ch.A1T++
				}
			}
		}

		ch.DAS = 0
		bus.stall += dmaChannelCycles + count*dmaByteCycles
	}
}
