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

package savestate_test

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"testing"

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/logger"
	"github.com/snescore/snescore/savestate"
	"github.com/snescore/snescore/test"
)

type mockState struct {
	Counter uint32
	Flags   [4]uint8
	Running bool
}

const (
	regionState uint16 = iota + 1
	regionRAM
)

type mockMachine struct {
	crc   uint32
	state mockState
	ram   [16]uint8
}

type mockScratch struct {
	m     *mockMachine
	state mockState
	ram   [16]uint8
}

func (s *mockScratch) Apply() {
	s.m.state = s.state
	s.m.ram = s.ram
}

func (m *mockMachine) CartridgeCRC() uint32 {
	return m.crc
}

func (m *mockMachine) Regions(kind savestate.Kind) ([]savestate.Region, error) {
	ram := savestate.Region{ID: regionRAM, Data: append([]byte{}, m.ram[:]...)}
	if kind == savestate.KindSRAM {
		return []savestate.Region{ram}, nil
	}
	s, err := savestate.EncodeValue(regionState, m.state)
	if err != nil {
		return nil, err
	}
	return []savestate.Region{s, ram}, nil
}

func (m *mockMachine) Decode(kind savestate.Kind, regions []savestate.Region) (savestate.Scratch, error) {
	s := &mockScratch{m: m, state: m.state}
	var gotRAM bool
	for _, r := range regions {
		switch r.ID {
		case regionState:
			if err := savestate.DecodeValue(r, &s.state); err != nil {
				return nil, err
			}
		case regionRAM:
			if len(r.Data) != len(s.ram) {
				return nil, fmt.Errorf("ram size")
			}
			copy(s.ram[:], r.Data)
			gotRAM = true
		default:
			return nil, fmt.Errorf("unknown region %d", r.ID)
		}
	}
	if !gotRAM {
		return nil, fmt.Errorf("missing ram")
	}
	return s, nil
}

func newMachine() *mockMachine {
	m := &mockMachine{crc: 0xdeadbeef}
	m.state.Counter = 1234
	m.state.Flags = [4]uint8{1, 2, 3, 4}
	m.state.Running = true
	for i := range m.ram {
		m.ram[i] = uint8(i * 3)
	}
	return m
}

func TestRoundTrip(t *testing.T) {
	m := newMachine()
	c := savestate.NewCodec(logger.Allow)

	buf, err := c.Save(m, savestate.KindFull)
	test.DemandSuccess(t, err)

	h, err := savestate.ReadHeader(buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Version, uint16(savestate.Version))
	test.ExpectEquality(t, h.Kind, savestate.KindFull)
	test.ExpectEquality(t, h.CartCRC, uint32(0xdeadbeef))
	test.ExpectEquality(t, h.RegionCount, uint16(2))

	before := *m
	m.state.Counter = 0
	m.state.Running = false
	m.ram[3] = 0xff

	test.DemandSuccess(t, c.Load(m, savestate.KindFull, buf))
	test.ExpectEquality(t, *m, before)
	test.ExpectEquality(t, c.Phase(), savestate.Idle)

	trace := c.Trace()
	test.DemandEquality(t, len(trace), 3)
	test.ExpectEquality(t, trace[0], savestate.Validating)
	test.ExpectEquality(t, trace[1], savestate.Applying)
	test.ExpectEquality(t, trace[2], savestate.Idle)

	// saving again produces the same buffer
	again, err := c.Save(m, savestate.KindFull)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(again), string(buf))
}

// load the buffer and check that it is rejected without changing the machine.
func expectRejected(t *testing.T, m *mockMachine, kind savestate.Kind, buf []byte, tag string) {
	t.Helper()
	c := savestate.NewCodec(logger.Allow)
	before := *m

	err := c.Load(m, kind, buf)
	test.ExpectSuccess(t, curated.Is(err, savestate.CorruptOrIncompatible), tag)
	test.ExpectEquality(t, *m, before, tag)
	test.ExpectEquality(t, c.Phase(), savestate.Idle, tag)

	trace := c.Trace()
	if test.ExpectEquality(t, len(trace), 3, tag) {
		test.ExpectEquality(t, trace[1], savestate.Rejected, tag)
	}
}

// set the version of the buffer and fix the header checksum.
func setVersion(buf []byte, version uint16) {
	binary.LittleEndian.PutUint16(buf[4:], version)
	binary.LittleEndian.PutUint32(buf[14:], crc32.ChecksumIEEE(buf[:14]))
}

func TestCorruptHeader(t *testing.T) {
	m := newMachine()
	c := savestate.NewCodec(logger.Allow)
	buf, err := c.Save(m, savestate.KindFull)
	test.DemandSuccess(t, err)

	// change the version without fixing the checksum
	b := append([]byte{}, buf...)
	b[4] = 0x7f
	expectRejected(t, m, savestate.KindFull, b, "version byte")

	b = append([]byte{}, buf...)
	b[0] = 'X'
	expectRejected(t, m, savestate.KindFull, b, "magic")

	b = append([]byte{}, buf...)
	setVersion(b, savestate.Version+1)
	expectRejected(t, m, savestate.KindFull, b, "future version")

	b = append([]byte{}, buf...)
	setVersion(b, 0)
	expectRejected(t, m, savestate.KindFull, b, "version zero")

	// the header of a future version is still readable
	b = append([]byte{}, buf...)
	setVersion(b, savestate.Version+1)
	_, err = savestate.ReadHeader(b)
	test.ExpectSuccess(t, err)
}

func TestCorruptPayload(t *testing.T) {
	m := newMachine()
	c := savestate.NewCodec(logger.Allow)
	buf, err := c.Save(m, savestate.KindFull)
	test.DemandSuccess(t, err)

	b := append([]byte{}, buf...)
	b[len(b)-1] ^= 0xff
	expectRejected(t, m, savestate.KindFull, b, "payload")

	b = append(append([]byte{}, buf...), 0x00)
	expectRejected(t, m, savestate.KindFull, b, "trailing")

	for i := range buf {
		expectRejected(t, m, savestate.KindFull, buf[:i], fmt.Sprintf("truncated to %d", i))
	}
}

func TestIncompatible(t *testing.T) {
	m := newMachine()
	c := savestate.NewCodec(logger.Allow)

	full, err := c.Save(m, savestate.KindFull)
	test.DemandSuccess(t, err)
	sram, err := c.Save(m, savestate.KindSRAM)
	test.DemandSuccess(t, err)

	expectRejected(t, m, savestate.KindSRAM, full, "kind")
	expectRejected(t, m, savestate.KindFull, []byte{}, "empty")

	other := newMachine()
	other.crc = 0x12345678
	expectRejected(t, other, savestate.KindFull, full, "cartridge")

	// errors from the machine are reported as corrupt or incompatible
	regions := []savestate.Region{{ID: 99, Data: []byte{1}}}
	unknown, err := savestate.Encode(savestate.KindFull, m.crc, regions)
	test.DemandSuccess(t, err)
	expectRejected(t, m, savestate.KindFull, unknown, "unknown region")

	// duplicate regions
	ram := savestate.Region{ID: regionRAM, Data: make([]byte, 16)}
	dup, err := savestate.Encode(savestate.KindSRAM, m.crc, []savestate.Region{ram, ram})
	test.DemandSuccess(t, err)
	expectRejected(t, m, savestate.KindSRAM, dup, "duplicate")

	// the SRAM buffer only changes the RAM
	m.ram[0] = 0xaa
	m.state.Counter = 99
	test.DemandSuccess(t, c.Load(m, savestate.KindSRAM, sram))
	test.ExpectEquality(t, m.ram[0], uint8(0))
	test.ExpectEquality(t, m.state.Counter, uint32(99))
}

func TestValidate(t *testing.T) {
	m := newMachine()
	c := savestate.NewCodec(logger.Allow)
	buf, err := c.Save(m, savestate.KindFull)
	test.DemandSuccess(t, err)

	m.state.Counter = 1
	test.ExpectSuccess(t, c.Validate(m, savestate.KindFull, buf))
	test.ExpectEquality(t, m.state.Counter, uint32(1))
}
