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

package savestate

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/snescore/snescore/curated"
)

// CorruptOrIncompatible is the pattern for all errors caused by a save
// buffer that cannot be loaded.
const CorruptOrIncompatible = "savestate: corrupt or incompatible: %v"

// Magic identifies a save buffer.
const Magic = "SNSC"

// Version of the format written by Encode(). Buffers with a later version
// are rejected.
const Version = 1

// Kind of save buffer.
type Kind uint8

// List of valid Kind values.
const (
	KindFull Kind = iota + 1
	KindSRAM
)

func (k Kind) String() string {
	switch k {
	case KindFull:
		return "full"
	case KindSRAM:
		return "sram"
	}
	return fmt.Sprintf("unknown kind (%d)", uint8(k))
}

// MaxRegions is the largest number of regions a buffer may contain.
const MaxRegions = 64

// Region is a block of machine state.
type Region struct {
	ID   uint16
	Data []byte
}

// Header of a save buffer.
type Header struct {
	Magic       [4]byte
	Version     uint16
	Kind        Kind
	Reserved    uint8
	CartCRC     uint32
	RegionCount uint16
	HeaderCRC   uint32
}

func (h Header) String() string {
	return fmt.Sprintf("%s v%d %s cart=%08x regions=%d", h.Magic[:], h.Version, h.Kind, h.CartCRC, h.RegionCount)
}

type tableEntry struct {
	ID     uint16
	Length uint32
	CRC    uint32
}

var (
	headerSize = binary.Size(Header{})
	entrySize  = binary.Size(tableEntry{})
)

// the header CRC covers every header field before it.
func headerCRC(h Header) uint32 {
	b := &bytes.Buffer{}
	_ = binary.Write(b, binary.LittleEndian, h)
	return crc32.ChecksumIEEE(b.Bytes()[:headerSize-4])
}

// Encode the regions into a save buffer.
func Encode(kind Kind, cartCRC uint32, regions []Region) ([]byte, error) {
	if len(regions) > MaxRegions {
		return nil, fmt.Errorf("savestate: too many regions (%d)", len(regions))
	}

	h := Header{
		Version:     Version,
		Kind:        kind,
		CartCRC:     cartCRC,
		RegionCount: uint16(len(regions)),
	}
	copy(h.Magic[:], Magic)
	h.HeaderCRC = headerCRC(h)

	size := headerSize + len(regions)*entrySize
	for _, r := range regions {
		size += len(r.Data)
	}

	b := bytes.NewBuffer(make([]byte, 0, size))
	if err := binary.Write(b, binary.LittleEndian, h); err != nil {
		return nil, fmt.Errorf("savestate: %w", err)
	}
	for _, r := range regions {
		e := tableEntry{
			ID:     r.ID,
			Length: uint32(len(r.Data)),
			CRC:    crc32.ChecksumIEEE(r.Data),
		}
		if err := binary.Write(b, binary.LittleEndian, e); err != nil {
			return nil, fmt.Errorf("savestate: %w", err)
		}
	}
	for _, r := range regions {
		b.Write(r.Data)
	}

	return b.Bytes(), nil
}

// ReadHeader returns the header of a save buffer. The header is checked for
// corruption but not for compatibility.
func ReadHeader(buf []byte) (Header, error) {
	var h Header

	if len(buf) < headerSize {
		return h, curated.Errorf(CorruptOrIncompatible, "buffer too short")
	}
	if err := binary.Read(bytes.NewReader(buf[:headerSize]), binary.LittleEndian, &h); err != nil {
		return h, curated.Errorf(CorruptOrIncompatible, err)
	}
	if string(h.Magic[:]) != Magic {
		return h, curated.Errorf(CorruptOrIncompatible, "not a save buffer")
	}
	if h.HeaderCRC != headerCRC(h) {
		return h, curated.Errorf(CorruptOrIncompatible, "header checksum")
	}

	return h, nil
}

// Decode checks the buffer and returns its regions. The kind and cartridge
// CRC must match the values in the header. The returned regions refer to
// the buffer.
func Decode(buf []byte, kind Kind, cartCRC uint32) ([]Region, error) {
	h, err := ReadHeader(buf)
	if err != nil {
		return nil, err
	}

	if h.Version == 0 || h.Version > Version {
		return nil, curated.Errorf(CorruptOrIncompatible, fmt.Sprintf("unsupported version (%d)", h.Version))
	}
	if h.Kind != kind {
		return nil, curated.Errorf(CorruptOrIncompatible, fmt.Sprintf("expected %s buffer, got %s", kind, h.Kind))
	}
	if h.CartCRC != cartCRC {
		return nil, curated.Errorf(CorruptOrIncompatible, fmt.Sprintf("buffer is for a different cartridge (%08x)", h.CartCRC))
	}
	if h.RegionCount > MaxRegions {
		return nil, curated.Errorf(CorruptOrIncompatible, fmt.Sprintf("too many regions (%d)", h.RegionCount))
	}

	table := buf[headerSize:]
	if len(table) < int(h.RegionCount)*entrySize {
		return nil, curated.Errorf(CorruptOrIncompatible, "truncated region table")
	}

	entries := make([]tableEntry, h.RegionCount)
	if err := binary.Read(bytes.NewReader(table), binary.LittleEndian, entries); err != nil {
		return nil, curated.Errorf(CorruptOrIncompatible, err)
	}

	payload := table[int(h.RegionCount)*entrySize:]
	regions := make([]Region, 0, len(entries))
	seen := make(map[uint16]bool, len(entries))

	for _, e := range entries {
		if seen[e.ID] {
			return nil, curated.Errorf(CorruptOrIncompatible, fmt.Sprintf("duplicate region (%d)", e.ID))
		}
		seen[e.ID] = true

		if uint64(e.Length) > uint64(len(payload)) {
			return nil, curated.Errorf(CorruptOrIncompatible, fmt.Sprintf("truncated region (%d)", e.ID))
		}
		data := payload[:e.Length]
		payload = payload[e.Length:]

		if crc32.ChecksumIEEE(data) != e.CRC {
			return nil, curated.Errorf(CorruptOrIncompatible, fmt.Sprintf("checksum of region (%d)", e.ID))
		}

		regions = append(regions, Region{ID: e.ID, Data: data})
	}

	if len(payload) != 0 {
		return nil, curated.Errorf(CorruptOrIncompatible, "trailing data")
	}

	return regions, nil
}
