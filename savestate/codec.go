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

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/logger"
)

// Phase of the codec.
type Phase int

// List of valid Phase values.
const (
	Idle Phase = iota
	Validating
	Applying
	Rejected
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Applying:
		return "applying"
	case Rejected:
		return "rejected"
	}
	return "unknown phase"
}

// Scratch is machine state decoded from a save buffer that has not yet been
// applied.
type Scratch interface {
	// Apply cannot fail.
	Apply()
}

// Machine is implemented by the emulation being saved and restored.
type Machine interface {
	// CartridgeCRC identifies the cartridge the state belongs to.
	CartridgeCRC() uint32

	// Regions returns the state of the machine for the kind of buffer.
	Regions(kind Kind) ([]Region, error)

	// Decode the regions into scratch state. The machine must not be
	// changed.
	Decode(kind Kind, regions []Region) (Scratch, error)
}

// Codec saves and loads the state of a Machine.
type Codec struct {
	perm  logger.Permission
	phase Phase

	// phases passed through by the most recent call to Load()
	trace []Phase
}

// NewCodec is the preferred method of initialisation for the Codec type.
func NewCodec(perm logger.Permission) *Codec {
	return &Codec{perm: perm}
}

// Phase returns the current phase. Outside of a call to Load() this is
// always Idle.
func (c *Codec) Phase() Phase {
	return c.phase
}

// Trace returns the phases passed through by the most recent call to Load().
func (c *Codec) Trace() []Phase {
	return c.trace
}

func (c *Codec) enter(p Phase) {
	c.phase = p
	c.trace = append(c.trace, p)
}

// Save the state of the machine.
func (c *Codec) Save(m Machine, kind Kind) ([]byte, error) {
	regions, err := m.Regions(kind)
	if err != nil {
		return nil, fmt.Errorf("savestate: %w", err)
	}
	return Encode(kind, m.CartridgeCRC(), regions)
}

// Load the buffer into the machine. On error the machine is unchanged.
func (c *Codec) Load(m Machine, kind Kind, buf []byte) error {
	c.trace = c.trace[:0]
	c.enter(Validating)

	scratch, err := c.validate(m, kind, buf)
	if err != nil {
		c.enter(Rejected)
		c.enter(Idle)
		logger.Log(c.perm, "savestate", err)
		return err
	}

	c.enter(Applying)
	scratch.Apply()
	c.enter(Idle)

	return nil
}

// Validate checks the buffer completely without changing the machine.
func (c *Codec) Validate(m Machine, kind Kind, buf []byte) error {
	_, err := c.validate(m, kind, buf)
	return err
}

func (c *Codec) validate(m Machine, kind Kind, buf []byte) (Scratch, error) {
	regions, err := Decode(buf, kind, m.CartridgeCRC())
	if err != nil {
		return nil, err
	}

	scratch, err := m.Decode(kind, regions)
	if err != nil {
		if curated.Is(err, CorruptOrIncompatible) {
			return nil, err
		}
		return nil, curated.Errorf(CorruptOrIncompatible, err)
	}

	return scratch, nil
}

// EncodeValue creates a region from a fixed size value.
func EncodeValue(id uint16, v any) (Region, error) {
	b := &bytes.Buffer{}
	if err := binary.Write(b, binary.LittleEndian, v); err != nil {
		return Region{}, fmt.Errorf("region %d: %w", id, err)
	}
	return Region{ID: id, Data: b.Bytes()}, nil
}

// DecodeValue fills the fixed size value from the region. The region must
// be exactly the size of the value.
func DecodeValue(r Region, v any) error {
	if binary.Size(v) != len(r.Data) {
		return fmt.Errorf("region %d: size %d, expected %d", r.ID, len(r.Data), binary.Size(v))
	}
	if err := binary.Read(bytes.NewReader(r.Data), binary.LittleEndian, v); err != nil {
		return fmt.Errorf("region %d: %w", r.ID, err)
	}
	return nil
}
