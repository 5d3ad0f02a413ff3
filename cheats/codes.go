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

package cheats

import (
	"strconv"
	"strings"

	"github.com/snescore/snescore/curated"
	"github.com/snescore/snescore/hardware/memory"
)

// InvalidCode is returned when a code cannot be parsed.
const InvalidCode = "cheats: invalid code (%s)"

// the Game Genie alphabet. the position of a character is its value.
const genieAlphabet = "DF4709156BC8A23E"

// ParseCode parses a code in any of the supported formats. Codes joined with
// "+" produce one patch each.
func ParseCode(code string) ([]memory.Patch, error) {
	var patches []memory.Patch
	for _, c := range strings.Split(code, "+") {
		p, err := parseSingle(strings.TrimSpace(c))
		if err != nil {
			return nil, err
		}
		patches = append(patches, p)
	}
	return patches, nil
}

func parseSingle(code string) (memory.Patch, error) {
	if i := strings.IndexAny(code, ":="); i >= 0 {
		return parseRaw(code, code[:i], code[i+1:])
	}

	switch len(code) {
	case 8:
		return parseRaw(code, code[:6], code[6:])
	case 9:
		if code[4] == '-' {
			return parseGenie(code)
		}
	}

	return memory.Patch{}, curated.Errorf(InvalidCode, code)
}

func parseRaw(code string, address string, value string) (memory.Patch, error) {
	if len(address) == 0 || len(address) > 6 || len(value) == 0 || len(value) > 2 {
		return memory.Patch{}, curated.Errorf(InvalidCode, code)
	}
	a, err := strconv.ParseUint(address, 16, 32)
	if err != nil {
		return memory.Patch{}, curated.Errorf(InvalidCode, code)
	}
	v, err := strconv.ParseUint(value, 16, 8)
	if err != nil {
		return memory.Patch{}, curated.Errorf(InvalidCode, code)
	}
	return memory.Patch{Address: uint32(a), Value: uint8(v)}, nil
}

// parseGenie decodes a Game Genie code. the characters are translated to hex
// digits and the address bits are unscrambled.
func parseGenie(code string) (memory.Patch, error) {
	var n uint32
	for i, c := range strings.ToUpper(code) {
		if i == 4 {
			continue
		}
		d := strings.IndexRune(genieAlphabet, c)
		if d < 0 {
			return memory.Patch{}, curated.Errorf(InvalidCode, code)
		}
		n = n<<4 | uint32(d)
	}

	value := uint8(n >> 24)
	s := n & 0xffffff

	address := (s&0x003c00)<<10 |
		(s&0x00003c)<<14 |
		(s&0xf00000)>>8 |
		(s&0x000003)<<10 |
		(s&0x00c000)>>6 |
		(s&0x0f0000)>>12 |
		(s&0x0003c0)>>6

	return memory.Patch{Address: address, Value: value}, nil
}

// EncodeGenie returns the Game Genie code for the patch. The inverse of the
// decoding performed by ParseCode.
func EncodeGenie(p memory.Patch) string {
	a := p.Address & 0xffffff
	s := (a&0xf00000)>>10 |
		(a&0x0f0000)>>14 |
		(a&0x00f000)<<8 |
		(a&0x000c00)>>10 |
		(a&0x000300)<<6 |
		(a&0x0000f0)<<12 |
		(a&0x00000f)<<6

	n := uint32(p.Value)<<24 | s

	var b strings.Builder
	for i := 7; i >= 0; i-- {
		if i == 3 {
			b.WriteByte('-')
		}
		b.WriteByte(genieAlphabet[(n>>(uint(i)*4))&0x0f])
	}
	return b.String()
}
