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

package crunched

// rle crunches data with run length encoding. each byte in the crunched
// stream is followed by the number of times it repeats, up to 255.
type rle struct {
	crunched       bool
	data           []byte
	uncrunchedSize int
}

// NewRLE creates a Data instance containing a copy of buf.
func NewRLE(buf []byte) Data {
	c := &rle{
		data:           make([]byte, len(buf)),
		uncrunchedSize: len(buf),
	}
	copy(c.data, buf)
	return c
}

func (c *rle) IsCrunched() bool {
	return c.crunched
}

func (c *rle) Size() (int, int) {
	return c.uncrunchedSize, len(c.data)
}

func (c *rle) Data() *[]byte {
	if !c.crunched {
		return &c.data
	}

	// crunched data is always made up of value/count pairs
	if len(c.data)&0x01 == 0x01 {
		panic("crunched: odd number of bytes in RLE stream")
	}

	working := c.data
	c.data = make([]byte, 0, c.uncrunchedSize)
	for i := 0; i < len(working); i += 2 {
		for range int(working[i+1]) + 1 {
			c.data = append(c.data, working[i])
		}
	}
	c.crunched = false

	return &c.data
}

func (c *rle) Snapshot() Data {
	d := &rle{
		crunched:       c.crunched,
		uncrunchedSize: c.uncrunchedSize,
	}

	if !c.crunched && len(c.data) > 0 {
		if w, ok := crunch(c.data); ok {
			d.crunched = true
			d.data = w
			return d
		}
	}

	// data is either already crunched or crunching would not make it smaller
	d.data = make([]byte, len(c.data))
	copy(d.data, c.data)
	return d
}

// crunch returns false if the crunched data would be as large or larger than
// the original.
func crunch(data []byte) ([]byte, bool) {
	working := make([]byte, 0, len(data))

	v := data[0]
	ct := 0
	for _, b := range data[1:] {
		if b == v && ct < 255 {
			ct++
			continue
		}
		if len(working)+2 >= len(data) {
			return nil, false
		}
		working = append(working, v, byte(ct))
		v = b
		ct = 0
	}

	if len(working)+2 >= len(data) {
		return nil, false
	}
	working = append(working, v, byte(ct))

	return working, true
}

func (c *rle) Inspect() *[]byte {
	return &c.data
}
