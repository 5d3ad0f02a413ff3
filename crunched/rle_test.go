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

package crunched_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/snescore/snescore/crunched"
	"github.com/snescore/snescore/test"
)

func TestEmpty(t *testing.T) {
	a := crunched.NewRLE(make([]byte, 100))
	test.ExpectFailure(t, a.IsCrunched())

	b := a.Snapshot()
	test.ExpectSuccess(t, b.IsCrunched())
	test.ExpectFailure(t, a.IsCrunched())

	inspection := *b.(crunched.Inspection).Inspect()
	test.ExpectSuccess(t, bytes.Equal(inspection, []byte{0, 99}))

	u, c := b.Size()
	test.ExpectEquality(t, u, 100)
	test.ExpectEquality(t, c, 2)

	test.ExpectSuccess(t, bytes.Equal(*b.Data(), make([]byte, 100)))
	test.ExpectFailure(t, b.IsCrunched())
}

func TestLongRun(t *testing.T) {
	data := bytes.Repeat([]byte{0x55}, 1000)
	data = append(data, 1, 2, 3)

	b := crunched.NewRLE(data).Snapshot()
	test.ExpectSuccess(t, b.IsCrunched())

	// a snapshot of crunched data is also crunched
	c := b.Snapshot()
	test.ExpectSuccess(t, c.IsCrunched())

	test.ExpectSuccess(t, bytes.Equal(*b.Data(), data))
	test.ExpectSuccess(t, bytes.Equal(*c.Data(), data))
}

func TestRandomData(t *testing.T) {
	data := make([]byte, 1000)
	rand.New(rand.NewSource(1)).Read(data)

	// random data will not crunch
	b := crunched.NewRLE(data).Snapshot()
	test.ExpectFailure(t, b.IsCrunched())
	test.ExpectSuccess(t, bytes.Equal(*b.Data(), data))
}

func TestIndependentCopy(t *testing.T) {
	data := []byte{1, 1, 1, 1, 1, 1, 1, 1}
	a := crunched.NewRLE(data)
	data[0] = 2
	test.ExpectEquality(t, (*a.Data())[0], uint8(1))

	b := a.Snapshot()
	(*a.Data())[1] = 3
	test.ExpectEquality(t, (*b.Data())[1], uint8(1))
}
