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

package instructions_test

import (
	"testing"

	"github.com/snescore/snescore/hardware/cpu/instructions"
	"github.com/snescore/snescore/test"
)

func TestTable(t *testing.T) {
	defs := instructions.GetDefinitions()
	for i, d := range defs {
		test.ExpectEquality(t, int(d.OpCode), i)
		test.ExpectSuccess(t, d.Bytes >= 1 && d.Bytes <= 4, d)
		test.ExpectSuccess(t, d.Cycles >= 2 && d.Cycles <= 8, d)
		test.ExpectInequality(t, d.Operator.String(), "???", d)
	}

	// every operator appears at least once
	seen := make(map[instructions.Operator]bool)
	for _, d := range defs {
		seen[d.Operator] = true
	}
	test.ExpectEquality(t, len(seen), 92)
}

func TestLength(t *testing.T) {
	defs := instructions.GetDefinitions()

	lda := defs[0xa9]
	test.ExpectEquality(t, lda.Operator, instructions.Lda)
	test.ExpectEquality(t, lda.Length(true, true), 2)
	test.ExpectEquality(t, lda.Length(false, true), 3)
	test.ExpectEquality(t, lda.Length(true, false), 2)

	ldx := defs[0xa2]
	test.ExpectEquality(t, ldx.Length(false, true), 2)
	test.ExpectEquality(t, ldx.Length(true, false), 3)

	rep := defs[0xc2]
	test.ExpectEquality(t, rep.Length(false, false), 2)

	test.ExpectSuccess(t, defs[0xd0].IsBranch())
	test.ExpectSuccess(t, defs[0x82].IsBranch())
	test.ExpectFailure(t, defs[0x62].IsBranch())
}
