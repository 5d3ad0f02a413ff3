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

// Package crunched stores blocks of data in a compressed form. The data is
// uncompressed automatically when it is accessed.
package crunched

// Data is a block of data that may be crunched.
type Data interface {
	// IsCrunched returns true if data is currently crunched
	IsCrunched() bool

	// Size returns the uncrunched size and the current size of the data. If
	// the data is not crunched then the two values will be the same
	Size() (int, int)

	// Data returns a pointer to the uncrunched data
	Data() *[]byte

	// Snapshot makes a copy of the data, crunching it if possible. The data
	// will be uncrunched automatically when Data() is called
	Snapshot() Data
}

// Inspection allows access to the data in its current form.
type Inspection interface {
	Data

	// Inspect returns data in the current state. In other words, the data will
	// not be uncrunched as it would be with the Data() function
	Inspect() *[]byte
}
