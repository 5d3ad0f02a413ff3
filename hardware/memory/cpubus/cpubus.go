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

// Package cpubus defines the view of the memory system that the CPU has.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses are 24 bits: the bank in bits 16 to 23 and the offset in the
// lower 16 bits.
//
// Read and write do not fail. An address with nothing behind it returns the
// last value on the data bus.
type Memory interface {
	Read(address uint32) uint8
	Write(address uint32, data uint8)

	// the number of master cycles an access to the address takes
	AccessCycles(address uint32) int

	// the number of master cycles an internal operation of the CPU takes
	IdleCycles() int
}
