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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. The first argument
// is a pattern rather than a format string because the pattern is what
// identifies the error. Packages export their patterns as constants and
// callers test for them with Is() and Has():
//
//	const UnsupportedMapper = "cartridge: unsupported mapper: %#02x"
//
//	err := curated.Errorf(UnsupportedMapper, 0x23)
//	if curated.Is(err, UnsupportedMapper) {
//		...
//	}
//
// Has() searches the wrapped chain, so an error created with
//
//	curated.Errorf("snes: %v", err)
//
// still answers true to Has(err, UnsupportedMapper) but false to Is().
//
// The Error() function normalises the message so that the chain does not
// contain duplicate adjacent parts. A chain is composed of parts separated by
// the sub-string ": ". This means that a function can wrap an error in its
// own component prefix without worrying whether the callee already did so.
package curated
