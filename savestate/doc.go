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

// Package savestate encodes and decodes save buffers.
//
// A save buffer is a header, a region table and the region payloads:
//
//	header	magic "SNSC", format version, kind, reserved byte, cartridge
//		CRC32, number of regions, CRC32 of the preceding header bytes
//	table	for each region: ID, payload length, payload CRC32
//	payload	the region payloads in table order
//
// All values are little endian. Two kinds of buffer exist: a full snapshot
// of the machine and an SRAM-only buffer. Neither contains ROM data.
//
// The contents of the regions are the business of the Machine being saved.
// The codec validates the framing of a buffer completely before the machine
// is asked to decode the regions, and the machine decodes them into scratch
// state that is only applied once everything has succeeded. A buffer that
// fails at any stage leaves the machine untouched and the error matches the
// CorruptOrIncompatible pattern.
package savestate
