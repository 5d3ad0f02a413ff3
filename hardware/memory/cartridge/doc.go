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

// Package cartridge decodes SNES cartridge images and maps the cartridge into
// the SNES address space.
//
// The mapping scheme is detected from the cartridge header when the image is
// loaded. There are three places the header can be and each candidate is
// scored for plausibility. The best candidate determines the mapper Kind. An
// image with a map mode or coprocessor that cannot be emulated results in an
// UnsupportedMapper error.
//
// The ROM data is immutable once loaded. The SRAM and the bank registers of
// the Banked scheme are the only mutable parts of a cartridge.
package cartridge
