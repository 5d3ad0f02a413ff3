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

// Package mapper defines the types that describe how a cartridge is attached
// to the SNES address bus.
//
// The mapping scheme is a tagged variant. The Kind value is chosen once when
// the cartridge is loaded and every access is dispatched by switching on the
// Kind. A mapper that is not one of the listed Kinds is not supported.
package mapper
