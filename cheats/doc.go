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

// Package cheats parses cheat codes and maintains the list of cheats for the
// loaded cartridge.
//
// Three code formats are understood:
//
//	7E0DBE:63	raw address and value (":" or "=" separator)
//	7E0DBE63	Pro Action Replay
//	C2A5-6FD4	Game Genie
//
// A cheat can be made up of several codes joined with "+". The codes of all
// enabled cheats are compiled into a list of memory.Patch values, which the
// memory bus applies to every read of the patched address.
//
// Lists of cheats are read from and written to the cheat file format used by
// Snes9x, which is a small subset of BML:
//
//	cheat
//	  name: Infinite lives
//	  code: 7E0DBE:63+7E0DBF:00
//	  enable
package cheats
