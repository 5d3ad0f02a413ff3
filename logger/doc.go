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

// Package logger is the central log repository for the emulator core. Entries
// are tagged with the component that created them. Consecutive identical
// entries are folded into a single entry with a repeat count.
//
// The central log holds a maximum number of entries. Older entries are
// discarded as new ones arrive.
//
// Logging is conditional on a Permission. Emulations that should not pollute
// the log, such as the shadow machine used for determinism checks, supply a
// Permission that refuses logging. Use the Allow value when logging should
// always happen.
package logger
