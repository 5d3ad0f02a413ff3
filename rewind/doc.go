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

// Package rewind keeps a history of machine states so that the emulation can
// be returned to an earlier frame.
//
// A state is saved every Freq frames with the same codec used for save
// states. Returning to a frame plumbs in the nearest earlier state and runs
// the emulation forward to the requested frame. Because the emulation is
// deterministic the result is identical to the state the machine was in when
// the frame first completed.
//
// States after the frame that has been returned to are discarded. The
// history is bounded by MaxEntries, after which the earliest states are
// forgotten.
package rewind
