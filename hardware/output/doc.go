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

// Package output passes audio samples and frame notifications from the
// emulation goroutine to a consumer goroutine.
//
// AudioRing is a single-producer single-consumer ring buffer. Frames is a
// frame counter and a frame-ready flag. Neither blocks or allocates, so both
// can be used from the emulation's hot path.
package output
