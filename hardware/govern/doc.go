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

// Package govern coordinates the goroutine running the emulation with the
// goroutines that control it.
//
// The run loop calls Check() at instruction boundaries. A controlling
// goroutine calls Pause(), which blocks until the loop has acknowledged the
// request by entering the Paused state, and Resume() to release it. While the
// loop is paused, or when no loop is running, the emulation is quiesced and
// its state can be saved or restored.
package govern
