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

// Package preferences contains the configuration of the emulated hardware.
//
// The Config type is an explicit value passed to the hardware when it is
// created or reset. It holds no references and can be copied freely.
//
// The Preferences type holds the same information as persistent prefs
// values, along with the overclock presets and the autosave mode used by the
// host program. A Config is produced from the Preferences with the Config()
// function.
package preferences
