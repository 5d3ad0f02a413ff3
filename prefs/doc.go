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

// Package prefs facilitates the storage of preferential values in the
// emulator. It is used for preference values that are not part of the
// machine state but which the user may want to persist between sessions.
//
// Values are stored in the Bool, Int, Float and String types. Each type can
// have a pre and post hook function. A hook that returns an error prevents
// the value from being stored (pre hook) or is reported by Set() (post hook).
//
// Values are connected to a disk file with the Disk type:
//
//	var ratio prefs.Float
//
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("hardware.superfx.ratio", &ratio)
//	err = dsk.Load()
//
// The file format is one entry per line, the key and value separated by
// " :: ". A Disk only touches the keys that have been added to it so many
// Disk instances can share the same file.
//
// The command line stack allows preferences to be overridden for a single
// session. Values on the stack take priority over values on disk when a
// Disk is loaded.
package prefs
