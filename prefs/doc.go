// This file is part of autopad.
//
// autopad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// autopad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with autopad.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs facilitates the storage of preference values on disk.
//
// Preference values are declared as one of the types in this package (Bool,
// Int, String) and added to a Disk instance with a key:
//
//	var loop prefs.Bool
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("autopad.infiniteLoop", &loop)
//	err = dsk.Load(false)
//
// The file on disk is plain text with one preference per line, the key and
// value separated by "::". Lines for keys that have not been added to the
// Disk instance are preserved when the file is saved, so more than one Disk
// instance can share a file.
//
// Command line overrides are supported with PushCommandLineStack(). A string
// of the form "key::value; key::value" is parsed and the values are used in
// preference to the values on disk the next time Load() is called.
package prefs
