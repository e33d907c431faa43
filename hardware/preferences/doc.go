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

// Package preferences collates the preference values that configure a run of
// the sequencer. Values are stored on disk by the prefs package and can be
// overridden on the command line with prefs.PushCommandLineStack().
//
// Preferences are read once, before the run starts. Changing a value while
// the driver is running has no effect on the run.
package preferences
