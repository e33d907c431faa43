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

// Package script is the bank of scripted controller input.
//
// A script is an ordered list of Commands, each one a Symbol and the number
// of frames it should be held for beyond the first. Every script ends with
// the End sentinel. The sequencer runs one script per phase of the unattended
// task (see PhaseID) plus three short scripts used while calibrating the
// in-game sensitivity (see Calibration).
//
// Lookup() is the only way the sequencer reads a script. An index beyond the
// end of a script returns the sentinel, which is how scripts terminate.
//
// The built-in bank is returned by Builtin(). Any of its scripts can be
// replaced by a script file:
//
//	autopadscript
//	-- comments begin with two dashes
//	PHASE connect
//	NOTHING 30
//	A 10
//	NOTHING 60
//	END
//
// The first line must be the header. Each block begins with PHASE and the
// name of a phase or calibration script and ends with END. END can take an
// optional value which is the minimum hold used with cartridge timing.
// Symbol names are listed by the Symbol type's String() function.
package script
