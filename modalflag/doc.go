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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the concept of modes and sub-modes to command line
// processing.
//
// A mode is a word on the command line that selects which set of flags is
// parsed next. For example:
//
//	autopad run -device /dev/hidg0
//	autopad scripts -script custom.txt
//
// The first sub-mode added with AddSubModes() is the default. If the first
// argument after the flags is not a recognised sub-mode then the default is
// selected and the argument is left in place. Sub-mode comparisons are case
// insensitive.
//
// Help for the current mode is printed automatically when the -help flag is
// encountered. Parse() returns ParseHelp in that case and the caller should
// exit without further output.
package modalflag
