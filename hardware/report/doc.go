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

// Package report defines the input report sent to the host on every tick and
// its wire layout.
//
// The layout is that of the HORI Pokken Tournament Pro Pad, which the host
// recognises as a Pro Controller. It is eight bytes:
//
//	bytes 0-1	button bitmask, little endian
//	byte 2		hat switch
//	byte 3		left stick X
//	byte 4		left stick Y
//	byte 5		right stick X
//	byte 6		right stick Y
//	byte 7		vendor specific, always zero
//
// Stick axes range from StickMin to StickMax with StickCenter at the
// midpoint. Smaller Y values are further up. The hat switch takes one of nine
// values, HatCenter meaning no direction.
//
// The host can send output reports of the same size. They carry nothing of
// interest and are read only so that the endpoint does not stall.
package report
