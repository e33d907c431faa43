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

package script

import (
	"fmt"
	"strings"
)

// Symbol is an abstract input action. It is concretised into a report
// mutation by the mapper package.
type Symbol int

// List of valid Symbol values.
const (
	// directional nudges of the left stick
	LeftStickUp Symbol = iota
	LeftStickDown
	LeftStickLeft
	LeftStickRight

	// directional nudges of the right stick
	RightStickUp
	RightStickDown
	RightStickLeft
	RightStickRight

	// hat switch directions
	HatUp
	HatDown
	HatLeft
	HatRight

	// digital buttons
	A
	B
	X
	Y
	L
	R
	ZL
	ZR
	Minus
	Plus

	// L and R pressed together
	Triggers

	// ZR while the right stick aims slightly off centre
	Aim

	// moves the map cursor with the left stick
	MapCursor

	// B while the left stick is held fully forward
	Jump

	// no input
	Nothing

	// the sentinel. marks the end of every script
	End

	numSymbols
)

var symbolNames = [numSymbols]string{
	"L_UP", "L_DOWN", "L_LEFT", "L_RIGHT",
	"R_UP", "R_DOWN", "R_LEFT", "R_RIGHT",
	"TOP", "BOTTOM", "LEFT", "RIGHT",
	"A", "B", "X", "Y", "L", "R", "ZL", "ZR", "MINUS", "PLUS",
	"TRIGGERS", "AIM", "MAP", "JUMP",
	"NOTHING", "END",
}

func (s Symbol) String() string {
	if s >= 0 && s < numSymbols {
		return symbolNames[s]
	}
	return fmt.Sprintf("symbol(%d)", int(s))
}

// Valid returns false if the symbol is not one of the listed values.
func (s Symbol) Valid() bool {
	return s >= 0 && s < numSymbols
}

// ParseSymbol returns the Symbol with the name s. Case insensitive.
func ParseSymbol(s string) (Symbol, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, n := range symbolNames {
		if n == s {
			return Symbol(i), true
		}
	}
	return Nothing, false
}
