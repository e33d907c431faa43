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

// Package mapper translates abstract script symbols into concrete mutations
// of the input report.
//
// Apply() is a pure function. The only configuration it consults is the
// reversal of the right stick axes, which the user may have set in the game's
// own controller options.
package mapper

import (
	"github.com/autopad/autopad/hardware/report"
	"github.com/autopad/autopad/script"
)

// Orientation of the right stick as configured in the game.
type Orientation struct {
	ReverseLeftRight bool
	ReverseUpDown    bool
}

// offsets from centre used by the Aim and MapCursor symbols
const (
	aimOffsetX = 22
	aimOffsetY = 36
	mapCursorY = 192
)

// mutation changes the report for one symbol
type mutation func(o Orientation, r *report.Report)

func stick(axis func(r *report.Report) *uint8, v uint8) mutation {
	return func(_ Orientation, r *report.Report) {
		*axis(r) = v
	}
}

// right stick axes swap minimum and maximum when reversed
func reversible(axis func(r *report.Report) *uint8, v uint8, reversed func(o Orientation) bool) mutation {
	return func(o Orientation, r *report.Report) {
		if reversed(o) {
			*axis(r) = report.StickMax - v
			return
		}
		*axis(r) = v
	}
}

func hat(h report.Hat) mutation {
	return func(_ Orientation, r *report.Report) {
		r.Hat = h
	}
}

func buttons(b report.Buttons) mutation {
	return func(_ Orientation, r *report.Report) {
		r.Buttons |= b
	}
}

func none(_ Orientation, _ *report.Report) {}

var (
	leftX  = func(r *report.Report) *uint8 { return &r.Left.X }
	leftY  = func(r *report.Report) *uint8 { return &r.Left.Y }
	rightX = func(r *report.Report) *uint8 { return &r.Right.X }
	rightY = func(r *report.Report) *uint8 { return &r.Right.Y }

	leftRight = func(o Orientation) bool { return o.ReverseLeftRight }
	upDown    = func(o Orientation) bool { return o.ReverseUpDown }
)

var mutations = map[script.Symbol]mutation{
	script.LeftStickUp:    stick(leftY, report.StickMin),
	script.LeftStickDown:  stick(leftY, report.StickMax),
	script.LeftStickLeft:  stick(leftX, report.StickMin),
	script.LeftStickRight: stick(leftX, report.StickMax),

	script.RightStickUp:    reversible(rightY, report.StickMin, upDown),
	script.RightStickDown:  reversible(rightY, report.StickMax, upDown),
	script.RightStickLeft:  reversible(rightX, report.StickMin, leftRight),
	script.RightStickRight: reversible(rightX, report.StickMax, leftRight),

	script.HatUp:    hat(report.HatTop),
	script.HatDown:  hat(report.HatBottom),
	script.HatLeft:  hat(report.HatLeft),
	script.HatRight: hat(report.HatRight),

	script.A:     buttons(report.ButtonA),
	script.B:     buttons(report.ButtonB),
	script.X:     buttons(report.ButtonX),
	script.Y:     buttons(report.ButtonY),
	script.L:     buttons(report.ButtonL),
	script.R:     buttons(report.ButtonR),
	script.ZL:    buttons(report.ButtonZL),
	script.ZR:    buttons(report.ButtonZR),
	script.Minus: buttons(report.ButtonMinus),
	script.Plus:  buttons(report.ButtonPlus),

	script.Triggers: buttons(report.ButtonL | report.ButtonR),

	script.Aim: func(o Orientation, r *report.Report) {
		r.Buttons |= report.ButtonZR
		if o.ReverseUpDown {
			r.Right.Y = report.StickCenter + aimOffsetY
		} else {
			r.Right.Y = report.StickCenter - aimOffsetY
		}
		if o.ReverseLeftRight {
			r.Right.X = report.StickCenter + aimOffsetX
		} else {
			r.Right.X = report.StickCenter - aimOffsetX
		}
	},

	script.MapCursor: func(_ Orientation, r *report.Report) {
		r.Left.X = report.StickMin
		r.Left.Y = mapCursorY
	},

	script.Jump: func(_ Orientation, r *report.Report) {
		r.Buttons |= report.ButtonB
		r.Left.Y = report.StickMin
	},

	script.Nothing: none,
	script.End:     none,
}

// Apply returns the report mutated for the symbol. Symbols without a mapping
// return the neutral report.
func Apply(sym script.Symbol, o Orientation, r report.Report) report.Report {
	m, ok := mutations[sym]
	if !ok {
		return report.Neutral()
	}
	m(o, &r)
	return r
}
