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

package mapper_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/autopad/autopad/hardware/report"
	"github.com/autopad/autopad/mapper"
	"github.com/autopad/autopad/script"
	"github.com/autopad/autopad/test"
)

var normal = mapper.Orientation{}

func TestSticks(t *testing.T) {
	r := mapper.Apply(script.LeftStickUp, normal, report.Neutral())
	test.ExpectEquality(t, r.Left.Y, report.StickMin)
	test.ExpectEquality(t, r.Left.X, report.StickCenter)

	r = mapper.Apply(script.LeftStickRight, normal, report.Neutral())
	test.ExpectEquality(t, r.Left.X, report.StickMax)

	r = mapper.Apply(script.RightStickUp, normal, report.Neutral())
	test.ExpectEquality(t, r.Right.Y, report.StickMin)

	r = mapper.Apply(script.RightStickLeft, normal, report.Neutral())
	test.ExpectEquality(t, r.Right.X, report.StickMin)
}

func TestReversal(t *testing.T) {
	ud := mapper.Orientation{ReverseUpDown: true}
	test.ExpectEquality(t, mapper.Apply(script.RightStickUp, ud, report.Neutral()).Right.Y, report.StickMax)
	test.ExpectEquality(t, mapper.Apply(script.RightStickDown, ud, report.Neutral()).Right.Y, report.StickMin)

	// reversal of one axis does not affect the other
	test.ExpectEquality(t, mapper.Apply(script.RightStickLeft, ud, report.Neutral()).Right.X, report.StickMin)

	lr := mapper.Orientation{ReverseLeftRight: true}
	test.ExpectEquality(t, mapper.Apply(script.RightStickLeft, lr, report.Neutral()).Right.X, report.StickMax)
	test.ExpectEquality(t, mapper.Apply(script.RightStickRight, lr, report.Neutral()).Right.X, report.StickMin)

	// the left stick is never reversed
	both := mapper.Orientation{ReverseLeftRight: true, ReverseUpDown: true}
	test.ExpectEquality(t, mapper.Apply(script.LeftStickUp, both, report.Neutral()).Left.Y, report.StickMin)

	// repeated application gives the same answer
	for i := 0; i < 3; i++ {
		test.ExpectEquality(t, mapper.Apply(script.RightStickUp, ud, report.Neutral()).Right.Y, report.StickMax)
		test.ExpectEquality(t, mapper.Apply(script.RightStickUp, normal, report.Neutral()).Right.Y, report.StickMin)
	}
}

func TestButtonsAndHat(t *testing.T) {
	r := mapper.Apply(script.A, normal, report.Neutral())
	test.ExpectEquality(t, r.Buttons, report.ButtonA)

	r = mapper.Apply(script.Triggers, normal, report.Neutral())
	test.ExpectEquality(t, r.Buttons, report.ButtonL|report.ButtonR)

	r = mapper.Apply(script.HatLeft, normal, report.Neutral())
	test.ExpectEquality(t, r.Hat, report.HatLeft)
	test.ExpectEquality(t, r.Buttons, report.Buttons(0))

	// buttons are ORed into the existing mask
	r = report.Neutral()
	r.Buttons = report.ButtonB
	r = mapper.Apply(script.Plus, normal, r)
	test.ExpectEquality(t, r.Buttons, report.ButtonB|report.ButtonPlus)
}

func TestComposites(t *testing.T) {
	want := report.Neutral()
	want.Buttons = report.ButtonZR
	want.Right = report.Stick{X: report.StickCenter - 22, Y: report.StickCenter - 36}
	if d := cmp.Diff(want, mapper.Apply(script.Aim, normal, report.Neutral())); d != "" {
		t.Errorf("aim (-want +got):\n%s", d)
	}

	want.Right = report.Stick{X: report.StickCenter + 22, Y: report.StickCenter + 36}
	both := mapper.Orientation{ReverseLeftRight: true, ReverseUpDown: true}
	if d := cmp.Diff(want, mapper.Apply(script.Aim, both, report.Neutral())); d != "" {
		t.Errorf("reversed aim (-want +got):\n%s", d)
	}

	want = report.Neutral()
	want.Left = report.Stick{X: report.StickMin, Y: 192}
	if d := cmp.Diff(want, mapper.Apply(script.MapCursor, normal, report.Neutral())); d != "" {
		t.Errorf("map cursor (-want +got):\n%s", d)
	}

	want = report.Neutral()
	want.Buttons = report.ButtonB
	want.Left.Y = report.StickMin
	if d := cmp.Diff(want, mapper.Apply(script.Jump, normal, report.Neutral())); d != "" {
		t.Errorf("jump (-want +got):\n%s", d)
	}
}

func TestNeutralSymbols(t *testing.T) {
	test.ExpectSuccess(t, mapper.Apply(script.Nothing, normal, report.Neutral()).IsNeutral())
	test.ExpectSuccess(t, mapper.Apply(script.End, normal, report.Neutral()).IsNeutral())

	// an unknown symbol snaps any report back to neutral
	r := report.Neutral()
	r.Buttons = report.ButtonA
	r.Hat = report.HatTop
	test.ExpectSuccess(t, mapper.Apply(script.Symbol(1000), normal, r).IsNeutral())
}
