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

package echo_test

import (
	"testing"

	"github.com/autopad/autopad/echo"
	"github.com/autopad/autopad/hardware/report"
	"github.com/autopad/autopad/script"
	"github.com/autopad/autopad/sequencer"
	"github.com/autopad/autopad/test"
)

// produces a report with a different left stick X value each step
type counter struct {
	n int
}

func (c *counter) Step() report.Report {
	r := report.Neutral()
	r.Left.X = uint8(c.n)
	c.n++
	return r
}

func TestEcho(t *testing.T) {
	c := &counter{}
	st := echo.NewStabilizer(c)

	for i := 0; i < 10; i++ {
		r, repeat := st.Tick()
		test.ExpectFailure(t, repeat)
		test.ExpectEquality(t, r.Left.X, uint8(i))

		for j := 0; j < echo.Budget; j++ {
			e, repeat := st.Tick()
			test.ExpectSuccess(t, repeat)
			test.ExpectEquality(t, e, r)
		}
	}

	test.ExpectEquality(t, st.Steps(), 10)
	test.ExpectEquality(t, c.n, 10)
}

func TestEchoSequencer(t *testing.T) {
	sq := sequencer.NewSequencer(script.Builtin(), sequencer.Config{})
	st := echo.NewStabilizer(sq)

	// the A press of the connect phase begins on the 32nd step of the
	// sequencer
	for i := 0; i < 31*(echo.Budget+1); i++ {
		r, _ := st.Tick()
		test.ExpectSuccess(t, r.IsNeutral())
	}
	r, repeat := st.Tick()
	test.ExpectFailure(t, repeat)
	test.ExpectEquality(t, r.Buttons, report.ButtonA)
	test.ExpectEquality(t, sq.Context().FrameCounter, 1)
}
