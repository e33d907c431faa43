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

package sequencer

import (
	"github.com/autopad/autopad/script"
)

// Converged returns true if the calibration counter has reached its target.
func (ctx Context) Converged() bool {
	return ctx.CalibrationCurrent == ctx.CalibrationTarget
}

// calibration returns the calibration script for the current state of the
// counters. a press script runs while the counter differs from the target and
// the confirmation script runs once it is equal. the counter only changes at
// the sentinel of a press script so the choice is stable for the duration of
// a script.
func (ctx Context) calibration() script.Calibration {
	switch {
	case ctx.CalibrationCurrent > ctx.CalibrationTarget:
		return script.Decrease
	case ctx.CalibrationCurrent < ctx.CalibrationTarget:
		return script.Increase
	}
	return script.Confirm
}

// press moves the counter one unit toward the target. called when a press
// script completes. never overshoots.
func (ctx *Context) press() {
	switch {
	case ctx.CalibrationCurrent > ctx.CalibrationTarget:
		ctx.CalibrationCurrent--
	case ctx.CalibrationCurrent < ctx.CalibrationTarget:
		ctx.CalibrationCurrent++
	}
}
