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

// the number of times PerformTask completes before moving on
const maxRetries = 4

// the OpenMenu visit that goes straight to RestoreSensitivity
const restoreVisit = 2

// Branch applies the phase branch policy. It is called on a tick when the
// active script has reached its sentinel. The sentinel is passed so that its
// hold threshold can be consulted.
func Branch(ctx Context, sentinel script.Command) Context {
	switch ctx.Phase {
	case script.PerformTask:
		ctx.RetryCount++
	case script.OpenMenu:
		ctx.MenuVisitCount++
	}

	switch {
	case ctx.Config.InfiniteLoop && ctx.Phase == script.PerformTask:
		ctx.enter(script.EnterTarget)
		ctx.RetryCount = 0

	case ctx.Phase == script.PerformTask && ctx.RetryCount > 0 && ctx.RetryCount < maxRetries:
		ctx.enter(script.EnterTarget)

	case ctx.Phase == script.RetrieveItem:
		ctx.enter(script.OpenMenu)

	case ctx.Phase == script.OpenMenu && ctx.MenuVisitCount == restoreVisit:
		ctx.enter(script.RestoreSensitivity)

	case ctx.Phase.IsCalibration() && !ctx.Converged():
		ctx.press()
		ctx.rewind()

	case ctx.Config.CartridgeTiming && ctx.Phase.IsNavigation() && ctx.FrameCounter < sentinel.Duration:
		ctx.FrameCounter++

	default:
		ctx.enter(ctx.Phase.Next())
	}

	return ctx
}
