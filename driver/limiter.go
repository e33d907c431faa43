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

package driver

import (
	"context"
	"time"
)

type limiter struct {
	// whether to wait for the ticker each tick
	limit bool

	// the requested number of ticks per second
	requested int

	// actual calculation
	actual         float32
	actualCt       int
	actualCtTarget int
	actualRefTime  time.Time

	tck *time.Ticker
}

func newLimiter(rate int) *limiter {
	if rate > MaxRate {
		rate = MaxRate
	}

	lmtr := &limiter{
		requested:     rate,
		actualRefTime: time.Now(),
	}

	if rate > 0 {
		lmtr.limit = true
		lmtr.tck = time.NewTicker(time.Second / time.Duration(rate))
		lmtr.actualCtTarget = rate / 2
	}

	if lmtr.actualCtTarget < 1 {
		lmtr.actualCtTarget = 1
	}

	return lmtr
}

func (lmtr *limiter) stop() {
	if lmtr.tck != nil {
		lmtr.tck.Stop()
	}
}

// wait for the next tick. returns false if the context has been cancelled
func (lmtr *limiter) wait(ctx context.Context) bool {
	if lmtr.limit {
		select {
		case <-lmtr.tck.C:
		case <-ctx.Done():
			return false
		}
	} else {
		select {
		case <-ctx.Done():
			return false
		default:
		}
	}

	lmtr.measureActual()
	return true
}

// called every tick to calculate the actual tick rate being achieved
func (lmtr *limiter) measureActual() {
	lmtr.actualCt++
	if lmtr.actualCt >= lmtr.actualCtTarget {
		t := time.Now()
		lmtr.actual = float32(lmtr.actualCtTarget) / float32(t.Sub(lmtr.actualRefTime).Seconds())

		// remeasure roughly every second
		if lmtr.actual > 1 {
			lmtr.actualCtTarget = int(lmtr.actual)
		} else {
			lmtr.actualCtTarget = 1
		}

		lmtr.actualRefTime = t
		lmtr.actualCt = 0
	}
}
