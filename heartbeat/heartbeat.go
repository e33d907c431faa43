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

package heartbeat

import (
	"time"

	"github.com/autopad/autopad/logger"
)

// Period is the time between changes of the heartbeat.
const Period = 250 * time.Millisecond

// Heartbeat toggles between on and off every Period.
type Heartbeat struct {
	started bool
	last    time.Time

	on     bool
	pulses int

	buzzer *Buzzer
}

// NewHeartbeat is the preferred method of initialisation for the Heartbeat
// type.
func NewHeartbeat() *Heartbeat {
	return &Heartbeat{}
}

// AttachBuzzer adds a buzzer to the heartbeat. Can be nil.
func (hb *Heartbeat) AttachBuzzer(b *Buzzer) {
	hb.buzzer = b
}

// Update should be called regularly once the run has finished. Returns true
// if the heartbeat has changed.
func (hb *Heartbeat) Update(now time.Time) bool {
	if !hb.started {
		hb.started = true
		hb.last = now
		logger.Log(logger.Allow, "heartbeat", "run complete")
		hb.toggle()
		return true
	}

	if now.Sub(hb.last) < Period {
		return false
	}

	hb.last = hb.last.Add(Period)

	// catch up if Update() has not been called for a long time
	if now.Sub(hb.last) >= Period {
		hb.last = now
	}

	hb.toggle()
	return true
}

func (hb *Heartbeat) toggle() {
	hb.on = !hb.on
	if hb.on {
		hb.pulses++
	}
	if hb.buzzer != nil {
		hb.buzzer.Pulse(hb.on)
	}
}

// On returns true if the heartbeat is currently on.
func (hb *Heartbeat) On() bool {
	return hb.on
}

// Pulses returns the number of times the heartbeat has been switched on.
func (hb *Heartbeat) Pulses() int {
	return hb.pulses
}
