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

// Package driver runs the HID task loop. Once per tick the driver checks that
// the transport is configured, reads and discards any report from the host,
// takes the next report from the echo stabilizer and sends it.
//
// Ticks are paced by a limiter running at the configured tick rate. A rate of
// zero runs the loop as fast as possible, which is useful for playback.
//
// When the sequencer reaches the done phase the loop continues to send
// neutral reports and drives the heartbeat.
//
// The driver is the only caller of the sequencer. Other goroutines observe
// the run through the Status() function.
package driver
