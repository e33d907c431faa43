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

// Package heartbeat signals that a run has completed. The heartbeat toggles
// every Period once the sequencer reaches the done phase, in place of the LED
// and buzzer of a hardware controller.
//
// Each change of the heartbeat is logged the first time. If a Buzzer is
// attached then every pulse is rendered as audio and can be written to a WAV
// file with Buzzer.Write(). The buzzer tone can be replaced by a sample loaded
// from a WAV or MP3 file with LoadSample().
package heartbeat
