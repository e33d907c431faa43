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

// Bank is the complete set of scripts used by the sequencer. The zero value
// is a bank in which every script is empty, ie. immediately returns the
// sentinel.
type Bank struct {
	phases      [NumPhases]Phase
	calibration [NumCalibration]Phase
}

// Lookup returns the command at index of the script for phase id. An index
// beyond the end of the script, or a phase without a script, returns the
// sentinel.
func (b *Bank) Lookup(id PhaseID, index int) Command {
	if id < 0 || id >= NumPhases {
		return Sentinel
	}
	return b.phases[id].Lookup(index)
}

// LookupCalibration returns the command at index of the calibration script.
func (b *Bank) LookupCalibration(c Calibration, index int) Command {
	if c < 0 || c >= NumCalibration {
		return Sentinel
	}
	return b.calibration[c].Lookup(index)
}

// Phase returns the script for phase id.
func (b *Bank) Phase(id PhaseID) Phase {
	if id < 0 || id >= NumPhases {
		return Phase{}
	}
	return b.phases[id]
}

// Calibration returns the calibration script.
func (b *Bank) Calibration(c Calibration) Phase {
	if c < 0 || c >= NumCalibration {
		return Phase{}
	}
	return b.calibration[c]
}

// SetPhase replaces the script for phase id. The Done phase never has a
// script and is ignored.
func (b *Bank) SetPhase(id PhaseID, p Phase) {
	if id < 0 || id >= Done {
		return
	}
	b.phases[id] = p
}

// SetCalibration replaces the calibration script.
func (b *Bank) SetCalibration(c Calibration, p Phase) {
	if c < 0 || c >= NumCalibration {
		return
	}
	b.calibration[c] = p
}
