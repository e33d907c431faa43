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

import (
	"fmt"
	"strings"
)

// Command is the atomic unit of scripted input. The symbol is asserted for
// Duration+1 ticks.
//
// For the End sentinel, Duration is the minimum hold threshold consulted
// under cartridge timing. It is ignored otherwise.
type Command struct {
	Symbol   Symbol
	Duration int
}

func (c Command) String() string {
	return fmt.Sprintf("%s %d", c.Symbol, c.Duration)
}

// Sentinel is the command returned for any index beyond the end of a script.
var Sentinel = Command{Symbol: End}

// PhaseID identifies one phase of the unattended task. Phases run in the
// order listed unless the sequencer's branch policy says otherwise.
type PhaseID int

// List of valid PhaseID values.
const (
	Connect PhaseID = iota
	Sync
	NavigateToArea
	OpenMenu
	DisableAssist
	CalibrateSensitivity
	JumpToTarget
	EnterTarget
	PerformTask
	RetrieveItem
	RestoreSensitivity
	RestoreAssist
	ReturnToBase

	// the terminal phase. there is no script for Done
	Done

	NumPhases
)

var phaseNames = [NumPhases]string{
	"connect", "sync", "navigate", "menu", "disableAssist", "calibrate",
	"jump", "enter", "task", "retrieve", "restoreSensitivity", "restoreAssist",
	"return", "done",
}

func (id PhaseID) String() string {
	if id >= 0 && id < NumPhases {
		return phaseNames[id]
	}
	return fmt.Sprintf("phase(%d)", int(id))
}

// Next returns the phase that follows in enumeration order. The successor
// of Done is Done.
func (id PhaseID) Next() PhaseID {
	if id >= Done {
		return Done
	}
	return id + 1
}

// IsCalibration returns true for the two phases that drive the sensitivity
// calibration.
func (id PhaseID) IsCalibration() bool {
	return id == CalibrateSensitivity || id == RestoreSensitivity
}

// IsNavigation returns true for the two phases that end with a loading
// screen. Only these phases honour the minimum hold under cartridge timing.
func (id PhaseID) IsNavigation() bool {
	return id == NavigateToArea || id == EnterTarget
}

// Calibration identifies the scripts used by the calibration phases.
type Calibration int

// List of valid Calibration values.
const (
	// one press lowering the sensitivity by one unit
	Decrease Calibration = iota

	// one press raising the sensitivity by one unit
	Increase

	// confirmation after the sensitivity has converged
	Confirm

	NumCalibration
)

var calibrationNames = [NumCalibration]string{"decrease", "increase", "confirm"}

func (c Calibration) String() string {
	if c >= 0 && c < NumCalibration {
		return calibrationNames[c]
	}
	return fmt.Sprintf("calibration(%d)", int(c))
}

// Phase is an immutable, sentinel terminated list of Commands.
type Phase struct {
	commands []Command
}

// NewPhase creates a Phase from a list of commands. The list is copied. If the
// list is not terminated by the sentinel then a sentinel with a zero hold is
// appended. Commands after the first sentinel are dropped.
func NewPhase(commands ...Command) Phase {
	p := Phase{commands: make([]Command, 0, len(commands)+1)}
	for _, c := range commands {
		p.commands = append(p.commands, c)
		if c.Symbol == End {
			return p
		}
	}
	p.commands = append(p.commands, Sentinel)
	return p
}

// Lookup returns the command at index. Any index outside the script returns
// the sentinel.
func (p Phase) Lookup(index int) Command {
	if index < 0 || index >= len(p.commands) {
		return Sentinel
	}
	return p.commands[index]
}

// Len returns the number of commands including the sentinel.
func (p Phase) Len() int {
	return len(p.commands)
}

// Hold returns the minimum hold threshold carried by the sentinel.
func (p Phase) Hold() int {
	if len(p.commands) == 0 {
		return 0
	}
	return p.commands[len(p.commands)-1].Duration
}

// Ticks returns the number of ticks the script takes before the sentinel is
// reached. Each command takes Duration+1 ticks.
func (p Phase) Ticks() int {
	var t int
	for _, c := range p.commands {
		if c.Symbol == End {
			break // for loop
		}
		t += c.Duration + 1
	}
	return t
}

func (p Phase) String() string {
	s := make([]string, 0, len(p.commands))
	for _, c := range p.commands {
		s = append(s, c.String())
	}
	return strings.Join(s, ", ")
}
