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
	"fmt"

	"github.com/autopad/autopad/mapper"
	"github.com/autopad/autopad/script"
)

// Flags are the configuration switches consulted by the sequencer. They are
// fixed for the duration of a run.
type Flags struct {
	// motion assist is enabled in the game. the DisableAssist and
	// RestoreAssist phases are skipped if this is false
	GyroEnabled bool

	ReverseLeftRight bool
	ReverseUpDown    bool

	// the slower loading cartridge version of the game. navigation phases
	// honour the hold carried by their sentinel
	CartridgeTiming bool

	// repeat PerformTask forever
	InfiniteLoop bool
}

// Orientation returns the right stick orientation for the mapper.
func (f Flags) Orientation() mapper.Orientation {
	return mapper.Orientation{
		ReverseLeftRight: f.ReverseLeftRight,
		ReverseUpDown:    f.ReverseUpDown,
	}
}

// Config is the complete configuration of a run.
type Config struct {
	Flags

	// the user's sensitivity setting in double units. restored at the end of
	// the run
	Sensitivity int

	// the sensitivity the scripts are written for, in double units
	CalibrationTarget int
}

// Context is the complete mutable state of the sequencer.
type Context struct {
	Phase script.PhaseID

	// position in the active script and the number of ticks spent on the
	// current command
	StepIndex    int
	FrameCounter int

	// the number of times PerformTask has completed
	RetryCount int

	// sensitivity in double units
	CalibrationCurrent int
	CalibrationTarget  int

	// the number of times OpenMenu has completed
	MenuVisitCount int

	Config Config
}

// NewContext returns the context for the start of a run.
func NewContext(cfg Config) Context {
	return Context{
		Phase:  script.Connect,
		Config: cfg,
	}
}

func (ctx Context) String() string {
	return fmt.Sprintf("%s step=%d frame=%d retry=%d sensitivity=%d/%d menu=%d",
		ctx.Phase, ctx.StepIndex, ctx.FrameCounter, ctx.RetryCount,
		ctx.CalibrationCurrent, ctx.CalibrationTarget, ctx.MenuVisitCount)
}

// Done returns true once the terminal phase has been reached.
func (ctx Context) Done() bool {
	return ctx.Phase == script.Done
}

// rewind to the start of the active script
func (ctx *Context) rewind() {
	ctx.StepIndex = 0
	ctx.FrameCounter = 0
}

// enter moves to the start of another phase
func (ctx *Context) enter(id script.PhaseID) {
	ctx.Phase = id
	ctx.rewind()

	switch id {
	case script.CalibrateSensitivity:
		ctx.CalibrationCurrent = ctx.Config.Sensitivity
		ctx.CalibrationTarget = ctx.Config.CalibrationTarget
	case script.RestoreSensitivity:
		ctx.CalibrationTarget = ctx.Config.Sensitivity
	}
}
