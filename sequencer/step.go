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
	"github.com/autopad/autopad/hardware/report"
	"github.com/autopad/autopad/mapper"
	"github.com/autopad/autopad/script"
)

// lookup returns the command for the current tick.
func lookup(ctx Context, bank *script.Bank) script.Command {
	switch {
	case ctx.Done():
		return script.Sentinel
	case ctx.Phase.IsCalibration():
		return bank.LookupCalibration(ctx.calibration(), ctx.StepIndex)
	case ctx.Phase == script.DisableAssist || ctx.Phase == script.RestoreAssist:
		if !ctx.Config.GyroEnabled {
			return script.Sentinel
		}
	}
	return bank.Lookup(ctx.Phase, ctx.StepIndex)
}

// Step advances the context by one tick and returns the report for that
// tick.
//
// The report is neutral except for the mutation of the active command. The
// tick on which a sentinel is reached produces the neutral report, as does
// every tick once the context is Done.
func Step(ctx Context, bank *script.Bank) (Context, report.Report) {
	r := report.Neutral()

	if ctx.Done() {
		return ctx, r
	}

	cmd := lookup(ctx, bank)
	if cmd.Symbol == script.End {
		return Branch(ctx, cmd), r
	}

	r = mapper.Apply(cmd.Symbol, ctx.Config.Orientation(), r)

	ctx.FrameCounter++
	if ctx.FrameCounter > cmd.Duration {
		ctx.StepIndex++
		ctx.FrameCounter = 0
	}

	return ctx, r
}
