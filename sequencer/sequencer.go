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
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/autopad/autopad/hardware/report"
	"github.com/autopad/autopad/logger"
	"github.com/autopad/autopad/script"
)

// TransitionHook is called after every phase transition with the phase that
// has been left and the new context.
type TransitionHook func(from script.PhaseID, ctx Context)

// Sequencer owns the context of a run. It must only be stepped from one
// goroutine.
type Sequencer struct {
	bank *script.Bank
	ctx  Context
	hook TransitionHook
}

// NewSequencer is the preferred method of initialisation for the Sequencer
// type.
func NewSequencer(bank *script.Bank, cfg Config) *Sequencer {
	return &Sequencer{
		bank: bank,
		ctx:  NewContext(cfg),
	}
}

// SetTransitionHook sets the function called after each phase transition. A
// nil value removes the hook.
func (sq *Sequencer) SetTransitionHook(hook TransitionHook) {
	sq.hook = hook
}

// Step the sequencer by one tick. Returns the report for the tick.
func (sq *Sequencer) Step() report.Report {
	from := sq.ctx.Phase

	var r report.Report
	sq.ctx, r = Step(sq.ctx, sq.bank)

	if sq.ctx.Phase != from {
		logger.Logf(logger.Allow, "sequencer", "%s -> %s (retry=%d menu=%d sensitivity=%d)",
			from, sq.ctx.Phase, sq.ctx.RetryCount, sq.ctx.MenuVisitCount, sq.ctx.CalibrationCurrent)
		if sq.hook != nil {
			sq.hook(from, sq.ctx)
		}
	}

	return r
}

// Context returns a copy of the current context.
func (sq *Sequencer) Context() Context {
	return sq.ctx
}

// Done returns true once the run has completed.
func (sq *Sequencer) Done() bool {
	return sq.ctx.Done()
}

// Memviz writes a graphviz representation of the context.
func (sq *Sequencer) Memviz(w io.Writer) {
	ctx := sq.ctx
	memviz.Map(w, &ctx)
}
