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
	"sync/atomic"
	"time"

	"github.com/autopad/autopad/curated"
	"github.com/autopad/autopad/echo"
	"github.com/autopad/autopad/hardware/report"
	"github.com/autopad/autopad/hardware/transport"
	"github.com/autopad/autopad/logger"
	"github.com/autopad/autopad/sequencer"
)

// Heartbeat is updated every tick once the sequencer has finished.
type Heartbeat interface {
	Update(now time.Time) bool
}

// MaxRate is the fastest tick rate. A full speed USB device is polled at most
// once every millisecond.
const MaxRate = 1000

// Options for a run of the driver.
type Options struct {
	// ticks per second. zero means no limit. values above MaxRate are
	// treated as MaxRate
	Rate int

	// stop after this number of ticks have been serviced. zero means no limit
	MaxTicks int

	// stop this long after the sequencer has finished. zero means never
	Linger time.Duration
}

// Status is a snapshot of the driver's progress.
type Status struct {
	// ticks that resulted in a report being sent
	Ticks int

	// ticks skipped because the transport was not configured
	Skipped int

	// number of failed sends
	Retries int

	// the most recent report sent
	Report report.Report

	// the state of the sequencer after the most recent tick
	Context sequencer.Context

	State transport.State

	// the measured tick rate
	Actual float32
}

func (s Status) String() string {
	return s.Context.String()
}

// Driver runs the sequencer against a transport.
type Driver struct {
	tr  transport.Transport
	sq  *sequencer.Sequencer
	st  *echo.Stabilizer
	hb  Heartbeat
	opt Options

	// a report that could not be sent. it is sent again before the
	// stabilizer is asked for a new report
	pending    report.Report
	hasPending bool

	status     Status
	statusSnap atomic.Value // Status

	// the time the sequencer reached the done phase
	finished time.Time
}

// NewDriver is the preferred method of initialisation for the Driver type.
// The heartbeat argument can be nil.
func NewDriver(tr transport.Transport, sq *sequencer.Sequencer, hb Heartbeat, opt Options) *Driver {
	drv := &Driver{
		tr:  tr,
		sq:  sq,
		st:  echo.NewStabilizer(sq),
		hb:  hb,
		opt: opt,
	}

	drv.status.Context = sq.Context()
	drv.status.Report = report.Neutral()
	drv.statusSnap.Store(drv.status)

	tr.SetListener(func(from, to transport.State) {
		logger.Logf(logger.Allow, "driver", "transport %s -> %s", from, to)
	})

	return drv
}

// Status returns the most recent status. Safe to call from any goroutine.
func (drv *Driver) Status() Status {
	return drv.statusSnap.Load().(Status)
}

// Run the task loop until the context is cancelled or one of the stopping
// conditions in Options is met. A cancelled context is not an error.
func (drv *Driver) Run(ctx context.Context) error {
	lmtr := newLimiter(drv.opt.Rate)
	defer lmtr.stop()

	logger.Logf(logger.Allow, "driver", "running at %d ticks per second", lmtr.requested)

	for lmtr.wait(ctx) {
		cont, err := drv.tick()

		drv.status.Actual = lmtr.actual
		drv.statusSnap.Store(drv.status)

		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}

// service a single tick. returns false if the run should stop
func (drv *Driver) tick() (bool, error) {
	drv.status.State = drv.tr.State()
	if drv.status.State != transport.Configured {
		drv.status.Skipped++
		return true, nil
	}

	// host reports are not used
	_, _, err := drv.tr.ReceiveHostReport()
	if err != nil {
		if curated.Is(err, transport.Closed) {
			return false, err
		}
		logger.Logf(logger.Allow, "driver", "%v", err)
	}

	if !drv.hasPending {
		drv.pending, _ = drv.st.Tick()
		drv.hasPending = true
		drv.status.Context = drv.sq.Context()
	}

	err = drv.tr.SendReport(drv.pending)
	if err != nil {
		if curated.Has(err, transport.Closed) || curated.Has(err, transport.Fatal) {
			return false, err
		}
		drv.status.Retries++
		logger.Logf(logger.Allow, "driver", "%v", err)
		return true, nil
	}

	drv.hasPending = false
	drv.status.Report = drv.pending
	drv.status.Ticks++

	if drv.sq.Done() {
		now := time.Now()
		if drv.finished.IsZero() {
			drv.finished = now
			logger.Logf(logger.Allow, "driver", "finished after %d ticks", drv.status.Ticks)
		}
		if drv.hb != nil {
			drv.hb.Update(now)
		}
		if drv.opt.Linger > 0 && now.Sub(drv.finished) >= drv.opt.Linger {
			return false, nil
		}
	}

	if drv.opt.MaxTicks > 0 && drv.status.Ticks >= drv.opt.MaxTicks {
		return false, nil
	}

	return true, nil
}
