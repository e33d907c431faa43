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

package monitor

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/autopad/autopad/driver"
	"github.com/autopad/autopad/logger"
)

// QuitKey stops the run.
const QuitKey = 'q'

// the time between redraws of the status line
const refresh = 100 * time.Millisecond

// StatusFunc returns the current status of the driver.
type StatusFunc func() driver.Status

// Monitor draws the status line and watches for the quit key.
type Monitor struct {
	input  *os.File
	output io.Writer
	status StatusFunc
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(input *os.File, output io.Writer, status StatusFunc) *Monitor {
	return &Monitor{
		input:  input,
		output: output,
		status: status,
	}
}

// FormatStatus returns the status line for a Status.
func FormatStatus(st driver.Status) string {
	ctx := st.Context
	return fmt.Sprintf("%-18s step=%-3d frame=%-4d retry=%d menu=%d sens=%d/%d | %s | ticks=%d skip=%d %.0f/s",
		ctx.Phase, ctx.StepIndex, ctx.FrameCounter, ctx.RetryCount, ctx.MenuVisitCount,
		ctx.CalibrationCurrent, ctx.CalibrationTarget, st.State, st.Ticks, st.Skipped, st.Actual)
}

// Run until the context is cancelled or the quit key is pressed. The quit
// function is called when the quit key is pressed.
func (mon *Monitor) Run(ctx context.Context, quit func()) error {
	pt := newTerminal(mon.input)
	pt.cbreakMode()
	defer pt.canonicalMode()

	keys := make(chan byte, 1)
	go func() {
		b := make([]byte, 1)
		for {
			n, err := mon.input.Read(b)
			if err != nil {
				return
			}
			if n > 0 {
				select {
				case keys <- b[0]:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	tck := time.NewTicker(refresh)
	defer tck.Stop()

	for {
		select {
		case <-ctx.Done():
			mon.draw()
			fmt.Fprintln(mon.output)
			return nil
		case k := <-keys:
			if k == QuitKey {
				logger.Log(logger.Allow, "monitor", "quit key pressed")
				quit()
			}
		case <-tck.C:
			mon.draw()
		}
	}
}

func (mon *Monitor) draw() {
	fmt.Fprintf(mon.output, "\r%s\x1b[K", FormatStatus(mon.status()))
}
