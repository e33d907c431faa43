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

package transport

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/autopad/autopad/curated"
	"github.com/autopad/autopad/hardware/report"
	"github.com/autopad/autopad/logger"
)

// the number of host reports buffered before new reports are dropped
const hostQueueLen = 16

// Gadget implements the Transport interface for the HID function of the Linux
// USB gadget framework. The character device is opened for reading and
// writing. Output reports from the host are read in a background goroutine.
type Gadget struct {
	path string

	// path to the state file of the USB device controller. for example
	// /sys/class/udc/fe980000.usb/state. if this is empty the gadget is
	// assumed to be configured for as long as the device is open
	udcState string

	f *os.File

	host chan report.Output

	crit     sync.Mutex
	state    State
	listener Listener
	readErr  error
	closed   bool
}

// NewGadget opens the HID gadget device at path. The udcState argument can be
// empty.
func NewGadget(path string, udcState string) (*Gadget, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, curated.Errorf("transport: %v", err)
	}

	g := &Gadget{
		path:     path,
		udcState: udcState,
		f:        f,
		host:     make(chan report.Output, hostQueueLen),
		state:    Attached,
	}

	go g.read()

	// get the state from the UDC if possible
	g.State()

	return g, nil
}

func (g *Gadget) read() {
	b := make([]byte, report.Size)
	for {
		n, err := g.f.Read(b)
		if err != nil {
			g.crit.Lock()
			if !g.closed && !errors.Is(err, io.EOF) {
				g.readErr = err
				logger.Logf(logger.Allow, "transport", "read: %v", err)
			}
			g.crit.Unlock()
			return
		}

		var o report.Output
		copy(o[:], b[:n])

		select {
		case g.host <- o:
		default:
			// queue is full. the reports are not used so dropping them is
			// not a problem
		}
	}
}

// parse the contents of the UDC state file
func parseUDCState(s string) State {
	switch strings.TrimSpace(s) {
	case "configured":
		return Configured
	case "suspended":
		return Suspended
	case "not attached":
		return Detached
	}
	return Attached
}

// State implements the Transport interface.
func (g *Gadget) State() State {
	var s State

	if g.udcState == "" {
		s = Configured
	} else {
		b, err := os.ReadFile(g.udcState)
		if err != nil {
			s = Detached
		} else {
			s = parseUDCState(string(b))
		}
	}

	g.crit.Lock()
	if g.closed {
		s = Detached
	}
	from := g.state
	g.state = s
	l := g.listener
	g.crit.Unlock()

	if from != s {
		logger.Logf(logger.Allow, "transport", "%s: %s -> %s", g.path, from, s)
		if l != nil {
			l(from, s)
		}
	}

	return s
}

// SetListener implements the Transport interface.
func (g *Gadget) SetListener(l Listener) {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.listener = l
}

// ReceiveHostReport implements the Transport interface.
func (g *Gadget) ReceiveHostReport() (report.Output, bool, error) {
	select {
	case o := <-g.host:
		return o, true, nil
	default:
	}

	g.crit.Lock()
	defer g.crit.Unlock()
	if g.closed {
		return report.Output{}, false, curated.Errorf(Closed)
	}
	if g.readErr != nil {
		return report.Output{}, false, curated.Errorf("transport: %v", g.readErr)
	}
	return report.Output{}, false, nil
}

// SendReport implements the Transport interface.
func (g *Gadget) SendReport(r report.Report) error {
	g.crit.Lock()
	closed := g.closed
	state := g.state
	g.crit.Unlock()

	if closed {
		return curated.Errorf(Closed)
	}
	if state != Configured {
		return curated.Errorf(NotConfigured, state)
	}

	b, _ := r.MarshalBinary()
	n, err := g.f.Write(b)
	if err != nil {
		return curated.Errorf("transport: %v", err)
	}
	if n != len(b) {
		return curated.Errorf("transport: short write (%d of %d bytes)", n, len(b))
	}

	return nil
}

// Close implements the Transport interface.
func (g *Gadget) Close() error {
	g.crit.Lock()
	if g.closed {
		g.crit.Unlock()
		return nil
	}
	g.closed = true
	g.crit.Unlock()

	if err := g.f.Close(); err != nil {
		return curated.Errorf("transport: %v", err)
	}
	return nil
}
