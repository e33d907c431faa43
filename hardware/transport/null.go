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
	"sync"

	"github.com/autopad/autopad/curated"
	"github.com/autopad/autopad/hardware/report"
)

// Null implements the Transport interface. Reports are counted and then
// discarded.
type Null struct {
	crit sync.Mutex

	state    State
	listener Listener
	closed   bool

	sent int
	last report.Report

	host []report.Output
}

// NewNull is the preferred method of initialisation for the Null type. The
// Null transport starts in the Configured state.
func NewNull() *Null {
	return &Null{
		state: Configured,
		last:  report.Neutral(),
	}
}

// State implements the Transport interface.
func (n *Null) State() State {
	n.crit.Lock()
	defer n.crit.Unlock()
	return n.state
}

// SetState changes the state of the transport, as though the host had
// changed it.
func (n *Null) SetState(s State) {
	n.crit.Lock()
	from := n.state
	n.state = s
	l := n.listener
	n.crit.Unlock()

	if l != nil && from != s {
		l(from, s)
	}
}

// SetListener implements the Transport interface.
func (n *Null) SetListener(l Listener) {
	n.crit.Lock()
	defer n.crit.Unlock()
	n.listener = l
}

// PushHostReport queues a report as though it had been sent by the host.
func (n *Null) PushHostReport(o report.Output) {
	n.crit.Lock()
	defer n.crit.Unlock()
	n.host = append(n.host, o)
}

// ReceiveHostReport implements the Transport interface.
func (n *Null) ReceiveHostReport() (report.Output, bool, error) {
	n.crit.Lock()
	defer n.crit.Unlock()

	if n.closed {
		return report.Output{}, false, curated.Errorf(Closed)
	}
	if len(n.host) == 0 {
		return report.Output{}, false, nil
	}

	o := n.host[0]
	n.host = n.host[1:]
	return o, true, nil
}

// SendReport implements the Transport interface.
func (n *Null) SendReport(r report.Report) error {
	n.crit.Lock()
	defer n.crit.Unlock()

	if n.closed {
		return curated.Errorf(Closed)
	}
	if n.state != Configured {
		return curated.Errorf(NotConfigured, n.state)
	}

	n.sent++
	n.last = r
	return nil
}

// Close implements the Transport interface.
func (n *Null) Close() error {
	n.crit.Lock()
	defer n.crit.Unlock()
	n.closed = true
	return nil
}

// Sent returns the number of reports sent and the most recent report.
func (n *Null) Sent() (int, report.Report) {
	n.crit.Lock()
	defer n.crit.Unlock()
	return n.sent, n.last
}
