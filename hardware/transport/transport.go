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
	"github.com/autopad/autopad/hardware/report"
)

// State of the USB device as seen by the transport.
type State int

// List of valid State values.
const (
	// no host is connected
	Detached State = iota

	// connected to a host but not yet configured
	Attached

	// configured by the host. reports can be sent
	Configured

	// the host has suspended the bus
	Suspended
)

func (s State) String() string {
	switch s {
	case Detached:
		return "detached"
	case Attached:
		return "attached"
	case Configured:
		return "configured"
	case Suspended:
		return "suspended"
	}
	return "unknown"
}

// Sentinel error patterns.
const (
	NotConfigured = "transport: not configured (%s)"
	Closed        = "transport: closed"

	// errors wrapped by this pattern stop the driver
	Fatal = "transport: fatal: %v"
)

// Listener is called when the transport state changes.
type Listener func(from State, to State)

// Transport implementations carry reports to and from the host.
type Transport interface {
	// the current state of the device
	State() State

	// the most recent report sent by the host. the boolean is false if no
	// report has arrived since the previous call
	ReceiveHostReport() (report.Output, bool, error)

	// send a report to the host. a NotConfigured error is returned if the
	// device is not in the Configured state
	SendReport(report.Report) error

	// stop using the device
	Close() error

	// set the function to be called on state changes. can be nil
	SetListener(Listener)
}
