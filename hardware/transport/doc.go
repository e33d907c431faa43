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

// Package transport is the boundary between the sequencing core and the USB
// device that carries reports to the host.
//
// The Transport interface is consumed once per tick by the driver package:
// host output reports are received and discarded and the tick's input report
// is sent. Only the Configured state allows ticks to be serviced. Lifecycle
// changes are reported to a Listener but have no effect on the sequencer.
//
// Two implementations are provided. Gadget writes to the character device
// created by the Linux USB HID gadget function (for example /dev/hidg0). Null
// discards reports and is used when no device is given and in tests.
package transport
