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
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// terminal is a wrapper for "github.com/pkg/term/termios".
type terminal struct {
	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// false if input is not a terminal
	ok bool
}

func newTerminal(input *os.File) *terminal {
	pt := &terminal{input: input}

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return pt
	}

	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)
	pt.ok = true

	return pt
}

// put terminal into normal, everyday canonical mode
func (pt *terminal) canonicalMode() {
	if pt.ok {
		termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
	}
}

// put terminal into cbreak mode
func (pt *terminal) cbreakMode() {
	if pt.ok {
		termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
	}
}
