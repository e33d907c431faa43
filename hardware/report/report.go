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

package report

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Size of the input and output reports in bytes.
const Size = 8

// Stick axis values.
const (
	StickMin    uint8 = 0x00
	StickCenter uint8 = 0x80
	StickMax    uint8 = 0xff
)

// Hat switch values.
type Hat uint8

// List of valid Hat values.
const (
	HatTop Hat = iota
	HatTopRight
	HatRight
	HatBottomRight
	HatBottom
	HatBottomLeft
	HatLeft
	HatTopLeft
	HatCenter
)

var hatNames = [...]string{"top", "top-right", "right", "bottom-right", "bottom", "bottom-left", "left", "top-left", "center"}

func (h Hat) String() string {
	if int(h) < len(hatNames) {
		return hatNames[h]
	}
	return fmt.Sprintf("hat(%d)", uint8(h))
}

// Buttons is a bitmask of digital buttons. Values can be combined.
type Buttons uint16

// List of button bits.
const (
	ButtonY Buttons = 1 << iota
	ButtonB
	ButtonA
	ButtonX
	ButtonL
	ButtonR
	ButtonZL
	ButtonZR
	ButtonMinus
	ButtonPlus
	ButtonLClick
	ButtonRClick
	ButtonHome
	ButtonCapture
)

var buttonNames = [...]string{"Y", "B", "A", "X", "L", "R", "ZL", "ZR", "MINUS", "PLUS", "LCLICK", "RCLICK", "HOME", "CAPTURE"}

func (b Buttons) String() string {
	if b == 0 {
		return "-"
	}
	s := make([]string, 0, len(buttonNames))
	for i, n := range buttonNames {
		if b&(1<<i) != 0 {
			s = append(s, n)
		}
	}
	return strings.Join(s, "|")
}

// Stick is the position of one analog stick.
type Stick struct {
	X uint8
	Y uint8
}

// Report is the input report produced on every tick.
type Report struct {
	Buttons Buttons
	Hat     Hat
	Left    Stick
	Right   Stick
}

// Neutral returns a report with no buttons pressed, the hat switch centred
// and both sticks centred.
func Neutral() Report {
	return Report{
		Hat:   HatCenter,
		Left:  Stick{X: StickCenter, Y: StickCenter},
		Right: Stick{X: StickCenter, Y: StickCenter},
	}
}

// IsNeutral returns true if the report is equal to Neutral().
func (r Report) IsNeutral() bool {
	return r == Neutral()
}

func (r Report) String() string {
	return fmt.Sprintf("btn=%s hat=%s L=%02x,%02x R=%02x,%02x",
		r.Buttons, r.Hat, r.Left.X, r.Left.Y, r.Right.X, r.Right.Y)
}

// MarshalBinary encodes the report in the wire layout.
func (r Report) MarshalBinary() ([]byte, error) {
	b := make([]byte, Size)
	r.encode(b)
	return b, nil
}

func (r Report) encode(b []byte) {
	binary.LittleEndian.PutUint16(b[0:2], uint16(r.Buttons))
	b[2] = uint8(r.Hat)
	b[3] = r.Left.X
	b[4] = r.Left.Y
	b[5] = r.Right.X
	b[6] = r.Right.Y
	b[7] = 0x00
}

// UnmarshalBinary decodes a report from the wire layout.
func (r *Report) UnmarshalBinary(data []byte) error {
	if len(data) < Size {
		return io.ErrUnexpectedEOF
	}
	r.Buttons = Buttons(binary.LittleEndian.Uint16(data[0:2]))
	r.Hat = Hat(data[2])
	r.Left = Stick{X: data[3], Y: data[4]}
	r.Right = Stick{X: data[5], Y: data[6]}
	return nil
}

// Output is a report received from the host. The contents are not
// interpreted.
type Output [Size]byte
