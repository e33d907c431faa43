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

package preferences

import (
	"math"
	"strconv"
	"strings"

	"github.com/autopad/autopad/curated"
)

// the in-game sensitivity range in user units. the setting moves in steps of
// one half.
const (
	SensitivityMin = -5.0
	SensitivityMax = 5.0
)

// Sentinel error patterns.
const (
	InvalidSensitivity       = "preferences: invalid sensitivity (%s)"
	InvalidCalibrationTarget = "preferences: invalid calibration target (%d)"
)

// ParseSensitivity converts a sensitivity in user units to double units. For
// example, "-2.5" returns -5.
func ParseSensitivity(s string) (int, error) {
	s = strings.TrimSpace(s)

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, curated.Errorf(InvalidSensitivity, s)
	}
	if f < SensitivityMin || f > SensitivityMax {
		return 0, curated.Errorf(InvalidSensitivity, s)
	}

	d := f * 2
	if d != math.Trunc(d) {
		return 0, curated.Errorf(InvalidSensitivity, s)
	}

	return int(d), nil
}

// FormatSensitivity is the inverse of ParseSensitivity.
func FormatSensitivity(d int) string {
	if d%2 == 0 {
		return strconv.Itoa(d / 2)
	}
	return strconv.FormatFloat(float64(d)/2, 'f', 1, 64)
}

// CheckCalibrationTarget returns an error if a sensitivity in double units is
// outside the in-game range.
func CheckCalibrationTarget(d int) error {
	if d < SensitivityMin*2 || d > SensitivityMax*2 {
		return curated.Errorf(InvalidCalibrationTarget, d)
	}
	return nil
}
