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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/autopad/autopad/curated"
	"github.com/autopad/autopad/driver"
	"github.com/autopad/autopad/hardware/preferences"
	"github.com/autopad/autopad/prefs"
	"github.com/autopad/autopad/sequencer"
	"github.com/autopad/autopad/test"
)

func TestParseSensitivity(t *testing.T) {
	for s, d := range map[string]int{
		"5":    10,
		"-5":   -10,
		"0":    0,
		"2.5":  5,
		"-0.5": -1,
		" 1 ":  2,
	} {
		v, err := preferences.ParseSensitivity(s)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, d)

		r, err := preferences.ParseSensitivity(preferences.FormatSensitivity(v))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, r, d)
	}

	for _, s := range []string{"", "x", "5.5", "-6", "1.25"} {
		_, err := preferences.ParseSensitivity(s)
		test.ExpectFailure(t, err)
	}

	test.ExpectEquality(t, preferences.FormatSensitivity(-5), "-2.5")
	test.ExpectEquality(t, preferences.FormatSensitivity(4), "2")
}

func TestDefaults(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")
	p, err := preferences.NewPreferencesFromPath(pth)
	test.ExpectSuccess(t, err)

	// missing file is created
	_, err = os.Stat(pth)
	test.ExpectSuccess(t, err)

	cfg, err := p.SequencerConfig()
	test.ExpectSuccess(t, err)

	expected := sequencer.Config{
		Flags:             sequencer.Flags{GyroEnabled: true},
		Sensitivity:       10,
		CalibrationTarget: -10,
	}
	if d := cmp.Diff(expected, cfg); d != "" {
		t.Errorf("config mismatch (-want +got):\n%s", d)
	}
	test.ExpectEquality(t, p.Rate(), 125)
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")
	p, err := preferences.NewPreferencesFromPath(pth)
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, p.Sensitivity.Set("-1.5"))
	test.ExpectSuccess(t, p.ReverseUpDown.Set(true))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromPath(pth)
	test.ExpectSuccess(t, err)

	cfg, err := q.SequencerConfig()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cfg.Sensitivity, -3)
	test.ExpectEquality(t, cfg.ReverseUpDown, true)

	test.ExpectSuccess(t, q.Reset())
	cfg, err = q.SequencerConfig()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cfg.Sensitivity, 10)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("autopad.cartridge::true; autopad.tickRate::60")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesFromPath(filepath.Join(t.TempDir(), "preferences"))
	test.ExpectSuccess(t, err)

	cfg, err := p.SequencerConfig()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cfg.CartridgeTiming, true)
	test.ExpectEquality(t, p.Rate(), 60)
}

func TestBadSensitivity(t *testing.T) {
	prefs.PushCommandLineStack("autopad.sensitivity::9")
	defer prefs.PopCommandLineStack()

	_, err := preferences.NewPreferencesFromPath(filepath.Join(t.TempDir(), "preferences"))
	test.ExpectFailure(t, err)
}

func TestTickRateRange(t *testing.T) {
	prefs.PushCommandLineStack("autopad.tickRate::2000000000")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesFromPath(filepath.Join(t.TempDir(), "preferences"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Rate(), driver.MaxRate)

	test.ExpectSuccess(t, p.TickRate.Set(-5))
	test.ExpectEquality(t, p.Rate(), 1)
}

func TestCalibrationTarget(t *testing.T) {
	for _, d := range []int{-10, 0, 7, 10} {
		test.ExpectSuccess(t, preferences.CheckCalibrationTarget(d))
	}
	for _, d := range []int{-11, 11, 100} {
		err := preferences.CheckCalibrationTarget(d)
		test.ExpectSuccess(t, curated.Is(err, preferences.InvalidCalibrationTarget))
	}

	p, err := preferences.NewPreferencesFromPath(filepath.Join(t.TempDir(), "preferences"))
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, p.CalibrationTarget.Set(12))
	_, err = p.SequencerConfig()
	test.ExpectFailure(t, err)

	test.ExpectSuccess(t, p.CalibrationTarget.Set(-4))
	cfg, err := p.SequencerConfig()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cfg.CalibrationTarget, -4)

	prefs.PushCommandLineStack("autopad.calibrationTarget::-20")
	defer prefs.PopCommandLineStack()
	_, err = preferences.NewPreferencesFromPath(filepath.Join(t.TempDir(), "preferences"))
	test.ExpectFailure(t, err)
}
