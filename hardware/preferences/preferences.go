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
	"github.com/autopad/autopad/curated"
	"github.com/autopad/autopad/driver"
	"github.com/autopad/autopad/paths"
	"github.com/autopad/autopad/prefs"
	"github.com/autopad/autopad/sequencer"
)

// the name of the preferences file in the resource directory
const prefsFile = "preferences"

// Preferences defines and collates all the preference values used by a run.
type Preferences struct {
	dsk *prefs.Disk

	// whether motion assist is switched on in the game
	Gyro prefs.Bool

	// right stick reversal in the game's settings
	ReverseLeftRight prefs.Bool
	ReverseUpDown    prefs.Bool

	// the user's sensitivity in user units
	Sensitivity prefs.String

	// sensitivity the scripts are written for, in double units
	CalibrationTarget prefs.Int

	// never leave the enter/perform loop
	InfiniteLoop prefs.Bool

	// use the timing for the cartridge version of the game
	Cartridge prefs.Bool

	// ticks per second
	TickRate prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are loaded from the default location.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	return NewPreferencesFromPath(pth)
}

// NewPreferencesFromPath is like NewPreferences but with an explicit path to
// the preferences file.
func NewPreferencesFromPath(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	p.Sensitivity.SetHookPost(func(v prefs.Value) error {
		_, err := ParseSensitivity(v.(string))
		return err
	})
	p.CalibrationTarget.SetHookPost(func(v prefs.Value) error {
		return CheckCalibrationTarget(v.(int))
	})

	entries := []struct {
		key string
		p   interface {
			String() string
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
		}
	}{
		{"autopad.gyro", &p.Gyro},
		{"autopad.reverseLR", &p.ReverseLeftRight},
		{"autopad.reverseUD", &p.ReverseUpDown},
		{"autopad.sensitivity", &p.Sensitivity},
		{"autopad.calibrationTarget", &p.CalibrationTarget},
		{"autopad.infiniteLoop", &p.InfiniteLoop},
		{"autopad.cartridge", &p.Cartridge},
		{"autopad.tickRate", &p.TickRate},
	}
	for _, e := range entries {
		err = p.dsk.Add(e.key, e.p)
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.Gyro.Set(true)
	p.ReverseLeftRight.Set(false)
	p.ReverseUpDown.Set(false)
	p.Sensitivity.Set("5")
	p.CalibrationTarget.Set(-10)
	p.InfiniteLoop.Set(false)
	p.Cartridge.Set(false)
	p.TickRate.Set(125)
}

// Reset all preferences to the default values. The zero values of the
// underlying prefs types are not all valid so this does not defer to the
// Disk.
func (p *Preferences) Reset() error {
	p.SetDefaults()
	return nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// SequencerConfig returns the sequencer configuration described by the
// current preference values.
func (p *Preferences) SequencerConfig() (sequencer.Config, error) {
	sens, err := ParseSensitivity(p.Sensitivity.Get().(string))
	if err != nil {
		return sequencer.Config{}, err
	}

	target := p.CalibrationTarget.Get().(int)
	if err := CheckCalibrationTarget(target); err != nil {
		return sequencer.Config{}, err
	}

	return sequencer.Config{
		Flags: sequencer.Flags{
			GyroEnabled:      p.Gyro.Get().(bool),
			ReverseLeftRight: p.ReverseLeftRight.Get().(bool),
			ReverseUpDown:    p.ReverseUpDown.Get().(bool),
			CartridgeTiming:  p.Cartridge.Get().(bool),
			InfiniteLoop:     p.InfiniteLoop.Get().(bool),
		},
		Sensitivity:       sens,
		CalibrationTarget: target,
	}, nil
}

// Rate returns the tick rate, clamped to the range 1 to driver.MaxRate.
func (p *Preferences) Rate() int {
	r := p.TickRate.Get().(int)
	if r < 1 {
		return 1
	}
	if r > driver.MaxRate {
		return driver.MaxRate
	}
	return r
}
