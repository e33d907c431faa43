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

package script_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/autopad/autopad/curated"
	"github.com/autopad/autopad/script"
	"github.com/autopad/autopad/test"
)

func TestLookupBeyondEnd(t *testing.T) {
	b := script.Builtin()

	test.ExpectEquality(t, b.Lookup(script.Connect, 0), script.Command{Symbol: script.Nothing, Duration: 30})
	test.ExpectEquality(t, b.Lookup(script.Connect, 1), script.Command{Symbol: script.A, Duration: 10})
	test.ExpectEquality(t, b.Lookup(script.Connect, 3).Symbol, script.End)
	test.ExpectEquality(t, b.Lookup(script.Connect, 4), script.Sentinel)
	test.ExpectEquality(t, b.Lookup(script.Connect, 1000), script.Sentinel)
	test.ExpectEquality(t, b.Lookup(script.Connect, -1), script.Sentinel)
	test.ExpectEquality(t, b.Lookup(script.Done, 0), script.Sentinel)
	test.ExpectEquality(t, b.Lookup(script.PhaseID(99), 0), script.Sentinel)
	test.ExpectEquality(t, b.LookupCalibration(script.Calibration(-1), 0), script.Sentinel)

	var empty script.Bank
	test.ExpectEquality(t, empty.Lookup(script.Sync, 0), script.Sentinel)
}

func TestEveryScriptIsTerminated(t *testing.T) {
	b := script.Builtin()

	for id := script.Connect; id < script.Done; id++ {
		p := b.Phase(id)
		test.ExpectEquality(t, p.Lookup(p.Len()-1).Symbol, script.End)
	}
	for c := script.Calibration(0); c < script.NumCalibration; c++ {
		p := b.Calibration(c)
		test.ExpectEquality(t, p.Lookup(p.Len()-1).Symbol, script.End)
	}
}

func TestNewPhase(t *testing.T) {
	// sentinel is appended if missing
	p := script.NewPhase(script.Command{Symbol: script.A, Duration: 2})
	test.ExpectEquality(t, p.Len(), 2)
	test.ExpectEquality(t, p.Lookup(1), script.Sentinel)

	// commands after the sentinel are dropped
	p = script.NewPhase(
		script.Command{Symbol: script.End, Duration: 7},
		script.Command{Symbol: script.B, Duration: 2},
	)
	test.ExpectEquality(t, p.Len(), 1)
	test.ExpectEquality(t, p.Hold(), 7)
	test.ExpectEquality(t, p.Ticks(), 0)
}

func TestTicks(t *testing.T) {
	b := script.Builtin()
	test.ExpectEquality(t, b.Phase(script.Connect).Ticks(), 31+11+61)
	test.ExpectEquality(t, b.Phase(script.EnterTarget).Ticks(), 41+421)
	test.ExpectEquality(t, b.Phase(script.EnterTarget).Hold(), 120)
	test.ExpectEquality(t, b.Phase(script.NavigateToArea).Hold(), 180)
	test.ExpectEquality(t, b.Calibration(script.Decrease).Ticks(), 10)
}

func TestPhaseOrder(t *testing.T) {
	test.ExpectEquality(t, script.Connect.Next(), script.Sync)
	test.ExpectEquality(t, script.ReturnToBase.Next(), script.Done)
	test.ExpectEquality(t, script.Done.Next(), script.Done)
	test.ExpectSuccess(t, script.RestoreSensitivity.IsCalibration())
	test.ExpectSuccess(t, script.EnterTarget.IsNavigation())
	test.ExpectFailure(t, script.PerformTask.IsNavigation())
}

func TestSymbolNames(t *testing.T) {
	s, ok := script.ParseSymbol("triggers")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, script.Triggers)
	test.ExpectEquality(t, s.String(), "TRIGGERS")

	_, ok = script.ParseSymbol("HOME")
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, script.Symbol(-1).Valid())
}

const customScript = `autopadscript
-- shorter connection
PHASE connect
NOTHING 2
A 1
END

PHASE navigate
x 3
END 5

PHASE calibrate.confirm
B 2
END
`

func TestLoad(t *testing.T) {
	base := script.Builtin()

	b, err := script.Load(strings.NewReader(customScript), base)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, b.Phase(script.Connect).Ticks(), 3+2)
	test.ExpectEquality(t, b.Lookup(script.NavigateToArea, 0), script.Command{Symbol: script.X, Duration: 3})
	test.ExpectEquality(t, b.Phase(script.NavigateToArea).Hold(), 5)
	test.ExpectEquality(t, b.LookupCalibration(script.Confirm, 0).Symbol, script.B)

	// untouched scripts come from the base, which is itself unchanged
	test.ExpectEquality(t, b.Phase(script.Sync).Ticks(), base.Phase(script.Sync).Ticks())
	test.ExpectEquality(t, base.Phase(script.Connect).Ticks(), 103)
}

func TestLoadErrors(t *testing.T) {
	_, err := script.Load(strings.NewReader("PHASE connect\nEND\n"), nil)
	test.ExpectSuccess(t, curated.Is(err, script.NotAScriptFile))

	_, err = script.Load(strings.NewReader("autopadscript\nPHASE connect\nHOME 5\nEND\n"), nil)
	test.ExpectSuccess(t, curated.Is(err, script.UnknownSymbol))

	_, err = script.Load(strings.NewReader("autopadscript\nPHASE nowhere\nEND\n"), nil)
	test.ExpectSuccess(t, curated.Is(err, script.UnknownScript))

	_, err = script.Load(strings.NewReader("autopadscript\nPHASE done\nEND\n"), nil)
	test.ExpectSuccess(t, curated.Is(err, script.UnknownScript))

	_, err = script.Load(strings.NewReader("autopadscript\nPHASE connect\nA 5\n"), nil)
	test.ExpectSuccess(t, curated.Is(err, script.Unterminated))

	_, err = script.Load(strings.NewReader("autopadscript\nPHASE connect\nA 5\nPHASE sync\nEND\n"), nil)
	test.ExpectSuccess(t, curated.Is(err, script.Unterminated))

	_, err = script.Load(strings.NewReader("autopadscript\nPHASE connect\nA\nEND\n"), nil)
	test.ExpectFailure(t, err)

	_, err = script.Load(strings.NewReader("autopadscript\nPHASE connect\nA -1\nEND\n"), nil)
	test.ExpectFailure(t, err)

	_, err = script.Load(strings.NewReader("autopadscript\nA 1\n"), nil)
	test.ExpectFailure(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	b := script.Builtin()

	var buf bytes.Buffer
	test.ExpectSuccess(t, script.Write(&buf, b))

	c, err := script.Load(&buf, nil)
	test.ExpectSuccess(t, err)

	for id := script.Connect; id < script.Done; id++ {
		test.ExpectEquality(t, c.Phase(id).String(), b.Phase(id).String())
	}
	for cal := script.Calibration(0); cal < script.NumCalibration; cal++ {
		test.ExpectEquality(t, c.Calibration(cal).String(), b.Calibration(cal).String())
	}
}
