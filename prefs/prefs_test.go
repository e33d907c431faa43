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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/autopad/autopad/curated"
	"github.com/autopad/autopad/prefs"
	"github.com/autopad/autopad/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("error reading tmp file: %v", err)
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectFailure(t, dsk.Add("test", &w))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, dsk.Save())

	cmpFile(t, fn, "test :: true\ntestB :: false\n")
}

func TestIntAndString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var i prefs.Int
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("int", &i))
	test.ExpectSuccess(t, dsk.Add("string", &s))

	test.ExpectSuccess(t, i.Set("-10"))
	test.ExpectEquality(t, i.Get().(int), -10)
	test.ExpectFailure(t, i.Set("ten"))
	test.ExpectFailure(t, i.Set(1.5))

	test.ExpectSuccess(t, s.Set(" 2.5 "))
	test.ExpectEquality(t, s.String(), "2.5")

	test.ExpectSuccess(t, dsk.Save())
	cmpFile(t, fn, "int :: -10\nstring :: 2.5\n")

	// a second disk sharing the same file sees the saved values
	dsk2, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)
	var j prefs.Int
	test.ExpectSuccess(t, dsk2.Add("int", &j))
	test.ExpectSuccess(t, dsk2.Load(false))
	test.ExpectEquality(t, j.Get().(int), -10)

	// and saving the second disk does not lose the string entry
	test.ExpectSuccess(t, j.Set(4))
	test.ExpectSuccess(t, dsk2.Save())
	cmpFile(t, fn, "int :: 4\nstring :: 2.5\n")
}

func TestNoPrefsFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("b", &b))

	err = dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	// file has been created by the failed load
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var loop prefs.Bool
	var target prefs.Int
	test.ExpectSuccess(t, dsk.Add("autopad.infiniteLoop", &loop))
	test.ExpectSuccess(t, dsk.Add("autopad.calibrationTarget", &target))

	prefs.PushCommandLineStack("autopad.infiniteLoop::true; autopad.calibrationTarget :: -4; unused::1")
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectEquality(t, loop.Get().(bool), true)
	test.ExpectEquality(t, target.Get().(int), -4)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
