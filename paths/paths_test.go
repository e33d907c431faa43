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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/autopad/autopad/paths"
	"github.com/autopad/autopad/test"
)

func TestLocalResourcePath(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.ExpectSuccess(t, err)
	defer os.Chdir(wd)

	test.ExpectSuccess(t, os.Chdir(dir))
	test.ExpectSuccess(t, os.Mkdir(".autopad", 0o700))

	pth, err := paths.ResourcePath("recordings", "run")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".autopad", "recordings", "run"))

	fi, err := os.Stat(filepath.Join(".autopad", "recordings"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("recording", "txt")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "recording_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".txt"))

	fn = paths.UniqueFilename("alert", "")
	test.ExpectFailure(t, strings.Contains(fn, "."))
}
