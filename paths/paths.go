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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/autopad/autopad/curated"
)

// the local form of the resource directory
const baseResourcePath = ".autopad"

// ResourcePath returns the path to a resource file in the subdirectory
// specified by path. The directories leading to the file are created if they
// do not exist. The path argument can be the empty string.
func ResourcePath(path string, file string) (string, error) {
	dir := filepath.Join(basePath(), path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", curated.Errorf("paths: %v", err)
	}
	return filepath.Join(dir, file), nil
}

func basePath() string {
	if fi, err := os.Stat(baseResourcePath); err == nil && fi.IsDir() {
		return baseResourcePath
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cfg, strings.TrimPrefix(baseResourcePath, "."))
}

// UniqueFilename creates a filename that should not collide with any existing
// file, assuming a functioning clock. The format is:
//
//	prepend_YYYYMMDD_HHMMSS.ext
//
// The ext argument can be empty, in which case there is no extension.
func UniqueFilename(prepend string, ext string) string {
	n := time.Now()
	fn := fmt.Sprintf("%s_%04d%02d%02d_%02d%02d%02d", prepend, n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())
	if ext != "" {
		fn = fmt.Sprintf("%s.%s", fn, strings.TrimPrefix(ext, "."))
	}
	return fn
}
