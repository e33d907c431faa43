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

// Package curated wraps the plain Go error type with errors that remember the
// pattern they were created with.
//
// Errors are created with Errorf(), which takes a pattern and values in the
// same way as fmt.Errorf(). The pattern can later be tested for:
//
//	err := curated.Errorf("transport: %v", io.ErrClosedPipe)
//	if curated.Is(err, "transport: %v") {
//		...
//	}
//
// Has() looks for the pattern anywhere in a chain of curated errors. Patterns
// that callers are expected to test against should be exported as string
// constants by the package that creates them. For example, prefs.NoPrefsFile.
//
// The message returned by Error() is normalised. A chain is thought of as a
// series of parts separated by ": " and adjacent parts that are identical are
// collapsed. This means that a function can safely wrap an error with its own
// prefix without worrying that the callee has already done the same.
//
//	a := curated.Errorf("script: %v", "unknown symbol")
//	b := curated.Errorf("script: %v", a)
//
// b.Error() returns "script: unknown symbol" and not "script: script: unknown
// symbol".
package curated
