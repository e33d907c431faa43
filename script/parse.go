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

package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/autopad/autopad/curated"
	"github.com/autopad/autopad/logger"
)

// the first line of every script file
const headerID = "autopadscript"

// Sentinel error patterns.
const (
	NotAScriptFile = "script: not a script file (%s)"
	UnknownSymbol  = "script: line %d: unknown symbol (%s)"
	UnknownScript  = "script: line %d: unknown phase or calibration script (%s)"
	Unterminated   = "script: line %d: %s is not terminated with END"
)

// names accepted after the PHASE keyword for the calibration scripts. the
// calibration script names are prefixed so that they can not be confused
// with a phase name
const calibrationPrefix = "calibrate."

// LoadFile opens the named script file and passes it to Load().
func LoadFile(filename string, base *Bank) (*Bank, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("script: %v", err)
	}
	defer f.Close()

	b, err := Load(f, base)
	if err != nil {
		return nil, curated.Errorf("script: %s: %v", filename, err)
	}

	logger.Logf(logger.Allow, "script", "loaded %s", filename)
	return b, nil
}

// Load parses a script file. The scripts in the file replace those of the
// base bank, which is copied and not modified. A nil base is the same as an
// empty bank.
func Load(r io.Reader, base *Bank) (*Bank, error) {
	b := &Bank{}
	if base != nil {
		*b = *base
	}

	scanner := bufio.NewScanner(r)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != headerID {
		return nil, curated.Errorf(NotAScriptFile, "missing header")
	}

	// the block being parsed. set is nil when not inside a block
	var set func(Phase)
	var name string
	var commands []Command
	var start int

	ln := 1
	for scanner.Scan() {
		ln++

		toks := strings.Fields(scanner.Text())
		if len(toks) == 0 || strings.HasPrefix(toks[0], "--") {
			continue // for loop
		}

		if strings.ToUpper(toks[0]) == "PHASE" {
			if set != nil {
				return nil, curated.Errorf(Unterminated, start, name)
			}
			if len(toks) != 2 {
				return nil, curated.Errorf("script: line %d: PHASE requires one argument", ln)
			}

			var ok bool
			set, ok = lookupSetter(b, toks[1])
			if !ok {
				return nil, curated.Errorf(UnknownScript, ln, toks[1])
			}
			name = toks[1]
			commands = commands[:0]
			start = ln
			continue // for loop
		}

		if set == nil {
			return nil, curated.Errorf("script: line %d: command outside of PHASE block", ln)
		}

		sym, ok := ParseSymbol(toks[0])
		if !ok {
			return nil, curated.Errorf(UnknownSymbol, ln, toks[0])
		}

		var d int
		switch len(toks) {
		case 1:
			if sym != End {
				return nil, curated.Errorf("script: line %d: %s requires a duration", ln, sym)
			}
		case 2:
			var err error
			d, err = strconv.Atoi(toks[1])
			if err != nil || d < 0 {
				return nil, curated.Errorf("script: line %d: invalid duration (%s)", ln, toks[1])
			}
		default:
			return nil, curated.Errorf("script: line %d: too many arguments for %s", ln, sym)
		}

		commands = append(commands, Command{Symbol: sym, Duration: d})

		if sym == End {
			set(NewPhase(commands...))
			set = nil
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("script: %v", err)
	}

	if set != nil {
		return nil, curated.Errorf(Unterminated, start, name)
	}

	return b, nil
}

// lookupSetter returns a function that replaces the named script in the
// bank.
func lookupSetter(b *Bank, name string) (func(Phase), bool) {
	if strings.HasPrefix(name, calibrationPrefix) {
		n := strings.TrimPrefix(name, calibrationPrefix)
		for c := Calibration(0); c < NumCalibration; c++ {
			if c.String() == n {
				return func(p Phase) { b.SetCalibration(c, p) }, true
			}
		}
		return nil, false
	}

	// there is no script for the Done phase
	for id := Connect; id < Done; id++ {
		if id.String() == name {
			return func(p Phase) { b.SetPhase(id, p) }, true
		}
	}

	return nil, false
}

// Write the bank in the script file format. The output can be read by Load().
func Write(w io.Writer, b *Bank) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, headerID)

	block := func(name string, p Phase) {
		fmt.Fprintf(bw, "\n-- %d ticks\n", p.Ticks())
		fmt.Fprintf(bw, "PHASE %s\n", name)
		for i := 0; ; i++ {
			c := p.Lookup(i)
			fmt.Fprintln(bw, c)
			if c.Symbol == End {
				break // for loop
			}
		}
	}

	for id := Connect; id < Done; id++ {
		block(id.String(), b.Phase(id))
	}
	for c := Calibration(0); c < NumCalibration; c++ {
		block(calibrationPrefix+c.String(), b.Calibration(c))
	}

	if err := bw.Flush(); err != nil {
		return curated.Errorf("script: %v", err)
	}
	return nil
}
