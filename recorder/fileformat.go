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

package recorder

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/autopad/autopad/curated"
	"github.com/autopad/autopad/hardware/report"
	"github.com/autopad/autopad/prefs"
	"github.com/autopad/autopad/sequencer"
)

const magicString = "autopad transcript"

// Builtin is the value of Header.Bank when the built-in scripts are used.
const Builtin = "builtin"

const (
	lineMagic int = iota
	lineVersion
	lineRunID
	lineBank
	lineConfig
	numHeaderLines
)

const (
	fieldTick int = iota
	fieldReport
	fieldDescription
	numFields
)

const fieldSep = ", "

// Header of a transcript.
type Header struct {
	Version string
	RunID   uuid.UUID

	// the script file used for the run or the Builtin value
	Bank string

	Config sequencer.Config
}

func (hdr Header) write(w io.Writer) error {
	lines := make([]string, numHeaderLines)
	lines[lineMagic] = magicString
	lines[lineVersion] = hdr.Version
	lines[lineRunID] = hdr.RunID.String()
	lines[lineBank] = hdr.Bank
	lines[lineConfig] = encodeConfig(hdr.Config)

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	return nil
}

func readHeader(lines []string) (Header, error) {
	var hdr Header

	if len(lines) < numHeaderLines {
		return hdr, curated.Errorf(NotATranscript)
	}
	if lines[lineMagic] != magicString {
		return hdr, curated.Errorf(NotATranscript)
	}

	hdr.Version = lines[lineVersion]

	var err error
	hdr.RunID, err = uuid.Parse(lines[lineRunID])
	if err != nil {
		return hdr, curated.Errorf("playback: run id: %v", err)
	}

	hdr.Bank = lines[lineBank]

	hdr.Config, err = decodeConfig(lines[lineConfig])
	if err != nil {
		return hdr, err
	}

	return hdr, nil
}

// the configuration is written in the same format as accepted by
// prefs.PushCommandLineStack()
func encodeConfig(cfg sequencer.Config) string {
	return fmt.Sprintf("gyro::%v; reverseLR::%v; reverseUD::%v; cartridge::%v; infiniteLoop::%v; sensitivity::%d; calibrationTarget::%d",
		cfg.GyroEnabled, cfg.ReverseLeftRight, cfg.ReverseUpDown, cfg.CartridgeTiming, cfg.InfiniteLoop,
		cfg.Sensitivity, cfg.CalibrationTarget)
}

func decodeConfig(s string) (sequencer.Config, error) {
	var cfg sequencer.Config

	var b prefs.Bool
	var n prefs.Int

	// the command line stack is reused as a key/value parser
	prefs.PushCommandLineStack(s)
	defer prefs.PopCommandLineStack()

	bools := []struct {
		key string
		v   *bool
	}{
		{"gyro", &cfg.GyroEnabled},
		{"reverseLR", &cfg.ReverseLeftRight},
		{"reverseUD", &cfg.ReverseUpDown},
		{"cartridge", &cfg.CartridgeTiming},
		{"infiniteLoop", &cfg.InfiniteLoop},
	}
	for _, e := range bools {
		ok, v := prefs.GetCommandLinePref(e.key)
		if !ok {
			return cfg, curated.Errorf("playback: config: missing %s", e.key)
		}
		if err := b.Set(v); err != nil {
			return cfg, curated.Errorf("playback: config: %v", err)
		}
		*e.v = b.Get().(bool)
	}

	ints := []struct {
		key string
		v   *int
	}{
		{"sensitivity", &cfg.Sensitivity},
		{"calibrationTarget", &cfg.CalibrationTarget},
	}
	for _, e := range ints {
		ok, v := prefs.GetCommandLinePref(e.key)
		if !ok {
			return cfg, curated.Errorf("playback: config: missing %s", e.key)
		}
		if err := n.Set(v); err != nil {
			return cfg, curated.Errorf("playback: config: %v", err)
		}
		*e.v = n.Get().(int)
	}

	return cfg, nil
}

func formatEntry(tick int, r report.Report) string {
	b, _ := r.MarshalBinary()
	return fmt.Sprintf("%d%s%s%s%s\n", tick, fieldSep, hex.EncodeToString(b), fieldSep, r)
}

type entry struct {
	tick   int
	report report.Report

	// the line in the transcript the entry appears
	line int
}

func parseEntry(s string, line int) (entry, error) {
	e := entry{line: line}

	toks := strings.SplitN(s, fieldSep, numFields)
	if len(toks) != numFields {
		return e, curated.Errorf("playback: expected %d fields at line %d", numFields, line)
	}

	var err error
	e.tick, err = strconv.Atoi(toks[fieldTick])
	if err != nil {
		return e, curated.Errorf("playback: %v line %d", err, line)
	}

	b, err := hex.DecodeString(toks[fieldReport])
	if err != nil {
		return e, curated.Errorf("playback: %v line %d", err, line)
	}
	err = e.report.UnmarshalBinary(b)
	if err != nil {
		return e, curated.Errorf("playback: %v line %d", err, line)
	}

	return e, nil
}
