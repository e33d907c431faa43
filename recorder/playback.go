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
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/autopad/autopad/curated"
	"github.com/autopad/autopad/hardware/report"
	"github.com/autopad/autopad/hardware/transport"
)

// Sentinel error patterns.
const (
	NotATranscript   = "playback: not a transcript file"
	PlaybackMismatch = "playback: unexpected report at line %d (tick %d): expected %s got %s"
	PlaybackOverrun  = "playback: more reports than in the transcript (%d)"
)

// Playback implements the transport.Transport interface. Reports are compared
// with those in a transcript.
type Playback struct {
	crit sync.Mutex

	transcript string
	header     Header

	sequence []entry
	seqCt    int

	listener transport.Listener
	closed   bool
}

func (plb *Playback) String() string {
	plb.crit.Lock()
	defer plb.crit.Unlock()

	if len(plb.sequence) == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.seqCt, len(plb.sequence), 100*(float64(plb.seqCt)/float64(len(plb.sequence))))
}

// NewPlayback reads the transcript.
func NewPlayback(transcript string) (*Playback, error) {
	plb := &Playback{
		transcript: transcript,
	}

	b, err := os.ReadFile(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")

	plb.header, err = readHeader(lines)
	if err != nil {
		return nil, err
	}

	plb.sequence = make([]entry, 0, len(lines)-numHeaderLines)
	for i := numHeaderLines; i < len(lines); i++ {
		e, err := parseEntry(lines[i], i+1)
		if err != nil {
			return nil, err
		}
		plb.sequence = append(plb.sequence, e)
	}

	return plb, nil
}

// Header of the transcript.
func (plb *Playback) Header() Header {
	return plb.header
}

// Len returns the number of reports in the transcript.
func (plb *Playback) Len() int {
	return len(plb.sequence)
}

// Complete returns true if every report in the transcript has been matched.
func (plb *Playback) Complete() bool {
	plb.crit.Lock()
	defer plb.crit.Unlock()
	return plb.seqCt == len(plb.sequence)
}

// State implements the transport.Transport interface. Playback is always
// configured.
func (plb *Playback) State() transport.State {
	return transport.Configured
}

// SetListener implements the transport.Transport interface.
func (plb *Playback) SetListener(l transport.Listener) {
	plb.listener = l
}

// ReceiveHostReport implements the transport.Transport interface. The
// transcript does not contain host reports.
func (plb *Playback) ReceiveHostReport() (report.Output, bool, error) {
	return report.Output{}, false, nil
}

// SendReport implements the transport.Transport interface.
func (plb *Playback) SendReport(r report.Report) error {
	plb.crit.Lock()
	defer plb.crit.Unlock()

	if plb.closed {
		return curated.Errorf(transport.Closed)
	}

	if plb.seqCt >= len(plb.sequence) {
		return curated.Errorf(transport.Fatal, curated.Errorf(PlaybackOverrun, len(plb.sequence)))
	}

	e := plb.sequence[plb.seqCt]
	if e.report != r {
		return curated.Errorf(transport.Fatal, curated.Errorf(PlaybackMismatch, e.line, e.tick, e.report, r))
	}

	plb.seqCt++
	return nil
}

// Close implements the transport.Transport interface.
func (plb *Playback) Close() error {
	plb.crit.Lock()
	defer plb.crit.Unlock()
	plb.closed = true
	return nil
}
