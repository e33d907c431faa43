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
	"bufio"
	"os"
	"sync"

	"github.com/autopad/autopad/curated"
	"github.com/autopad/autopad/hardware/report"
	"github.com/autopad/autopad/hardware/transport"
	"github.com/autopad/autopad/logger"
)

// Recorder wraps a transport and writes every report sent successfully to a
// transcript.
type Recorder struct {
	transport.Transport

	crit sync.Mutex

	filename string
	f        *os.File
	w        *bufio.Writer

	ticks int
	ended bool
}

// NewRecorder creates the transcript file and writes the header.
func NewRecorder(filename string, tr transport.Transport, hdr Header) (*Recorder, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	rec := &Recorder{
		Transport: tr,
		filename:  filename,
		f:         f,
		w:         bufio.NewWriter(f),
	}

	err = hdr.write(rec.w)
	if err != nil {
		f.Close()
		return nil, err
	}

	logger.Logf(logger.Allow, "recorder", "recording run %s to %s", hdr.RunID, filename)

	return rec, nil
}

// SendReport implements the transport.Transport interface.
func (rec *Recorder) SendReport(r report.Report) error {
	err := rec.Transport.SendReport(r)
	if err != nil {
		return err
	}

	rec.crit.Lock()
	defer rec.crit.Unlock()

	if rec.ended {
		return nil
	}

	rec.ticks++
	_, err = rec.w.WriteString(formatEntry(rec.ticks, r))
	if err != nil {
		return curated.Errorf(transport.Fatal, curated.Errorf("recorder: %v", err))
	}

	return nil
}

// End the recording. The underlying transport is not closed.
func (rec *Recorder) End() error {
	rec.crit.Lock()
	defer rec.crit.Unlock()

	if rec.ended {
		return nil
	}
	rec.ended = true

	logger.Logf(logger.Allow, "recorder", "%d reports recorded", rec.ticks)

	if err := rec.w.Flush(); err != nil {
		rec.f.Close()
		return curated.Errorf("recorder: %v", err)
	}
	if err := rec.f.Close(); err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	return nil
}

// Close implements the transport.Transport interface. The recording is
// ended and the underlying transport is closed.
func (rec *Recorder) Close() error {
	err := rec.End()
	if cerr := rec.Transport.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
