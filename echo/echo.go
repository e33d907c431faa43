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

package echo

import (
	"github.com/autopad/autopad/hardware/report"
)

// Budget is the number of times a report is repeated after it is first sent.
const Budget = 2

// Source produces fresh reports. The sequencer.Sequencer type satisfies this
// interface.
type Source interface {
	Step() report.Report
}

// Stabilizer repeats each report from the Source Budget times.
type Stabilizer struct {
	src Source

	// the most recently produced report
	last report.Report

	// the number of repeats left before the next call to the Source
	remaining int

	// the number of calls made to the Source
	steps int
}

// NewStabilizer is the preferred method of initialisation for the Stabilizer
// type.
func NewStabilizer(src Source) *Stabilizer {
	return &Stabilizer{
		src:  src,
		last: report.Neutral(),
	}
}

// Tick returns the report to send for this tick and whether it is a repeat
// of the previous tick's report.
func (st *Stabilizer) Tick() (report.Report, bool) {
	if st.remaining > 0 {
		st.remaining--
		return st.last, true
	}

	st.last = st.src.Step()
	st.remaining = Budget
	st.steps++
	return st.last, false
}

// Steps returns the number of reports taken from the Source.
func (st *Stabilizer) Steps() int {
	return st.steps
}

// Last returns the most recent report.
func (st *Stabilizer) Last() report.Report {
	return st.last
}
