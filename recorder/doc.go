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

// Package recorder writes the stream of reports sent to the host to a
// transcript file and plays a transcript back for regression testing.
//
// Recorder and Playback both implement the transport.Transport interface.
// Recorder wraps another transport and records every report that is sent
// successfully. Playback takes the place of the transport and compares every
// report with the transcript.
//
// Transcript format
//
// The transcript is a text file. The header is made up of the following
// lines:
//
//	autopad transcript
//	<version>
//	<run id>
//	<script file or "builtin">
//	<sequencer configuration>
//
// Each line after the header is a single report:
//
//	<tick>, <hex encoded report>, <report description>
//
// The description is not used during playback.
package recorder
