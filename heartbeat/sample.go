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

package heartbeat

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/autopad/autopad/curated"
	"github.com/autopad/autopad/logger"
)

// Sentinel error patterns.
const (
	UnsupportedSample = "sample: unsupported file type (%s)"
)

// Sample is mono audio data. Values are in the range of a signed 16 bit
// integer.
type Sample struct {
	Rate float64
	Data []float32
}

// LoadSample reads audio from a WAV or MP3 file. Only the first channel of the
// audio is used.
func LoadSample(filename string) (Sample, error) {
	var s Sample

	f, err := os.Open(filename)
	if err != nil {
		return s, curated.Errorf("sample: %v", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		dec := wav.NewDecoder(f)
		if !dec.IsValidFile() {
			return s, curated.Errorf("sample: wav: not a valid wav file")
		}

		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return s, curated.Errorf("sample: wav: %v", err)
		}
		depth := buf.SourceBitDepth
		if depth == 0 {
			depth = int(dec.BitDepth)
		}
		if depth < 8 || depth > 32 {
			return s, curated.Errorf("sample: wav: unsupported bit depth (%d)", depth)
		}

		// copy first channel only
		chans := int(dec.NumChans)
		if chans < 1 {
			chans = 1
		}
		s.Data = make([]float32, 0, len(buf.Data)/chans)
		for i := 0; i < len(buf.Data); i += chans {
			s.Data = append(s.Data, scaleSample(buf.Data[i], depth))
		}
		s.Rate = float64(dec.SampleRate)

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return s, curated.Errorf("sample: mp3: %v", err)
		}

		// the decoded stream is always 16bit little endian with two
		// channels. four bytes per sample
		chunk := make([]byte, 4096)
		for err != io.EOF {
			var n int
			n, err = dec.Read(chunk)
			if err != nil && err != io.EOF {
				return s, curated.Errorf("sample: mp3: %v", err)
			}

			// left channel only
			for i := 0; i+1 < n; i += 4 {
				v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
				s.Data = append(s.Data, float32(v))
			}
		}
		s.Rate = float64(dec.SampleRate())

	default:
		return s, curated.Errorf(UnsupportedSample, filepath.Ext(filename))
	}

	if s.Rate > 0 {
		logger.Logf(logger.Allow, "sample", "%s: %.0fHz %.02fs", filename, s.Rate, float64(len(s.Data))/s.Rate)
	}

	return s, nil
}

// scaleSample converts a PCM value of the given bit depth to the range of a
// signed 16 bit integer. 8 bit WAV data is unsigned.
func scaleSample(v int, depth int) float32 {
	if depth == 8 {
		v -= 128
	}
	return float32(math.Ldexp(float64(v), 16-depth))
}
