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
	"math"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/autopad/autopad/curated"
	"github.com/autopad/autopad/logger"
)

// SampleRate of the audio produced by the buzzer.
const SampleRate = 22050

// the frequency and amplitude of the default buzzer tone
const (
	toneFreq      = 2000
	toneAmplitude = math.MaxInt16 / 4
)

// Buzzer renders the heartbeat as audio. The audio is buffered in memory in its
// entirety and written to disk with the Write() function.
type Buzzer struct {
	crit sync.Mutex

	// the audio for a single pulse
	tone []int

	// the number of samples in one Period
	periodLen int

	buffer []int
}

// NewBuzzer is the preferred method of initialisation for the Buzzer type.
func NewBuzzer() *Buzzer {
	bz := &Buzzer{
		periodLen: int(SampleRate * Period.Seconds()),
	}

	// square wave
	bz.tone = make([]int, bz.periodLen)
	half := SampleRate / toneFreq / 2
	for i := range bz.tone {
		if (i/half)%2 == 0 {
			bz.tone[i] = toneAmplitude
		} else {
			bz.tone[i] = -toneAmplitude
		}
	}

	return bz
}

// SetSample replaces the buzzer tone with the sample. The sample is resampled
// to SampleRate and cut to the length of one Period.
func (bz *Buzzer) SetSample(s Sample) {
	bz.crit.Lock()
	defer bz.crit.Unlock()

	if len(s.Data) == 0 || s.Rate <= 0 {
		return
	}

	step := s.Rate / SampleRate
	tone := make([]int, 0, bz.periodLen)
	for i := 0; i < bz.periodLen; i++ {
		j := int(float64(i) * step)
		if j >= len(s.Data) {
			break // for loop
		}
		v := int(s.Data[j])
		if v > math.MaxInt16 {
			v = math.MaxInt16
		} else if v < math.MinInt16 {
			v = math.MinInt16
		}
		tone = append(tone, v)
	}

	bz.tone = tone
}

// Pulse adds one Period of audio to the buffer. The tone if on is true and
// silence otherwise.
func (bz *Buzzer) Pulse(on bool) {
	bz.crit.Lock()
	defer bz.crit.Unlock()

	if on {
		bz.buffer = append(bz.buffer, bz.tone...)
		for i := len(bz.tone); i < bz.periodLen; i++ {
			bz.buffer = append(bz.buffer, 0)
		}
	} else {
		bz.buffer = append(bz.buffer, make([]int, bz.periodLen)...)
	}
}

// Len returns the number of samples in the buffer.
func (bz *Buzzer) Len() int {
	bz.crit.Lock()
	defer bz.crit.Unlock()
	return len(bz.buffer)
}

// Write the buffered audio to a 16 bit mono WAV file.
func (bz *Buzzer) Write(filename string) (rerr error) {
	bz.crit.Lock()
	defer bz.crit.Unlock()

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("buzzer: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("buzzer: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleRate,
		},
		Data:           bz.buffer,
		SourceBitDepth: 16,
	}

	logger.Logf(logger.Allow, "buzzer", "writing audio to %s", filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("buzzer: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("buzzer: %v", err)
	}

	return nil
}
