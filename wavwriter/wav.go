// This file is part of Fish'n'CHIPS.
//
// Fish'n'CHIPS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Fish'n'CHIPS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Fish'n'CHIPS.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of the beeper output to disk as a WAV
// file. Note that audio data is buffered in memory in its entirety, and
// written to disk on program end. It is therefore probably only suitable
// for testing purposes.
package wavwriter

import (
	"os"

	"github.com/Barbatrou/fish-n-chips/curated"
	"github.com/Barbatrou/fish-n-chips/logger"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// the sample rate of the written file. the same rate as the sdlaudio
// package uses for live playback.
const sampleFreq = 22050

// amplitude of the square wave (16bit samples)
const amplitude = 12000

// WavWriter implements the clock.AudioMixer interface.
type WavWriter struct {
	filename string
	beepHz   float64
	fps      int

	beeping bool
	phase   float64
	frames  int64
	data    []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, beepHz float64, fps int) (*WavWriter, error) {
	if beepHz <= 0.0 || fps <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "bad parameters for audio generation")
	}

	aw := &WavWriter{
		filename: filename,
		beepHz:   beepHz,
		fps:      fps,
		data:     make([]int, 0),
	}

	return aw, nil
}

// SetBeep implements the clock.AudioMixer interface. one call corresponds
// to one frame of audio.
func (aw *WavWriter) SetBeep(active bool) error {
	if active && !aw.beeping {
		// start of a new beep. resetting the phase means every beep has an
		// identical attack
		aw.phase = 0.0
	}
	aw.beeping = active

	// the number of samples that should exist after this frame. integer
	// arithmetic keeps the accounting exact even when the frame rate does
	// not divide the sample rate
	aw.frames++
	total := int(aw.frames * sampleFreq / int64(aw.fps))

	for len(aw.data) < total {
		var v int
		if active {
			if aw.phase < 0.5 {
				v = amplitude
			} else {
				v = -amplitude
			}
			aw.phase += aw.beepHz / sampleFreq
			if aw.phase >= 1.0 {
				aw.phase -= 1.0
			}
		}
		aw.data = append(aw.data, v)
	}

	return nil
}

// EndMixing implements the clock.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)

	enc := wav.NewEncoder(f, sampleFreq, 16, 1, 1)
	err = enc.Write(&audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleFreq,
		},
		Data:           aw.data,
		SourceBitDepth: 16,
	})
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
