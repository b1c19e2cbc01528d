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

// Package sdlaudio plays the single-tone beeper through SDL's queued audio
// API. The tone is a plain square wave; the only thing the emulation decides
// is whether it can be heard or not.
package sdlaudio

import (
	"github.com/Barbatrou/fish-n-chips/curated"
	"github.com/Barbatrou/fish-n-chips/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// DefaultBeepFrequency is the frequency of the beep tone unless a different
// value is requested.
const DefaultBeepFrequency = 553.0

const sampleFreq = 22050

// the buffer length is a trade-off. too long and the beep lags noticeably
// behind the sound timer; too short and the queue can drain between frame
// signals, causing an audible stutter. the queue is kept topped up to twice
// this value, about forty-five milliseconds of tone.
const bufferLength = 512

// deviation from the silence value for the two halves of the square wave.
const amplitude = 24

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	beepHz float64

	// square wave phase, in cycles. advanced by beepHz/sampleFreq for every
	// sample generated
	phase float64

	// scratch buffer, requeued with fresh samples whenever the audio queue
	// is running low
	buffer []uint8

	beeping bool
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(beepHz float64) (*Audio, error) {
	if beepHz <= 0 {
		beepHz = DefaultBeepFrequency
	}

	aud := &Audio{
		beepHz: beepHz,
		buffer: make([]uint8, bufferLength),
	}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud.spec = actualSpec

	logger.Logf("sdlaudio", "%.1fHz beep at %dHz sample rate", aud.beepHz, aud.spec.Freq)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetBeep implements the clock.AudioMixer interface. While the beep is
// active the audio queue is kept topped up with enough square wave to reach
// well past the next frame signal.
func (aud *Audio) SetBeep(active bool) error {
	if !active {
		if aud.beeping {
			sdl.ClearQueuedAudio(aud.id)
			aud.beeping = false
		}
		return nil
	}

	// starting a fresh beep from phase zero gives every beep an identical
	// attack
	if !aud.beeping {
		aud.beeping = true
		aud.phase = 0
	}

	for sdl.GetQueuedAudioSize(aud.id) < 2*bufferLength {
		aud.fillBuffer()
		if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
			return curated.Errorf("sdlaudio: %v", err)
		}
	}

	return nil
}

// one buffer of square wave, continuing from the current phase.
func (aud *Audio) fillBuffer() {
	for i := range aud.buffer {
		if aud.phase < 0.5 {
			aud.buffer[i] = aud.spec.Silence + amplitude
		} else {
			aud.buffer[i] = aud.spec.Silence - amplitude
		}

		aud.phase += aud.beepHz / sampleFreq
		if aud.phase >= 1 {
			aud.phase--
		}
	}
}

// EndMixing implements the clock.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
