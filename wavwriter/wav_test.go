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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Barbatrou/fish-n-chips/test"
	"github.com/Barbatrou/fish-n-chips/wavwriter"
	"github.com/go-audio/wav"
)

func TestBadParameters(t *testing.T) {
	_, err := wavwriter.New("beep.wav", 0.0, 60)
	test.DemandFailure(t, err)

	_, err = wavwriter.New("beep.wav", 553.0, 0)
	test.DemandFailure(t, err)
}

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "beep.wav")

	aw, err := wavwriter.New(fn, 553.0, 60)
	test.DemandSuccess(t, err)

	// one second of frames with the beeper active for the middle third
	for i := 0; i < 60; i++ {
		test.ExpectedSuccess(t, aw.SetBeep(i >= 20 && i < 40))
	}
	test.ExpectedSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.Equate(t, dec.IsValidFile(), true)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)

	test.Equate(t, int(dec.SampleRate), 22050)
	test.Equate(t, int(dec.NumChans), 1)

	// sixty frames at sixty frames per second is exactly one second of audio
	test.Equate(t, len(buf.Data), 22050)

	// silence up to the start of the beep. the twentieth frame begins at
	// sample 7350
	test.Equate(t, buf.Data[0], 0)
	test.Equate(t, buf.Data[7349], 0)

	// the beep starts with a positive half-cycle
	test.Equate(t, buf.Data[7350], 12000)

	// silence after the beep ends on the fortieth frame
	test.Equate(t, buf.Data[14700], 0)
	test.Equate(t, buf.Data[22049], 0)
}
