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

package video_test

import (
	"testing"

	"github.com/Barbatrou/fish-n-chips/hardware/video"
	"github.com/Barbatrou/fish-n-chips/test"
)

func TestDrawAndClear(t *testing.T) {
	dsp := video.NewDisplay()

	// single row of eight set pixels at the top left corner
	collision := dsp.DrawSprite(0, 0, []uint8{0xff})
	test.Equate(t, collision, false)

	for x := 0; x < 8; x++ {
		test.Equate(t, dsp.Pixel(x, 0), true)
	}
	test.Equate(t, dsp.Pixel(8, 0), false)

	dsp.Clear()
	for x := 0; x < 8; x++ {
		test.Equate(t, dsp.Pixel(x, 0), false)
	}
}

func TestXORSelfInverse(t *testing.T) {
	dsp := video.NewDisplay()

	// an arbitrary background
	dsp.DrawSprite(3, 5, []uint8{0xa5, 0x5a, 0xff})

	// drawing any sprite twice at the same position restores the display
	sprite := []uint8{0x3c, 0x42, 0x81, 0x81, 0x42, 0x3c}
	before := dsp.String()

	dsp.DrawSprite(1, 4, sprite)
	dsp.DrawSprite(1, 4, sprite)

	test.Equate(t, dsp.String(), before)
}

func TestCollision(t *testing.T) {
	dsp := video.NewDisplay()

	// no pixels set yet so no collision is possible
	test.Equate(t, dsp.DrawSprite(0, 0, []uint8{0x80}), false)

	// the same pixel again. this unsets it, which is a collision
	test.Equate(t, dsp.DrawSprite(0, 0, []uint8{0x80}), true)
	test.Equate(t, dsp.Pixel(0, 0), false)

	// adjacent pixels do not collide
	test.Equate(t, dsp.DrawSprite(0, 0, []uint8{0x80}), false)
	test.Equate(t, dsp.DrawSprite(1, 0, []uint8{0x80}), false)
}

func TestWrapping(t *testing.T) {
	dsp := video.NewDisplay()

	// a sprite drawn at the right edge wraps to the left edge, pixel by
	// pixel
	dsp.DrawSprite(video.Width-2, 0, []uint8{0xff})
	test.Equate(t, dsp.Pixel(video.Width-2, 0), true)
	test.Equate(t, dsp.Pixel(video.Width-1, 0), true)
	for x := 0; x < 6; x++ {
		test.Equate(t, dsp.Pixel(x, 0), true)
	}

	// likewise the bottom edge wraps to the top
	dsp.Clear()
	dsp.DrawSprite(0, video.Height-1, []uint8{0x80, 0x80})
	test.Equate(t, dsp.Pixel(0, video.Height-1), true)
	test.Equate(t, dsp.Pixel(0, 0), true)

	// starting coordinates beyond the display dimensions wrap before
	// drawing begins
	dsp.Clear()
	dsp.DrawSprite(video.Width+3, video.Height+1, []uint8{0x80})
	test.Equate(t, dsp.Pixel(3, 1), true)
}

func TestZeroRowSprite(t *testing.T) {
	dsp := video.NewDisplay()

	// a zero length sprite is a no-op, not an error
	test.Equate(t, dsp.DrawSprite(0, 0, []uint8{}), false)
	test.Equate(t, dsp.Pixel(0, 0), false)
}
