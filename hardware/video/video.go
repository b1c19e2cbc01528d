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

// Package video implements the 64x32 monochrome framebuffer of the CHIP-8
// machine. All drawing is XOR against the existing pixel state, meaning a
// second draw of the same sprite at the same position acts as an erase.
// Sprite coordinates wrap, each pixel independently, so sprites drawn at the
// edge of the display reappear on the opposite side.
package video

import "strings"

// Width and Height are the dimensions of the display in pixels.
const (
	Width  = 64
	Height = 32
)

// Display is the monochrome framebuffer. It is written by the draw and clear
// instructions and read by whatever renderer has been attached to the
// machine, once per frame-ready signal.
type Display struct {
	pixels [Height][Width]bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{}
}

// Reset the display to its initial, all dark state.
func (dsp *Display) Reset() {
	dsp.Clear()
}

// Clear every pixel.
func (dsp *Display) Clear() {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			dsp.pixels[y][x] = false
		}
	}
}

// DrawSprite XORs the sprite into the framebuffer at the given coordinates.
// Sprites are eight pixels wide, the high bit of each row byte being the
// leftmost pixel, and up to fifteen rows tall. Both the starting coordinates
// and each individual pixel wrap around the display edges.
//
// Returns true if any pixel was turned from set to unset. The caller is
// expected to put that collision flag in the VF register.
func (dsp *Display) DrawSprite(x uint8, y uint8, sprite []uint8) bool {
	collision := false

	for r, row := range sprite {
		py := (int(y) + r) % Height
		for b := 0; b < 8; b++ {
			if row&(0x80>>b) == 0 {
				continue // for loop
			}
			px := (int(x) + b) % Width
			if dsp.pixels[py][px] {
				collision = true
			}
			dsp.pixels[py][px] = !dsp.pixels[py][px]
		}
	}

	return collision
}

// Pixel returns the state of the pixel at the given coordinates. Coordinates
// wrap in the same way as sprite drawing.
func (dsp *Display) Pixel(x int, y int) bool {
	return dsp.pixels[((y%Height)+Height)%Height][((x%Width)+Width)%Width]
}

func (dsp *Display) String() string {
	s := strings.Builder{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if dsp.pixels[y][x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}
