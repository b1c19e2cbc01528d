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

package sdlplay

import (
	"io"
	"math"

	"github.com/Barbatrou/fish-n-chips/curated"
	"github.com/Barbatrou/fish-n-chips/gui"
	"github.com/Barbatrou/fish-n-chips/gui/sdlaudio"
	"github.com/Barbatrou/fish-n-chips/hardware/video"
	"github.com/Barbatrou/fish-n-chips/version"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// DefaultScale is the number of window pixels per emulated pixel unless a
// different value is requested.
const DefaultScale = 20

// display colours. the gradient saturation/value pair produces pastel shades
// of whatever hue the cycle has reached.
const (
	bgGrey = 74

	pixelRed   = 255
	pixelGreen = 205
	pixelBlue  = 230

	gradientSaturation = 0.2
	gradientValue      = 1.0
)

// SdlPlay is an SDL implementation of the gui.GUI and clock.Renderer
// interfaces.
type SdlPlay struct {
	dsp *video.Display

	// connects the SDL event loop with the parent process
	events chan gui.Event

	// all audio is handled by the sdlaudio package
	aud *sdlaudio.Audio

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// it to the renderer. it is the size of the emulated display; scaling to
	// window size happens in the renderer
	pixels []byte

	// the amount of scaling applied to each pixel
	scale int

	// when gradient is enabled the pixel colour is derived from hue, which
	// advances one degree every frame
	gradient bool
	hue      float64

	// feature requests asked of us from outside of the main thread. the
	// requests are serviced by Service()
	featureReq chan featureRequest
	featureErr chan error
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(dsp *video.Display, scale int, beepHz float64) (*SdlPlay, error) {
	scr := &SdlPlay{
		dsp:        dsp,
		featureReq: make(chan featureRequest),
		featureErr: make(chan error),
	}

	if scale <= 0 {
		scale = DefaultScale
	}
	scr.scale = scale

	var err error

	// set up sdl
	err = sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// SDL window. the window is kept hidden until a ReqSetVisibility request
	// arrives
	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(video.Width*scr.scale), int32(video.Height*scr.scale),
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is the same size as the emulated display. the renderer
	// stretches it over the whole window
	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, video.Width*video.Height*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	// initialise the sound system
	scr.aud, err = sdlaudio.NewAudio(beepHz)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	setupService()

	return scr, nil
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy(output io.Writer) {
	err := scr.texture.Destroy()
	if err != nil {
		io.WriteString(output, err.Error())
	}

	err = scr.renderer.Destroy()
	if err != nil {
		io.WriteString(output, err.Error())
	}

	err = scr.window.Destroy()
	if err != nil {
		io.WriteString(output, err.Error())
	}
}

// use scale of 0 or less to reapply the current scale value
func (scr *SdlPlay) setScale(scale int) error {
	if scale > 0 {
		scr.scale = scale
	}

	w := int32(video.Width * scr.scale)
	h := int32(video.Height * scr.scale)
	scr.window.SetSize(w, h)

	return nil
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// NewFrame implements the clock.Renderer interface. The entire framebuffer
// is read and redrawn; at sixty-four by thirty-two pixels there is nothing
// to be gained from anything cleverer.
func (scr *SdlPlay) NewFrame() error {
	r := uint8(pixelRed)
	g := uint8(pixelGreen)
	b := uint8(pixelBlue)

	if scr.gradient {
		r, g, b = hsv(scr.hue, gradientSaturation, gradientValue)
		scr.hue++
		if scr.hue >= 360 {
			scr.hue -= 360
		}
	}

	i := 0
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			if scr.dsp.Pixel(x, y) {
				scr.pixels[i] = r
				scr.pixels[i+1] = g
				scr.pixels[i+2] = b
			} else {
				scr.pixels[i] = bgGrey
				scr.pixels[i+1] = bgGrey
				scr.pixels[i+2] = bgGrey
			}
			i += pixelDepth
		}
	}

	err := scr.texture.Update(nil, scr.pixels, video.Width*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// SetBeep implements the clock.AudioMixer interface.
func (scr *SdlPlay) SetBeep(active bool) error {
	return scr.aud.SetBeep(active)
}

// EndMixing implements the clock.AudioMixer interface.
func (scr *SdlPlay) EndMixing() error {
	return scr.aud.EndMixing()
}

// hsv converts a hue (in degrees), saturation and value to RGB bytes.
func hsv(h float64, s float64, v float64) (uint8, uint8, uint8) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}
