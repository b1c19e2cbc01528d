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

package termplay

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Barbatrou/fish-n-chips/curated"
	"github.com/Barbatrou/fish-n-chips/gui"
	"github.com/Barbatrou/fish-n-chips/gui/termplay/easyterm"
	"github.com/Barbatrou/fish-n-chips/gui/termplay/easyterm/ansi"
	"github.com/Barbatrou/fish-n-chips/hardware/video"
)

// a terminal sends no release events so a key is considered held for this
// long after the most recent press. autorepeat extends the deadline. note
// that the typical autorepeat delay is longer than this, meaning that a key
// held down on a real keyboard will flicker once before repeating takes
// over.
const keyHold = 300 * time.Millisecond

// the glyphs used to render two vertically adjacent display pixels in a
// single terminal cell.
const (
	cellEmpty  = ' '
	cellTop    = '▀'
	cellBottom = '▄'
	cellBoth   = '█'
)

// TermPlay is a text mode implementation of the gui.GUI interface.
type TermPlay struct {
	easyterm.Terminal

	dsp *video.Display

	// critical sectioning for the fields shared with the input goroutine
	crit   sync.Mutex
	events chan gui.Event
	held   map[string]time.Time

	beeping bool
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. the terminal is put into raw mode immediately.
func NewTermPlay(dsp *video.Display) (*TermPlay, error) {
	scr := &TermPlay{
		dsp:  dsp,
		held: make(map[string]time.Time),
	}

	err := scr.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	scr.RawMode()
	scr.Print("%s%s", ansi.CursorHide, ansi.ClearScreen)

	go scr.readInput()

	return scr, nil
}

// Destroy implements GuiCreator interface.
func (scr *TermPlay) Destroy(output io.Writer) {
	scr.Print("%s%s\r\n", ansi.NormalPen, ansi.CursorShow)

	// discard type-ahead so it doesn't spill into the shell
	err := scr.Flush()
	if err != nil {
		io.WriteString(output, err.Error())
	}

	scr.CanonicalMode()
}

// Service implements GuiCreator interface. input is handled by the
// readInput() goroutine so there is nothing to do here except yield.
func (scr *TermPlay) Service() {
	time.Sleep(time.Millisecond)
}

// SetFeature implements the gui.GUI interface. unlike the SDL frontend,
// requests are serviced immediately on the calling goroutine.
func (scr *TermPlay) SetFeature(request gui.FeatureReq, args ...interface{}) (returnedErr error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			returnedErr = curated.Errorf("termplay: %v", r)
		}
	}()

	switch request {
	case gui.ReqSetEventChan:
		scr.crit.Lock()
		scr.events = args[0].(chan gui.Event)
		scr.crit.Unlock()

	case gui.ReqSetVisibility:
		// the terminal is always visible

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// NewFrame implements the clock.Renderer interface. the entire display is
// redrawn from the top-left corner on every frame signal.
func (scr *TermPlay) NewFrame() error {
	s := strings.Builder{}
	s.Grow((video.Width + 2) * (video.Height / 2))

	s.WriteString(ansi.CursorHome)
	for y := 0; y < video.Height; y += 2 {
		for x := 0; x < video.Width; x++ {
			top := scr.dsp.Pixel(x, y)
			bot := scr.dsp.Pixel(x, y+1)
			switch {
			case top && bot:
				s.WriteRune(cellBoth)
			case top:
				s.WriteRune(cellTop)
			case bot:
				s.WriteRune(cellBottom)
			default:
				s.WriteRune(cellEmpty)
			}
		}

		// raw mode means the carriage return must be explicit
		s.WriteString("\r\n")
	}
	scr.Print("%s", s.String())

	scr.releaseKeys()

	return nil
}

// releaseKeys sends a synthesised release event for every key whose hold
// deadline has passed. the sends must not block because NewFrame() is
// called from the emulation goroutine, which is also the goroutine that
// empties the event channel. an undelivered release is retried on the next
// frame.
func (scr *TermPlay) releaseKeys() {
	now := time.Now()

	scr.crit.Lock()
	defer scr.crit.Unlock()

	for k, deadline := range scr.held {
		if now.After(deadline) {
			select {
			case scr.events <- gui.EventKeyboard{Key: k}:
				delete(scr.held, k)
			default:
			}
		}
	}
}

// SetBeep implements the clock.AudioMixer interface. the terminal bell is
// rung on the leading edge of the beep.
func (scr *TermPlay) SetBeep(active bool) error {
	if active && !scr.beeping {
		scr.Print("\a")
	}
	scr.beeping = active
	return nil
}

// EndMixing implements the clock.AudioMixer interface.
func (scr *TermPlay) EndMixing() error {
	return nil
}

// readInput translates bytes from the input file into GUI events. it runs
// in its own goroutine for the lifetime of the process.
func (scr *TermPlay) readInput() {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n != 1 {
			scr.postEvent(gui.EventQuit{})
			return
		}

		if buf[0] == easyterm.KeyInterrupt || buf[0] == easyterm.KeyEsc {
			scr.postEvent(gui.EventQuit{})
			return
		}

		k := keyName(buf[0])
		if k == "" {
			continue
		}

		scr.crit.Lock()
		_, repeat := scr.held[k]
		scr.held[k] = time.Now().Add(keyHold)
		scr.crit.Unlock()

		// autorepeat only extends the hold deadline
		if !repeat {
			scr.postEvent(gui.EventKeyboard{Key: k, Down: true})
		}
	}
}

// postEvent sends the event to the registered event channel, blocking until
// it is accepted. events arriving before the channel has been registered
// are dropped.
func (scr *TermPlay) postEvent(ev gui.Event) {
	scr.crit.Lock()
	ch := scr.events
	scr.crit.Unlock()

	if ch != nil {
		ch <- ev
	}
}

// keyName converts an input byte to the name used by the gui.EventKeyboard
// type. names match those reported by the SDL frontend so the same keyboard
// mapping serves both.
func keyName(b byte) string {
	switch {
	case b >= '0' && b <= '9':
		return string(rune(b))
	case b >= 'a' && b <= 'z':
		return string(rune(b - 'a' + 'A'))
	case b >= 'A' && b <= 'Z':
		return string(rune(b))
	}
	return ""
}
