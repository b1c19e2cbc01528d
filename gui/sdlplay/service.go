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
	"github.com/Barbatrou/fish-n-chips/gui"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and there is
	// nothing we want them for
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	// do not check for events if no event channel has been set
	if scr.events != nil {
		// loop until there are no more events to retrieve. the one
		// millisecond timeout on the wait stops the main thread from
		// spinning
		empty := false
		for !empty {
			ev := sdl.WaitEventTimeout(1)

			switch ev := ev.(type) {
			// close window
			case *sdl.QuitEvent:
				scr.events <- gui.EventQuit{}

			case *sdl.KeyboardEvent:
				switch ev.Type {
				case sdl.KEYDOWN:
					if ev.Repeat == 0 {
						scr.events <- gui.EventKeyboard{
							Key:  sdl.GetKeyName(ev.Keysym.Sym),
							Down: true}
					}
				case sdl.KEYUP:
					if ev.Repeat == 0 {
						scr.events <- gui.EventKeyboard{
							Key:  sdl.GetKeyName(ev.Keysym.Sym),
							Down: false}
					}
				}

			case nil:
				// if we have a nil value then the WaitEvent has timed out
				// and we can say that the event queue is empty
				empty = true
			}
		}
	} else {
		sdl.Delay(1)
	}

	// run any outstanding feature requests
	select {
	case r := <-scr.featureReq:
		scr.serviceFeatureRequest(r)
	default:
	}
}
