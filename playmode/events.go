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

package playmode

import (
	"github.com/Barbatrou/fish-n-chips/curated"
	"github.com/Barbatrou/fish-n-chips/gui"
)

// sentinal error returned when GUI detects a quit event.
const quitEvent = "user input quit event"

func (pl *playmode) guiEventHandler(ev gui.Event) error {
	switch ev := ev.(type) {
	case gui.EventQuit:
		return curated.Errorf(quitEvent)

	case gui.EventKeyboard:
		return pl.keyboardEventHandler(ev)
	}

	return nil
}
