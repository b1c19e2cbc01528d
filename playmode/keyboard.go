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

// the hexadecimal keypad is mapped onto the left-hand side of an AZERTY
// keyboard:
//
//	1 2 3 4        1 2 3 C
//	A Z E R   ->   4 5 6 D
//	Q S D F        7 8 9 E
//	W X C V        A 0 B F
var keypadKeys = map[string]uint8{
	"1": 0x01, "2": 0x02, "3": 0x03, "4": 0x0c,
	"A": 0x04, "Z": 0x05, "E": 0x06, "R": 0x0d,
	"Q": 0x07, "S": 0x08, "D": 0x09, "F": 0x0e,
	"W": 0x0a, "X": 0x00, "C": 0x0b, "V": 0x0f,
}

func (pl *playmode) keyboardEventHandler(ev gui.EventKeyboard) error {
	if ev.Key == "Escape" {
		if ev.Down {
			return curated.Errorf(quitEvent)
		}
		return nil
	}

	if k, ok := keypadKeys[ev.Key]; ok {
		pl.mch.Keypad.SetPressed(k, ev.Down)
	}

	return nil
}
