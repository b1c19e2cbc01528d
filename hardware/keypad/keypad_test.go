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

package keypad_test

import (
	"testing"

	"github.com/Barbatrou/fish-n-chips/hardware/keypad"
	"github.com/Barbatrou/fish-n-chips/test"
)

func TestPressedState(t *testing.T) {
	key := keypad.NewKeypad()

	test.Equate(t, key.IsPressed(0x0), false)

	key.SetPressed(0x0, true)
	test.Equate(t, key.IsPressed(0x0), true)
	test.Equate(t, key.IsPressed(0x1), false)

	key.SetPressed(0x0, false)
	test.Equate(t, key.IsPressed(0x0), false)

	// only the low nibble of the key code matters
	key.SetPressed(0x1a, true)
	test.Equate(t, key.IsPressed(0xa), true)
}

func TestPressTransitions(t *testing.T) {
	key := keypad.NewKeypad()

	mark := key.Presses()
	_, ok := key.PressSince(mark)
	test.Equate(t, ok, false)

	key.SetPressed(0x5, true)
	k, ok := key.PressSince(mark)
	test.Equate(t, ok, true)
	test.Equate(t, k, 0x5)

	// holding the key down is not a new transition
	mark = key.Presses()
	key.SetPressed(0x5, true)
	_, ok = key.PressSince(mark)
	test.Equate(t, ok, false)

	// releasing is not a transition either
	key.SetPressed(0x5, false)
	_, ok = key.PressSince(mark)
	test.Equate(t, ok, false)

	// but pressing again is
	key.SetPressed(0x5, true)
	k, ok = key.PressSince(mark)
	test.Equate(t, ok, true)
	test.Equate(t, k, 0x5)
}

func TestMostRecentPressWins(t *testing.T) {
	key := keypad.NewKeypad()

	mark := key.Presses()
	key.SetPressed(0x1, true)
	key.SetPressed(0x2, true)

	k, ok := key.PressSince(mark)
	test.Equate(t, ok, true)
	test.Equate(t, k, 0x2)
}

func TestReset(t *testing.T) {
	key := keypad.NewKeypad()

	key.SetPressed(0x7, true)
	key.Reset()
	test.Equate(t, key.IsPressed(0x7), false)

	// a press after reset is a fresh transition
	mark := key.Presses()
	key.SetPressed(0x7, true)
	_, ok := key.PressSince(mark)
	test.Equate(t, ok, true)
}
