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

// Package keypad implements the sixteen key input device of the CHIP-8
// machine. Keys are numbered 0x0 to 0xf, the same codes the skip-on-key and
// wait-for-key instructions work with.
//
// The keypad is the one piece of machine state that is written from outside
// the emulation goroutine (the GUI forwards key events as they happen) so
// access is guarded by a mutex. Updates are single-key and can never be
// observed half applied.
package keypad

import "sync"

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad is the pressed/released state of the sixteen keys.
//
// In addition to the plain pressed state the keypad counts release-to-press
// transitions. The wait-for-key instruction uses the count to recognise a
// fresh key press: a key that was already held down when the wait began does
// not satisfy the wait, a new press does.
type Keypad struct {
	crit    sync.Mutex
	pressed [NumKeys]bool

	// number of release->press transitions seen and the key that made the
	// most recent one
	presses uint64
	last    uint8
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Reset releases every key. The transition count is not reset; a count of
// zero is only ever seen by waits that began before the first press.
func (key *Keypad) Reset() {
	key.crit.Lock()
	defer key.crit.Unlock()

	for i := range key.pressed {
		key.pressed[i] = false
	}
}

// SetPressed records a key press or release. Only the low nibble of the key
// code is significant. Repeated press events for a key that is already down
// do not count as new transitions.
func (key *Keypad) SetPressed(k uint8, down bool) {
	key.crit.Lock()
	defer key.crit.Unlock()

	k &= 0x0f
	if down && !key.pressed[k] {
		key.presses++
		key.last = k
	}
	key.pressed[k] = down
}

// IsPressed returns the current state of the key. Only the low nibble of the
// key code is significant.
func (key *Keypad) IsPressed(k uint8) bool {
	key.crit.Lock()
	defer key.crit.Unlock()

	return key.pressed[k&0x0f]
}

// Presses returns the number of press transitions seen so far. Used to mark
// the start of a wait-for-key.
func (key *Keypad) Presses() uint64 {
	key.crit.Lock()
	defer key.crit.Unlock()

	return key.presses
}

// PressSince reports whether a press transition has happened since the given
// mark and if so, which key made it. When several keys have been pressed
// since the mark the most recent one wins.
func (key *Keypad) PressSince(mark uint64) (uint8, bool) {
	key.crit.Lock()
	defer key.crit.Unlock()

	if key.presses > mark {
		return key.last, true
	}
	return 0, false
}
