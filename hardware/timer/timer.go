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

// Package timer implements the delay and sound timers of the CHIP-8 machine.
// Both are eight bit countdown values decremented at a fixed 60Hz, entirely
// independent of the instruction rate. The delay timer is general purpose,
// read and written by programs. The sound timer gates the beeper: while it
// is non-zero the machine is beeping.
package timer

import "fmt"

// TickRate is the fixed rate, in ticks per second, at which both timers
// decay. It is a property of the machine, not a configuration value.
const TickRate = 60

// Pair is the delay/sound timer pair.
type Pair struct {
	delay uint8
	sound uint8
}

// NewPair is the preferred method of initialisation for the Pair type.
func NewPair() *Pair {
	return &Pair{}
}

// Reset both timers to zero.
func (tmr *Pair) Reset() {
	tmr.delay = 0
	tmr.sound = 0
}

// Tick decrements each timer that is currently non-zero. Timers stop at zero,
// they never underflow. Called exactly once per 60Hz period by the clock
// scheduler.
func (tmr *Pair) Tick() {
	if tmr.delay > 0 {
		tmr.delay--
	}
	if tmr.sound > 0 {
		tmr.sound--
	}
}

// Delay returns the current value of the delay timer.
func (tmr *Pair) Delay() uint8 {
	return tmr.delay
}

// SetDelay sets the delay timer.
func (tmr *Pair) SetDelay(v uint8) {
	tmr.delay = v
}

// Sound returns the current value of the sound timer.
func (tmr *Pair) Sound() uint8 {
	return tmr.sound
}

// SetSound sets the sound timer.
func (tmr *Pair) SetSound(v uint8) {
	tmr.sound = v
}

// SoundActive is true while the sound timer is non-zero, which is the
// machine's way of saying the beeper should be sounding.
func (tmr *Pair) SoundActive() bool {
	return tmr.sound > 0
}

func (tmr *Pair) String() string {
	return fmt.Sprintf("DT=%#02x ST=%#02x", tmr.delay, tmr.sound)
}
