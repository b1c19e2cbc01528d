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

// Package termplay implements a GUI for use in a Unix terminal. it is a
// fallback for environments where SDL is unavailable, for example a remote
// shell.
//
// the display is drawn with Unicode half-block characters, two display
// pixels to every terminal cell, so the full 64x32 display fits in a 64x16
// character grid. the terminal is put into raw mode for the duration of the
// emulation and restored on Destroy().
//
// terminals report key presses but not key releases. a key is therefore
// considered held for a short period after the last time it was seen, with
// the deadline being extended by the terminal's autorepeat. synthesised
// release events are sent from NewFrame().
//
// there is no audio mixing in a terminal. the beeper is approximated with
// the terminal bell, rung on the leading edge of each beep.
package termplay
