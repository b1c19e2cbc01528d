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

// Package playmode is the normal mode of operation for the emulator. it
// connects the machine, the clock scheduler and a GUI and runs them until
// the user quits or the machine faults.
//
// the GUI is attached through the feature request system in the gui
// package. a GUI that also implements the clock.Renderer and
// clock.AudioMixer interfaces receives the frame and beeper signals.
// further mixers, the wavwriter for example, can be attached through the
// Play() function.
package playmode
