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

// Package clock paces the emulated machine. The Scheduler type maintains
// three independent deadlines: one for instruction stepping, one for the
// sixty hertz timer countdown, and one for the frame-ready signal sent to
// attached renderers and audio mixers.
//
// The scheduler is driven with the Advance() function. Advance() processes
// every deadline that has passed, soonest first. When deadlines coincide
// the instruction deadline is processed before the timer deadline, and the
// timer deadline before the frame deadline.
//
// If the host falls behind, missed deadlines are always made up. The
// number of steps, ticks and frame signals produced by a period of time is
// the same however coarsely the scheduler is advanced through it.
//
// The blocking key-wait instruction suspends instruction stepping only.
// Timer ticks and frame signals continue while the machine is waiting for
// a key. While suspended, each instruction deadline polls the machine for
// a qualifying key press instead of stepping it.
package clock
