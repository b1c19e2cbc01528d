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

package clock

// The default pacing rates in hertz. Both can be changed through the
// Scheduler.SetRates() function.
//
// Note that the rate of the timer countdown is fixed by the timer package
// and is not configurable. Interpreters have decremented the delay and
// sound timers at sixty hertz since the COSMAC VIP and programs depend on
// it.
const (
	DefaultInstructionRate = 1000
	DefaultFrameRate       = 60
)
