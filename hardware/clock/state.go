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

// State indicates the scheduler's state.
type State int

// List of possible scheduler states.
//
// Running is the default state and the scheduler returns to it after every
// successful instruction step.
//
// WaitingForKey is entered when the machine executes the blocking key-wait
// instruction and left when a qualifying key press arrives.
//
// Halted is entered on any fault and is terminal. A halted machine must be
// recreated, not restarted.
const (
	Running State = iota
	WaitingForKey
	Halted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case WaitingForKey:
		return "waiting for key"
	case Halted:
		return "halted"
	}
	return "unknown"
}
