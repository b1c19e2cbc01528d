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

package gui

// Event represents all the different type of events that can occur in the
// gui. Events are sent over the registered event channel as a result of user
// interaction.
type Event interface{}

// EventQuit is sent when the user closes the window or otherwise asks for
// the application to end.
type EventQuit struct{}

// EventKeyboard is sent when the user presses or releases a key. The Key
// field is the name of the key as reported by the gui framework ("A", "1",
// "Escape", etc).
type EventKeyboard struct {
	Key  string
	Down bool
}
