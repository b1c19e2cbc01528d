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

// Package sdlplay is the SDL frontend for play sessions. It draws the
// emulated display into a streaming texture, one update per frame-ready
// signal, and forwards keyboard input to the registered event channel.
//
// The window is created hidden. It is made visible with a ReqSetVisibility
// request, typically as the last step before the emulation starts.
//
// SDL requires that windowing calls are made from the main thread. The
// Service() function must be called repeatedly from the main thread; feature
// requests from other goroutines are queued and serviced there. The frame
// and audio signals are the exception: NewFrame() and SetBeep() are called
// from the emulation goroutine, as they always have been in the history of
// this project.
//
// Sound is delegated to the sdlaudio package.
package sdlplay
