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

// Package romloader is used to specify the program that is to be attached
// to the emulated machine.
//
// When the program is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data
// from different sources. Currently local files and data over HTTP are
// supported.
//
// The simplest instance of the Loader type:
//
//	ld := romloader.Loader{
//		Filename: "roms/pong.ch8",
//	}
//
// It is preferred however that the NewLoader() function is used.
//
// Programs larger than the memory available to the machine are rejected
// at load time with a ProgramTooLarge error.
package romloader
