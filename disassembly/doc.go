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

// Package disassembly coordinates the disassembly of CHIP-8 programs.
//
// For quick disassemblies the FromLoader() function can be used.
//
// The disassembler is a linear sweep over the program image, two bytes at
// a time. CHIP-8 programs freely mix sprite data with instructions, so
// words that do not decode to a documented instruction are listed as
// data words rather than treated as an error.
package disassembly
