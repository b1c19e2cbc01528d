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

// Package ansi defines ANSI control codes for styles and cursor control.
package ansi

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// ClearScreen is the CSI sequence to clear the entire screen.
const ClearScreen = "\033[2J"

// CursorHome is the CSI sequence to move the cursor to the top-left corner
// of the screen.
const CursorHome = "\033[H"

// CursorHide is the CSI sequence to make the cursor invisible.
const CursorHide = "\033[?25l"

// CursorShow is the CSI sequence to make the cursor visible again.
const CursorShow = "\033[?25h"
