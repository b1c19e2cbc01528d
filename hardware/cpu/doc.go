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

// Package cpu implements the CHIP-8 processor: the register file, the call
// stack and the fetch-decode-execute cycle. One call to Step() is one
// complete instruction.
//
// Two instruction behaviours vary between historical interpreters. This
// implementation follows the original COSMAC VIP in both cases and the
// conformance tests pin the choice:
//
//   - the shift instructions read the source register Vy, placing the
//     shifted value in Vx and the shifted-out bit in VF
//
//   - the bulk register transfer instructions walk the index register over
//     the transferred range, leaving I equal to I + X + 1
//
// The wait-for-key instruction does not block. It puts the CPU into a
// waiting state in which Step() does nothing; the clock scheduler keeps
// driving timers and frames and offers key presses to ResumeOnPress() until
// one ends the wait.
package cpu
