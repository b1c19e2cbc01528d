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

package cpu

import (
	"fmt"
	"strings"

	"github.com/Barbatrou/fish-n-chips/curated"
)

// StackDepth is the number of return addresses the call stack can hold.
const StackDepth = 16

// Error patterns for stack faults. Both indicate a malformed program or an
// executor bug, so both are fatal to the machine.
const (
	StackOverflow  = "stack overflow: subroutine calls nested deeper than %d"
	StackUnderflow = "stack underflow: return outside of any subroutine"
)

// Stack is the call stack. It holds return addresses only; CHIP-8 programs
// cannot place data on it.
type Stack struct {
	entries [StackDepth]uint16
	sp      uint8
}

// Reset empties the stack.
func (stk *Stack) Reset() {
	stk.sp = 0
}

// Push a return address onto the stack.
func (stk *Stack) Push(addr uint16) error {
	if stk.sp >= StackDepth {
		return curated.Errorf(StackOverflow, StackDepth)
	}
	stk.entries[stk.sp] = addr
	stk.sp++
	return nil
}

// Pop the most recently pushed return address off the stack.
func (stk *Stack) Pop() (uint16, error) {
	if stk.sp == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	stk.sp--
	return stk.entries[stk.sp], nil
}

// Depth returns the number of entries currently on the stack.
func (stk *Stack) Depth() int {
	return int(stk.sp)
}

func (stk *Stack) String() string {
	if stk.sp == 0 {
		return "stack: empty"
	}
	s := strings.Builder{}
	s.WriteString("stack:")
	for i := 0; i < int(stk.sp); i++ {
		s.WriteString(fmt.Sprintf(" %#04x", stk.entries[i]))
	}
	return s.String()
}
