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

// Package memory implements the 4096 byte address space of the CHIP-8
// machine. The area below the program load offset is reserved for interpreter
// data; the hexadecimal sprite font lives at the bottom of that area. Program
// images are copied in at the load offset and executed from there.
//
// Access through ReadByte(), WriteByte() and ReadWord() is bounds checked.
// Writes to the reserved area through WriteByte() are refused - only the
// interpreter itself (font installation, program loading) may place values
// there.
package memory

import (
	"fmt"
	"strings"

	"github.com/Barbatrou/fish-n-chips/curated"
)

// Capacity is the number of addressable bytes in the machine.
const Capacity = 4096

// LoadOffset is the first address available to program code. Addresses below
// this are reserved for the interpreter.
const LoadOffset = 0x200

// MaxProgramSize is the largest program image that can be copied into memory.
const MaxProgramSize = Capacity - LoadOffset

// AddressOutOfRange is returned when an access is outside the addressable
// space or, in the case of writes, inside the reserved interpreter area.
const AddressOutOfRange = "address out of range: %#04x (%s)"

// Memory is the complete address space of the machine.
type Memory struct {
	data [Capacity]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font table is installed in the reserved area.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset restores memory to its initial state. The reserved area is rebuilt;
// everything from the load offset up is zeroed. The program image, if any,
// must be copied in again with LoadProgram().
func (mem *Memory) Reset() {
	for i := range mem.data {
		mem.data[i] = 0
	}
	copy(mem.data[FontOrigin:], fontTable[:])
}

// LoadProgram copies a program image into memory at the load offset. The
// image is copied verbatim; no validation of the contents is attempted.
func (mem *Memory) LoadProgram(prog []uint8) error {
	if len(prog) > MaxProgramSize {
		return curated.Errorf("memory: program image of %d bytes will not fit", len(prog))
	}
	copy(mem.data[LoadOffset:], prog)
	return nil
}

// ReadByte returns the byte at the requested address.
func (mem *Memory) ReadByte(address uint16) (uint8, error) {
	if address >= Capacity {
		return 0, curated.Errorf(AddressOutOfRange, address, "beyond memory top")
	}
	return mem.data[address], nil
}

// WriteByte writes a byte to the requested address. The reserved interpreter
// area cannot be written to.
func (mem *Memory) WriteByte(address uint16, value uint8) error {
	if address >= Capacity {
		return curated.Errorf(AddressOutOfRange, address, "beyond memory top")
	}
	if address < LoadOffset {
		return curated.Errorf(AddressOutOfRange, address, "write to reserved area")
	}
	mem.data[address] = value
	return nil
}

// ReadWord returns the big-endian 16bit word at the requested address. This
// is how instructions are fetched so the error message assumes that context.
func (mem *Memory) ReadWord(address uint16) (uint16, error) {
	if address+1 >= Capacity || address+1 < address {
		return 0, curated.Errorf(AddressOutOfRange, address, "word read at memory top")
	}
	return (uint16(mem.data[address]) << 8) | uint16(mem.data[address+1]), nil
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")

	// the reserved area is almost never interesting so the dump starts at
	// the load offset
	for y := LoadOffset; y < Capacity; y += 16 {
		// skip rows that are all zero, they dominate the dump otherwise
		empty := true
		for x := 0; x < 16; x++ {
			if mem.data[y+x] != 0 {
				empty = false
				break // for loop
			}
		}
		if empty {
			continue // for loop
		}

		s.WriteString(fmt.Sprintf("%03x- |", y>>4))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[y+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}
