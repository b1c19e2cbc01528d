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

package disassembly

import (
	"fmt"
	"io"

	"github.com/Barbatrou/fish-n-chips/curated"
	"github.com/Barbatrou/fish-n-chips/hardware/cpu/instructions"
	"github.com/Barbatrou/fish-n-chips/hardware/memory"
	"github.com/Barbatrou/fish-n-chips/romloader"
)

// Entry is a single disassembled program word.
type Entry struct {
	Address uint16
	OpCode  uint16

	// whether the word decoded to a documented instruction. entries that
	// did not decode are sprite data, or garbage
	Decoded bool

	// the decoded instruction. meaningful only when Decoded is true
	Instruction instructions.Instruction
}

func (e Entry) String() string {
	if !e.Decoded {
		return fmt.Sprintf("DW %#04x", e.OpCode)
	}
	return e.Instruction.String()
}

// Disassembly is the result of disassembling a program image.
type Disassembly struct {
	entries []Entry

	// programs are not required to be an even number of bytes long. any
	// odd byte at the end of the image is recorded separately
	trailing    uint8
	hasTrailing bool
}

// FromLoader loads the program specified by the loader and disassembles
// it.
func FromLoader(ld romloader.Loader) (*Disassembly, error) {
	err := ld.Load()
	if err != nil {
		return nil, err
	}
	return FromData(ld.Data), nil
}

// FromData disassembles a program image that is already in memory.
func FromData(data []uint8) *Disassembly {
	dsm := &Disassembly{}

	for i := 0; i+1 < len(data); i += 2 {
		e := Entry{
			Address: memory.LoadOffset + uint16(i),
			OpCode:  (uint16(data[i]) << 8) | uint16(data[i+1]),
		}
		e.Instruction, e.Decoded = instructions.Decode(e.OpCode)
		dsm.entries = append(dsm.entries, e)
	}

	if len(data)%2 == 1 {
		dsm.trailing = data[len(data)-1]
		dsm.hasTrailing = true
	}

	return dsm
}

// Entries returns every disassembled entry in program order.
func (dsm *Disassembly) Entries() []Entry {
	return dsm.entries
}

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.entries {
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}

	if dsm.hasTrailing {
		var err error
		if attr.ByteCode {
			_, err = fmt.Fprintf(output, "%#04x %02x    DB %#02x\n",
				memory.LoadOffset+uint16(len(dsm.entries)*2), dsm.trailing, dsm.trailing)
		} else {
			_, err = fmt.Fprintf(output, "DB %#02x\n", dsm.trailing)
		}
		if err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}

	return nil
}

// WriteEntry writes a single disassembled entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e Entry) error {
	var err error
	if attr.ByteCode {
		_, err = fmt.Fprintf(output, "%#04x %04x  %s\n", e.Address, e.OpCode, e.String())
	} else {
		_, err = fmt.Fprintf(output, "%s\n", e.String())
	}
	if err != nil {
		return curated.Errorf("disassembly: %v", err)
	}
	return nil
}
