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

// Package instructions defines the CHIP-8 instruction set as a closed table
// of definitions. Every documented instruction pattern has exactly one entry;
// an opcode word either matches one definition or it is not an instruction.
//
// Decode() turns an opcode word into an Instruction, the definition plus its
// decoded operand fields. Decoding happens once per fetch; the executor
// switches on the Operation value and never inspects the raw word again. The
// disassembler uses the same table, which keeps the two in agreement about
// what is and is not an instruction.
package instructions

import "fmt"

// Operation identifies what an instruction does. One value per definition in
// the table.
type Operation int

// List of operations in the instruction set.
const (
	ClearScreen Operation = iota // 00E0
	Return                       // 00EE
	Jump                         // 1NNN
	Call                         // 2NNN
	SkipEqualValue               // 3XKK
	SkipNotEqualValue            // 4XKK
	SkipEqualRegister            // 5XY0
	LoadValue                    // 6XKK
	AddValue                     // 7XKK
	Move                         // 8XY0
	Or                           // 8XY1
	And                          // 8XY2
	Xor                          // 8XY3
	Add                          // 8XY4
	Sub                          // 8XY5
	ShiftRight                   // 8XY6
	SubReverse                   // 8XY7
	ShiftLeft                    // 8XYE
	SkipNotEqualRegister         // 9XY0
	LoadIndex                    // ANNN
	JumpOffset                   // BNNN
	Random                       // CXKK
	Draw                         // DXYN
	SkipPressed                  // EX9E
	SkipNotPressed               // EXA1
	ReadDelay                    // FX07
	WaitKey                      // FX0A
	SetDelay                     // FX15
	SetSound                     // FX18
	AddIndex                     // FX1E
	LoadGlyph                    // FX29
	StoreDigits                  // FX33
	StoreRegisters               // FX55
	ReadRegisters                // FX65
)

// AddressingMode describes which fields of the opcode word an instruction
// uses for its operands.
type AddressingMode int

// List of addressing modes.
const (
	Implied       AddressingMode = iota // no operands
	Address                             // NNN
	RegisterValue                       // X, KK
	RegisterPair                        // X, Y
	Register                            // X
	Sprite                              // X, Y, N (the draw instruction)
)

// Definition defines one instruction pattern in the instruction set. An
// opcode word matches the definition when masking it with Mask yields
// Pattern.
//
// The Format string rebuilds the conventional assembly for the instruction.
// Its verbs correspond to the fields named by the AddressingMode, in the
// order given there.
type Definition struct {
	Operation      Operation
	Mnemonic       string
	Mask           uint16
	Pattern        uint16
	AddressingMode AddressingMode
	Format         string
}

func (defn Definition) String() string {
	return fmt.Sprintf("%04x/%04x %s", defn.Pattern, defn.Mask, defn.Mnemonic)
}

// Definitions is the complete instruction set. The order of entries is the
// order patterns are tried during decoding; no opcode word matches more than
// one entry so the order is cosmetic.
var Definitions = []Definition{
	{ClearScreen, "CLS", 0xffff, 0x00e0, Implied, "CLS"},
	{Return, "RET", 0xffff, 0x00ee, Implied, "RET"},
	{Jump, "JP", 0xf000, 0x1000, Address, "JP %#05x"},
	{Call, "CALL", 0xf000, 0x2000, Address, "CALL %#05x"},
	{SkipEqualValue, "SE", 0xf000, 0x3000, RegisterValue, "SE V%X, %#04x"},
	{SkipNotEqualValue, "SNE", 0xf000, 0x4000, RegisterValue, "SNE V%X, %#04x"},
	{SkipEqualRegister, "SE", 0xf00f, 0x5000, RegisterPair, "SE V%X, V%X"},
	{LoadValue, "LD", 0xf000, 0x6000, RegisterValue, "LD V%X, %#04x"},
	{AddValue, "ADD", 0xf000, 0x7000, RegisterValue, "ADD V%X, %#04x"},
	{Move, "LD", 0xf00f, 0x8000, RegisterPair, "LD V%X, V%X"},
	{Or, "OR", 0xf00f, 0x8001, RegisterPair, "OR V%X, V%X"},
	{And, "AND", 0xf00f, 0x8002, RegisterPair, "AND V%X, V%X"},
	{Xor, "XOR", 0xf00f, 0x8003, RegisterPair, "XOR V%X, V%X"},
	{Add, "ADD", 0xf00f, 0x8004, RegisterPair, "ADD V%X, V%X"},
	{Sub, "SUB", 0xf00f, 0x8005, RegisterPair, "SUB V%X, V%X"},
	{ShiftRight, "SHR", 0xf00f, 0x8006, RegisterPair, "SHR V%X, V%X"},
	{SubReverse, "SUBN", 0xf00f, 0x8007, RegisterPair, "SUBN V%X, V%X"},
	{ShiftLeft, "SHL", 0xf00f, 0x800e, RegisterPair, "SHL V%X, V%X"},
	{SkipNotEqualRegister, "SNE", 0xf00f, 0x9000, RegisterPair, "SNE V%X, V%X"},
	{LoadIndex, "LD", 0xf000, 0xa000, Address, "LD I, %#05x"},
	{JumpOffset, "JP", 0xf000, 0xb000, Address, "JP V0, %#05x"},
	{Random, "RND", 0xf000, 0xc000, RegisterValue, "RND V%X, %#04x"},
	{Draw, "DRW", 0xf000, 0xd000, Sprite, "DRW V%X, V%X, %d"},
	{SkipPressed, "SKP", 0xf0ff, 0xe09e, Register, "SKP V%X"},
	{SkipNotPressed, "SKNP", 0xf0ff, 0xe0a1, Register, "SKNP V%X"},
	{ReadDelay, "LD", 0xf0ff, 0xf007, Register, "LD V%X, DT"},
	{WaitKey, "LD", 0xf0ff, 0xf00a, Register, "LD V%X, K"},
	{SetDelay, "LD", 0xf0ff, 0xf015, Register, "LD DT, V%X"},
	{SetSound, "LD", 0xf0ff, 0xf018, Register, "LD ST, V%X"},
	{AddIndex, "ADD", 0xf0ff, 0xf01e, Register, "ADD I, V%X"},
	{LoadGlyph, "LD", 0xf0ff, 0xf029, Register, "LD F, V%X"},
	{StoreDigits, "LD", 0xf0ff, 0xf033, Register, "LD B, V%X"},
	{StoreRegisters, "LD", 0xf0ff, 0xf055, Register, "LD [I], V%X"},
	{ReadRegisters, "LD", 0xf0ff, 0xf065, Register, "LD V%X, [I]"},
}

// Instruction is a single decoded instruction; the matched definition along
// with the operand fields extracted from the opcode word. Fields that the
// addressing mode does not name are zero.
type Instruction struct {
	Defn   *Definition
	OpCode uint16
	X      uint8
	Y      uint8
	KK     uint8
	NNN    uint16
	N      uint8
}

// Decode matches an opcode word against the instruction set. Returns false
// if the word matches no definition.
func Decode(opcode uint16) (Instruction, bool) {
	for i := range Definitions {
		defn := &Definitions[i]
		if opcode&defn.Mask != defn.Pattern {
			continue // for loop
		}

		ins := Instruction{
			Defn:   defn,
			OpCode: opcode,
		}

		switch defn.AddressingMode {
		case Implied:
		case Address:
			ins.NNN = opcode & 0x0fff
		case RegisterValue:
			ins.X = uint8(opcode>>8) & 0x0f
			ins.KK = uint8(opcode)
		case RegisterPair:
			ins.X = uint8(opcode>>8) & 0x0f
			ins.Y = uint8(opcode>>4) & 0x0f
		case Register:
			ins.X = uint8(opcode>>8) & 0x0f
		case Sprite:
			ins.X = uint8(opcode>>8) & 0x0f
			ins.Y = uint8(opcode>>4) & 0x0f
			ins.N = uint8(opcode) & 0x0f
		}

		return ins, true
	}

	return Instruction{}, false
}

// String returns the conventional assembly for the instruction.
func (ins Instruction) String() string {
	switch ins.Defn.AddressingMode {
	case Address:
		return fmt.Sprintf(ins.Defn.Format, ins.NNN)
	case RegisterValue:
		return fmt.Sprintf(ins.Defn.Format, ins.X, ins.KK)
	case RegisterPair:
		return fmt.Sprintf(ins.Defn.Format, ins.X, ins.Y)
	case Register:
		return fmt.Sprintf(ins.Defn.Format, ins.X)
	case Sprite:
		return fmt.Sprintf(ins.Defn.Format, ins.X, ins.Y, ins.N)
	}
	return ins.Defn.Format
}
