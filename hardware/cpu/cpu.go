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
	"github.com/Barbatrou/fish-n-chips/environment"
	"github.com/Barbatrou/fish-n-chips/hardware/cpu/instructions"
	"github.com/Barbatrou/fish-n-chips/hardware/keypad"
	"github.com/Barbatrou/fish-n-chips/hardware/memory"
	"github.com/Barbatrou/fish-n-chips/hardware/timer"
	"github.com/Barbatrou/fish-n-chips/hardware/video"
)

// UnknownOpcode is returned when the fetched word matches nothing in the
// instruction set. Always fatal; skipping an undecodable word would corrupt
// state silently.
const UnknownOpcode = "unknown opcode: %#04x (pc %#04x)"

// faults raised by the components the instruction touched are given the
// program counter context with this pattern
const executionError = "cpu: pc %#04x: %v"

// CPU implements the fetch-decode-execute cycle of the CHIP-8 machine.
//
// Registers are exported fields and can be accessed directly. VF is register
// 15; arithmetic and drawing instructions use it as the flag register, which
// means programs should not keep values in it.
type CPU struct {
	env *environment.Environment

	mem *memory.Memory
	dsp *video.Display
	key *keypad.Keypad
	tmr *timer.Pair

	// V are the sixteen general purpose registers
	V [16]uint8

	// I is the index register, the only register wide enough to hold a
	// memory address
	I uint16

	// PC is the program counter
	PC uint16

	// Stack holds subroutine return addresses
	Stack Stack

	// while waiting for a key press, execution is suspended. waitReg is
	// the register that receives the key code and waitMark is the keypad
	// press count at the moment the wait began
	waiting  bool
	waitReg  uint8
	waitMark uint64
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(env *environment.Environment, mem *memory.Memory, dsp *video.Display, key *keypad.Keypad, tmr *timer.Pair) *CPU {
	cpu := &CPU{
		env: env,
		mem: mem,
		dsp: dsp,
		key: key,
		tmr: tmr,
	}
	cpu.Reset()
	return cpu
}

// Reset the CPU to its power-on state. The program counter points at the
// load offset.
func (cpu *CPU) Reset() {
	for i := range cpu.V {
		cpu.V[i] = 0
	}
	cpu.I = 0
	cpu.PC = memory.LoadOffset
	cpu.Stack.Reset()
	cpu.waiting = false
	cpu.waitReg = 0
	cpu.waitMark = 0
}

// Waiting is true while the CPU is suspended on the wait-for-key
// instruction. While waiting, Step() is a no-op; ResumeOnPress() ends the
// suspension.
func (cpu *CPU) Waiting() bool {
	return cpu.waiting
}

// ResumeOnPress checks whether a key has been pressed since the wait-for-key
// instruction suspended the CPU. If one has, the key code is written to the
// waiting register and the suspension ends. Returns true if the CPU resumed.
//
// Only key presses that happen after the wait begins qualify. A key that was
// already held down does not.
func (cpu *CPU) ResumeOnPress() bool {
	if !cpu.waiting {
		return true
	}

	k, ok := cpu.key.PressSince(cpu.waitMark)
	if !ok {
		return false
	}

	cpu.V[cpu.waitReg] = k
	cpu.waiting = false
	return true
}

// advance the program counter one instruction, wrapping inside the
// addressable space
func (cpu *CPU) advance() {
	cpu.PC = (cpu.PC + 2) % memory.Capacity
}

// Step fetches, decodes and executes one instruction. It has no awareness of
// time; pacing is entirely the responsibility of the clock scheduler.
//
// A returned error is one of the fatal machine faults and carries the
// program counter of the failed instruction. The machine must not be stepped
// again after an error.
func (cpu *CPU) Step() error {
	if cpu.waiting {
		return nil
	}

	pc := cpu.PC

	opcode, err := cpu.mem.ReadWord(pc)
	if err != nil {
		return curated.Errorf(executionError, pc, err)
	}

	// the program counter moves on before execution. control flow
	// instructions see the address of the next instruction, which is what
	// call needs to push as its return address
	cpu.advance()

	ins, ok := instructions.Decode(opcode)
	if !ok {
		return curated.Errorf(UnknownOpcode, opcode, pc)
	}

	if err := cpu.execute(ins); err != nil {
		return curated.Errorf(executionError, pc, err)
	}

	return nil
}

// execute a decoded instruction. the program counter has already moved past
// the instruction; control flow instructions replace it.
func (cpu *CPU) execute(ins instructions.Instruction) error {
	switch ins.Defn.Operation {
	case instructions.ClearScreen:
		cpu.dsp.Clear()

	case instructions.Return:
		addr, err := cpu.Stack.Pop()
		if err != nil {
			return err
		}
		cpu.PC = addr

	case instructions.Jump:
		cpu.PC = ins.NNN

	case instructions.Call:
		if err := cpu.Stack.Push(cpu.PC); err != nil {
			return err
		}
		cpu.PC = ins.NNN

	case instructions.SkipEqualValue:
		if cpu.V[ins.X] == ins.KK {
			cpu.advance()
		}

	case instructions.SkipNotEqualValue:
		if cpu.V[ins.X] != ins.KK {
			cpu.advance()
		}

	case instructions.SkipEqualRegister:
		if cpu.V[ins.X] == cpu.V[ins.Y] {
			cpu.advance()
		}

	case instructions.LoadValue:
		cpu.V[ins.X] = ins.KK

	case instructions.AddValue:
		// no carry flag for the immediate form
		cpu.V[ins.X] += ins.KK

	case instructions.Move:
		cpu.V[ins.X] = cpu.V[ins.Y]

	case instructions.Or:
		cpu.V[ins.X] |= cpu.V[ins.Y]

	case instructions.And:
		cpu.V[ins.X] &= cpu.V[ins.Y]

	case instructions.Xor:
		cpu.V[ins.X] ^= cpu.V[ins.Y]

	case instructions.Add:
		r := uint16(cpu.V[ins.X]) + uint16(cpu.V[ins.Y])
		cpu.V[ins.X] = uint8(r)
		cpu.setFlag(r > 0xff)

	case instructions.Sub:
		// VF is the inverse of the borrow
		borrow := cpu.V[ins.X] >= cpu.V[ins.Y]
		cpu.V[ins.X] -= cpu.V[ins.Y]
		cpu.setFlag(borrow)

	case instructions.ShiftRight:
		// shifts read the source register. see conformance tests
		bit := cpu.V[ins.Y] & 0x01
		cpu.V[ins.X] = cpu.V[ins.Y] >> 1
		cpu.setFlag(bit == 0x01)

	case instructions.SubReverse:
		borrow := cpu.V[ins.Y] >= cpu.V[ins.X]
		cpu.V[ins.X] = cpu.V[ins.Y] - cpu.V[ins.X]
		cpu.setFlag(borrow)

	case instructions.ShiftLeft:
		bit := cpu.V[ins.Y] & 0x80
		cpu.V[ins.X] = cpu.V[ins.Y] << 1
		cpu.setFlag(bit == 0x80)

	case instructions.SkipNotEqualRegister:
		if cpu.V[ins.X] != cpu.V[ins.Y] {
			cpu.advance()
		}

	case instructions.LoadIndex:
		cpu.I = ins.NNN

	case instructions.JumpOffset:
		cpu.PC = (ins.NNN + uint16(cpu.V[0])) % memory.Capacity

	case instructions.Random:
		cpu.V[ins.X] = uint8(cpu.env.Random.Intn(256)) & ins.KK

	case instructions.Draw:
		sprite := make([]uint8, 0, ins.N)
		for i := uint16(0); i < uint16(ins.N); i++ {
			b, err := cpu.mem.ReadByte(cpu.I + i)
			if err != nil {
				return err
			}
			sprite = append(sprite, b)
		}
		cpu.setFlag(cpu.dsp.DrawSprite(cpu.V[ins.X], cpu.V[ins.Y], sprite))

	case instructions.SkipPressed:
		if cpu.key.IsPressed(cpu.V[ins.X]) {
			cpu.advance()
		}

	case instructions.SkipNotPressed:
		if !cpu.key.IsPressed(cpu.V[ins.X]) {
			cpu.advance()
		}

	case instructions.ReadDelay:
		cpu.V[ins.X] = cpu.tmr.Delay()

	case instructions.WaitKey:
		cpu.waiting = true
		cpu.waitReg = ins.X
		cpu.waitMark = cpu.key.Presses()

	case instructions.SetDelay:
		cpu.tmr.SetDelay(cpu.V[ins.X])

	case instructions.SetSound:
		cpu.tmr.SetSound(cpu.V[ins.X])

	case instructions.AddIndex:
		cpu.I += uint16(cpu.V[ins.X])

	case instructions.LoadGlyph:
		cpu.I = memory.FontGlyphAddress(cpu.V[ins.X])

	case instructions.StoreDigits:
		v := cpu.V[ins.X]
		if err := cpu.mem.WriteByte(cpu.I, v/100); err != nil {
			return err
		}
		if err := cpu.mem.WriteByte(cpu.I+1, (v/10)%10); err != nil {
			return err
		}
		if err := cpu.mem.WriteByte(cpu.I+2, v%10); err != nil {
			return err
		}

	case instructions.StoreRegisters:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			if err := cpu.mem.WriteByte(cpu.I+i, cpu.V[i]); err != nil {
				return err
			}
		}
		// the index register walks over the stored range. see
		// conformance tests
		cpu.I += uint16(ins.X) + 1

	case instructions.ReadRegisters:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			b, err := cpu.mem.ReadByte(cpu.I + i)
			if err != nil {
				return err
			}
			cpu.V[i] = b
		}
		cpu.I += uint16(ins.X) + 1
	}

	return nil
}

// setFlag writes the VF register. Flag results always win over the
// arithmetic result when VF is also the destination register.
func (cpu *CPU) setFlag(set bool) {
	if set {
		cpu.V[0xf] = 1
	} else {
		cpu.V[0xf] = 0
	}
}

func (cpu *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("pc=%#04x i=%#04x", cpu.PC, cpu.I))
	if cpu.waiting {
		s.WriteString(fmt.Sprintf(" (waiting on key for V%X)", cpu.waitReg))
	}
	s.WriteString("\n")
	for i := 0; i < len(cpu.V); i++ {
		s.WriteString(fmt.Sprintf("V%X=%02x ", i, cpu.V[i]))
		if i == 7 {
			s.WriteString("\n")
		}
	}
	s.WriteString("\n")
	s.WriteString(cpu.Stack.String())
	return s.String()
}
