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

package cpu_test

import (
	"testing"

	"github.com/Barbatrou/fish-n-chips/curated"
	"github.com/Barbatrou/fish-n-chips/environment"
	"github.com/Barbatrou/fish-n-chips/hardware/cpu"
	"github.com/Barbatrou/fish-n-chips/hardware/keypad"
	"github.com/Barbatrou/fish-n-chips/hardware/memory"
	"github.com/Barbatrou/fish-n-chips/hardware/timer"
	"github.com/Barbatrou/fish-n-chips/hardware/video"
	"github.com/Barbatrou/fish-n-chips/test"
)

// stepper is a fixed value standing in for the machine's step count
type stepper uint64

func (s stepper) StepCount() uint64 {
	return uint64(s)
}

// everything a CPU needs to run, with a program already loaded
type testMachine struct {
	mem *memory.Memory
	dsp *video.Display
	key *keypad.Keypad
	tmr *timer.Pair
	cpu *cpu.CPU
}

func newTestMachine(t *testing.T, prog ...uint8) *testMachine {
	t.Helper()

	env, err := environment.NewEnvironment("test", stepper(0))
	test.DemandSuccess(t, err)
	env.Normalise()

	mch := &testMachine{
		mem: memory.NewMemory(),
		dsp: video.NewDisplay(),
		key: keypad.NewKeypad(),
		tmr: timer.NewPair(),
	}
	mch.cpu = cpu.NewCPU(env, mch.mem, mch.dsp, mch.key, mch.tmr)

	test.DemandSuccess(t, mch.mem.LoadProgram(prog))
	return mch
}

func (mch *testMachine) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, mch.cpu.Step())
	}
}

func TestRegisterRoundTrip(t *testing.T) {
	// load every register through the load instruction and read it back
	prog := make([]uint8, 0, 32)
	for r := 0; r < 16; r++ {
		prog = append(prog, uint8(0x60+r), uint8(0x10+r))
	}

	mch := newTestMachine(t, prog...)
	mch.step(t, 16)

	for r := 0; r < 16; r++ {
		test.Equate(t, mch.cpu.V[r], 0x10+r)
	}
}

func TestProgramCounterAdvance(t *testing.T) {
	mch := newTestMachine(t, 0x60, 0x01, 0x70, 0x01)

	test.Equate(t, mch.cpu.PC, 0x0200)
	mch.step(t, 1)
	test.Equate(t, mch.cpu.PC, 0x0202)
	mch.step(t, 1)
	test.Equate(t, mch.cpu.PC, 0x0204)
}

func TestProgramCounterWrap(t *testing.T) {
	// a non-control-flow instruction at the very top of memory. the
	// program counter wraps inside the addressable space
	prog := make([]uint8, memory.MaxProgramSize)
	prog[0x0dfe] = 0x60
	prog[0x0dff] = 0x01

	mch := newTestMachine(t, prog...)
	mch.cpu.PC = 0x0ffe
	mch.step(t, 1)
	test.Equate(t, mch.cpu.PC, 0x0000)
	test.Equate(t, mch.cpu.V[0], 0x01)
}

func TestJump(t *testing.T) {
	mch := newTestMachine(t, 0x12, 0x28)
	mch.step(t, 1)
	test.Equate(t, mch.cpu.PC, 0x0228)
}

func TestJumpOffset(t *testing.T) {
	mch := newTestMachine(t, 0x60, 0x04, 0xb3, 0x00)
	mch.step(t, 2)
	test.Equate(t, mch.cpu.PC, 0x0304)
}

func TestCallReturn(t *testing.T) {
	mch := newTestMachine(t,
		0x22, 0x04, // 0x200 CALL 0x204
		0x00, 0x00, // 0x202 (not executed)
		0x00, 0xee, // 0x204 RET
	)

	mch.step(t, 1)
	test.Equate(t, mch.cpu.PC, 0x0204)
	test.Equate(t, mch.cpu.Stack.Depth(), 1)

	// return lands at the instruction after the call
	mch.step(t, 1)
	test.Equate(t, mch.cpu.PC, 0x0202)
	test.Equate(t, mch.cpu.Stack.Depth(), 0)
}

func TestSkipOnValue(t *testing.T) {
	// SE skips when equal
	mch := newTestMachine(t, 0x30, 0x00)
	mch.step(t, 1)
	test.Equate(t, mch.cpu.PC, 0x0204)

	mch = newTestMachine(t, 0x30, 0x01)
	mch.step(t, 1)
	test.Equate(t, mch.cpu.PC, 0x0202)

	// SNE skips when not equal
	mch = newTestMachine(t, 0x40, 0x01)
	mch.step(t, 1)
	test.Equate(t, mch.cpu.PC, 0x0204)

	mch = newTestMachine(t, 0x40, 0x00)
	mch.step(t, 1)
	test.Equate(t, mch.cpu.PC, 0x0202)
}

func TestSkipOnRegister(t *testing.T) {
	mch := newTestMachine(t, 0x50, 0x10)
	mch.step(t, 1)
	test.Equate(t, mch.cpu.PC, 0x0204)

	mch = newTestMachine(t, 0x60, 0x05, 0x90, 0x10)
	mch.step(t, 2)
	test.Equate(t, mch.cpu.PC, 0x0206)
}

func TestSkipOnKey(t *testing.T) {
	// SKP with the key up does not skip
	mch := newTestMachine(t, 0xe0, 0x9e)
	mch.step(t, 1)
	test.Equate(t, mch.cpu.PC, 0x0202)

	// SKP with the key down skips
	mch = newTestMachine(t, 0xe0, 0x9e)
	mch.key.SetPressed(0x0, true)
	mch.step(t, 1)
	test.Equate(t, mch.cpu.PC, 0x0204)

	// SKNP is the reverse
	mch = newTestMachine(t, 0xe0, 0xa1)
	mch.step(t, 1)
	test.Equate(t, mch.cpu.PC, 0x0204)

	mch = newTestMachine(t, 0xe0, 0xa1)
	mch.key.SetPressed(0x0, true)
	mch.step(t, 1)
	test.Equate(t, mch.cpu.PC, 0x0202)
}

func TestArithmeticCarry(t *testing.T) {
	// 200 + 100 wraps with the carry flag set
	mch := newTestMachine(t, 0x60, 0xc8, 0x61, 0x64, 0x80, 0x14)
	mch.step(t, 3)
	test.Equate(t, mch.cpu.V[0], 0x2c)
	test.Equate(t, mch.cpu.V[0xf], 1)

	// no carry
	mch = newTestMachine(t, 0x60, 0x0a, 0x61, 0x14, 0x80, 0x14)
	mch.step(t, 3)
	test.Equate(t, mch.cpu.V[0], 0x1e)
	test.Equate(t, mch.cpu.V[0xf], 0)

	// the immediate add never touches the flag
	mch = newTestMachine(t, 0x60, 0xff, 0x70, 0x02)
	mch.step(t, 2)
	test.Equate(t, mch.cpu.V[0], 0x01)
	test.Equate(t, mch.cpu.V[0xf], 0)
}

func TestSubtractionBorrow(t *testing.T) {
	// VF is the inverse of the borrow: set when no borrow was needed
	mch := newTestMachine(t, 0x60, 0x14, 0x61, 0x0a, 0x80, 0x15)
	mch.step(t, 3)
	test.Equate(t, mch.cpu.V[0], 0x0a)
	test.Equate(t, mch.cpu.V[0xf], 1)

	mch = newTestMachine(t, 0x60, 0x0a, 0x61, 0x14, 0x80, 0x15)
	mch.step(t, 3)
	test.Equate(t, mch.cpu.V[0], 0xf6)
	test.Equate(t, mch.cpu.V[0xf], 0)

	// SUBN is the reverse subtraction
	mch = newTestMachine(t, 0x60, 0x0a, 0x61, 0x14, 0x80, 0x17)
	mch.step(t, 3)
	test.Equate(t, mch.cpu.V[0], 0x0a)
	test.Equate(t, mch.cpu.V[0xf], 1)

	mch = newTestMachine(t, 0x60, 0x14, 0x61, 0x0a, 0x80, 0x17)
	mch.step(t, 3)
	test.Equate(t, mch.cpu.V[0], 0xf6)
	test.Equate(t, mch.cpu.V[0xf], 0)
}

func TestLogicOps(t *testing.T) {
	mch := newTestMachine(t, 0x60, 0xf0, 0x61, 0x0f, 0x80, 0x11)
	mch.step(t, 3)
	test.Equate(t, mch.cpu.V[0], 0xff)

	mch = newTestMachine(t, 0x60, 0xf0, 0x61, 0x0f, 0x80, 0x12)
	mch.step(t, 3)
	test.Equate(t, mch.cpu.V[0], 0x00)

	mch = newTestMachine(t, 0x60, 0xff, 0x61, 0x0f, 0x80, 0x13)
	mch.step(t, 3)
	test.Equate(t, mch.cpu.V[0], 0xf0)
}

// shifts read the source register Vy. this is the behaviour the rest of the
// project is built around; a change here is a compatibility break.
func TestShiftReadsSourceRegister(t *testing.T) {
	// SHR V0, V1
	mch := newTestMachine(t, 0x61, 0xb5, 0x80, 0x16)
	mch.step(t, 2)
	test.Equate(t, mch.cpu.V[0], 0x5a)
	test.Equate(t, mch.cpu.V[1], 0xb5)
	test.Equate(t, mch.cpu.V[0xf], 1)

	// SHL V2, V1
	mch = newTestMachine(t, 0x61, 0xb5, 0x82, 0x1e)
	mch.step(t, 2)
	test.Equate(t, mch.cpu.V[2], 0x6a)
	test.Equate(t, mch.cpu.V[1], 0xb5)
	test.Equate(t, mch.cpu.V[0xf], 1)

	// shifted-out bit of zero leaves the flag unset
	mch = newTestMachine(t, 0x61, 0x02, 0x80, 0x16)
	mch.step(t, 2)
	test.Equate(t, mch.cpu.V[0], 0x01)
	test.Equate(t, mch.cpu.V[0xf], 0)
}

func TestFlagWinsOverResult(t *testing.T) {
	// when VF is also the destination the flag overwrites the result
	mch := newTestMachine(t, 0x6f, 0xc8, 0x61, 0x64, 0x8f, 0x14)
	mch.step(t, 3)
	test.Equate(t, mch.cpu.V[0xf], 1)
}

func TestIndexRegister(t *testing.T) {
	mch := newTestMachine(t, 0xa3, 0x00, 0x60, 0x05, 0xf0, 0x1e)
	mch.step(t, 1)
	test.Equate(t, mch.cpu.I, 0x0300)

	// ADD I has no flag side effect
	mch.step(t, 2)
	test.Equate(t, mch.cpu.I, 0x0305)
	test.Equate(t, mch.cpu.V[0xf], 0)
}

// the bulk transfer instructions walk the index register over the
// transferred range, leaving I = I + X + 1. pinned alongside the shift
// behaviour above.
func TestBulkTransferAdvancesIndex(t *testing.T) {
	mch := newTestMachine(t,
		0x60, 0x11, // LD V0, 0x11
		0x61, 0x22, // LD V1, 0x22
		0x62, 0x33, // LD V2, 0x33
		0xa3, 0x00, // LD I, 0x300
		0xf2, 0x55, // LD [I], V2
	)
	mch.step(t, 5)

	for i, want := range []int{0x11, 0x22, 0x33} {
		v, err := mch.mem.ReadByte(uint16(0x300 + i))
		test.ExpectedSuccess(t, err)
		test.Equate(t, v, want)
	}
	test.Equate(t, mch.cpu.I, 0x0303)

	// and the load direction
	mch = newTestMachine(t,
		0xa3, 0x00, // LD I, 0x300
		0xf2, 0x65, // LD V2, [I]
	)
	test.DemandSuccess(t, mch.mem.WriteByte(0x300, 0xaa))
	test.DemandSuccess(t, mch.mem.WriteByte(0x301, 0xbb))
	test.DemandSuccess(t, mch.mem.WriteByte(0x302, 0xcc))

	mch.step(t, 2)
	test.Equate(t, mch.cpu.V[0], 0xaa)
	test.Equate(t, mch.cpu.V[1], 0xbb)
	test.Equate(t, mch.cpu.V[2], 0xcc)
	test.Equate(t, mch.cpu.I, 0x0303)
}

func TestBCD(t *testing.T) {
	mch := newTestMachine(t, 0x65, 0xea, 0xa3, 0x00, 0xf5, 0x33)
	mch.step(t, 3)

	for i, want := range []int{2, 3, 4} {
		v, err := mch.mem.ReadByte(uint16(0x300 + i))
		test.ExpectedSuccess(t, err)
		test.Equate(t, v, want)
	}
	test.Equate(t, mch.cpu.I, 0x0300)
}

func TestFontGlyph(t *testing.T) {
	mch := newTestMachine(t, 0x63, 0x0a, 0xf3, 0x29)
	mch.step(t, 2)
	test.Equate(t, mch.cpu.I, memory.FontGlyphAddress(0x0a))
}

func TestTimerInstructions(t *testing.T) {
	mch := newTestMachine(t,
		0x6a, 0x0a, // LD VA, 10
		0xfa, 0x15, // LD DT, VA
		0xfa, 0x18, // LD ST, VA
		0xf0, 0x07, // LD V0, DT
	)
	mch.step(t, 3)
	test.Equate(t, mch.tmr.Delay(), 10)
	test.Equate(t, mch.tmr.Sound(), 10)

	mch.tmr.Tick()
	mch.tmr.Tick()
	mch.tmr.Tick()

	mch.step(t, 1)
	test.Equate(t, mch.cpu.V[0], 7)
}

func TestClearThenDraw(t *testing.T) {
	mch := newTestMachine(t,
		0xa2, 0x06, // LD I, 0x206
		0x00, 0xe0, // CLS
		0xd0, 0x01, // DRW V0, V0, 1
		0xff, // the sprite: one row of eight set pixels
	)
	mch.step(t, 3)

	for x := 0; x < 8; x++ {
		test.Equate(t, mch.dsp.Pixel(x, 0), true)
	}
	test.Equate(t, mch.dsp.Pixel(8, 0), false)
	test.Equate(t, mch.cpu.V[0xf], 0)

	// drawing the same sprite again erases it and reports the collision
	mch.cpu.PC = 0x0204
	mch.step(t, 1)
	test.Equate(t, mch.dsp.Pixel(0, 0), false)
	test.Equate(t, mch.cpu.V[0xf], 1)
}

func TestDrawFontGlyph(t *testing.T) {
	// the font glyphs in the reserved area are readable sprite data
	mch := newTestMachine(t, 0x60, 0x01, 0xf0, 0x29, 0xd1, 0x15)
	mch.step(t, 3)

	// top row of the '1' glyph is 0x20: a single pixel in the third
	// column
	test.Equate(t, mch.dsp.Pixel(0, 0), false)
	test.Equate(t, mch.dsp.Pixel(2, 0), true)
}

func TestWaitKey(t *testing.T) {
	mch := newTestMachine(t, 0xf3, 0x0a, 0x60, 0x01)

	// a key held down before the wait begins does not satisfy it
	mch.key.SetPressed(0x7, true)

	mch.step(t, 1)
	test.Equate(t, mch.cpu.Waiting(), true)
	test.Equate(t, mch.cpu.PC, 0x0202)
	test.Equate(t, mch.cpu.ResumeOnPress(), false)

	// stepping while waiting is a no-op
	mch.step(t, 1)
	test.Equate(t, mch.cpu.PC, 0x0202)

	// a fresh press ends the wait and lands in the register
	mch.key.SetPressed(0x4, true)
	test.Equate(t, mch.cpu.ResumeOnPress(), true)
	test.Equate(t, mch.cpu.Waiting(), false)
	test.Equate(t, mch.cpu.V[3], 0x04)

	// execution continues normally
	mch.step(t, 1)
	test.Equate(t, mch.cpu.V[0], 0x01)
}

func TestRandom(t *testing.T) {
	// the random byte is masked with KK
	mch := newTestMachine(t, 0xc0, 0x7b)
	mch.step(t, 1)
	test.Equate(t, mch.cpu.V[0]&0x84, 0)

	// normalised environments draw the same numbers
	mch2 := newTestMachine(t, 0xc0, 0x7b)
	mch2.step(t, 1)
	test.Equate(t, mch.cpu.V[0], mch2.cpu.V[0])
}

func TestUnknownOpcode(t *testing.T) {
	// SYS (0NNN) is not part of the documented set
	mch := newTestMachine(t, 0x01, 0x23)
	err := mch.cpu.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.UnknownOpcode))

	// a gap in the 8XYn group
	mch = newTestMachine(t, 0x80, 0x18)
	err = mch.cpu.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.UnknownOpcode))
}

func TestMemoryFaults(t *testing.T) {
	// drawing past the top of memory
	mch := newTestMachine(t, 0xaf, 0xff, 0xd0, 0x02)
	mch.step(t, 1)
	err := mch.cpu.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Has(err, memory.AddressOutOfRange))

	// storing registers into the reserved area
	mch = newTestMachine(t, 0xa1, 0x00, 0xf0, 0x55)
	mch.step(t, 1)
	err = mch.cpu.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Has(err, memory.AddressOutOfRange))
}

func TestStackFaults(t *testing.T) {
	// return with no call
	mch := newTestMachine(t, 0x00, 0xee)
	err := mch.cpu.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Has(err, cpu.StackUnderflow))

	// unbounded recursion
	mch = newTestMachine(t, 0x22, 0x00)
	mch.step(t, cpu.StackDepth)
	err = mch.cpu.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Has(err, cpu.StackOverflow))
}

func TestReset(t *testing.T) {
	mch := newTestMachine(t, 0x60, 0xff, 0xa3, 0x00, 0x22, 0x08)
	mch.step(t, 3)

	mch.cpu.Reset()
	test.Equate(t, mch.cpu.PC, memory.LoadOffset)
	test.Equate(t, mch.cpu.I, 0x0000)
	test.Equate(t, mch.cpu.V[0], 0x00)
	test.Equate(t, mch.cpu.Stack.Depth(), 0)
}
