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

package hardware

import (
	"strings"

	"github.com/Barbatrou/fish-n-chips/environment"
	"github.com/Barbatrou/fish-n-chips/hardware/cpu"
	"github.com/Barbatrou/fish-n-chips/hardware/keypad"
	"github.com/Barbatrou/fish-n-chips/hardware/memory"
	"github.com/Barbatrou/fish-n-chips/hardware/timer"
	"github.com/Barbatrou/fish-n-chips/hardware/video"
	"github.com/Barbatrou/fish-n-chips/romloader"
)

// Machine is the main container for the emulated components of the CHIP-8
// machine.
type Machine struct {
	Env *environment.Environment

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *video.Display
	Keypad  *keypad.Keypad
	Timer   *timer.Pair

	// the number of instructions executed since the last reset
	steps uint64

	// the attached program, kept so that Reset() can reload it
	prog []uint8
}

// NewMachine creates a new CHIP-8 machine and everything associated with
// it. It is used for all aspects of emulation: regular play and
// performance measurement.
func NewMachine(label environment.Label) (*Machine, error) {
	mch := &Machine{}

	env, err := environment.NewEnvironment(label, mch)
	if err != nil {
		return nil, err
	}
	mch.Env = env

	mch.Mem = memory.NewMemory()
	mch.Display = video.NewDisplay()
	mch.Keypad = keypad.NewKeypad()
	mch.Timer = timer.NewPair()
	mch.CPU = cpu.NewCPU(env, mch.Mem, mch.Display, mch.Keypad, mch.Timer)

	return mch, nil
}

// Attach loads the program specified by the loader into the machine,
// resetting the machine first. The data is loaded through the loader if it
// has not been loaded already.
func (mch *Machine) Attach(ld romloader.Loader) error {
	err := ld.Load()
	if err != nil {
		return err
	}

	mch.prog = ld.Data

	return mch.Reset()
}

// Reset the machine to its initial state and reload the attached program.
func (mch *Machine) Reset() error {
	mch.steps = 0
	mch.Mem.Reset()
	mch.Display.Reset()
	mch.Keypad.Reset()
	mch.Timer.Reset()
	mch.CPU.Reset()

	if mch.prog != nil {
		if err := mch.Mem.LoadProgram(mch.prog); err != nil {
			return err
		}
	}

	return nil
}

// StepCount returns the number of instructions executed since the last
// reset. It implements the random.Steps interface, tying the random number
// generator to the progress of the emulation.
func (mch *Machine) StepCount() uint64 {
	return mch.steps
}

// Step the machine one instruction. Stepping a machine that is waiting for
// a key has no effect.
func (mch *Machine) Step() error {
	if mch.CPU.Waiting() {
		return nil
	}

	mch.steps++
	return mch.CPU.Step()
}

// TickTimers decrements the delay and sound timers. Called at sixty hertz
// regardless of the instruction rate.
func (mch *Machine) TickTimers() {
	mch.Timer.Tick()
}

// Waiting returns true if the machine is suspended on the blocking
// key-wait instruction.
func (mch *Machine) Waiting() bool {
	return mch.CPU.Waiting()
}

// ResumeOnPress completes the blocking key-wait instruction if a
// qualifying key press has arrived. Returns true if the machine is not (or
// is no longer) waiting.
func (mch *Machine) ResumeOnPress() bool {
	return mch.CPU.ResumeOnPress()
}

// SoundActive returns true if the sound timer is running.
func (mch *Machine) SoundActive() bool {
	return mch.Timer.SoundActive()
}

func (mch *Machine) String() string {
	s := strings.Builder{}
	s.WriteString(mch.CPU.String())
	s.WriteString(mch.Timer.String())
	return s.String()
}
