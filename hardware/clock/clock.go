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

package clock

import (
	"time"

	"github.com/Barbatrou/fish-n-chips/curated"
	"github.com/Barbatrou/fish-n-chips/hardware/timer"
)

// sentinel error for configuration mistakes
const badRate = "clock: %s rate must be a positive integer: %d"

// Core is the interface the Scheduler requires of the machine it is
// pacing. In practice the only implementation is the hardware.Machine
// type.
type Core interface {
	Step() error
	TickTimers()
	Waiting() bool
	ResumeOnPress() bool
	SoundActive() bool
}

// Renderer implementations are signalled at every frame boundary. The
// renderer is expected to already have access to the display it presents.
type Renderer interface {
	NewFrame() error
}

// AudioMixer implementations are told at every frame boundary whether the
// sound timer is currently active.
type AudioMixer interface {
	SetBeep(active bool) error
	EndMixing() error
}

// the three deadline types
type event int

const (
	stepEvent event = iota
	tickEvent
	frameEvent
)

// Scheduler interleaves instruction steps, timer ticks and frame signals
// according to three independent deadlines.
type Scheduler struct {
	core Core

	renderers []Renderer
	mixers    []AudioMixer

	state State

	// the fault that halted the scheduler. sticky
	fault error

	stepPeriod  time.Duration
	tickPeriod  time.Duration
	framePeriod time.Duration

	stepDeadline  time.Time
	tickDeadline  time.Time
	frameDeadline time.Time

	started bool
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The returned scheduler is configured with the default instruction
// and frame rates.
func NewScheduler(core Core) (*Scheduler, error) {
	sch := &Scheduler{
		core:       core,
		state:      Running,
		tickPeriod: time.Second / timer.TickRate,
	}

	err := sch.SetRates(DefaultInstructionRate, DefaultFrameRate)
	if err != nil {
		return nil, err
	}

	return sch, nil
}

// SetRates changes the instruction and frame rates. The timer rate is
// fixed at sixty hertz and cannot be changed.
func (sch *Scheduler) SetRates(instructionHz int, frameHz int) error {
	if instructionHz <= 0 {
		return curated.Errorf(badRate, "instruction", instructionHz)
	}
	if frameHz <= 0 {
		return curated.Errorf(badRate, "frame", frameHz)
	}

	sch.stepPeriod = time.Second / time.Duration(instructionHz)
	sch.framePeriod = time.Second / time.Duration(frameHz)

	return nil
}

// AddRenderer attaches a renderer to the frame-ready signal.
func (sch *Scheduler) AddRenderer(r Renderer) {
	sch.renderers = append(sch.renderers, r)
}

// AddMixer attaches an audio mixer to the frame-ready signal.
func (sch *Scheduler) AddMixer(m AudioMixer) {
	sch.mixers = append(sch.mixers, m)
}

// State returns the scheduler's current state.
func (sch *Scheduler) State() State {
	return sch.state
}

// Fault returns the error that halted the scheduler, or nil if the
// scheduler has not halted.
func (sch *Scheduler) Fault() error {
	return sch.fault
}

// Start arms the three deadlines relative to the supplied time. Starting
// an already started scheduler rearms every deadline. Starting a halted
// scheduler has no effect.
func (sch *Scheduler) Start(now time.Time) {
	if sch.state == Halted {
		return
	}

	sch.stepDeadline = now.Add(sch.stepPeriod)
	sch.tickDeadline = now.Add(sch.tickPeriod)
	sch.frameDeadline = now.Add(sch.framePeriod)
	sch.started = true
}

// NextDeadline returns the soonest of the three armed deadlines. Hosts
// that sleep between calls to Advance() can use this to decide for how
// long.
func (sch *Scheduler) NextDeadline() time.Time {
	d := sch.stepDeadline
	if sch.tickDeadline.Before(d) {
		d = sch.tickDeadline
	}
	if sch.frameDeadline.Before(d) {
		d = sch.frameDeadline
	}
	return d
}

// Advance processes every deadline that has passed at the supplied time,
// soonest first. Coinciding deadlines are processed in a fixed order:
// instruction step, then timer tick, then frame signal.
//
// Missed deadlines are always made up. The number of steps, ticks and
// frame signals produced by a period of time is the same however coarsely
// the scheduler is advanced through it.
//
// Once the scheduler has halted, Advance() returns the halting fault
// without touching the machine.
func (sch *Scheduler) Advance(now time.Time) error {
	if sch.state == Halted {
		return sch.fault
	}

	if !sch.started {
		sch.Start(now)
	}

	for {
		deadline := sch.stepDeadline
		ev := stepEvent
		if sch.tickDeadline.Before(deadline) {
			deadline = sch.tickDeadline
			ev = tickEvent
		}
		if sch.frameDeadline.Before(deadline) {
			deadline = sch.frameDeadline
			ev = frameEvent
		}

		if deadline.After(now) {
			return nil
		}

		switch ev {
		case stepEvent:
			sch.stepDeadline = sch.stepDeadline.Add(sch.stepPeriod)
			if err := sch.step(); err != nil {
				sch.halt(err)
				return err
			}
		case tickEvent:
			sch.tickDeadline = sch.tickDeadline.Add(sch.tickPeriod)
			sch.core.TickTimers()
		case frameEvent:
			sch.frameDeadline = sch.frameDeadline.Add(sch.framePeriod)
			if err := sch.newFrame(); err != nil {
				sch.halt(err)
				return err
			}
		}
	}
}

// a single instruction deadline. while the machine is waiting for a key
// the deadline polls for a qualifying press instead of stepping.
func (sch *Scheduler) step() error {
	if sch.state == WaitingForKey {
		if sch.core.ResumeOnPress() {
			sch.state = Running
		}
		return nil
	}

	if err := sch.core.Step(); err != nil {
		return err
	}

	if sch.core.Waiting() {
		sch.state = WaitingForKey
	}

	return nil
}

// signal every attached renderer and mixer
func (sch *Scheduler) newFrame() error {
	for _, r := range sch.renderers {
		if err := r.NewFrame(); err != nil {
			return curated.Errorf("clock: %v", err)
		}
	}

	active := sch.core.SoundActive()
	for _, m := range sch.mixers {
		if err := m.SetBeep(active); err != nil {
			return curated.Errorf("clock: %v", err)
		}
	}

	return nil
}

func (sch *Scheduler) halt(err error) {
	sch.state = Halted
	sch.fault = err
}

// End closes every attached audio mixer. The scheduler should not be
// advanced after a call to End().
func (sch *Scheduler) End() error {
	for _, m := range sch.mixers {
		if err := m.EndMixing(); err != nil {
			return curated.Errorf("clock: %v", err)
		}
	}
	return nil
}
