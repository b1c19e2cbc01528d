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

// Package random is a random number source for the emulation. Instead of the
// wall clock it is seeded from time within the emulation, meaning that two
// machines running the same program with the same inputs draw the same
// numbers at the same points of execution.
//
// The ZeroSeed field drops the process-unique base seed from the calculation,
// which makes the sequence predictable between runs. Only really useful for
// testing.
package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Steps provides time within the emulation, expressed as the number of
// instructions executed since the machine was created.
type Steps interface {
	StepCount() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	steps Steps

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be
	// predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(steps Steps) *Random {
	return &Random{
		steps: steps,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(int64(rnd.steps.StepCount())))
	}
	return rand.New(rand.NewSource(baseSeed + int64(rnd.steps.StepCount())))
}

// Intn returns a random number between 0 and n.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
