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

// Package environment provides context for an emulation. Particularly useful
// when more than one machine is running at the same time, tests being the
// common case.
package environment

import (
	"github.com/Barbatrou/fish-n-chips/random"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label of the machine the user is actually playing.
const MainEmulation = Label("main")

// Environment is used to provide context for an emulation.
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retrieved
	// through this structure
	Random *random.Random
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
func NewEnvironment(label Label, steps random.Steps) (*Environment, error) {
	return &Environment{
		Label:  label,
		Random: random.NewRandom(steps),
	}, nil
}

// Normalise ensures the environment is in a known default state. Useful for
// testing where the initial state must be the same for every run of the test.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}
