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

package random_test

import (
	"testing"

	"github.com/Barbatrou/fish-n-chips/random"
	"github.com/Barbatrou/fish-n-chips/test"
)

type steps struct {
	count uint64
}

func (s *steps) StepCount() uint64 {
	return s.count
}

func TestRandom(t *testing.T) {
	s := &steps{}

	a := random.NewRandom(s)
	b := random.NewRandom(s)
	a.ZeroSeed = true
	b.ZeroSeed = true

	// two instances at the same point of emulation time draw the same
	// numbers
	for i := 1; i < 256; i++ {
		s.count++
		test.Equate(t, a.Intn(i), b.Intn(i))
	}
}

func TestRandomSharedBaseSeed(t *testing.T) {
	s := &steps{}

	// the base seed is common to the whole process so even without
	// ZeroSeed two instances agree
	a := random.NewRandom(s)
	b := random.NewRandom(s)

	for i := 0; i < 100; i++ {
		s.count += 17
		test.Equate(t, a.Intn(256), b.Intn(256))
	}
}

func TestRandomBounds(t *testing.T) {
	s := &steps{}

	rnd := random.NewRandom(s)
	rnd.ZeroSeed = true

	for i := 0; i < 1000; i++ {
		s.count++
		v := rnd.Intn(256)
		if v < 0 || v >= 256 {
			t.Fatalf("random value %d outside of requested range", v)
		}
	}
}
