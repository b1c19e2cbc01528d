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

package curated_test

import (
	"errors"
	"testing"

	"github.com/Barbatrou/fish-n-chips/curated"
	"github.com/Barbatrou/fish-n-chips/test"
)

const testPattern = "test error: %d"

func TestIdentity(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, "some other pattern"))

	// plain errors are not curated
	p := errors.New("plain")
	test.ExpectedFailure(t, curated.IsAny(p))
	test.ExpectedFailure(t, curated.Is(p, testPattern))
}

func TestWrapping(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf("wrapped: %v", e)

	// Is() sees only the head of the chain, Has() sees the whole chain
	test.ExpectedFailure(t, curated.Is(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, "wrapped: %v"))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("error: %v", curated.Errorf("error: %v", curated.Errorf("inner")))
	test.Equate(t, e.Error(), "error: inner")
}
