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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The pattern is the identity of the error, which means
// sentinel errors are just exported pattern constants. For example:
//
//	const UnknownOpcode = "unknown opcode: %#04x"
//
//	e := curated.Errorf(UnknownOpcode, 0xf0ff)
//
//	if curated.Is(e, UnknownOpcode) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. Is() on a wrapped error fails because the outermost
// pattern is the wrapping pattern, not the wrapped one:
//
//	e := curated.Errorf(UnknownOpcode, 0xf0ff)
//	f := curated.Errorf("machine: %v", e)
//
//	curated.Is(f, UnknownOpcode)   // false
//	curated.Has(f, UnknownOpcode)  // true
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of the difference between curated and
// uncurated errors as the difference between 'expected' and 'unexpected'
// errors, depending on how we choose to handle the result of a function call.
//
// The Error() function implementation for curated errors normalises the error
// chain, removing duplicate adjacent parts. The practical advantage is that
// callers can wrap freely at every level without producing messages like:
//
//	error: error: unknown opcode: 0xf0ff
//
// For the purposes of this package a chain is composed of parts separated by
// the sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
package curated
