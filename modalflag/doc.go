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

// Package modalflag wraps the flag package in the Go standard library. The
// wrapper adds the idea of program modes (and sub-modes) and lets every
// mode define its own set of flags.
//
// The simplest use of the package is as a drop-in for the flag package.
// The setup differs slightly: rather than handing the argument array to
// Parse(), the arguments are registered first with NewArgs() and Parse()
// is then called without arguments (error handling of the Parse()
// function is elided here):
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// The split is what makes mode parsing work: the Modes struct needs the
// full argument array up front so that later parsing layers can continue
// from where the previous layer stopped.
//
// After parsing, the arguments that are not flags are available through
// RemainingArgs() or GetArg(). Handling exactly one argument looks like
// this:
//
//	switch len(md.RemainingArgs()) {
//	case 0:
//		return fmt.Errorf("argument required")
//	case 1:
//		Process(md.GetArg(0))
//	default:
//		return fmt.Errorf("too many arguments")
//	}
//
// Flags themselves are defined much as they are in the flag package. A
// boolean flag:
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
// As with the flag package, the returned value is a pointer to a variable
// of the flag's type, primed with the default value and updated by the
// next call to Parse():
//
//	if *verbose {
//		fmt.Println(additionalLogMessage)
//	}
//
// What the flag package cannot do is modes. A mode is a command line
// argument that switches the program to a different style of operation,
// in the way the go command switches between build, doc, get, test, and
// so on. Each mode wants its own flags and its own idea of what the
// remaining arguments mean.
//
// Modes are declared with the AddSubModes() function, one string argument
// per mode name. Comparison with the command line is case insensitive:
//
//	md.AddSubModes("run", "test", "debug")
//
// The next call to Parse() processes flags as normal and then checks the
// first non-flag argument against the declared mode names. On a match the
// mode argument is consumed; RemainingArgs() returns only what follows
// it:
//
//	md.Parse()
//	switch md.Mode() {
//		case "RUN":
//			runMode(*verbose)
//		default:
//			fmt.Printf("%s not yet implemented", md.Mode())
//	}
//
// Once the mode is known, NewMode() begins a fresh parsing layer for the
// flags of that mode. The layer parses with another call to Parse(),
// whose return value and error are handled like so:
//
//	func runMode(verbose bool) {
//		md.NewMode()
//		md.AddDuration("runtime", time.ParseDuration("10s"), "max run time")
//		p, err := md.Parse
//		switch p {
//			case ParseError:
//				fmt.Println(err)
//				return
//			case ParseHelp:
//				return
//		}
//		doRun(md.RemainingArguments)
//	}
//
// Layers nest to any depth. A mode can declare sub-modes of its own with
// another AddSubModes() call after NewMode():
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "test", "debug")
//	_, _ = md.Parse()
//	switch md.Mode() {
//		case "TEST":
//			md.NewMode()
//			md.AddSubModes("A", "B", "C")
//			_, _ = md.Parse()
//			switch md.Mode() {
//				case "A":
//					testA()
//				case "B":
//					testB()
//				case "C":
//					testC()
//			}
//		default:
//			fmt.Printf("%s not yet implemented", md.Mode())
//	}
package modalflag
