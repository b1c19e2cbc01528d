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

// Package hardware is the base package for the CHIP-8 emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains references to
// all the machine's sub-systems. The machine is stepped one instruction at
// a time, normally under the direction of the clock package's Scheduler,
// which also drives the sixty hertz timer countdown and the frame-ready
// signal.
package hardware
