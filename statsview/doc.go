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

// Package statsview serves runtime statistics over a local HTTP server.
// The package builds in one of two ways, selected by the statsview build
// constraint.
//
// With the constraint, Launch() starts the server. The graphing
// funcionality is provided by "github.com/go-echarts/statsview" and the
// graphical statistics are viewable at:
//
//	localhost:12608/debug/statsview
//
// The standard Go pprof pages are served alongside at:
//
//	localhost:12608/debug/pprof/
//
// Without the constraint the package compiles to a stub. The Available()
// function says which of the two variants the current build contains and
// should be checked before offering the statsview to the user.
package statsview
