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

package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Fish'n'CHIPS"

// Version number of the current release.
const Version = "0.2.0"

// Revision returns the module version as reported by the Go runtime. For
// builds installed from the module cache this is the tagged version. For
// local builds the runtime reports "(devel)".
func Revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "no revision information"
	}
	return info.Main.Version
}
