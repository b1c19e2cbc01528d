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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter is used to amend the default output from the flag package.
type helpWriter struct {
	// everything sent to the Write() function since the last Clear()
	buffer []byte
}

// Write buffers all output.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}

// Clear contents of output buffer.
func (hw *helpWriter) Clear() {
	hw.buffer = []byte{}
}

func write(output io.Writer, format string, args ...interface{}) {
	output.Write([]byte(fmt.Sprintf(format, args...)))
}

// Help composes the buffered flag output, the sub-mode list and any
// additional help text into the final help message.
func (hw *helpWriter) Help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	s := string(hw.buffer)
	helpLines := strings.Split(s, "\n")

	// the flag package emits a bare "Usage:" banner when no flags are
	// defined. with no sub-modes either, there is nothing useful to say
	if s == "Usage:\n" && len(subModes) == 0 {
		if banner != "" {
			write(output, "No help available for %s\n", banner)
		} else {
			write(output, "No help available\n")
		}
		return
	}

	// the banner line, supplemented with the mode path when there is one
	if banner != "" {
		write(output, "%s for %s mode\n", helpLines[0], banner)
	} else {
		write(output, "%s\n", helpLines[0])
	}

	// the flag descriptions produced by the flag package
	if len(helpLines) > 1 {
		write(output, "%s", strings.Join(helpLines[1:], "\n"))
	}

	if len(subModes) > 0 {
		// an additional new line if flag descriptions have been printed
		if len(helpLines) > 2 {
			write(output, "\n")
		}

		write(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		write(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		write(output, "\n%s\n", additionalHelp)
	}
}
