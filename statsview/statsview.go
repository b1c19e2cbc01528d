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

//go:build statsview
// +build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/Barbatrou/fish-n-chips/logger"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the local HTTP server.
const Address = "localhost:12608"

// the statistics page served under Address
const page = "/debug/statsview"

// refresh period of the graphs in milliseconds
const interval = 2000

// Launch the statistics server in a new goroutine. The address of the
// statistics page is written to output.
func Launch(output io.Writer) {
	viewer.SetConfiguration(
		viewer.WithAddr(Address),
		viewer.WithInterval(interval),
	)

	go func() {
		mgr := statsview.New()

		// Start() blocks until the server is stopped
		mgr.Start()
		logger.Logf("statsview", "server stopped")
	}()

	output.Write([]byte(fmt.Sprintf("stats server available at %s%s\n", Address, page)))
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
