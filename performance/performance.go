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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/Barbatrou/fish-n-chips/curated"
	"github.com/Barbatrou/fish-n-chips/environment"
	"github.com/Barbatrou/fish-n-chips/hardware"
	"github.com/Barbatrou/fish-n-chips/hardware/clock"
	"github.com/Barbatrou/fish-n-chips/romloader"
)

// Check the performance of the emulation using the supplied program.
//
// The scheduler is advanced with synthetic time. A single call to Advance()
// with a deadline the requested duration into the future makes up every
// instruction step and timer tick in the period at full host speed. What is
// measured is the raw throughput of the emulation core, free of the sleep
// pacing used in play mode.
//
// A cpu profile, a memory profile, a trace, or a combination of them, is
// created as requested by the profile argument.
func Check(output io.Writer, profile Profile, ld romloader.Loader, instructionHz int, frameHz int, duration time.Duration) error {
	mch, err := hardware.NewMachine(environment.MainEmulation)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = mch.Attach(ld)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	sch, err := clock.NewScheduler(mch)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = sch.SetRates(instructionHz, frameHz)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	start := time.Now()
	sch.Start(start)

	runner := func() error {
		return sch.Advance(start.Add(duration))
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	realStart := time.Now()
	err = RunProfiler(profile, "performance", runner)
	realDur := time.Since(realStart)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// calculate performance relative to the requested instruction rate
	steps := mch.StepCount()
	ips := float64(steps) / realDur.Seconds()
	accuracy := 100 * ips / float64(instructionHz)

	output.Write([]byte(fmt.Sprintf("%.0f ips (%d instructions in %.2f seconds) %.1f%%\n", ips, steps, realDur.Seconds(), accuracy)))

	return nil
}
