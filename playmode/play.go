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

package playmode

import (
	"os"
	"os/signal"
	"time"

	"github.com/Barbatrou/fish-n-chips/curated"
	"github.com/Barbatrou/fish-n-chips/gui"
	"github.com/Barbatrou/fish-n-chips/hardware"
	"github.com/Barbatrou/fish-n-chips/hardware/clock"
	"github.com/Barbatrou/fish-n-chips/romloader"
)

// the longest the run loop will sleep while waiting for the next clock
// deadline. a shorter sleep keeps user input responsive at very low
// instruction rates.
const maxSleep = 5 * time.Millisecond

type playmode struct {
	mch *hardware.Machine
	sch *clock.Scheduler
	scr gui.GUI

	events  chan gui.Event
	intChan chan os.Signal
}

// Play sets the emulation running. the function does not return until the
// user quits, the machine faults, or an attached collaborator fails.
func Play(mch *hardware.Machine, scr gui.GUI, ld romloader.Loader, instructionHz int, frameHz int, mixers ...clock.AudioMixer) error {
	err := mch.Attach(ld)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	sch, err := clock.NewScheduler(mch)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = sch.SetRates(instructionHz, frameHz)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// the GUI receives frame and beeper signals if it knows what to do
	// with them
	if r, ok := scr.(clock.Renderer); ok {
		sch.AddRenderer(r)
	}
	if m, ok := scr.(clock.AudioMixer); ok {
		sch.AddMixer(m)
	}

	for _, m := range mixers {
		sch.AddMixer(m)
	}

	pl := &playmode{
		mch:     mch,
		sch:     sch,
		scr:     scr,
		events:  make(chan gui.Event, 2),
		intChan: make(chan os.Signal, 1),
	}

	err = scr.SetFeature(gui.ReqSetEventChan, pl.events)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// we need to make sure attached mixers are closed even when ctrl-c is
	// pressed. redirect interrupt signal to an os.Signal channel
	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	err = pl.run()

	// close attached mixers whatever the outcome of the run loop
	endErr := pl.sch.End()

	if err != nil {
		// a quit event is the normal way out of the run loop and is not an
		// error as far as the caller is concerned
		if curated.Is(err, quitEvent) {
			return endErr
		}
		return err
	}

	return endErr
}

func (pl *playmode) run() error {
	for {
		select {
		case <-pl.intChan:
			return curated.Errorf(quitEvent)

		case ev := <-pl.events:
			err := pl.guiEventHandler(ev)
			if err != nil {
				return err
			}

		default:
		}

		err := pl.sch.Advance(time.Now())
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}

		// sleep until the next deadline, within reason
		s := time.Until(pl.sch.NextDeadline())
		if s > maxSleep {
			s = maxSleep
		}
		if s > 0 {
			time.Sleep(s)
		}
	}
}
