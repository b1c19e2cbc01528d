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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/Barbatrou/fish-n-chips/disassembly"
	"github.com/Barbatrou/fish-n-chips/environment"
	"github.com/Barbatrou/fish-n-chips/gui"
	"github.com/Barbatrou/fish-n-chips/gui/sdlaudio"
	"github.com/Barbatrou/fish-n-chips/gui/sdlplay"
	"github.com/Barbatrou/fish-n-chips/gui/termplay"
	"github.com/Barbatrou/fish-n-chips/hardware"
	"github.com/Barbatrou/fish-n-chips/hardware/clock"
	"github.com/Barbatrou/fish-n-chips/logger"
	"github.com/Barbatrou/fish-n-chips/modalflag"
	"github.com/Barbatrou/fish-n-chips/performance"
	"github.com/Barbatrou/fish-n-chips/playmode"
	"github.com/Barbatrou/fish-n-chips/romloader"
	"github.com/Barbatrou/fish-n-chips/statsview"
	"github.com/Barbatrou/fish-n-chips/version"
	"github.com/Barbatrou/fish-n-chips/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the playmode package provides a mode
	// specific handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	//
	// If the GUI framework does not require this sort of thread safety then
	// there is no need for the Service() function to do anything.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  3. anything in the Service() function of the most recently created GUI
	//
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// gui is a variable of type interface. nil doesn't work as you
				// might expect with interfaces. for instance, even though the
				// following outputs "<nil>":
				//
				//	fmt.Println(gui)
				//
				// the following equation print false:
				//
				//	fmt.Println(gui == nil)
				//
				// as to the reason why gui does not equal nil, even though
				// the creator() function returns nil? well, you tell me.
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			// if a gui has been created then call its Service() function
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		// 10
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		logger.Tail(os.Stderr, 10)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	rate := md.AddInt("rate", clock.DefaultInstructionRate, "instructions per second")
	fps := md.AddInt("fps", clock.DefaultFrameRate, "frames per second")
	scale := md.AddInt("scale", sdlplay.DefaultScale, "window size of a single pixel")
	beephz := md.AddFloat64("beephz", sdlaudio.DefaultBeepFrequency, "frequency of the beep tone")
	gradient := md.AddBool("gradient", false, "cycle the pixel colour over time")
	term := md.AddBool("term", false, "run in the terminal instead of an SDL window")
	wav := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
		ld := romloader.NewLoader(md.GetArg(0))

		mch, err := hardware.NewMachine(environment.MainEmulation)
		if err != nil {
			return err
		}

		// add wavwriter mixer if wav argument has been specified
		var mixers []clock.AudioMixer
		if *wav != "" {
			aw, err := wavwriter.New(*wav, *beephz, *fps)
			if err != nil {
				return err
			}
			mixers = append(mixers, aw)
		}

		// create gui
		sync.creator <- func() (GuiCreator, error) {
			if *term {
				return termplay.NewTermPlay(mch.Display)
			}
			return sdlplay.NewSdlPlay(mch.Display, *scale, *beephz)
		}

		// wait for creator result
		var scr gui.GUI
		select {
		case g := <-sync.creation:
			scr = g.(gui.GUI)

			if *gradient {
				err = scr.SetFeature(gui.ReqGradient, true)
				if err != nil {
					return err
				}
			}

		case err := <-sync.creationError:
			return err
		}

		// turn off fallback ctrl-c handling. this so that the playmode can
		// close attached audio mixers gracefully
		sync.state <- stateRequest{req: reqNoIntSig}

		err = playmode.Play(mch, scr, ld, *rate, *fps, mixers...)
		if err != nil {
			return err
		}

		if *wav != "" {
			fmt.Println("! recording completed")
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
		attr := disassembly.WriteAttr{
			ByteCode: *bytecode,
		}

		dsm, err := disassembly.FromLoader(romloader.NewLoader(md.GetArg(0)))
		if err != nil {
			return err
		}

		err = dsm.Write(md.Output, attr)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	rate := md.AddInt("rate", clock.DefaultInstructionRate, "instructions per second")
	fps := md.AddInt("fps", clock.DefaultFrameRate, "frames per second")
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "profiling reports: cpu, mem, trace, all")
	stats := md.AddBool("statsview", false, "run stats server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("! statsview not available in this build")
		}
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
		err = performance.Check(md.Output, prf, romloader.NewLoader(md.GetArg(0)),
			*rate, *fps, *duration)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "show revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, version.Version)
	if *revision {
		fmt.Fprintf(md.Output, "revision: %s\n", version.Revision())
	}

	return nil
}
