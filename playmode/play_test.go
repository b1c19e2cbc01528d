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

package playmode_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Barbatrou/fish-n-chips/environment"
	"github.com/Barbatrou/fish-n-chips/gui"
	"github.com/Barbatrou/fish-n-chips/hardware"
	"github.com/Barbatrou/fish-n-chips/playmode"
	"github.com/Barbatrou/fish-n-chips/romloader"
	"github.com/Barbatrou/fish-n-chips/test"
)

// stubGUI implements the gui.GUI interface. the ready channel is closed
// once the event channel has been registered, after which the test can
// post events safely from another goroutine.
type stubGUI struct {
	events chan gui.Event
	ready  chan struct{}
}

func newStubGUI() *stubGUI {
	return &stubGUI{ready: make(chan struct{})}
}

func (scr *stubGUI) SetFeature(request gui.FeatureReq, args ...interface{}) error {
	if request == gui.ReqSetEventChan {
		scr.events = args[0].(chan gui.Event)
		close(scr.ready)
	}
	return nil
}

// write a program that jumps to itself forever
func spinningLoader(t *testing.T) romloader.Loader {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "spin.ch8")
	err := os.WriteFile(fn, []byte{0x12, 0x00}, 0o644)
	test.DemandSuccess(t, err)
	return romloader.NewLoader(fn)
}

func TestQuitEvent(t *testing.T) {
	mch, err := hardware.NewMachine(environment.MainEmulation)
	test.DemandSuccess(t, err)

	scr := newStubGUI()
	go func() {
		<-scr.ready
		scr.events <- gui.EventQuit{}
	}()

	err = playmode.Play(mch, scr, spinningLoader(t), 1000, 60)
	test.ExpectedSuccess(t, err)
}

func TestEscapeKey(t *testing.T) {
	mch, err := hardware.NewMachine(environment.MainEmulation)
	test.DemandSuccess(t, err)

	scr := newStubGUI()
	go func() {
		<-scr.ready
		scr.events <- gui.EventKeyboard{Key: "Escape", Down: true}
	}()

	err = playmode.Play(mch, scr, spinningLoader(t), 1000, 60)
	test.ExpectedSuccess(t, err)
}

func TestKeypadMapping(t *testing.T) {
	mch, err := hardware.NewMachine(environment.MainEmulation)
	test.DemandSuccess(t, err)

	scr := newStubGUI()
	go func() {
		<-scr.ready
		scr.events <- gui.EventKeyboard{Key: "A", Down: true}
		scr.events <- gui.EventQuit{}
	}()

	err = playmode.Play(mch, scr, spinningLoader(t), 1000, 60)
	test.ExpectedSuccess(t, err)

	// the A key of an AZERTY keyboard is keypad key 4. the key was never
	// released so it should still read as pressed
	test.Equate(t, mch.Keypad.IsPressed(0x04), true)
}

func TestMachineFault(t *testing.T) {
	mch, err := hardware.NewMachine(environment.MainEmulation)
	test.DemandSuccess(t, err)

	// a program consisting of a single unrecognised opcode
	fn := filepath.Join(t.TempDir(), "bad.ch8")
	err = os.WriteFile(fn, []byte{0xff, 0xff}, 0o644)
	test.DemandSuccess(t, err)

	scr := newStubGUI()
	err = playmode.Play(mch, scr, romloader.NewLoader(fn), 1000, 60)
	test.ExpectedFailure(t, err)
}
