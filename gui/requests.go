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

package gui

// FeatureReq is used to request the setting of a gui attribute, eg. the
// window scale.
type FeatureReq string

// List of valid feature requests. The argument must be of the type specified
// or else the interface{} type conversion will fail and the application will
// probably crash.
//
// Note that, like the name suggests, these are requests. They may or may not
// be satisfied depending on other conditions in the GUI.
const (
	// the channel on which the GUI sends its events. should be registered
	// before the emulation starts.
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan gui.Event

	// whether the gui is visible or not.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// the size of the window as a multiple of the emulated display size.
	ReqSetScale FeatureReq = "ReqSetScale" // int

	// cycle the pixel colour through the spectrum, one hue step per frame.
	ReqGradient FeatureReq = "ReqGradient" // bool
)
