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

// Package gui defines the interface between the emulation and the user
// facing frontends (the SDL window and the terminal renderer). Frontends
// accept feature requests through the GUI interface and report user input
// over an event channel registered with ReqSetEventChan.
package gui

// GUI defines the operations that can be performed on the visual user
// interface.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...interface{}) error
}

// Sentinel error returned if the GUI does not support a requested feature.
const UnsupportedGuiFeature = "unsupported gui feature: %v"
