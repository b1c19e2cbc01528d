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

package sdlplay

import (
	"github.com/Barbatrou/fish-n-chips/curated"
	"github.com/Barbatrou/fish-n-chips/gui"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []interface{}
}

// SetFeature implements the gui.GUI interface. The request is handed over to
// the main thread and serviced as part of the Service() loop.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...interface{}) error {
	scr.featureReq <- featureRequest{request: request, args: args}
	return <-scr.featureErr
}

// feature requests that have been handed over to the featureReq channel are
// serviced here.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) serviceFeatureRequest(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			scr.featureErr <- curated.Errorf("sdlplay: %v", r)
		}
	}()

	var err error

	switch request.request {
	case gui.ReqSetEventChan:
		scr.events = request.args[0].(chan gui.Event)

	case gui.ReqSetVisibility:
		scr.showWindow(request.args[0].(bool))

	case gui.ReqSetScale:
		err = scr.setScale(request.args[0].(int))

	case gui.ReqGradient:
		scr.gradient = request.args[0].(bool)

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	scr.featureErr <- err
}
