// This file is part of Zed80.
//
// Zed80 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zed80 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zed80.  If not, see <https://www.gnu.org/licenses/>.

package sdlimgui

import (
	"strings"

	"github.com/barnstorm/zed80/logger"
	"github.com/inkyblackness/imgui-go/v4"
)

const winLogID = "Log"

type winLog struct {
	img *SdlImgui
	windowManagement
}

func newWinLog(img *SdlImgui) (window, error) {
	win := &winLog{
		img: img,
	}
	win.valid = true
	return win, nil
}

func (win *winLog) init() {
}

func (win *winLog) destroy() {
	if !win.valid {
		panic("log window: destroy of invalidated window")
	}
	win.valid = false
}

func (win *winLog) id() string {
	return winLogID
}

func (win *winLog) draw() {
	if !win.valid {
		panic("log window: draw of invalidated window")
	}

	if win.resyncOpen() {
		win.img.wm.stateDirty = true
	}

	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 400, Y: 200}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 500, Y: 250}, imgui.ConditionFirstUseEver)

	if imgui.BeginV(win.id(), &win.open, imgui.WindowFlagsNone) {
		var sb strings.Builder
		logger.Write(&sb)
		imgui.Text(sb.String())

		// scroll to the most recent entry
		if imgui.ScrollY() >= imgui.ScrollMaxY() {
			imgui.SetScrollHereY(1.0)
		}
	}
	imgui.End()
}

func (win *winLog) saveSettings(settings windowSettings) {
	if !win.valid {
		panic("log window: saveSettings of invalidated window")
	}
	settings.setOpen(win.id(), win.open)
}

func (win *winLog) loadSettings(settings windowSettings) {
	if !win.valid {
		panic("log window: loadSettings of invalidated window")
	}
	win.open = settings.isOpen(win.id())
	win.lastOpen = win.open
}
