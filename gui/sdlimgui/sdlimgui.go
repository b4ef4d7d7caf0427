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
	"github.com/barnstorm/zed80/curated"
	"github.com/barnstorm/zed80/hardware/pio"
	"github.com/barnstorm/zed80/logger"
	"github.com/barnstorm/zed80/resources"
	"github.com/inkyblackness/imgui-go/v4"
)

// the name of the file used to store imgui window layout, relative to the
// resources path.
const imguiIniFile = "imgui.ini"

// SdlImgui is the top level type of the GUI. one instance per application.
type SdlImgui struct {
	context *imgui.Context
	io      imgui.IO

	plt *platform
	rnd *renderer
	wm  *manager

	// the chip being inspected
	pio *pio.PIO

	// the application has been asked to end
	quit bool
}

// NewSdlImgui is the preferred method of initialisation for the SdlImgui
// type. the returned instance must be destroyed with Destroy() before the
// program ends or window state will not be saved.
func NewSdlImgui(p *pio.PIO) (*SdlImgui, error) {
	img := &SdlImgui{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		pio:     p,
	}

	// tell imgui where to store layout information
	iniPath, err := resources.JoinPath(imguiIniFile)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	img.io.SetIniFilename(iniPath)

	img.plt, err = newPlatform(img)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.rnd = newRenderer(img)
	err = img.rnd.start()
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.wm, err = newManager(img)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	w, err := newWinPIO(img, winPIODesc{
		title: winPIOID,
		pio:   p,
		x:     20,
		y:     40,
		open:  true,
	})
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	err = img.wm.add(w)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	w, err = newWinLog(img)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	err = img.wm.add(w)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	// restore window state from the previous session
	img.wm.loadState()

	return img, nil
}

// Destroy ends the GUI, saving window state.
func (img *SdlImgui) Destroy() {
	img.wm.saveState()
	img.wm.destroy()
	img.rnd.destroy()

	err := img.plt.destroy()
	if err != nil {
		logger.Log("sdlimgui", err.Error())
	}

	img.context.Destroy()
}

// Quit asks the GUI to end at the next call to Service().
func (img *SdlImgui) Quit() {
	img.quit = true
}

// HasQuit returns true once the GUI has been asked to end, whether by Quit()
// or by the user closing the application window.
func (img *SdlImgui) HasQuit() bool {
	return img.quit
}

// Service performs a single frame of the GUI. it must be called on a regular
// basis from the main goroutine to keep the GUI responsive.
func (img *SdlImgui) Service() {
	if !img.plt.processEvents() {
		img.quit = true
		return
	}

	img.plt.newFrame()
	imgui.NewFrame()

	img.wm.draw()

	imgui.Render()
	img.rnd.preRender()
	img.rnd.render()
	img.plt.postRender()
}
