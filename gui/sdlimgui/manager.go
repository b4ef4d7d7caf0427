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
	"fmt"
	"sort"

	"github.com/barnstorm/zed80/curated"
	"github.com/barnstorm/zed80/logger"
	"github.com/inkyblackness/imgui-go/v4"
)

// window defines the functions that every window in the application
// must implement.
type window interface {
	// init is called just before the first draw, when an imgui context is
	// available for measurement functions
	init()

	// id returns the title of the window. it must be unique among all
	// windows registered with the manager and is the key under which the
	// window's settings are stored
	id() string

	// destroy releases the window. any use of the window after destroy is
	// a programmer error
	destroy()

	draw()

	isOpen() bool
	setOpen(bool)

	saveSettings(windowSettings)
	loadSettings(windowSettings)
}

// manager handles windows and menus in the system.
type manager struct {
	img *SdlImgui

	// has the add() function concluded. no more windows can be added after
	// the first draw
	hasInitialised bool

	windows map[string]window

	// sorted list of window ids for a stable menu order
	menu []string

	// the backing store for the open state of every window
	state *managerState

	// a window's open state has changed since the last save. checked at the
	// end of every draw
	stateDirty bool
}

func newManager(img *SdlImgui) (*manager, error) {
	wm := &manager{
		img:     img,
		windows: make(map[string]window),
	}

	var err error
	wm.state, err = newManagerState()
	if err != nil {
		return nil, err
	}

	return wm, nil
}

// add registers a window with the manager. windows cannot be added once
// drawing has begun.
func (wm *manager) add(w window) error {
	if wm.hasInitialised {
		return curated.Errorf("manager: cannot add window after initialisation (%s)", w.id())
	}
	if _, ok := wm.windows[w.id()]; ok {
		return curated.Errorf("manager: duplicate window id (%s)", w.id())
	}
	wm.windows[w.id()] = w
	wm.menu = append(wm.menu, w.id())
	sort.Strings(wm.menu)
	return nil
}

func (wm *manager) destroy() {
	for _, w := range wm.windows {
		w.destroy()
	}
	wm.windows = make(map[string]window)
}

// loadState restores the open state of every registered window from the
// backing store. windows with no stored entry keep whatever state they were
// created with.
func (wm *manager) loadState() {
	// register every window with the store before reading the file. only
	// registered entries are filled in by the load
	for _, w := range wm.windows {
		wm.state.entry(w.id())
	}

	if err := wm.state.load(); err != nil {
		logger.Log("manager", err.Error())
		return
	}

	for _, w := range wm.windows {
		if wm.state.hasEntry(w.id()) {
			w.loadSettings(wm.state)
		}
	}
}

// saveState writes the open state of every registered window to the backing
// store.
func (wm *manager) saveState() {
	for _, w := range wm.windows {
		w.saveSettings(wm.state)
	}
	if err := wm.state.save(); err != nil {
		logger.Log("manager", err.Error())
	}
}

func (wm *manager) draw() {
	if !wm.hasInitialised {
		for _, w := range wm.windows {
			w.init()
		}
		wm.hasInitialised = true
	}

	wm.drawMenu()

	for _, w := range wm.windows {
		w.draw()
	}

	if wm.stateDirty {
		wm.stateDirty = false
		wm.saveState()
	}
}

func (wm *manager) drawMenu() {
	if !imgui.BeginMainMenuBar() {
		return
	}
	defer imgui.EndMainMenuBar()

	if imgui.BeginMenu("Windows") {
		for _, id := range wm.menu {
			w := wm.windows[id]

			// decorate the menu entry with an "window open" indicator
			var lbl string
			if w.isOpen() {
				// checkmark is unicode middle dot - code 00b7
				lbl = fmt.Sprintf("· %s", id)
			} else {
				lbl = fmt.Sprintf("  %s", id)
			}

			if imgui.Selectable(lbl) {
				w.setOpen(!w.isOpen())
			}
		}
		imgui.EndMenu()
	}
}
