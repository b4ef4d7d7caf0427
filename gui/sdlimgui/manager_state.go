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
	"github.com/barnstorm/zed80/prefs"
	"github.com/barnstorm/zed80/resources"
)

// windowSettings is the capability required of a window open-state store.
// windows save and load their state through this interface and never touch
// the backing file directly.
type windowSettings interface {
	// setOpen records the open state for the window with the given id,
	// replacing any previous record
	setOpen(id string, open bool)

	// isOpen returns the recorded open state for the window with the given
	// id. an id with no record returns false
	isOpen(id string) bool
}

// the name of the file used to store window state, relative to the
// resources path.
const managerStateFile = "managerState"

// managerState is the disk backed implementation of the windowSettings
// interface.
type managerState struct {
	dsk     *prefs.Disk
	entries map[string]*prefs.Bool
}

func newManagerState() (*managerState, error) {
	pth, err := resources.JoinPath(managerStateFile)
	if err != nil {
		return nil, err
	}
	return newManagerStateFromPath(pth)
}

func newManagerStateFromPath(pth string) (*managerState, error) {
	ms := &managerState{
		entries: make(map[string]*prefs.Bool),
	}

	var err error
	ms.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	return ms, nil
}

// entry returns the registered Bool for an id, registering one on first
// sight of the id.
func (ms *managerState) entry(id string) *prefs.Bool {
	if e, ok := ms.entries[id]; ok {
		return e
	}

	e := &prefs.Bool{}
	if err := ms.dsk.Add(id, e); err != nil {
		// Add only fails on a duplicate or malformed key. a duplicate is
		// impossible here and a malformed key means a window id that can
		// never be persisted, which is a programmer error
		panic(err)
	}
	ms.entries[id] = e

	return e
}

func (ms *managerState) setOpen(id string, open bool) {
	if err := ms.entry(id).Set(open); err != nil {
		panic(err)
	}
}

func (ms *managerState) isOpen(id string) bool {
	if _, ok := ms.entries[id]; !ok {
		return false
	}
	return ms.entries[id].Get().(bool)
}

// hasEntry returns true if the backing file holds a record for the id. used
// to distinguish a stored "closed" from no record at all.
func (ms *managerState) hasEntry(id string) bool {
	ok, err := ms.dsk.HasEntry(id)
	if err != nil {
		return false
	}
	return ok
}

// load reads the backing file into every entry registered so far. entries
// for ids not yet seen by entry() are registered on demand during
// loadState() in the manager.
func (ms *managerState) load() error {
	return ms.dsk.Load(true)
}

func (ms *managerState) save() error {
	return ms.dsk.Save()
}
