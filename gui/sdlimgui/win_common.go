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

// this file contains embeddable types useful to implementations of the window
// interface

// windowManagement can be embedded into a real window struct for basic window
// management functionality. it partially implements the window interface.
type windowManagement struct {
	// prefer use of isOpen()/setOpen() instead of accessing the open field
	// directly.
	//
	// lastOpen trails the open field by one frame so that changes made
	// outside of our control (the window's own close button, for instance)
	// can be noticed. the two fields are only ever compared in resyncOpen(),
	// immediately before being brought back in step
	open     bool
	lastOpen bool

	// valid is true between init and destroy. window operations on an
	// invalidated window are programmer errors
	valid bool
}

func (wm *windowManagement) isOpen() bool {
	return wm.open
}

func (wm *windowManagement) setOpen(open bool) {
	wm.open = open
}

// resyncOpen returns true if the open flag has changed since the previous
// call. called once at the top of every draw, before any layout.
func (wm *windowManagement) resyncOpen() bool {
	dirty := wm.open != wm.lastOpen
	wm.lastOpen = wm.open
	return dirty
}
