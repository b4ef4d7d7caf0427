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

// Package sdlimgui implements the debugging GUI. it is built on SDL2 for
// windowing and input, OpenGL 2.1 for rendering and dear imgui for the
// widgets themselves.
//
// the GUI is a collection of windows, each implementing the window
// interface and registered with the window manager. every window decodes
// live hardware state on demand each frame. nothing is cached between
// frames so a window can never show stale state.
//
// the open/closed state of every window is persisted between sessions,
// keyed by window title. window position and size are left to imgui's own
// ini file handling.
//
// all functions in this package must be called from the main goroutine
// unless noted otherwise.
package sdlimgui
