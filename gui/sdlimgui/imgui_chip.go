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
	"github.com/inkyblackness/imgui-go/v4"
)

// pinDesc describes a single pin on the side of a chip package. mask selects
// the pin's bit in the chip's pins bitmask. a zero mask indicates an
// unconnected position, drawn dimmed regardless of chip state.
type pinDesc struct {
	label string
	mask  uint64
}

// pinoutDesc describes a chip package for drawPinout(). pins are listed top
// to bottom for each side of the package.
type pinoutDesc struct {
	label string
	left  []pinDesc
	right []pinDesc
}

// drawPinout draws a schematic representation of a chip package into the
// current window/child, filling the available content region. pins whose
// mask bit is set in the pins argument are drawn in the active colour.
func drawPinout(desc pinoutDesc, pins uint64) {
	avail := imgui.ContentRegionAvail()
	p := imgui.CursorScreenPos()

	chipDim := imgui.Vec2{X: avail.X * 0.5, Y: avail.Y * 0.9}
	chipPos := imgui.Vec2{X: p.X + avail.X*0.5 - chipDim.X*0.5, Y: p.Y + avail.Y*0.5 - chipDim.Y*0.5}

	dl := imgui.WindowDrawList()

	body := imgui.PackedColorFromVec4(imgui.Vec4{X: 0.1, Y: 0.1, Z: 0.1, W: 1.0})
	bodyOutline := imgui.PackedColorFromVec4(imgui.Vec4{X: 1.0, Y: 1.0, Z: 1.0, W: 0.8})
	pinOn := imgui.PackedColorFromVec4(imgui.Vec4{X: 0.8, Y: 0.8, Z: 0.3, W: 1.0})
	pinOff := imgui.PackedColorFromVec4(imgui.Vec4{X: 0.8, Y: 0.8, Z: 0.8, W: 0.5})

	const lineThick = 2.0

	dl.AddRectFilledV(chipPos, imgui.Vec2{X: chipPos.X + chipDim.X, Y: chipPos.Y + chipDim.Y},
		body, 0, imgui.DrawCornerFlagsAll)

	numPins := len(desc.left)
	if len(desc.right) > numPins {
		numPins = len(desc.right)
	}

	pinSpacing := chipDim.Y / float32(numPins)
	pinSize := pinSpacing / 2
	pinTextAdj := (pinSize - imgui.TextLineHeight()) / 2

	pinCol := func(pin pinDesc) imgui.PackedColor {
		if pin.mask != 0 && pins&pin.mask == pin.mask {
			return pinOn
		}
		return pinOff
	}

	// left pins
	pinX := chipPos.X - pinSize
	for i, pin := range desc.left {
		col := pinCol(pin)

		pinY := chipPos.Y + pinSize*0.5 + (float32(i) * pinSpacing)
		pinPos := imgui.Vec2{X: pinX, Y: pinY}
		dl.AddRectFilledV(pinPos, imgui.Vec2{X: pinPos.X + pinSize, Y: pinPos.Y + pinSize},
			col, 0, imgui.DrawCornerFlagsNone)

		textPos := imgui.Vec2{X: chipPos.X + lineThick + chipDim.X*0.025, Y: pinPos.Y + pinTextAdj}
		dl.AddText(textPos, col, pin.label)
	}

	// right pins
	pinX = chipPos.X + chipDim.X
	for i, pin := range desc.right {
		col := pinCol(pin)

		pinY := chipPos.Y + pinSize*0.5 + (float32(i) * pinSpacing)
		pinPos := imgui.Vec2{X: pinX, Y: pinY}
		dl.AddRectFilledV(pinPos, imgui.Vec2{X: pinPos.X + pinSize, Y: pinPos.Y + pinSize},
			col, 0, imgui.DrawCornerFlagsNone)

		textPos := imgui.Vec2{X: chipPos.X + chipDim.X + lineThick*2 - imguiTextWidth(len(pin.label)), Y: pinPos.Y + pinTextAdj}
		dl.AddText(textPos, col, pin.label)
	}

	// chip label across the middle of the body
	if desc.label != "" {
		textPos := imgui.Vec2{
			X: chipPos.X + chipDim.X*0.5 - imguiTextWidth(len(desc.label))*0.5,
			Y: chipPos.Y + chipDim.Y*0.5 - imgui.TextLineHeight()*0.5,
		}
		dl.AddText(textPos, bodyOutline, desc.label)
	}

	// main chip body (outline)
	dl.AddRectV(chipPos, imgui.Vec2{X: chipPos.X + chipDim.X, Y: chipPos.Y + chipDim.Y},
		bodyOutline, 0, imgui.DrawCornerFlagsAll, lineThick)
}
