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

	"github.com/inkyblackness/imgui-go/v4"
)

// returns the pixel width of a text string length characters wide. assumes all
// characters are of the same width. Uses the 'X' character for measurement.
func imguiTextWidth(length int) float32 {
	if length < 1 {
		return 0
	}
	return imgui.CalcTextSize(strings.Repeat("X", length), true, 0.0).X
}

// imguiMonoText draws text in a colour suggesting a register or pin value.
func imguiMonoText(text string) {
	imgui.PushStyleColor(imgui.StyleColorText, imgui.Vec4{X: 0.78, Y: 0.78, Z: 0.82, W: 1.0})
	imgui.Text(text)
	imgui.PopStyleColor()
}
