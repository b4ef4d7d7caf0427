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

	"github.com/barnstorm/zed80/hardware/pio"
	"github.com/inkyblackness/imgui-go/v4"
)

const winPIOID = "PIO"

// default window size. used when the descriptor leaves the corresponding
// dimension at zero.
const (
	winPIODefWidth  = 360
	winPIODefHeight = 364
)

// pioModeLabel returns the display label for a port mode value. the mode
// field is only two bits wide so the fallback is never hit with a value read
// from a real port, but a decoder that can't fail quietly is easier to trust.
func pioModeLabel(mode uint8) string {
	switch mode {
	case 0:
		return "OUT"
	case 1:
		return "INP"
	case 2:
		return "BDIR"
	case 3:
		return "BITC"
	}
	return "INVALID"
}

// pioFlagLabel returns the set label if the flag bit is present in the
// register value and the unset label otherwise. each flag is decoded
// independently of any other bit in the register.
func pioFlagLabel(value uint8, flag uint8, set string, unset string) string {
	if value&flag == flag {
		return set
	}
	return unset
}

// pioHex formats a register byte the way every byte in the port table is
// formatted. two digits, uppercase.
func pioHex(value uint8) string {
	return fmt.Sprintf("%02X", value)
}

// number of rows in the port table, header row included.
const pioTableRows = 11

// pioPortTable assembles the port table for a PIO instance. the result is a
// fixed matrix of display strings: a header row followed by one row per
// register field. column zero holds the row label and the remaining columns
// hold the decoded value for port A and port B respectively.
//
// row order never changes and no row is ever omitted, whatever state the
// chip is in.
func pioPortTable(p *pio.PIO) [pioTableRows][3]string {
	tbl := [pioTableRows][3]string{
		{"", "PA", "PB"},
		{"Mode"},
		{"Output"},
		{"Input"},
		{"IO Select"},
		{"INT Ctrl"},
		{"  ei/di"},
		{"  and/or"},
		{"  hi/lo"},
		{"INT Vec"},
		{"INT Mask"},
	}

	for i, pt := range p.Port {
		c := i + 1
		tbl[1][c] = pioModeLabel(uint8(pt.Mode))
		tbl[2][c] = pioHex(pt.Output)
		tbl[3][c] = pioHex(pt.Input)
		tbl[4][c] = pioHex(pt.IOSelect)
		tbl[5][c] = pioHex(pt.IntControl)
		tbl[6][c] = pioFlagLabel(pt.IntControl, pio.IntEnable, "EI", "DI")
		tbl[7][c] = pioFlagLabel(pt.IntControl, pio.IntAndOr, "AND", "OR")
		tbl[8][c] = pioFlagLabel(pt.IntControl, pio.IntHiLo, "HI", "LO")
		tbl[9][c] = pioHex(pt.IntVector)
		tbl[10][c] = pioHex(pt.IntMask)
	}

	return tbl
}

// winPIODesc is the setup information for a winPIO instance.
type winPIODesc struct {
	// window title. also the window's id and the key under which its open
	// state is stored
	title string

	// the chip instance to track
	pio *pio.PIO

	// initial window position
	x float32
	y float32

	// initial window size. zero for the default size, per dimension
	w float32
	h float32

	// initial open state
	open bool

	// chip visualization. left empty, a standard Z80 PIO pinout is used
	pinout pinoutDesc
}

type winPIO struct {
	img *SdlImgui
	windowManagement

	title string
	pio   *pio.PIO

	initX float32
	initY float32
	initW float32
	initH float32

	pinout pinoutDesc
}

func newWinPIO(img *SdlImgui, desc winPIODesc) (window, error) {
	if desc.title == "" {
		panic("PIO window: no title")
	}
	if desc.pio == nil {
		panic("PIO window: no chip instance")
	}

	win := &winPIO{
		img:    img,
		title:  desc.title,
		pio:    desc.pio,
		initX:  desc.x,
		initY:  desc.y,
		initW:  desc.w,
		initH:  desc.h,
		pinout: desc.pinout,
	}

	if win.initW == 0 {
		win.initW = winPIODefWidth
	}
	if win.initH == 0 {
		win.initH = winPIODefHeight
	}

	if len(win.pinout.left) == 0 && len(win.pinout.right) == 0 {
		win.pinout = pioStandardPinout()
	}

	win.open = desc.open
	win.lastOpen = desc.open
	win.valid = true

	return win, nil
}

// pioStandardPinout describes the connected pins of the Z80 PIO package. the
// data and control bus pins are not modelled so they are left off the
// diagram rather than drawn permanently dead.
func pioStandardPinout() pinoutDesc {
	left := make([]pinDesc, 0, 10)
	right := make([]pinDesc, 0, 10)
	for i := 0; i < 8; i++ {
		left = append(left, pinDesc{label: fmt.Sprintf("PA%d", i), mask: pio.PinPA0 << i})
		right = append(right, pinDesc{label: fmt.Sprintf("PB%d", i), mask: pio.PinPB0 << i})
	}
	left = append(left, pinDesc{label: "ARDY", mask: pio.PinARDY})
	left = append(left, pinDesc{label: "ASTB", mask: pio.PinASTB})
	right = append(right, pinDesc{label: "BRDY", mask: pio.PinBRDY})
	right = append(right, pinDesc{label: "BSTB", mask: pio.PinBSTB})
	right = append(right, pinDesc{label: "INT", mask: pio.PinINT})
	return pinoutDesc{label: "Z80 PIO", left: left, right: right}
}

func (win *winPIO) init() {
}

func (win *winPIO) destroy() {
	if !win.valid {
		panic("PIO window: destroy of invalidated window")
	}
	win.valid = false
}

func (win *winPIO) id() string {
	return win.title
}

func (win *winPIO) draw() {
	if !win.valid || win.title == "" || win.pio == nil {
		panic("PIO window: draw of invalidated window")
	}

	// notice open state changes made from outside (the window close button,
	// the menu) before the early return below. a closed window still needs
	// its state persisted
	if win.resyncOpen() {
		win.img.wm.stateDirty = true
	}

	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: win.initX, Y: win.initY}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: win.initW, Y: win.initH}, imgui.ConditionFirstUseEver)

	if imgui.BeginV(win.title, &win.open, imgui.WindowFlagsNone) {
		imgui.BeginChildV("##pioChip", imgui.Vec2{X: 176, Y: 0}, true, imgui.WindowFlagsNone)
		drawPinout(win.pinout, win.pio.Pins)
		imgui.EndChild()

		imgui.SameLine()

		imgui.BeginChildV("##pioVals", imgui.Vec2{X: 0, Y: 0}, true, imgui.WindowFlagsNone)
		win.drawPorts()
		imgui.EndChild()
	}
	imgui.End()
}

func (win *winPIO) drawPorts() {
	tbl := pioPortTable(win.pio)

	if !imgui.BeginTableV("##pioPorts", 3, imgui.TableFlagsNone, imgui.Vec2{}, 0) {
		return
	}

	imgui.TableSetupColumnV(tbl[0][0], imgui.TableColumnFlagsWidthFixed, 64, 0)
	imgui.TableSetupColumnV(tbl[0][1], imgui.TableColumnFlagsWidthFixed, 32, 1)
	imgui.TableSetupColumnV(tbl[0][2], imgui.TableColumnFlagsWidthFixed, 32, 2)
	imgui.TableHeadersRow()

	for _, row := range tbl[1:] {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(row[0])
		imgui.TableNextColumn()
		imguiMonoText(row[1])
		imgui.TableNextColumn()
		imguiMonoText(row[2])
	}

	imgui.EndTable()
}

func (win *winPIO) saveSettings(settings windowSettings) {
	if !win.valid {
		panic("PIO window: saveSettings of invalidated window")
	}
	settings.setOpen(win.title, win.open)
}

func (win *winPIO) loadSettings(settings windowSettings) {
	if !win.valid {
		panic("PIO window: loadSettings of invalidated window")
	}
	win.open = settings.isOpen(win.title)
	win.lastOpen = win.open
}
