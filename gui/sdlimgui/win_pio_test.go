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
	"testing"

	"github.com/barnstorm/zed80/hardware/pio"
	"github.com/barnstorm/zed80/test"
)

func TestModeLabel(t *testing.T) {
	test.Equate(t, pioModeLabel(0), "OUT")
	test.Equate(t, pioModeLabel(1), "INP")
	test.Equate(t, pioModeLabel(2), "BDIR")
	test.Equate(t, pioModeLabel(3), "BITC")

	// every out of range value decodes to the same label
	for m := 4; m <= 255; m++ {
		test.Equate(t, pioModeLabel(uint8(m)), "INVALID")
	}
}

func TestFlagLabel(t *testing.T) {
	test.Equate(t, pioFlagLabel(pio.IntEnable, pio.IntEnable, "EI", "DI"), "EI")
	test.Equate(t, pioFlagLabel(0x00, pio.IntEnable, "EI", "DI"), "DI")

	// a flag decodes the same whatever the other bits in the register are
	// doing
	for v := 0; v <= 255; v++ {
		value := uint8(v)
		expected := "OR"
		if value&pio.IntAndOr == pio.IntAndOr {
			expected = "AND"
		}
		test.Equate(t, pioFlagLabel(value, pio.IntAndOr, "AND", "OR"), expected)
	}
}

func TestHexFormat(t *testing.T) {
	test.Equate(t, pioHex(0x00), "00")
	test.Equate(t, pioHex(0x0f), "0F")
	test.Equate(t, pioHex(0xa5), "A5")
	test.Equate(t, pioHex(0xff), "FF")

	// always two characters, always uppercase
	for v := 0; v <= 255; v++ {
		s := pioHex(uint8(v))
		test.Equate(t, len(s), 2)
		for _, r := range s {
			if !((r >= '0' && r <= '9') || (r >= 'A' && r <= 'F')) {
				t.Errorf("unexpected character %q in %q", r, s)
			}
		}
	}
}

func TestPortTable(t *testing.T) {
	p := pio.NewPIO()

	// put port A into bidirectional mode with interrupts enabled and
	// everything else at the default
	p.Port[pio.PortA].Mode = pio.ModeBidirectional
	p.Port[pio.PortA].IntControl = pio.IntEnable
	p.Port[pio.PortA].Output = 0xa5
	p.Port[pio.PortA].IntVector = 0x38

	tbl := pioPortTable(p)

	test.Equate(t, len(tbl), pioTableRows)

	// header row
	test.Equate(t, tbl[0][0], "")
	test.Equate(t, tbl[0][1], "PA")
	test.Equate(t, tbl[0][2], "PB")

	// port A decodes
	test.Equate(t, tbl[1][1], "BDIR")
	test.Equate(t, tbl[2][1], "A5")
	test.Equate(t, tbl[6][1], "EI")
	test.Equate(t, tbl[7][1], "OR")
	test.Equate(t, tbl[8][1], "LO")
	test.Equate(t, tbl[9][1], "38")

	// port B is untouched since reset
	test.Equate(t, tbl[1][2], "INP")
	test.Equate(t, tbl[4][2], "FF")
	test.Equate(t, tbl[6][2], "DI")

	// no cell in any value column is ever empty
	for i, row := range tbl {
		if i == 0 {
			continue
		}
		test.ExpectedSuccess(t, row[0] != "")
		test.ExpectedSuccess(t, row[1] != "")
		test.ExpectedSuccess(t, row[2] != "")
	}
}

func TestPortTableRowOrder(t *testing.T) {
	p := pio.NewPIO()
	tbl := pioPortTable(p)

	labels := []string{
		"Mode", "Output", "Input", "IO Select", "INT Ctrl",
		"  ei/di", "  and/or", "  hi/lo", "INT Vec", "INT Mask",
	}
	test.Equate(t, len(tbl)-1, len(labels))
	for i, l := range labels {
		test.Equate(t, tbl[i+1][0], l)
	}
}

func TestWindowGeometryDefaults(t *testing.T) {
	p := pio.NewPIO()

	newGeom := func(w float32, h float32) *winPIO {
		win, err := newWinPIO(nil, winPIODesc{title: winPIOID, pio: p, w: w, h: h})
		test.ExpectedSuccess(t, err == nil)
		return win.(*winPIO)
	}

	// each dimension falls back to the default independently of the other
	win := newGeom(0, 0)
	test.Equate(t, win.initW, winPIODefWidth)
	test.Equate(t, win.initH, winPIODefHeight)

	win = newGeom(100, 0)
	test.Equate(t, win.initW, 100)
	test.Equate(t, win.initH, winPIODefHeight)

	win = newGeom(0, 200)
	test.Equate(t, win.initW, winPIODefWidth)
	test.Equate(t, win.initH, 200)

	win = newGeom(100, 200)
	test.Equate(t, win.initW, 100)
	test.Equate(t, win.initH, 200)
}

func TestWindowContract(t *testing.T) {
	p := pio.NewPIO()

	test.ExpectedPanic(t, func() {
		_, _ = newWinPIO(nil, winPIODesc{title: "", pio: p})
	})
	test.ExpectedPanic(t, func() {
		_, _ = newWinPIO(nil, winPIODesc{title: winPIOID, pio: nil})
	})
}

func TestWindowLifecycle(t *testing.T) {
	p := pio.NewPIO()

	win, err := newWinPIO(nil, winPIODesc{title: winPIOID, pio: p})
	test.ExpectedSuccess(t, err == nil)
	test.ExpectedSuccess(t, !win.isOpen())

	// drawing a closed window does nothing at all. in particular it does
	// not require an imgui context
	win.draw()

	win.destroy()

	// every operation on a destroyed window is a programmer error
	test.ExpectedPanic(t, func() { win.draw() })
	test.ExpectedPanic(t, func() { win.saveSettings(nil) })
	test.ExpectedPanic(t, func() { win.loadSettings(nil) })
	test.ExpectedPanic(t, func() { win.destroy() })
}

func TestWindowOpenEdgeDetection(t *testing.T) {
	p := pio.NewPIO()

	img := &SdlImgui{wm: &manager{}}

	win, err := newWinPIO(img, winPIODesc{title: winPIOID, pio: p, open: true})
	test.ExpectedSuccess(t, err == nil)

	// closing the window is noticed by the next draw and the manager state
	// is marked for saving
	win.setOpen(false)
	test.ExpectedSuccess(t, !img.wm.stateDirty)
	win.draw()
	test.ExpectedSuccess(t, img.wm.stateDirty)

	// the edge has been consumed. a steady state draw does not mark the
	// state again
	img.wm.stateDirty = false
	win.draw()
	test.ExpectedSuccess(t, !img.wm.stateDirty)
}

func TestStandardPinout(t *testing.T) {
	desc := pioStandardPinout()
	test.Equate(t, len(desc.left), 10)
	test.Equate(t, len(desc.right), 11)

	// port pins map onto consecutive bits of the pins bitmask
	for i := 0; i < 8; i++ {
		test.Equate(t, desc.left[i].label, fmt.Sprintf("PA%d", i))
		test.ExpectedSuccess(t, desc.left[i].mask == pio.PinPA0<<i)
		test.Equate(t, desc.right[i].label, fmt.Sprintf("PB%d", i))
		test.ExpectedSuccess(t, desc.right[i].mask == pio.PinPB0<<i)
	}
}
