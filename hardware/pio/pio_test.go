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

package pio_test

import (
	"testing"

	"github.com/barnstorm/zed80/hardware/pio"
	"github.com/barnstorm/zed80/test"
)

func TestReset(t *testing.T) {
	p := pio.NewPIO()

	// both ports come up in byte input mode with interrupts disabled
	for i := range p.Port {
		test.Equate(t, p.Port[i].Mode == pio.ModeInput, true)
		test.Equate(t, p.Port[i].IntControl, 0)
		test.Equate(t, p.Port[i].IOSelect, 0xff)
	}
}

func TestModeControlWord(t *testing.T) {
	p := pio.NewPIO()

	// mode word is xxxx1111 with the mode in the top two bits
	p.WriteControl(pio.PortA, 0x0f)
	test.Equate(t, p.Port[pio.PortA].Mode == pio.ModeOutput, true)

	p.WriteControl(pio.PortA, 0x4f)
	test.Equate(t, p.Port[pio.PortA].Mode == pio.ModeInput, true)

	p.WriteControl(pio.PortA, 0x8f)
	test.Equate(t, p.Port[pio.PortA].Mode == pio.ModeBidirectional, true)

	// port B is unaffected
	test.Equate(t, p.Port[pio.PortB].Mode == pio.ModeInput, true)
}

func TestBitControlIOSelectFollows(t *testing.T) {
	p := pio.NewPIO()

	// a mode 3 control word claims the next control write as the io select
	// byte
	p.WriteControl(pio.PortB, 0xcf)
	test.Equate(t, p.Port[pio.PortB].Mode == pio.ModeBitControl, true)

	// this value would otherwise be decoded as a mode word
	p.WriteControl(pio.PortB, 0xaa)
	test.Equate(t, p.Port[pio.PortB].IOSelect, 0xaa)
	test.Equate(t, p.Port[pio.PortB].Mode == pio.ModeBitControl, true)
}

func TestInterruptControlWord(t *testing.T) {
	p := pio.NewPIO()

	// interrupt control word is xxxx0111. high nibble is stored as is
	p.WriteControl(pio.PortA, 0x87)
	test.Equate(t, p.Port[pio.PortA].IntControl, 0x80)

	// with IntMaskFollows set, the next control write is the mask
	p.WriteControl(pio.PortA, 0x97)
	p.WriteControl(pio.PortA, 0x3c)
	test.Equate(t, p.Port[pio.PortA].IntMask, 0x3c)

	// the whole high nibble, IntMaskFollows included, is retained
	test.Equate(t, p.Port[pio.PortA].IntControl, 0x90)
}

func TestInterruptEnableWord(t *testing.T) {
	p := pio.NewPIO()

	p.WriteControl(pio.PortA, 0x67)
	test.Equate(t, p.Port[pio.PortA].IntControl, 0x60)

	// enable/disable word xxxx0011 touches only the enable flag
	p.WriteControl(pio.PortA, 0x83)
	test.Equate(t, p.Port[pio.PortA].IntControl, 0xe0)

	p.WriteControl(pio.PortA, 0x03)
	test.Equate(t, p.Port[pio.PortA].IntControl, 0x60)
}

func TestInterruptVector(t *testing.T) {
	p := pio.NewPIO()

	// any even control word that is not a mode/interrupt word is the vector
	p.WriteControl(pio.PortB, 0xe4)
	test.Equate(t, p.Port[pio.PortB].IntVector, 0xe4)
}

func TestDataReadWrite(t *testing.T) {
	p := pio.NewPIO()

	// output mode reads back the output register
	p.WriteControl(pio.PortA, 0x0f)
	p.WriteData(pio.PortA, 0x55)
	test.Equate(t, p.ReadData(pio.PortA), 0x55)

	// input mode reads the latched input
	p.WriteControl(pio.PortA, 0x4f)
	p.SetInput(pio.PortA, 0xa1)
	test.Equate(t, p.ReadData(pio.PortA), 0xa1)

	// bit control mode mixes input and output according to io select
	p.WriteControl(pio.PortA, 0xcf)
	p.WriteControl(pio.PortA, 0xf0) // high nibble input, low nibble output
	p.WriteData(pio.PortA, 0x0c)
	p.SetInput(pio.PortA, 0xa0)
	test.Equate(t, p.ReadData(pio.PortA), 0xac)
}

func TestPins(t *testing.T) {
	p := pio.NewPIO()

	p.WriteControl(pio.PortA, 0x0f)
	p.WriteData(pio.PortA, 0x81)
	test.Equate(t, p.Pins&0xff == 0x81, true)
	test.Equate(t, p.Pins&pio.PinARDY != 0, true)

	p.SetInput(pio.PortB, 0x42)
	test.Equate(t, (p.Pins>>8)&0xff == 0x42, true)
}

func TestBitControlInterrupt(t *testing.T) {
	p := pio.NewPIO()

	// bit control mode, all lines inputs
	p.WriteControl(pio.PortA, 0xcf)
	p.WriteControl(pio.PortA, 0xff)

	// enable interrupts, OR combination, active high, mask follows. mask
	// selects line 0 only (active low selection)
	p.WriteControl(pio.PortA, 0xb7)
	p.WriteControl(pio.PortA, 0xfe)

	p.SetInput(pio.PortA, 0x01)
	test.Equate(t, p.Pins&pio.PinINT != 0, true)

	p.SetInput(pio.PortA, 0x00)
	test.Equate(t, p.Pins&pio.PinINT != 0, false)
}
