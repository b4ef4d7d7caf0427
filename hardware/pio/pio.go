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

package pio

import (
	"fmt"
)

// Mode is the operating mode of a PIO port. The mode is a 2-bit field taken
// from the top two bits of a mode control word.
type Mode uint8

// List of valid Mode values.
const (
	ModeOutput        Mode = 0
	ModeInput         Mode = 1
	ModeBidirectional Mode = 2
	ModeBitControl    Mode = 3
)

func (m Mode) String() string {
	switch m {
	case ModeOutput:
		return "byte output"
	case ModeInput:
		return "byte input"
	case ModeBidirectional:
		return "bidirectional"
	case ModeBitControl:
		return "bit control"
	}
	panic("unknown PIO port mode")
}

// The interrupt control register carries three independent flags in its top
// bits. The remaining bit of the high nibble indicates that an interrupt mask
// byte follows the control word.
const (
	IntEnable      = 0x80 // interrupts enabled/disabled
	IntAndOr       = 0x40 // bit control condition combined with AND/OR
	IntHiLo        = 0x20 // bit control condition met on high/low level
	IntMaskFollows = 0x10 // next control write is the interrupt mask
)

// Port identifiers. The Z80 PIO has exactly two ports.
const (
	PortA = 0
	PortB = 1
)

// Pin assignment in the Pins bitmask. The GUI's chip diagram is driven from
// this mask and nothing else.
const (
	PinPA0  uint64 = 0x00000001 // port A I/O lines (8 bits from here)
	PinPB0  uint64 = 0x00000100 // port B I/O lines (8 bits from here)
	PinARDY uint64 = 0x00010000
	PinASTB uint64 = 0x00020000
	PinBRDY uint64 = 0x00040000
	PinBSTB uint64 = 0x00080000
	PinINT  uint64 = 0x00100000
)

// PortState is the register state for one of the two PIO ports.
type PortState struct {
	Mode       Mode
	Output     uint8
	Input      uint8
	IOSelect   uint8
	IntControl uint8
	IntVector  uint8
	IntMask    uint8

	// control word sequencing. a mode 3 control word is followed by the io
	// select byte; an interrupt control word with IntMaskFollows set is
	// followed by the mask byte
	expectIOSelect bool
	expectIntMask  bool

	// interrupt requested by this port and not yet observed
	intRequested bool
}

func (pt *PortState) String() string {
	return fmt.Sprintf("mode=%s out=%02x in=%02x io=%02x intctrl=%02x vec=%02x mask=%02x",
		pt.Mode, pt.Output, pt.Input, pt.IOSelect, pt.IntControl, pt.IntVector, pt.IntMask,
	)
}

// PIO implements the two-port Z80 PIO controller.
type PIO struct {
	Port [2]*PortState

	// Pins reflects the state of the chip's I/O and handshake pins. see the
	// Pin* constants for the assignment
	Pins uint64
}

// NewPIO is the preferred method of initialisation for the PIO type.
func NewPIO() *PIO {
	p := &PIO{}
	p.Port[PortA] = &PortState{}
	p.Port[PortB] = &PortState{}
	p.Reset()
	return p
}

// Reset the PIO to its power-on state. Both ports come up in byte input mode
// with interrupts disabled, as on the real chip.
func (p *PIO) Reset() {
	for _, pt := range p.Port {
		pt.Mode = ModeInput
		pt.Output = 0x00
		pt.IOSelect = 0xff
		pt.IntControl = 0x00
		pt.IntMask = 0x00
		pt.expectIOSelect = false
		pt.expectIntMask = false
		pt.intRequested = false
	}
	p.updatePins()
}

func (p *PIO) String() string {
	return fmt.Sprintf("A: %s\nB: %s", p.Port[PortA], p.Port[PortB])
}

// WriteControl services a write to one of the PIO's two control registers.
//
// The low nibble of the control word selects its meaning: xxxx1111 is a mode
// word, xxxx0111 an interrupt control word, xxxx0011 an interrupt
// enable/disable word and xxxxxxx0 the interrupt vector. A mode 3 word and an
// interrupt control word with IntMaskFollows set each claim the following
// control write as their parameter byte.
func (p *PIO) WriteControl(port int, data uint8) {
	pt := p.Port[port]

	if pt.expectIOSelect {
		pt.IOSelect = data
		pt.expectIOSelect = false
	} else if pt.expectIntMask {
		pt.IntMask = data
		pt.expectIntMask = false
	} else if data&0x0f == 0x0f {
		pt.Mode = Mode(data >> 6)
		if pt.Mode == ModeBitControl {
			pt.expectIOSelect = true
		}
	} else if data&0x0f == 0x07 {
		pt.IntControl = data & 0xf0
		if data&IntMaskFollows != 0 {
			pt.expectIntMask = true
		}
		// programming the interrupt control word clears a pending interrupt
		pt.intRequested = false
	} else if data&0x0f == 0x03 {
		pt.IntControl = (pt.IntControl &^ IntEnable) | (data & IntEnable)
	} else if data&0x01 == 0x00 {
		pt.IntVector = data
	}

	p.updatePins()
}

// WriteData services a CPU write to one of the PIO's two data registers.
func (p *PIO) WriteData(port int, data uint8) {
	pt := p.Port[port]
	pt.Output = data
	p.updatePins()
}

// ReadData services a CPU read from one of the PIO's two data registers. The
// result depends on the port mode: the output register is read back in output
// mode, the latched input in input and bidirectional modes, and a mix
// selected by the io select register in bit control mode.
func (p *PIO) ReadData(port int) uint8 {
	pt := p.Port[port]
	switch pt.Mode {
	case ModeOutput:
		return pt.Output
	case ModeInput, ModeBidirectional:
		return pt.Input
	}
	return (pt.Input & pt.IOSelect) | (pt.Output &^ pt.IOSelect)
}

// SetInput drives the port pins from the outside, as a peripheral device
// would. In bit control mode the new level is tested against the interrupt
// condition programmed by the interrupt control word and mask.
func (p *PIO) SetInput(port int, data uint8) {
	pt := p.Port[port]
	pt.Input = data

	if pt.Mode == ModeBitControl && pt.IntControl&IntEnable != 0 {
		pt.intRequested = pt.bitControlInterrupt()
	}

	p.updatePins()
}

// bitControlInterrupt tests the port's input lines against the programmed
// interrupt condition. Lines masked off by the interrupt mask register take
// no part in the test (a zero bit in the mask register selects the line,
// matching the chip's active-low convention).
func (pt *PortState) bitControlInterrupt() bool {
	monitored := ^pt.IntMask & pt.IOSelect
	if monitored == 0 {
		return false
	}

	// active level for the monitored lines
	lines := pt.Input
	if pt.IntControl&IntHiLo == 0 {
		lines = ^lines
	}

	if pt.IntControl&IntAndOr != 0 {
		return lines&monitored == monitored
	}
	return lines&monitored != 0
}

// updatePins refreshes the Pins bitmask from current register state. Output
// register bits drive the port pins in output modes; in bit control mode only
// the lines selected as outputs are driven, the rest show the input level.
func (p *PIO) updatePins() {
	var pins uint64

	for i, pt := range p.Port {
		var lines uint8

		switch pt.Mode {
		case ModeOutput, ModeBidirectional:
			lines = pt.Output
		case ModeInput:
			lines = pt.Input
		case ModeBitControl:
			lines = (pt.Input & pt.IOSelect) | (pt.Output &^ pt.IOSelect)
		}

		shift := uint(i * 8)
		pins |= uint64(lines) << shift
	}

	// ready lines are held high while the port is driving its output
	// register. strobe handshaking is not emulated
	if p.Port[PortA].Mode == ModeOutput || p.Port[PortA].Mode == ModeBidirectional {
		pins |= PinARDY
	}
	if p.Port[PortB].Mode == ModeOutput {
		pins |= PinBRDY
	}

	if p.Port[PortA].intRequested || p.Port[PortB].intRequested {
		pins |= PinINT
	}

	p.Pins = pins
}
