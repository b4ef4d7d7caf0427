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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/barnstorm/zed80/gui/sdlimgui"
	"github.com/barnstorm/zed80/hardware/pio"
	"github.com/barnstorm/zed80/logger"
	"github.com/barnstorm/zed80/version"
)

func main() {
	log := flag.Bool("log", false, "echo log to stderr")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version)
		os.Exit(0)
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	err := run()
	if err != nil {
		fmt.Printf("* %s\n", err.Error())
		os.Exit(1)
	}
}

func run() error {
	p := pio.NewPIO()

	// program the chip the way a real Z80 would, so the panel has something
	// to show. port A as byte output, port B in bit control mode with
	// interrupts enabled on the low nibble
	p.WriteControl(pio.PortA, 0x0f)
	p.WriteControl(pio.PortB, 0xcf)
	p.WriteControl(pio.PortB, 0x0f)
	p.WriteControl(pio.PortB, 0x97)
	p.WriteControl(pio.PortB, 0xf0)
	p.WriteControl(pio.PortB, 0x0e)

	img, err := sdlimgui.NewSdlImgui(p)
	if err != nil {
		return err
	}
	defer img.Destroy()

	// a stand in for the rest of the machine. a walking bit on port A and a
	// slow counter on the port B inputs keeps the panel moving
	var frame int
	for !img.HasQuit() {
		frame++
		p.WriteData(pio.PortA, uint8(1)<<((frame/30)%8))
		p.SetInput(pio.PortB, uint8(frame/60))

		img.Service()
	}

	return nil
}
