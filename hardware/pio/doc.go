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

// Package pio implements the Zilog Z80 PIO parallel input/output controller.
// The PIO provides two independent 8-bit ports, each programmable into one of
// four operating modes: byte output, byte input, bidirectional transfer (port
// A only, port B supplies the handshake) and bit control, where the direction
// of each port line is selected individually.
//
// Register state is exposed through exported fields. The emulation thread is
// the only mutator; the GUI reads the fields directly once per frame on the
// understanding that emulation and drawing never run concurrently.
package pio
