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

package logger_test

import (
	"strings"
	"testing"

	"github.com/barnstorm/zed80/logger"
	"github.com/barnstorm/zed80/test"
)

// test central logger and the use of the Tail() function
func TestCentralLogger(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Write(w)
	test.Equate(t, w.String(), "")

	logger.Log("test", "this is a test")
	logger.Write(w)
	test.Equate(t, w.String(), "test: this is a test\n")

	// clear the Builder buffer before continuing, makes comparisons easier to
	// manage
	w.Reset()

	logger.Log("test2", "this is another test")
	logger.Write(w)
	test.Equate(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	logger.Tail(w, 100)
	test.Equate(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	logger.Tail(w, 2)
	test.Equate(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	logger.Tail(w, 1)
	test.Equate(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	logger.Tail(w, 0)
	test.Equate(t, w.String(), "")
}

// repeats of the most recent entry are folded into one line
func TestRepeatFolding(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Log("tag", "detail")
	logger.Log("tag", "detail")
	logger.Log("tag", "detail")
	logger.Write(w)
	test.Equate(t, w.String(), "tag: detail (repeat x3)\n")

	// a different entry breaks the fold
	w.Reset()
	logger.Log("tag", "other detail")
	logger.Write(w)
	test.Equate(t, w.String(), "tag: detail (repeat x3)\ntag: other detail\n")
}

func TestLogf(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Logf("tag", "value = %d", 10)
	logger.Write(w)
	test.Equate(t, w.String(), "tag: value = 10\n")
}
