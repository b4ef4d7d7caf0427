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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/barnstorm/zed80/prefs"
	"github.com/barnstorm/zed80/test"
)

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading prefs file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)

	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match")
		fmt.Println("expected:")
		fmt.Println(expected)
		fmt.Println("\nin file:")
		fmt.Println(string(data))
	}
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs_test")

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	err = dsk.Add("test", &v)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("testB", &w)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("testC", &x)
	test.ExpectedSuccess(t, err)

	err = v.Set(true)
	test.ExpectedSuccess(t, err)
	err = w.Set("foo")
	test.ExpectedSuccess(t, err)
	err = x.Set("true")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	cmpPrefsFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs_test")

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var v prefs.Int
	var w prefs.Int
	err = dsk.Add("number", &v)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("numberB", &w)
	test.ExpectedSuccess(t, err)

	err = v.Set(10)
	test.ExpectedSuccess(t, err)

	// test string conversion to int
	err = w.Set("99")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	cmpPrefsFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// while we have a prefs.Int instance set up we'll test some failure
	// conditions
	err = v.Set("---")
	test.ExpectedFailure(t, err)

	err = v.Set(1.0)
	test.ExpectedFailure(t, err)
}

func TestGeneric(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs_test")

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	err = dsk.Add("generic", v)
	test.ExpectedSuccess(t, err)

	// change values
	w = 1
	h = 2

	// save to disk
	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	cmpPrefsFile(t, fn, "generic :: 1,2\n")

	// reset values
	w = 0
	h = 0

	// reload them from disk
	err = dsk.Load(false)
	test.ExpectedSuccess(t, err)

	// check that the values have been restored
	test.Equate(t, w, 1)
	test.Equate(t, h, 2)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs_test")

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var v prefs.Bool
	err = dsk.Add("test", &v)
	test.ExpectedSuccess(t, err)

	err = v.Set(true)
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	// start a new disk instance using the same file. (we haven't deleted it yet)
	dsk, err = prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var s prefs.String
	err = dsk.Add("foo", &s)
	test.ExpectedSuccess(t, err)

	err = s.Set("bar")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	// compare file. the file should contain contents set by both disk
	// instances
	cmpPrefsFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestHasEntry(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs_test")

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var v prefs.Bool
	err = dsk.Add("test", &v)
	test.ExpectedSuccess(t, err)

	// nothing saved yet
	ok, err := dsk.HasEntry("test")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ok, false)

	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	ok, err = dsk.HasEntry("test")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ok, true)

	ok, err = dsk.HasEntry("no such key")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ok, false)
}

func TestMaxStringLength(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs_test")

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var s prefs.String
	err = dsk.Add("test", &s)
	test.ExpectedSuccess(t, err)
	err = s.Set("123456789")
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.Equate(t, s.String(), "12345")

	// unsetting a maximum length (using value zero) will not result in
	// cropped string information reappearing
	s.SetMaxLen(0)
	test.Equate(t, s.String(), "12345")

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	err = s.Set("abcdefghi")
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.String(), "abc")
}
