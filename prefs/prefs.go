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

// Package prefs stores preference values to disk. Preference values are added
// to a Disk instance with a unique key. The Save() and Load() functions
// transfer all registered values to and from the file the Disk was created
// with.
//
// Several Disk instances can share one file. Saving merges with entries
// written by other instances rather than clobbering them.
package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/barnstorm/zed80/curated"
)

// WarningBoilerPlate is the first line of a prefs file. Files without this
// line will be rejected on load.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value in a prefs file entry.
const KeySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to the Disk instance with the supplied key. An error
// is returned if the key has already been added.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, KeySep) {
		return curated.Errorf("prefs: add: illegal key (%s)", key)
	}

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: add: duplicate key (%s)", key)
	}

	dsk.entries[key] = p

	return nil
}

// HasEntry returns true if the prefs file contains an entry for the key. The
// key does not need to have been Add()ed to this Disk instance.
func (dsk *Disk) HasEntry(key string) (bool, error) {
	onDisk, err := dsk.read()
	if err != nil {
		return false, err
	}

	_, ok := onDisk[key]
	return ok, nil
}

// read the prefs file into a key/value map. a missing file is not an error,
// it results in an empty map.
func (dsk *Disk) read() (map[string]string, error) {
	onDisk := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return onDisk, nil
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line for the boiler plate
	// warning
	scanner.Scan()
	if len(scanner.Text()) > 0 && scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf("prefs: %v", fmt.Errorf("not a valid prefs file (%s)", dsk.path))
	}

	for scanner.Scan() {
		spt := strings.SplitN(scanner.Text(), KeySep, 2)

		// ignore lines that haven't been split successfully
		if len(spt) != 2 {
			continue
		}

		onDisk[spt[0]] = spt[1]
	}

	return onDisk, nil
}

// Save all registered preference values to the prefs file. Entries in the
// file that belong to other Disk instances are preserved.
func (dsk *Disk) Save() (rerr error) {
	// merge on-disk entries with the values registered with this instance
	onDisk, err := dsk.read()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		onDisk[key] = p.String()
	}

	// write entries in key order so that files are stable from save to save
	keys := make([]string, 0, len(onDisk))
	for key := range onDisk {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = curated.Errorf("prefs: %v", err)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := io.WriteString(w, fmt.Sprintf("%s\n", WarningBoilerPlate)); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	for _, key := range keys {
		if _, err := io.WriteString(w, fmt.Sprintf("%s%s%s\n", key, KeySep, onDisk[key])); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load all registered preference values from the prefs file. Keys with no
// entry in the file are left untouched. If ignoreMissing is true then a
// missing prefs file is not an error.
func (dsk *Disk) Load(ignoreMissing bool) error {
	if _, err := os.Stat(dsk.path); err != nil {
		if os.IsNotExist(err) && ignoreMissing {
			return nil
		}
		return curated.Errorf("prefs: %v", err)
	}

	onDisk, err := dsk.read()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		if v, ok := onDisk[key]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}
