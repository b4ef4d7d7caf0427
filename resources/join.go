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

// Package resources locates the files the application stores between
// sessions: preferences, window state, etc.
package resources

import (
	"os"
	"path/filepath"
)

// the portable directory is used in preference to the user's config
// directory when it exists in the current working directory
const portablePath = ".zed80"

const appDir = "zed80"

// JoinPath prepends the supplied path with an OS specific base path.
//
// The function creates all folders necessary to reach the end of sub-path. It
// does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	var b string

	if fi, err := os.Stat(portablePath); err == nil && fi.IsDir() {
		b = portablePath
	} else {
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		b = filepath.Join(cnf, appDir)
	}

	p := filepath.Join(b, filepath.Join(path...))

	// check if path already exists
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	// create path if necessary
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}
