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

package version

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Zed80"

// if number is empty then the project was probably not built using the
// makefile
var number string

// Version contains the current version number of the project. If the version
// string is "unreleased" then the project has been built manually (ie. not
// with the makefile).
var Version string

func init() {
	if number == "" {
		Version = "unreleased"
	} else {
		Version = number
	}
}
