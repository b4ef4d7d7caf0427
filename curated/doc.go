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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package: it takes a formatting pattern and
// placeholder values, and returns an error. The difference is that the
// pattern is retained and can be matched against later.
//
//	e := curated.Errorf("prefs: %v", err)
//
//	if curated.Is(e, "prefs: %v") {
//		...
//	}
//
// The Has() function is like Is() but checks for the pattern anywhere in the
// error chain, not just the outermost error. IsAny() answers whether the
// error was created by curated.Errorf() at all; it distinguishes errors this
// project created deliberately from errors that have arrived from elsewhere.
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts. This keeps wrapped errors readable when an error is passed
// up through several layers that each add the same prefix.
package curated
